package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
			"amqpUrl": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"access": map[string]any{
			"strictOwnership": false,
		},
		"payment": map[string]any{
			"secretKey": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "PUBSUB_AMQPURL", want: "pubsub.amqpUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "ACCESS_STRICTOWNERSHIP", want: "access.strictOwnership"},
		{envKey: "PAYMENT_SECRETKEY", want: "payment.secretKey"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
env:
  serviceName: bloodlink
http:
  port: 5000
  cors:
    allowOrigins:
      - http://localhost:5173
secretKey:
  access: ""
auth:
  tokenTTL: 2h
access:
  strictOwnership: false
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yaml, 0o600))
	t.Chdir(dir)
	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("ACCESS_STRICTOWNERSHIP", "true")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "bloodlink", cfg.Env.ServiceName)
	assert.Equal(t, 5000, cfg.HTTP.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.HTTP.CORS.AllowOrigins)
	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	assert.True(t, cfg.Access.StrictOwnership)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Mongo: &MongoConfig{}}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "mongo", cfg.Database.Driver)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "usd", cfg.Payment.Currency)
	assert.Equal(t, defaultMongoTimeout, cfg.Mongo.Timeout)
	assert.False(t, cfg.Access.StrictOwnership)
}
