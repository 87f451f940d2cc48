package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"bloodlink/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"medium", qrcode.Medium},
		{"Q", qrcode.High},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.in))
		})
	}
}

func TestQRCodeService_DonationRequestURL(t *testing.T) {
	svc := NewQRCodeService(128, "M", "https://bloodlink.example/requests/")

	assert.Equal(t, "https://bloodlink.example/requests/665f1c2e9b1e8a3d4c5b6a7f",
		svc.DonationRequestURL("665f1c2e9b1e8a3d4c5b6a7f"))
}

func TestQRCodeService_GenerateDonationRequestQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"small", 128},
		{"default", 0},
		{"large", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, "M", "")

			pngBytes, err := svc.GenerateDonationRequestQR("665f1c2e9b1e8a3d4c5b6a7f")
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(pngBytes))
			require.NoError(t, err)

			want := tt.size
			if want == 0 {
				want = defaultSize
			}
			assert.Equal(t, want, img.Bounds().Dx())
		})
	}
}

func TestQRCodeService_EmptyID(t *testing.T) {
	svc := NewQRCodeServiceFromConfig(&config.Config{})

	_, err := svc.GenerateDonationRequestQR("")
	assert.Error(t, err)
}
