package qrcode

import (
	"net/url"
	"strings"

	"bloodlink/config"
	"bloodlink/internal/domain/service"
	"bloodlink/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://localhost:5173/donation-requests"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section, with defaults
// for anything unset.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "", defaultBaseURL)
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// DonationRequestURL returns the client link of a donation request
func (s *qrcodeService) DonationRequestURL(requestID string) string {
	return s.baseURL + "/" + url.PathEscape(requestID)
}

// GenerateDonationRequestQR renders the donation request link as a PNG
func (s *qrcodeService) GenerateDonationRequestQR(requestID string) ([]byte, error) {
	if requestID == "" {
		return nil, errors.New("donation request id is empty")
	}

	qrCode, err := qrcode.New(s.DonationRequestURL(requestID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
