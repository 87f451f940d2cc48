package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateDonationRequestQR renders a PNG QR code linking to the donation request
	GenerateDonationRequestQR(requestID string) ([]byte, error)

	// DonationRequestURL returns the link encoded in the QR code
	DonationRequestURL(requestID string) string
}
