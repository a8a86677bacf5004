package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateDeviceQR generates a provisioning QR code embedding the device id.
	GenerateDeviceQR(deviceID string) ([]byte, error)

	// ParseDeviceQR parses QR code data and returns the device id.
	ParseDeviceQR(qrData string) (string, error)
}
