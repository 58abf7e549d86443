package services

import "github.com/skip2/go-qrcode"

type QRService struct{}

func NewQRService() *QRService {
	return &QRService{}
}

// GeneratePNG renders a QR code for the given content as a PNG image.
func (s *QRService) GeneratePNG(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}
