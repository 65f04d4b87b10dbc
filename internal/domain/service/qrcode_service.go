package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateClaimQR generates a QR code linking to the claim flow of an item
	GenerateClaimQR(itemID uuid.UUID) ([]byte, error)

	// ParseClaimQR parses QR code data and returns the item ID
	ParseClaimQR(qrData string) (uuid.UUID, error)
}
