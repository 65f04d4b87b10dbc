package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"lostfound/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const claimType = "claim"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	ItemID string `json:"item_id"`
	Type   string `json:"type"`
	URL    string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance.
// baseURL, when set, adds a claim link the scanning app can open directly.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimSuffix(baseURL, "/"),
	}
}

// GenerateClaimQR generates a PNG QR code pointing at the claim flow of an item
func (s *qrcodeService) GenerateClaimQR(itemID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		ItemID: itemID.String(),
		Type:   claimType,
	}
	if s.baseURL != "" {
		data.URL = fmt.Sprintf("%s/items/%s/claim", s.baseURL, itemID)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseClaimQR parses QR code data and returns the item ID
func (s *qrcodeService) ParseClaimQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != claimType {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	itemID, err := uuid.Parse(data.ItemID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse item ID: %w", err)
	}

	return itemID, nil
}
