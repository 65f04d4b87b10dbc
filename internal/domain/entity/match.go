package entity

import (
	"time"

	"github.com/google/uuid"
)

// MatchRecord is an accepted pairing between one lost and one found report.
type MatchRecord struct {
	ID          uuid.UUID `json:"matchId"`     // Identifier of the recorded match.
	LostItemID  uuid.UUID `json:"lostItemId"`  // Lost side of the pair.
	FoundItemID uuid.UUID `json:"foundItemId"` // Found side of the pair.
	Score       float64   `json:"score"`       // Similarity in [0,1] at decision time.
	DecidedAt   time.Time `json:"decidedAt"`   // When the match was accepted.
}

// PairKey is unique per unordered pair because the lost side is always written first.
func (m *MatchRecord) PairKey() string {
	return PairKey(m.LostItemID, m.FoundItemID)
}

// PairKey builds the uniqueness key of a lost/found pair.
func PairKey(lostItemID, foundItemID uuid.UUID) string {
	return lostItemID.String() + ":" + foundItemID.String()
}

// MatchCandidate is a scored opposite-type report returned to the submitting client.
type MatchCandidate struct {
	ItemID      uuid.UUID `json:"itemId"`
	Title       string    `json:"title"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	Location    Location  `json:"location"`
	PhotoURL    string    `json:"photoUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	Score       float64   `json:"score"`

	Item *ItemReport `json:"-"`
}

// NewMatchCandidate projects a stored report into its public candidate form.
func NewMatchCandidate(item *ItemReport, score float64) MatchCandidate {
	return MatchCandidate{
		ItemID:      item.ID,
		Title:       item.Title,
		Category:    item.Category,
		Description: item.Description,
		Location:    item.Location,
		PhotoURL:    item.PhotoURL,
		CreatedAt:   item.CreatedAt,
		Score:       score,
		Item:        item,
	}
}
