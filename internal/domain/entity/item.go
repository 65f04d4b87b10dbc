// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ItemType partitions reports into the two collections that are matched against each other.
type ItemType string

const (
	ItemTypeLost  ItemType = "lost"
	ItemTypeFound ItemType = "found"
)

// Opposite returns the collection a report of this type is matched against.
func (t ItemType) Opposite() ItemType {
	if t == ItemTypeLost {
		return ItemTypeFound
	}

	return ItemTypeLost
}

// IsValid reports whether t is one of the two known item types.
func (t ItemType) IsValid() bool {
	return t == ItemTypeLost || t == ItemTypeFound
}

// ParseItemType accepts the path segment used by the client ("lost", "found").
func ParseItemType(s string) (ItemType, bool) {
	t := ItemType(strings.ToLower(strings.TrimSpace(s)))

	return t, t.IsValid()
}

// ItemStatus is the lifecycle state of a report.
type ItemStatus string

const (
	ItemStatusOpen    ItemStatus = "open"
	ItemStatusMatched ItemStatus = "matched"
	ItemStatusClaimed ItemStatus = "claimed"
	ItemStatusClosed  ItemStatus = "closed"
)

// IsValid reports whether s is a known status.
func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusOpen, ItemStatusMatched, ItemStatusClaimed, ItemStatusClosed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed.
func (s ItemStatus) IsTerminal() bool {
	return s == ItemStatusClosed
}

// Location is where an item was lost or found.
type Location struct {
	Building  string  `json:"building"` // Campus building name, used for same-building matching.
	Latitude  float64 `json:"lat"`      // WGS84 latitude.
	Longitude float64 `json:"lng"`      // WGS84 longitude.
}

// HasCoordinates reports whether an explicit point was supplied.
func (l Location) HasCoordinates() bool {
	return l.Latitude != 0 || l.Longitude != 0
}

// ItemReport is a user-submitted record describing a lost or found object.
type ItemReport struct {
	ID            uuid.UUID  `json:"itemId"`              // Assigned at creation, immutable.
	Type          ItemType   `json:"itemType"`            // Lost or found, immutable.
	UserID        string     `json:"userId,omitempty"`    // Subject of the submitting credential, if any.
	Title         string     `json:"title"`               // Short item name.
	Description   string     `json:"description"`         // Primary signal for matching.
	Category      Category   `json:"category"`            // Hard pre-filter for matching.
	Location      Location   `json:"location"`            // Building plus coordinates.
	PhotoURL      string     `json:"photoUrl"`            // Optional stored image reference.
	ReporterEmail string     `json:"-"`                   // Contact for notifications, never listed publicly.
	ReporterName  string     `json:"-"`                   // Contact name for notifications.
	PushToken     string     `json:"-"`                   // Optional device token for push notifications.
	Status        ItemStatus `json:"status"`              // Open, matched, claimed or closed.
	CreatedAt     time.Time  `json:"createdAt"`           // Immutable creation time.
	UpdatedAt     time.Time  `json:"updatedAt,omitempty"` // Last status change.
}

// Validate checks the fields required for a report to be stored.
// It returns the name of the first offending field and a human-readable reason.
func (r *ItemReport) Validate() (field, reason string, ok bool) {
	switch {
	case !r.Type.IsValid():
		return "itemType", "itemType must be lost or found", false
	case strings.TrimSpace(r.Title) == "":
		return "title", "title is required", false
	case strings.TrimSpace(r.Description) == "":
		return "description", "description is required", false
	case strings.TrimSpace(string(r.Category)) == "":
		return "category", "category is required", false
	case !r.Category.IsValid():
		return "category", "category must be one of: " + strings.Join(CategoryNames(), ", "), false
	case strings.TrimSpace(r.Location.Building) == "":
		return "location.building", "location.building is required", false
	case strings.TrimSpace(r.ReporterEmail) == "":
		return "reporterEmail", "reporterEmail is required", false
	case !strings.Contains(r.ReporterEmail, "@"):
		return "reporterEmail", "reporterEmail must be a valid email address", false
	}

	return "", "", true
}

// Summary returns the text used for similarity scoring.
func (r *ItemReport) Summary() string {
	return r.Title + " " + r.Description
}
