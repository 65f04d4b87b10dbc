// Package usecase defines the application's use cases.
package usecase

import (
	"context"

	"lostfound/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitItemInput is a lost or found report as submitted by the client.
type SubmitItemInput struct {
	UserID        string
	Title         string
	Category      string
	Description   string
	Location      entity.Location
	PhotoURL      string
	ReporterEmail string
	ReporterName  string
	PushToken     string
}

// SubmitOutput distinguishes "accepted with N matches" from "accepted with none":
// Matches is never nil.
type SubmitOutput struct {
	Item    *entity.ItemReport
	Matches []entity.MatchCandidate
}

// ItemUsecase defines the ingestion and lifecycle use cases for item reports.
type ItemUsecase interface {
	// SubmitLost stores a lost report, matches it against found reports and notifies both sides.
	SubmitLost(ctx context.Context, input *SubmitItemInput) (*SubmitOutput, error)

	// SubmitFound stores a found report, matches it against lost reports and notifies both sides.
	SubmitFound(ctx context.Context, input *SubmitItemInput) (*SubmitOutput, error)

	// ListAll returns every report of one type, newest first.
	ListAll(ctx context.Context, itemType entity.ItemType) ([]*entity.ItemReport, error)

	// ListOpen returns open reports of one type, newest first.
	ListOpen(ctx context.Context, itemType entity.ItemType) ([]*entity.ItemReport, error)

	// GetItem returns a single report.
	GetItem(ctx context.Context, id uuid.UUID) (*entity.ItemReport, error)

	// ClaimItem marks an open or matched report as claimed by its owner.
	ClaimItem(ctx context.Context, id uuid.UUID) (*entity.ItemReport, error)

	// CloseItem closes a report. Closed reports never change again.
	CloseItem(ctx context.Context, id uuid.UUID) (*entity.ItemReport, error)

	// ItemMatches returns the recorded matches of a report.
	ItemMatches(ctx context.Context, id uuid.UUID) ([]*entity.MatchRecord, error)
}
