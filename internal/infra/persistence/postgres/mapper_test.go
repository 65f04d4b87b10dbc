package postgres

import (
	"testing"
	"time"

	"lostfound/internal/domain/entity"
	"lostfound/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemMapper_RoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 2, 15, 4, 5, 0, time.UTC)
	item := &entity.ItemReport{
		ID:          uuid.New(),
		Type:        entity.ItemTypeLost,
		UserID:      "user-42",
		Title:       "Blue backpack",
		Description: "Blue backpack with a laptop sleeve",
		Category:    entity.CategoryBag,
		Location: entity.Location{
			Building:  "Student Center",
			Latitude:  33.7743,
			Longitude: -84.3988,
		},
		PhotoURL:      "http://localhost:8080/static/items/a.jpg",
		ReporterEmail: "owner@gatech.edu",
		ReporterName:  "Owner",
		PushToken:     "device-token",
		Status:        entity.ItemStatusMatched,
		CreatedAt:     now,
		UpdatedAt:     now.Add(time.Hour),
	}

	itemM := fromItemDomain(item)
	require.NotNil(t, itemM)
	assert.Equal(t, "lost", itemM.ItemType)
	assert.Equal(t, "Student Center", itemM.Building)
	assert.Equal(t, string(entity.ItemStatusMatched), itemM.Status)

	assert.Equal(t, item, toItemDomain(itemM))
}

func TestMatchMapper_RoundTrip(t *testing.T) {
	match := &entity.MatchRecord{
		ID:          uuid.New(),
		LostItemID:  uuid.New(),
		FoundItemID: uuid.New(),
		Score:       0.82,
		DecidedAt:   time.Date(2026, 3, 2, 15, 4, 5, 0, time.UTC),
	}

	matchM := fromMatchDomain(match)
	require.NotNil(t, matchM)
	assert.Equal(t, entity.PairKey(match.LostItemID, match.FoundItemID), matchM.PairKey)

	assert.Equal(t, match, toMatchDomain(matchM))
}

func TestJobMapper_RoundTrip(t *testing.T) {
	matchID := uuid.New()
	now := time.Date(2026, 3, 2, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name string
		job  *entity.NotificationJob
	}{
		{
			name: "confirmation without channels",
			job: &entity.NotificationJob{
				ID:             uuid.New(),
				Kind:           entity.JobKindLostConfirmation,
				ItemID:         uuid.New(),
				RecipientEmail: "reporter@gatech.edu",
				RecipientName:  "Reporter",
				Payload: entity.JobPayload{
					ItemName:    "Keys",
					Description: "Ring of three keys",
					Category:    entity.CategoryKeys,
					Location:    "Library",
				},
				Status:    entity.JobStatusPending,
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		{
			name: "match alert with delivered channels",
			job: &entity.NotificationJob{
				ID:             uuid.New(),
				Kind:           entity.JobKindMatchAlert,
				ItemID:         uuid.New(),
				MatchID:        &matchID,
				RecipientEmail: "finder@gatech.edu",
				RecipientName:  "Finder",
				PushToken:      "device-token",
				Payload: entity.JobPayload{
					ItemName:         "Keys",
					Description:      "Ring of three keys",
					Category:         entity.CategoryKeys,
					Location:         "Library",
					Role:             entity.RoleFinder,
					CounterpartID:    uuid.NewString(),
					CounterpartTitle: "Lost keys",
					CounterpartPlace: "Library",
					Score:            0.74,
				},
				Status:            entity.JobStatusFailed,
				Attempts:          3,
				DeliveredChannels: []entity.Channel{entity.ChannelEmail, entity.ChannelPush},
				LastError:         "push: token rejected",
				CreatedAt:         now,
				UpdatedAt:         now.Add(time.Minute),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobM := fromJobDomain(tt.job)
			require.NotNil(t, jobM)
			assert.Equal(t, model.EncodeChannels(tt.job.DeliveredChannels), jobM.DeliveredChannels)

			assert.Equal(t, tt.job, toJobDomain(jobM))
		})
	}
}

func TestMappers_Nil(t *testing.T) {
	assert.Nil(t, toItemDomain(nil))
	assert.Nil(t, fromItemDomain(nil))
	assert.Nil(t, toMatchDomain(nil))
	assert.Nil(t, fromMatchDomain(nil))
	assert.Nil(t, toJobDomain(nil))
	assert.Nil(t, fromJobDomain(nil))
}
