package config

import (
	"testing"
	"time"

	"lostfound/internal/domain/constants"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"imageStorage": map[string]any{
			"publicBaseUrl": "",
		},
		"dispatch": map[string]any{
			"maxAttempts": 5,
			"retry": map[string]any{
				"attempts": 3,
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "IMAGESTORAGE_PUBLICBASEURL", want: "imageStorage.publicBaseUrl"},
		{envKey: "DISPATCH_MAXATTEMPTS", want: "dispatch.maxAttempts"},
		{envKey: "DISPATCH_RETRY_ATTEMPTS", want: "dispatch.retry.attempts"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, constants.StorageDriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, constants.DispatchModeInProcess, cfg.Dispatch.Mode)
	assert.Equal(t, constants.GuardProviderMemory, cfg.Dispatch.Guard)
	assert.Equal(t, constants.TransportProviderLog, cfg.Notification.Email)
	assert.Equal(t, constants.TransportProviderLog, cfg.Notification.Push)
	assert.Equal(t, 1024, cfg.ImageStorage.MaxDimension)
	assert.Equal(t, 85, cfg.ImageStorage.Quality)
	assert.InDelta(t, 0.6, cfg.Matching.Threshold, 1e-9)
	assert.Equal(t, 5, cfg.Matching.MaxMatches)
	assert.True(t, cfg.Matching.CategoryFilter)
}

func TestRetryConfig_Strategy(t *testing.T) {
	r := RetryConfig{Attempts: 4, Delay: 250 * time.Millisecond, Backoff: 1.5}
	s := r.Strategy()

	assert.Equal(t, 4, s.Attempts)
	assert.Equal(t, 250*time.Millisecond, s.Delay)
	assert.InDelta(t, 1.5, s.Backoff, 1e-9)
}
