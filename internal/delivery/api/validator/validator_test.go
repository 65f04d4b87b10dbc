package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type location struct {
	Building string `json:"building" validate:"required"`
}

type report struct {
	Title         string   `json:"title" validate:"required"`
	Category      string   `json:"category" validate:"required,category"`
	Location      location `json:"location"`
	ReporterEmail string   `json:"reporterEmail" validate:"required,contains=@"`
}

func TestValidator(t *testing.T) {
	v := New()
	valid := report{Title: "AirPods", Category: "electronics", Location: location{Building: "Klaus"}, ReporterEmail: "a@gatech.edu"}
	require.NoError(t, v.Validate(&valid))

	tests := []struct {
		name   string
		mutate func(r *report)
		field  string
		reason string
	}{
		{"missing title", func(r *report) { r.Title = "" }, "title", "title is required"},
		{"unknown category", func(r *report) { r.Category = "Pets" }, "category", "category must be one of: BuzzCard, Electronics, Water Bottle, Clothing, Bag, Keys, Books, Other"},
		{"nested building", func(r *report) { r.Location.Building = "" }, "location.building", "location.building is required"},
		{"email without at", func(r *report) { r.ReporterEmail = "nobody" }, "reporterEmail", "reporterEmail must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)

			err := v.Validate(&r)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.reason, verr.Reason)
		})
	}
}
