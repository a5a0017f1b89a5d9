package freshness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/leftovers-tracker/backend/internal/models"
)

func TestClassify(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	expired := Classify(now.Add(-48*time.Hour), now)
	assert.Equal(t, SeverityError, expired.Severity)
	assert.Equal(t, "Expired", expired.Label)
	assert.Less(t, expired.DaysLeft, 0)

	today := Classify(now.Add(6*time.Hour), now)
	assert.Equal(t, SeverityWarning, today.Severity)
	assert.Equal(t, "Expiring soon", today.Label)

	tomorrow := Classify(now.Add(30*time.Hour), now)
	assert.Equal(t, SeverityWarning, tomorrow.Severity)
	assert.Equal(t, 1, tomorrow.DaysLeft)

	nextWeek := Classify(now.Add(7*24*time.Hour), now)
	assert.Equal(t, SeverityInfo, nextWeek.Severity)
	assert.Equal(t, 7, nextWeek.DaysLeft)
	assert.Equal(t, "7 days left", nextWeek.Label)
}

func TestClassifyJustPastExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// A few hours past expiry is still within the same day window
	justPast := Classify(now.Add(-2*time.Hour), now)
	assert.Equal(t, SeverityWarning, justPast.Severity)
	assert.Equal(t, "Expiring soon", justPast.Label)
	assert.Equal(t, 0, justPast.DaysLeft)

	// A full day past flips to expired
	dayPast := Classify(now.Add(-26*time.Hour), now)
	assert.Equal(t, SeverityError, dayPast.Severity)
	assert.Equal(t, "Expired", dayPast.Label)
	assert.Equal(t, -1, dayPast.DaysLeft)
}

func TestClassifyIsPure(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expiry := now.Add(3 * 24 * time.Hour)

	first := Classify(expiry, now)
	second := Classify(expiry, now)
	assert.Equal(t, first, second)
}

func TestFilter(t *testing.T) {
	items := []*models.Leftover{
		{Name: "Lasagna", Description: "Half a tray", Tags: models.StringList{"pasta", "dinner"}},
		{Name: "Chicken soup", Description: "", Tags: models.StringList{"soup"}},
		{Name: "Rice", Description: "Spicy fried rice", Tags: nil},
	}

	// Name match, case-insensitive
	assert.Len(t, Filter(items, "LASAGNA"), 1)

	// Description match
	byDescription := Filter(items, "spicy")
	assert.Len(t, byDescription, 1)
	assert.Equal(t, "Rice", byDescription[0].Name)

	// Tag match
	byTag := Filter(items, "pasta")
	assert.Len(t, byTag, 1)
	assert.Equal(t, "Lasagna", byTag[0].Name)

	// Any single field hit keeps the item
	assert.Len(t, Filter(items, "soup"), 1)

	// No match
	assert.Empty(t, Filter(items, "pizza"))

	// Empty and whitespace-only terms keep everything
	assert.Len(t, Filter(items, ""), 3)
	assert.Len(t, Filter(items, "   "), 3)
}
