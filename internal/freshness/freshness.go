// Package freshness holds the display-side helpers the dashboard derives
// from leftover records: expiry classification and free-text filtering.
// Nothing here is persisted; both are pure functions recomputed on demand.
package freshness

import (
	"fmt"
	"strings"
	"time"

	"github.com/leftovers-tracker/backend/internal/models"
)

// Severity grades how urgently an item needs attention
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Status is the presentational classification of an expiry date
type Status struct {
	Severity Severity
	DaysLeft int
	Label    string
}

// Classify grades an expiry date against a reference instant. Already
// expired items are errors, items within a day are warnings, everything
// else is informational with the days remaining.
func Classify(expiry, now time.Time) Status {
	daysLeft := daysBetween(now, expiry)

	switch {
	case daysLeft < 0:
		return Status{Severity: SeverityError, DaysLeft: daysLeft, Label: "Expired"}
	case daysLeft <= 1:
		return Status{Severity: SeverityWarning, DaysLeft: daysLeft, Label: "Expiring soon"}
	default:
		return Status{
			Severity: SeverityInfo,
			DaysLeft: daysLeft,
			Label:    fmt.Sprintf("%d days left", daysLeft),
		}
	}
}

// daysBetween counts whole-day differences, truncating toward zero the
// way the dashboard rounds its countdown. An item a few hours past its
// expiry is still day zero, not day minus one.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// Filter returns the leftovers matching a free-text search term. Matching
// is a case-insensitive substring test across name, description and tags;
// any single hit keeps the item. An empty term keeps everything.
func Filter(leftovers []*models.Leftover, term string) []*models.Leftover {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return leftovers
	}

	matched := make([]*models.Leftover, 0, len(leftovers))
	for _, leftover := range leftovers {
		if matches(leftover, needle) {
			matched = append(matched, leftover)
		}
	}
	return matched
}

func matches(leftover *models.Leftover, needle string) bool {
	if strings.Contains(strings.ToLower(leftover.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(leftover.Description), needle) {
		return true
	}
	for _, tag := range leftover.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
