package types

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNotFound is the sentinel matched by errors.Is for missing records
	ErrNotFound = errors.New("leftover not found")

	ErrInvalidExpiryDate   = errors.New("Invalid expiry date format")
	ErrInvalidConsumedDate = errors.New("Invalid consumed date format")
	ErrInvalidAmount       = errors.New("Consumption amount must be greater than zero")
)

// NotFoundError carries the requested ID so the message can name it
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Leftover with ID %s not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// LeftoverInput is the payload for createLeftover. Timestamps arrive as
// string-encoded epoch milliseconds.
type LeftoverInput struct {
	Name            string   `json:"name" validate:"required"`
	Description     string   `json:"description"`
	Portion         *float64 `json:"portion" validate:"omitempty,gt=0"`
	StorageLocation string   `json:"storageLocation" validate:"required,oneof=fridge freezer"`
	ExpiryDate      string   `json:"expiryDate" validate:"required"`
	Tags            []string `json:"tags"`
}

// LeftoverUpdateInput is the payload for updateLeftover. Every field is
// optional; nil means "leave unchanged".
type LeftoverUpdateInput struct {
	Name            *string   `json:"name" validate:"omitempty,min=1"`
	Description     *string   `json:"description"`
	Portion         *float64  `json:"portion" validate:"omitempty,gt=0"`
	StorageLocation *string   `json:"storageLocation" validate:"omitempty,oneof=fridge freezer"`
	ExpiryDate      *string   `json:"expiryDate"`
	Tags            *[]string `json:"tags"`
	Consumed        *bool     `json:"consumed"`
	ConsumedDate    *string   `json:"consumedDate"`
}

// ParseEpochMillis converts a string-encoded epoch-millisecond timestamp
// into a time.Time. Coercion is loose, matching the wire format's numeric
// handling: surrounding whitespace is ignored, an empty string means epoch
// zero and fractional milliseconds truncate toward zero.
func ParseEpochMillis(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.UnixMilli(0), nil
	}

	ms, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return time.Time{}, err
	}
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return time.Time{}, fmt.Errorf("%q is not a finite timestamp", value)
	}
	return time.UnixMilli(int64(ms)), nil
}

// FormatEpochMillis renders a time.Time as the wire-format epoch-ms string
func FormatEpochMillis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
