package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/leftovers-tracker/backend/internal/models"
	"github.com/leftovers-tracker/backend/internal/types"
)

// LeftoverService handles all reads and writes for leftover records. The
// database handle is injected so tests can run against their own store.
type LeftoverService struct {
	db *gorm.DB
}

// NewLeftoverService creates a new LeftoverService instance
func NewLeftoverService(db *gorm.DB) *LeftoverService {
	return &LeftoverService{db: db}
}

// List returns all leftovers, optionally restricted to one storage
// location, newest stored first. There is no pagination.
func (s *LeftoverService) List(ctx context.Context, location *string) ([]*models.Leftover, error) {
	var leftovers []*models.Leftover

	query := s.db.WithContext(ctx).Order("stored_date DESC")
	if location != nil && *location != "" {
		query = query.Where("storage_location = ?", *location)
	}

	if err := query.Find(&leftovers).Error; err != nil {
		return nil, fmt.Errorf("Failed to fetch leftovers: %w", err)
	}
	return leftovers, nil
}

// Get returns one leftover by ID or a NotFoundError
func (s *LeftoverService) Get(ctx context.Context, id string) (*models.Leftover, error) {
	var leftover models.Leftover
	if err := s.db.WithContext(ctx).First(&leftover, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &types.NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("Failed to fetch leftover: %w", err)
	}
	return &leftover, nil
}

// Create stores a new leftover. The stored date is set to now, portion
// defaults to 1 when unspecified and the record starts unconsumed.
func (s *LeftoverService) Create(ctx context.Context, input types.LeftoverInput) (*models.Leftover, error) {
	expiryDate, err := types.ParseEpochMillis(input.ExpiryDate)
	if err != nil {
		return nil, types.ErrInvalidExpiryDate
	}

	portion := 1.0
	if input.Portion != nil {
		portion = *input.Portion
	}

	leftover := &models.Leftover{
		ID:              uuid.New(),
		Name:            input.Name,
		Description:     input.Description,
		Portion:         portion,
		StorageLocation: input.StorageLocation,
		StoredDate:      time.Now(),
		ExpiryDate:      expiryDate,
		Tags:            models.StringList(input.Tags),
		Consumed:        false,
	}

	if err := s.db.WithContext(ctx).Create(leftover).Error; err != nil {
		return nil, fmt.Errorf("Failed to create leftover: %w", err)
	}
	return leftover, nil
}

// Update applies a partial update. Only fields present in the input are
// touched; everything else keeps its prior value.
func (s *LeftoverService) Update(ctx context.Context, id string, input types.LeftoverUpdateInput) (*models.Leftover, error) {
	leftover, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Portion != nil {
		updates["portion"] = *input.Portion
	}
	if input.StorageLocation != nil {
		updates["storage_location"] = *input.StorageLocation
	}
	if input.ExpiryDate != nil {
		expiryDate, err := types.ParseEpochMillis(*input.ExpiryDate)
		if err != nil {
			return nil, types.ErrInvalidExpiryDate
		}
		updates["expiry_date"] = expiryDate
	}
	if input.Tags != nil {
		updates["tags"] = models.StringList(*input.Tags)
	}
	if input.Consumed != nil {
		updates["consumed"] = *input.Consumed
	}
	if input.ConsumedDate != nil {
		consumedDate, err := types.ParseEpochMillis(*input.ConsumedDate)
		if err != nil {
			return nil, types.ErrInvalidConsumedDate
		}
		updates["consumed_date"] = consumedDate
	}

	if len(updates) == 0 {
		return leftover, nil
	}

	if err := s.db.WithContext(ctx).Model(leftover).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("Failed to update leftover: %w", err)
	}
	return s.Get(ctx, id)
}

// Delete removes a leftover. It reports whether a row was removed and does
// not treat a missing row as an error.
func (s *LeftoverService) Delete(ctx context.Context, id string) (bool, error) {
	result := s.db.WithContext(ctx).Delete(&models.Leftover{}, "id = ?", id)
	if result.Error != nil {
		return false, fmt.Errorf("Failed to delete leftover: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Consume marks a leftover as consumed with the current timestamp. The
// portion count is deliberately left untouched so callers can still read
// how much was left when the item was written off.
func (s *LeftoverService) Consume(ctx context.Context, id string) (*models.Leftover, error) {
	leftover, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"consumed":      true,
		"consumed_date": now,
	}
	if err := s.db.WithContext(ctx).Model(leftover).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("Failed to consume leftover: %w", err)
	}

	leftover.Consumed = true
	leftover.ConsumedDate = &now
	return leftover, nil
}

// ConsumePortion removes amount servings from a leftover. The portion
// clamps at zero rather than going negative; reaching zero marks the
// record consumed and stamps the consumed date. An already-set consumed
// date is never cleared by this call.
func (s *LeftoverService) ConsumePortion(ctx context.Context, id string, amount float64) (*models.Leftover, error) {
	leftover, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if amount <= 0 {
		return nil, types.ErrInvalidAmount
	}

	newPortion := math.Max(0, leftover.Portion-amount)
	isFullyConsumed := newPortion == 0

	updates := map[string]interface{}{
		"portion":  newPortion,
		"consumed": isFullyConsumed,
	}
	leftover.Portion = newPortion
	leftover.Consumed = isFullyConsumed
	if isFullyConsumed {
		now := time.Now()
		updates["consumed_date"] = now
		leftover.ConsumedDate = &now
	}

	if err := s.db.WithContext(ctx).Model(leftover).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("Failed to consume portion: %w", err)
	}
	return leftover, nil
}
