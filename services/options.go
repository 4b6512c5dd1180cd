package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"product_slider_app_go/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// maxUpdateAttempts bounds the optimistic retry loop in OptionStore.Update
const maxUpdateAttempts = 5

var (
	ErrOptionNotFound   = errors.New("option not found")
	ErrConcurrentUpdate = errors.New("option was modified concurrently")
)

// OptionStore persists named JSON values in the options table
type OptionStore struct {
	db *gorm.DB
}

// NewOptionStore creates a new option store
func NewOptionStore(db *gorm.DB) *OptionStore {
	return &OptionStore{db: db}
}

// Get decodes the option into dest. Returns ErrOptionNotFound when the option does not exist.
func (s *OptionStore) Get(ctx context.Context, name string, dest interface{}) error {
	var opt models.Option
	err := s.db.WithContext(ctx).Where("option_name = ?", name).First(&opt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOptionNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read option %s: %w", name, err)
	}

	if err := json.Unmarshal(opt.Value, dest); err != nil {
		return fmt.Errorf("failed to decode option %s: %w", name, err)
	}
	return nil
}

// Exists reports whether the option has been created
func (s *OptionStore) Exists(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Option{}).Where("option_name = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check option %s: %w", name, err)
	}
	return count > 0, nil
}

// Add creates the option only if it does not exist yet. Reports whether it was created.
func (s *OptionStore) Add(ctx context.Context, name string, value interface{}) (bool, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("failed to encode option %s: %w", name, err)
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Option{Name: name, Value: datatypes.JSON(raw), Version: 1, Autoload: true})
	if result.Error != nil {
		return false, fmt.Errorf("failed to add option %s: %w", name, result.Error)
	}
	return result.RowsAffected == 1, nil
}

// Set overwrites the option, creating it when missing
func (s *OptionStore) Set(ctx context.Context, name string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode option %s: %w", name, err)
	}
	return s.Update(ctx, name, func([]byte) ([]byte, error) {
		return raw, nil
	})
}

// Update performs a versioned read-modify-write of the option.
// apply receives the current raw value (nil when the option is missing) and returns the new one.
// If another writer changed the row in between, the cycle is retried against the fresh value,
// so apply must not keep state across calls.
func (s *OptionStore) Update(ctx context.Context, name string, apply func(current []byte) ([]byte, error)) error {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		var opt models.Option
		err := s.db.WithContext(ctx).Where("option_name = ?", name).First(&opt).Error
		exists := true
		if errors.Is(err, gorm.ErrRecordNotFound) {
			exists = false
		} else if err != nil {
			return fmt.Errorf("failed to read option %s: %w", name, err)
		}

		var current []byte
		if exists {
			current = opt.Value
		}

		next, err := apply(current)
		if err != nil {
			return err
		}

		if !exists {
			result := s.db.WithContext(ctx).
				Clauses(clause.OnConflict{DoNothing: true}).
				Create(&models.Option{Name: name, Value: datatypes.JSON(next), Version: 1, Autoload: true})
			if result.Error != nil {
				return fmt.Errorf("failed to create option %s: %w", name, result.Error)
			}
			if result.RowsAffected == 1 {
				return nil
			}
			continue
		}

		result := s.db.WithContext(ctx).
			Model(&models.Option{}).
			Where("option_name = ? AND version = ?", name, opt.Version).
			Updates(map[string]interface{}{
				"option_value": datatypes.JSON(next),
				"version":      opt.Version + 1,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to write option %s: %w", name, result.Error)
		}
		if result.RowsAffected == 1 {
			return nil
		}
	}

	return ErrConcurrentUpdate
}

// Delete removes the option if present
func (s *OptionStore) Delete(ctx context.Context, name string) error {
	if err := s.db.WithContext(ctx).Where("option_name = ?", name).Delete(&models.Option{}).Error; err != nil {
		return fmt.Errorf("failed to delete option %s: %w", name, err)
	}
	return nil
}
