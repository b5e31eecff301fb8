package models

import (
	"errors"

	"github.com/pocketledger/backend/internal/types"
	"gorm.io/gorm"
)

// SystemState is the process wide funding watermark. Exactly one row
// exists at any time.
type SystemState struct {
	Timestamps
	ID              uint        `json:"-" gorm:"primaryKey"`
	LastFundedMonth types.Month `json:"lastFundedMonth" example:"2025-03"`
}

// FetchSystemState returns the singleton row. If it does not exist
// yet, it is created with the given month as watermark. The second
// return value reports whether the row was created.
func FetchSystemState(db *gorm.DB, current types.Month) (SystemState, bool, error) {
	var state SystemState

	err := db.Order("id ASC").First(&state).Error
	if err == nil {
		return state, false, nil
	}

	if !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
		return SystemState{}, false, err
	}

	state = SystemState{LastFundedMonth: current}
	if err := db.Create(&state).Error; err != nil {
		return SystemState{}, false, err
	}

	return state, true, nil
}
