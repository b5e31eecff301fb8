package ledger

import (
	"errors"
	"time"

	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"gorm.io/gorm"
)

// SyncResult describes the outcome of a funding pass.
type SyncResult struct {
	FirstRun bool        `json:"firstRun" example:"false"`          // Whether this pass established the watermark without funding
	Periods  int         `json:"periods" example:"2"`               // Number of whole months funded, 0 for a no-op
	Funded   int         `json:"funded" example:"7"`                // Number of envelopes that received funding
	Month    types.Month `json:"lastFundedMonth" example:"2025-03"` // The watermark after the pass
}

// SyncFunding applies funding for every whole month elapsed since the
// last pass and advances the watermark, all in one transaction.
//
// The first call ever only establishes the watermark, nothing is
// funded on a fresh install. Repeated calls within the same month are
// no-ops, as are calls when the clock moved backwards, so the sync can
// be run on every process start and on a schedule.
//
// All envelopes are funded, archived ones included.
func SyncFunding(db *gorm.DB, now time.Time) (SyncResult, error) {
	current := types.MonthOf(now.In(time.UTC))
	result := SyncResult{Month: current}

	err := db.Transaction(func(tx *gorm.DB) error {
		state, created, err := models.FetchSystemState(tx, current)
		if err != nil {
			return err
		}

		if created {
			result.FirstRun = true
			return nil
		}

		gap := current.Sub(state.LastFundedMonth)
		if gap <= 0 {
			result.Month = state.LastFundedMonth
			return nil
		}

		var envelopes []models.Envelope
		if err := tx.Find(&envelopes).Error; err != nil {
			return err
		}

		for i := range envelopes {
			if err := envelopes[i].ApplyFunding(gap); err != nil {
				return err
			}

			if err := tx.Save(&envelopes[i]).Error; err != nil {
				return err
			}
		}

		state.LastFundedMonth = current
		if err := tx.Save(&state).Error; err != nil {
			return err
		}

		result.Periods = gap
		result.Funded = len(envelopes)
		return nil
	})
	if err != nil {
		return SyncResult{}, err
	}

	return result, nil
}

// LastFundedMonth returns the current funding watermark. The second
// return value is false when no funding pass has ever run.
func LastFundedMonth(db *gorm.DB) (types.Month, bool, error) {
	var state models.SystemState

	err := db.Order("id ASC").First(&state).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			return types.Month{}, false, nil
		}
		return types.Month{}, false, err
	}

	return state.LastFundedMonth, true, nil
}
