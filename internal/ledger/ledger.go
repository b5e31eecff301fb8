// Package ledger implements the operations external callers use to
// work with envelopes.
//
// Every operation runs as a single database transaction: either the
// balance change, the transaction record and the state update are all
// persisted, or none of them are. Callers are expected to serialize
// writes to the same envelope, the ledger itself does not lock.
package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/money"
	"gorm.io/gorm"
)

// CreateEnvelope creates a new envelope. The balance starts out at the
// base amount.
func CreateEnvelope(db *gorm.DB, name string, baseAmount money.Amount, mode models.EnvelopeMode) (models.Envelope, error) {
	envelope := models.Envelope{
		Name:       name,
		Balance:    baseAmount,
		BaseAmount: baseAmount,
		Mode:       mode,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&envelope).Error
	})
	if err != nil {
		return models.Envelope{}, err
	}

	return envelope, nil
}

// RecordFunc is the signature shared by RecordSpend and RecordDeposit.
type RecordFunc func(*gorm.DB, uuid.UUID, money.Amount, string) (models.Envelope, models.Transaction, error)

// RecordSpend takes the amount out of the envelope and appends the
// matching spend transaction.
func RecordSpend(db *gorm.DB, id uuid.UUID, amount money.Amount, note string) (models.Envelope, models.Transaction, error) {
	return record(db, id, amount, note, (*models.Envelope).Spend)
}

// RecordDeposit puts the amount into the envelope and appends the
// matching deposit transaction.
func RecordDeposit(db *gorm.DB, id uuid.UUID, amount money.Amount, note string) (models.Envelope, models.Transaction, error) {
	return record(db, id, amount, note, (*models.Envelope).Deposit)
}

func record(db *gorm.DB, id uuid.UUID, amount money.Amount, note string, op func(*models.Envelope, money.Amount, string) (models.Transaction, error)) (models.Envelope, models.Transaction, error) {
	var envelope models.Envelope
	var transaction models.Transaction

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&envelope, id).Error; err != nil {
			return err
		}

		t, err := op(&envelope, amount, note)
		if err != nil {
			return err
		}

		if err := tx.Save(&envelope).Error; err != nil {
			return err
		}

		transaction = t
		return tx.Create(&transaction).Error
	})
	if err != nil {
		return models.Envelope{}, models.Transaction{}, err
	}

	return envelope, transaction, nil
}

// ArchiveEnvelope archives the envelope. Archiving an already archived
// envelope succeeds without changing it.
func ArchiveEnvelope(db *gorm.DB, id uuid.UUID, now time.Time) (models.Envelope, error) {
	var envelope models.Envelope

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&envelope, id).Error; err != nil {
			return err
		}

		if envelope.Archived {
			return nil
		}

		envelope.Archive(now)
		return tx.Save(&envelope).Error
	})
	if err != nil {
		return models.Envelope{}, err
	}

	return envelope, nil
}
