package models

import (
	"errors"
	"strings"
	"time"

	"github.com/pocketledger/backend/internal/money"
	"gorm.io/gorm"
)

// EnvelopeMode is the funding policy of an envelope.
type EnvelopeMode string

const (
	// ModeReset refills the envelope to its base amount on every
	// funding pass, no matter how many periods elapsed.
	ModeReset EnvelopeMode = "reset"

	// ModeRollover adds the base amount to the balance once per
	// elapsed period.
	ModeRollover EnvelopeMode = "rollover"
)

// Valid reports whether the mode is one of the known funding policies.
func (m EnvelopeMode) Valid() bool {
	return m == ModeReset || m == ModeRollover
}

var (
	ErrEnvelopeNameEmpty   = errors.New("the envelope name must not be empty")
	ErrEnvelopeModeInvalid = errors.New("the envelope mode must be reset or rollover")
	ErrAmountNotPositive   = errors.New("the amount must be larger than zero")
	ErrPeriodsNotPositive  = errors.New("the funding period count must be larger than zero")
)

// Envelope represents a named budget bucket with a balance and a
// funding rule.
type Envelope struct {
	DefaultModel
	Name       string       `json:"name" example:"Dining"`
	Balance    money.Amount `json:"balance" example:"37.66"`
	BaseAmount money.Amount `json:"baseAmount" example:"50.00"`
	Mode       EnvelopeMode `json:"mode" example:"reset"`
	Archived   bool         `json:"archived" example:"false"`
	ArchivedAt *time.Time   `json:"archivedAt"`
}

// BeforeSave validates and normalizes the envelope.
func (e *Envelope) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return ErrEnvelopeNameEmpty
	}

	if !e.Mode.Valid() {
		return ErrEnvelopeModeInvalid
	}

	return nil
}

// Spend removes the amount from the balance and returns the matching
// transaction record. The balance may become negative, there is no
// sufficiency check.
func (e *Envelope) Spend(amount money.Amount, note string) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, ErrAmountNotPositive
	}

	e.Balance = e.Balance.Sub(amount)

	return Transaction{
		EnvelopeID: e.ID,
		Amount:     amount,
		Kind:       KindSpend,
		Note:       note,
	}, nil
}

// Deposit adds the amount to the balance and returns the matching
// transaction record.
func (e *Envelope) Deposit(amount money.Amount, note string) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, ErrAmountNotPositive
	}

	e.Balance = e.Balance.Add(amount)

	return Transaction{
		EnvelopeID: e.ID,
		Amount:     amount,
		Kind:       KindDeposit,
		Note:       note,
	}, nil
}

// ApplyFunding applies the funding for the given number of elapsed
// periods.
//
// Reset envelopes are refilled to exactly their base amount, even when
// several periods are being caught up. Rollover envelopes accumulate
// the base amount once per period.
func (e *Envelope) ApplyFunding(periods int) error {
	if periods <= 0 {
		return ErrPeriodsNotPositive
	}

	switch e.Mode {
	case ModeReset:
		e.Balance = e.BaseAmount
	case ModeRollover:
		e.Balance = e.Balance.Add(e.BaseAmount.MulPeriods(periods))
	default:
		return ErrEnvelopeModeInvalid
	}

	return nil
}

// Archive marks the envelope as archived. Archiving an archived
// envelope is a no-op, the original archival time is kept.
func (e *Envelope) Archive(now time.Time) {
	if e.Archived {
		return
	}

	e.Archived = true
	archivedAt := now.In(time.UTC)
	e.ArchivedAt = &archivedAt
}

// Transactions returns all transactions of this envelope in insertion
// order.
func (e Envelope) Transactions(db *gorm.DB) ([]Transaction, error) {
	var transactions []Transaction

	err := db.Where(&Transaction{EnvelopeID: e.ID}).Order("created_at ASC, id ASC").Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
