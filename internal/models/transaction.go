package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/money"
	"gorm.io/gorm"
)

// TransactionKind describes whether a transaction took money out of or
// put money into an envelope.
type TransactionKind string

const (
	KindSpend   TransactionKind = "spend"
	KindDeposit TransactionKind = "deposit"
)

// Valid reports whether the kind is known.
func (k TransactionKind) Valid() bool {
	return k == KindSpend || k == KindDeposit
}

var ErrTransactionKindInvalid = errors.New("the transaction kind must be spend or deposit")

// Transaction is the immutable record of a balance change on an
// envelope. Transactions are append only, they are never updated or
// deleted.
type Transaction struct {
	DefaultModel
	Envelope   Envelope        `json:"-"`
	EnvelopeID uuid.UUID       `json:"envelopeId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Amount     money.Amount    `json:"amount" example:"12.34"`
	Kind       TransactionKind `json:"kind" example:"spend"`
	Note       string          `json:"note" example:"Lunch" default:""`
}

// BeforeSave normalizes the note.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)
	return nil
}

// BeforeCreate verifies the reference to the envelope.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Transaction)
	return tx.First(&Envelope{}, toSave.EnvelopeID).Error
}

// AfterSave enforces the transaction invariants.
func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !t.Kind.Valid() {
		return ErrTransactionKindInvalid
	}

	return nil
}
