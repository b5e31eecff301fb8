package models_test

import (
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
)

func (suite *TestSuiteStandard) TestTransactionTrimWhitespace() {
	note := " lunch at the corner place \t"

	envelope := suite.createTestEnvelope(models.Envelope{})
	transaction := suite.createTestTransaction(models.Transaction{
		EnvelopeID: envelope.ID,
		Amount:     amount(suite.T(), "4.20"),
		Kind:       models.KindSpend,
		Note:       note,
	})

	suite.Assert().Equal("lunch at the corner place", transaction.Note)
}

func (suite *TestSuiteStandard) TestTransactionEnvelopeMissing() {
	err := models.DB.Create(&models.Transaction{
		EnvelopeID: uuid.New(),
		Amount:     amount(suite.T(), "1.00"),
		Kind:       models.KindSpend,
	}).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionAmountNotPositive() {
	envelope := suite.createTestEnvelope(models.Envelope{})

	for _, raw := range []string{"0", "-10.00"} {
		err := models.DB.Create(&models.Transaction{
			EnvelopeID: envelope.ID,
			Amount:     amount(suite.T(), raw),
			Kind:       models.KindDeposit,
		}).Error

		suite.Assert().ErrorIs(err, models.ErrAmountNotPositive, "amount %s must be rejected", raw)
	}
}

func (suite *TestSuiteStandard) TestTransactionKindInvalid() {
	envelope := suite.createTestEnvelope(models.Envelope{})

	err := models.DB.Create(&models.Transaction{
		EnvelopeID: envelope.ID,
		Amount:     amount(suite.T(), "1.00"),
		Kind:       "transfer",
	}).Error

	suite.Assert().ErrorIs(err, models.ErrTransactionKindInvalid)
}

// Amounts are stored with exactly two decimal places, inputs with more
// are rounded half away from zero.
func (suite *TestSuiteStandard) TestTransactionAmountQuantized() {
	envelope := suite.createTestEnvelope(models.Envelope{})
	created := suite.createTestTransaction(models.Transaction{
		EnvelopeID: envelope.ID,
		Amount:     amount(suite.T(), "12.345"),
		Kind:       models.KindSpend,
	})

	var transaction models.Transaction
	suite.Require().NoError(models.DB.First(&transaction, created.ID).Error)

	suite.Assert().Equal("12.35", transaction.Amount.String())
}
