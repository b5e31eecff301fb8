package ledger_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCreateEnvelope() {
	envelope, err := ledger.CreateEnvelope(models.DB, "Groceries", amount(suite.T(), "450.00"), models.ModeReset)
	suite.Require().NoError(err)

	suite.Assert().NotEqual(uuid.Nil, envelope.ID)
	suite.Assert().Equal("Groceries", envelope.Name)
	suite.Assert().Equal("450.00", envelope.Balance.String(), "the initial balance must equal the base amount")
	suite.Assert().Equal("450.00", envelope.BaseAmount.String())
	suite.Assert().Equal(models.ModeReset, envelope.Mode)
	suite.Assert().False(envelope.Archived)
}

func (suite *TestSuiteStandard) TestCreateEnvelopeInvalid() {
	_, err := ledger.CreateEnvelope(models.DB, "", amount(suite.T(), "10.00"), models.ModeReset)
	suite.Assert().ErrorIs(err, models.ErrEnvelopeNameEmpty)

	_, err = ledger.CreateEnvelope(models.DB, "Rent", amount(suite.T(), "10.00"), "weekly")
	suite.Assert().ErrorIs(err, models.ErrEnvelopeModeInvalid)
}

func (suite *TestSuiteStandard) TestRecordSpend() {
	envelope := suite.createTestEnvelope(models.Envelope{
		Balance:    amount(suite.T(), "50.00"),
		BaseAmount: amount(suite.T(), "50.00"),
	})

	updated, transaction, err := ledger.RecordSpend(models.DB, envelope.ID, amount(suite.T(), "12.34"), "lunch")
	suite.Require().NoError(err)

	suite.Assert().Equal("37.66", updated.Balance.String())
	suite.Assert().Equal(models.KindSpend, transaction.Kind)
	suite.Assert().Equal("lunch", transaction.Note)

	// Both the balance change and the transaction must be persisted
	var dbEnvelope models.Envelope
	suite.Require().NoError(models.DB.First(&dbEnvelope, envelope.ID).Error)
	suite.Assert().Equal("37.66", dbEnvelope.Balance.String())

	var count int64
	suite.Require().NoError(models.DB.Model(&models.Transaction{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestRecordDeposit() {
	envelope := suite.createTestEnvelope(models.Envelope{
		Balance: amount(suite.T(), "50.00"),
	})

	updated, transaction, err := ledger.RecordDeposit(models.DB, envelope.ID, amount(suite.T(), "8.50"), "")
	suite.Require().NoError(err)

	suite.Assert().Equal("58.50", updated.Balance.String())
	suite.Assert().Equal(models.KindDeposit, transaction.Kind)
}

func (suite *TestSuiteStandard) TestRecordNoEnvelope() {
	_, _, err := ledger.RecordSpend(models.DB, uuid.New(), amount(suite.T(), "1.00"), "")
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

// A rejected amount must leave neither a balance change nor a
// transaction record behind.
func (suite *TestSuiteStandard) TestRecordRollsBack() {
	envelope := suite.createTestEnvelope(models.Envelope{
		Balance: amount(suite.T(), "50.00"),
	})

	_, _, err := ledger.RecordSpend(models.DB, envelope.ID, amount(suite.T(), "-5.00"), "")
	suite.Require().ErrorIs(err, models.ErrAmountNotPositive)

	var dbEnvelope models.Envelope
	suite.Require().NoError(models.DB.First(&dbEnvelope, envelope.ID).Error)
	suite.Assert().Equal("50.00", dbEnvelope.Balance.String())

	var count int64
	suite.Require().NoError(models.DB.Model(&models.Transaction{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestArchiveEnvelope() {
	envelope := suite.createTestEnvelope(models.Envelope{})

	archived, err := ledger.ArchiveEnvelope(models.DB, envelope.ID, time.Now())
	suite.Require().NoError(err)
	suite.Require().True(archived.Archived)
	suite.Require().NotNil(archived.ArchivedAt)

	// A second archival succeeds and keeps the original timestamp
	again, err := ledger.ArchiveEnvelope(models.DB, envelope.ID, time.Now().Add(time.Hour))
	suite.Require().NoError(err)
	suite.Assert().WithinDuration(*archived.ArchivedAt, *again.ArchivedAt, time.Second)
}

func (suite *TestSuiteStandard) TestArchiveEnvelopeNotFound() {
	_, err := ledger.ArchiveEnvelope(models.DB, uuid.New(), time.Now())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
