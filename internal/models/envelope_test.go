package models_test

import (
	"github.com/cashpilot/backend/internal/models"
	"github.com/cashpilot/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAddSpendBelowBudget() {
	account := suite.createTestAccount(models.Account{})
	user := suite.createTestUser(models.User{AccountID: account.ID})

	allocation := suite.submitTestPlan(account.ID, user.ID, types.NewMonth(2026, 6), 1000, []models.PlanCategory{
		{Name: "Food", Budget: decimal.NewFromInt(500)},
	})

	envelope := suite.envelopeFor(allocation, "Food")
	alert, err := envelope.AddSpend(models.DB, user.ID, decimal.NewFromInt(200))
	suite.Require().Nil(err)
	suite.Assert().Nil(alert)
	suite.Assert().True(envelope.Spent.Equal(decimal.NewFromInt(200)), "spent is %s, expected 200", envelope.Spent)
}

func (suite *TestSuiteStandard) TestAddSpendOverBudgetRaisesAlert() {
	account := suite.createTestAccount(models.Account{})
	user := suite.createTestUser(models.User{AccountID: account.ID})

	allocation := suite.submitTestPlan(account.ID, user.ID, types.NewMonth(2026, 6), 1000, []models.PlanCategory{
		{Name: "Food", Budget: decimal.NewFromInt(500)},
	})

	envelope := suite.envelopeFor(allocation, "Food")
	alert, err := envelope.AddSpend(models.DB, user.ID, decimal.NewFromInt(620))
	suite.Require().Nil(err)
	suite.Require().NotNil(alert)

	suite.Assert().True(alert.Overamount.Equal(decimal.NewFromInt(120)), "overamount is %s, expected 120", alert.Overamount)
	suite.Assert().True(alert.AllocatedAmount.Equal(decimal.NewFromInt(500)))
	suite.Assert().True(alert.SpentAmount.Equal(decimal.NewFromInt(620)))
	suite.Assert().Equal(user.ID, alert.UserID)
	suite.Assert().Contains(alert.Message, "Food")

	var count int64
	suite.Require().Nil(models.DB.Model(&models.OverSpendingAlert{}).Where("account_id = ?", account.ID).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestAddSpendAlertsAreNotDeduplicated() {
	account := suite.createTestAccount(models.Account{})
	user := suite.createTestUser(models.User{AccountID: account.ID})

	allocation := suite.submitTestPlan(account.ID, user.ID, types.NewMonth(2026, 6), 1000, []models.PlanCategory{
		{Name: "Food", Budget: decimal.NewFromInt(100)},
	})

	envelope := suite.envelopeFor(allocation, "Food")
	for i := 0; i < 3; i++ {
		alert, err := envelope.AddSpend(models.DB, user.ID, decimal.NewFromInt(60))
		suite.Require().Nil(err)
		if i == 0 {
			suite.Assert().Nil(alert, "first spend stays within budget")
		} else {
			suite.Assert().NotNil(alert, "spend %d exceeds the budget", i+1)
		}
	}

	var count int64
	suite.Require().Nil(models.DB.Model(&models.OverSpendingAlert{}).Where("account_id = ?", account.ID).Count(&count).Error)
	suite.Assert().Equal(int64(2), count)
}

func (suite *TestSuiteStandard) TestReleaseSpendFloorsAtZero() {
	account := suite.createTestAccount(models.Account{})
	user := suite.createTestUser(models.User{AccountID: account.ID})

	allocation := suite.submitTestPlan(account.ID, user.ID, types.NewMonth(2026, 6), 1000, []models.PlanCategory{
		{Name: "Food", Budget: decimal.NewFromInt(500)},
	})

	envelope := suite.envelopeFor(allocation, "Food")
	_, err := envelope.AddSpend(models.DB, user.ID, decimal.NewFromInt(50))
	suite.Require().Nil(err)

	suite.Require().Nil(envelope.ReleaseSpend(models.DB, decimal.NewFromInt(80)))
	suite.Assert().True(envelope.Spent.IsZero(), "spent is %s, expected 0", envelope.Spent)
}

func (suite *TestSuiteStandard) TestSetSpent() {
	account := suite.createTestAccount(models.Account{})
	user := suite.createTestUser(models.User{AccountID: account.ID})

	allocation := suite.submitTestPlan(account.ID, user.ID, types.NewMonth(2026, 6), 1000, []models.PlanCategory{
		{Name: "Food", Budget: decimal.NewFromInt(500)},
	})

	envelope := suite.envelopeFor(allocation, "Food")

	_, err := envelope.SetSpent(models.DB, user.ID, decimal.NewFromInt(-1))
	suite.Assert().ErrorIs(err, models.ErrSpentNegative)

	alert, err := envelope.SetSpent(models.DB, user.ID, decimal.NewFromInt(510))
	suite.Require().Nil(err)
	suite.Require().NotNil(alert)
	suite.Assert().True(alert.Overamount.Equal(decimal.NewFromInt(10)), "overamount is %s, expected 10", alert.Overamount)
	suite.Assert().True(envelope.Spent.Equal(decimal.NewFromInt(510)))
}
