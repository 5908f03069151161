package models_test

import (
	"github.com/cashpilot/backend/internal/models"
)

func (suite *TestSuiteStandard) TestResolveCategoryCreatesOnce() {
	account := suite.createTestAccount(models.Account{})

	first, err := models.ResolveCategory(models.DB, account.ID, "Food")
	suite.Require().Nil(err)

	// Resolution is case-insensitive and trims whitespace
	second, err := models.ResolveCategory(models.DB, account.ID, "  fOOd ")
	suite.Require().Nil(err)

	suite.Assert().Equal(first.ID, second.ID)
	suite.Assert().Equal("Food", second.Name, "the original spelling wins")

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Category{}).Where("account_id = ?", account.ID).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestResolveCategoryEmptyName() {
	account := suite.createTestAccount(models.Account{})

	_, err := models.ResolveCategory(models.DB, account.ID, "   ")
	suite.Assert().ErrorIs(err, models.ErrCategoryNameMissing)
}

func (suite *TestSuiteStandard) TestResolveCategoryScopedToAccount() {
	one := suite.createTestAccount(models.Account{})
	two := suite.createTestAccount(models.Account{})

	first, err := models.ResolveCategory(models.DB, one.ID, "Food")
	suite.Require().Nil(err)

	second, err := models.ResolveCategory(models.DB, two.ID, "Food")
	suite.Require().Nil(err)

	suite.Assert().NotEqual(first.ID, second.ID)
}
