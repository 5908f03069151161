package models_test

import (
	"github.com/cashpilot/backend/internal/models"
	"github.com/cashpilot/backend/test"
)

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	err := models.Connect("/not/a/writable/path/cashpilot.db")
	suite.Assert().NotNil(err)

	// Restore a working connection for the teardown
	suite.Require().Nil(models.Connect(test.TmpFile(suite.T())))
}

func (suite *TestSuiteStandard) TestClosedDatabaseReturnsGeneralError() {
	suite.CloseDB()

	var accounts []models.Account
	err := models.DB.Find(&accounts).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	suite.Require().Nil(models.Connect(test.TmpFile(suite.T())))
}
