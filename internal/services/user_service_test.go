package services_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arblab/arbdash/internal/models"
	"github.com/arblab/arbdash/internal/services"
)

type UserServiceTestSuite struct {
	suite.Suite
	db      services.DBService
	service services.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	db, err := services.NewSqliteDBService(":memory:")
	suite.Require().NoError(err)
	suite.db = db
	suite.service = services.NewUserService(db.GetDB())
}

func (suite *UserServiceTestSuite) TearDownTest() {
	suite.db.Close()
}

func (suite *UserServiceTestSuite) TestCreateAndGet() {
	user := &models.User{Username: "operator", Password: "secret", IsAdmin: true}
	suite.Require().NoError(suite.service.CreateUser(user))
	suite.NotZero(user.ID)

	byID, err := suite.service.GetUser(user.ID)
	suite.Require().NoError(err)
	suite.Equal("operator", byID.Username)

	byName, err := suite.service.GetUserByUsername("operator")
	suite.Require().NoError(err)
	suite.Equal(user.ID, byName.ID)
	suite.True(byName.IsAdmin)
}

func (suite *UserServiceTestSuite) TestGetMissing() {
	_, err := suite.service.GetUser(42)
	suite.ErrorIs(err, services.ErrNotFound)

	_, err = suite.service.GetUserByUsername("ghost")
	suite.ErrorIs(err, services.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestDuplicateUsername() {
	suite.Require().NoError(suite.service.CreateUser(&models.User{Username: "operator", Password: "a"}))
	err := suite.service.CreateUser(&models.User{Username: "operator", Password: "b"})
	suite.ErrorIs(err, services.ErrDuplicate)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
