package services_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/arblab/arbdash/internal/models"
	"github.com/arblab/arbdash/internal/services"
)

type StatusServiceTestSuite struct {
	suite.Suite
	db      services.DBService
	service services.StatusService
}

func (suite *StatusServiceTestSuite) SetupTest() {
	db, err := services.NewSqliteDBService(":memory:")
	suite.Require().NoError(err)
	suite.db = db
	suite.service = services.NewStatusService(db.GetDB())
}

func (suite *StatusServiceTestSuite) TearDownTest() {
	suite.db.Close()
}

func (suite *StatusServiceTestSuite) TestGetBotStatusEmpty() {
	_, err := suite.service.GetBotStatus()
	suite.ErrorIs(err, services.ErrNotFound)
}

func (suite *StatusServiceTestSuite) TestUpdateThenGetRoundTrip() {
	before := time.Now()
	tradeTime := before.Unix()

	update := services.BotStatusUpdate{
		Status:        statePtr(models.BotStateRunning),
		IsFrozen:      ptr(false),
		LastTradeTime: &tradeTime,
		TotalRevenue:  ptr("1000000"),
		TotalLoss:     ptr("0"),
		LastProfit:    ptr("0"),
	}
	created, err := suite.service.UpdateBotStatus(update)
	suite.Require().NoError(err)
	suite.Equal(models.BotStateRunning, created.Status)
	suite.False(created.IsFrozen)
	suite.Equal("1000000", created.TotalRevenue)
	suite.False(created.UpdatedAt.Before(before.Truncate(time.Second)))

	stored, err := suite.service.GetBotStatus()
	suite.Require().NoError(err)
	suite.Equal(created.ID, stored.ID)
	suite.Equal(models.BotStateRunning, stored.Status)
	suite.Equal(tradeTime, stored.LastTradeTime.Unix())
}

func (suite *StatusServiceTestSuite) TestFirstWriteDefaultsLastTradeTime() {
	before := time.Now()
	created, err := suite.service.UpdateBotStatus(services.BotStatusUpdate{
		Status: statePtr(models.BotStateIdle),
	})
	suite.Require().NoError(err)
	suite.False(created.LastTradeTime.Before(before.Truncate(time.Second)))
	suite.WithinDuration(time.Now(), created.LastTradeTime, 5*time.Second)

	stored, err := suite.service.GetBotStatus()
	suite.Require().NoError(err)
	suite.WithinDuration(created.LastTradeTime, stored.LastTradeTime, time.Second)
}

func (suite *StatusServiceTestSuite) TestFirstWritePinsSingletonRow() {
	created, err := suite.service.UpdateBotStatus(services.BotStatusUpdate{
		Status: statePtr(models.BotStateRunning),
	})
	suite.Require().NoError(err)
	suite.Equal(uint(1), created.ID)
}

func (suite *StatusServiceTestSuite) TestSecondUpdateMutatesSameRow() {
	first, err := suite.service.UpdateBotStatus(services.BotStatusUpdate{
		Status: statePtr(models.BotStateIdle),
	})
	suite.Require().NoError(err)

	second, err := suite.service.UpdateBotStatus(services.BotStatusUpdate{
		Status:     statePtr(models.BotStatePaused),
		LastProfit: ptr("320000000"),
	})
	suite.Require().NoError(err)
	suite.Equal(first.ID, second.ID)
	suite.Equal(models.BotStatePaused, second.Status)
	suite.Equal("320000000", second.LastProfit)

	var count int64
	suite.db.GetDB().Model(&models.BotStatus{}).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *StatusServiceTestSuite) TestPartialUpdateKeepsOtherFields() {
	_, err := suite.service.UpdateBotStatus(services.BotStatusUpdate{
		Status:       statePtr(models.BotStateRunning),
		TotalRevenue: ptr("5000"),
	})
	suite.Require().NoError(err)

	updated, err := suite.service.UpdateBotStatus(services.BotStatusUpdate{
		Status: statePtr(models.BotStateScanning),
	})
	suite.Require().NoError(err)
	suite.Equal(models.BotStateScanning, updated.Status)
	suite.Equal("5000", updated.TotalRevenue)
}

func (suite *StatusServiceTestSuite) TestConcurrentFirstWritesSingleRow() {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(state models.BotState) {
			defer wg.Done()
			_, err := suite.service.UpdateBotStatus(services.BotStatusUpdate{
				Status: statePtr(state),
			})
			suite.NoError(err)
		}(models.BotState(i % 6))
	}
	wg.Wait()

	var count int64
	suite.db.GetDB().Model(&models.BotStatus{}).Count(&count)
	suite.Equal(int64(1), count)
}

func statePtr(s models.BotState) *models.BotState {
	return &s
}

func ptr[T any](v T) *T {
	return &v
}

func TestStatusServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatusServiceTestSuite))
}
