package strategy

import (
	"testing"

	"github.com/rxtech-lab/argo-crypto-trader/internal/logger"
	"github.com/rxtech-lab/argo-crypto-trader/internal/types"
	"github.com/rxtech-lab/argo-crypto-trader/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type RegistryTestSuite struct {
	suite.Suite
	registry Registry
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (suite *RegistryTestSuite) SetupTest() {
	suite.registry = NewDefaultRegistry()
}

func (suite *RegistryTestSuite) TestListBuiltins() {
	suite.Equal([]string{BollingerRSIName, HoldName}, suite.registry.List())
}

func (suite *RegistryTestSuite) TestNewBuildsByName() {
	for _, name := range suite.registry.List() {
		suite.Run(name, func() {
			strategy, err := New(suite.registry, name, DefaultConfig(), logger.NewNopLogger())
			suite.Require().NoError(err)
			suite.Equal(name, strategy.Name())
		})
	}
}

func (suite *RegistryTestSuite) TestUnknownStrategy() {
	_, err := New(suite.registry, "martingale", DefaultConfig(), nil)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeStrategyNotFound))
}

func (suite *RegistryTestSuite) TestDuplicateRegistration() {
	err := suite.registry.Register(HoldName, NewHoldStrategy)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeStrategyAlreadyExists))
}

func (suite *RegistryTestSuite) TestHoldNeverTrades() {
	state := newTestState(flatThen(30, 30, -0.5), map[string]float64{"USDT": 1000})

	action, err := NewHoldStrategy(DefaultConfig(), nil).Decide(state)
	suite.Require().NoError(err)
	suite.Equal(types.ActionTypeNoMoves, action.Type)
	suite.Equal(1000.0, state.Balance("USDT").Unwrap())
}
