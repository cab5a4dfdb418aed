package strategy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rxtech-lab/argo-crypto-trader/internal/version"
	"github.com/rxtech-lab/argo-crypto-trader/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestDefaultConfigIsValid() {
	config := DefaultConfig()
	suite.NoError(config.Validate())
	suite.Equal(version.GetVersion(), config.Version)
	suite.Equal([]int{7, 14, 21, 50, 200}, config.EMAPeriods)
	suite.Equal(21, config.TrendEMAPeriod)
	suite.Equal(0.05, config.BuyFraction)
}

func (suite *ConfigTestSuite) TestParseEmptyKeepsDefaults() {
	config, err := ParseConfig(nil)
	suite.Require().NoError(err)
	suite.Equal(DefaultConfig(), config)
}

func (suite *ConfigTestSuite) TestParseOverridesOnlyGivenKeys() {
	config, err := ParseConfig([]byte(`
pair: USDT_ETH
base_asset: ETH
ema_periods: [7, 14, 21, 50]
rsi_buy_threshold: 30
`))
	suite.Require().NoError(err)

	suite.Equal("USDT_ETH", config.Pair)
	suite.Equal("ETH", config.BaseAsset)
	suite.Equal("USDT", config.QuoteCurrency)
	suite.Equal([]int{7, 14, 21, 50}, config.EMAPeriods)
	suite.Equal(30.0, config.RSIBuyThreshold)
	suite.Equal(35.0, config.RSISellThreshold)
	suite.Equal(10, config.DowntrendLookback)
}

func (suite *ConfigTestSuite) TestParseErrors() {
	tests := []struct {
		name string
		yaml string
		code errors.ErrorCode
	}{
		{"malformed yaml", "pair: [unterminated", errors.ErrCodeConfigParseFailed},
		{"wrong type", "bollinger_period: thirty", errors.ErrCodeConfigParseFailed},
		{"buy fraction above one", "buy_fraction: 1.5", errors.ErrCodeInvalidConfiguration},
		{"zero rsi period", "rsi_period: 0", errors.ErrCodeInvalidConfiguration},
		{"negative ema period", "ema_periods: [7, -1]\ntrend_ema_period: 7", errors.ErrCodeInvalidConfiguration},
		{"empty ema periods", "ema_periods: []", errors.ErrCodeInvalidConfiguration},
		{"trend ema not computed", "trend_ema_period: 30", errors.ErrCodeInvalidConfiguration},
		{"same quote and base", "base_asset: USDT", errors.ErrCodeInvalidConfiguration},
		{"safety margin of one", "safety_margin: 1", errors.ErrCodeInvalidConfiguration},
		{"major version mismatch", "version: v99.0.0", errors.ErrCodeVersionMismatch},
		{"invalid version", "version: latest", errors.ErrCodeInvalidVersion},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			_, err := ParseConfig([]byte(tc.yaml))
			suite.Require().Error(err)
			suite.True(errors.HasCode(err, tc.code), "got %v", err)
		})
	}
}

func (suite *ConfigTestSuite) TestMainVersionSkipsCheck() {
	config, err := ParseConfig([]byte("version: main"))
	suite.Require().NoError(err)
	suite.Equal("main", config.Version)
}

func (suite *ConfigTestSuite) TestLoadConfig() {
	path := filepath.Join(suite.T().TempDir(), "strategy.yaml")
	suite.Require().NoError(os.WriteFile(path, []byte("min_quote_balance: 250\n"), 0o600))

	config, err := LoadConfig(path)
	suite.Require().NoError(err)
	suite.Equal(250.0, config.MinQuoteBalance)
}

func (suite *ConfigTestSuite) TestLoadConfigMissingFile() {
	_, err := LoadConfig(filepath.Join(suite.T().TempDir(), "missing.yaml"))
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeConfigReadFailed))
}

func (suite *ConfigTestSuite) TestConfigSchema() {
	schema, err := ConfigSchema()
	suite.Require().NoError(err)
	suite.Contains(schema, `"ema_periods"`)
	suite.Contains(schema, `"buy_fraction"`)
	suite.Contains(schema, "Safety Margin")
}

func (suite *ConfigTestSuite) TestToJSONSchema() {
	type TestConfig struct {
		FastPeriod int    `json:"fastPeriod" jsonschema:"title=Fast Period,description=The period for the fast moving average,minimum=1,default=5"`
		SlowPeriod int    `json:"slowPeriod" jsonschema:"title=Slow Period,description=The period for the slow moving average,minimum=1,default=20"`
		Symbol     string `json:"symbol" jsonschema:"title=Symbol,description=The symbol to trade,default=USDT_BTC"`
	}

	schema, err := ToJSONSchema(TestConfig{})
	suite.NoError(err)
	suite.Contains(schema, "fastPeriod")
}
