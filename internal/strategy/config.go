package strategy

import (
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-crypto-trader/internal/version"
	"github.com/rxtech-lab/argo-crypto-trader/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the tunable parameters of the Bollinger/RSI strategy.
// DefaultConfig reproduces the stock rule set.
type Config struct {
	Version           string  `yaml:"version" json:"version" validate:"required" jsonschema:"title=Version,description=Bot version the file was written for; major and minor must match the running bot"`
	Pair              string  `yaml:"pair" json:"pair" validate:"required" jsonschema:"title=Pair,description=Traded pair as sent in next_candles,default=USDT_BTC"`
	QuoteCurrency     string  `yaml:"quote_currency" json:"quote_currency" validate:"required" jsonschema:"title=Quote Currency,description=Stack symbol spent on buys,default=USDT"`
	BaseAsset         string  `yaml:"base_asset" json:"base_asset" validate:"required,nefield=QuoteCurrency" jsonschema:"title=Base Asset,description=Stack symbol bought and sold,default=BTC"`
	EMAPeriods        []int   `yaml:"ema_periods" json:"ema_periods" validate:"required,min=1,dive,gt=0" jsonschema:"title=EMA Periods,description=Every EMA that must be available before trading"`
	TrendEMAPeriod    int     `yaml:"trend_ema_period" json:"trend_ema_period" validate:"gt=0" jsonschema:"title=Trend EMA Period,description=EMA the close is compared against; must be listed in ema_periods,minimum=1,default=21"`
	BollingerPeriod   int     `yaml:"bollinger_period" json:"bollinger_period" validate:"gt=0" jsonschema:"title=Bollinger Period,minimum=1,default=30"`
	RSIPeriod         int     `yaml:"rsi_period" json:"rsi_period" validate:"gt=0" jsonschema:"title=RSI Period,minimum=1,default=30"`
	MomentumPeriod    int     `yaml:"momentum_period" json:"momentum_period" validate:"gt=0" jsonschema:"title=Momentum Divergence Period,minimum=1,default=14"`
	SafetyMargin      float64 `yaml:"safety_margin" json:"safety_margin" validate:"gte=0,lt=1" jsonschema:"title=Safety Margin,description=Fraction the bands are pulled toward the mean,minimum=0,default=0.1"`
	RSIBuyThreshold   float64 `yaml:"rsi_buy_threshold" json:"rsi_buy_threshold" validate:"gte=0,lte=100" jsonschema:"title=RSI Buy Threshold,description=Buy only when RSI is below this value,minimum=0,maximum=100,default=35"`
	RSISellThreshold  float64 `yaml:"rsi_sell_threshold" json:"rsi_sell_threshold" validate:"gte=0,lte=100" jsonschema:"title=RSI Sell Threshold,description=Sell only when RSI is above this value,minimum=0,maximum=100,default=35"`
	MinQuoteBalance   float64 `yaml:"min_quote_balance" json:"min_quote_balance" validate:"gte=0" jsonschema:"title=Minimum Quote Balance,description=Buy only when the quote stack exceeds this amount,minimum=0,default=100"`
	BuyFraction       float64 `yaml:"buy_fraction" json:"buy_fraction" validate:"gt=0,lte=1" jsonschema:"title=Buy Fraction,description=Fraction of the affordable base quantity bought per signal,default=0.05"`
	DowntrendLookback int     `yaml:"downtrend_lookback" json:"downtrend_lookback" validate:"gt=0" jsonschema:"title=Downtrend Lookback,description=Number of previous closes that must all be above the latest close,minimum=1,default=10"`
}

var validate = validator.New()

// DefaultConfig returns the stock parameters.
func DefaultConfig() Config {
	return Config{
		Version:           version.GetVersion(),
		Pair:              "USDT_BTC",
		QuoteCurrency:     "USDT",
		BaseAsset:         "BTC",
		EMAPeriods:        []int{7, 14, 21, 50, 200},
		TrendEMAPeriod:    21,
		BollingerPeriod:   30,
		RSIPeriod:         30,
		MomentumPeriod:    14,
		SafetyMargin:      0.1,
		RSIBuyThreshold:   35,
		RSISellThreshold:  35,
		MinQuoteBalance:   100,
		BuyFraction:       0.05,
		DowntrendLookback: 10,
	}
}

// Validate checks the struct tags and the cross-field rules.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid strategy config", err)
	}

	if !slices.Contains(c.EMAPeriods, c.TrendEMAPeriod) {
		return errors.Newf(errors.ErrCodeInvalidConfiguration,
			"trend_ema_period %d is not listed in ema_periods %v", c.TrendEMAPeriod, c.EMAPeriods)
	}

	return nil
}

// LoadConfig reads a YAML strategy config from path. Keys missing from the
// file keep their default value. The file's version must be compatible with
// the running bot.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeConfigReadFailed, err, "failed to read strategy config %s", path)
	}

	return ParseConfig(data)
}

// ParseConfig decodes YAML onto DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeConfigParseFailed, "failed to parse strategy config", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	if err := version.CheckConfigCompatibility(version.GetVersion(), config.Version); err != nil {
		return Config{}, err
	}

	return config, nil
}
