package market

import (
	"strconv"

	"github.com/rxtech-lab/argo-crypto-trader/internal/codec"
	"github.com/rxtech-lab/argo-crypto-trader/internal/types"
	"github.com/rxtech-lab/argo-crypto-trader/pkg/errors"
)

// Setting keys understood by ApplySettings. Anything else is ignored.
const (
	SettingTimeBank              = "timebank"
	SettingTimePerMove           = "time_per_move"
	SettingCandleInterval        = "candle_interval"
	SettingCandleFormat          = "candle_format"
	SettingCandlesTotal          = "candles_total"
	SettingCandlesGiven          = "candles_given"
	SettingInitialStack          = "initial_stack"
	SettingTransactionFeePercent = "transaction_fee_percent"
)

// Settings holds the game configuration. The values are stored as received;
// the decision rules do not read the transaction fee.
type Settings struct {
	TimeBank              int
	MaxTimeBank           int
	TimePerMove           int
	CandleInterval        int
	CandleFormat          types.CandleFormat
	CandlesTotal          int
	CandlesGiven          int
	InitialStack          int
	TransactionFeePercent float64
}

// DefaultSettings returns the values in effect before the game sends any settings.
func DefaultSettings() Settings {
	return Settings{
		TimePerMove:           1,
		CandleInterval:        1,
		CandleFormat:          append(types.CandleFormat(nil), types.DefaultCandleFormat...),
		TransactionFeePercent: 0.1,
	}
}

// apply updates the single field named by key. It reports whether key was known.
func (s *Settings) apply(key, value string) (bool, error) {
	var target *int

	switch key {
	case SettingTimeBank:
		n, err := parseInt(key, value)
		if err != nil {
			return true, err
		}

		s.TimeBank = n
		s.MaxTimeBank = n

		return true, nil
	case SettingCandleFormat:
		format, err := codec.ParseCandleFormat(value)
		if err != nil {
			return true, err
		}

		s.CandleFormat = format

		return true, nil
	case SettingTransactionFeePercent:
		fee, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return true, errors.Wrapf(errors.ErrCodeMalformedNumber, err, "invalid value for %s", key)
		}

		s.TransactionFeePercent = fee

		return true, nil
	case SettingTimePerMove:
		target = &s.TimePerMove
	case SettingCandleInterval:
		target = &s.CandleInterval
	case SettingCandlesTotal:
		target = &s.CandlesTotal
	case SettingCandlesGiven:
		target = &s.CandlesGiven
	case SettingInitialStack:
		target = &s.InitialStack
	default:
		return false, nil
	}

	n, err := parseInt(key, value)
	if err != nil {
		return true, err
	}

	*target = n

	return true, nil
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrCodeMalformedNumber, err, "invalid value for %s", key)
	}

	return n, nil
}
