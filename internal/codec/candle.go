// Package codec converts between the game's text encodings and typed values.
//
// Float conversion happens here and nowhere else, so the market state and the
// decision engine never see raw protocol strings.
package codec

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-crypto-trader/internal/types"
	"github.com/rxtech-lab/argo-crypto-trader/pkg/errors"
)

var validate = validator.New()

// ParseCandleFormat parses a candle_format setting such as
// "pair,date,open,high,low,close,volume". Unknown or repeated field names are
// rejected, as is a format without pair, date or close.
func ParseCandleFormat(value string) (types.CandleFormat, error) {
	parts := strings.Split(strings.TrimSpace(value), ",")
	format := make(types.CandleFormat, 0, len(parts))

	for _, part := range parts {
		field := types.CandleField(strings.TrimSpace(part))
		if !field.IsValid() {
			return nil, errors.Newf(errors.ErrCodeUnknownCandleField, "unknown candle field %q in format %q", field, value)
		}

		if format.IndexOf(field) >= 0 {
			return nil, errors.Newf(errors.ErrCodeDuplicateCandleField, "candle field %q appears twice in format %q", field, value)
		}

		format = append(format, field)
	}

	for _, required := range []types.CandleField{types.CandleFieldPair, types.CandleFieldDate, types.CandleFieldClose} {
		if format.IndexOf(required) < 0 {
			return nil, errors.Newf(errors.ErrCodeIncompleteFormat, "candle format %q has no %s field", value, required)
		}
	}

	return format, nil
}

// DecodeCandle decodes one comma-separated record positionally.
func DecodeCandle(format types.CandleFormat, record string) (types.Candle, error) {
	values := strings.Split(strings.TrimSpace(record), ",")
	if len(values) != len(format) {
		return types.Candle{}, errors.Newf(errors.ErrCodeMalformedCandle,
			"candle %q has %d fields, format %q expects %d", record, len(values), format, len(format))
	}

	var candle types.Candle

	for i, field := range format {
		value := strings.TrimSpace(values[i])

		switch field {
		case types.CandleFieldPair:
			candle.Pair = value
		case types.CandleFieldDate:
			date, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return types.Candle{}, errors.Wrapf(errors.ErrCodeMalformedNumber, err, "invalid date in candle %q", record)
			}

			candle.Date = date
		default:
			number, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return types.Candle{}, errors.Wrapf(errors.ErrCodeMalformedNumber, err, "invalid %s in candle %q", field, record)
			}

			setPrice(&candle, field, number)
		}
	}

	if err := validate.Struct(candle); err != nil {
		return types.Candle{}, errors.Wrapf(errors.ErrCodeMalformedCandle, err, "invalid candle %q", record)
	}

	return candle, nil
}

func setPrice(candle *types.Candle, field types.CandleField, value float64) {
	switch field {
	case types.CandleFieldOpen:
		candle.Open = value
	case types.CandleFieldHigh:
		candle.High = value
	case types.CandleFieldLow:
		candle.Low = value
	case types.CandleFieldClose:
		candle.Close = value
	case types.CandleFieldVolume:
		candle.Volume = value
	}
}

// DecodeCandleBatch decodes a semicolon-separated next_candles payload.
// Either every record decodes or an error is returned and nothing is.
func DecodeCandleBatch(format types.CandleFormat, batch string) ([]types.Candle, error) {
	if strings.TrimSpace(batch) == "" {
		return nil, errors.New(errors.ErrCodeEmptyBatch, "next_candles batch is empty")
	}

	records := strings.Split(batch, ";")
	candles := make([]types.Candle, 0, len(records))

	for _, record := range records {
		candle, err := DecodeCandle(format, record)
		if err != nil {
			return nil, err
		}

		candles = append(candles, candle)
	}

	return candles, nil
}

// EncodeCandle renders candle as a record in the given format.
func EncodeCandle(format types.CandleFormat, candle types.Candle) string {
	values := make([]string, len(format))

	for i, field := range format {
		switch field {
		case types.CandleFieldPair:
			values[i] = candle.Pair
		case types.CandleFieldDate:
			values[i] = strconv.FormatInt(candle.Date, 10)
		case types.CandleFieldOpen:
			values[i] = strconv.FormatFloat(candle.Open, 'f', -1, 64)
		case types.CandleFieldHigh:
			values[i] = strconv.FormatFloat(candle.High, 'f', -1, 64)
		case types.CandleFieldLow:
			values[i] = strconv.FormatFloat(candle.Low, 'f', -1, 64)
		case types.CandleFieldClose:
			values[i] = strconv.FormatFloat(candle.Close, 'f', -1, 64)
		case types.CandleFieldVolume:
			values[i] = strconv.FormatFloat(candle.Volume, 'f', -1, 64)
		}
	}

	return strings.Join(values, ",")
}

// EncodeCandleBatch renders candles as a next_candles payload.
func EncodeCandleBatch(format types.CandleFormat, candles []types.Candle) string {
	records := make([]string, len(candles))
	for i, candle := range candles {
		records[i] = EncodeCandle(format, candle)
	}

	return strings.Join(records, ";")
}
