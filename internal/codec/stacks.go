package codec

import (
	"strings"

	"github.com/rxtech-lab/argo-crypto-trader/pkg/errors"
	"github.com/shopspring/decimal"
)

// Stack is one symbol:value balance entry.
type Stack struct {
	Symbol string
	Amount float64
}

// DecodeStacks decodes a comma-separated "symbol:value" balance snapshot.
// Entries keep their order so a repeated symbol resolves to its last value.
func DecodeStacks(batch string) ([]Stack, error) {
	if strings.TrimSpace(batch) == "" {
		return nil, errors.New(errors.ErrCodeEmptyBatch, "stacks batch is empty")
	}

	entries := strings.Split(batch, ",")
	stacks := make([]Stack, 0, len(entries))

	for _, entry := range entries {
		symbol, value, ok := strings.Cut(entry, ":")
		symbol = strings.TrimSpace(symbol)

		if !ok || symbol == "" {
			return nil, errors.Newf(errors.ErrCodeMalformedStacks, "stack entry %q is not symbol:value", entry)
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeMalformedNumber, err, "invalid amount for %s", symbol)
		}

		stacks = append(stacks, Stack{
			Symbol: symbol,
			Amount: amount.InexactFloat64(),
		})
	}

	return stacks, nil
}
