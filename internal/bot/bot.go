// Package bot runs the game's line protocol: it reads commands, applies
// updates to the market state and answers every action request with exactly
// one line.
package bot

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/rxtech-lab/argo-crypto-trader/internal/codec"
	"github.com/rxtech-lab/argo-crypto-trader/internal/logger"
	"github.com/rxtech-lab/argo-crypto-trader/internal/market"
	"github.com/rxtech-lab/argo-crypto-trader/internal/strategy"
	"github.com/rxtech-lab/argo-crypto-trader/pkg/errors"
	"go.uber.org/zap"
)

// maxLineSize bounds one protocol line. next_candles batches carry one record
// per pair and can be long.
const maxLineSize = 1024 * 1024

type Bot struct {
	state    *market.State
	strategy strategy.Strategy
	logger   *logger.Logger
}

// NewBot creates a bot with an empty market state.
func NewBot(strat strategy.Strategy, log *logger.Logger) *Bot {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Bot{
		state:    market.NewState(),
		strategy: strat,
		logger:   log,
	}
}

// State returns the market state owned by the bot.
func (b *Bot) State() *market.State {
	return b.state
}

// Run reads commands from in until end of input and writes one line to out
// per action request, flushing after each. Malformed input stops the loop
// and is returned; the state is left as it was before the offending line.
func (b *Bot) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	writer := bufio.NewWriter(out)
	lineNumber := 0

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		lineNumber++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := b.Handle(line, writer); err != nil {
			b.logger.Error("Failed to handle line",
				zap.Int("line", lineNumber),
				zap.String("command", line),
				zap.Error(err),
			)

			return errors.Wrapf(errors.GetCode(err), err, "line %d", lineNumber)
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeMalformedCommand, "failed to read input", err)
	}

	b.logger.Debug("End of input", zap.Int("lines", lineNumber))

	return nil
}

// Handle processes a single non-blank line.
func (b *Bot) Handle(line string, out *bufio.Writer) error {
	command, err := ParseCommand(line)
	if err != nil {
		return err
	}

	switch command.Type {
	case CommandSettings:
		return b.applySettings(command)
	case CommandUpdate:
		return b.applyUpdate(command)
	case CommandAction:
		return b.act(out)
	default:
		b.logger.Debug("Ignoring unknown command", zap.String("command", string(command.Type)))

		return nil
	}
}

func (b *Bot) applySettings(command Command) error {
	applied, err := b.state.ApplySettings(command.Key, command.Value)
	if err != nil {
		return err
	}

	if !applied {
		b.logger.Debug("Ignoring unknown setting", zap.String("key", command.Key))

		return nil
	}

	b.logger.Debug("Setting applied", zap.String("key", command.Key), zap.String("value", command.Value))

	return nil
}

func (b *Bot) applyUpdate(command Command) error {
	if command.Target != UpdateTargetGame {
		b.logger.Debug("Ignoring update", zap.String("target", command.Target), zap.String("key", command.Key))

		return nil
	}

	switch command.Key {
	case UpdateNextCandles:
		candles, err := b.state.ApplyCandleBatch(command.Value)
		if err != nil {
			return err
		}

		b.logger.Debug("Candles applied", zap.Int64("date", b.state.Date()), zap.Int("count", len(candles)))
	case UpdateStacks:
		stacks, err := b.state.ApplyBalanceBatch(command.Value)
		if err != nil {
			return err
		}

		b.logger.Debug("Stacks applied", zap.Int("count", len(stacks)), zap.Any("balances", b.state.Balances()))
	default:
		b.logger.Debug("Ignoring unknown update", zap.String("key", command.Key))
	}

	return nil
}

func (b *Bot) act(out *bufio.Writer) error {
	action, err := b.strategy.Decide(b.state)
	if err != nil {
		return err
	}

	line := codec.EncodeAction(action)

	b.logger.Info("Action",
		zap.String("strategy", b.strategy.Name()),
		zap.Int64("date", b.state.Date()),
		zap.String("output", line),
		zap.String("reason", action.Reason),
	)

	if _, err := out.WriteString(line + "\n"); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, "failed to write action", err)
	}

	if err := out.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, "failed to flush action", err)
	}

	return nil
}
