package bot

import (
	"strings"

	"github.com/rxtech-lab/argo-crypto-trader/pkg/errors"
)

// CommandType is the first token of a protocol line.
type CommandType string

const (
	CommandSettings CommandType = "settings"
	CommandUpdate   CommandType = "update"
	CommandAction   CommandType = "action"
)

const (
	// UpdateTargetGame is the only update target the bot reads
	UpdateTargetGame = "game"

	UpdateNextCandles = "next_candles"
	UpdateStacks      = "stacks"
)

// Command is one parsed protocol line.
type Command struct {
	Type CommandType
	// Key is the settings key, or the update key for game updates
	Key string
	// Target is the update target, e.g. "game"
	Target string
	// Value is the settings value or the update payload
	Value string
	// Args holds the action arguments, which the bot does not use
	Args []string
}

// ParseCommand splits a non-blank line into a Command.
//
//	settings <key> <value>
//	update <target> <key> <value>
//	action <args...>
//
// Lines starting with any other word parse without error and are ignored by
// the bot. Missing tokens are a malformed command.
func ParseCommand(line string) (Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Command{}, errors.New(errors.ErrCodeMalformedCommand, "empty command")
	}

	command := Command{Type: CommandType(tokens[0])}

	switch command.Type {
	case CommandSettings:
		if len(tokens) < 3 {
			return Command{}, errors.Newf(errors.ErrCodeMalformedCommand, "settings requires a key and a value: %q", line)
		}

		command.Key = tokens[1]
		command.Value = tokens[2]
	case CommandUpdate:
		if len(tokens) < 4 {
			return Command{}, errors.Newf(errors.ErrCodeMalformedCommand, "update requires a target, a key and a value: %q", line)
		}

		command.Target = tokens[1]
		command.Key = tokens[2]
		command.Value = tokens[3]
	case CommandAction:
		command.Args = tokens[1:]
	}

	return command, nil
}
