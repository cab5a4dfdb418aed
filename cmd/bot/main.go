package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rxtech-lab/argo-crypto-trader/internal/bot"
	"github.com/rxtech-lab/argo-crypto-trader/internal/logger"
	"github.com/rxtech-lab/argo-crypto-trader/internal/strategy"
	"github.com/rxtech-lab/argo-crypto-trader/internal/version"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// runAction plays the game on stdin/stdout until end of input.
func runAction(in io.Reader, out io.Writer) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		log, err := logger.NewLoggerWithOptions(cmd.String("log-level"), logger.Format(cmd.String("log-format")))
		if err != nil {
			return err
		}

		defer func() {
			_ = log.Sync()
		}()

		config, err := loadConfig(cmd.String("config"))
		if err != nil {
			log.Error("Failed to load strategy config", zap.Error(err))

			return err
		}

		strat, err := strategy.New(strategy.NewDefaultRegistry(), cmd.String("strategy"), config, log)
		if err != nil {
			log.Error("Failed to create strategy", zap.Error(err))

			return err
		}

		log.Info("Bot started",
			zap.String("version", version.GetVersion()),
			zap.String("strategy", strat.Name()),
			zap.String("pair", config.Pair),
		)

		if err := bot.NewBot(strat, log).Run(ctx, in, out); err != nil {
			return err
		}

		log.Info("Bot stopped")

		return nil
	}
}

func loadConfig(path string) (strategy.Config, error) {
	if path == "" {
		return strategy.DefaultConfig(), nil
	}

	return strategy.LoadConfig(path)
}

func schemaAction(out io.Writer) cli.ActionFunc {
	return func(_ context.Context, _ *cli.Command) error {
		schema, err := strategy.ConfigSchema()
		if err != nil {
			return fmt.Errorf("failed to generate schema: %w", err)
		}

		_, err = fmt.Fprintln(out, schema)

		return err
	}
}

func generateAction(out io.Writer) cli.ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		return generate(cmd.String("dir"), out)
	}
}

func newCommand(in io.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "bot",
		Usage:   "Crypto trader bot speaking the game's line protocol on stdin/stdout",
		Version: version.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML strategy config. Defaults are used when empty",
				Sources: cli.EnvVars("BOT_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "strategy",
				Aliases: []string{"s"},
				Usage:   fmt.Sprintf("Strategy to play (%s)", strings.Join(strategy.NewDefaultRegistry().List(), ", ")),
				Value:   strategy.BollingerRSIName,
				Sources: cli.EnvVars("BOT_STRATEGY"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Diagnostic log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("BOT_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   fmt.Sprintf("Diagnostic log format (%s, %s)", logger.FormatJSON, logger.FormatConsole),
				Value:   string(logger.FormatJSON),
				Sources: cli.EnvVars("BOT_LOG_FORMAT"),
			},
		},
		Action: runAction(in, out),
		Commands: []*cli.Command{
			{
				Name:   "schema",
				Usage:  "Print the JSON schema of the strategy config",
				Action: schemaAction(out),
			},
			{
				Name:  "generate",
				Usage: "Write the strategy config schema and a sample config",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "dir",
						Aliases: []string{"d"},
						Usage:   "Output directory",
						Value:   "config",
					},
				},
				Action: generateAction(out),
			},
		},
	}
}

func main() {
	// a missing .env file is fine
	_ = godotenv.Load()

	if err := newCommand(os.Stdin, os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
