package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
	"github.com/wheelibin/huelib/internal/config"
	"github.com/wheelibin/huelib/internal/constants"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	cfg    config.Config
	logger *log.Logger
)

func main() {
	app := &cli.App{
		Name:  constants.AppName,
		Usage: "Control the lights, groups and scenes of a Hue bridge",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "bridge",
				Usage: "bridge address, overrides bridgeIp from the config file",
			},
			&cli.StringFlag{
				Name:  "username",
				Usage: "bridge username, overrides username from the config file",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "write debug logs",
			},
		},
		Before: func(c *cli.Context) error {
			if err := config.InitialiseConfig(); err != nil {
				return err
			}
			if c.IsSet("bridge") {
				viper.Set("bridgeIp", c.String("bridge"))
			}
			if c.IsSet("username") {
				viper.Set("username", c.String("username"))
			}
			cfg = config.Load()

			level := levelFromString(cfg.LogLevel)
			if c.Bool("debug") {
				level = log.DebugLevel
			}
			logger = newLogger(cfg.LogFile, level)
			logger.Debug("huectl starting", "bridge", cfg.BridgeIP)
			return nil
		},
		Commands: []*cli.Command{
			&discoverCommand,
			&registerCommand,
			&bridgesCommand,
			&lightsCommand,
			&groupsCommand,
			&scenesCommand,
			&schedulesCommand,
			&sensorsCommand,
			&rulesCommand,
			&configCommand,
			&eventsCommand,
		},
		CommandNotFound: func(c *cli.Context, command string) {
			fmt.Fprintf(os.Stderr, "invalid command '%s'. See 'huectl --help'\n", command)
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newLogger(logFile string, level log.Level) *log.Logger {
	var w io.Writer = os.Stderr
	if logFile != "" {
		w = &lumberjack.Logger{
			Filename: logFile,
			MaxAge:   3,
		}
	}
	return log.NewWithOptions(w, log.Options{
		Level:      level,
		TimeFormat: "2006/01/02 15:04:05",
	})
}

func levelFromString(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	}
	return log.InfoLevel
}
