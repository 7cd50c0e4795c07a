package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/dotdash/internal/assistant"
	"github.com/wizzomafizzo/dotdash/internal/config"
	"github.com/wizzomafizzo/dotdash/internal/converter"
	"github.com/wizzomafizzo/dotdash/internal/database"
	"github.com/wizzomafizzo/dotdash/internal/history"
	"github.com/wizzomafizzo/dotdash/internal/logging"
	"github.com/wizzomafizzo/dotdash/internal/prompt"
	"github.com/wizzomafizzo/dotdash/internal/session"
	"github.com/wizzomafizzo/dotdash/internal/storage"
)

// environment holds the process-level dependencies commands are built on.
// Tests replace them with temp directories, buffers and scripted prompts.
type environment struct {
	fs          afero.Fs
	storage     *storage.Manager
	logWriter   io.Writer
	hintSource  assistant.Source
	newPrompter func() prompt.Prompter
	color       bool
}

func newEnvironment() *environment {
	fs := afero.NewOsFs()
	return &environment{
		fs:      fs,
		storage: storage.New(fs),
		newPrompter: func() prompt.Prompter {
			return prompt.NewLinerPrompter(session.Commands...)
		},
		color: !color.NoColor,
	}
}

// app is the per-command wiring of config, logger, history and converter.
type app struct {
	ctx   context.Context
	cfg   *config.Config
	conv  *converter.Converter
	db    *database.Manager
	store *history.Store
}

// openApp loads config and the logger. History is opened only when
// withHistory is set and enabled in config.
func openApp(env *environment, cmd *cobra.Command, withHistory bool) (*app, error) {
	configPath, err := configPathFromCommand(env, cmd)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(env.fs, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
	}

	levelName := cfg.Logging.Level
	if override, _ := cmd.Flags().GetString("log-level"); override != "" {
		levelName = override
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, err := logging.New(parent, env.fs, logging.Config{
		Writer:     env.logWriter,
		Command:    cmd.Name(),
		Level:      level,
		MaxSizeMB:  cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAge,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	a := &app{ctx: ctx, cfg: cfg}

	if withHistory && cfg.History.Enabled {
		if err := a.openHistory(env); err != nil {
			// Conversions still work without history
			logging.Get(ctx).Warn().Err(err).Msg("History unavailable")
		}
	}

	var recorder converter.Recorder
	if a.store != nil {
		recorder = a.store
	}
	a.conv = converter.New(assistant.New(env.hintSource, assistant.WithHints(cfg.Assistant.Hints)), recorder)

	logging.Get(ctx).Debug().
		Str("config", configPath).
		Bool("history", a.store != nil).
		Msg("Command initialized")

	return a, nil
}

func (a *app) openHistory(env *environment) error {
	path, err := env.storage.GetHistoryPath()
	if err != nil {
		return fmt.Errorf("failed to get history path: %w", err)
	}

	db, err := database.NewManager(a.ctx, path)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}

	a.db = db
	a.store = history.NewStore(db, a.cfg.History.MaxEntries)
	return nil
}

func (a *app) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// defaultMode returns the mode from config, which Validate has already checked.
func (a *app) defaultMode() converter.Mode {
	mode, err := converter.ParseMode(a.cfg.Mode)
	if err != nil {
		return converter.ModeShift
	}
	return mode
}
