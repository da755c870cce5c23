package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"marquee/internal/commands"
	"marquee/internal/config"
	"marquee/internal/gallery"
	"marquee/internal/logging"
	"marquee/internal/lookupcache"
	"marquee/internal/omdb"
	"marquee/internal/storage"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the run logger once, tagged with a fresh session id.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.logger = logging.WithSession(logger, uuid.NewString())
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) openStore(path string) (*storage.FileStore, *slog.Logger, error) {
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, err
	}
	store, err := storage.ForPath(path, logger)
	if err != nil {
		return nil, nil, err
	}
	return store, logger, nil
}

// newApp wires the command layer for the catalog at path. The returned
// cleanup releases the lookup cache.
func (c *commandContext) newApp(cmd *cobra.Command, path string) (*commands.App, func(), error) {
	store, logger, err := c.openStore(path)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}

	lookup, cleanup := c.newLookuper(cfg, logger)
	publisher := gallery.Publisher{
		TemplatePath: cfg.Gallery.TemplatePath,
		OutputPath:   cfg.Gallery.OutputPath,
		Title:        cfg.Gallery.Title,
		Logger:       logger,
	}
	out := cmd.OutOrStdout()
	console := commands.NewConsole(cmd.InOrStdin(), out, shouldColorize(out))

	logger.Info("catalog opened",
		logging.String(logging.FieldEventType, "catalog_opened"),
		logging.String("path", store.Path()),
		logging.String("format", store.Format()),
		logging.String(logging.FieldCommand, cmd.Name()))

	app := commands.New(store, lookup, publisher, console, commands.WithLogger(logger))
	return app, cleanup, nil
}

// newLookuper returns the OMDb client, wrapped by the lookup cache when it is
// enabled. Without an API key every lookup fails with a hint.
func (c *commandContext) newLookuper(cfg *config.Config, logger *slog.Logger) (commands.Lookuper, func()) {
	noop := func() {}
	client, err := omdb.New(cfg.OMDb.APIKey, cfg.OMDb.BaseURL, omdb.WithTimeout(cfg.LookupTimeout()))
	if err != nil {
		logger.Warn("omdb lookups disabled",
			logging.String(logging.FieldEventType, "omdb_disabled"),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "set omdb.api_key or OMDB_API_KEY"))
		return unavailableLookuper{err: err}, noop
	}
	if !cfg.LookupCache.Enabled {
		return client, noop
	}

	cache, err := lookupcache.Open(cfg.LookupCache.Path, cfg.LookupCacheTTL(), logger)
	if err != nil {
		logger.Warn("lookup cache unavailable",
			logging.String(logging.FieldEventType, "lookup_cache_open_failed"),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "lookups will go straight to OMDb"))
		return client, noop
	}
	if removed, err := cache.Prune(context.Background()); err == nil && removed > 0 {
		logger.Debug("pruned expired lookups", logging.Int("removed", int(removed)))
	}
	cleanup := func() {
		if err := cache.Close(); err != nil {
			logger.Warn("close lookup cache", logging.Error(err))
		}
	}
	return lookupcache.NewCachedClient(client, cache, logger), cleanup
}

type unavailableLookuper struct {
	err error
}

func (u unavailableLookuper) Lookup(context.Context, string) (*omdb.Movie, error) {
	return nil, errors.Join(errors.New("omdb client unavailable"), u.err)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
