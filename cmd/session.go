package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/pcquote"
	"github.com/etnz/pcquote/config"
	"github.com/etnz/pcquote/sheet"
	"github.com/etnz/pcquote/store"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// session is the state shared by all commands: the configuration, the
// catalog and the working ledger restored from the store.
type session struct {
	cfg     config.Config
	logger  *zap.Logger
	catalog *pcquote.Catalog
	ledger  *pcquote.Ledger
	store   store.Store
	key     string
	dirty   bool
}

// openCatalog loads the configuration and the catalog, without touching the
// store.
func openCatalog(ctx context.Context) (*session, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Currency != "" {
		pcquote.DefaultCurrency = strings.ToUpper(cfg.Currency)
	}
	return &session{
		cfg:     cfg,
		logger:  logger,
		key:     *sessionKey,
		catalog: loadCatalog(ctx, cfg, logger),
	}, nil
}

// openSession loads the configuration, the catalog and the working ledger.
func openSession(ctx context.Context) (*session, error) {
	s, err := openCatalog(ctx)
	if err != nil {
		return nil, err
	}
	s.store, err = store.Open(ctx, s.cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("could not open store: %w", err)
	}

	s.ledger = pcquote.NewLedger()
	s.ledger.SetLogger(s.logger)
	s.ledger.UseCatalog(s.catalog)
	snap, err := s.store.Load(ctx, s.key)
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.logger.Debug("starting a new quote", zap.String("session", s.key))
	case err != nil:
		s.store.Close()
		return nil, fmt.Errorf("could not load quote %q: %w", s.key, err)
	default:
		s.ledger.Restore(snap)
	}
	s.ledger.Subscribe(func(*pcquote.Ledger) { s.dirty = true })
	return s, nil
}

// newLogger builds the console logger, at the configured level.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	if *Verbose {
		lvl = zapcore.DebugLevel
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.DisableCaller = true
	zc.DisableStacktrace = true
	zc.EncoderConfig.TimeKey = ""
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

// loadCatalog loads the configured catalog, spreadsheets included. It falls
// back to the default catalog on any error.
func loadCatalog(ctx context.Context, cfg config.Config, logger *zap.Logger) *pcquote.Catalog {
	if strings.EqualFold(filepath.Ext(cfg.CatalogFile), ".xlsx") {
		c, err := sheet.ImportCatalog(cfg.CatalogFile)
		if err == nil && c.Len() == 0 {
			err = errors.New("catalog is empty")
		}
		if err != nil {
			logger.Warn("using default catalog", zap.Error(err))
			return pcquote.DefaultCatalog()
		}
		return c
	}
	// LoadCatalog never fails, the error has been logged already.
	c, _ := pcquote.LoadCatalog(ctx, cfg.CatalogSource(), logger)
	return c
}

// presets returns the presets of the presets file, or the catalog presets
// followed by the built-in ones.
func (s *session) presets() ([]pcquote.Preset, error) {
	if s.cfg.PresetsFile == "" {
		return append(pcquote.CatalogPresets(s.catalog), pcquote.DefaultPresets()...), nil
	}
	f, err := os.Open(s.cfg.PresetsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open presets file: %w", err)
	}
	defer f.Close()
	presets, err := pcquote.DecodePresets(f, s.logger)
	if err != nil {
		return nil, fmt.Errorf("could not read presets file %q: %w", s.cfg.PresetsFile, err)
	}
	return presets, nil
}

// symbol returns the currency symbol used in outputs.
func (s *session) symbol() string { return pcquote.Symbol(s.cfg.Currency) }

// save writes the ledger back if it changed. An empty ledger is deleted.
func (s *session) save(ctx context.Context) error {
	if !s.dirty {
		return nil
	}
	var err error
	if s.ledger.Len() == 0 {
		err = s.store.Delete(ctx, s.key)
	} else {
		err = s.store.Save(ctx, s.key, s.ledger.Snapshot())
	}
	if err != nil {
		return fmt.Errorf("could not save quote %q: %w", s.key, err)
	}
	s.dirty = false
	return nil
}

func (s *session) close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("closing store", zap.Error(err))
		}
	}
	_ = s.logger.Sync()
}

// printTotals prints a one line summary of the ledger.
func (s *session) printTotals() {
	t := pcquote.ComputeTotals(s.ledger)
	fmt.Fprintf(stdout, "总计: %s  成本: %s  利润: %s  (%d 项)\n", t.Price, t.Cost, t.Profit, t.Lines)
}

// commit saves the session and prints its totals.
func commit(ctx context.Context, s *session) subcommands.ExitStatus {
	if err := s.save(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	s.printTotals()
	return subcommands.ExitSuccess
}
