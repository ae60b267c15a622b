package pcquote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"
)

// CatalogSource describes where the catalog comes from. The file wins over
// the URL, when both are empty the default catalog is used.
type CatalogSource struct {
	File     string // local JSON catalog
	URL      string // published JSON catalog
	Selector string // optional JSONPath, see DecodeCatalog
	Client   *http.Client
}

// LoadCatalog loads the catalog from its source.
//
// It never fails: on any error it falls back to DefaultCatalog and returns the
// reason as a non-nil error, to be reported as a warning.
func LoadCatalog(ctx context.Context, src CatalogSource, logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c, err := loadCatalog(ctx, src, logger)
	if err != nil {
		logger.Warn("using default catalog", zap.Error(err))
		return DefaultCatalog(), err
	}
	if c.Len() == 0 {
		err := errors.New("catalog is empty")
		logger.Warn("using default catalog", zap.Error(err))
		return DefaultCatalog(), err
	}
	logger.Debug("catalog loaded", zap.Int("entries", c.Len()))
	return c, nil
}

func loadCatalog(ctx context.Context, src CatalogSource, logger *zap.Logger) (*Catalog, error) {
	switch {
	case src.File != "":
		f, err := os.Open(src.File)
		if err != nil {
			return nil, fmt.Errorf("could not open catalog file %q: %w", src.File, err)
		}
		defer f.Close()
		c, err := DecodeCatalog(f, src.Selector)
		if err != nil {
			return nil, fmt.Errorf("could not load catalog file %q: %w", src.File, err)
		}
		return c, nil
	case src.URL != "":
		client := src.Client
		if client == nil {
			client = DailyClient(logger)
		}
		return FetchCatalog(ctx, client, src.URL, src.Selector)
	default:
		return DefaultCatalog(), nil
	}
}
