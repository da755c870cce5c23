package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"marquee/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.OMDb.APIKey = "test"
	cfgVal.Gallery.TemplatePath = filepath.Join(base, "index_template.html")
	cfgVal.Gallery.OutputPath = filepath.Join(base, "site", "index.html")
	cfgVal.LookupCache.Path = filepath.Join(base, "cache", "lookups.db")
	cfgVal.Logging.Dir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithOMDb points the config at an OMDb endpoint.
func WithOMDb(apiKey, baseURL string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.OMDb.APIKey = apiKey
		b.cfg.OMDb.BaseURL = baseURL
	}
}

// WithLookupCache toggles the lookup cache.
func WithLookupCache(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.LookupCache.Enabled = enabled
	}
}

// WithGalleryTitle overrides the gallery page title.
func WithGalleryTitle(title string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Gallery.Title = title
	}
}

// WriteConfig marshals cfg to a TOML file in a temp directory and returns its
// path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "marquee.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
