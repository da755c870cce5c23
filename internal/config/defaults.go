package config

const (
	defaultConfigPath          = "~/.config/marquee/config.toml"
	defaultOMDbBaseURL         = "https://www.omdbapi.com/"
	defaultOMDbTimeoutSeconds  = 10
	defaultGalleryTemplatePath = "index_template.html"
	defaultGalleryOutputPath   = "index.html"
	defaultGalleryTitle        = "My Favorite Movies"
	defaultLookupCachePath     = "~/.cache/marquee/lookups.db"
	defaultLookupCacheTTLHours = 168
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
	defaultLogDir              = "~/.local/share/marquee/logs"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		OMDb: OMDb{
			BaseURL:        defaultOMDbBaseURL,
			TimeoutSeconds: defaultOMDbTimeoutSeconds,
		},
		Gallery: Gallery{
			TemplatePath: defaultGalleryTemplatePath,
			OutputPath:   defaultGalleryOutputPath,
			Title:        defaultGalleryTitle,
		},
		LookupCache: LookupCache{
			Enabled:  false,
			Path:     defaultLookupCachePath,
			TTLHours: defaultLookupCacheTTLHours,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			Dir:    defaultLogDir,
		},
	}
}
