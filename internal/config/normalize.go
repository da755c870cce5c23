package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeOMDb()
	if err := c.normalizeGallery(); err != nil {
		return err
	}
	if err := c.normalizeLookupCache(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeOMDb() {
	c.OMDb.APIKey = strings.TrimSpace(c.OMDb.APIKey)
	if c.OMDb.APIKey == "" {
		if value, ok := os.LookupEnv("OMDB_API_KEY"); ok {
			c.OMDb.APIKey = strings.TrimSpace(value)
		}
	}
	c.OMDb.BaseURL = strings.TrimSpace(c.OMDb.BaseURL)
	if c.OMDb.BaseURL == "" {
		c.OMDb.BaseURL = defaultOMDbBaseURL
	}
	if c.OMDb.TimeoutSeconds == 0 {
		c.OMDb.TimeoutSeconds = defaultOMDbTimeoutSeconds
	}
}

func (c *Config) normalizeGallery() error {
	var err error
	if strings.TrimSpace(c.Gallery.TemplatePath) == "" {
		c.Gallery.TemplatePath = defaultGalleryTemplatePath
	}
	if c.Gallery.TemplatePath, err = expandPath(c.Gallery.TemplatePath); err != nil {
		return fmt.Errorf("gallery.template_path: %w", err)
	}
	if strings.TrimSpace(c.Gallery.OutputPath) == "" {
		c.Gallery.OutputPath = defaultGalleryOutputPath
	}
	if c.Gallery.OutputPath, err = expandPath(c.Gallery.OutputPath); err != nil {
		return fmt.Errorf("gallery.output_path: %w", err)
	}
	c.Gallery.Title = strings.TrimSpace(c.Gallery.Title)
	if c.Gallery.Title == "" {
		c.Gallery.Title = defaultGalleryTitle
	}
	return nil
}

func (c *Config) normalizeLookupCache() error {
	var err error
	if strings.TrimSpace(c.LookupCache.Path) == "" {
		c.LookupCache.Path = defaultLookupCachePath
	}
	if c.LookupCache.Path, err = expandPath(c.LookupCache.Path); err != nil {
		return fmt.Errorf("lookup_cache.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}
