package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSummarizer(); err != nil {
		return err
	}
	if err := c.validateWeb(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSummarizer() error {
	if c.Summarizer.BaseURL == "" {
		return fmt.Errorf("summarizer.base_url is required. Set %s or edit the config (create with 'medsum config init')", SummarizerURLEnv)
	}
	parsed, err := url.Parse(c.Summarizer.BaseURL)
	if err != nil {
		return fmt.Errorf("summarizer.base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("summarizer.base_url must use http or https, got %q", c.Summarizer.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("summarizer.base_url must include a host, got %q", c.Summarizer.BaseURL)
	}
	if c.Summarizer.TimeoutSeconds < 0 {
		return errors.New("summarizer.timeout_seconds must be zero or positive")
	}
	return nil
}

func (c *Config) validateWeb() error {
	if c.Web.MaxUploadMB < 0 {
		return errors.New("web.max_upload_mb must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
