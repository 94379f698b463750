package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSummarizer()
	c.normalizeWeb()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSummarizer() {
	c.Summarizer.BaseURL = strings.TrimSpace(c.Summarizer.BaseURL)
	if value, ok := os.LookupEnv(SummarizerURLEnv); ok && strings.TrimSpace(value) != "" {
		c.Summarizer.BaseURL = strings.TrimSpace(value)
	}
	c.Summarizer.BaseURL = strings.TrimRight(c.Summarizer.BaseURL, "/")
	c.Summarizer.EndpointPath = strings.TrimSpace(c.Summarizer.EndpointPath)
	if c.Summarizer.EndpointPath == "" {
		c.Summarizer.EndpointPath = defaultEndpointPath
	}
	if !strings.HasPrefix(c.Summarizer.EndpointPath, "/") {
		c.Summarizer.EndpointPath = "/" + c.Summarizer.EndpointPath
	}
}

func (c *Config) normalizeWeb() {
	c.Web.Bind = strings.TrimSpace(c.Web.Bind)
	if c.Web.Bind == "" {
		c.Web.Bind = defaultWebBind
	}
	if c.Web.MaxUploadMB == 0 {
		c.Web.MaxUploadMB = defaultMaxUploadMB
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
