package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"medsum/internal/config"
	"medsum/internal/logging"
	"medsum/internal/services/summarizer"
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

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
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

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// summarizerClient builds a client from config; baseURL, when set, replaces
// summarizer.base_url for this invocation.
func (c *commandContext) summarizerClient(baseURL string) (*summarizer.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	base := cfg.Summarizer.BaseURL
	if trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/"); trimmed != "" {
		base = trimmed
	}
	client := summarizer.NewClient(summarizer.Config{
		BaseURL:        base,
		EndpointPath:   cfg.Summarizer.EndpointPath,
		TimeoutSeconds: cfg.Summarizer.TimeoutSeconds,
	})
	if _, err := client.Endpoint(); err != nil {
		return nil, err
	}
	return client, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
