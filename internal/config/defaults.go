package config

const (
	defaultConfigPath   = "~/.config/medsum/config.toml"
	defaultBaseURL      = "http://127.0.0.1:5000"
	defaultEndpointPath = "/summarize"
	defaultWebBind      = "127.0.0.1:8080"
	defaultMaxUploadMB  = 10
	defaultStateDir     = "~/.local/share/medsum"
	defaultLogDir       = "~/.local/share/medsum/logs"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"

	// SummarizerURLEnv overrides summarizer.base_url when the file leaves it empty.
	SummarizerURLEnv = "MEDSUM_SUMMARIZER_URL"
)

// Default returns a Config populated with defaults.
func Default() Config {
	return Config{
		Summarizer: Summarizer{
			BaseURL:      defaultBaseURL,
			EndpointPath: defaultEndpointPath,
		},
		Web: Web{
			Bind:        defaultWebBind,
			MaxUploadMB: defaultMaxUploadMB,
		},
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
