package preflight

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"medsum/internal/config"
	"medsum/internal/services"
	"medsum/internal/services/summarizer"
)

const summarizerCheckTimeout = 5 * time.Second

// CheckSummarizer verifies that the summarization backend answers HTTP.
// It uses a short timeout and a single attempt.
func CheckSummarizer(ctx context.Context, cfg config.Summarizer) Result {
	const name = "Summarizer"

	client := summarizer.NewClient(summarizer.Config{
		BaseURL:        cfg.BaseURL,
		EndpointPath:   cfg.EndpointPath,
		TimeoutSeconds: int(summarizerCheckTimeout / time.Second),
	})
	endpoint, err := client.Endpoint()
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}

	checkCtx, cancel := context.WithTimeout(ctx, summarizerCheckTimeout)
	defer cancel()

	if err := client.Ping(checkCtx); err != nil {
		if errors.Is(err, services.ErrTimeout) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (timed out)", cfg.BaseURL)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (unreachable: %v)", cfg.BaseURL, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (reachable)", endpoint)}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}
