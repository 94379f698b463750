package main

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"medsum/internal/page"
	"medsum/internal/summary"
	"medsum/internal/upload"
)

const sniffLen = 512

type summarizeResult struct {
	File      string          `json:"file"`
	Type      string          `json:"type"`
	RequestID string          `json:"request_id,omitempty"`
	ElapsedMS int64           `json:"elapsed_ms,omitempty"`
	Summary   *summary.Record `json:"summary,omitempty"`
	Error     string          `json:"error,omitempty"`
}

func newSummarizeCommand(ctx *commandContext) *cobra.Command {
	var endpoint string
	var declaredType string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "summarize <pdf> [more...]",
		Short: "Upload a PDF report and print its summary",
		Long: "Upload a PDF report to the summarization backend and print the summary.\n" +
			"Only the first file is used. Its type is taken from the extension, or sniffed\n" +
			"from the content when the extension is unknown; --type overrides both.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			client, err := ctx.summarizerClient(endpoint)
			if err != nil {
				return err
			}

			files, closeFirst, err := selectFiles(args, declaredType)
			if err != nil {
				return err
			}
			defer closeFirst()

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			doc := page.New()
			ctrl, err := upload.New(doc.Bindings(), client, upload.WithLogger(logger))
			if err != nil {
				return err
			}

			doc.FileInput.Select(files[0].Name)
			result := summarizeResult{File: files[0].Name, Type: files[0].Type}
			sub, err := ctrl.HandleFiles(runCtx, files)
			switch {
			case errors.Is(err, upload.ErrInvalidFile):
			case err != nil:
				return err
			case sub != nil:
				result.RequestID = sub.ID
				// The client shares runCtx, so an interrupt settles the submission too.
				<-sub.Done()
				result.ElapsedMS = sub.Elapsed().Milliseconds()
			}

			banner, failed := doc.Banner()
			if failed {
				result.Error = banner
			} else if sub != nil {
				record, _ := sub.Result()
				result.Summary = &record
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				if err := writeJSON(cmd, result); err != nil {
					return err
				}
			} else if !failed {
				colorize := shouldColorize(out)
				fmt.Fprint(out, renderSession(doc, result, colorize))
			}
			if failed {
				return errors.New(banner)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Summarizer base URL (overrides summarizer.base_url)")
	cmd.Flags().StringVar(&declaredType, "type", "", "Declared media type of the file (default: detect)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the result as JSON")
	return cmd
}

// selectFiles builds the selection handed to the controller. Only the first
// file is opened; the rest only carry a name and type.
func selectFiles(paths []string, override string) ([]upload.File, func(), error) {
	first, err := os.Open(paths[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", paths[0], err)
	}
	closeFirst := func() { _ = first.Close() }

	if info, err := first.Stat(); err != nil {
		closeFirst()
		return nil, nil, fmt.Errorf("stat %s: %w", paths[0], err)
	} else if info.IsDir() {
		closeFirst()
		return nil, nil, fmt.Errorf("%s is a directory", paths[0])
	}

	firstType := strings.TrimSpace(override)
	if firstType == "" {
		firstType, err = detectType(paths[0], first)
		if err != nil {
			closeFirst()
			return nil, nil, err
		}
	}

	files := make([]upload.File, 0, len(paths))
	files = append(files, upload.File{Name: filepath.Base(paths[0]), Type: firstType, Body: first})
	for _, path := range paths[1:] {
		files = append(files, upload.File{Name: filepath.Base(path), Type: typeByExtension(path)})
	}
	return files, closeFirst, nil
}

// detectType resolves a media type from the extension, falling back to a
// content sniff. The file offset is restored to the start.
func detectType(path string, file io.ReadSeeker) (string, error) {
	if byExt := typeByExtension(path); byExt != "" {
		return byExt, nil
	}
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind %s: %w", path, err)
	}
	if n == 0 {
		return "", nil
	}
	return baseMediaType(http.DetectContentType(head[:n])), nil
}

func typeByExtension(path string) string {
	return baseMediaType(mime.TypeByExtension(strings.ToLower(filepath.Ext(path))))
}

func baseMediaType(value string) string {
	if value == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(value)
	if err != nil {
		return value
	}
	return mediaType
}

func formatElapsed(ms int64) string {
	if ms <= 0 {
		return ""
	}
	return (time.Duration(ms) * time.Millisecond).Round(10 * time.Millisecond).String()
}
