package main

import (
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"medsum/internal/logging"
	"medsum/internal/webui"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser upload page",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			client, err := ctx.summarizerClient("")
			if err != nil {
				return err
			}

			lockPath := cfg.LockPath()
			lock := flock.New(lockPath)
			ok, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire lock: %w", err)
			}
			if !ok {
				return errors.New("another medsum server is already running (lock " + lockPath + ")")
			}
			defer func() {
				if err := lock.Unlock(); err != nil {
					logger.Warn("failed to release server lock", logging.Args(logging.Error(err))...)
				}
			}()

			if trimmed := strings.TrimSpace(bind); trimmed != "" {
				cfg.Web.Bind = trimmed
			}
			srv, err := webui.New(cfg, client, logger)
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := srv.Start(runCtx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s\n", srv.Addr())

			<-runCtx.Done()
			srv.Stop()
			logger.Info("web server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Listen address (overrides web.bind)")
	return cmd
}
