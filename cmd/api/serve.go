// ABOUTME: serve command running the HTTP API with graceful shutdown

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"tiktok-downloader-api/api"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Server.Port = port
			}

			logger := newLogger(cfg.Log, cmd.OutOrStdout())
			logger.Info("Starting TikTok downloader API", map[string]interface{}{
				"port":             cfg.Server.Port,
				"cache_type":       cfg.Cache.Type,
				"fallback_enabled": cfg.Fallback.Enabled,
				"rate_limit":       cfg.RateLimit.Limit,
			})

			if !strings.EqualFold(cfg.Log.Level, "debug") {
				gin.SetMode(gin.ReleaseMode)
			}

			service, cleanup := newService(cfg, logger)
			defer cleanup()

			router := api.NewRouter(api.RouterConfig{
				Service:    service,
				Logger:     logger,
				RateLimit:  cfg.RateLimit.Limit,
				RateWindow: cfg.RateLimit.WindowDuration(),
				EnableGzip: true,
			})
			defer router.Close()

			srv := &http.Server{
				Addr:         ":" + cfg.Server.Port,
				Handler:      router,
				ReadTimeout:  15 * time.Second,
				WriteTimeout: cfg.Server.Timeout()*2 + 15*time.Second,
				IdleTimeout:  60 * time.Second,
			}

			serverErr := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", map[string]interface{}{
					"address": srv.Addr,
				})
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
				close(serverErr)
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			select {
			case err, ok := <-serverErr:
				if ok {
					logger.Error("HTTP server error", map[string]interface{}{
						"error": err.Error(),
					})
					return err
				}
				return nil
			case <-quit:
			}

			logger.Info("Shutting down server...", nil)

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("Server forced to shutdown", map[string]interface{}{
					"error": err.Error(),
				})
				return err
			}

			logger.Info("Server stopped", nil)
			return nil
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port, overrides PORT")

	return cmd
}
