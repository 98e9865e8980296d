// ABOUTME: extract command resolving a single URL without starting the server
// ABOUTME: Prints the same JSON envelope the API would return

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"tiktok-downloader-api/api/dto/mappers"
	"tiktok-downloader-api/core/interfaces"

	"github.com/spf13/cobra"
)

func newExtractCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <url>",
		Short: "Resolve one TikTok URL and print the response envelope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			// stdout carries the JSON envelope
			logger := newLogger(cfg.Log, cmd.ErrOrStderr())
			service, cleanup := newService(cfg, logger)
			defer cleanup()

			code, err := runExtract(cmd.Context(), service, args[0], cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if code != http.StatusOK {
				return fmt.Errorf("extraction failed with status %d", code)
			}
			return nil
		},
	}
}

// runExtract writes the indented envelope for rawURL to out and returns its status code
func runExtract(ctx context.Context, service interfaces.ExtractionService, rawURL string, out io.Writer) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		body interface{}
		code int
	)

	result, err := service.Extract(ctx, rawURL)
	if err != nil {
		resp := mappers.ToErrorResponse(err)
		body, code = resp, resp.Code
	} else {
		body, code = mappers.ToSuccessResponse(result), http.StatusOK
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(body); err != nil {
		return 0, fmt.Errorf("write response: %w", err)
	}

	return code, nil
}
