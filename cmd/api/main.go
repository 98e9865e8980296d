// ABOUTME: Main entry point for the TikTok downloader API
// ABOUTME: Builds the cobra command tree; serve is the default command

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	serve := newServeCommand()

	root := &cobra.Command{
		Use:           "tiktok-downloader-api",
		Short:         "Resolve TikTok page URLs into downloadable video and music URLs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A missing .env is normal in containers
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				log.Printf("Failed to load .env: %v", err)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve.RunE(serve, args)
		},
	}

	root.AddCommand(serve, newExtractCommand())

	return root
}
