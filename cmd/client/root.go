package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Faizanmoriani2/bignote/internal/client"
	"github.com/Faizanmoriani2/bignote/pkg/logger/slogx"
)

const defaultAPI = "http://localhost:5000/api"

var (
	apiURL  string
	verbose bool

	api *client.Client
)

var rootCmd = &cobra.Command{
	Use:           "bignote",
	Short:         "Command line client for the bigNote API",
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "warn"
		if verbose {
			level = "debug"
		}
		if err := slogx.InitGlobal(os.Stderr, level, true); err != nil {
			return fmt.Errorf("init logger: %v", err)
		}

		c, err := client.New(apiURL, nil)
		if err != nil {
			return err
		}
		api = c

		return nil
	},
}

func init() {
	def := os.Getenv("BIGNOTE_API")
	if def == "" {
		def = defaultAPI
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api", def, "API base URL (env BIGNOTE_API)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
