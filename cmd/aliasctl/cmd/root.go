/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/suparena/aliasstore"
	"github.com/suparena/aliasstore/config"
	"github.com/suparena/aliasstore/handler"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "aliasctl",
	Short: "Manage the alias registry",
	Long: `aliasctl claims, releases and looks up human-readable aliases bound to
account addresses.

The backend is chosen by configuration:
  memory    - in-process map, lost on exit
  sqlite    - local database file (default: aliases.db)
  dynamodb  - single DynamoDB table keyed by binary PK`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !verbose {
			log.SetOutput(io.Discard)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError("aliasctl", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// openHandler loads configuration and opens the configured backend. The returned
// close function releases the backend.
func openHandler(ctx context.Context) (*handler.Handler, func() error, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	log.Printf("using %s backend", cfg.Backend)

	backend, err := aliasstore.DefaultBackends().Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	reg := aliasstore.New(backend)
	return handler.New(reg), reg.Close, nil
}

func marshalMsg(v any) []byte {
	out, err := json.Marshal(v)
	if err != nil {
		// messages are plain structs of strings
		panic(err)
	}
	return out
}

func printAnswer(w io.Writer, answer []byte) {
	fmt.Fprintln(w, string(answer))
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
