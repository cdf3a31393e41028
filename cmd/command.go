// Copyright 2026 AIStore Client Authors
// SPDX-License-Identifier: Apache-2.0

// Package cmd implements the ais CLI on top of the client SDK.
package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/timoha/aistore/pkg/api"
	"github.com/timoha/aistore/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "ais",
	Short: "ais - AIStore command-line client",
	Long: `ais talks to an AIStore cluster gateway over its REST API:
bucket management, object transfer, and download jobs.

The gateway endpoint comes from --endpoint, the AIS_ENDPOINT environment
variable, or defaults to http://localhost:8080.`,
	PersistentPreRun: setupLogging,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().String("endpoint", "http://localhost:8080", "Gateway endpoint (or set AIS_ENDPOINT)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Per-request timeout; 0 disables")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	viper.SetEnvPrefix("AIS")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
}

func setupLogging(cmd *cobra.Command, args []string) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(zerolog.DebugLevel)
	}
}

// newClient builds the SDK client from flag/env configuration.
func newClient() (*api.Client, error) {
	return api.NewClient(api.Config{
		Endpoint: viper.GetString("endpoint"),
		Timeout:  viper.GetDuration("timeout"),
	})
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
