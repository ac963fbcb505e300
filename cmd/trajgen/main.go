// Package main provides the trajgen CLI: offline trajectory generation from a
// path file and a robot settings file.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flag values.
var (
	flagConfig string
	flagJSON   bool
)

// v resolves defaults from the environment and an optional tool config file.
var v = viper.New()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trajgen",
	Short: "trajgen generates time-parameterized robot trajectories",
	Long: `trajgen converts a path file and a robot settings file into a
time-parameterized, kinematically feasible trajectory and prints the
resulting states.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v.SetEnvPrefix("TRAJGEN")
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		v.AutomaticEnv()
		if flagConfig == "" {
			return nil
		}
		v.SetConfigFile(flagConfig)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read tool config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "tool config file (optional)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
}
