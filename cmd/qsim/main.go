package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/theapemachine/qsim"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "qsim",
		Short: "Sparse quantum state simulator",
		Long: `qsim runs built-in demonstration circuits on the sparse state simulator
and prints the resulting basis states.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Configuration file (yaml, toml or json)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Measurement seed, 0 for a random seed")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("map", false, "Print the qubit id map with every dump")

	rootCmd.AddCommand(
		newVersionCmd(),
		newBellCmd(),
		newGHZCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "qsim version %s\n", version)
		},
	}
}

// loadConfig layers command line flags over the config file and environment.
func loadConfig(cmd *cobra.Command) (*qsim.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := qsim.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("map") {
		cfg.DumpIDMap, _ = cmd.Flags().GetBool("map")
	}

	return cfg, nil
}
