// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"svggraph/config"
	"svggraph/graph"
	"svggraph/shape"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	outputPath string
	verbose    bool
	fix        bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Compute chart scales, geometry and point shapes",
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log notices to stderr")

	layoutCmd := &cobra.Command{
		Use:   "layout [config.yaml] [data.yaml]...",
		Short: "Print the chart layouts as a yaml stream, one document per data file",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runLayout,
	}
	layoutCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")

	checkCmd := &cobra.Command{
		Use:   "check [config.yaml]",
		Short: "Validate a chart configuration",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}
	checkCmd.Flags().BoolVar(&fix, "fix", false, "Reset invalid settings to their defaults and rewrite the file")

	rootCmd.AddCommand(layoutCmd, checkCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *log.Logger {
	if verbose {
		return log.New(os.Stderr, "", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}

func runLayout(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg, err := config.Load(args[0], logger)
	if err != nil {
		return err
	}

	// Data files are laid out concurrently, each in its own render session.
	layouts, err := graph.NewRenderer(cfg, shape.NewRegistry(), logger).RenderFiles(args[1:])
	if err != nil {
		return fmt.Errorf("layout failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer file.Close()
		out = file
	}
	enc := yaml.NewEncoder(out)
	for i := range layouts {
		if err := enc.Encode(&layouts[i]); err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
	}
	return enc.Close()
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	if !fix {
		if _, err := config.Load(args[0], logger); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", args[0])
		return nil
	}
	problems, err := config.Fix(args[0], logger)
	if err != nil {
		return err
	}
	for _, p := range problems {
		fmt.Fprintf(cmd.OutOrStdout(), "fixed: %v\n", p)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s written\n", args[0])
	return nil
}
