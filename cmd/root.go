// Package cmd implements the consent CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile        string
	verbose        bool
	themeOverride  string
	policyOverride string

	appVersion = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "consent",
	Short: "Consent — promise-backed confirmation prompts for terminal UIs",
	Long:  "Consent bridges imperative confirmation requests with a declarative terminal UI. This binary hosts the demo apps for the library.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "consent.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&themeOverride, "theme", "", "TUI color theme: dark, light, or auto")
	rootCmd.PersistentFlags().StringVar(&policyOverride, "policy", "", "overlap policy: replace, queue, or reject")

	rootCmd.AddCommand(demoCmd)
}

// SetVersionInfo sets the version and commit for display.
func SetVersionInfo(version, commit string) {
	appVersion = version
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("consent %s (commit: %s)\n", version, commit))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
