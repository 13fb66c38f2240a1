// Package main is the entry point for the sms CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/sms/internal/cli"
	"github.com/jacksmith/sms/internal/shell"
	"github.com/jacksmith/sms/internal/storage"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sms",
	Short: "sms - a student record manager",
	Long: `sms manages student records stored one per line in a flat text file.

Run without a subcommand to open the interactive menu. The subcommands
perform the same operations without prompting.

Each record is stored as: roll,name,age,course

Configuration is read from .smsconfig.yaml in the current directory
and from SMS_* environment variables.`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runRoot,
}

var (
	rootFile    string
	rootBackend string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFile, "file", "f", "", "path to the record store (overrides config)")
	rootCmd.PersistentFlags().StringVar(&rootBackend, "backend", "", "storage backend: file or sqlite (overrides config)")
	rootCmd.RegisterFlagCompletionFunc("backend", completeBackends)

	rootCmd.SetVersionTemplate("sms version {{.Version}}\n")
}

func runRoot(cmd *cobra.Command, args []string) error {
	repo, err := openRepository()
	if err != nil {
		return err
	}
	defer storage.Close(repo)

	return shell.New(repo, os.Stdin, os.Stdout).Run()
}
