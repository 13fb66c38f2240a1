package main

import (
	"fmt"

	"github.com/jacksmith/sms/internal/cli"
	"github.com/jacksmith/sms/internal/storage"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <roll-number>",
	Aliases: []string{"rm"},
	Short:   "Delete students",
	Long: `Delete every student with the given roll number.

Examples:
  sms delete S1`,
	Args:              cobra.ExactArgs(1),
	RunE:              runDelete,
	ValidArgsFunction: completeRollNumbers,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	roll := args[0]

	repo, err := openRepository()
	if err != nil {
		return err
	}
	defer storage.Close(repo)

	removed, err := repo.Delete(roll)
	if err != nil {
		return err
	}
	if !removed {
		return &cli.NotFoundError{Type: "student", ID: roll}
	}

	fmt.Printf("Deleted %s\n", roll)
	return nil
}
