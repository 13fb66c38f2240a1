package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/sms/internal/cli"
	"github.com/jacksmith/sms/internal/storage"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List students",
	Long: `List every student in store order.

Malformed lines in the store are skipped.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	repo, err := openRepository()
	if err != nil {
		return err
	}
	defer storage.Close(repo)

	students, err := repo.ListAll()
	if err != nil {
		return err
	}

	if len(students) == 0 {
		fmt.Println("No students found.")
		return nil
	}

	cli.StudentTable(students).Render(os.Stdout)
	return nil
}
