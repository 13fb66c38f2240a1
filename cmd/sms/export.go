package main

import (
	"os"

	"github.com/jacksmith/sms/internal/model"
	"github.com/jacksmith/sms/internal/storage"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export students as YAML",
	Long: `Write every student to stdout as a YAML document.

This is a one-way export for viewing or sharing; it cannot be re-imported.

Examples:
  sms export > students.yaml`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	repo, err := openRepository()
	if err != nil {
		return err
	}
	defer storage.Close(repo)

	students, err := repo.ListAll()
	if err != nil {
		return err
	}

	data, err := model.MarshalExport(students)
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(data)
	return err
}
