package main

import (
	"fmt"

	"github.com/jacksmith/sms/internal/cli"
	"github.com/jacksmith/sms/internal/model"
	"github.com/jacksmith/sms/internal/storage"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <roll-number>",
	Short: "Add a student",
	Long: `Append a student record to the store.

Roll numbers are not checked for uniqueness.

Examples:
  sms add S1 --name=Alice --age=20 --course=CS
  sms add S2 --name "Bob Jones" --course=Math`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var (
	addName   string
	addAge    int
	addCourse string
)

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "student name")
	addCmd.Flags().IntVar(&addAge, "age", 0, "student age")
	addCmd.Flags().StringVar(&addCourse, "course", "", "course name")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	student := model.New(args[0], addName, addAge, addCourse)
	if err := cli.ValidateStudent(student); err != nil {
		return err
	}

	repo, err := openRepository()
	if err != nil {
		return err
	}
	defer storage.Close(repo)

	if err := repo.Add(student); err != nil {
		return err
	}

	fmt.Printf("Added %s %s\n", student.RollNumber, student.Name)
	return nil
}
