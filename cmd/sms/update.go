package main

import (
	"fmt"

	"github.com/jacksmith/sms/internal/cli"
	"github.com/jacksmith/sms/internal/model"
	"github.com/jacksmith/sms/internal/storage"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <roll-number>",
	Short: "Update a student",
	Long: `Replace the first student with the given roll number.

Fields not given keep their current value; an empty value clears the
field. Use -i to edit the stored
line in $EDITOR instead. If several students share the roll number,
only the first is changed.

Examples:
  sms update S1 --age=21
  sms update S1 --name=Alicia --course=EE
  sms update S1 --roll=S100
  sms update S1 -i`,
	Args:              cobra.ExactArgs(1),
	RunE:              runUpdate,
	ValidArgsFunction: completeRollNumbers,
}

var (
	updateName        string
	updateAge         int
	updateCourse      string
	updateRoll        string
	updateInteractive bool
)

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "new name")
	updateCmd.Flags().IntVar(&updateAge, "age", 0, "new age")
	updateCmd.Flags().StringVar(&updateCourse, "course", "", "new course")
	updateCmd.Flags().StringVar(&updateRoll, "roll", "", "new roll number")
	updateCmd.Flags().BoolVarP(&updateInteractive, "interactive", "i", false, "edit the record in $EDITOR")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	roll := args[0]

	flags := cmd.Flags()
	hasChanges := flags.Changed("name") || flags.Changed("age") ||
		flags.Changed("course") || flags.Changed("roll")
	if !updateInteractive && !hasChanges {
		return fmt.Errorf("nothing to update: use --name, --age, --course, --roll or -i")
	}

	repo, err := openRepository()
	if err != nil {
		return err
	}
	defer storage.Close(repo)

	current, ok, err := findStudent(repo, roll)
	if err != nil {
		return err
	}
	if !ok {
		return &cli.NotFoundError{Type: "student", ID: roll}
	}

	var updated model.Student
	if updateInteractive {
		updated, err = cli.EditStudent(current)
		if err != nil {
			return err
		}
	} else {
		updated = applyUpdateFlags(cmd, current)
	}

	if err := cli.ValidateStudent(updated); err != nil {
		return err
	}

	found, err := repo.Update(roll, updated)
	if err != nil {
		return err
	}
	if !found {
		return &cli.NotFoundError{Type: "student", ID: roll}
	}

	fmt.Printf("Updated %s\n", updated.RollNumber)
	return nil
}

// applyUpdateFlags overlays the flags set on the command line onto s.
// An explicitly empty value clears the field.
func applyUpdateFlags(cmd *cobra.Command, s model.Student) model.Student {
	if cmd.Flags().Changed("roll") {
		s.RollNumber = updateRoll
	}
	if cmd.Flags().Changed("name") {
		s.Name = updateName
	}
	if cmd.Flags().Changed("age") {
		s.Age = updateAge
	}
	if cmd.Flags().Changed("course") {
		s.Course = updateCourse
	}
	return s
}

// findStudent returns the first stored record with the given roll number.
func findStudent(repo storage.Repository, roll string) (model.Student, bool, error) {
	students, err := repo.ListAll()
	if err != nil {
		return model.Student{}, false, err
	}
	for _, s := range students {
		if s.RollNumber == roll {
			return s, true, nil
		}
	}
	return model.Student{}, false, nil
}
