// Package shell implements the interactive student menu.
package shell

import (
	"errors"
	"fmt"
	"io"

	"github.com/jacksmith/sms/internal/cli"
	"github.com/jacksmith/sms/internal/model"
	"github.com/jacksmith/sms/internal/storage"
)

// Menu choices.
const (
	choiceAdd = iota + 1
	choiceView
	choiceUpdate
	choiceDelete
	choiceExit
)

const menu = `
===== Student Management System =====
1. Add Student
2. View All Students
3. Update Student
4. Delete Student
5. Exit
`

// Shell runs the menu loop against a repository.
// All console access goes through the reader and writer given to New.
type Shell struct {
	repo   storage.Repository
	prompt *cli.Prompter
	out    io.Writer
}

// New returns a Shell reading answers from in and writing to out.
func New(repo storage.Repository, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		repo:   repo,
		prompt: cli.NewPrompter(in, out),
		out:    out,
	}
}

// Run shows the menu until Exit is chosen or input ends.
// Operation failures are reported and the loop continues; only an
// unreadable input stream is returned as an error.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.out, menu)
		choice, err := s.prompt.Int("Enter your choice: ")
		if err != nil {
			return s.stop(err)
		}

		switch choice {
		case choiceAdd:
			err = s.add()
		case choiceView:
			s.view()
		case choiceUpdate:
			err = s.update()
		case choiceDelete:
			err = s.delete()
		case choiceExit:
			fmt.Fprintln(s.out, "Exiting... Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice, please try again.")
		}
		if err != nil {
			return s.stop(err)
		}
	}
}

// stop ends the loop; running out of input counts as Exit.
func (s *Shell) stop(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "Exiting... Goodbye!")
		return nil
	}
	return err
}

// fail reports an operation error without leaving the loop.
func (s *Shell) fail(verb string, err error) {
	fmt.Fprintln(s.out, cli.Red(fmt.Sprintf("Error %s student: %v", verb, err)))
}

// readDetails prompts for name, age and course.
func (s *Shell) readDetails(labelPrefix string) (name string, age int, course string, err error) {
	if name, err = s.prompt.Line(labelPrefix + "Name: "); err != nil {
		return
	}
	if age, err = s.prompt.Int(labelPrefix + "Age: "); err != nil {
		return
	}
	course, err = s.prompt.Line(labelPrefix + "Course: ")
	return
}

func (s *Shell) add() error {
	roll, err := s.prompt.Line("Enter Roll Number: ")
	if err != nil {
		return err
	}
	name, age, course, err := s.readDetails("Enter ")
	if err != nil {
		return err
	}

	student := model.New(roll, name, age, course)
	if err := cli.ValidateStudent(student); err != nil {
		s.fail("adding", err)
		return nil
	}
	if err := s.repo.Add(student); err != nil {
		s.fail("adding", err)
		return nil
	}

	fmt.Fprintln(s.out, cli.Green("Student added successfully!"))
	return nil
}

func (s *Shell) view() {
	students, err := s.repo.ListAll()
	if err != nil {
		fmt.Fprintln(s.out, cli.Red(fmt.Sprintf("Error reading students: %v", err)))
		return
	}

	if len(students) == 0 {
		fmt.Fprintln(s.out, "No students found.")
		return
	}

	fmt.Fprintln(s.out, "\n--- Student List ---")
	for _, st := range students {
		cli.WriteStudent(s.out, st)
	}
}

func (s *Shell) update() error {
	roll, err := s.prompt.Line("Enter Roll Number of student to update: ")
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Enter new details:")
	name, age, course, err := s.readDetails("New ")
	if err != nil {
		return err
	}

	updated := model.New(roll, name, age, course)
	if err := cli.ValidateStudent(updated); err != nil {
		s.fail("updating", err)
		return nil
	}

	found, err := s.repo.Update(roll, updated)
	if err != nil {
		s.fail("updating", err)
		return nil
	}
	if !found {
		fmt.Fprintf(s.out, "Student with roll number %s not found.\n", roll)
		return nil
	}

	fmt.Fprintln(s.out, cli.Green("Student updated successfully!"))
	return nil
}

func (s *Shell) delete() error {
	roll, err := s.prompt.Line("Enter Roll Number of student to delete: ")
	if err != nil {
		return err
	}

	removed, err := s.repo.Delete(roll)
	if err != nil {
		s.fail("deleting", err)
		return nil
	}
	if !removed {
		fmt.Fprintf(s.out, "Student with roll number %s not found.\n", roll)
		return nil
	}

	fmt.Fprintln(s.out, cli.Green("Student deleted successfully!"))
	return nil
}
