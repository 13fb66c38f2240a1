package shell

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jacksmith/sms/internal/cli"
	"github.com/jacksmith/sms/internal/model"
	"github.com/jacksmith/sms/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runShell feeds input lines to a shell over repo and returns its output.
func runShell(t *testing.T, repo storage.Repository, lines ...string) string {
	t.Helper()
	cli.SetColorEnabled(false)
	t.Cleanup(func() { cli.SetColorEnabled(true) })

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, New(repo, in, &out).Run())
	return out.String()
}

func newFileRepo(t *testing.T) *storage.FileRepository {
	t.Helper()
	return storage.NewFileRepository(filepath.Join(t.TempDir(), "students.txt"), nil)
}

// brokenRepo fails every operation.
type brokenRepo struct{}

var errBroken = errors.New("disk unavailable")

func (brokenRepo) Add(model.Student) error                    { return errBroken }
func (brokenRepo) ListAll() ([]model.Student, error)          { return nil, errBroken }
func (brokenRepo) Update(string, model.Student) (bool, error) { return false, errBroken }
func (brokenRepo) Delete(string) (bool, error)                { return false, errBroken }

func TestShellMenu(t *testing.T) {
	t.Run("exit", func(t *testing.T) {
		out := runShell(t, newFileRepo(t), "5")
		assert.Contains(t, out, "===== Student Management System =====")
		assert.Contains(t, out, "1. Add Student")
		assert.Contains(t, out, "5. Exit")
		assert.Contains(t, out, "Enter your choice: ")
		assert.True(t, strings.HasSuffix(out, "Exiting... Goodbye!\n"))
	})

	t.Run("non-numeric choice re-prompts", func(t *testing.T) {
		out := runShell(t, newFileRepo(t), "abc", "5")
		assert.Contains(t, out, "Enter your choice: Please enter a valid number: ")
		assert.Contains(t, out, "Exiting... Goodbye!")
	})

	t.Run("unknown choice loops", func(t *testing.T) {
		out := runShell(t, newFileRepo(t), "9", "5")
		assert.Contains(t, out, "Invalid choice, please try again.")
		assert.Equal(t, 2, strings.Count(out, "Enter your choice: "))
	})

	t.Run("end of input exits", func(t *testing.T) {
		cli.SetColorEnabled(false)
		defer cli.SetColorEnabled(true)

		var out bytes.Buffer
		err := New(newFileRepo(t), strings.NewReader(""), &out).Run()
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Exiting... Goodbye!")
	})

	t.Run("end of input mid-operation exits", func(t *testing.T) {
		repo := newFileRepo(t)
		out := runShell(t, repo, "1", "S1", "Alice")
		assert.Contains(t, out, "Exiting... Goodbye!")

		students, err := repo.ListAll()
		require.NoError(t, err)
		assert.Empty(t, students)
	})
}

func TestShellView(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		out := runShell(t, newFileRepo(t), "2", "5")
		assert.Contains(t, out, "No students found.")
	})

	t.Run("lists records in order", func(t *testing.T) {
		repo := newFileRepo(t)
		require.NoError(t, repo.Add(model.New("S1", "Alice", 20, "CS")))
		require.NoError(t, repo.Add(model.New("S2", "Bob", 21, "Math")))

		out := runShell(t, repo, "2", "5")
		assert.Contains(t, out, "--- Student List ---")
		assert.Contains(t, out, "Roll No  : S1\nName     : Alice\nAge      : 20\nCourse   : CS\n")
		assert.Less(t, strings.Index(out, "Roll No  : S1"), strings.Index(out, "Roll No  : S2"))
	})
}

func TestShellAdd(t *testing.T) {
	t.Run("adds a record", func(t *testing.T) {
		repo := newFileRepo(t)
		out := runShell(t, repo, "1", "S1", "Alice", "20", "CS", "5")

		assert.Contains(t, out, "Enter Roll Number: Enter Name: Enter Age: Enter Course: ")
		assert.Contains(t, out, "Student added successfully!")

		students, err := repo.ListAll()
		require.NoError(t, err)
		require.Len(t, students, 1)
		assert.Equal(t, model.New("S1", "Alice", 20, "CS"), students[0])
	})

	t.Run("age re-prompts", func(t *testing.T) {
		repo := newFileRepo(t)
		out := runShell(t, repo, "1", "S1", "Alice", "twenty", "20", "CS", "5")

		assert.Contains(t, out, "Enter Age: Please enter a valid number: ")
		students, err := repo.ListAll()
		require.NoError(t, err)
		require.Len(t, students, 1)
		assert.Equal(t, 20, students[0].Age)
	})

	t.Run("invalid input is rejected and loop continues", func(t *testing.T) {
		repo := newFileRepo(t)
		out := runShell(t, repo, "1", "S1", "Smith, John", "20", "CS", "5")

		assert.Contains(t, out, `Error adding student: invalid name: must not contain ","`)
		assert.Contains(t, out, "Exiting... Goodbye!")

		students, err := repo.ListAll()
		require.NoError(t, err)
		assert.Empty(t, students)
	})

	t.Run("storage failure is reported", func(t *testing.T) {
		out := runShell(t, brokenRepo{}, "1", "S1", "Alice", "20", "CS", "5")
		assert.Contains(t, out, "Error adding student: disk unavailable")
		assert.Contains(t, out, "Exiting... Goodbye!")
	})
}

func TestShellUpdate(t *testing.T) {
	t.Run("updates a record", func(t *testing.T) {
		repo := newFileRepo(t)
		require.NoError(t, repo.Add(model.New("S1", "Alice", 20, "CS")))

		out := runShell(t, repo, "3", "S1", "Alice", "21", "CS", "5")
		assert.Contains(t, out, "Enter new details:")
		assert.Contains(t, out, "New Name: New Age: New Course: ")
		assert.Contains(t, out, "Student updated successfully!")

		students, err := repo.ListAll()
		require.NoError(t, err)
		require.Len(t, students, 1)
		assert.Equal(t, 21, students[0].Age)
	})

	t.Run("unknown roll number", func(t *testing.T) {
		out := runShell(t, newFileRepo(t), "3", "S9", "X", "1", "Y", "5")
		assert.Contains(t, out, "Student with roll number S9 not found.")
	})

	t.Run("storage failure is reported", func(t *testing.T) {
		out := runShell(t, brokenRepo{}, "3", "S1", "X", "1", "Y", "5")
		assert.Contains(t, out, "Error updating student: disk unavailable")
	})
}

func TestShellDelete(t *testing.T) {
	t.Run("deletes every match", func(t *testing.T) {
		repo := newFileRepo(t)
		require.NoError(t, repo.Add(model.New("S1", "Alice", 20, "CS")))
		require.NoError(t, repo.Add(model.New("S1", "Alicia", 22, "EE")))

		out := runShell(t, repo, "4", "S1", "5")
		assert.Contains(t, out, "Student deleted successfully!")

		students, err := repo.ListAll()
		require.NoError(t, err)
		assert.Empty(t, students)
	})

	t.Run("unknown roll number", func(t *testing.T) {
		out := runShell(t, newFileRepo(t), "4", "S9", "5")
		assert.Contains(t, out, "Student with roll number S9 not found.")
	})

	t.Run("storage failure is reported", func(t *testing.T) {
		out := runShell(t, brokenRepo{}, "4", "S1", "2", "5")
		assert.Contains(t, out, "Error deleting student: disk unavailable")
		assert.Contains(t, out, "Error reading students: disk unavailable")
	})
}

func TestShellScenario(t *testing.T) {
	repo := newFileRepo(t)
	out := runShell(t, repo,
		"1", "S1", "Alice", "20", "CS",
		"3", "S1", "Alice", "21", "CS",
		"2",
		"4", "S1",
		"2",
		"5",
	)

	assert.Contains(t, out, "Student added successfully!")
	assert.Contains(t, out, "Student updated successfully!")
	assert.Contains(t, out, "Age      : 21")
	assert.Contains(t, out, "Student deleted successfully!")
	assert.Contains(t, out, "No students found.")
}
