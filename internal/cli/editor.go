package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/jacksmith/sms/internal/model"
)

// editorHeader is shown above the record line and ignored when reading back.
const editorHeader = "# Edit the record below as roll,name,age,course. Lines starting with # are ignored.\n"

// EditStudent opens s as a single stored line in $EDITOR and parses the
// result. The edited line must have exactly four fields.
func EditStudent(s model.Student) (model.Student, error) {
	out, err := EditInEditor([]byte(editorHeader+s.Line()+"\n"), ".txt")
	if err != nil {
		return model.Student{}, err
	}

	var lines []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}

	switch len(lines) {
	case 0:
		return model.Student{}, fmt.Errorf("edit aborted: no record line")
	case 1:
	default:
		return model.Student{}, fmt.Errorf("expected one record line, got %d", len(lines))
	}

	edited, ok := model.ParseLine(lines[0])
	if !ok {
		return model.Student{}, &ValidationError{
			Message: fmt.Sprintf("record line must have %d comma-separated fields: %q", model.FieldCount, lines[0]),
		}
	}
	return edited, nil
}

// EditInEditor opens content in $EDITOR and returns modified content.
// The suffix is used for the temporary file.
// Returns error if EDITOR/VISUAL not set or editor exits non-zero.
func EditInEditor(content []byte, suffix string) ([]byte, error) {
	editor := getEditor()
	if editor == "" {
		return nil, fmt.Errorf("EDITOR not set. Set it or use flags instead of -i")
	}

	tmpFile, err := os.CreateTemp("", "sms-*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := runEditor(editor, tmpPath); err != nil {
		return nil, err
	}

	result, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read edited file: %w", err)
	}
	return result, nil
}

// getEditor checks VISUAL first, then EDITOR.
func getEditor() string {
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	return os.Getenv("EDITOR")
}

// runEditor executes the editor with the given file path.
// The editor command may carry arguments, e.g. "code --wait".
func runEditor(editor, path string) error {
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("empty editor command")
	}

	args := append(parts[1:], path)
	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run editor: %w", err)
	}
	return nil
}
