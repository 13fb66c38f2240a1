package model

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Line serializes s as "roll,name,age,course".
// Embedded delimiters are written as-is.
func (s Student) Line() string {
	return strings.Join([]string{
		s.RollNumber,
		s.Name,
		strconv.Itoa(s.Age),
		s.Course,
	}, Delimiter)
}

// ParseLine deserializes a stored line.
// The second return value is false when the line does not split into
// exactly FieldCount fields; such lines are skipped by readers.
// A non-numeric age is read as 0.
func ParseLine(line string) (Student, bool) {
	line = strings.TrimSuffix(line, "\r")
	parts := strings.Split(line, Delimiter)
	if len(parts) != FieldCount {
		return Student{}, false
	}

	age, err := strconv.Atoi(parts[2])
	if err != nil {
		age = 0
	}

	return New(parts[0], parts[1], age, parts[3]), true
}

// ReadStudents reads every line from r and returns the records that parse,
// in order, along with the number of malformed lines that were dropped.
// The returned slice is never nil on success.
func ReadStudents(r io.Reader) ([]Student, int, error) {
	students := make([]Student, 0)
	skipped := 0

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, skipped, fmt.Errorf("failed to read records: %w", err)
		}
		if line == "" && err == io.EOF {
			break
		}

		if s, ok := ParseLine(strings.TrimSuffix(line, "\n")); ok {
			students = append(students, s)
		} else {
			skipped++
		}

		if err == io.EOF {
			break
		}
	}

	return students, skipped, nil
}

// WriteStudents writes one line per record, each terminated by a newline.
func WriteStudents(w io.Writer, students []Student) error {
	bw := bufio.NewWriter(w)
	for _, s := range students {
		if _, err := bw.WriteString(s.Line() + "\n"); err != nil {
			return fmt.Errorf("failed to write record %s: %w", s.RollNumber, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush records: %w", err)
	}
	return nil
}
