// Package model defines the student record and its line format.
package model

// Delimiter separates fields within a stored line.
const Delimiter = ","

// FieldCount is the number of fields a stored line must split into.
// Trailing empty fields count, so "S1,Alice,20," has four.
const FieldCount = 4

// Student is a single student record.
// The roll number identifies the record, but uniqueness is not enforced.
type Student struct {
	RollNumber string `yaml:"roll_number" validate:"required,excludes=0x2C"`
	Name       string `yaml:"name" validate:"excludes=0x2C"`
	Age        int    `yaml:"age" validate:"gte=0"`
	Course     string `yaml:"course" validate:"excludes=0x2C"`
}

// New returns a Student with the given fields.
func New(rollNumber, name string, age int, course string) Student {
	return Student{
		RollNumber: rollNumber,
		Name:       name,
		Age:        age,
		Course:     course,
	}
}
