package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/campushq/placetrack/internal/client/models"
	"github.com/campushq/placetrack/internal/common"
)

// AddCGPA records one semester's CGPA for a student. Posting a semester that
// already exists replaces its value.
func (a *App) AddCGPA(ctx context.Context) error {
	if !a.requireUser(ctx) {
		return nil
	}

	id, err := GetID(a.reader, "Student id", a.out)
	if err != nil {
		return err
	}

	semester, err := getSimpleText(a.reader, "Semester (e.g. 2025-spring)", a.out)
	if err != nil {
		return err
	}

	cgpaText, err := getSimpleText(a.reader, "CGPA", a.out)
	if err != nil {
		return err
	}
	cgpa, err := strconv.ParseFloat(cgpaText, 64)
	if err != nil || cgpa < 0 || cgpa > 10 {
		fmt.Fprintf(a.out, "Invalid CGPA value: %s\n", cgpaText)
		if err == nil {
			err = fmt.Errorf("cgpa out of range: %s", cgpaText)
		}
		return err
	}

	entry := models.SemesterCGPA{Semester: semester, CGPA: cgpa}
	result, err := a.api.Students.AddCGPA(ctx, id, entry)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintf(a.out, "Student %d not found\n", id)
		} else {
			fmt.Fprintf(a.out, "error: %s\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Recorded %s = %.2f for student #%d\n", result.Semester, entry.CGPA, result.StudentID)
	return nil
}

// DeleteCGPA removes one semester's entry for a student.
func (a *App) DeleteCGPA(ctx context.Context) error {
	if !a.requireUser(ctx) {
		return nil
	}

	id, err := GetID(a.reader, "Student id", a.out)
	if err != nil {
		return err
	}

	semester, err := getSimpleText(a.reader, "Semester", a.out)
	if err != nil {
		return err
	}

	if _, err := a.api.Students.DeleteCGPA(ctx, id, semester); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintf(a.out, "No entry %q for student %d\n", semester, id)
		} else {
			fmt.Fprintf(a.out, "error: %s\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Removed %s for student #%d\n", semester, id)
	return nil
}
