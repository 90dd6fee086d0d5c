package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/campushq/placetrack/internal/client/api"
	"github.com/campushq/placetrack/internal/common"
)

func formatCGPA(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func formatPlaced(placed bool) string {
	if placed {
		return "placed"
	}
	return "not placed"
}

// Students lists students, prompting for the optional filters. Empty answers
// leave the corresponding filter off the request.
func (a *App) Students(ctx context.Context) error {
	if !a.requireUser(ctx) {
		return nil
	}

	params := api.StudentListParams{}

	search, err := GetOptionalText(a.reader, "Search (name/email/skill)", a.out)
	if err != nil {
		return err
	}
	params.Search = search

	minCGPA, err := GetOptionalText(a.reader, "Minimum CGPA", a.out)
	if err != nil {
		return err
	}
	if minCGPA != "" {
		v, err := strconv.ParseFloat(minCGPA, 64)
		if err != nil {
			fmt.Fprintf(a.out, "Invalid CGPA value: %s\n", minCGPA)
			return err
		}
		params.MinCGPA = v
	}

	skill, err := GetOptionalText(a.reader, "Skill", a.out)
	if err != nil {
		return err
	}
	params.Skill = skill

	students, err := a.api.Students.List(ctx, params)
	if err != nil {
		fmt.Fprintf(a.out, "error: %s\n", err)
		return err
	}

	if len(students) == 0 {
		fmt.Fprintln(a.out, "No students found")
		return nil
	}

	for _, s := range students {
		fmt.Fprintf(a.out, "#%d  %-25s  CGPA %-5s  %s\n", s.ID, s.Name, formatCGPA(s.FinalCGPA), formatPlaced(s.Placed))
	}
	return nil
}

// StudentShow prints one student's full record including the per-semester
// CGPA entries. The id comes from the command argument, or is prompted for.
func (a *App) StudentShow(ctx context.Context, args []string) error {
	if !a.requireUser(ctx) {
		return nil
	}

	var id int64
	if len(args) > 0 {
		v, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || v <= 0 {
			fmt.Fprintf(a.out, "Invalid student id: %s\n", args[0])
			return err
		}
		id = v
	} else {
		v, err := GetID(a.reader, "Student id", a.out)
		if err != nil {
			return err
		}
		id = v
	}

	student, err := a.api.Students.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintf(a.out, "Student %d not found\n", id)
		} else {
			fmt.Fprintf(a.out, "error: %s\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "#%d %s <%s>\n", student.ID, student.Name, student.Email)
	if student.Phone != "" {
		fmt.Fprintf(a.out, "Phone: %s\n", student.Phone)
	}
	fmt.Fprintf(a.out, "Final CGPA: %s\n", formatCGPA(student.FinalCGPA))
	fmt.Fprintf(a.out, "Status: %s\n", formatPlaced(student.Placed))
	if len(student.Skills) > 0 {
		fmt.Fprintf(a.out, "Skills: %s\n", strings.Join(student.Skills, ", "))
	}
	if len(student.Internships) > 0 {
		fmt.Fprintf(a.out, "Internships: %s\n", strings.Join(student.Internships, ", "))
	}
	for _, p := range student.Projects {
		fmt.Fprintf(a.out, "Project: %s", p.Title)
		if p.Link != "" {
			fmt.Fprintf(a.out, " (%s)", p.Link)
		}
		fmt.Fprintln(a.out)
	}
	if student.Bio != "" {
		fmt.Fprintf(a.out, "Bio: %s\n", student.Bio)
	}

	entries, err := a.api.Students.ListCGPA(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "error loading CGPA history: %s\n", err)
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(a.out, "  %s: %.2f\n", e.Semester, e.CGPA)
	}
	return nil
}

// AddStudent creates a student record. Admin only.
func (a *App) AddStudent(ctx context.Context) error {
	if !a.requireAdmin(ctx) {
		return nil
	}

	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	phone, err := GetOptionalText(a.reader, "Phone", a.out)
	if err != nil {
		return err
	}
	skills, err := GetCommaList(a.reader, "Skills", a.out)
	if err != nil {
		return err
	}
	bio, err := GetOptionalText(a.reader, "Bio", a.out)
	if err != nil {
		return err
	}

	input := api.StudentInput{
		Name:   name,
		Email:  email,
		Phone:  phone,
		Skills: skills,
		Bio:    bio,
	}

	result, err := a.api.Students.Create(ctx, input)
	if err != nil {
		fmt.Fprintf(a.out, "error: %s\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Created student #%d\n", result.ID)
	return nil
}

// DeleteStudent removes a student record. Admin only.
func (a *App) DeleteStudent(ctx context.Context) error {
	if !a.requireAdmin(ctx) {
		return nil
	}

	id, err := GetID(a.reader, "Student id", a.out)
	if err != nil {
		return err
	}

	if err := a.api.Students.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintf(a.out, "Student %d not found\n", id)
		} else {
			fmt.Fprintf(a.out, "error: %s\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Deleted student #%d\n", id)
	return nil
}
