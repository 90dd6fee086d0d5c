package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/campushq/placetrack/internal/client/models"
)

// StudentsAPI covers /students and its semester-CGPA sub-resource.
type StudentsAPI struct {
	client *Client
}

// StudentListParams are the optional list filters. Zero-valued fields are
// omitted from the query string entirely — an empty search never goes out as
// a literal empty parameter.
type StudentListParams struct {
	Search  string
	MinCGPA float64
	Skill   string
	Limit   int
	Offset  int
}

func (p StudentListParams) values() url.Values {
	q := url.Values{}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.MinCGPA > 0 {
		q.Set("min_cgpa", strconv.FormatFloat(p.MinCGPA, 'f', -1, 64))
	}
	if p.Skill != "" {
		q.Set("skill", p.Skill)
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	return q
}

// StudentInput is the create payload. ID and Created are server-assigned.
type StudentInput struct {
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone,omitempty"`
	Skills      []string         `json:"skills"`
	Internships []string         `json:"internships"`
	Projects    []models.Project `json:"projects"`
	Placed      bool             `json:"placed"`
	Bio         string           `json:"bio,omitempty"`
}

// StudentPatch is a partial update; nil fields are left untouched by the
// backend.
type StudentPatch struct {
	Name        *string           `json:"name,omitempty"`
	Email       *string           `json:"email,omitempty"`
	Phone       *string           `json:"phone,omitempty"`
	Skills      *[]string         `json:"skills,omitempty"`
	Internships *[]string         `json:"internships,omitempty"`
	Projects    *[]models.Project `json:"projects,omitempty"`
	Placed      *bool             `json:"placed,omitempty"`
	Bio         *string           `json:"bio,omitempty"`
}

// CreateResult is the id assigned to a newly created resource.
type CreateResult struct {
	ID int64 `json:"id"`
}

// StatusResult is the generic mutation acknowledgement.
type StatusResult struct {
	Status string `json:"status"`
}

// CGPAResult acknowledges a semester-CGPA mutation.
type CGPAResult struct {
	Status    string  `json:"status"`
	StudentID int64   `json:"student_id"`
	Semester  string  `json:"semester"`
	CGPA      float64 `json:"cgpa,omitempty"`
}

func (s *StudentsAPI) List(ctx context.Context, params StudentListParams) ([]models.Student, error) {
	var out []models.Student
	if err := s.client.do(ctx, "GET", "/students", params.values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *StudentsAPI) Get(ctx context.Context, id int64) (*models.Student, error) {
	var out models.Student
	if err := s.client.do(ctx, "GET", fmt.Sprintf("/students/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StudentsAPI) Create(ctx context.Context, input StudentInput) (*CreateResult, error) {
	var out CreateResult
	if err := s.client.do(ctx, "POST", "/students", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StudentsAPI) Update(ctx context.Context, id int64, patch StudentPatch) error {
	var out StatusResult
	return s.client.do(ctx, "PUT", fmt.Sprintf("/students/%d", id), nil, patch, &out)
}

func (s *StudentsAPI) Delete(ctx context.Context, id int64) error {
	var out StatusResult
	return s.client.do(ctx, "DELETE", fmt.Sprintf("/students/%d", id), nil, nil, &out)
}

// ListCGPA returns the per-semester CGPA entries of one student.
func (s *StudentsAPI) ListCGPA(ctx context.Context, studentID int64) ([]models.SemesterCGPA, error) {
	var out []models.SemesterCGPA
	if err := s.client.do(ctx, "GET", fmt.Sprintf("/students/%d/cgpa", studentID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddCGPA records one semester's CGPA. Semester is a natural key: posting an
// existing semester replaces its value server-side rather than duplicating
// the entry.
func (s *StudentsAPI) AddCGPA(ctx context.Context, studentID int64, entry models.SemesterCGPA) (*CGPAResult, error) {
	var out CGPAResult
	if err := s.client.do(ctx, "POST", fmt.Sprintf("/students/%d/cgpa", studentID), nil, entry, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCGPA removes one semester's entry.
func (s *StudentsAPI) DeleteCGPA(ctx context.Context, studentID int64, semester string) (*CGPAResult, error) {
	path := fmt.Sprintf("/students/%d/cgpa/%s", studentID, url.PathEscape(semester))
	var out CGPAResult
	if err := s.client.do(ctx, "DELETE", path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
