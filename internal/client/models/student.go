package models

import "time"

// Project is a portfolio item attached to a student record.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// Student mirrors the backend student record.
//
// FinalCGPA is derived server-side from the semester CGPA collection and is
// absent until at least one semester has been recorded.
type Student struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	FinalCGPA   *float64   `json:"final_cgpa,omitempty"`
	Skills      []string   `json:"skills"`
	Internships []string   `json:"internships"`
	Projects    []Project  `json:"projects"`
	Placed      bool       `json:"placed"`
	Bio         string     `json:"bio,omitempty"`
	Created     *time.Time `json:"created,omitempty"`
}

// SemesterCGPA is one term's grade-point average for a student.
// Semester acts as a natural key within a student's collection.
type SemesterCGPA struct {
	Semester string  `json:"semester"`
	CGPA     float64 `json:"cgpa"`
}
