package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campushq/placetrack/internal/client/models"
)

func TestStudentListParams_Values(t *testing.T) {
	tests := []struct {
		name   string
		params StudentListParams
		want   url.Values
	}{
		{
			name:   "all empty filters omitted",
			params: StudentListParams{Search: "", MinCGPA: 0, Skill: ""},
			want:   url.Values{},
		},
		{
			name:   "all set",
			params: StudentListParams{Search: "ana", MinCGPA: 7.5, Skill: "go", Limit: 20, Offset: 40},
			want: url.Values{
				"search":   {"ana"},
				"min_cgpa": {"7.5"},
				"skill":    {"go"},
				"limit":    {"20"},
				"offset":   {"40"},
			},
		},
		{
			name:   "partial",
			params: StudentListParams{Skill: "python", Limit: 10},
			want:   url.Values{"skill": {"python"}, "limit": {"10"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.params.values())
		})
	}
}

func TestStudents_List_OmitsEmptyFilters(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil, nil)
	_, err := c.Students.List(context.Background(), StudentListParams{Search: "", MinCGPA: 0})
	require.NoError(t, err)
	require.NotContains(t, gotQuery, "search")
	require.NotContains(t, gotQuery, "min_cgpa")
}

func TestStudents_GetByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/students/7", r.URL.Path)
		require.Equal(t, "GET", r.Method)
		json.NewEncoder(w).Encode(models.Student{ID: 7, Name: "Ana", Email: "ana@uni.edu", Placed: true})
	}))
	defer srv.Close()

	c := New(srv.URL, nil, nil)
	s, err := c.Students.Get(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, int64(7), s.ID)
	require.Equal(t, "Ana", s.Name)
	require.True(t, s.Placed)
}

func TestStudents_Create(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/students", r.URL.Path)

		var got StudentInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		require.Equal(t, "Ana", got.Name)
		require.Equal(t, []string{"go", "sql"}, got.Skills)

		json.NewEncoder(w).Encode(CreateResult{ID: 11})
	}))
	defer srv.Close()

	c := New(srv.URL, nil, nil)
	res, err := c.Students.Create(context.Background(), StudentInput{
		Name:   "Ana",
		Email:  "ana@uni.edu",
		Skills: []string{"go", "sql"},
	})
	require.NoError(t, err)
	require.Equal(t, int64(11), res.ID)
}

func TestStudents_Update_SendsOnlyPatchedFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "PUT", r.Method)
		require.Equal(t, "/students/7", r.URL.Path)

		var got map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		require.Equal(t, map[string]any{"placed": true}, got)

		json.NewEncoder(w).Encode(StatusResult{Status: "updated"})
	}))
	defer srv.Close()

	placed := true
	c := New(srv.URL, nil, nil)
	require.NoError(t, c.Students.Update(context.Background(), 7, StudentPatch{Placed: &placed}))
}

func TestStudents_Delete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "DELETE", r.Method)
		require.Equal(t, "/students/7", r.URL.Path)
		json.NewEncoder(w).Encode(StatusResult{Status: "deleted"})
	}))
	defer srv.Close()

	c := New(srv.URL, nil, nil)
	require.NoError(t, c.Students.Delete(context.Background(), 7))
}

func TestStudents_CGPA(t *testing.T) {
	// Minimal fake of the sub-resource: semester is a natural key, posting
	// an existing semester replaces its value.
	entries := map[string]float64{}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /students/7/cgpa", func(w http.ResponseWriter, r *http.Request) {
		out := make([]models.SemesterCGPA, 0, len(entries))
		for sem, v := range entries {
			out = append(out, models.SemesterCGPA{Semester: sem, CGPA: v})
		}
		json.NewEncoder(w).Encode(out)
	})
	mux.HandleFunc("POST /students/7/cgpa", func(w http.ResponseWriter, r *http.Request) {
		var in models.SemesterCGPA
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		entries[in.Semester] = in.CGPA
		json.NewEncoder(w).Encode(CGPAResult{Status: "ok", StudentID: 7, Semester: in.Semester, CGPA: in.CGPA})
	})
	mux.HandleFunc("DELETE /students/7/cgpa/{semester}", func(w http.ResponseWriter, r *http.Request) {
		sem := r.PathValue("semester")
		delete(entries, sem)
		json.NewEncoder(w).Encode(CGPAResult{Status: "deleted", StudentID: 7, Semester: sem})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx := context.Background()
	c := New(srv.URL, nil, nil)

	_, err := c.Students.AddCGPA(ctx, 7, models.SemesterCGPA{Semester: "3", CGPA: 8.1})
	require.NoError(t, err)
	// Same semester twice: exactly one entry remains.
	_, err = c.Students.AddCGPA(ctx, 7, models.SemesterCGPA{Semester: "3", CGPA: 8.4})
	require.NoError(t, err)

	list, err := c.Students.ListCGPA(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "3", list[0].Semester)
	require.Equal(t, 8.4, list[0].CGPA)

	res, err := c.Students.DeleteCGPA(ctx, 7, "3")
	require.NoError(t, err)
	require.Equal(t, "3", res.Semester)

	list, err = c.Students.ListCGPA(ctx, 7)
	require.NoError(t, err)
	require.Empty(t, list)
}
