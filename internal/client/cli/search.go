package cli

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/campushq/placetrack/internal/client/api"
	"github.com/campushq/placetrack/internal/client/services"
)

// SearchStudents runs an interactive search loop. Each entered term is
// debounced, so typing several terms quickly only issues the last request,
// and a slow earlier response never overwrites a newer one.
func (a *App) SearchStudents(ctx context.Context) error {
	if !a.requireUser(ctx) {
		return nil
	}

	var mu sync.Mutex
	sink := func(r services.SearchResult) {
		mu.Lock()
		defer mu.Unlock()
		if r.Err != nil {
			fmt.Fprintf(a.out, "search error: %s\n", r.Err)
			return
		}
		if len(r.Students) == 0 {
			fmt.Fprintf(a.out, "No matches for %q\n", r.Params.Search)
			return
		}
		fmt.Fprintf(a.out, "Results for %q:\n", r.Params.Search)
		for _, s := range r.Students {
			fmt.Fprintf(a.out, "  #%d  %-25s  CGPA %-5s  %s\n", s.ID, s.Name, formatCGPA(s.FinalCGPA), formatPlaced(s.Placed))
		}
	}

	searcher := services.NewStudentSearcher(a.api.Students, a.config.SearchDebounce, sink)

	fmt.Fprintln(a.out, "Type a search term, empty line to stop.")
	for {
		fmt.Fprint(a.out, "search> ")
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return nil
		}
		term := strings.TrimSpace(line)
		if term == "" {
			return nil
		}
		searcher.Search(ctx, api.StudentListParams{Search: term})
	}
}
