package cli

import (
	"context"
	"fmt"
	"sort"
)

// Stats prints the placement aggregate.
func (a *App) Stats(ctx context.Context) error {
	if !a.requireUser(ctx) {
		return nil
	}

	stats, err := a.api.Stats.Get(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %s\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Students: %d (placed %d, %.1f%%)\n", stats.TotalStudents, stats.PlacedCount, stats.PlacementRate)
	fmt.Fprintf(a.out, "Average CGPA: %.2f\n", stats.AvgCGPA)
	fmt.Fprintf(a.out, "Average package: %.0f\n", stats.AvgPackage)

	if len(stats.TopCompanies) > 0 {
		fmt.Fprintln(a.out, "Top companies:")
		for _, c := range stats.TopCompanies {
			fmt.Fprintf(a.out, "  %-25s  %d offers, avg %.0f\n", c.Name, c.Count, c.AvgPackage)
		}
	}

	if len(stats.SkillDemand) > 0 {
		skills := make([]string, 0, len(stats.SkillDemand))
		for s := range stats.SkillDemand {
			skills = append(skills, s)
		}
		// map order is not stable; sort by demand, ties by name
		sort.Slice(skills, func(i, j int) bool {
			if stats.SkillDemand[skills[i]] != stats.SkillDemand[skills[j]] {
				return stats.SkillDemand[skills[i]] > stats.SkillDemand[skills[j]]
			}
			return skills[i] < skills[j]
		})
		fmt.Fprintln(a.out, "Skill demand:")
		for _, s := range skills {
			fmt.Fprintf(a.out, "  %-20s  %d\n", s, stats.SkillDemand[s])
		}
	}
	return nil
}
