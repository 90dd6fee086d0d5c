package models

// CompanyStat is one row of the top-companies aggregate.
type CompanyStat struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	AvgPackage float64 `json:"avg_package"`
}

// Stats is the read-only aggregate recomputed by the backend per request.
// It is never persisted client-side.
type Stats struct {
	TotalStudents int            `json:"total_students"`
	PlacedCount   int            `json:"placed_count"`
	PlacementRate float64        `json:"placement_rate"`
	AvgCGPA       float64        `json:"avg_cgpa"`
	AvgPackage    float64        `json:"avg_package"`
	TopCompanies  []CompanyStat  `json:"top_companies"`
	SkillDemand   map[string]int `json:"skill_demand"`
}
