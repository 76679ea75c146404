// Package report implements the aggregation side of the catalog: the
// region-by-category value pivot and the chronological value series.
package report

import (
	"strings"

	"github.com/mgolik/eufunds/internal/domain/project"
)

// Cell is one (region, category) aggregate in the regional pivot.
type Cell struct {
	Region   string  `json:"region"`
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// Pivot aggregates total project value per region and category over the
// records whose start and end dates fall inside the window (both bounds
// inclusive). Output is region-major in the canonical region order,
// category-minor in the given category order, and sparse: cells whose sum
// is not strictly positive are omitted. A record whose location contains
// several region names counts toward each of them.
func Pivot(records []project.Project, start, end project.Date, categories []string) []Cell {
	inWindow := make([]project.Project, 0, len(records))
	for _, rec := range records {
		if rec.ProjectStartDate.Before(start) || rec.ProjectEndDate.After(end) {
			continue
		}
		inWindow = append(inWindow, rec)
	}

	cells := []Cell{}
	for _, region := range project.Regions {
		for _, category := range categories {
			var total float64
			for _, rec := range inWindow {
				if rec.Category != category {
					continue
				}
				if !strings.Contains(rec.ProjectLocation, region) {
					continue
				}
				total += project.AmountOrZero(rec.TotalProjectValuePLN)
			}
			if total > 0 {
				cells = append(cells, Cell{Region: region, Category: category, Value: total})
			}
		}
	}
	return cells
}
