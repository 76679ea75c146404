package report

import (
	"sort"

	"github.com/mgolik/eufunds/internal/domain/project"
)

// Point is one record's contribution to the value time series. Month
// bucketing is a caller concern; the engine emits one point per record.
type Point struct {
	Date                 project.Date `json:"date"`
	TotalProjectValuePLN float64      `json:"totalProjectValuePLN"`
	EuCoFinancingPLN     float64      `json:"euCoFinancingPLN"`
}

// Series maps records to points sorted by start date ascending. The sort
// is stable: records sharing a start date keep their input order.
func Series(records []project.Project) []Point {
	points := make([]Point, 0, len(records))
	for _, rec := range records {
		points = append(points, Point{
			Date:                 rec.ProjectStartDate,
			TotalProjectValuePLN: project.AmountOrZero(rec.TotalProjectValuePLN),
			EuCoFinancingPLN:     project.AmountOrZero(rec.EuCoFinancingPLN),
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}
