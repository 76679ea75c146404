package report_test

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mgolik/eufunds/internal/domain/project"
	"github.com/mgolik/eufunds/internal/domain/report"
)

func seriesRec(start project.Date, total, eu string) project.Project {
	return project.Project{
		ProjectStartDate:     start,
		ProjectEndDate:       start,
		TotalProjectValuePLN: total,
		EuCoFinancingPLN:     eu,
	}
}

func TestSeries_SortedAscendingOnePointPerRecord(t *testing.T) {
	records := []project.Project{
		seriesRec(project.NewDate(2023, time.May, 1), "300", "255"),
		seriesRec(project.NewDate(2021, time.January, 15), "100", "85"),
		seriesRec(project.NewDate(2022, time.August, 20), "200", "170"),
	}

	points := report.Series(records)
	require.Len(t, points, len(records))
	require.True(t, sort.SliceIsSorted(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	}))
	require.Equal(t, 100.0, points[0].TotalProjectValuePLN)
	require.Equal(t, 85.0, points[0].EuCoFinancingPLN)
}

func TestSeries_StableTies(t *testing.T) {
	day := project.NewDate(2022, time.March, 3)
	records := []project.Project{
		seriesRec(day, "1", "0"),
		seriesRec(day, "2", "0"),
		seriesRec(day, "3", "0"),
	}

	points := report.Series(records)
	require.Equal(t, []float64{1, 2, 3}, []float64{
		points[0].TotalProjectValuePLN,
		points[1].TotalProjectValuePLN,
		points[2].TotalProjectValuePLN,
	})
}

func TestSeries_ParseOrZero(t *testing.T) {
	records := []project.Project{
		seriesRec(project.NewDate(2022, time.March, 3), "garbage", ""),
	}
	points := report.Series(records)
	require.Equal(t, 0.0, points[0].TotalProjectValuePLN)
	require.Equal(t, 0.0, points[0].EuCoFinancingPLN)
}

func TestSeries_Empty(t *testing.T) {
	points := report.Series(nil)
	require.NotNil(t, points)
	require.Empty(t, points)
}
