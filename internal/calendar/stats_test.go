package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"daytrace/internal/settings"
)

func TestComputeStats(t *testing.T) {
	p := defaultParams(t)

	s := ComputeStats(p, 42)
	assert.Equal(t, 42, s.Notes)
	assert.Equal(t, 90, s.LifeExpectancy)
	assert.Equal(t, 24, s.Age)
	// 2000-01-01 to 2024-06-15
	assert.Equal(t, 8932, s.LivedDays)
	// 2000-01-01 to 2090-01-01, 23 leap days
	assert.Equal(t, 90*365+23, s.TotalDays)
	assert.Equal(t, s.TotalDays-s.LivedDays, s.RemainingDays)
	assert.InDelta(t, float64(8932)/float64(s.TotalDays)*100, s.Percent, 1e-9)
}

func TestComputeStats_Clamped(t *testing.T) {
	p := defaultParams(t)

	p.Today = mustDate(t, "1999-01-01")
	s := ComputeStats(p, 0)
	assert.Equal(t, 0, s.LivedDays)
	assert.Equal(t, 0, s.Age)
	assert.Equal(t, s.TotalDays, s.RemainingDays)

	p.Today = mustDate(t, "2100-01-01")
	s = ComputeStats(p, 0)
	assert.Equal(t, s.TotalDays, s.LivedDays)
	assert.Equal(t, 0, s.RemainingDays)
	assert.InDelta(t, 100, s.Percent, 1e-9)
}

func TestTodayBlock(t *testing.T) {
	p := defaultParams(t)
	assert.Equal(t, 24, TodayBlock(p))

	p.Birth = mustDate(t, "2000-12-31")
	assert.Equal(t, 24, TodayBlock(p), "block follows calendar year, not birthday")

	p.Today = mustDate(t, "2200-01-01")
	assert.Equal(t, 90, TodayBlock(p))

	p.Today = mustDate(t, "1990-01-01")
	assert.Equal(t, 0, TodayBlock(p))
}

func TestMonthLabels(t *testing.T) {
	labels := MonthLabels(2024)
	assert.Len(t, labels, 12)

	assert.Equal(t, time.January, labels[0].Month)
	assert.Equal(t, 0, labels[0].Week)
	assert.Equal(t, "Jan", labels[0].Name())

	// 2024-06-01 is day 153, a Saturday in week 21
	assert.Equal(t, time.June, labels[5].Month)
	assert.Equal(t, 21, labels[5].Week)

	for i := 1; i < len(labels); i++ {
		assert.Greater(t, labels[i].Week, labels[i-1].Week)
	}
}

func TestLegend(t *testing.T) {
	legend := Legend(settings.Defaults().Palette)
	assert.Len(t, legend, 7)
	assert.Equal(t, settings.DefaultColorKey, legend[0].Name)
	assert.Equal(t, "#D1D5DB", legend[0].Color)
}
