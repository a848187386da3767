package domain

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// typed numbers so a float on the page says
// which unit it is in

type Percent float64

func (p Percent) AsFraction() float64 {
	return float64(p)
}

func (p Percent) AsPercent() float64 {
	return p.AsFraction() * 100
}

func PercentFromFraction(f float64) Percent {
	return Percent(f)
}

type SeriesSummary struct {
	StartDate string
	EndDate   string
	First     float64
	Last      float64
	Min       float64
	Max       float64
	Mean      float64
	Change    Percent
}

// Summarize describes the close prices of a chronological series. An
// empty series has no summary.
func Summarize(points []PricePoint) (*SeriesSummary, error) {
	if len(points) == 0 {
		return nil, nil
	}
	data := make(stats.Float64Data, len(points))
	for i, p := range points {
		data[i] = p.Close
	}

	min, err := data.Min()
	if err != nil {
		return nil, fmt.Errorf("failed to compute min close: %w", err)
	}
	max, err := data.Max()
	if err != nil {
		return nil, fmt.Errorf("failed to compute max close: %w", err)
	}
	mean, err := data.Mean()
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean close: %w", err)
	}

	first := points[0]
	last := points[len(points)-1]
	change := PercentFromFraction(0)
	if first.Close != 0 {
		change = PercentFromFraction((last.Close - first.Close) / first.Close)
	}

	return &SeriesSummary{
		StartDate: first.Date,
		EndDate:   last.Date,
		First:     first.Close,
		Last:      last.Close,
		Min:       min,
		Max:       max,
		Mean:      mean,
		Change:    change,
	}, nil
}
