package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Granularity is the alpha vantage function used to request a price
// history. Unknown values are forwarded to the API as is.
type Granularity string

const (
	Granularity_Daily   Granularity = "TIME_SERIES_DAILY"
	Granularity_Weekly  Granularity = "TIME_SERIES_WEEKLY"
	Granularity_Monthly Granularity = "TIME_SERIES_MONTHLY"
)

const MetaDataKey = "Meta Data"

// field names after StripKeyOrdinals has been applied
const closeKey = "close"

func Granularities() []Granularity {
	return []Granularity{
		Granularity_Daily,
		Granularity_Weekly,
		Granularity_Monthly,
	}
}

func (g Granularity) Label() string {
	switch g {
	case Granularity_Daily:
		return "Daily"
	case Granularity_Weekly:
		return "Weekly"
	case Granularity_Monthly:
		return "Monthly"
	}
	return string(g)
}

// SeriesName is the key holding the price series in the API response.
// Unknown granularities map to "", which never matches.
func (g Granularity) SeriesName() string {
	switch g {
	case Granularity_Daily:
		return "Time Series (Daily)"
	case Granularity_Weekly:
		return "Weekly Time Series"
	case Granularity_Monthly:
		return "Monthly Time Series"
	}
	return ""
}

type PricePoint struct {
	Date  string
	Close float64
}

type TimeSeries struct {
	Granularity Granularity
	Meta        Document
	// response without the meta data envelope
	Series Document
	Points []PricePoint
}

// NewTimeSeries splits the meta data off a time series response and
// rebuilds the series in chronological order. The API lists the most
// recent date first.
func NewTimeSeries(response Document, g Granularity) (*TimeSeries, error) {
	cleaned := StripKeyOrdinals(response)

	meta, _ := cleaned.Get(MetaDataKey)
	series := cleaned.Without(MetaDataKey)

	points := []PricePoint{}
	var parseErr error
	if name := g.SeriesName(); name != "" {
		values, _ := series.Get(name)
		values.ForEach(func(date string, prices Document) bool {
			closeStr := prices.Field(closeKey)
			if !closeStr.Valid {
				parseErr = fmt.Errorf("missing close price on %s", date)
				return false
			}
			closePrice, err := decimal.NewFromString(closeStr.String)
			if err != nil {
				parseErr = fmt.Errorf("failed to parse close price %q on %s: %w", closeStr.String, date, err)
				return false
			}
			points = append(points, PricePoint{
				Date:  date,
				Close: closePrice.InexactFloat64(),
			})
			return true
		})
	}
	if parseErr != nil {
		return nil, parseErr
	}

	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}

	return &TimeSeries{
		Granularity: g,
		Meta:        meta,
		Series:      series,
		Points:      points,
	}, nil
}
