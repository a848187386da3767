package resolver

import (
	"context"
	"errors"
	"fmt"

	api_types "alphaview/api-types"
	alphaview_errors "alphaview/internal"
	"alphaview/internal/chart"
	"alphaview/internal/domain"
	"alphaview/internal/util"

	"github.com/golang/glog"
)

const (
	chartFailedMessage = "Something went wrong..."
	chartID            = "stock_chart"
)

func (r resolverHandler) ChartForm(ctx context.Context, userID string, req api_types.ChartRequest, formErrors []string) (*api_types.ChartView, error) {
	out := &api_types.ChartView{
		Form:          req,
		FormErrors:    formErrors,
		Granularities: domain.Granularities(),
		QuickPicks:    []string{},
	}

	// quick picks are a convenience, the page still works without them
	favorites, err := r.listFavorites(ctx, userID)
	if err != nil {
		glog.Errorf("failed to load quick picks for %s: %v", userID, err)
		return out, nil
	}
	symbols := util.NewSet()
	for _, f := range favorites {
		symbols.Add(f.Symbol)
	}
	out.QuickPicks = symbols.List()

	return out, nil
}

func (r resolverHandler) GetChart(ctx context.Context, userID string, req api_types.ChartRequest) (*api_types.ChartView, error) {
	out, err := r.ChartForm(ctx, userID, req, nil)
	if err != nil {
		return nil, err
	}

	symbol := normalizeSymbol(req.Ticker)
	granularity := domain.Granularity(req.TimeSeries)
	response, err := r.AlphaVantageRepository.GetTimeSeries(ctx, granularity, symbol)
	if flash, ok := upstreamFlash(err, chartFailedMessage); ok {
		out.Flashes = append(out.Flashes, flash)
		return out, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get %s for %s: %w", granularity, symbol, err)
	}

	timeSeries, err := domain.NewTimeSeries(response, granularity)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s time series for %s: %w", granularity, symbol, err)
	}
	summary, err := domain.Summarize(timeSeries.Points)
	if err != nil {
		return nil, err
	}

	c := chart.NewStockChart(chartID, timeSeries.Points)
	chartHTML, err := c.HTML()
	if err != nil {
		return nil, err
	}

	out.Meta = &timeSeries.Meta
	out.GraphResult = &timeSeries.Series
	out.Chart = &c
	out.ChartHTML = chartHTML
	out.Summary = summary

	return out, nil
}

// upstreamFlash turns an empty or refused alpha vantage response into a
// flash for the page. Any other error is left to the caller.
func upstreamFlash(err error, emptyMessage string) (api_types.Flash, bool) {
	var emptyErr alphaview_errors.ErrEmptyResponse
	if errors.As(err, &emptyErr) {
		return errorFlash(emptyMessage), true
	}
	var upstreamErr alphaview_errors.ErrUpstream
	if errors.As(err, &upstreamErr) {
		return errorFlash(upstreamErr.Message), true
	}
	return api_types.Flash{}, false
}

func errorFlash(msg string) api_types.Flash {
	return api_types.Flash{
		Level:   api_types.FlashLevel_Error,
		Message: msg,
	}
}
