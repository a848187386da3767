package resolver

import (
	"context"
	"errors"
	"testing"

	api_types "alphaview/api-types"
	alphaview_errors "alphaview/internal"
	"alphaview/internal/db/models/postgres/public/model"
	"alphaview/internal/domain"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

const dailyResponse = `{
	"Meta Data": {"1. Information": "Daily Prices", "2. Symbol": "IBM"},
	"Time Series (Daily)": {
		"2021-01-03": {"4. close": "3.0"},
		"2021-01-02": {"4. close": "2.0"},
		"2021-01-01": {"4. close": "1.0"}
	}
}`

func Test_resolverHandler_GetChart(t *testing.T) {
	ctx := context.Background()
	req := api_types.ChartRequest{Ticker: "ibm", TimeSeries: string(domain.Granularity_Daily)}

	t.Run("chronological chart", func(t *testing.T) {
		r := newTestResolver(t)
		r.favorites.EXPECT().List(gomock.Any(), "alice").Return([]model.Favorite{
			{Symbol: "MSFT"}, {Symbol: "AAPL"}, {Symbol: "MSFT"},
		}, nil)
		r.alphaVantage.EXPECT().GetTimeSeries(ctx, domain.Granularity_Daily, "IBM").Return(doc(dailyResponse), nil)

		out, err := r.GetChart(ctx, "alice", req)
		require.NoError(t, err)

		require.Empty(t, out.Flashes)
		require.Equal(t, []string{"AAPL", "MSFT"}, out.QuickPicks)
		require.Equal(t, domain.Granularities(), out.Granularities)
		require.Equal(t, [][]interface{}{
			{"Date", "Close Price"},
			{"2021-01-01", 1.0},
			{"2021-01-02", 2.0},
			{"2021-01-03", 3.0},
		}, out.Chart.Data)
		require.Equal(t, "IBM", out.Meta.Field("Symbol").String)
		require.False(t, out.GraphResult.Has(domain.MetaDataKey))
		require.NotEmpty(t, out.ChartHTML)
		require.Equal(t, 1.0, out.Summary.First)
		require.Equal(t, 3.0, out.Summary.Last)
	})

	t.Run("empty response", func(t *testing.T) {
		r := newTestResolver(t)
		r.favorites.EXPECT().List(gomock.Any(), "alice").Return(nil, nil)
		r.alphaVantage.EXPECT().GetTimeSeries(ctx, domain.Granularity_Daily, "IBM").
			Return(domain.Document{}, alphaview_errors.ErrEmptyResponse{Function: "TIME_SERIES_DAILY", Symbol: "IBM"})

		out, err := r.GetChart(ctx, "alice", req)
		require.NoError(t, err)
		require.Nil(t, out.Chart)
		require.Nil(t, out.GraphResult)
		require.Equal(t, []api_types.Flash{
			{Level: api_types.FlashLevel_Error, Message: "Something went wrong..."},
		}, out.Flashes)
	})

	t.Run("upstream note", func(t *testing.T) {
		r := newTestResolver(t)
		r.favorites.EXPECT().List(gomock.Any(), "alice").Return(nil, nil)
		r.alphaVantage.EXPECT().GetTimeSeries(ctx, domain.Granularity_Daily, "IBM").
			Return(domain.Document{}, alphaview_errors.ErrUpstream{
				Function: "TIME_SERIES_DAILY",
				Symbol:   "IBM",
				Message:  "Thank you for using Alpha Vantage!",
			})

		out, err := r.GetChart(ctx, "alice", req)
		require.NoError(t, err)
		require.Nil(t, out.Chart)
		require.Equal(t, "Thank you for using Alpha Vantage!", out.Flashes[0].Message)
	})

	t.Run("unknown granularity gives an empty chart", func(t *testing.T) {
		r := newTestResolver(t)
		r.favorites.EXPECT().List(gomock.Any(), "alice").Return(nil, nil)
		r.alphaVantage.EXPECT().GetTimeSeries(ctx, domain.Granularity("TIME_SERIES_INTRADAY"), "IBM").Return(doc(dailyResponse), nil)

		out, err := r.GetChart(ctx, "alice", api_types.ChartRequest{Ticker: "IBM", TimeSeries: "TIME_SERIES_INTRADAY"})
		require.NoError(t, err)
		require.Empty(t, out.Flashes)
		require.Equal(t, [][]interface{}{{"Date", "Close Price"}}, out.Chart.Data)
		require.Equal(t, 0, out.Chart.Rows())
		require.Nil(t, out.Summary)
	})

	t.Run("other upstream errors fail the page", func(t *testing.T) {
		r := newTestResolver(t)
		r.favorites.EXPECT().List(gomock.Any(), "alice").Return(nil, nil)
		r.alphaVantage.EXPECT().GetTimeSeries(ctx, domain.Granularity_Daily, "IBM").
			Return(domain.Document{}, errors.New("status 502"))

		_, err := r.GetChart(ctx, "alice", req)
		require.ErrorContains(t, err, "status 502")
	})

	t.Run("quick picks failure does not fail the page", func(t *testing.T) {
		r := newTestResolver(t)
		r.favorites.EXPECT().List(gomock.Any(), "alice").Return(nil, errors.New("gone"))
		r.alphaVantage.EXPECT().GetTimeSeries(ctx, domain.Granularity_Daily, "IBM").Return(doc(dailyResponse), nil)

		out, err := r.GetChart(ctx, "alice", req)
		require.NoError(t, err)
		require.Empty(t, out.QuickPicks)
		require.NotNil(t, out.Chart)
	})

	t.Run("unparseable series", func(t *testing.T) {
		r := newTestResolver(t)
		r.favorites.EXPECT().List(gomock.Any(), "alice").Return(nil, nil)
		r.alphaVantage.EXPECT().GetTimeSeries(ctx, domain.Granularity_Daily, "IBM").
			Return(doc(`{"Meta Data": {}, "Time Series (Daily)": {"2021-01-01": {"4. close": "x"}}}`), nil)

		_, err := r.GetChart(ctx, "alice", req)
		require.Error(t, err)
	})
}

func Test_resolverHandler_ChartForm(t *testing.T) {
	r := newTestResolver(t)
	r.favorites.EXPECT().List(gomock.Any(), "alice").Return([]model.Favorite{{Symbol: "IBM"}}, nil)

	out, err := r.ChartForm(context.Background(), "alice", api_types.ChartRequest{}, []string{"ticker is required"})
	require.NoError(t, err)
	require.Equal(t, []string{"IBM"}, out.QuickPicks)
	require.Equal(t, []string{"ticker is required"}, out.FormErrors)
	require.Nil(t, out.Chart)
}
