package repository

import (
	"testing"
	"testing/fstest"

	"alphaview/internal/domain"
	"alphaview/internal/static"

	"github.com/stretchr/testify/require"
)

func Test_determineColumnOrdering(t *testing.T) {
	requiredHeaders := []string{"symbol", "name"}
	headerRow := []string{"SYMBOL", "Last Sale", "Name"}

	out, err := determineColumnOrdering(headerRow, requiredHeaders)
	require.NoError(t, err)
	require.Equal(t, map[string]int{
		"symbol": 0,
		"name":   2,
	}, out)

	_, err = determineColumnOrdering([]string{"Symbol"}, requiredHeaders)
	require.Error(t, err)
}

func TestTickerRepository_List(t *testing.T) {
	t.Run("bundled reference", func(t *testing.T) {
		repo := NewTickerRepository(static.FS, static.TickerReferencePath)
		out, err := repo.List()
		require.NoError(t, err)

		require.Equal(t, "Symbol", out.Header[0])
		require.Len(t, out.Rows, 27)
		require.Equal(t, "AAPL", out.Rows[0].Symbol)
		require.Equal(t, "Apple Inc. Common Stock", out.Rows[0].Name)
		require.Equal(t, "Technology", out.Rows[0].Fields["Sector"])
	})

	t.Run("keeps every column in header order", func(t *testing.T) {
		fsys := fstest.MapFS{
			"tickers.csv": {Data: []byte("Name,Symbol,Country\n\"Foo, Inc.\",FOO,United States\n")},
		}
		out, err := NewTickerRepository(fsys, "tickers.csv").List()
		require.NoError(t, err)

		require.Equal(t, []domain.TickerRow{
			{
				Symbol: "FOO",
				Name:   "Foo, Inc.",
				Fields: map[string]string{"Name": "Foo, Inc.", "Symbol": "FOO", "Country": "United States"},
			},
		}, out.Rows)
		require.Equal(t, []string{"Foo, Inc.", "FOO", "United States"}, out.Values(out.Rows[0]))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewTickerRepository(fstest.MapFS{}, "tickers.csv").List()
		require.Error(t, err)
	})

	t.Run("missing column", func(t *testing.T) {
		fsys := fstest.MapFS{
			"tickers.csv": {Data: []byte("Symbol,Country\nFOO,United States\n")},
		}
		_, err := NewTickerRepository(fsys, "tickers.csv").List()
		require.ErrorContains(t, err, "name")
	})
}
