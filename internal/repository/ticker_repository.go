package repository

import (
	"encoding/csv"
	"fmt"
	"io/fs"
	"strings"

	"alphaview/internal/domain"
)

type TickerRepository interface {
	List() (*domain.TickerList, error)
}

type tickerRepositoryHandler struct {
	FS   fs.FS
	Path string
}

// NewTickerRepository reads the reference list from path inside fsys on
// every call. The file is small and never changes at runtime.
func NewTickerRepository(fsys fs.FS, path string) TickerRepository {
	return tickerRepositoryHandler{
		FS:   fsys,
		Path: path,
	}
}

func (h tickerRepositoryHandler) List() (*domain.TickerList, error) {
	f, err := h.FS.Open(h.Path)
	if err != nil {
		return nil, fmt.Errorf("could not open ticker reference %s: %w", h.Path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse ticker reference %s: %w", h.Path, err)
	}

	return parseTickerRecords(records)
}

func parseTickerRecords(records [][]string) (*domain.TickerList, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("ticker reference has no header row")
	}
	header := records[0]
	columns, err := determineColumnOrdering(header, []string{"symbol", "name"})
	if err != nil {
		return nil, err
	}

	rows := make([]domain.TickerRow, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("ticker reference row %d has %d columns, expected %d", i+2, len(record), len(header))
		}
		fields := make(map[string]string, len(header))
		for j, h := range header {
			fields[h] = record[j]
		}
		rows = append(rows, domain.TickerRow{
			Symbol: record[columns["symbol"]],
			Name:   record[columns["name"]],
			Fields: fields,
		})
	}

	return &domain.TickerList{
		Header: header,
		Rows:   rows,
	}, nil
}

// determineColumnOrdering maps each required header (lowercase) to its
// column index, matching case-insensitively.
func determineColumnOrdering(headerRow []string, requiredHeaders []string) (map[string]int, error) {
	out := map[string]int{}
	for i, h := range headerRow {
		out[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, h := range requiredHeaders {
		if _, ok := out[h]; !ok {
			return nil, fmt.Errorf("missing required column %q in header %v", h, headerRow)
		}
	}
	ordering := map[string]int{}
	for _, h := range requiredHeaders {
		ordering[h] = out[h]
	}

	return ordering, nil
}
