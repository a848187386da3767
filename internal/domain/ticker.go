package domain

type TickerRow struct {
	Symbol string
	Name   string
	// every column of the row keyed by its header
	Fields map[string]string
}

// TickerList is the bundled reference table of known symbols. Header keeps
// the column order of the source file.
type TickerList struct {
	Header []string
	Rows   []TickerRow
}

// Values returns the row's columns in header order.
func (l TickerList) Values(row TickerRow) []string {
	out := make([]string, len(l.Header))
	for i, h := range l.Header {
		out[i] = row.Fields[h]
	}
	return out
}
