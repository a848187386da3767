// Package chart renders Google Charts line charts for price series.
package chart

import (
	"bytes"
	"fmt"
	"html/template"

	"alphaview/internal/domain"
)

const (
	DefaultHeight = 800
	DefaultWidth  = 1204
)

type Legend struct {
	Position string `json:"position"`
}

type Options struct {
	Title  string   `json:"title"`
	Legend Legend   `json:"legend"`
	Colors []string `json:"colors"`
}

type LineChart struct {
	ID      string
	Height  int
	Width   int
	Options Options
	// first row is the header, then one [date, close] row per point
	Data [][]interface{}
}

func NewStockChart(id string, points []domain.PricePoint) LineChart {
	data := make([][]interface{}, 0, len(points)+1)
	data = append(data, []interface{}{"Date", "Close Price"})
	for _, p := range points {
		data = append(data, []interface{}{p.Date, p.Close})
	}

	return LineChart{
		ID:     id,
		Height: DefaultHeight,
		Width:  DefaultWidth,
		Options: Options{
			Title:  "Stock Graph",
			Legend: Legend{Position: "bottom"},
			Colors: []string{"red"},
		},
		Data: data,
	}
}

// Rows is the number of data rows, not counting the header.
func (c LineChart) Rows() int {
	if len(c.Data) == 0 {
		return 0
	}
	return len(c.Data) - 1
}

// html/template json-encodes the data and options inside the script
var embedTemplate = template.Must(template.New("line_chart").Parse(`<div id="{{.ID}}" style="width: {{.Width}}px; height: {{.Height}}px;"></div>
<script type="text/javascript">
google.charts.load("current", {packages: ["corechart"]});
google.charts.setOnLoadCallback(function () {
  var data = google.visualization.arrayToDataTable({{.Data}});
  var options = {{.Options}};
  var chart = new google.visualization.LineChart(document.getElementById({{.ID}}));
  chart.draw(data, options);
});
</script>`))

// HTML renders the chart container and its drawing script. The page must
// load https://www.gstatic.com/charts/loader.js.
func (c LineChart) HTML() (template.HTML, error) {
	var buf bytes.Buffer
	if err := embedTemplate.Execute(&buf, c); err != nil {
		return "", fmt.Errorf("failed to render chart %s: %w", c.ID, err)
	}
	return template.HTML(buf.String()), nil
}
