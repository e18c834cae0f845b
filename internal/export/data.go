package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/san-kum/accelplot/internal/chart"
)

type seriesData struct {
	Name string     `json:"name"`
	X    []*float64 `json:"x"`
	Y    []*float64 `json:"y"`
}

type chartData struct {
	Title  string       `json:"title"`
	XLabel string       `json:"x_label"`
	YLabel string       `json:"y_label"`
	Series []seriesData `json:"series"`
}

func saveData(c *chart.Chart, path, format string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if format == "csv" {
		err = WriteCSV(c, file)
	} else {
		err = WriteJSON(c, file)
	}
	if err != nil {
		return err
	}
	return file.Close()
}

// WriteCSV writes one row per point: series name, x, y.
func WriteCSV(c *chart.Chart, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"series", c.XLabel, c.YLabel}); err != nil {
		return err
	}
	for _, s := range c.Series {
		name := s.Name
		if name == "" {
			name = c.Title
		}
		n := min(len(s.X), len(s.Y))
		for i := 0; i < n; i++ {
			record := []string{
				name,
				strconv.FormatFloat(s.X[i], 'g', -1, 64),
				strconv.FormatFloat(s.Y[i], 'g', -1, 64),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the chart's series. Non-finite values become null.
func WriteJSON(c *chart.Chart, w io.Writer) error {
	data := chartData{
		Title:  c.Title,
		XLabel: c.XLabel,
		YLabel: c.YLabel,
		Series: make([]seriesData, len(c.Series)),
	}
	for i, s := range c.Series {
		data.Series[i] = seriesData{Name: s.Name, X: nullable(s.X), Y: nullable(s.Y)}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func nullable(v []float64) []*float64 {
	out := make([]*float64, len(v))
	for i := range v {
		if !math.IsNaN(v[i]) && !math.IsInf(v[i], 0) {
			out[i] = &v[i]
		}
	}
	return out
}
