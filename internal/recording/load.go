package recording

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/accelplot/internal/logging"
)

const (
	// PreambleLines is the number of logger preamble lines before the data.
	PreambleLines = 4

	// TimeLayout matches "YYYY-MM-DD HH:MM:SS.ffffff"; the fraction may
	// have one to nine digits or be absent.
	TimeLayout = "2006-01-02 15:04:05.999999999"

	minColumns   = 4
	delimiter    = ';'
	maxLineBytes = 1 << 20
)

type options struct {
	keepInvalidTime bool
	logger          *slog.Logger
}

// Option configures Load and Parse.
type Option func(*options)

// WithKeepInvalidTime keeps rows whose timestamp does not parse as long
// as their accelerations are valid. Their relative time is NaN.
func WithKeepInvalidTime(keep bool) Option {
	return func(o *options) { o.keepInvalidTime = keep }
}

// WithLogger sets the logger used for dropped-row diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Load reads and parses the logger export at path.
func Load(path string, opts ...Option) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Wrapped: err}
	}
	defer f.Close()

	rec, err := Parse(f, opts...)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return nil, err
		}
		return nil, &FileError{Path: path, Wrapped: err}
	}
	rec.Source = path
	return rec, nil
}

type row struct {
	at      time.Time
	timeOK  bool
	x, y, z float64
}

// Parse reads a logger export from r. Each line after the preamble is
// split on ';' on its own, so a malformed line only loses itself.
func Parse(r io.Reader, opts ...Option) (*Recording, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = logging.L()
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	if err := skipPreamble(sc); err != nil {
		return nil, err
	}

	rec := &Recording{}
	var rows []row
	first := true
	line := PreambleLines

	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Split(text, string(delimiter))

		if first {
			first = false
			if len(fields) < minColumns {
				return nil, &ParseError{Line: line, Reason: "expected a timestamp and at least 3 acceleration columns"}
			}
			if isHeader(fields) {
				rec.Columns = trimAll(fields)
				continue
			}
		}

		rw, ok := parseRow(fields)
		if !ok || (!rw.timeOK && !o.keepInvalidTime) {
			rec.Dropped++
			log.Debug("dropping row", "line", line, "time_ok", rw.timeOK)
			continue
		}
		rows = append(rows, rw)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if first || (len(rows) == 0 && rec.Dropped == 0) {
		return nil, &ParseError{Reason: "no data rows after header"}
	}

	rec.fill(rows)
	log.Debug("parsed recording", "rows", rec.Len(), "dropped", rec.Dropped)
	return rec, nil
}

func skipPreamble(sc *bufio.Scanner) error {
	for i := 0; i < PreambleLines; i++ {
		if sc.Scan() {
			continue
		}
		if err := sc.Err(); err != nil {
			return err
		}
		return &ParseError{Line: i + 1, Reason: "header block ends before " + strconv.Itoa(PreambleLines) + " lines"}
	}
	return nil
}

// isHeader reports whether the first line after the preamble names the
// columns: neither its timestamp nor any acceleration field parses.
func isHeader(fields []string) bool {
	if _, ok := parseTime(fields[0]); ok {
		return false
	}
	for _, f := range fields[1:minColumns] {
		if _, ok := parseFloat(f); ok {
			return false
		}
	}
	return true
}

func parseRow(fields []string) (row, bool) {
	var rw row
	rw.at, rw.timeOK = parseTime(fields[0])
	if len(fields) < minColumns {
		return rw, false
	}
	var okX, okY, okZ bool
	rw.x, okX = parseFloat(fields[1])
	rw.y, okY = parseFloat(fields[2])
	rw.z, okZ = parseFloat(fields[3])
	return rw, okX && okY && okZ
}

func parseTime(s string) (time.Time, bool) {
	t, err := time.Parse(TimeLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func trimAll(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}
	return out
}

// fill rebases time on the first kept row with a valid timestamp.
func (r *Recording) fill(rows []row) {
	r.Time = make([]float64, len(rows))
	r.X = make([]float64, len(rows))
	r.Y = make([]float64, len(rows))
	r.Z = make([]float64, len(rows))

	for _, rw := range rows {
		if rw.timeOK {
			r.Start = rw.at
			break
		}
	}

	for i, rw := range rows {
		if rw.timeOK {
			r.Time[i] = rw.at.Sub(r.Start).Seconds()
		} else {
			r.Time[i] = math.NaN()
		}
		r.X[i] = rw.x
		r.Y[i] = rw.y
		r.Z[i] = rw.z
	}
}
