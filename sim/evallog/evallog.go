// Package evallog loads the tabular logs produced by hyperparameter-search
// experiments: per-evaluation validation records and precomputed scheduler
// traces. Rows are whitespace- or comma-delimited numeric columns; row order
// is significant and preserved, since it is the base sequence that the
// simulator permutes.
package evallog

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrMalformedLog reports a log file that cannot be trusted: a non-numeric
// field, too few columns, or no data rows at all. Malformed rows are never
// skipped — dropping rows would corrupt the recorded evaluation order.
var ErrMalformedLog = errors.New("malformed evaluation log")

// DefaultAccuracyColumn is the zero-based column holding validation accuracy
// in experiment stat files (epoch, elapsed, train_loss, val_loss, val_acc).
const DefaultAccuracyColumn = 4

// Record is one evaluation row. Columns beyond the accuracy column are kept
// for completeness; only ValAccuracy feeds the simulation.
type Record struct {
	Epoch          int
	ElapsedSeconds float64
	TrainLoss      float64
	ValLoss        float64
	ValAccuracy    float64 // percent, 0-100 scale
}

// Error returns the validation error of the record: 100 - accuracy.
func (r Record) Error() float64 {
	return 100 - r.ValAccuracy
}

// EvaluationLog is an ordered, immutable sequence of evaluation records.
type EvaluationLog struct {
	records []Record
}

// Len returns N, the number of recorded evaluations.
func (l *EvaluationLog) Len() int {
	return len(l.records)
}

// Records returns a copy of the records in recorded order.
func (l *EvaluationLog) Records() []Record {
	return append([]Record(nil), l.records...)
}

// Errors returns the validation-error sequence (100 - accuracy) in recorded
// order. The returned slice is freshly allocated on every call.
func (l *EvaluationLog) Errors() []float64 {
	errs := make([]float64, len(l.records))
	for i, r := range l.records {
		errs[i] = r.Error()
	}
	return errs
}

// Load reads an evaluation log from a delimited numeric table. accColumn is
// the zero-based index of the validation-accuracy column (0-100 scale);
// stat files written by the experiment driver use DefaultAccuracyColumn.
// Blank lines and lines starting with '#' are ignored.
func Load(path string, accColumn int) (*EvaluationLog, error) {
	if accColumn < 0 {
		return nil, fmt.Errorf("loading %s: accuracy column must be non-negative, got %d: %w", path, accColumn, ErrMalformedLog)
	}

	rows, err := readTable(path)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		if len(row) <= accColumn {
			return nil, fmt.Errorf("loading %s: row %d has %d columns, need at least %d: %w",
				path, i+1, len(row), accColumn+1, ErrMalformedLog)
		}
		rec := Record{ValAccuracy: row[accColumn]}
		if len(row) >= 5 {
			rec.Epoch = int(row[0])
			rec.ElapsedSeconds = row[1]
			rec.TrainLoss = row[2]
			rec.ValLoss = row[3]
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("loading %s: no data rows: %w", path, ErrMalformedLog)
	}
	return &EvaluationLog{records: records}, nil
}

// Write exports the log in the experiment stat-file layout (tab-separated,
// five columns). Floats use the shortest exact representation, so a written
// log loads back bit-identical.
func Write(path string, log *EvaluationLog) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	writer := bufio.NewWriter(file)
	for _, r := range log.records {
		_, err := fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\n",
			r.Epoch,
			formatFloat(r.ElapsedSeconds),
			formatFloat(r.TrainLoss),
			formatFloat(r.ValLoss),
			formatFloat(r.ValAccuracy))
		if err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// readTable parses a whitespace- or comma-delimited numeric table into rows
// of float64 columns.
func readTable(path string) ([][]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening evaluation log: %w", err)
	}
	defer func() { _ = file.Close() }()

	var rows [][]float64
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("parsing %s line %d: field %q is not numeric: %w",
					path, lineNo, f, ErrMalformedLog)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}
