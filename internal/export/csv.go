// Package export serializes resolved mindful sessions into the artifacts
// Bloom's /import command accepts: a CSV file or a SQLite database with
// the same columns. Sub-minute sessions are skipped in both; Bloom's
// duration field cannot represent them.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/aweller/bloomport/internal/bloom"
)

// ErrWrite reports a failure to open or write the output artifact.
var ErrWrite = errors.New("write export artifact")

// Header holds the column labels Bloom expects, in order.
var Header = []string{"App Name", "Start Time", "Duration", "Dropped Seconds"}

// WriteCSV emits one row per record with a non-zero minute count, after a
// header row. Start times render as RFC 3339 UTC. Returns the number of
// data rows written.
func WriteCSV(w io.Writer, records []bloom.Record) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return 0, fmt.Errorf("%w: header: %v", ErrWrite, err)
	}

	rows := 0
	for _, r := range records {
		if r.MeditationMinutes == 0 {
			continue
		}
		row := []string{
			r.AppName,
			r.OccurredAt.Format(time.RFC3339),
			strconv.Itoa(r.MeditationMinutes),
			strconv.Itoa(r.DroppedSeconds),
		}
		if err := cw.Write(row); err != nil {
			return rows, fmt.Errorf("%w: row: %v", ErrWrite, err)
		}
		rows++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return rows, fmt.Errorf("%w: flush: %v", ErrWrite, err)
	}
	return rows, nil
}

// WriteCSVFile writes the CSV artifact to path, replacing any existing file.
func WriteCSVFile(path string, records []bloom.Record) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWrite, err)
	}

	rows, err := WriteCSV(f, records)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("%w: close: %v", ErrWrite, cerr)
	}
	return rows, err
}
