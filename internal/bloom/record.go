// Package bloom turns raw mindful sessions into records shaped for the
// Bloom import format. Bloom's duration field is minute-granular, so each
// session splits into whole minutes plus the sub-minute remainder.
package bloom

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/aweller/bloomport/internal/parse"
)

// timestampLayout is the fixed textual form Apple Health uses for record
// timestamps, e.g. "2024-01-01 08:00:00 +0000".
const timestampLayout = "2006-01-02 15:04:05 -0700"

var (
	// ErrFormat reports a timestamp that does not match the export's layout.
	ErrFormat = errors.New("timestamp does not match health export layout")
	// ErrRange reports an elapsed time outside the representable second range.
	ErrRange = errors.New("session duration out of range")
)

// Record is one resolved mindful session, ready for aggregation or export.
type Record struct {
	AppName           string
	OccurredAt        time.Time // session start, UTC
	MeditationMinutes int
	DroppedSeconds    int
}

// Resolve parses the raw timestamps and derives the minute/remainder
// duration. For a non-negative duration,
// MeditationMinutes*60 + DroppedSeconds equals the elapsed seconds exactly.
// An end before its start passes through as a negative duration; the
// remainder then follows Go's truncated-division sign.
func Resolve(raw parse.MindfulSession) (Record, error) {
	start, err := parseTimestamp(raw.Start)
	if err != nil {
		return Record{}, err
	}
	end, err := parseTimestamp(raw.End)
	if err != nil {
		return Record{}, err
	}

	secs := end.Unix() - start.Unix()
	if secs > math.MaxInt32 || secs < math.MinInt32 {
		return Record{}, fmt.Errorf("%w: %d seconds", ErrRange, secs)
	}

	return Record{
		AppName:           raw.App,
		OccurredAt:        start,
		MeditationMinutes: int(secs / 60),
		DroppedSeconds:    int(secs % 60),
	}, nil
}

// ResolveAll resolves sessions in order. The first bad record fails the
// whole batch; partial results are never returned.
func ResolveAll(raws []parse.MindfulSession) ([]Record, error) {
	var records []Record
	for _, raw := range raws {
		rec, err := Resolve(raw)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	return t.UTC(), nil
}
