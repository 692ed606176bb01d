package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aweller/bloomport/internal/bloom"
)

func sampleRecords() []bloom.Record {
	return []bloom.Record{
		{
			AppName:           "Calm",
			OccurredAt:        time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
			MeditationMinutes: 5,
			DroppedSeconds:    30,
		},
		{
			AppName:           "Headspace",
			OccurredAt:        time.Date(2024, 1, 2, 7, 15, 0, 0, time.UTC),
			MeditationMinutes: 0, // sub-minute, must be skipped
			DroppedSeconds:    45,
		},
		{
			AppName:           "Headspace",
			OccurredAt:        time.Date(2024, 1, 3, 7, 15, 0, 0, time.UTC),
			MeditationMinutes: 12,
			DroppedSeconds:    0,
		},
	}
}

func TestWriteCSV_SkipsZeroMinuteRecords(t *testing.T) {
	var buf bytes.Buffer
	rows, err := WriteCSV(&buf, sampleRecords())
	require.NoError(t, err)
	assert.Equal(t, 2, rows)

	parsed, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 3) // header + 2 rows

	assert.Equal(t, Header, parsed[0])
	assert.Equal(t, []string{"Calm", "2024-01-01T08:00:00Z", "5", "30"}, parsed[1])
	assert.Equal(t, []string{"Headspace", "2024-01-03T07:15:00Z", "12", "0"}, parsed[2])
}

func TestWriteCSV_OnlyZeroMinuteRecords(t *testing.T) {
	var buf bytes.Buffer
	rows, err := WriteCSV(&buf, []bloom.Record{
		{AppName: "Calm", OccurredAt: time.Now().UTC(), DroppedSeconds: 30},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, rows)

	parsed, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, parsed, 1) // header only
}

func TestWriteCSVFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bloom-data-ah.csv")

	rows, err := WriteCSVFile(path, sampleRecords())
	require.NoError(t, err)
	assert.Equal(t, 2, rows)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	parsed, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 3)

	// re-read values match the in-memory records
	want := sampleRecords()
	assert.Equal(t, want[0].AppName, parsed[1][0])
	start, err := time.Parse(time.RFC3339, parsed[1][1])
	require.NoError(t, err)
	assert.True(t, start.Equal(want[0].OccurredAt))
	assert.Equal(t, "5", parsed[1][2])
	assert.Equal(t, "30", parsed[1][3])
}

func TestWriteCSVFile_UnwritableDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.csv")
	_, err := WriteCSVFile(path, sampleRecords())
	assert.ErrorIs(t, err, ErrWrite)
}
