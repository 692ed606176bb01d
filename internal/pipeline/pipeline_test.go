package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aweller/bloomport/internal/bloom"
	"github.com/aweller/bloomport/internal/stats"
)

func TestExtract_OneMatchAmongUnrelatedRecords(t *testing.T) {
	doc := `<HealthData>
 <Record type="HKQuantityTypeIdentifierStepCount" sourceName="Phone" startDate="2024-01-01 07:00:00 +0000" endDate="2024-01-01 07:00:00 +0000"/>
 <Record type="HKCategoryTypeIdentifierMindfulSession" sourceName="Calm" startDate="2024-01-01 08:00:00 +0000" endDate="2024-01-01 08:05:30 +0000"/>
</HealthData>`

	records, err := Extract(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "Calm", records[0].AppName)
	assert.Equal(t, 5, records[0].MeditationMinutes)
	assert.Equal(t, 30, records[0].DroppedSeconds)

	assert.Equal(t, "Calm: 1 entry\n", stats.Tally(records).String())
}

func TestExtract_NoMatchesIsEmptyResult(t *testing.T) {
	doc := `<HealthData>
 <Record type="HKQuantityTypeIdentifierHeartRate" sourceName="Watch" startDate="2024-01-01 07:00:00 +0000" endDate="2024-01-01 07:00:00 +0000"/>
</HealthData>`

	records, err := Extract(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, "", stats.Tally(records).String())
}

func TestExtract_TwoSessionsSameApp(t *testing.T) {
	doc := `<HealthData>
 <Record type="HKCategoryTypeIdentifierMindfulSession" sourceName="Headspace" startDate="2024-01-05 07:00:00 +0000" endDate="2024-01-05 07:10:00 +0000"/>
 <Record type="HKCategoryTypeIdentifierMindfulSession" sourceName="Headspace" startDate="2024-01-05 21:00:00 +0000" endDate="2024-01-05 21:12:00 +0000"/>
</HealthData>`

	records, err := Extract(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Headspace: 2 entries\n", stats.Tally(records).String())
}

func TestExtract_BadTimestampFailsWholeRun(t *testing.T) {
	doc := `<HealthData>
 <Record type="HKCategoryTypeIdentifierMindfulSession" sourceName="Calm" startDate="2024-01-01 08:00:00 +0000" endDate="2024-01-01 08:05:00 +0000"/>
 <Record type="HKCategoryTypeIdentifierMindfulSession" sourceName="Calm" startDate="January 1st" endDate="2024-01-01 08:05:00 +0000"/>
</HealthData>`

	records, err := Extract(strings.NewReader(doc))
	assert.ErrorIs(t, err, bloom.ErrFormat)
	assert.Nil(t, records)
}

func TestExtract_MalformedDocumentFailsWholeRun(t *testing.T) {
	records, err := Extract(strings.NewReader(`<HealthData><Record type=`))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, bloom.ErrFormat)
	assert.Nil(t, records)
}

func TestExtractFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.xml")
	doc := `<HealthData>
 <Record type="HKCategoryTypeIdentifierMindfulSession" sourceName="Calm" startDate="2024-01-01 08:00:00 +0000" endDate="2024-01-01 08:01:00 +0000"/>
</HealthData>`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	records, err := ExtractFile(path)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = ExtractFile(filepath.Join(t.TempDir(), "nope.xml"))
	assert.Error(t, err)
}
