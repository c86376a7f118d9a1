package csvfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "AAPL.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadMinuteBars(t *testing.T) {
	path := writeCSV(t, `ts,o,h,l,c,v
2025-12-20T15:31:00Z,245.3,245.9,245.1,245.7,1200
2025-12-20T15:30:00Z,245.0,245.5,244.8,245.3,1500
`)

	bars, err := ReadMinuteBars(path, "aapl")
	require.NoError(t, err)
	require.Len(t, bars, 2)

	// Rows arrive unordered and must come back sorted by timestamp.
	assert.Equal(t, time.Date(2025, 12, 20, 15, 30, 0, 0, time.UTC), bars[0].Time)
	assert.Equal(t, time.Date(2025, 12, 20, 15, 31, 0, 0, time.UTC), bars[1].Time)

	assert.Equal(t, "AAPL", bars[0].Symbol, "symbol should be upper-cased")
	assert.Equal(t, 245.0, bars[0].Open)
	assert.Equal(t, 245.5, bars[0].High)
	assert.Equal(t, 244.8, bars[0].Low)
	assert.Equal(t, 245.3, bars[0].Close)
	assert.Equal(t, int64(1500), bars[0].Volume)
}

func TestReadMinuteBars_NoHeader(t *testing.T) {
	path := writeCSV(t, "2025-12-20T15:30:00Z,1,2,0.5,1.5,100\n")

	bars, err := ReadMinuteBars(path, "AAPL")
	require.NoError(t, err)
	assert.Len(t, bars, 1)
}

func TestReadMinuteBars_OffsetTimestampsNormalizedToUTC(t *testing.T) {
	path := writeCSV(t, "2025-12-20T10:30:00-05:00,1,2,0.5,1.5,100\n")

	bars, err := ReadMinuteBars(path, "AAPL")
	require.NoError(t, err)
	require.Len(t, bars, 1)
	assert.Equal(t, time.Date(2025, 12, 20, 15, 30, 0, 0, time.UTC), bars[0].Time)
}

func TestReadMinuteBars_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad timestamp", "not-a-time,1,2,0.5,1.5,100\n"},
		{"bad price", "2025-12-20T15:30:00Z,abc,2,0.5,1.5,100\n"},
		{"bad volume", "2025-12-20T15:30:00Z,1,2,0.5,1.5,1.5\n"},
		{"wrong column count", "2025-12-20T15:30:00Z,1,2,0.5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, tt.content)
			_, err := ReadMinuteBars(path, "AAPL")
			assert.Error(t, err)
		})
	}
}

func TestReadMinuteBars_MissingFile(t *testing.T) {
	_, err := ReadMinuteBars(filepath.Join(t.TempDir(), "nope.csv"), "AAPL")
	assert.Error(t, err)
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	// Nothing exists yet: fall back to the bare filename.
	assert.Equal(t, "MSFT.csv", DefaultPath("msft"))

	require.NoError(t, os.MkdirAll("sample_data", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("sample_data", "MSFT.csv"), []byte("ts,o,h,l,c,v\n"), 0o644))
	assert.Equal(t, filepath.Join("sample_data", "MSFT.csv"), DefaultPath("msft"))

	// A copy in the working directory wins over sample_data.
	require.NoError(t, os.WriteFile("MSFT.csv", []byte("ts,o,h,l,c,v\n"), 0o644))
	assert.Equal(t, "MSFT.csv", DefaultPath("MSFT"))
}
