package experiment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRecordAppends(t *testing.T) {
	h := &History{}
	h.Record(1.0, 2.0)
	h.Record(1.5, 2.5)
	assert.Equal(t, []float64{1.0, 1.5}, h.Mean)
	assert.Equal(t, []float64{2.0, 2.5}, h.Max)
}

func TestHistoryWriteNPYCreatesFiles(t *testing.T) {
	h := &History{Mean: []float64{1, 2, 3}, Max: []float64{4, 5, 6}}
	dir := t.TempDir()

	require.NoError(t, h.WriteNPY(dir))

	_, err := os.Stat(filepath.Join(dir, "mean.npy"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "max.npy"))
	assert.NoError(t, err)
}
