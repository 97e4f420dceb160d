package experiment

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sbinet/npyio"
)

// History accumulates the per-generation mean and max fitness of a run,
// mirroring the `stats` dict the reference implementation's run loop
// populates for offline plotting. This module never plots; it only persists
// the two series so an external tool can.
type History struct {
	Mean []float64
	Max  []float64
}

// Record appends one generation's mean/max fitness to the history.
func (h *History) Record(mean, max float64) {
	h.Mean = append(h.Mean, mean)
	h.Max = append(h.Max, max)
}

// WriteNPY serializes the mean and max fitness series as mean.npy and
// max.npy under dir, using github.com/sbinet/npyio.
func (h *History) WriteNPY(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create history output directory")
	}

	if err := writeSeries(filepath.Join(dir, "mean.npy"), h.Mean); err != nil {
		return errors.Wrap(err, "failed to write mean fitness history")
	}
	if err := writeSeries(filepath.Join(dir, "max.npy"), h.Max); err != nil {
		return errors.Wrap(err, "failed to write max fitness history")
	}
	return nil
}

func writeSeries(path string, series []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return npyio.Write(f, series)
}
