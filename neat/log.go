package neat

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
)

// LoggerLevel selects the package logger's verbosity, as configured by a run's
// log_level option.
type LoggerLevel string

const (
	// LogLevelDebug The Debug log level
	LogLevelDebug LoggerLevel = "debug"
	// LogLevelInfo The Info log level
	LogLevelInfo LoggerLevel = "info"
	// LogLevelWarning The Warning log level
	LogLevelWarning LoggerLevel = "warn"
	// LogLevelError The Error log level
	LogLevelError LoggerLevel = "error"
)

// logger is the package-wide structured logger backing LogGeneration and
// LogRenderFailure. Call sites emit named fields (generation number, fitness,
// the failing task) rather than pre-formatted strings, so a run's stdout can be
// parsed or filtered the same way the reference evolutionary loop's telemetry is.
var logger = slog.New(slog.NewTextHandler(os.Stdout, nil))

// InitLogger reconfigures the package logger's verbosity from a run's configured
// log_level ("debug", "info", "warn", "error").
func InitLogger(level string) error {
	var slogLevel slog.Level
	switch LoggerLevel(level) {
	case LogLevelDebug:
		slogLevel = slog.LevelDebug
	case LogLevelInfo:
		slogLevel = slog.LevelInfo
	case LogLevelWarning:
		slogLevel = slog.LevelWarn
	case LogLevelError:
		slogLevel = slog.LevelError
	default:
		return errors.Errorf("unsupported log level: [%s]", level)
	}
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
	return nil
}

// LogGeneration emits one generation's summary statistics at Info level: the
// per-generation line the evolutionary loop prints to track a run's progress
// (spec.md §4.9).
func LogGeneration(generation int, meanFitness, maxFitness float64, populationSize, partitionCount int) {
	logger.Info("generation",
		"generation", generation,
		"mean_fitness", meanFitness,
		"max_fitness", maxFitness,
		"population", populationSize,
		"partitions", partitionCount,
	)
}

// LogRenderFailure reports that the final best-genome render evaluation (spec.md
// §4.9, `run`) failed for task. A render failure never aborts a run, so this logs
// at Warn rather than Error.
func LogRenderFailure(task string, err error) {
	logger.Warn("final render evaluation failed", "task", task, "error", err)
}
