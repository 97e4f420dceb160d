package neat

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// LoadYAMLOptions loads run Options encoded as YAML.
func LoadYAMLOptions(r io.Reader) (*Options, error) {
	content, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var opts Options
	if err = yaml.Unmarshal(content, &opts); err != nil {
		return nil, errors.Wrap(err, "failed to decode NEAT options from YAML")
	}
	opts.WithDefaults()

	if err = InitLogger(opts.LogLevel); err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	if err = opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid NEAT options")
	}
	return &opts, nil
}

// LoadNeatOptions loads run Options from a flat "key value" plain-text format.
func LoadNeatOptions(r io.Reader) (*Options, error) {
	opts := &Options{}
	var name string
	var param string
	for {
		_, err := fmt.Fscanf(r, "%s %v\n", &name, &param)
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		switch name {
		case "pop_size":
			opts.PopulationSize = cast.ToInt(param)
		case "input_size":
			opts.InputSize = cast.ToInt(param)
		case "output_size":
			opts.OutputSize = cast.ToInt(param)
		case "stop_threshold":
			opts.StopThreshold = cast.ToFloat64(param)
		case "max_generations":
			opts.MaxGenerations = cast.ToInt(param)
		case "stop_criterion":
			opts.StopCriterion = StopCriterion(param)
		case "task":
			opts.Task = param
		case "seed":
			opts.Seed = cast.ToInt64(param)
		case "log_level":
			opts.LogLevel = param
		case "min_node_count":
			opts.MinNodeCount = cast.ToInt(param)
		case "elitism":
			opts.Elitism = cast.ToInt(param)
		case "cutoff_pct":
			opts.CutoffPct = cast.ToFloat64(param)
		case "min_fitness_range":
			opts.MinFitnessRange = cast.ToFloat64(param)
		case "min_species_size":
			opts.MinSpeciesSize = cast.ToInt(param)
		case "compatibility_threshold":
			opts.CompatibilityThreshold = cast.ToFloat64(param)
		default:
			return nil, errors.Errorf("unknown configuration parameter found: %s = %s", name, param)
		}
	}
	opts.WithDefaults()

	if err := InitLogger(opts.LogLevel); err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid NEAT options")
	}
	return opts, nil
}

// ReadNeatOptionsFromFile reads Options from configFilePath, resolving the
// file's encoding from its extension: .yml/.yaml decode as YAML, anything
// else as the plain-text format.
func ReadNeatOptionsFromFile(configFilePath string) (*Options, error) {
	configFile, err := os.Open(configFilePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open config file")
	}
	defer configFile.Close()

	fileName := configFile.Name()
	if strings.HasSuffix(fileName, "yml") || strings.HasSuffix(fileName, "yaml") {
		return LoadYAMLOptions(configFile)
	}
	return LoadNeatOptions(configFile)
}
