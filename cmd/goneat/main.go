// Command goneat is a thin driver that wires a task's Evaluator to the
// evolutionary loop and reports the best genome of the resulting run and the
// number of generations it evaluated.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/adipandas/goneat/experiment"
	"github.com/adipandas/goneat/experiments/xor"
	"github.com/adipandas/goneat/neat"
)

func main() {
	task := flag.String("task", "xor", "task to evolve: xor, cartpole, lunar")
	configPath := flag.String("config", "", "path to a .yml/.yaml or plain-text NEAT options file")
	seed := flag.Int64("seed", 1, "seed for the run's random generator")
	flag.Parse()

	if err := run(*task, *configPath, *seed); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(task, configPath string, seed int64) error {
	var opts *neat.Options
	var err error
	if configPath != "" {
		opts, err = neat.ReadNeatOptionsFromFile(configPath)
		if err != nil {
			return err
		}
	} else {
		opts = &neat.Options{
			PopulationSize: 250,
			InputSize:      2,
			OutputSize:     1,
			StopThreshold:  3.999,
			MaxGenerations: 200,
			StopCriterion:  neat.StopCriterionMax,
		}
	}
	opts.Task = task
	opts.Seed = seed

	var eval experiment.Evaluator
	switch task {
	case "xor":
		eval = xor.Evaluator{}
	case "cartpole", "lunar":
		return fmt.Errorf("task %q requires an externally supplied experiment.Evaluator driving a gym-style environment, which this module does not provide", task)
	default:
		return fmt.Errorf("unsupported task: %q", task)
	}

	best, history, err := experiment.Run(context.Background(), eval, opts)
	if err != nil {
		return err
	}

	fmt.Printf("best genome: %s\n", best)
	fmt.Printf("generations run: %d\n", len(history.Max))
	return nil
}
