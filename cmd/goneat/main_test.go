package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunRejectsUnsupportedTask(t *testing.T) {
	err := run("chess", "", 1)
	assert.Error(t, err)
}

func TestRunRejectsGymStyleTasks(t *testing.T) {
	err := run("cartpole", "", 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "gym-style")

	err = run("lunar", "", 1)
	assert.Error(t, err)
}

func TestRunRejectsMissingConfigFile(t *testing.T) {
	err := run("xor", "does-not-exist.yml", 1)
	assert.Error(t, err)
}
