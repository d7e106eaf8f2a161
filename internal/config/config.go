// Package config loads the optional YAML job file that names the dataset
// and output paths, so repeated runs don't need the full flag set.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default dataset locations, relative to the working directory.
const (
	DefaultNEOPath = "data/neos.csv"
	DefaultCADPath = "data/cad.json"
)

// Job is the root of a YAML job file.
type Job struct {
	Datasets Datasets `yaml:"datasets"`
	Output   Output   `yaml:"output,omitempty"`
}

// Datasets names the two input files.
type Datasets struct {
	// NEOs is the path of the tabular NEO dataset.
	NEOs string `yaml:"neos"`
	// Approaches is the path of the close-approach JSON dataset.
	Approaches string `yaml:"approaches"`
}

// Output names the serialization target.
type Output struct {
	// Path of the output file; the extension picks the format.
	Path string `yaml:"path,omitempty"`
}

// LoadFile loads and parses a YAML job file from the given path.
func LoadFile(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Job.
func Parse(data []byte) (*Job, error) {
	var job Job

	err := yaml.Unmarshal(data, &job)
	if err != nil {
		return nil, fmt.Errorf("failed to parse job YAML: %w", err)
	}

	applyDefaults(&job)

	return &job, nil
}

// Default returns a Job holding only the default dataset locations.
func Default() *Job {
	job := &Job{}
	applyDefaults(job)

	return job
}

// applyDefaults fills in default values for unset paths.
func applyDefaults(job *Job) {
	if job.Datasets.NEOs == "" {
		job.Datasets.NEOs = DefaultNEOPath
	}
	if job.Datasets.Approaches == "" {
		job.Datasets.Approaches = DefaultCADPath
	}
}
