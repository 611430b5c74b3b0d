// Package problemset reads and writes YAML files of unit problems and graded submissions.
package problemset

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/at-ishikawa/mathgrade/internal/grading"
	"github.com/at-ishikawa/mathgrade/internal/linear"
)

// ErrEmptySet is returned when a file contains no problems.
var ErrEmptySet = errors.New("problem set has no problems")

// Set is the problems of one unit.
type Set struct {
	Unit     string           `yaml:"unit"`
	Problems []linear.Problem `yaml:"problems"`
}

// Load reads a problem set from a YAML file.
func Load(path string) (Set, error) {
	set, err := readYamlFile[Set](path)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Set{}, fmt.Errorf("load %s: %w", path, ErrEmptySet)
		}
		return Set{}, fmt.Errorf("readYamlFile(%s) > %w", path, err)
	}
	if len(set.Problems) == 0 {
		return Set{}, fmt.Errorf("load %s: %w", path, ErrEmptySet)
	}
	return set, nil
}

// LoadDir reads every .yml and .yaml problem set under dir, sorted by path.
func LoadDir(dir string) ([]Set, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".yml" || ext == ".yaml" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("filepath.WalkDir(%s) > %w", dir, err)
	}
	sort.Strings(paths)

	sets := make([]Set, 0, len(paths))
	for _, path := range paths {
		set, err := Load(path)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// Write stores a problem set as YAML.
func Write(path string, set Set) error {
	if err := writeYamlFile(path, set); err != nil {
		return fmt.Errorf("writeYamlFile(%s) > %w", path, err)
	}
	return nil
}

type submissionsFile struct {
	Submissions []grading.Submission `yaml:"submissions"`
}

// LoadSubmissions reads a YAML file of submissions to grade.
func LoadSubmissions(path string) ([]grading.Submission, error) {
	f, err := readYamlFile[submissionsFile](path)
	if err != nil {
		return nil, fmt.Errorf("readYamlFile(%s) > %w", path, err)
	}
	return f.Submissions, nil
}
