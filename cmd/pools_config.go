package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMalformedInput indicates numbers that could not be parsed from console,
// flag or file input.
var ErrMalformedInput = errors.New("malformed input")

// PoolDefinition is the three numbers that define one pool.
type PoolDefinition struct {
	Smallest int `yaml:"smallest"`
	Biggest  int `yaml:"biggest"`
	Count    int `yaml:"count"`
}

func (d PoolDefinition) String() string {
	return fmt.Sprintf("%d:%d:%d", d.Smallest, d.Biggest, d.Count)
}

// PoolsFile represents the full pool definition file.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type PoolsFile struct {
	Pools       []PoolDefinition `yaml:"pools"`
	Repetitions int              `yaml:"repetitions"`
}

// loadPoolsFile parses a pool definition file. Unknown keys are rejected so
// a typo such as "bigest" fails loudly instead of yielding a zero.
func loadPoolsFile(path string) (PoolsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PoolsFile{}, fmt.Errorf("reading pools file %s: %w", path, err)
	}

	var pf PoolsFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&pf); err != nil {
		return PoolsFile{}, fmt.Errorf("%w: parsing pools file %s: %v", ErrMalformedInput, path, err)
	}
	if pf.Repetitions < 0 {
		return PoolsFile{}, fmt.Errorf("%w: pools file %s: repetitions must be >= 0, got %d", ErrMalformedInput, path, pf.Repetitions)
	}
	return pf, nil
}

// parsePoolSpec parses "smallest:biggest:count".
func parsePoolSpec(spec string) (PoolDefinition, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return PoolDefinition{}, fmt.Errorf("%w: pool %q must be smallest:biggest:count", ErrMalformedInput, spec)
	}
	nums, err := parseInts(parts)
	if err != nil {
		return PoolDefinition{}, fmt.Errorf("pool %q: %w", spec, err)
	}
	return PoolDefinition{Smallest: nums[0], Biggest: nums[1], Count: nums[2]}, nil
}

func parseInts(fields []string) ([]int, error) {
	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, f)
		}
		nums[i] = n
	}
	return nums, nil
}
