// Package scenario loads grid coverage problems from YAML or HCL files.
//
// YAML:
//
//	name: corners
//	rows: 4
//	cols: 4
//	metric: chebyshev
//	strategy: auto
//	stations:
//	  - {row: 0, col: 0}
//	  - {row: 3, col: 3}
//
// HCL:
//
//	name   = "corners"
//	rows   = 4
//	cols   = 4
//	metric = "chebyshev"
//	station {
//	  row = 0
//	  col = 0
//	}
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/coverage"
	"github.com/katalvlaran/coverage/gridgraph"
	"github.com/katalvlaran/coverage/station"
)

var (
	// ErrUnknownFormat is returned for a file extension other than .yaml, .yml or .hcl.
	ErrUnknownFormat = errors.New("scenario: unknown file format")
	// ErrDecode wraps YAML and HCL syntax or schema errors.
	ErrDecode = errors.New("scenario: decode failed")
)

// Station is one facility position.
type Station struct {
	Row int `yaml:"row" hcl:"row"`
	Col int `yaml:"col" hcl:"col"`
}

// Scenario is a grid, its stations and optional solver choices. Empty
// Metric and Strategy leave the choice to the caller.
type Scenario struct {
	Name     string    `yaml:"name,omitempty"`
	Rows     int       `yaml:"rows"`
	Cols     int       `yaml:"cols"`
	Metric   string    `yaml:"metric,omitempty"`
	Strategy string    `yaml:"strategy,omitempty"`
	Stations []Station `yaml:"stations"`
}

// hclFile mirrors Scenario for gohcl, which needs block slices of pointers.
type hclFile struct {
	Name     string     `hcl:"name,optional"`
	Rows     int        `hcl:"rows"`
	Cols     int        `hcl:"cols"`
	Metric   string     `hcl:"metric,optional"`
	Strategy string     `hcl:"strategy,optional"`
	Stations []*Station `hcl:"station,block"`
}

// Load reads path and decodes it according to its extension.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	case ".hcl":
		return DecodeHCL(data, path)
	}
	return Scenario{}, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// DecodeYAML decodes a single YAML document. Unknown keys are rejected.
func DecodeYAML(data []byte) (Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return Scenario{}, fmt.Errorf("%w: yaml: %w", ErrDecode, err)
	}
	return sc, nil
}

// DecodeHCL decodes an HCL body; filename is used in diagnostics only.
func DecodeHCL(data []byte, filename string) (Scenario, error) {
	f, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return Scenario{}, fmt.Errorf("%w: hcl: %w", ErrDecode, diags)
	}
	var raw hclFile
	if diags := gohcl.DecodeBody(f.Body, nil, &raw); diags.HasErrors() {
		return Scenario{}, fmt.Errorf("%w: hcl: %w", ErrDecode, diags)
	}

	sc := Scenario{
		Name:     raw.Name,
		Rows:     raw.Rows,
		Cols:     raw.Cols,
		Metric:   raw.Metric,
		Strategy: raw.Strategy,
		Stations: make([]Station, len(raw.Stations)),
	}
	for i, st := range raw.Stations {
		sc.Stations[i] = *st
	}
	return sc, nil
}

// Raw returns the stations as (row, col) pairs.
func (sc Scenario) Raw() [][2]int {
	raw := make([][2]int, len(sc.Stations))
	for i, st := range sc.Stations {
		raw[i] = [2]int{st.Row, st.Col}
	}
	return raw
}

// Build validates the scenario's grid and stations.
// Failures wrap coverage.ErrValidation.
func (sc Scenario) Build() (gridgraph.Grid, station.Set, error) {
	s, err := coverage.BuildStationSet(sc.Rows, sc.Cols, sc.Raw())
	if err != nil {
		return gridgraph.Grid{}, station.Set{}, err
	}
	return gridgraph.Grid{Rows: sc.Rows, Cols: sc.Cols}, s, nil
}
