// Package catalog loads drill-pipe and drill-collar catalogs from YAML or CSV files and
// turns them into mechanical components.
package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wellsim/wellsim/drill"
	"github.com/wellsim/wellsim/drill/mech"
)

// Entry is one catalog row: the geometric columns plus free-form info.
type Entry struct {
	Name          string            `yaml:"name"`
	UnitWeight    float64           `yaml:"unit_weight"`    // lb/ft
	OuterDiameter float64           `yaml:"outer_diameter"` // in
	InnerDiameter float64           `yaml:"inner_diameter"` // in
	Info          map[string]string `yaml:"info,omitempty"`
}

// Catalog holds both component families. Either list may be empty.
type Catalog struct {
	Pipes   []Entry `yaml:"pipes"`
	Collars []Entry `yaml:"collars"`
}

// LoadYAML parses a catalog document.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadYAML(r io.Reader) (*Catalog, error) {
	var c Catalog
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return &c, nil
}

// LoadPipes reads drill-pipe entries from path. .yaml/.yml files use the pipes list;
// anything else is read as CSV with the pipe sheet headers.
func LoadPipes(path string) ([]Entry, error) {
	return load(path, mech.KindPipe)
}

// LoadCollars reads drill-collar entries from path, like LoadPipes.
func LoadCollars(path string) ([]Entry, error) {
	return load(path, mech.KindCollar)
}

func load(path string, kind mech.Kind) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s catalog: %w", kind, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		c, err := LoadYAML(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		if kind == mech.KindCollar {
			return c.Collars, nil
		}
		return c.Pipes, nil
	default:
		if kind == mech.KindCollar {
			return ReadCSV(bytes.NewReader(data), CollarColumns)
		}
		return ReadCSV(bytes.NewReader(data), PipeColumns)
	}
}

// Body converts e into a mechanical body in the given fluid.
func (e Entry) Body(fluid drill.FluidConfig) mech.Body {
	return mech.Body{
		Name:          e.Name,
		UnitWeight:    e.UnitWeight,
		OuterDiameter: e.OuterDiameter,
		InnerDiameter: e.InnerDiameter,
		Fluid:         fluid,
		Info:          e.Info,
	}
}

// Pipes builds drill pipe for every entry. A nil friction model selects mech.SoftString.
func Pipes(entries []Entry, fluid drill.FluidConfig, loads drill.PipeLoadConfig, friction mech.FrictionModel) ([]*mech.DrillPipe, error) {
	out := make([]*mech.DrillPipe, 0, len(entries))
	for i, e := range entries {
		p, err := mech.NewDrillPipe(e.Body(fluid), loads, friction)
		if err != nil {
			return nil, fmt.Errorf("pipe %d (%s): %w", i, e.Name, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// Collars builds drill collars for every entry.
func Collars(entries []Entry, fluid drill.FluidConfig) ([]*mech.DrillCollar, error) {
	out := make([]*mech.DrillCollar, 0, len(entries))
	for i, e := range entries {
		c, err := mech.NewDrillCollar(e.Body(fluid))
		if err != nil {
			return nil, fmt.Errorf("collar %d (%s): %w", i, e.Name, err)
		}
		out = append(out, c)
	}
	return out, nil
}
