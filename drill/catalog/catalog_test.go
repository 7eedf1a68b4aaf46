package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellsim/wellsim/drill"
	"github.com/wellsim/wellsim/drill/mech"
)

func testdataPath(name string) string {
	return filepath.Join("..", "..", "testdata", name)
}

func TestLoadPipes_CSVSheet(t *testing.T) {
	// GIVEN the API drill-pipe sheet with its published headers
	entries, err := LoadPipes(testdataPath("drill_pipes.csv"))
	require.NoError(t, err)

	// THEN every row is parsed with geometric columns as numbers
	require.Len(t, entries, 6)
	e := entries[3]
	assert.Equal(t, 19.5, e.UnitWeight)
	assert.Equal(t, 5.0, e.OuterDiameter)
	assert.Equal(t, 4.276, e.InnerDiameter)
	assert.Equal(t, "row 4", e.Name)

	// AND the remaining columns become info, with header whitespace trimmed
	assert.Equal(t, "S-135", e.Info["Grade"])
	assert.Equal(t, "26040", e.Info["MUT Min (ft-lbs)"])
	assert.NotContains(t, e.Info, "OD (in)")
}

func TestLoadCollars_CSVSheet(t *testing.T) {
	entries, err := LoadCollars(testdataPath("drill_collars.csv"))
	require.NoError(t, err)

	require.Len(t, entries, 4)
	assert.Equal(t, 147.0, entries[2].UnitWeight)
	assert.Equal(t, 2.8125, entries[2].InnerDiameter)
	assert.Equal(t, "Slick", entries[2].Info["Type"])
}

func TestLoadPipesAndCollars_YAML(t *testing.T) {
	pipes, err := LoadPipes(testdataPath("catalog.yaml"))
	require.NoError(t, err)
	collars, err := LoadCollars(testdataPath("catalog.yaml"))
	require.NoError(t, err)

	require.Len(t, pipes, 2)
	assert.Equal(t, "5in 19.5 S-135", pipes[0].Name)
	assert.Equal(t, "NC50", pipes[0].Info["Connection"])
	require.Len(t, collars, 1)
	assert.Equal(t, 8.0, collars[0].OuterDiameter)
}

func TestLoadYAML_RejectsUnknownKeys(t *testing.T) {
	doc := "pipes:\n  - name: x\n    unit_wieght: 3\n"
	_, err := LoadYAML(strings.NewReader(doc))
	assert.Error(t, err)
}

func TestLoadYAML_EmptyDocument(t *testing.T) {
	c, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, c.Pipes)
	assert.Empty(t, c.Collars)
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "missing column", data: "OD (in),TUBE ID (in)\n5,4\n"},
		{name: "non-numeric", data: "Nominal Weight (lb/ft),OD (in),TUBE ID (in)\nheavy,5,4\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tc.data), PipeColumns)
			assert.ErrorIs(t, err, drill.ErrInvalidConfig)
		})
	}
}

func TestReadCSV_NameColumnAndEmptyInfo(t *testing.T) {
	data := "Name,Nominal Weight (lb/ft),OD (in),TUBE ID (in),Grade\nlight,13.3,3.5,2.764,\n"
	entries, err := ReadCSV(strings.NewReader(data), PipeColumns)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "light", entries[0].Name)
	assert.Empty(t, entries[0].Info)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := LoadPipes(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPipesAndCollars_BuildComponents(t *testing.T) {
	entries, err := LoadPipes(testdataPath("drill_pipes.csv"))
	require.NoError(t, err)

	pipes, err := Pipes(entries, drill.DefaultFluidConfig(), drill.DefaultPipeLoadConfig(), nil)
	require.NoError(t, err)
	require.Len(t, pipes, len(entries))
	assert.IsType(t, mech.SoftString{}, pipes[0].Friction)
	assert.Equal(t, mech.KindPipe, pipes[0].Kind())

	_, err = Collars([]Entry{{Name: "bad", OuterDiameter: 4, InnerDiameter: 5}}, drill.DefaultFluidConfig())
	assert.ErrorIs(t, err, drill.ErrInvalidConfig)
}
