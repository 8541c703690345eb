package schematic_test

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/katalvlaran/circuitloop/schematic"
)

func TestElementIdentity(t *testing.T) {
	el := schematic.Element{Type: "lamp", X: 4, Y: 2}
	assert.Equal(t, "elem_4_2", el.ID())
	assert.Equal(t, "elem_4_2_1", el.Terminal1())
	assert.Equal(t, "elem_4_2_2", el.Terminal2())

	neg := schematic.Element{Type: "lamp", X: -1, Y: 0}
	assert.Equal(t, "elem_-1_0", neg.ID())
}

func TestElementOrientation(t *testing.T) {
	cases := []struct {
		rot  float64
		want bool
	}{
		{0, true},
		{math.Pi / 2, false},
		{math.Pi, true},
		{3 * math.Pi / 2, false},
		{math.Pi / 4, true},    // |cos| ≈ 0.707
		{0.4 * math.Pi, false}, // |cos| ≈ 0.309
		{0.6 * math.Pi, false},
	}
	for _, tc := range cases {
		el := schematic.Element{Rotation: tc.rot}
		assert.Equal(t, tc.want, el.Horizontal(), "rotation %v", tc.rot)
	}
}

func TestTagsLookup(t *testing.T) {
	tags := schematic.DefaultTags()
	for tag, want := range map[string]schematic.Kind{
		"bat":       schematic.KindSource,
		"lamp":      schematic.KindLoad,
		" LAMP ":    schematic.KindLoad,
		"sw_open":   schematic.KindSwitchOpen,
		"sw_closed": schematic.KindSwitchClosed,
		"motor":     schematic.KindOther,
	} {
		k, ok := tags.Lookup(tag)
		assert.True(t, ok, tag)
		assert.Equal(t, want, k, tag)
	}
	_, ok := tags.Lookup("sw_toggle")
	assert.False(t, ok, "no prefix matching on switch tags")

	assert.True(t, schematic.KindSwitchOpen.IsSwitch())
	assert.True(t, schematic.KindSwitchClosed.IsSwitch())
	assert.False(t, schematic.KindLoad.IsSwitch())
	assert.Equal(t, "switch-open", schematic.KindSwitchOpen.String())
}

func TestValidate_ResolvesKinds(t *testing.T) {
	in := schematic.Schematic{
		Elements: []schematic.Element{
			{Type: "bat", X: 2, Y: 2},
			{Kind: schematic.KindLoad, X: 4, Y: 2},
			{Type: "relay", X: 6, Y: 2},
		},
		Wires: []schematic.WireSegment{{X1: 1, Y1: 1, X2: 1, Y2: 1}},
	}
	out, err := in.Validate(schematic.WithTag("relay", schematic.KindSwitchClosed))
	require.NoError(t, err)
	require.Len(t, out.Elements, 3)
	assert.Equal(t, schematic.KindSource, out.Elements[0].Kind)
	assert.Equal(t, "lamp", out.Elements[1].Type)
	assert.Equal(t, schematic.KindSwitchClosed, out.Elements[2].Kind)
	assert.Equal(t, schematic.KindUnknown, in.Elements[0].Kind, "input is not mutated")
}

func TestValidate_CanonicalTags(t *testing.T) {
	out, err := schematic.Schematic{Elements: []schematic.Element{
		{Type: " LAMP ", X: 0, Y: 0},
		{Type: "Sw_Open", X: 2, Y: 0},
	}}.Validate()
	require.NoError(t, err)
	assert.Equal(t, "lamp", out.Elements[0].Type)
	assert.Equal(t, "sw_open", out.Elements[1].Type)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	in := schematic.Schematic{
		Elements: []schematic.Element{
			{Type: "flux_capacitor", X: 0, Y: 0},
			{Type: "lamp", X: 1, Y: 0, Rotation: math.NaN()},
		},
		Wires: []schematic.WireSegment{
			{X1: 0, Y1: 0, X2: 3, Y2: 0},
			{X1: 0, Y1: 0, X2: 2, Y2: 2},
		},
	}
	_, err := in.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, schematic.ErrInvalidSchematic)
	assert.ErrorIs(t, err, schematic.ErrUnknownType)
	assert.ErrorIs(t, err, schematic.ErrInvalidRotation)
	assert.ErrorIs(t, err, schematic.ErrNotAxisAligned)
	assert.Len(t, multierr.Errors(err), 3)

	_, err = in.Validate(schematic.WithTag("flux_capacitor", schematic.KindOther))
	assert.Len(t, multierr.Errors(err), 2)

	_, err = schematic.Schematic{Elements: []schematic.Element{{Type: "lamp"}}}.
		Validate(schematic.WithTag("lamp", schematic.KindUnknown))
	assert.ErrorIs(t, err, schematic.ErrUnknownType, "KindUnknown removes a tag")
}

func TestValidate_WireLengthCap(t *testing.T) {
	assert.Equal(t, uint64(7), schematic.WireSegment{X1: 3, Y1: 1, X2: -4, Y2: 1}.Length())
	assert.Equal(t, uint64(math.MaxUint64),
		schematic.WireSegment{X1: math.MinInt, Y1: 0, X2: math.MaxInt, Y2: 0}.Length())

	in := schematic.Schematic{Wires: []schematic.WireSegment{
		{X1: 0, Y1: 0, X2: 6, Y2: 0},
		{X1: 6, Y1: 0, X2: 6, Y2: 4},
		{X1: 6, Y1: 4, X2: 0, Y2: 4},
	}}

	_, err := in.Validate(schematic.WithMaxWireLength(10))
	require.Error(t, err)
	assert.ErrorIs(t, err, schematic.ErrInvalidSchematic)
	assert.ErrorIs(t, err, schematic.ErrWireTooLong)
	assert.Len(t, multierr.Errors(err), 1)
	assert.Contains(t, err.Error(), "wire 2")

	_, err = in.Validate(schematic.WithMaxWireLength(16))
	assert.NoError(t, err)
	_, err = in.Validate(schematic.WithMaxWireLength(0))
	assert.NoError(t, err)

	huge := schematic.Schematic{Wires: []schematic.WireSegment{{X1: 0, Y1: 0, X2: 3_000_000, Y2: 0}}}
	_, err = huge.Validate()
	assert.ErrorIs(t, err, schematic.ErrWireTooLong, "default cap applies")
	_, err = schematic.Schematic{Wires: []schematic.WireSegment{
		{X1: math.MinInt, Y1: 0, X2: math.MaxInt, Y2: 0},
		{X1: math.MinInt, Y1: 1, X2: math.MaxInt, Y2: 1},
	}}.Validate()
	assert.ErrorIs(t, err, schematic.ErrWireTooLong)
}

const circuitJSON = `{
  "elements": [
    {"type": "bat", "x": 2, "y": 2, "rotation": 0},
    {"type": "lamp", "x": 4, "y": 2},
    {"type": "sw_open", "x": 6, "y": 2, "id": "ignored"}
  ],
  "wires": [{"x1": 2, "y1": 2, "x2": 4, "y2": 2}]
}`

const circuitYAML = `
elements:
  - {type: bat, x: 2, y: 2}
  - {type: lamp, x: 4, y: 2}
  - {type: sw_open, x: 6, y: 2, rotation: 1.5707963267948966}
wires:
  - {x1: 2, y1: 2, x2: 4, y2: 2}
`

func TestDecode(t *testing.T) {
	js, err := schematic.Decode(strings.NewReader(circuitJSON), schematic.FormatJSON)
	require.NoError(t, err)
	ym, err := schematic.Decode(strings.NewReader(circuitYAML), schematic.FormatYAML)
	require.NoError(t, err)

	require.Len(t, js.Elements, 3)
	require.Len(t, ym.Elements, 3)
	assert.Equal(t, js.Wires, ym.Wires)
	assert.Equal(t, schematic.KindSwitchOpen, ym.Elements[2].Kind)
	assert.False(t, ym.Elements[2].Horizontal())
	assert.True(t, js.Elements[2].Horizontal())
}

const circuitTOML = `
[[elements]]
type = "bat"
x = 2
y = 2

[[elements]]
type = "lamp"
x = 4
y = 2

[[elements]]
type = "sw_open"
x = 6
y = 2
rotation = 1.5707963267948966

[[wires]]
x1 = 2
y1 = 2
x2 = 4
y2 = 2
`

func TestDecode_TOML(t *testing.T) {
	ym, err := schematic.Decode(strings.NewReader(circuitYAML), schematic.FormatYAML)
	require.NoError(t, err)
	tm, err := schematic.Decode(strings.NewReader(circuitTOML), schematic.FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, ym, tm)

	_, err = schematic.Decode(strings.NewReader("[[elements]\ntype ="), schematic.FormatTOML)
	assert.ErrorIs(t, err, schematic.ErrInvalidSchematic)
}

func TestJSONSchema(t *testing.T) {
	raw, err := schematic.JSONSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "circuitloop schematic", doc["title"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok, "top-level properties")
	assert.Contains(t, props, "elements")
	assert.Contains(t, props, "wires")
	assert.Contains(t, string(raw), `"x1"`)
	assert.Contains(t, string(raw), "radians")
	assert.NotContains(t, string(raw), `"Kind"`)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := schematic.Decode(strings.NewReader(`{"elements": [`), schematic.FormatJSON)
	assert.ErrorIs(t, err, schematic.ErrInvalidSchematic)

	_, err = schematic.Decode(strings.NewReader(""), schematic.FormatYAML)
	assert.ErrorIs(t, err, schematic.ErrInvalidSchematic)

	_, err = schematic.Decode(strings.NewReader("{}"), schematic.Format("xml"))
	assert.ErrorIs(t, err, schematic.ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]schematic.Format{
		".json": schematic.FormatJSON, "JSON": schematic.FormatJSON,
		".yml": schematic.FormatYAML, "yaml": schematic.FormatYAML,
		".toml": schematic.FormatTOML,
	} {
		got, err := schematic.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := schematic.ParseFormat(".txt")
	assert.ErrorIs(t, err, schematic.ErrUnknownFormat)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lesson.yaml")
	require.NoError(t, os.WriteFile(path, []byte(circuitYAML), 0o600))

	s, err := schematic.Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Elements, 3)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"elements":[{"type":"x"}]}`), 0o600))
	_, err = schematic.Load(bad)
	assert.ErrorIs(t, err, schematic.ErrUnknownType)
	assert.Contains(t, err.Error(), "bad.json")

	_, err = schematic.Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
