package schematic

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// JSONSchema returns the JSON Schema of a schematic document, for editors
// and services that want to check documents before sending them.
func JSONSchema() ([]byte, error) {
	r := &jsonschema.Reflector{ExpandedStruct: true}
	s := r.Reflect(&Schematic{})
	s.Title = "circuitloop schematic"
	s.Description = "Components placed on grid coordinates and axis-aligned wires joining grid points."

	return json.MarshalIndent(s, "", "  ")
}
