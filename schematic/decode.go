package schematic

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format names a schematic document encoding.
type Format string

const (
	// FormatJSON is the encoding the lesson editor saves.
	FormatJSON Format = "json"
	// FormatYAML is convenient for hand-written fixtures.
	FormatYAML Format = "yaml"
	// FormatTOML uses [[elements]] and [[wires]] tables.
	FormatTOML Format = "toml"
)

// ParseFormat maps a format name or file extension ("json", ".yml", …) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Decode reads one schematic document from r and validates it.
// Malformed documents and invalid content both wrap ErrInvalidSchematic.
func Decode(r io.Reader, f Format, opts ...Option) (Schematic, error) {
	var s Schematic
	var err error
	switch f {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&s)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&s)
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&s)
	default:
		return Schematic{}, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	if err != nil {
		return Schematic{}, fmt.Errorf("%w: decode %s: %w", ErrInvalidSchematic, f, err)
	}

	return s.Validate(opts...)
}

// Load opens path, picks the format from its extension and decodes it.
func Load(path string, opts ...Option) (Schematic, error) {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return Schematic{}, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return Schematic{}, err
	}
	defer fh.Close()

	s, err := Decode(fh, f, opts...)
	if err != nil {
		return Schematic{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}
