package layout

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// layoutFile is the YAML document holding saved field positions.
type layoutFile struct {
	Positions map[string]filePosition `yaml:"positions"`
}

type filePosition struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// UnknownFieldsError reports layout-file entries that name fields outside
// the known set.
type UnknownFieldsError struct {
	Names []string
}

func (e *UnknownFieldsError) Error() string {
	return "layout file names unknown fields: " + strings.Join(e.Names, ", ")
}

// LoadFile reads saved field positions from a YAML layout file. Entries
// naming fields outside the known set are rejected with an
// UnknownFieldsError enumerating every offending name. Positions are
// returned as written; callers clamp them to the page before use.
func LoadFile(path string) (map[Field]Position, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout file: %w", err)
	}

	var lf layoutFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parsing layout file: %w", err)
	}

	var unknown []string
	out := make(map[Field]Position, len(lf.Positions))
	for name, p := range lf.Positions {
		f := Field(name)
		if !Known(f) {
			unknown = append(unknown, name)
			continue
		}
		out[f] = Position{X: p.X, Y: p.Y}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &UnknownFieldsError{Names: unknown}
	}
	return out, nil
}

// SaveFile writes the field-position mapping as a YAML layout file that
// LoadFile can read back.
func SaveFile(path string, positions map[Field]Position) error {
	lf := layoutFile{Positions: make(map[string]filePosition, len(positions))}
	for f, p := range positions {
		lf.Positions[string(f)] = filePosition{X: p.X, Y: p.Y}
	}

	data, err := yaml.Marshal(&lf)
	if err != nil {
		return fmt.Errorf("encoding layout file: %w", err)
	}
	if err := os.WriteFile(path, data, 0666); err != nil {
		return fmt.Errorf("writing layout file: %w", err)
	}
	return nil
}
