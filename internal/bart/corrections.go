package bart

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Corrections maps a station abbreviation to the canonical display name
// that should replace whatever the upstream reports for it.
type Corrections map[string]string

// DefaultCorrections returns the built-in correction table. The upstream
// reports the Coliseum station under a combined name that no rider or
// schedule request recognizes.
func DefaultCorrections() Corrections {
	return Corrections{
		"COLS": "Coliseum",
	}
}

type correctionEntry struct {
	Abbr string `yaml:"abbr" validate:"required,alphanum"`
	Name string `yaml:"name" validate:"required"`
}

type correctionsFile struct {
	Corrections []correctionEntry `yaml:"corrections" validate:"required,dive"`
}

// LoadCorrections reads a correction table from a YAML file and validates
// it. The file replaces (not merges with) the built-in defaults, so a
// deployment can retire a correction once upstream fixes its data.
func LoadCorrections(path string) (Corrections, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corrections file: %w", err)
	}

	var file correctionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing corrections file: %w", err)
	}

	v := validator.New()
	if err := v.Struct(file); err != nil {
		return nil, fmt.Errorf("invalid corrections file: %w", err)
	}

	corrections := make(Corrections, len(file.Corrections))
	for _, entry := range file.Corrections {
		corrections[entry.Abbr] = entry.Name
	}
	return corrections, nil
}

// Apply returns the canonical name for the given abbreviation, or the
// reported name unchanged when no correction exists.
func (c Corrections) Apply(abbr, name string) string {
	if corrected, ok := c[abbr]; ok {
		return corrected
	}
	return name
}
