package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RosterSchema is the top-level structure of a roster import file.
type RosterSchema struct {
	Students []StudentImport `json:"students" yaml:"students"`
}

// StudentImport is one student in a roster file. Enum fields accept the
// same aliases as the CLI flags ("cs", "3.5", "fall").
type StudentImport struct {
	Name           string              `json:"name" yaml:"name"`
	Major          string              `json:"major" yaml:"major"`
	Track          string              `json:"track,omitempty" yaml:"track,omitempty"`
	Year           int                 `json:"year" yaml:"year"`
	Term           string              `json:"term" yaml:"term"`
	Completed      []string            `json:"completed,omitempty" yaml:"completed,omitempty"`
	Summer         *bool               `json:"summer,omitempty" yaml:"summer,omitempty"`
	CreditLoad     string              `json:"credit_load,omitempty" yaml:"credit_load,omitempty"`
	GraduationGoal string              `json:"graduation_goal,omitempty" yaml:"graduation_goal,omitempty"`
	Selections     map[string][]string `json:"selections,omitempty" yaml:"selections,omitempty"`
}

// LoadRosterSchema reads a roster file. Files ending in .yaml or .yml are
// parsed as YAML and everything else as JSON.
func LoadRosterSchema(path string) (*RosterSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var schema RosterSchema
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &schema)
	default:
		err = json.Unmarshal(data, &schema)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing roster file: %w", err)
	}
	return &schema, nil
}
