package schema

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Column names understood by the generator.
const (
	ColServerID     = "server_id"
	ColServerName   = "server_name"
	ColStatus       = "status"
	ColIPv4         = "ipv4"
	ColDescription  = "description"
	ColLocation     = "location"
	ColOS           = "os"
	ColIntervalTime = "interval_time"
	ColCPU          = "cpu"
	ColRAM          = "ram"
	ColDisk         = "disk"
)

// Address numbering modes for the ipv4 column.
const (
	AddressSequential = "sequential" // subnet + sequential host suffix
	AddressOctets     = "octets"     // record index split into octets
)

var knownColumns = map[string]bool{
	ColServerID:     true,
	ColServerName:   true,
	ColStatus:       true,
	ColIPv4:         true,
	ColDescription:  true,
	ColLocation:     true,
	ColOS:           true,
	ColIntervalTime: true,
	ColCPU:          true,
	ColRAM:          true,
	ColDisk:         true,
}

// Schema describes one inventory variant: which columns a record carries,
// the status domain it draws from, and how addresses are numbered.
type Schema struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Columns     []string `yaml:"columns"`
	Statuses    []string `yaml:"statuses"`
	AddressMode string   `yaml:"address_mode"`
	Subnet      string   `yaml:"subnet"` // sequential mode only, e.g. "192.168.100"
	Count       int      `yaml:"count"`  // default row count, overrideable per run
	Output      string   `yaml:"output"` // optional output path

	Source string `yaml:"-"`
}

// Minimal mirrors the small fabrication script: every field in a flat /24,
// status pinned to ON, plus the agent polling interval.
func Minimal() *Schema {
	return &Schema{
		Name:        "minimal",
		Description: "flat subnet, ON-only, polling interval",
		Columns: []string{
			ColServerID, ColServerName, ColStatus, ColIPv4,
			ColDescription, ColLocation, ColOS, ColIntervalTime,
		},
		Statuses:    []string{"ON"},
		AddressMode: AddressSequential,
		Subnet:      "192.168.100",
		Count:       9,
	}
}

// Extended mirrors the bulk fabrication script: hardware sizing columns,
// both statuses, addresses spread by splitting the index into octets.
func Extended() *Schema {
	return &Schema{
		Name:        "extended",
		Description: "hardware sizing, ON/OFF, index-derived addresses",
		Columns: []string{
			ColServerID, ColServerName, ColStatus, ColIPv4,
			ColDescription, ColLocation, ColOS, ColCPU, ColRAM, ColDisk,
		},
		Statuses:    []string{"ON", "OFF"},
		AddressMode: AddressOctets,
		Count:       10000,
	}
}

// Builtin resolves a built-in variant by name.
func Builtin(name string) (*Schema, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "minimal":
		return Minimal(), nil
	case "extended", "":
		return Extended(), nil
	default:
		return nil, fmt.Errorf("unknown variant %q (must be 'minimal' or 'extended')", name)
	}
}

// FromYAML parses a raw YAML schema definition.
func FromYAML(data string) (*Schema, error) {
	trimmed := strings.TrimSpace(data)
	if trimmed == "" {
		return nil, errors.New("schema YAML is empty")
	}
	var sc Schema
	if err := yaml.Unmarshal([]byte(trimmed), &sc); err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// LoadFile loads a schema from a YAML file path.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}
	sc, err := FromYAML(string(data))
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", path, err)
	}
	sc.Source = path
	return sc, nil
}

// LoadGlob loads every schema file matching a doublestar pattern,
// in lexical path order. Zero matches is an error.
func LoadGlob(pattern string) ([]*Schema, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid schema pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no schema files match %q", pattern)
	}
	sort.Strings(matches)
	schemas := make([]*Schema, 0, len(matches))
	for _, path := range matches {
		sc, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, sc)
	}
	return schemas, nil
}

// Validate checks the schema for fields the generator cannot honor.
func (s *Schema) Validate() error {
	if s.Name == "" {
		return errors.New("schema missing required field 'name'")
	}
	if len(s.Columns) == 0 {
		return errors.New("schema has no columns")
	}
	seen := make(map[string]bool, len(s.Columns))
	for _, col := range s.Columns {
		if !knownColumns[col] {
			return fmt.Errorf("unknown column %q", col)
		}
		if seen[col] {
			return fmt.Errorf("duplicate column %q", col)
		}
		seen[col] = true
	}
	if seen[ColStatus] && len(s.Statuses) == 0 {
		return errors.New("schema has a status column but an empty status set")
	}
	for _, st := range s.Statuses {
		if st != "ON" && st != "OFF" {
			return fmt.Errorf("invalid status %q (must be ON or OFF)", st)
		}
	}
	switch s.AddressMode {
	case "", AddressOctets:
	case AddressSequential:
		if s.Subnet == "" {
			return errors.New("sequential address mode requires a subnet")
		}
		if strings.Count(s.Subnet, ".") != 2 {
			return fmt.Errorf("invalid subnet %q (expected three octets, e.g. 192.168.100)", s.Subnet)
		}
	default:
		return fmt.Errorf("invalid address_mode %q (must be %q or %q)", s.AddressMode, AddressSequential, AddressOctets)
	}
	if s.Count < 0 {
		return errors.New("count cannot be negative")
	}
	return nil
}

// Has reports whether the schema carries the named column.
func (s *Schema) Has(col string) bool {
	for _, c := range s.Columns {
		if c == col {
			return true
		}
	}
	return false
}
