package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"server-faker/pkg/schema"
)

// String defaults are overrideable at build time via -ldflags -X
// Example: -ldflags "-X 'server-faker/pkg/config.DefaultCountStr=500'"
var (
	DefaultOutputStr     = "servers_10000.xlsx"
	DefaultCountStr      = "" // empty -> schema default
	DefaultVariantStr    = "extended"
	DefaultSchemaPathStr = ""
	DefaultSchemaGlobStr = ""
	DefaultSeedStr       = "0" // 0 -> time-based seed
	DefaultQuietStr      = "false"
)

type Config struct {
	Output     string
	Count      int
	Variant    string
	SchemaPath string
	SchemaGlob string
	Seed       int64
	Quiet      bool

	Schemas []*schema.Schema
}

func DefaultConfig() *Config {
	return &Config{
		Output:     orString(DefaultOutputStr, "servers_10000.xlsx"),
		Count:      parseIntOr(DefaultCountStr, -1),
		Variant:    orString(DefaultVariantStr, "extended"),
		SchemaPath: DefaultSchemaPathStr,
		SchemaGlob: DefaultSchemaGlobStr,
		Seed:       parseInt64Or(DefaultSeedStr, 0),
		Quiet:      parseBoolOr(DefaultQuietStr, false),
	}
}

func ParseFlags(appName string) (*Config, error) {
	config := DefaultConfig()

	flag.StringVar(&config.Output, "out", config.Output, "Output file path (.xlsx, .csv, or .csv.lz4)")
	flag.IntVar(&config.Count, "count", config.Count, "Number of records to generate (-1 uses the schema default)")
	flag.StringVar(&config.Variant, "variant", config.Variant, "Built-in schema variant: minimal or extended")
	flag.StringVar(&config.SchemaPath, "schema", config.SchemaPath, "Path to a schema YAML file (overrides -variant)")
	flag.StringVar(&config.SchemaGlob, "schemas", config.SchemaGlob, "Glob pattern of schema YAML files; one export per match")
	flag.Int64Var(&config.Seed, "seed", config.Seed, "Deterministic seed (0 uses the current time)")
	flag.BoolVar(&config.Quiet, "quiet", config.Quiet, "Suppress the completion message")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", appName)
		fmt.Fprintf(os.Stderr, "\nFabricates synthetic server-inventory records and exports them as a spreadsheet.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -count 10000 -out servers_10000.xlsx\n", appName)
		fmt.Fprintf(os.Stderr, "  %s -variant minimal -count 9 -out lab.csv\n", appName)
		fmt.Fprintf(os.Stderr, "  %s -schemas 'schemas/**/*.yaml'\n", appName)
	}

	flag.Parse()

	// Resolve the schemas this run exports: a glob, a single YAML file,
	// or one of the built-in variants.
	switch {
	case config.SchemaGlob != "":
		schemas, err := schema.LoadGlob(config.SchemaGlob)
		if err != nil {
			return nil, err
		}
		config.Schemas = schemas
	case config.SchemaPath != "":
		sc, err := schema.LoadFile(config.SchemaPath)
		if err != nil {
			return nil, err
		}
		config.Schemas = []*schema.Schema{sc}
	default:
		sc, err := schema.Builtin(config.Variant)
		if err != nil {
			return nil, err
		}
		config.Schemas = []*schema.Schema{sc}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	if c.Output == "" {
		return errors.New("output path is required")
	}
	if c.Count < -1 {
		return errors.New("count cannot be negative")
	}
	if len(c.Schemas) > 1 {
		for _, sc := range c.Schemas {
			if sc.Output == "" {
				return fmt.Errorf("schema %q has no output path; -out cannot apply to multiple schemas", sc.Name)
			}
		}
	}
	return nil
}

// CountFor resolves the row count for one schema: the -count flag when
// given, otherwise the schema's own default.
func (c *Config) CountFor(sc *schema.Schema) int {
	if c.Count >= 0 {
		return c.Count
	}
	return sc.Count
}

// OutputFor resolves the output path for one schema.
func (c *Config) OutputFor(sc *schema.Schema) string {
	if sc.Output != "" {
		return sc.Output
	}
	return c.Output
}

func orString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func parseIntOr(value string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return v
}

func parseInt64Or(value string, fallback int64) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return fallback
	}
	return v
}

func parseBoolOr(value string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return v
}
