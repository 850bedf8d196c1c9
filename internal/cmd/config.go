package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/kestrelkb/keyhud/internal/config"
	"github.com/kestrelkb/keyhud/internal/configpaths"
	"github.com/kestrelkb/keyhud/keylabel"
)

// ConfigCommand groups configuration helper subcommands.
type ConfigCommand struct {
	Init   ConfigInit   `cmd:"" help:"Generate a configuration template"`
	Layout ConfigLayout `cmd:"" help:"Generate a sample layout file"`
}

// ConfigInit writes a config template with the demo command's defaults,
// derived by reflecting over the command struct and its kong tags.
type ConfigInit struct {
	Format string `help:"Output format" enum:"json,yaml,toml" default:"json"`
	Output string `help:"Destination file path (defaults to current directory)"`
	Force  bool   `help:"Overwrite if the file already exists"`
}

func (c *ConfigInit) Run() error {
	root := map[string]any{
		"log":  structDefaults(reflect.TypeOf(LogFlags{})),
		"demo": structDefaults(reflect.TypeOf(Demo{})),
	}

	dest := c.Output
	if dest == "" {
		dest = "keyhud." + c.Format
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}

	var data []byte
	var err error
	switch c.Format {
	case "json":
		data, err = json.MarshalIndent(root, "", "  ")
	case "yaml":
		data, err = yaml.Marshal(root)
	case "toml":
		data, err = toml.Marshal(root)
	default:
		return fmt.Errorf("unsupported format: %s", c.Format)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

// ConfigLayout writes a sample layout file seeded with the built-in
// position table and layer names, ready to edit for a custom board.
type ConfigLayout struct {
	Output string `help:"Destination file path" default:"layout.yaml"`
	Force  bool   `help:"Overwrite if the file already exists"`
}

func (c *ConfigLayout) Run() error {
	if !c.Force {
		if _, err := os.Stat(c.Output); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	sample := config.Layout{
		PositionLabels: keylabel.DefaultPositions(),
		LayerNames:     defaultLayerNames,
	}
	data, err := yaml.Marshal(&sample)
	if err != nil {
		return err
	}
	if err := configpaths.EnsureDir(c.Output); err != nil {
		return err
	}
	return os.WriteFile(c.Output, data, 0o644)
}

// structDefaults builds a config map for a command struct from its
// exported fields and their kong default tags.
func structDefaults(t reflect.Type) map[string]any {
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		out[lowerFirst(f.Name)] = defaultFor(f.Type, f.Tag.Get("default"))
	}
	return out
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func defaultFor(t reflect.Type, def string) any {
	if t.PkgPath() == "time" && t.Name() == "Duration" {
		if def == "" {
			return "0s"
		}
		return def
	}
	switch t.Kind() {
	case reflect.String:
		return def
	case reflect.Bool:
		b, _ := strconv.ParseBool(def)
		return b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, _ := strconv.ParseInt(def, 10, 64)
		return n
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, _ := strconv.ParseUint(def, 10, 64)
		return n
	case reflect.Float32, reflect.Float64:
		f, _ := strconv.ParseFloat(def, 64)
		return f
	default:
		return nil
	}
}
