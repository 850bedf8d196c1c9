// Package cmd defines the keyhud command-line surface.
package cmd

// LogFlags are the logging options shared by all commands.
type LogFlags struct {
	Level string `help:"Log level (trace|debug|info|warn|error)" default:"info" env:"KEYHUD_LOG_LEVEL"`
	File  string `help:"Write logs to a file instead of the console" env:"KEYHUD_LOG_FILE"`
}

// CLI is the root command structure parsed by kong. Values may come from
// flags, environment variables or JSON/YAML/TOML config files.
type CLI struct {
	Log    LogFlags `embed:"" prefix:"log."`
	Config string   `help:"Path to a configuration file" env:"KEYHUD_CONFIG"`

	Demo      Demo          `cmd:"" default:"withargs" help:"Run the interactive status display demo"`
	ConfigCmd ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}
