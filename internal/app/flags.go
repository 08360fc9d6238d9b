package app

import (
	"flag"

	"dualgrid/internal/config"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Path        string
	Tileset     string
	TilesetFile string
	Scale       int
	TPS         int
	Seed        int64
	LogLevel    string
}

// NewConfig returns a Config populated with the file defaults.
func NewConfig() *Config {
	def := config.Default()
	return &Config{
		Tileset:  def.Tileset.Name,
		Scale:    def.Display.Scale,
		TPS:      def.Display.TPS,
		Seed:     def.Display.Seed,
		LogLevel: def.Logging.Level,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Path, "config", c.Path, "TOML configuration file")
	fs.StringVar(&c.Tileset, "tileset", c.Tileset, "registered tile set name")
	fs.StringVar(&c.TilesetFile, "tileset-file", c.TilesetFile, "YAML tile set file (overrides -tileset)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per render cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for field generation")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// Load reads the configured file and applies every flag that was set
// explicitly on fs. Unset flags leave the file values alone.
func (c *Config) Load(fs *flag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(c.Path)
	if err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tileset":
			cfg.Tileset.Name = c.Tileset
		case "tileset-file":
			cfg.Tileset.File = c.TilesetFile
		case "scale":
			cfg.Display.Scale = c.Scale
		case "tps":
			cfg.Display.TPS = c.TPS
		case "seed":
			cfg.Display.Seed = c.Seed
		case "log-level":
			cfg.Logging.Level = c.LogLevel
		}
	})
	return cfg, nil
}
