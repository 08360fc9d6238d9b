package app

import (
	"fmt"

	"dualgrid/internal/config"
	"dualgrid/internal/dualgrid"
	"dualgrid/internal/logging"
	"dualgrid/internal/tileset"

	"go.uber.org/zap"
)

// Setup builds the logger and a configured engine from cfg. Overrides use
// the dualgrid.ApplyMap keys and win over the file values. The field is
// left blank; callers Reset it when they want generated terrain.
func Setup(cfg *config.Config, overrides map[string]string) (*dualgrid.Engine, *zap.Logger, error) {
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}

	dg := dualgrid.ApplyMap(cfg.DualGrid(), overrides)
	set, err := LoadSet(cfg.Tileset.File, dg.Tileset)
	if err != nil {
		return nil, nil, err
	}
	dg.Tileset = set.Name

	eng, err := dualgrid.Configure(dg, set.Patterns, nil, log.Named("dualgrid"))
	if err != nil {
		return nil, nil, fmt.Errorf("configure %s: %w", set.Name, err)
	}
	return eng, log, nil
}

// LoadSet returns the authored set in file, or the registered set called
// name when file is empty.
func LoadSet(file, name string) (tileset.Set, error) {
	if file != "" {
		return tileset.LoadFile(file)
	}
	return tileset.Lookup(name)
}
