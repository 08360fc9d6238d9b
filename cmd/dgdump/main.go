package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"dualgrid/internal/app"
	"dualgrid/internal/core"

	"go.uber.org/zap"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run owns every exit path so the deferred logger flush always happens.
func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("dgdump", flag.ContinueOnError)
	flags := app.NewConfig()
	flags.Bind(fs)
	format := fs.String("format", "grid", "output format: grid or cells")
	var paints, overrides kvList
	fs.Var(&paints, "paint", "terrain edit in x,y[=type] form (repeatable)")
	fs.Var(&overrides, "set", "engine override in key=value form (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := flags.Load(fs)
	if err != nil {
		return err
	}
	eng, logger, err := app.Setup(cfg, parseOverrides(overrides))
	if err != nil {
		return err
	}
	defer logger.Sync()

	generate := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			generate = true
		}
	})
	if generate {
		eng.Reset(cfg.Display.Seed)
	}

	for _, p := range paints {
		t, typ, err := parsePaint(p, eng.Brush())
		if err != nil {
			return fmt.Errorf("-paint %q: %w", p, err)
		}
		eng.ApplyEdit(t, typ)
	}

	region := eng.Region()
	switch *format {
	case "grid":
		fmt.Fprintln(out, "terrain:")
		if err := app.WriteTerrain(out, eng, region); err != nil {
			return fmt.Errorf("write terrain: %w", err)
		}
		fmt.Fprintln(out, "\nrender:")
		if err := app.WriteRender(out, eng, region); err != nil {
			return fmt.Errorf("write render: %w", err)
		}
	case "cells":
		if err := app.WriteCells(out, eng, region); err != nil {
			return fmt.Errorf("write cells: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q", *format)
	}

	st := eng.Stats()
	logger.Info("done",
		zap.Int("edits", st.Edits),
		zap.Int("resolves", st.Resolves),
		zap.Int("missing", st.Missing),
	)
	return nil
}

func parseOverrides(list kvList) map[string]string {
	out := make(map[string]string, len(list))
	for _, kv := range list {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

func parsePaint(value string, brush core.TerrainType) (core.Coord, core.TerrainType, error) {
	pos, typStr, hasType := strings.Cut(value, "=")
	xs, ys, ok := strings.Cut(pos, ",")
	if !ok {
		return core.Coord{}, 0, fmt.Errorf("expected x,y")
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return core.Coord{}, 0, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return core.Coord{}, 0, fmt.Errorf("y: %w", err)
	}
	typ := brush
	if hasType {
		v, err := strconv.Atoi(strings.TrimSpace(typStr))
		if err != nil || v < 0 || v >= core.MaxTerrainTypes {
			return core.Coord{}, 0, fmt.Errorf("terrain type %q out of range", typStr)
		}
		typ = core.TerrainType(v)
	}
	return core.Coord{X: x, Y: y}, typ, nil
}
