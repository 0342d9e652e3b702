// Command game runs Songs of Mew, or replays a recorded session headlessly.
package main

import (
	"flag"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/younwookim/mew/internal/application/game"
	"github.com/younwookim/mew/internal/application/replay"
	"github.com/younwookim/mew/internal/application/scene/playing"
	"github.com/younwookim/mew/internal/application/system"
	"github.com/younwookim/mew/internal/infrastructure/config"
)

const windowTitle = "Songs of Mew"

// options are the runtime settings plus the flags that only make sense on the command line
type options struct {
	config.RuntimeConfig
	Replay string
}

// parseFlags applies command-line flags on top of the environment settings in rt
func parseFlags(rt config.RuntimeConfig, args []string) (options, error) {
	opts := options{RuntimeConfig: rt}

	fset := flag.NewFlagSet("game", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	fset.StringVar(&opts.Stage, "stage", rt.Stage, "stage file to load from configs/stages")
	fset.StringVar(&opts.Record, "record", rt.Record, "record input to file (e.g., -record replay.json)")
	fset.StringVar(&opts.Replay, "replay", "", "replay a recorded session headlessly and exit")
	fset.StringVar(&opts.LogLevel, "log-level", rt.LogLevel, "log level (debug, info, warn, error)")
	fset.StringVar(&opts.ConfigDir, "config-dir", rt.ConfigDir, "read configs from this directory instead of the embedded ones")
	fset.Int64Var(&opts.Seed, "seed", rt.Seed, "seed for particle randomness")

	if err := fset.Parse(args); err != nil {
		return opts, eris.Wrap(err, "failed to parse flags")
	}
	return opts, nil
}

// newLogger builds the console logger used by every package
func newLogger(out io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), eris.Wrapf(err, "invalid log level %q", level)
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}

// newLoader reads configs from dir, or from the binary when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, eris.Wrap(err, "failed to open embedded configs")
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func run(args []string) error {
	rt, err := config.LoadRuntime()
	if err != nil {
		return err
	}
	opts, err := parseFlags(rt, args)
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, opts.LogLevel)
	if err != nil {
		return err
	}

	loader, err := newLoader(opts.ConfigDir)
	if err != nil {
		return err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return eris.Wrap(err, "failed to load config")
	}
	stageCfg, err := loader.LoadStage(opts.Stage)
	if err != nil {
		return eris.Wrap(err, "failed to load stage")
	}
	level := system.LoadStage(stageCfg)

	logger.Info().
		Str("stage", level.Name).
		Str("configs", loader.BasePath()).
		Int("enemies", len(level.Enemies)).
		Msg("stage loaded")

	if opts.Replay != "" {
		data, err := replay.LoadReplay(opts.Replay)
		if err != nil {
			return err
		}
		summary := runReplay(cfg, level, data, logger)
		summary.log(logger)
		return nil
	}

	disp := cfg.Physics.Display
	scene := playing.New(cfg, level, opts.Seed, opts.Record, logger)
	g := game.New(scene, disp.ScreenWidth, disp.ScreenHeight, logger)
	defer g.Close()

	ebiten.SetWindowSize(disp.ScreenWidth*disp.Scale, disp.ScreenHeight*disp.Scale)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(disp.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		return eris.Wrap(err, "game loop exited")
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
		logger.Fatal().
			Str("trace", eris.ToString(err, true)).
			Msg("game failed")
	}
}
