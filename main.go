package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"bsplayout/pkg/config"
	"bsplayout/pkg/engine/terminal"
	"bsplayout/pkg/game/devtools"
	"bsplayout/pkg/game/generator"
	"bsplayout/pkg/game/levels"
	"bsplayout/pkg/game/renderer"
	"bsplayout/pkg/game/renderer/ebiten"
	"bsplayout/pkg/game/renderer/tui"
	"bsplayout/pkg/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "bsplayout:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr *os.File) error {
	flags := pflag.NewFlagSet("bsplayout", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	config.RegisterFlags(flags)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	opts, err := config.Load(flags)
	if err != nil {
		return err
	}

	base, closer, err := logging.New(opts.Log, stderr)
	if err != nil {
		return err
	}
	defer closer.Close()
	log, _ := logging.WithRun(base)
	log.WithFields(logrus.Fields{"format": opts.Format, "level": opts.Level}).Debug("starting run")

	store, err := levels.NewStore(opts.Generator, &generator.BSPGenerator{Log: log}, log)
	if err != nil {
		return err
	}
	defer store.Close()

	if opts.View {
		viewer, err := ebiten.New(store, opts.Generator, opts.Level, log)
		if err != nil {
			return err
		}
		return viewer.Run()
	}

	res, err := loadLayout(store, opts)
	if err != nil {
		return err
	}

	out := stdout
	if opts.Out != "" {
		f, err := os.Create(opts.Out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := writeLayout(out, res, opts, log); err != nil {
		return err
	}
	if opts.Tree {
		devtools.DumpTree(out, res.Tree)
	}

	log.WithFields(logrus.Fields{
		"seed":  res.Config.Seed,
		"rooms": len(res.Rooms),
	}).Info("layout written")
	return nil
}

// loadLayout reads the --in export when given, otherwise generates through the store
func loadLayout(store *levels.Store, opts *config.Options) (*generator.Result, error) {
	if opts.In != "" {
		f, err := os.Open(opts.In)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		return devtools.ReadJSON(f)
	}
	if opts.Level > 0 {
		return store.Level(opts.Level)
	}
	return store.Get(opts.Generator)
}

// writeLayout writes res to out in the requested format
func writeLayout(out *os.File, res *generator.Result, opts *config.Options, log logrus.FieldLogger) error {
	switch opts.Format {
	case config.FormatASCII:
		r := tui.NewPlain()
		if useColor(opts.Color, out) {
			r = tui.New()
		}
		renderer.SetRenderer(r)
		if !terminal.Fits(out, res.Bounds.Width, res.Bounds.Height) {
			w, _ := terminal.GetSize(out)
			log.WithField("terminal_width", w).Warn("map is wider than the terminal and will wrap")
		}
		return renderer.RenderLayout(out, res)
	case config.FormatMap:
		return devtools.WriteASCIIMap(out, res)
	case config.FormatDump:
		return devtools.WriteMapDump(out, res)
	case config.FormatJSON:
		return devtools.WriteJSON(out, res)
	case config.FormatSegments:
		return devtools.WriteSegments(out, res.Walls())
	case config.FormatHTML:
		return devtools.WriteHTML(out, res)
	default:
		return fmt.Errorf("unknown format %q", opts.Format)
	}
}

// useColor resolves the color mode against the output
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := out.(*os.File)
	return ok && terminal.IsInteractive(f)
}
