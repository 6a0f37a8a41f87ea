package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/benoitkugler/okshapes/config"
	"github.com/benoitkugler/okshapes/editor"
	"github.com/benoitkugler/okshapes/graphic"
	"github.com/benoitkugler/okshapes/pdf"
	"github.com/benoitkugler/okshapes/raster"
	"github.com/benoitkugler/okshapes/svgdraw"
	"github.com/benoitkugler/okshapes/trace"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type drawOptions struct {
	configPath string
	format     string
	output     string
	group      string
	mode       string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "okshapes",
		Short:         "Group and draw a toy scene of dots and circles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDrawCmd())
	return root
}

func newDrawCmd() *cobra.Command {
	var opts drawOptions
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Load the scene, group the selection and render it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDraw(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	f.StringVarP(&opts.format, "format", "f", "trace", "output format: trace, png, pdf or svg")
	f.StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	f.StringVarP(&opts.group, "group", "g", "stray", "graphics to group: dot, circle, all, stray or none")
	f.StringVar(&opts.mode, "mode", "", "grouping error mode: warn, ignore or strict (overrides the config)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logs")
	return cmd
}

var formats = map[string]bool{"trace": true, "png": true, "pdf": true, "svg": true}

func runDraw(opts drawOptions, stdout, stderr io.Writer) error {
	if !formats[opts.format] {
		return errors.Errorf("invalid format %q", opts.format)
	}
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return err
		}
	}
	if opts.mode != "" {
		cfg.Editor.Mode = opts.mode
	}
	mode, err := editor.ParseErrorMode(cfg.Editor.Mode)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// the trace is only shown on stdout when it is the requested output
	traceOut := io.Discard
	if opts.format == "trace" && opts.output == "" {
		traceOut = stdout
	}
	tracer := trace.NewRenderer(traceOut)

	ed := editor.New(tracer, editor.WithLogger(logger), editor.WithMode(mode))
	ed.Load()
	selection, err := selectGraphics(ed.Root(), opts.group)
	if err != nil {
		return err
	}
	if selection != nil {
		if _, err = ed.GroupSelected(selection...); err != nil {
			return err
		}
	} else {
		ed.Draw()
	}
	if err = tracer.Err(); err != nil {
		return errors.Wrap(err, "writing trace")
	}

	if opts.format == "trace" && opts.output == "" {
		return nil
	}
	return writeOutput(ed.Root(), cfg, opts, stdout, logger)
}

// selectGraphics returns nil to skip grouping entirely
func selectGraphics(root *graphic.Compound, which string) ([]graphic.Graphic, error) {
	children := root.Children()
	var out []graphic.Graphic
	switch which {
	case "none":
		return nil, nil
	case "all":
		return children, nil
	case "stray":
		return []graphic.Graphic{graphic.NewDot(1, 3)}, nil
	case "dot":
		for _, c := range children {
			if _, ok := c.(*graphic.Dot); ok {
				out = append(out, c)
			}
		}
	case "circle":
		for _, c := range children {
			if _, ok := c.(*graphic.Circle); ok {
				out = append(out, c)
			}
		}
	default:
		return nil, errors.Errorf("invalid group selection %q", which)
	}
	return append([]graphic.Graphic{}, out...), nil
}

func writeOutput(scene graphic.Graphic, cfg config.Config, opts drawOptions, stdout io.Writer, logger *slog.Logger) (err error) {
	w := stdout
	if opts.output != "" {
		f, cerr := os.Create(opts.output)
		if cerr != nil {
			return errors.Wrap(cerr, "creating output")
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = errors.Wrap(cerr, "closing output")
			}
		}()
		w = f
	}

	switch opts.format {
	case "trace":
		tracer := trace.NewRenderer(w)
		scene.Draw(tracer)
		err = tracer.Err()
	case "png":
		rd := raster.NewRenderer(cfg, nil)
		scene.Draw(rd)
		err = rd.EncodePNG(w)
	case "pdf":
		err = pdf.RenderToPDF(scene, cfg, w)
	case "svg":
		err = svgdraw.RenderToSVG(scene, cfg, w)
	default:
		return errors.Errorf("invalid format %q", opts.format)
	}
	if err == nil {
		logger.Debug("scene written", "format", opts.format, "output", opts.output)
	}
	return err
}
