package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/taigrr/gemini/pkg/render"
	"github.com/taigrr/gemini/pkg/view3d"
)

const (
	backendANSI = "ansi"
	backendUV   = "uv"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	fps       float64
	fov       float64
	width     int
	height    int
	fit       bool
	charWidth float64
	clip      float64
	mode      string
	backend   string
	logLevel  string
	logFile   string
	frames    int
	bg        string
	wrap      string

	background render.ColChar
	wrapping   render.WrappingMode
	logOut     io.Closer
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "gemini",
		Short: "Render ASCII shapes and 3D meshes in the terminal",
		Long: "gemini draws lines, polygons, text and perspective-projected meshes\n" +
			"as coloured characters, repainting the terminal in place each frame.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			return opts.setupLogging(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if opts.logOut != nil {
				return opts.logOut.Close()
			}
			return nil
		},
	}

	f := root.PersistentFlags()
	f.Float64Var(&opts.fps, "fps", 30, "target frames per second")
	f.Float64Var(&opts.fov, "fov", 80, "vertical field of view in degrees")
	f.IntVar(&opts.width, "width", 80, "canvas width in cells")
	f.IntVar(&opts.height, "height", 24, "canvas height in cells")
	f.BoolVar(&opts.fit, "fit", false, "size the canvas to the terminal, ignoring --width and --height")
	f.Float64Var(&opts.charWidth, "char-width", view3d.DefaultCharacterWidthMultiplier, "horizontal stretch for non-square cells")
	f.Float64Var(&opts.clip, "clip", view3d.DefaultClippingDistance, "near clipping distance")
	f.StringVar(&opts.mode, "mode", "", "display mode: wireframe, wireframe-culled, solid or illuminated")
	f.StringVar(&opts.backend, "backend", backendANSI, "output backend: ansi or uv")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	f.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")
	f.IntVar(&opts.frames, "frames", 0, "stop after this many frames; 0 runs until interrupted")
	f.StringVar(&opts.bg, "bg", "", `shade the background in this colour, as "r,g,b"`)
	f.StringVar(&opts.wrap, "wrap", "ignore", "out-of-bounds plots: ignore, wrap or fail")

	root.AddCommand(
		newCubeCmd(opts),
		newDonutCmd(opts),
		newGimbalCmd(opts),
		newViewCmd(opts),
		newTextCmd(opts),
		newInfoCmd(opts),
	)
	return root
}

func (o *options) validate() error {
	if o.fps < 1 {
		return fmt.Errorf("--fps must be at least 1, got %v", o.fps)
	}
	if o.fov <= 0 || o.fov >= 180 {
		return fmt.Errorf("--fov must be between 0 and 180, got %v", o.fov)
	}
	if !o.fit && (o.width <= 0 || o.height <= 0) {
		return fmt.Errorf("canvas size must be positive, got %dx%d", o.width, o.height)
	}
	if o.frames < 0 {
		return fmt.Errorf("--frames must not be negative, got %d", o.frames)
	}
	switch o.backend {
	case backendANSI, backendUV:
	default:
		return fmt.Errorf("unknown backend %q", o.backend)
	}

	wrapping, err := render.ParseWrappingMode(o.wrap)
	if err != nil {
		return fmt.Errorf("--wrap: %w", err)
	}
	o.wrapping = wrapping

	o.background = render.Empty
	if o.bg != "" {
		colour, err := render.ParseColour(o.bg)
		if err != nil {
			return fmt.Errorf("--bg: %w", err)
		}
		o.background = render.Background.WithColour(colour)
	}
	return nil
}

// newView creates a view with the background and wrapping flags applied.
func (o *options) newView(size render.Vec2) *render.View {
	v := render.NewView(size.X, size.Y, o.background)
	v.Wrapping = o.wrapping
	return v
}

// setupLogging installs the render logger. Logs go to stderr unless
// --log-file is set; with the uv backend stderr shares the alt screen, so
// a log file is the way to see debug output there.
func (o *options) setupLogging(stderr io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	out := stderr
	if o.logFile != "" {
		file, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		o.logOut = file
		out = file
	}

	render.SetLogger(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))
	return nil
}

// displayMode returns the --mode flag as a DisplayMode, or fallback when
// the flag is unset.
func (o *options) displayMode(fallback view3d.DisplayMode) (view3d.DisplayMode, error) {
	if o.mode == "" {
		return fallback, nil
	}
	return view3d.ParseDisplayMode(o.mode)
}

// canvasSize is the fixed --width by --height size, or the terminal size
// less one row when --fit is set.
func (o *options) canvasSize() (render.Vec2, error) {
	if !o.fit {
		return render.V2(o.width, o.height), nil
	}
	size, err := render.StdoutSize()
	if err != nil {
		return render.Vec2{}, err
	}
	size.Y--
	return size.Max(render.Vec2{}), nil
}
