package cli

import (
	"fmt"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"view3d/obj"
	"view3d/render"
)

var (
	version = "dev" // semantic version, injected via ldflags
	commit  string  // git commit SHA
)

// SetVersion sets the version information displayed by --version. Called by
// the main package with values injected at build time.
func SetVersion(v, c string) {
	if v != "" {
		version = v
	}
	commit = c
}

// Execute runs the view3d CLI and returns an error if any command fails.
func Execute() error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "view3d",
		Short:         "view3d transforms and snapshots OBJ models",
		Long:          "view3d loads Wavefront OBJ models, applies affine transforms (move, rotate, scale) to their vertices, and renders wireframe snapshots.",
		Version:       strings.TrimSpace(version + " " + commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a view3d.toml config file")

	root.AddCommand(
		newTransformCmd(),
		newSnapshotCmd(&configPath),
		newInfoCmd(),
	)

	return root.Execute()
}

func newTransformCmd() *cobra.Command {
	var (
		opSpecs []string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "transform <model.obj>",
		Short: "Apply a sequence of transforms to a model's vertices",
		Example: `  view3d transform cube.obj --op rotate-z=90 --op move-x=-2 -o out.obj
  view3d transform cube.obj --op scale=0.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			ops, err := parseOps(opSpecs)
			if err != nil {
				return err
			}
			if len(ops) == 0 {
				return fmt.Errorf("no transforms given, use --op kind=value")
			}

			model, err := obj.Load(args[0])
			if err != nil {
				return err
			}
			logger.Debug("loaded model", "path", args[0], "vertices", len(model.Vertices), "faces", len(model.Faces))

			if err := applyOps(logger, model.Vertices, ops); err != nil {
				return err
			}

			out := output
			if out == "" {
				out = args[0]
			}
			if err := model.Save(out); err != nil {
				return err
			}
			logger.Info("transformed model written", "path", out, "ops", len(ops))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&opSpecs, "op", nil, "transform to apply, kind=value (repeatable, applied in order)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: overwrite input)")
	return cmd
}

func newSnapshotCmd(configPath *string) *cobra.Command {
	var (
		opSpecs  []string
		output   string
		width    int
		height   int
		fov      float64
		distance float64
	)

	cmd := &cobra.Command{
		Use:   "snapshot <model.obj>",
		Short: "Render a wireframe PNG of a model",
		Example: `  view3d snapshot cube.obj -o cube.png
  view3d snapshot cube.obj --op rotate-y=30 --width 400 --height 400`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			opts, err := loadOptions(*configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("width") {
				opts.Width = width
			}
			if cmd.Flags().Changed("height") {
				opts.Height = height
			}
			if cmd.Flags().Changed("fov") {
				opts.FOV = fov
			}
			if cmd.Flags().Changed("distance") {
				opts.Distance = distance
			}

			ops, err := parseOps(opSpecs)
			if err != nil {
				return err
			}

			model, err := obj.Load(args[0])
			if err != nil {
				return err
			}
			if err := applyOps(logger, model.Vertices, ops); err != nil {
				return err
			}

			out := output
			if out == "" {
				out = strings.TrimSuffix(args[0], ".obj") + ".png"
			}
			img := render.Wireframe(model, opts)
			if err := render.SavePNG(out, img); err != nil {
				return err
			}
			logger.Info("snapshot written", "path", out, "size", fmt.Sprintf("%dx%d", opts.Width, opts.Height))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&opSpecs, "op", nil, "transform to apply before rendering, kind=value (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG path (default: input with .png extension)")
	cmd.Flags().IntVar(&width, "width", 800, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 600, "image height in pixels")
	cmd.Flags().Float64Var(&fov, "fov", 300, "projection strength")
	cmd.Flags().Float64Var(&distance, "distance", 6, "viewer distance from the origin")
	return cmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <model.obj>",
		Short: "Print vertex, face and bounding-box information",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := obj.Load(args[0])
			if err != nil {
				return err
			}
			min, max := model.Bounds()
			center := model.Center()

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "vertices: %d\n", len(model.Vertices))
			fmt.Fprintf(w, "faces:    %d\n", len(model.Faces))
			fmt.Fprintf(w, "edges:    %d\n", len(model.Edges()))
			fmt.Fprintf(w, "bounds:   (%g, %g, %g) .. (%g, %g, %g)\n",
				min.X(), min.Y(), min.Z(), max.X(), max.Y(), max.Z())
			fmt.Fprintf(w, "center:   (%g, %g, %g)\n", center.X(), center.Y(), center.Z())
			return nil
		},
	}
}
