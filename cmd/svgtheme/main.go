package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/svgtheme"
	"github.com/fwojciec/svgtheme/bubbletea"
	"github.com/fwojciec/svgtheme/lipgloss"
	"github.com/fwojciec/svgtheme/svg"
)

// App encapsulates the application logic for testing.
type App struct {
	Stdin    io.Reader
	Stdout   io.Writer
	Parser   svgtheme.Parser
	Renderer svgtheme.Renderer
	Viewer   svgtheme.Viewer
}

// decodeFrom parses and decodes a theme from a file, or from Stdin when
// path is empty.
func (a *App) decodeFrom(path string) (svgtheme.Theme, error) {
	input := a.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return svgtheme.Theme{}, err
		}
		defer f.Close()
		input = f
	}

	doc, err := a.Parser.Parse(input)
	if err != nil {
		return svgtheme.Theme{}, err
	}
	return svgtheme.Decode(doc)
}

// Preview decodes a theme and displays it: interactively through the
// Viewer, or as a plain swatch sheet on Stdout.
func (a *App) Preview(ctx context.Context, path string, plain bool) error {
	theme, err := a.decodeFrom(path)
	if err != nil {
		return err
	}
	if plain {
		fmt.Fprint(a.Stdout, a.Renderer.Render(theme))
		return nil
	}
	return a.Viewer.View(ctx, theme)
}

// Check validates each file independently, in parallel, and prints one
// result line per file in argument order. It returns an error if any file
// failed to decode.
func (a *App) Check(ctx context.Context, paths []string) error {
	results := make([]error, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, results[i] = a.decodeFrom(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for i, path := range paths {
		if results[i] != nil {
			failed++
			fmt.Fprintf(a.Stdout, "%s: %v\n", path, results[i])
			continue
		}
		fmt.Fprintf(a.Stdout, "%s: ok\n", path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(paths))
	}
	return nil
}

// Fmt decodes a theme and writes its canonical encoding to Stdout.
func (a *App) Fmt(path string) error {
	theme, err := a.decodeFrom(path)
	if err != nil {
		return err
	}
	fmt.Fprint(a.Stdout, svgtheme.Encode(theme))
	return nil
}

var plain bool

func newApp() *App {
	renderer := lipgloss.NewRenderer()
	return &App{
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Parser:   svg.NewParser(),
		Renderer: renderer,
		Viewer:   bubbletea.NewViewer(renderer),
	}
}

func argPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "svgtheme",
	Short: "Decode, validate, and preview SVG theme palettes",
	Long:  "svgtheme works with nine-slot SVG color palettes: it validates them, previews them in the terminal, and rewrites them in canonical form.",
}

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Preview a theme in the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp().Preview(cmd.Context(), argPath(args), plain)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate one or more theme files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp().Check(cmd.Context(), args)
	},
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Rewrite a theme in canonical form",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp().Fmt(argPath(args))
	},
}

func init() {
	previewCmd.Flags().BoolVar(&plain, "plain", false, "print a swatch sheet instead of opening the TUI")
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.SilenceUsage = true
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
