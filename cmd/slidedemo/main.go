// Command slidedemo shows a slide-to-accept widget in a window or a
// terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/slide"
	"github.com/phanxgames/slide/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	attrs      map[string]string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "slidedemo",
		Short:         "Slide-to-accept widget demo",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "widget config file (.yaml, .yml or .toml)")
	root.PersistentFlags().StringToStringVar(&opts.attrs, "set", nil, "widget attribute overrides, e.g. --set text=Confirm,width=50%")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log gestures and signals to stderr")

	root.AddCommand(newWindowCmd(opts))
	root.AddCommand(newTUICmd(opts))
	return root
}

// loadConfig merges the config file, if any, with --set overrides.
func loadConfig(opts *options) (slide.Config, error) {
	attrs := map[string]string{}
	if opts.configPath != "" {
		cfg, err := slide.LoadConfigFile(opts.configPath)
		if err != nil {
			return slide.Config{}, err
		}
		attrs = cfg.Attributes()
	}
	for k, v := range opts.attrs {
		attrs[k] = v
	}
	return slide.ConfigFromAttributes(attrs), nil
}

func newWindowCmd(opts *options) *cobra.Command {
	var script string
	var showFPS bool
	var width, height int
	var fontSize float64

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Run the widget in an ebiten window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			h := slide.NewHost(float64(width), float64(height))
			h.ClearColor = slide.DefaultBackground
			h.SetDebugMode(opts.debug)

			surface := slide.NewEbitenSurface(h)
			if fontSize > 0 {
				font, err := slide.LoadDefaultFont(fontSize)
				if err != nil {
					return err
				}
				surface.Font = font
			}
			w := slide.NewWidget(cfg, surface)
			w.Attach(h)
			snap := w.Snapshot()
			w.X = (float64(width) - snap.Available) / 2
			w.Y = (float64(height) - cfg.Height) / 2

			h.OnAccepted(func(sig slide.Signal) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "accepted widget=%d at=%s\n", sig.WidgetID, sig.Timestamp.Format("15:04:05.000"))
			})
			h.OnReset(func(sig slide.Signal) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reset widget=%d at=%s\n", sig.WidgetID, sig.Timestamp.Format("15:04:05.000"))
			})

			run := slide.RunConfig{Title: "Slide", Width: width, Height: height, ShowFPS: showFPS}
			if script != "" {
				data, err := os.ReadFile(script)
				if err != nil {
					return fmt.Errorf("read script: %w", err)
				}
				runner, err := slide.LoadTestScript(data)
				if err != nil {
					return err
				}
				h.SetTestRunner(runner)
				run.ExitOnScriptDone = true
			}
			return slide.Run(h, run)
		},
	}
	cmd.Flags().StringVar(&script, "script", "", "JSON test script to play, exiting when done")
	cmd.Flags().BoolVar(&showFPS, "fps", false, "show an FPS overlay")
	cmd.Flags().Float64Var(&fontSize, "font-size", 16, "label font size; 0 uses the debug font")
	cmd.Flags().IntVar(&width, "width", 640, "window width")
	cmd.Flags().IntVar(&height, "height", 360, "window height")
	return cmd
}

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the widget in the terminal (mouse required)",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			h := slide.NewHost(80*tui.CellWidth, 24*tui.CellHeight)
			if opts.debug {
				// The terminal belongs to the UI, so debug lines go to a file.
				f, err := os.Create("slidedemo-debug.log")
				if err != nil {
					return fmt.Errorf("debug log: %w", err)
				}
				defer f.Close()
				h.DebugOutput = f
				h.SetDebugMode(true)
			}
			s := tui.NewSurface(h)
			w := slide.NewWidget(cfg, s)
			w.X, w.Y = 2*tui.CellWidth, 1*tui.CellHeight
			return tui.Run(tui.New(h, w, s))
		},
	}
}
