// Command dendrite runs the terminal DLA simulator.
package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"dendrite/internal/app"
	"dendrite/internal/config"
	"dendrite/internal/sim"
)

var (
	flagParticles  int
	flagStickiness float64
	flagSeed       string
	flagSpeed      int
	flagConfig     string
	flagScheme     string
	flagFullscreen bool
)

var rootCmd = &cobra.Command{
	Use:   "dendrite",
	Short: "Grow diffusion-limited aggregation fractals in the terminal",
	Long: `dendrite grows fractal aggregates by diffusion-limited aggregation and
renders them as colored braille in the terminal. Every physics parameter is
adjustable live; configurations can be exported to JSON and sessions recorded
to AVI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.IntVarP(&flagParticles, "particles", "p", 0, "target particle count (100 to 3/4 of the grid)")
	f.Float64VarP(&flagStickiness, "stickiness", "k", 0, "base sticking probability (0.1-1.0)")
	f.StringVarP(&flagSeed, "seed", "s", "", "seed pattern: point, line, cross, circle, ring, block, multi-point, starburst, noise-patch, scatter")
	f.IntVar(&flagSpeed, "speed", 0, "simulation steps per frame (1-50)")
	f.StringVarP(&flagConfig, "config", "c", "", "load a saved configuration file")
	f.StringVar(&flagScheme, "scheme", "", "color scheme: Rainbow, Fire, Ocean, Neon, Mono, Plasma")
	f.BoolVar(&flagFullscreen, "fullscreen", false, "start with the sidebar hidden")
}

func run(cmd *cobra.Command, args []string) error {
	m := app.New(80, 24)

	if flagConfig != "" {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		m.ApplyConfig(cfg)
	}

	// Explicit flags win over the loaded configuration.
	if cmd.Flags().Changed("particles") {
		m.Sim.NumParticles = min(max(flagParticles, 100), m.Sim.MaxParticles())
	}
	if cmd.Flags().Changed("stickiness") {
		m.Sim.Stickiness = min(max(flagStickiness, 0.1), 1.0)
	}
	if cmd.Flags().Changed("seed") {
		m.Sim.ResetWithSeed(sim.ParseSeedPattern(flagSeed))
	}
	if cmd.Flags().Changed("speed") {
		m.StepsPerFrame = min(max(flagSpeed, 1), 50)
	}
	if cmd.Flags().Changed("scheme") {
		if err := m.Scheme.UnmarshalText([]byte(flagScheme)); err != nil {
			return err
		}
		m.LUT = m.Scheme.BuildLUT()
	}
	m.Fullscreen = flagFullscreen

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("dendrite: %v", err)
	}
}
