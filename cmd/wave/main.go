package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/san-kum/wave/internal/config"
	"github.com/san-kum/wave/internal/engine"
	"github.com/san-kum/wave/internal/palette"
	"github.com/san-kum/wave/internal/render"
	"github.com/san-kum/wave/internal/term"
	"github.com/san-kum/wave/internal/tui"
	"github.com/san-kum/wave/internal/wave"
)

const version = "1.0.0"

var (
	speed      float64
	fps        int
	colorName  string
	glyphChar  string
	waveCount  int
	configFile string
	preset     string

	interactive bool

	shapeWidth  int
	shapeHeight int

	benchFrames int
)

var (
	errPrefix   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	fatalPrefix = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160"))
	bold        = lipgloss.NewStyle().Bold(true)
	faint       = lipgloss.NewStyle().Faint(true)
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "wave",
		Short:         "animated sine waves for your terminal",
		Long:          banner(),
		RunE:          runWave,
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate("wave {{.Version}}\n")
	rootCmd.Flags().BoolP("version", "v", false, "print version")
	rootCmd.Flags().Float64VarP(&speed, "speed", "s", config.DefaultSpeed, "speed multiplier")
	rootCmd.Flags().IntVarP(&fps, "fps", "f", config.DefaultFPS, "target frames per second")
	rootCmd.Flags().StringVarP(&colorName, "color", "c", config.DefaultPalette, "color palette")
	rootCmd.Flags().StringVarP(&glyphChar, "char", "g", "", "wave glyph character")
	rootCmd.Flags().IntVarP(&waveCount, "waves", "n", config.DefaultWaves, "number of waves")
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	palettesCmd := &cobra.Command{
		Use:   "palettes",
		Short: "show the available palettes",
		Args:  cobra.NoArgs,
		RunE:  runPalettes,
	}
	palettesCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse palettes interactively")

	shapeCmd := &cobra.Command{
		Use:   "shape",
		Short: "plot the wave profiles without animating",
		Args:  cobra.NoArgs,
		RunE:  runShape,
	}
	shapeCmd.Flags().IntVarP(&waveCount, "waves", "n", config.DefaultWaves, "number of waves")
	shapeCmd.Flags().StringVarP(&glyphChar, "char", "g", "", "wave glyph character")
	shapeCmd.Flags().IntVar(&shapeWidth, "width", 0, "plot width (default: terminal width)")
	shapeCmd.Flags().IntVar(&shapeHeight, "height", 8, "plot height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list the built-in presets",
		Args:  cobra.NoArgs,
		RunE:  runPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInit,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark frame serialization",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchFrames, "frames", 200, "frames per geometry")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("wave %s\n", version)
		},
	}

	rootCmd.AddCommand(palettesCmd, shapeCmd, presetsCmd, initCmd, benchCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		printError(err)
		if errors.Is(err, render.ErrTooLarge) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func printError(err error) {
	switch {
	case errors.Is(err, render.ErrTooLarge):
		fmt.Fprintln(os.Stderr, fatalPrefix.Render("fatal:")+" "+err.Error())
	case errors.Is(err, palette.ErrUnknown):
		fmt.Fprintln(os.Stderr, errPrefix.Render("error:")+" "+err.Error())
		fmt.Fprintln(os.Stderr, "available: "+strings.Join(palette.Names(), ", "))
	default:
		fmt.Fprintln(os.Stderr, errPrefix.Render("error:")+" "+err.Error())
	}
}

// buildConfig resolves the run configuration. Explicit flags win over
// the config file, which wins over the preset, which wins over the
// defaults.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	if cmd.Flags().Changed("speed") {
		cfg.Speed = speed
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("color") {
		cfg.Palette = colorName
	}
	if cmd.Flags().Changed("char") {
		cfg.Glyph = glyphChar
	}
	if cmd.Flags().Changed("waves") {
		cfg.Waves = waveCount
	}
	return cfg, nil
}

func runWave(cmd *cobra.Command, args []string) error {
	if !xterm.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	eng, err := engine.New(cfg, os.Stdout, term.Size)
	if err != nil {
		return err
	}
	return eng.Run(context.Background())
}

func runPalettes(cmd *cobra.Command, args []string) error {
	if !interactive {
		fmt.Println(paletteShowcase())
		return nil
	}

	if !xterm.IsTerminal(int(os.Stdin.Fd())) || !xterm.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("interactive browsing needs a terminal")
	}
	p := tea.NewProgram(tui.NewBrowser(), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if b, ok := final.(tui.Browser); ok && b.Choice() != "" {
		fmt.Printf("wave --color %s\n", b.Choice())
	}
	return nil
}

const profileSamples = 120

func runShape(cmd *cobra.Command, args []string) error {
	if waveCount < config.MinWaves || waveCount > config.MaxWaves {
		return fmt.Errorf("%w [%d, %d], got %d", config.ErrWaves, config.MinWaves, config.MaxWaves, waveCount)
	}
	waves := wave.Generate(waveCount, glyphChar)

	width := shapeWidth
	if width <= 0 {
		width = 72
		if w, _, err := xterm.GetSize(int(os.Stdout.Fd())); err == nil && w > 24 {
			width = w - 12
		}
	}
	if shapeHeight < 1 {
		shapeHeight = 8
	}

	shown := len(waves)
	if shown > 6 {
		shown = 6
	}
	for i := 0; i < shown; i++ {
		w := waves[i]
		data := make([]float64, profileSamples)
		for x := range data {
			data[x] = w.Amp * math.Sin(w.Freq*float64(x))
		}
		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(shapeHeight),
			asciigraph.Width(width),
			asciigraph.Caption(fmt.Sprintf("wave %d · freq %.3f · amp %.2f", i, w.Freq, w.Amp))))
		fmt.Println()
	}
	if shown < len(waves) {
		fmt.Printf("(showing first %d of %d waves)\n\n", shown, len(waves))
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "wave\tglyph\tfreq\tamp\tphase speed")
	for i, w := range waves {
		pad := ""
		if gw := runewidth.StringWidth(w.Glyph); gw < 2 {
			pad = strings.Repeat(" ", 2-gw)
		}
		fmt.Fprintf(tw, "%d\t%s%s\t%.3f\t%.2f\t%.3f\n", i, w.Glyph, pad, w.Freq, w.Amp, w.PhaseSpeed)
	}
	return tw.Flush()
}

func runPresets(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "preset\tspeed\tfps\tpalette\twaves\tglyph")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		glyph := p.Glyph
		if glyph == "" {
			glyph = "auto"
		}
		fmt.Fprintf(tw, "%s\t%.1f\t%d\t%s\t%d\t%s\n", name, p.Speed, p.FPS, p.Palette, p.Waves, glyph)
	}
	return tw.Flush()
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "wave.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("refusing to overwrite %s", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchFrames < 1 {
		return errors.New("frames must be at least 1")
	}
	colorize, err := palette.Lookup(config.DefaultPalette)
	if err != nil {
		return err
	}

	geometries := [][2]int{{24, 80}, {50, 160}, {100, 250}}
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "geometry\tframes\telapsed\tfps\tbytes/frame")
	for _, geo := range geometries {
		rows, cols := geo[0], geo[1]
		capacity, err := render.Capacity(rows * cols)
		if err != nil {
			return err
		}

		waves := wave.Generate(config.DefaultWaves, "")
		phases := wave.NewPhases(config.DefaultWaves)
		grid := render.NewGrid(rows, cols)
		buf := render.NewBuffer(capacity)
		ser := render.NewSerializer(colorize)

		var total int64
		start := time.Now()
		for f := 0; f < benchFrames; f++ {
			grid.Plot(waves, phases, f)
			ser.Serialize(grid, waves, buf)
			total += int64(buf.Len())
			phases.Advance(waves, 1.0)
		}
		elapsed := time.Since(start)

		fmt.Fprintf(tw, "%dx%d\t%d\t%v\t%.0f\t%d\n",
			rows, cols, benchFrames,
			elapsed.Round(time.Millisecond),
			float64(benchFrames)/elapsed.Seconds(),
			total/int64(benchFrames))
	}
	return tw.Flush()
}

func banner() string {
	art := []struct {
		color string
		text  string
	}{
		{"39", "██╗    ██╗ █████╗ ██╗   ██╗███████╗"},
		{"75", "██║    ██║██╔══██╗██║   ██║██╔════╝"},
		{"111", "██║ █╗ ██║███████║██║   ██║█████╗"},
		{"147", "██║███╗██║██╔══██║╚██╗ ██╔╝██╔══╝"},
		{"183", "╚███╔███╔╝██║  ██║ ╚████╔╝ ███████╗"},
		{"212", " ╚══╝╚══╝ ╚═╝  ╚═╝  ╚═══╝  ╚══════╝"},
	}
	lines := make([]string, 0, len(art)+2)
	for _, l := range art {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(l.color)).Render(l.text))
	}
	lines = append(lines, "")
	lines = append(lines, faint.Foreground(lipgloss.Color("248")).Render("🌊 Terminal wave visualizer · v"+version))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("141")).
		Padding(0, 2).
		Width(43).
		Render(strings.Join(lines, "\n"))

	return box + "\n\n" + paletteShowcase() + "\n" +
		faint.Render("╶─ Press Ctrl+C to quit. Resize your terminal to reshape the waves. ─╴")
}

func paletteShowcase() string {
	var sb strings.Builder
	sb.WriteString(bold.Render("PALETTES") + "\n")
	entries := palette.All()
	for i, p := range entries {
		sb.WriteString("  ")
		for s := 0; s < 8; s++ {
			t := float64(s) / 7.0
			id := strconv.Itoa(int(p.Fn(t)))
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(id)).Render("▄"))
		}
		sb.WriteString(fmt.Sprintf("  %-8s", p.Name))
		if i%2 == 1 || i == len(entries)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
