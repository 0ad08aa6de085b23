package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Forrest-Zhang/btree"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// Dumpable is the structural walk a tree exposes for read-only tooling.
type Dumpable interface {
	WalkNodes(fn func(info btree.NodeInfo) bool)
}

// Config carries output parameters for console rendering.
type Config struct {
	// LineWidth is the maximum rendered line length in fixed-width positions.
	LineWidth int
}

// Console renders tree dumps for a console with a fixed width font.
//
// colors maps tree depths to colors; depths beyond the palette cycle through
// it again.
type Console struct {
	colors map[int]*color.Color
}

// NewConsole creates a console renderer.
//
// colors maps node depths to display colors and may cover just the upper
// levels of deep trees; nil selects a default palette.
func NewConsole(colors map[int]*color.Color) *Console {
	c := &Console{colors: colors}
	if colors == nil {
		c.colors = makeDefaultPalette()
	}
	return c
}

func makeDefaultPalette() map[int]*color.Color {
	palette := map[int]*color.Color{
		0: color.New(color.FgRed),
		1: color.New(color.FgBlue),
		2: color.New(color.FgCyan),
	}
	return palette
}

// Print outputs a tree structure dump to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
func (c *Console) Print(tree Dumpable, config *Config) error {
	return c.Fprint(os.Stdout, tree, config)
}

// Fprint outputs a tree structure dump to w.
func (c *Console) Fprint(w io.Writer, tree Dumpable, config *Config) error {
	if tree == nil {
		return nil
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	var err error
	tree.WalkNodes(func(info btree.NodeInfo) bool {
		line := fmt.Sprintf("%s[%s]", strings.Repeat("    ", info.Depth),
			strings.Join(info.Keys, " "))
		if !info.Leaf {
			line += fmt.Sprintf(" children# %d", info.Children)
		}
		line = clip(line, config.LineWidth)
		if _, err = c.depthColor(info.Depth).Fprintln(w, line); err != nil {
			return false
		}
		return true
	})
	return err
}

func (c *Console) depthColor(depth int) *color.Color {
	if len(c.colors) == 0 {
		return color.New(color.Reset)
	}
	if col, ok := c.colors[depth%len(c.colors)]; ok {
		return col
	}
	return color.New(color.Reset)
}

// clip shortens a line to at most width positions, marking the cut.
func clip(line string, width int) string {
	if width <= 0 {
		return line
	}
	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	return string(runes[:width-1]) + "…"
}

const (
	// defaultLineWidth is used when stdout is not an interactive terminal.
	defaultLineWidth = 65
	// minLineWidth leaves room for node indentation plus a couple of keys.
	minLineWidth = 12
)

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: defaultLineWidth}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			// Keep a small right margin so the clip marker never wraps.
			config.LineWidth = max(minLineWidth, w-2)
		}
	}
	T().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
