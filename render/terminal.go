package render

import (
	"os"

	"golang.org/x/term"
)

const defaultLineWidth = 65

// ConfigFromTerminal is a simple helper for creating a printer Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and switches on colors.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: defaultLineWidth}
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return config
	}
	config.Color = true
	if w, _, err := term.GetSize(fd); err == nil {
		switch {
		case w > 65:
			config.LineWidth = w - 10
		case w > 30:
			config.LineWidth = w - 5
		case w > 10:
			config.LineWidth = w
		default:
			config.LineWidth = 10
		}
	}
	tracer().Debugf("render: line width %d, color %v", config.LineWidth, config.Color)
	return config
}
