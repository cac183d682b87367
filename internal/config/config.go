package config

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap/zapcore"

	"github.com/Johannes-Berggren/GitBuilding/internal/logging"
)

// Config holds the application configuration
type Config struct {
	RepoPath    string // where repository discovery starts
	RoomDir     string // directory whose files every room lists
	CommitLimit int
	Columns     int
	ThemePreset ThemePreset
	Theme       Theme
	Keybindings Keybindings
	LogLevel    string
	LogFile     string
}

// ThemePreset describes a named theme configuration.
type ThemePreset string

const (
	PresetDefault  ThemePreset = "default"
	PresetSolarize ThemePreset = "solarized"
	PresetDracula  ThemePreset = "dracula"
)

// Theme defines the color scheme for the application
type Theme struct {
	TitleFg      lipgloss.Color
	AccentFg     lipgloss.Color
	TextFg       lipgloss.Color
	DimFg        lipgloss.Color
	BorderFg     lipgloss.Color
	ActiveFg     lipgloss.Color
	ActiveBg     lipgloss.Color
	CursorFg     lipgloss.Color
	ErrorFg      lipgloss.Color
	PosterBg     lipgloss.Color
	PosterEdgeFg lipgloss.Color
}

// Keybindings maps semantic actions to one or more key sequences.
type Keybindings map[string][]string

// Actions understood by the UI.
const (
	ActionQuit     = "quit"
	ActionBack     = "back"
	ActionActivate = "activate"
	ActionUp       = "up"
	ActionDown     = "down"
	ActionLeft     = "left"
	ActionRight    = "right"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		RepoPath:    ".",
		RoomDir:     ".",
		CommitLimit: 5,
		Columns:     3,
		ThemePreset: PresetDefault,
		Theme:       ThemeForPreset(PresetDefault),
		Keybindings: DefaultKeybindings(),
		LogLevel:    "info",
	}
}

// DefaultTheme returns the default color theme
func DefaultTheme() Theme {
	return Theme{
		TitleFg:      lipgloss.Color("170"),
		AccentFg:     lipgloss.Color("cyan"),
		TextFg:       lipgloss.Color("white"),
		DimFg:        lipgloss.Color("241"),
		BorderFg:     lipgloss.Color("62"),
		ActiveFg:     lipgloss.Color("#3fb950"),
		ActiveBg:     lipgloss.Color("#064e3b"),
		CursorFg:     lipgloss.Color("212"),
		ErrorFg:      lipgloss.Color("196"),
		PosterBg:     lipgloss.Color("236"),
		PosterEdgeFg: lipgloss.Color("99"),
	}
}

// ThemeForPreset resolves a preset name to a concrete Theme.
func ThemeForPreset(preset ThemePreset) Theme {
	switch preset {
	case PresetSolarize:
		return Theme{
			TitleFg:      lipgloss.Color("#EEE8D5"),
			AccentFg:     lipgloss.Color("#2AA198"),
			TextFg:       lipgloss.Color("#93A1A1"),
			DimFg:        lipgloss.Color("#586E75"),
			BorderFg:     lipgloss.Color("#657B83"),
			ActiveFg:     lipgloss.Color("#859900"),
			ActiveBg:     lipgloss.Color("#073642"),
			CursorFg:     lipgloss.Color("#B58900"),
			ErrorFg:      lipgloss.Color("#DC322F"),
			PosterBg:     lipgloss.Color("#073642"),
			PosterEdgeFg: lipgloss.Color("#6C71C4"),
		}
	case PresetDracula:
		return Theme{
			TitleFg:      lipgloss.Color("#F8F8F2"),
			AccentFg:     lipgloss.Color("#8BE9FD"),
			TextFg:       lipgloss.Color("#F8F8F2"),
			DimFg:        lipgloss.Color("#6272A4"),
			BorderFg:     lipgloss.Color("#44475A"),
			ActiveFg:     lipgloss.Color("#50FA7B"),
			ActiveBg:     lipgloss.Color("#244443"),
			CursorFg:     lipgloss.Color("#FF79C6"),
			ErrorFg:      lipgloss.Color("#FF5555"),
			PosterBg:     lipgloss.Color("#282A36"),
			PosterEdgeFg: lipgloss.Color("#BD93F9"),
		}
	default:
		return DefaultTheme()
	}
}

// ParsePreset maps a user-supplied theme name to a preset.
func ParsePreset(raw string) (ThemePreset, error) {
	switch ThemePreset(raw) {
	case "", PresetDefault:
		return PresetDefault, nil
	case PresetSolarize, "solarize":
		return PresetSolarize, nil
	case PresetDracula:
		return PresetDracula, nil
	default:
		return "", fmt.Errorf("unsupported theme: %s", raw)
	}
}

// DefaultKeybindings returns the built-in keybinding map.
func DefaultKeybindings() Keybindings {
	return Keybindings{
		ActionQuit:     {"q", "ctrl+c"},
		ActionBack:     {"esc"},
		ActionActivate: {"enter", " "},
		ActionUp:       {"k", "up"},
		ActionDown:     {"j", "down"},
		ActionLeft:     {"h", "left"},
		ActionRight:    {"l", "right"},
	}
}

// MergeKeybindings overlays user overrides onto defaults.
func MergeKeybindings(overrides Keybindings) Keybindings {
	defaults := DefaultKeybindings()
	for action, keys := range overrides {
		if len(keys) == 0 {
			continue
		}
		defaults[action] = keys
	}
	return defaults
}

// Validate checks the numeric limits, the log level, that every bound
// action exists and that no key is bound twice.
func (c *Config) Validate() error {
	if c.CommitLimit < 1 {
		return fmt.Errorf("commit limit must be positive, got %d", c.CommitLimit)
	}
	if c.Columns < 1 {
		return fmt.Errorf("columns must be positive, got %d", c.Columns)
	}
	if c.LogLevel != logging.LevelNone {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
		}
	}

	actions := make([]string, 0, len(c.Keybindings))
	for action := range c.Keybindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	known := DefaultKeybindings()
	owner := make(map[string]string)
	for _, action := range actions {
		if _, ok := known[action]; !ok {
			return fmt.Errorf("unknown key action: %s", action)
		}
		for _, k := range c.Keybindings[action] {
			if prev, ok := owner[k]; ok {
				return fmt.Errorf("key %q bound to both %s and %s", k, prev, action)
			}
			owner[k] = action
		}
	}
	return nil
}
