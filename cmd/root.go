package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Johannes-Berggren/GitBuilding/internal/config"
	"github.com/Johannes-Berggren/GitBuilding/internal/git"
	"github.com/Johannes-Berggren/GitBuilding/internal/logging"
	"github.com/Johannes-Berggren/GitBuilding/internal/room"
	"github.com/Johannes-Berggren/GitBuilding/internal/ui"
)

var params struct {
	path     string
	dir      string
	commits  int
	columns  int
	theme    string
	logFile  string
	logLevel string
	bind     map[string]string
}

var rootCmd = &cobra.Command{
	Use:   "building",
	Short: "Walk through a git repository's branches as rooms in a building",
	Long: `GitBuilding renders every branch of a git repository as a window in a building.

Click a window (or move with the arrow keys and press enter) to step into that
branch's room: its latest commits hang on the wall and the files of the room
directory are the furniture. Press esc to go back out.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}

		logger, err := logging.GetLogger(cfg.LogLevel, cfg.LogFile)
		if err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		p := tea.NewProgram(newModel(cfg, logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running app: %w", err)
		}
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	defaults := config.DefaultConfig()
	flags := rootCmd.Flags()
	flags.StringVarP(&params.path, "path", "p", defaults.RepoPath, "Where to start looking for the repository")
	flags.StringVarP(&params.dir, "dir", "d", defaults.RoomDir, "Directory whose files are listed in every room")
	flags.IntVarP(&params.commits, "commits", "n", defaults.CommitLimit, "Number of recent commits shown in a room")
	flags.IntVarP(&params.columns, "columns", "c", defaults.Columns, "Windows per floor in the building grid")
	flags.StringVar(&params.theme, "theme", string(defaults.ThemePreset), "Color theme: default, solarized or dracula")
	flags.StringVar(&params.logFile, "log-file", "", "Write logs to this file (disabled when empty)")
	flags.StringVar(&params.logLevel, "log-level", defaults.LogLevel, "Log level: debug, info or none")
	flags.StringToStringVar(&params.bind, "bind", nil, "Override key bindings, e.g. --bind back=backspace,activate=o (join alternatives with |)")
}

func buildConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.RepoPath = params.path
	cfg.RoomDir = params.dir
	cfg.CommitLimit = params.commits
	cfg.Columns = params.columns
	cfg.LogFile = params.logFile
	cfg.LogLevel = params.logLevel

	preset, err := config.ParsePreset(params.theme)
	if err != nil {
		return nil, err
	}
	cfg.ThemePreset = preset
	cfg.Theme = config.ThemeForPreset(preset)

	overrides := config.Keybindings{}
	for action, keys := range params.bind {
		overrides[action] = strings.Split(keys, "|")
	}
	cfg.Keybindings = config.MergeKeybindings(overrides)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newModel opens the repository and wires the UI. A missing repository is
// not fatal: the overview shows the error instead of the grid.
func newModel(cfg *config.Config, logger *zap.Logger) ui.Model {
	opts := ui.Options{Config: cfg, Logger: logger}

	repo, err := git.Open(cfg.RepoPath, logger)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotFound) {
			logger.Warn("no repository found", zap.String("path", cfg.RepoPath))
		} else {
			logger.Error("failed to open repository", zap.Error(err))
		}
		opts.OpenErr = err
		opts.Rooms = room.NewProvider(nil, afero.NewOsFs(), cfg.RoomDir, cfg.CommitLimit, logger)
		return ui.NewModel(opts)
	}

	opts.Repo = repo
	opts.Rooms = room.NewProvider(repo, afero.NewOsFs(), cfg.RoomDir, cfg.CommitLimit, logger)
	return ui.NewModel(opts)
}
