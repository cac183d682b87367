package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Johannes-Berggren/GitBuilding/internal/config"
	"github.com/Johannes-Berggren/GitBuilding/internal/git"
	"github.com/Johannes-Berggren/GitBuilding/internal/models"
	"github.com/Johannes-Berggren/GitBuilding/internal/nav"
	"github.com/Johannes-Berggren/GitBuilding/internal/room"
)

const headerHeight = 2

// BranchSource is the read side of a repository the overview needs.
type BranchSource interface {
	Root() string
	Branches() ([]models.Branch, error)
	ActiveBranch() (*models.Branch, error)
}

// ContentLoader produces what a room shows.
type ContentLoader interface {
	Load(branch string) room.Content
}

// Options wires the model to its collaborators. When the repository could
// not be opened, Repo is nil and OpenErr says why.
type Options struct {
	Config  *config.Config
	Repo    BranchSource
	OpenErr error
	Rooms   ContentLoader
	Logger  *zap.Logger
}

type branchesLoadedMsg struct {
	branches []models.Branch
	active   *models.Branch
	err      error
}

type roomLoadedMsg struct {
	content room.Content
}

type Model struct {
	cfg      *config.Config
	repo     BranchSource
	openErr  error
	rooms    ContentLoader
	log      *zap.Logger
	styles   styles
	keys     keyMap
	help     help.Model
	stack    *nav.Stack
	dispatch *nav.Dispatcher[Model, tea.Cmd]

	building *BuildingView
	room     *RoomView

	root   string
	active *models.Branch
	width  int
	height int
}

func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	st := newStyles(cfg.Theme)

	h := help.New()
	h.Styles.ShortKey = st.meta.Bold(true)
	h.Styles.ShortDesc = st.help

	m := Model{
		cfg:      cfg,
		repo:     opts.Repo,
		openErr:  opts.OpenErr,
		rooms:    opts.Rooms,
		log:      logger,
		styles:   st,
		keys:     newKeyMap(cfg.Keybindings),
		help:     h,
		stack:    nav.NewStack(),
		building: NewBuildingView(cfg.Columns, headerHeight+1, st),
	}
	if opts.Repo != nil {
		m.root = opts.Repo.Root()
	}

	m.dispatch = nav.NewDispatcher[Model, tea.Cmd]().
		On(nav.EventQuit, Model.quit).
		On(nav.EventExit, Model.exit).
		On(nav.EventActivate, Model.activate).
		On(nav.EventMoveUp, move(0, -1)).
		On(nav.EventMoveDown, move(0, 1)).
		On(nav.EventMoveLeft, move(-1, 0)).
		On(nav.EventMoveRight, move(1, 0))
	return m
}

func (m Model) Init() tea.Cmd {
	return m.loadBranches()
}

// loadBranches reads the branch snapshot once; the grid never refreshes.
func (m Model) loadBranches() tea.Cmd {
	repo, openErr := m.repo, m.openErr
	return func() tea.Msg {
		if repo == nil {
			if openErr == nil {
				openErr = fmt.Errorf("no repository")
			}
			return branchesLoadedMsg{err: openErr}
		}
		branches, err := repo.Branches()
		if err != nil {
			return branchesLoadedMsg{err: err}
		}
		active, err := repo.ActiveBranch()
		if err != nil {
			return branchesLoadedMsg{err: err}
		}
		return branchesLoadedMsg{branches: branches, active: active}
	}
}

func (m Model) loadRoom(branch string) tea.Cmd {
	rooms := m.rooms
	return func() tea.Msg {
		if rooms == nil {
			return roomLoadedMsg{content: room.Content{Branch: branch}}
		}
		return roomLoadedMsg{content: rooms.Load(branch)}
	}
}

// Screen reports where navigation currently is.
func (m Model) Screen() nav.Screen {
	return m.stack.Current()
}

func (m Model) Building() *BuildingView {
	return m.building
}

func (m Model) Room() *RoomView {
	return m.room
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		kind, ok := m.keys.event(msg)
		if !ok {
			return m, nil
		}
		next, cmd, _ := m.dispatch.Dispatch(kind, m)
		return next, cmd

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case branchesLoadedMsg:
		m.active = msg.active
		m.building.SetBranches(msg.branches, msg.err)
		if msg.err != nil {
			m.log.Error("failed to load branches", zap.Error(msg.err))
		} else {
			m.log.Info("loaded building", zap.Int("rooms", len(msg.branches)))
		}
		return m, nil

	case roomLoadedMsg:
		// a late load for a room already left is dropped
		if m.room != nil && m.room.Branch() == msg.content.Branch {
			m.room.SetContent(msg.content)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.building.SetSize(msg.Width, msg.Height)
		if m.room != nil {
			m.room.SetSize(m.bodySize())
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.room != nil {
		var cmd tea.Cmd
		m.room, cmd = m.room.Update(msg)
		return m, cmd
	}
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return m, nil
	}
	if !m.building.Select(m.building.TileAt(msg.X, msg.Y)) {
		return m, nil
	}
	next, cmd, _ := m.dispatch.Dispatch(nav.EventActivate, m)
	return next, cmd
}

func (m Model) quit() (Model, tea.Cmd) {
	return m, tea.Quit
}

// exit leaves a room; on the overview it quits.
func (m Model) exit() (Model, tea.Cmd) {
	left, err := m.stack.Exit()
	if err != nil {
		return m, tea.Quit
	}
	m.room = nil
	m.log.Debug("left room", zap.String("branch", left.Branch))
	return m, nil
}

func (m Model) activate() (Model, tea.Cmd) {
	if m.stack.Current().Kind != nav.ScreenOverview {
		return m, nil
	}
	selected := m.building.SelectedBranch()
	if selected == nil {
		return m, nil
	}
	if err := m.stack.Enter(selected.Name); err != nil {
		m.log.Warn("cannot enter room", zap.Error(err))
		return m, nil
	}
	w, h := m.bodySize()
	m.room = NewRoomView(selected.Name, w, h, m.styles)
	return m, m.loadRoom(selected.Name)
}

func move(dx, dy int) nav.Handler[Model, tea.Cmd] {
	return func(m Model) (Model, tea.Cmd) {
		if m.room != nil {
			if dy < 0 {
				m.room.ScrollUp()
			} else if dy > 0 {
				m.room.ScrollDown()
			}
			return m, nil
		}
		m.building.Move(dx, dy)
		return m, nil
	}
}

// bodySize is the area between header and footer.
func (m Model) bodySize() (int, int) {
	h := m.height - headerHeight - footerHeight
	if h < 1 {
		h = 1
	}
	return m.width, h
}

func (m Model) View() string {
	var body string
	if m.room != nil {
		body = m.room.View()
	} else {
		body = "\n" + m.building.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	title := m.styles.title.Render("🏢 GitBuilding")

	var info string
	err := m.building.Err()
	switch {
	case errors.Is(err, git.ErrRepositoryNotFound):
		info = m.styles.errText.Render("no repository")
	case err != nil:
		info = m.styles.errText.Render("cannot open repository")
	case m.active != nil:
		info = m.styles.active.Render(m.active.Name) + " " + m.styles.meta.Render(fmt.Sprintf("(%s)", m.root))
	case m.root != "":
		info = m.styles.meta.Render(fmt.Sprintf("detached HEAD (%s)", m.root))
	}

	headerLine := lipgloss.JoinHorizontal(lipgloss.Top, title, info)
	divider := m.styles.divider.Render(strings.Repeat("─", m.width))
	return lipgloss.JoinVertical(lipgloss.Left, headerLine, divider)
}

func (m Model) renderFooter() string {
	bindings := m.keys.overviewHelp()
	if m.room != nil {
		bindings = m.keys.roomHelp()
	}
	divider := m.styles.divider.Render(strings.Repeat("─", m.width))
	return lipgloss.JoinVertical(lipgloss.Left, divider, m.help.ShortHelpView(bindings))
}
