package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Johannes-Berggren/GitBuilding/internal/models"
)

const (
	tileHeight    = 7 // border included
	minTileWidth  = 16
	defTileWidth  = 24
	gutterX       = 2
	gutterY       = 1
	gridPadLeft   = 2
	footerHeight  = 2
	minVisibleRow = 1
)

// BuildingView lays branches out as a grid of window tiles. It keeps the
// geometry it last rendered so clicks can be mapped back to a tile.
type BuildingView struct {
	branches []models.Branch
	loaded   bool
	err      error
	cursor   int
	columns  int
	rowOff   int
	top      int // screen row of the first grid line
	width    int
	height   int
	styles   styles
}

func NewBuildingView(columns, top int, st styles) *BuildingView {
	if columns < 1 {
		columns = 1
	}
	return &BuildingView{columns: columns, top: top, styles: st}
}

// SetBranches installs the one-time branch snapshot. The cursor starts on
// the active branch when there is one.
func (b *BuildingView) SetBranches(branches []models.Branch, err error) {
	b.loaded = true
	b.err = err
	b.branches = branches
	b.cursor = 0
	for i, br := range branches {
		if br.IsCurrent {
			b.cursor = i
			break
		}
	}
	b.ensureVisible()
}

func (b *BuildingView) SetSize(width, height int) {
	b.width = width
	b.height = height
	b.ensureVisible()
}

func (b *BuildingView) Branches() []models.Branch {
	return b.branches
}

func (b *BuildingView) Err() error {
	return b.err
}

func (b *BuildingView) SelectedBranch() *models.Branch {
	if b.cursor >= 0 && b.cursor < len(b.branches) {
		return &b.branches[b.cursor]
	}
	return nil
}

// Move shifts the cursor by dx columns and dy rows, clamped to the grid.
func (b *BuildingView) Move(dx, dy int) {
	if len(b.branches) == 0 {
		return
	}
	next := b.cursor + dx + dy*b.columns
	if dx != 0 {
		// horizontal moves stay within the current row
		row := b.cursor / b.columns
		if next < row*b.columns || next >= (row+1)*b.columns {
			return
		}
	}
	if next < 0 || next >= len(b.branches) {
		return
	}
	b.cursor = next
	b.ensureVisible()
}

// Select puts the cursor on tile i.
func (b *BuildingView) Select(i int) bool {
	if i < 0 || i >= len(b.branches) {
		return false
	}
	b.cursor = i
	b.ensureVisible()
	return true
}

func (b *BuildingView) tileWidth() int {
	if b.width <= 0 {
		return defTileWidth
	}
	w := (b.width - 2*gridPadLeft - gutterX*(b.columns-1)) / b.columns
	if w < minTileWidth {
		w = minTileWidth
	}
	return w
}

func (b *BuildingView) visibleRows() int {
	if b.height <= 0 {
		return 1 << 16
	}
	rows := (b.height - b.top - footerHeight + gutterY) / (tileHeight + gutterY)
	if rows < minVisibleRow {
		rows = minVisibleRow
	}
	return rows
}

func (b *BuildingView) ensureVisible() {
	row := b.cursor / b.columns
	vis := b.visibleRows()
	if row < b.rowOff {
		b.rowOff = row
	}
	if row >= b.rowOff+vis {
		b.rowOff = row - vis + 1
	}
}

// TileAt maps a screen cell to a tile index, or -1 for gutters, borders of
// the screen and empty grid slots.
func (b *BuildingView) TileAt(x, y int) int {
	if len(b.branches) == 0 || x < gridPadLeft || y < b.top {
		return -1
	}
	tw := b.tileWidth()
	col, cx := (x-gridPadLeft)/(tw+gutterX), (x-gridPadLeft)%(tw+gutterX)
	row, cy := (y-b.top)/(tileHeight+gutterY), (y-b.top)%(tileHeight+gutterY)
	if col >= b.columns || cx >= tw || cy >= tileHeight || row >= b.visibleRows() {
		return -1
	}
	i := (row+b.rowOff)*b.columns + col
	if i >= len(b.branches) {
		return -1
	}
	return i
}

func (b *BuildingView) View() string {
	if !b.loaded {
		return b.styles.meta.Render("Loading branches...")
	}
	if b.err != nil {
		return b.styles.errText.Render(fmt.Sprintf("⚠️  Error: %v", b.err))
	}
	if len(b.branches) == 0 {
		return b.styles.meta.Render("This building has no rooms yet.")
	}

	tw := b.tileWidth()
	gapX := strings.Repeat(" ", gutterX)

	first := b.rowOff * b.columns
	last := first + b.visibleRows()*b.columns
	if last > len(b.branches) {
		last = len(b.branches)
	}

	var rows []string
	for start := first; start < last; start += b.columns {
		var cells []string
		for i := start; i < start+b.columns && i < last; i++ {
			if i > start {
				cells = append(cells, gapX)
			}
			cells = append(cells, b.renderTile(i, tw))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	grid := strings.Join(rows, strings.Repeat("\n", gutterY+1))
	return lipgloss.NewStyle().PaddingLeft(gridPadLeft).Render(grid)
}

func (b *BuildingView) renderTile(i, width int) string {
	br := b.branches[i]
	inner := width - 2

	style := b.styles.tile
	switch {
	case br.IsCurrent:
		style = b.styles.tileActive
		if i == b.cursor {
			style = style.BorderForeground(b.styles.tileCursor.GetBorderTopForeground())
		}
	case i == b.cursor:
		style = b.styles.tileCursor
	}

	detail := br.ShortHash()
	if br.Unborn {
		detail = "unborn"
	}
	if br.IsCurrent {
		detail = "★ " + detail
	}

	content := strings.Join([]string{
		"🪟",
		ansi.Truncate(br.Name, inner-2, "…"),
		ansi.Truncate(detail, inner-2, "…"),
	}, "\n")

	return style.
		Width(inner).
		Height(tileHeight - 2).
		Render(content)
}
