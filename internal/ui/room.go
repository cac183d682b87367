package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/docker/go-units"

	"github.com/Johannes-Berggren/GitBuilding/internal/room"
)

// RoomView shows one branch: its latest commits and the room directory's
// files, in a scrollable viewport.
type RoomView struct {
	branch   string
	content  room.Content
	loaded   bool
	viewport viewport.Model
	styles   styles
	now      func() time.Time
}

func NewRoomView(branch string, width, height int, st styles) *RoomView {
	vp := viewport.New(width, height)
	r := &RoomView{
		branch:   branch,
		viewport: vp,
		styles:   st,
		now:      time.Now,
	}
	r.refresh()
	return r
}

func (r *RoomView) Branch() string {
	return r.branch
}

func (r *RoomView) Content() room.Content {
	return r.content
}

func (r *RoomView) Loaded() bool {
	return r.loaded
}

func (r *RoomView) SetContent(c room.Content) {
	r.content = c
	r.loaded = true
	r.refresh()
	r.viewport.GotoTop()
}

func (r *RoomView) SetSize(width, height int) {
	r.viewport.Width = width
	r.viewport.Height = height
	r.refresh()
}

func (r *RoomView) ScrollUp()   { r.viewport.ScrollUp(1) }
func (r *RoomView) ScrollDown() { r.viewport.ScrollDown(1) }

// Update forwards mouse wheel events to the viewport.
func (r *RoomView) Update(msg tea.Msg) (*RoomView, tea.Cmd) {
	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)
	return r, cmd
}

func (r *RoomView) View() string {
	return r.viewport.View()
}

func (r *RoomView) refresh() {
	r.viewport.SetContent(r.render())
}

func (r *RoomView) render() string {
	var b strings.Builder
	st := r.styles

	b.WriteString(st.roomTitle.Render("🏠 Inside room: "+r.branch) + "\n")

	if !r.loaded {
		b.WriteString(st.meta.Render("Opening the door..."))
		return b.String()
	}

	b.WriteString(st.subtitle.Render("📜 Latest construction logs") + "\n")
	switch {
	case r.content.CommitsErr != nil:
		b.WriteString(st.errText.Render(fmt.Sprintf("  no logs available: %v", r.content.CommitsErr)) + "\n")
	case len(r.content.Commits) == 0:
		b.WriteString(st.dim.Render("  (This room is brand new - no history yet)") + "\n")
	default:
		now := r.now()
		for _, c := range r.content.Commits {
			line := fmt.Sprintf("📍 %s  %s %s",
				c.Summary,
				st.hash.Render(c.ShortHash),
				st.meta.Render("- "+formatRelativeTime(c.Date, now)))
			b.WriteString(st.poster.Render(line) + "\n")
		}
	}

	b.WriteString(st.subtitle.Render("🪑 Furniture in "+r.content.Dir) + "\n")
	switch {
	case r.content.FilesErr != nil:
		b.WriteString(st.errText.Render(fmt.Sprintf("  cannot list files: %v", r.content.FilesErr)) + "\n")
	case len(r.content.Files) == 0:
		b.WriteString(st.dim.Render("  (empty room)") + "\n")
	default:
		for _, f := range r.content.Files {
			if f.IsDir {
				b.WriteString("  " + st.dir.Render("📁 "+f.Name+"/") + "\n")
				continue
			}
			b.WriteString("  " + st.file.Render("📄 "+f.Name) + " " + st.meta.Render(units.BytesSize(float64(f.Size))) + "\n")
		}
	}

	b.WriteString(st.dim.Render("  files reflect the room directory, not a checkout of this branch"))
	return b.String()
}
