package ui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Johannes-Berggren/GitBuilding/internal/config"
	"github.com/Johannes-Berggren/GitBuilding/internal/models"
)

func building(n, columns int) *BuildingView {
	b := NewBuildingView(columns, 3, newStyles(config.DefaultTheme()))
	var branches []models.Branch
	for i := 0; i < n; i++ {
		branches = append(branches, models.Branch{Name: fmt.Sprintf("b%d", i)})
	}
	b.SetBranches(branches, nil)
	return b
}

func TestCursorStartsOnActiveBranch(t *testing.T) {
	b := NewBuildingView(3, 3, newStyles(config.DefaultTheme()))
	b.SetBranches([]models.Branch{{Name: "a"}, {Name: "b"}, {Name: "c", IsCurrent: true}}, nil)
	assert.Equal(t, "c", b.SelectedBranch().Name)
}

func TestMoveStaysInGrid(t *testing.T) {
	b := building(7, 3)

	b.Move(1, 0)
	b.Move(1, 0)
	assert.Equal(t, "b2", b.SelectedBranch().Name)
	b.Move(1, 0) // end of row
	assert.Equal(t, "b2", b.SelectedBranch().Name)

	b.Move(0, 1)
	assert.Equal(t, "b5", b.SelectedBranch().Name)
	b.Move(0, 1) // no tile below
	assert.Equal(t, "b5", b.SelectedBranch().Name)

	b.Move(-1, 0)
	b.Move(-1, 0)
	b.Move(0, 1)
	assert.Equal(t, "b6", b.SelectedBranch().Name)
	b.Move(-1, 0) // start of row
	assert.Equal(t, "b6", b.SelectedBranch().Name)

	b.Move(0, -1)
	b.Move(0, -1)
	b.Move(0, -1)
	assert.Equal(t, "b0", b.SelectedBranch().Name)
}

func TestTileAtWithScrolledRows(t *testing.T) {
	b := building(12, 3)
	b.SetSize(100, 3+2+8) // room for one row of tiles

	assert.Equal(t, 0, b.TileAt(2, 3))
	b.Move(0, 1)
	b.Move(0, 1)
	assert.Equal(t, "b6", b.SelectedBranch().Name)
	assert.Equal(t, 6, b.TileAt(2, 3))
	assert.Equal(t, -1, b.TileAt(2, 3+tileHeight+gutterY))
}

func TestEmptyBuilding(t *testing.T) {
	b := building(0, 3)
	assert.Nil(t, b.SelectedBranch())
	assert.Equal(t, -1, b.TileAt(5, 5))
	assert.Contains(t, b.View(), "no rooms")
	assert.False(t, b.Select(0))
}

func TestLoadingBuilding(t *testing.T) {
	b := NewBuildingView(3, 3, newStyles(config.DefaultTheme()))
	assert.Contains(t, b.View(), "Loading")
}

func TestTileShowsUnbornAndTruncates(t *testing.T) {
	b := NewBuildingView(1, 3, newStyles(config.DefaultTheme()))
	b.SetSize(20, 40)
	b.SetBranches([]models.Branch{{Name: "feature/a-very-long-branch-name", Unborn: true}}, nil)

	view := b.View()
	assert.Contains(t, view, "unborn")
	assert.Contains(t, view, "…")
	assert.NotContains(t, view, "branch-name")
}
