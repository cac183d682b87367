package models

import "strings"

// HiddenPrefix marks directory entries that are never shown in a room.
const HiddenPrefix = "."

type DirectoryEntry struct {
	Name  string
	IsDir bool
	Size  int64
}

// IsHidden reports whether name uses the dot-file convention.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, HiddenPrefix)
}
