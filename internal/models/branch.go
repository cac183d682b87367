package models

type Branch struct {
	Name      string
	Hash      string // tip commit, empty when Unborn
	IsCurrent bool
	Unborn    bool // HEAD names this branch but it has no commits yet
}

// ShortHash returns the abbreviated tip hash, or "" for an unborn branch.
func (b Branch) ShortHash() string {
	if len(b.Hash) > 7 {
		return b.Hash[:7]
	}
	return b.Hash
}
