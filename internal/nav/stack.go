// Package nav models screen navigation: an Overview at the bottom of a stack
// and at most one Room on top of it.
package nav

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned for a transition the current screen does
// not allow.
var ErrInvalidTransition = errors.New("invalid transition")

type ScreenKind int

const (
	ScreenOverview ScreenKind = iota
	ScreenRoom
)

func (k ScreenKind) String() string {
	switch k {
	case ScreenOverview:
		return "overview"
	case ScreenRoom:
		return "room"
	default:
		return fmt.Sprintf("screen(%d)", int(k))
	}
}

// Screen is one entry on the navigation stack. Branch is set for rooms only.
type Screen struct {
	Kind   ScreenKind
	Branch string
}

// Stack holds the open screens. The bottom entry is always the Overview.
type Stack struct {
	screens []Screen
}

func NewStack() *Stack {
	return &Stack{screens: []Screen{{Kind: ScreenOverview}}}
}

func (s *Stack) Current() Screen {
	return s.screens[len(s.screens)-1]
}

func (s *Stack) Depth() int {
	return len(s.screens)
}

func (s *Stack) Push(screen Screen) {
	s.screens = append(s.screens, screen)
}

// Pop removes the top screen. The Overview is never popped.
func (s *Stack) Pop() (Screen, bool) {
	if len(s.screens) == 1 {
		return Screen{}, false
	}
	top := s.Current()
	s.screens = s.screens[:len(s.screens)-1]
	return top, true
}

// Enter moves from the Overview into the room for branch.
func (s *Stack) Enter(branch string) error {
	if cur := s.Current(); cur.Kind != ScreenOverview {
		return fmt.Errorf("%w: enter %q from %s", ErrInvalidTransition, branch, cur.Kind)
	}
	if branch == "" {
		return fmt.Errorf("%w: enter requires a branch", ErrInvalidTransition)
	}
	s.Push(Screen{Kind: ScreenRoom, Branch: branch})
	return nil
}

// Exit leaves the current room and returns to the Overview.
func (s *Stack) Exit() (Screen, error) {
	if cur := s.Current(); cur.Kind != ScreenRoom {
		return Screen{}, fmt.Errorf("%w: exit from %s", ErrInvalidTransition, cur.Kind)
	}
	top, _ := s.Pop()
	return top, nil
}
