package session

import "sync"

// stickThreshold is the distance in pixels from the bottom within which the
// viewport still counts as "at bottom".
const stickThreshold = 10

// ScrollController decides whether the transcript view follows newly
// appended content. It holds no geometry of its own; the viewport reports
// offsets and the controller answers with scroll targets.
type ScrollController struct {
	mu        sync.Mutex
	autoStick bool
}

// NewScrollController starts sticking to the bottom.
func NewScrollController() *ScrollController {
	return &ScrollController{autoStick: true}
}

// AutoStick reports whether the view currently follows appends.
func (s *ScrollController) AutoStick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.autoStick
}

// ObserveScroll recomputes stickiness from a viewport scroll event and
// reports whether the jump-to-bottom affordance should show.
func (s *ScrollController) ObserveScroll(offset, viewport, content int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.autoStick = content-(offset+viewport) <= stickThreshold
	return !s.autoStick
}

// OnAppend returns the scroll target after new content, or -1 when the view
// stays where the user left it.
func (s *ScrollController) OnAppend(viewport, content int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.autoStick {
		return -1
	}
	return maxOffset(viewport, content)
}

// JumpToBottom re-enables following and returns the bottom offset.
func (s *ScrollController) JumpToBottom(viewport, content int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.autoStick = true
	return maxOffset(viewport, content)
}

func maxOffset(viewport, content int) int {
	if content <= viewport {
		return 0
	}
	return content - viewport
}
