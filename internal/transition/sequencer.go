package transition

// Sequencer pairs renderer commands with completion signals.
//
// Two independent hooks can be armed at once: the committed hook installed by
// Sequence, and the rest hook installed by ArmRest after a drag-follow
// command. A completion signal fires the rest hook first, then the committed
// hook, and disarms both.
type Sequencer struct {
	renderer Renderer
	indexFn  func() int

	pending  *Token
	rest     bool
	detached bool
}

// NewSequencer returns a sequencer emitting into r. indexFn supplies the pane
// index used by the rest path when it resets to the canonical position.
func NewSequencer(r Renderer, indexFn func() int) *Sequencer {
	if indexFn == nil {
		indexFn = func() int { return 0 }
	}
	return &Sequencer{renderer: r, indexFn: indexFn}
}

// Emit sends cmd to the renderer without arming anything.
func (s *Sequencer) Emit(cmd Command) {
	if s.detached || s.renderer == nil {
		return
	}
	s.renderer.Render(cmd)
}

// Sequence emits cmd and arms onComplete for the next completion signal.
// Zero-duration commands complete immediately since renderers are not
// required to signal them.
func (s *Sequencer) Sequence(cmd Command, onComplete func()) {
	if s.detached {
		return
	}
	// a superseded hook must never fire
	s.pending.Disarm()
	s.Emit(cmd)
	s.pending = NewToken(onComplete)
	if cmd.Duration <= 0 {
		s.Complete()
	}
}

// ArmRest arms the drag-follow cleanup for the next completion signal.
func (s *Sequencer) ArmRest() {
	if s.detached {
		return
	}
	s.rest = true
}

// RestArmed reports whether the rest path will run on the next signal.
func (s *Sequencer) RestArmed() bool { return s.rest }

// Pending reports whether a committed hook is waiting for completion.
func (s *Sequencer) Pending() bool { return s.pending.Armed() }

// Complete delivers one completion signal. Signals with nothing armed are
// ignored.
func (s *Sequencer) Complete() {
	if s.detached {
		return
	}
	if s.rest {
		s.rest = false
		s.Emit(Command{Index: s.indexFn(), Offset: Canonical()})
	}
	if tok := s.pending; tok != nil {
		s.pending = nil
		tok.Fire()
	}
}

// Detach removes every armed hook. The sequencer stays inert afterwards.
func (s *Sequencer) Detach() {
	s.pending.Disarm()
	s.pending = nil
	s.rest = false
	s.detached = true
}

// Detached reports whether Detach was called.
func (s *Sequencer) Detached() bool { return s.detached }
