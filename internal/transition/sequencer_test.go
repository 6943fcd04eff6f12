package transition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	cmds []Command
}

func (r *recorder) Render(cmd Command) { r.cmds = append(r.cmds, cmd) }

func TestTokenFiresOnce(t *testing.T) {
	calls := 0
	tok := NewToken(func() { calls++ })
	require.True(t, tok.Armed())
	assert.True(t, tok.Fire())
	assert.False(t, tok.Fire())
	assert.Equal(t, 1, calls)
}

func TestTokenDisarm(t *testing.T) {
	calls := 0
	tok := NewToken(func() { calls++ })
	tok.Disarm()
	assert.False(t, tok.Fire())
	assert.Zero(t, calls)

	var nilTok *Token
	nilTok.Disarm()
	assert.False(t, nilTok.Fire())
}

func TestSequenceFiresExactlyOnce(t *testing.T) {
	r := &recorder{}
	s := NewSequencer(r, func() int { return 3 })
	calls := 0

	cmd := Command{Index: 3, Duration: 300 * time.Millisecond, Ease: "ease", Offset: Canonical()}
	s.Sequence(cmd, func() { calls++ })
	require.Len(t, r.cmds, 1)
	assert.Equal(t, cmd, r.cmds[0])
	assert.True(t, s.Pending())
	assert.Zero(t, calls)

	s.Complete()
	s.Complete()
	assert.Equal(t, 1, calls)
	assert.False(t, s.Pending())
	assert.Len(t, r.cmds, 1)
}

func TestSequenceZeroDurationCompletesImmediately(t *testing.T) {
	r := &recorder{}
	s := NewSequencer(r, nil)
	calls := 0
	s.Sequence(Command{}, func() { calls++ })
	assert.Equal(t, 1, calls)
	assert.False(t, s.Pending())
}

func TestSequenceSupersedesStaleHook(t *testing.T) {
	r := &recorder{}
	s := NewSequencer(r, nil)
	var fired []string
	s.Sequence(Command{Duration: time.Second}, func() { fired = append(fired, "first") })
	s.Sequence(Command{Duration: time.Second}, func() { fired = append(fired, "second") })
	s.Complete()
	s.Complete()
	assert.Equal(t, []string{"second"}, fired)
}

func TestRestPathResetsToCanonical(t *testing.T) {
	r := &recorder{}
	s := NewSequencer(r, func() int { return 2 })

	// nothing armed: ignored
	s.Complete()
	assert.Empty(t, r.cmds)

	s.ArmRest()
	require.True(t, s.RestArmed())
	s.Complete()
	require.Len(t, r.cmds, 1)
	assert.Equal(t, Command{Index: 2, Offset: Canonical()}, r.cmds[0])
	assert.False(t, s.RestArmed())

	s.Complete()
	assert.Len(t, r.cmds, 1)
}

func TestRestFiresBeforeCommittedHook(t *testing.T) {
	r := &recorder{}
	s := NewSequencer(r, nil)
	s.ArmRest()
	seen := -1
	s.Sequence(Command{Duration: time.Second}, func() {
		seen = len(r.cmds)
	})
	require.Len(t, r.cmds, 1)

	s.Complete()
	// the rest command was emitted before the hook ran
	assert.Equal(t, 2, seen)
}

func TestDetachOrphansPendingHook(t *testing.T) {
	r := &recorder{}
	s := NewSequencer(r, nil)
	calls := 0
	s.Sequence(Command{Duration: time.Second}, func() { calls++ })
	s.ArmRest()
	s.Detach()

	s.Complete()
	s.Sequence(Command{Duration: time.Second}, func() { calls++ })
	s.Emit(Command{})
	assert.Zero(t, calls)
	assert.Len(t, r.cmds, 1)
	assert.True(t, s.Detached())
}

func TestOffset(t *testing.T) {
	px, ok := Pixels(-42).Pixels()
	assert.True(t, ok)
	assert.Equal(t, -42.0, px)
	assert.True(t, Canonical().IsCanonical())
	assert.False(t, Pixels(0).IsCanonical())
}
