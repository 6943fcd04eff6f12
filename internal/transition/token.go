package transition

// Token is a single-use completion hook. It is armed on creation, fires at most
// once and can be disarmed before firing.
type Token struct {
	fn    func()
	armed bool
}

// NewToken returns an armed token wrapping fn. A nil fn is allowed.
func NewToken(fn func()) *Token {
	return &Token{fn: fn, armed: true}
}

// Armed reports whether the token can still fire.
func (t *Token) Armed() bool {
	return t != nil && t.armed
}

// Fire runs the hook if armed and disarms the token. It reports whether the
// hook ran.
func (t *Token) Fire() bool {
	if !t.Armed() {
		return false
	}
	t.armed = false
	if t.fn != nil {
		t.fn()
	}
	return true
}

// Disarm cancels the hook without running it.
func (t *Token) Disarm() {
	if t != nil {
		t.armed = false
	}
}
