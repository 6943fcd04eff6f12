package deck

import (
	"github.com/sgostarter/i/l"

	"swipedeck/internal/slider"
)

// Controller wires a host surface to a slide state machine and exposes the
// public navigation API. A controller built without a host is inert: every
// method is a no-op.
type Controller struct {
	host      Host
	machine   *slider.Machine
	logger    l.Wrapper
	destroyed bool
}

// New binds a controller to host. A nil host yields an inert controller.
func New(host Host, opts slider.Options) *Controller {
	if host == nil {
		return &Controller{}
	}
	if opts.Logger == nil {
		opts.Logger = l.NewNopLoggerWrapper()
	}

	c := &Controller{host: host}
	c.machine = slider.New(host, opts)
	c.logger = opts.Logger.WithFields(l.StringField(l.ClsKey, "deck"), l.StringField("id", c.machine.ID()))

	host.BindCompletion(c.machine.Complete)
	host.BindInput(InputHandlers{
		Start:  c.onStart,
		Move:   c.onMove,
		End:    c.onEnd,
		Cancel: c.onEnd,
	})
	c.machine.Setup()
	return c
}

// Inert reports whether the controller has no host.
func (c *Controller) Inert() bool { return c.machine == nil }

// Destroyed reports whether Destroy was called.
func (c *Controller) Destroyed() bool { return c.destroyed }

// Prev handles a "previous" trigger event and slides back one pane.
func (c *Controller) Prev(ev Event) {
	if c.Inert() {
		return
	}
	suppress(ev)
	c.Slide(false)
}

// Next handles a "next" trigger event and slides forward one pane.
func (c *Controller) Next(ev Event) {
	if c.Inert() {
		return
	}
	suppress(ev)
	c.Slide(true)
}

// Slide moves one pane forward when advance is true, otherwise back. It
// reports whether a slide was committed.
func (c *Controller) Slide(advance bool) bool {
	if c.Inert() {
		return false
	}
	return c.machine.Slide(advance)
}

// UpdateItems changes the number of panes without moving the current view.
func (c *Controller) UpdateItems(n int) {
	if c.Inert() {
		return
	}
	c.machine.UpdateItems(n)
}

// Clean asks the host to normalize its pane content.
func (c *Controller) Clean() bool {
	if c.Inert() || c.destroyed {
		return false
	}
	return c.host.Clean()
}

// Destroy detaches every binding and freezes the state machine. An in-flight
// transition is left unresolved and its completion hook never fires.
func (c *Controller) Destroy() {
	if c.Inert() || c.destroyed {
		return
	}
	c.host.UnbindInput()
	c.host.UnbindCompletion()
	c.machine.Freeze()
	c.destroyed = true
	c.logger.Debug("destroyed")
}

// State returns the current slider snapshot. Inert controllers report a
// zero state.
func (c *Controller) State() slider.State {
	if c.Inert() {
		return slider.State{}
	}
	return c.machine.State()
}

// Index returns the current pane index.
func (c *Controller) Index() int { return c.State().Index }

// ItemCount returns the current pane count.
func (c *Controller) ItemCount() int { return c.State().ItemCount }

// Phase returns the lifecycle phase.
func (c *Controller) Phase() slider.Phase { return c.State().Phase }

func (c *Controller) onStart(ev Event) {
	c.machine.Start(ev.Sample())
}

func (c *Controller) onMove(ev Event) {
	if c.machine.Move(ev.Sample()) && ev.Cancelable() {
		ev.PreventDefault()
	}
}

func (c *Controller) onEnd(Event) {
	c.machine.End()
}

func suppress(ev Event) {
	if ev == nil {
		return
	}
	ev.PreventDefault()
	ev.StopPropagation()
}
