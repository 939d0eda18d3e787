package numbox

import (
	"github.com/zhubert/numbox/internal/calc"
	"github.com/zhubert/numbox/internal/logger"
	"github.com/zhubert/numbox/internal/ui"
)

// Owner hands out calculator sessions for one field and enforces that at
// most one exists at a time.
type Owner struct {
	field  Field
	popup  Popup
	active *Session
}

// NewOwner creates an owner for field that shows sessions in popup.
func NewOwner(field Field, popup Popup) *Owner {
	return &Owner{field: field, popup: popup}
}

// Active returns the open session, or nil.
func (o *Owner) Active() *Session {
	return o.active
}

// Start opens a session for op anchored at anchor. It refuses, returning
// nil, while another session is open or when the field is empty.
func (o *Owner) Start(op calc.Operator, anchor ui.Anchor, placement ui.Placement) *Session {
	log := logger.ComponentLogger("numbox")
	if o.active != nil {
		log.Debug("session start refused, already active", "sessionID", o.active.ID())
		return nil
	}
	if o.field.Text() == "" {
		log.Debug("session start refused, empty field")
		return nil
	}

	s := newSession(o.field, o.popup, op, o.release)
	o.active = s
	s.start(anchor, placement)
	return s
}

// CloseActive closes the open session, if any, without committing.
func (o *Owner) CloseActive() {
	if o.active != nil {
		o.active.Close()
	}
}

func (o *Owner) release(s *Session) {
	if o.active == s {
		o.active = nil
	}
}
