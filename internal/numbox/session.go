package numbox

import (
	"log/slog"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/zhubert/numbox/internal/calc"
	"github.com/zhubert/numbox/internal/logger"
	"github.com/zhubert/numbox/internal/ui"
)

// Session is one open calculator popup. It owns the operand being typed,
// the operator chosen when it opened and the live result. A session is
// single-use: once closed it ignores everything.
type Session struct {
	id    string
	field Field
	popup Popup
	log   *slog.Logger

	op              calc.Operator
	operand         string
	result          string
	resultAvailable bool

	closed      bool
	unsubKey    func()
	unsubClosed func()
	onClose     func(*Session)
}

func newSession(field Field, popup Popup, op calc.Operator, onClose func(*Session)) *Session {
	id := uuid.New().String()
	return &Session{
		id:      id,
		field:   field,
		popup:   popup,
		op:      op,
		onClose: onClose,
		log:     logger.WithSession(id).With("component", "calculator"),
	}
}

// start subscribes to the popup, computes the (unavailable) initial result
// and opens the popup at anchor.
func (s *Session) start(anchor ui.Anchor, placement ui.Placement) {
	s.unsubKey = s.popup.OnKey(s.HandleKey)
	s.unsubClosed = s.popup.OnClosed(s.Close)

	s.popup.SetOperator(s.op)
	s.popup.SetOperand(s.operand)
	s.recompute()
	s.popup.Open(anchor, placement)

	s.log.Debug("session started", "operator", s.op.String(), "field", s.field.Text())
}

// ID returns the session's log correlation id.
func (s *Session) ID() string { return s.id }

// Operator returns the operator chosen at start.
func (s *Session) Operator() calc.Operator { return s.op }

// Operand returns the operand typed so far.
func (s *Session) Operand() string { return s.operand }

// Result returns the current result and whether it can be committed.
func (s *Session) Result() (string, bool) { return s.result, s.resultAvailable }

// Closed reports whether the session has been torn down.
func (s *Session) Closed() bool { return s.closed }

// HandleKey interprets one key pressed while the popup is open.
func (s *Session) HandleKey(msg tea.KeyPressMsg) {
	if s.closed {
		return
	}

	kind, ch := Classify(msg)
	s.log.Debug("key", "key", msg.String(), "kind", kind.String())

	switch kind {
	case KeyCancel:
		s.dismiss()

	case KeyErase:
		if s.operand == "" {
			s.dismiss()
			return
		}
		_, size := utf8.DecodeLastRuneInString(s.operand)
		s.operand = s.operand[:len(s.operand)-size]
		s.popup.SetOperand(s.operand)
		s.recompute()

	case KeyCommit:
		s.commit()
		s.Close()

	case KeyMinus:
		// A bare sign has no value yet, so the result is left alone
		if s.operand == "" {
			s.operand = "-"
			s.popup.SetOperand(s.operand)
		}

	case KeyDigit:
		s.operand += ch
		s.popup.SetOperand(s.operand)
		s.recompute()

	case KeyDecimal:
		// The value is unchanged by a trailing separator
		if !calc.HasDecimalSeparator(s.operand) {
			s.operand += ch
			s.popup.SetOperand(s.operand)
		}

	case KeyShifted, KeyOther:
		// ignored
	}
}

// recompute derives the result from the field text and the operand.
// Failures of any kind leave the result unavailable.
func (s *Session) recompute() {
	result, err := calc.Evaluate(s.field.Text(), s.operand, s.op)
	if err != nil {
		s.result, s.resultAvailable = "", false
		if s.operand != "" {
			s.log.Debug("result unavailable", "operand", s.operand, "error", err)
		}
	} else {
		s.result, s.resultAvailable = result, true
	}
	s.popup.SetResult(s.result, s.resultAvailable)
}

// commit writes an available result into the field with the caret at the
// end. It is the only path that changes the field during a session.
func (s *Session) commit() {
	if !s.resultAvailable {
		s.log.Debug("commit skipped, no result")
		return
	}
	s.field.SetText(s.result)
	s.field.SetCaret(utf8.RuneCountInString(s.result))
	s.log.Debug("committed", "result", s.result)
}

// dismiss closes without touching the field.
func (s *Session) dismiss() {
	s.result, s.resultAvailable = "", false
	s.commit()
	s.Close()
}

// Close tears the session down: both popup subscriptions are removed, the
// popup is closed and the owner is told. Safe to call any number of times
// from any path; only the first call has an effect.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true

	// Unsubscribe before closing the popup so its closed notification
	// does not re-enter this session.
	if s.unsubKey != nil {
		s.unsubKey()
		s.unsubKey = nil
	}
	if s.unsubClosed != nil {
		s.unsubClosed()
		s.unsubClosed = nil
	}
	if s.popup.IsOpen() {
		s.popup.Close()
	}

	s.operand = ""
	s.result, s.resultAvailable = "", false

	if s.onClose != nil {
		s.onClose(s)
		s.onClose = nil
	}
	s.log.Debug("session closed")
}
