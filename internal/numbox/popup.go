package numbox

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/numbox/internal/calc"
	"github.com/zhubert/numbox/internal/ui"
)

// Popup is the presentation primitive a session drives. *ui.Menu is the
// implementation used by Model.
type Popup interface {
	Open(anchor ui.Anchor, placement ui.Placement)
	Close()
	IsOpen() bool

	SetOperand(string)
	SetResult(result string, available bool)
	SetOperator(calc.Operator)

	// OnKey and OnClosed return a func that removes the subscription.
	OnKey(func(tea.KeyPressMsg)) (unsubscribe func())
	OnClosed(func()) (unsubscribe func())
}

var _ Popup = (*ui.Menu)(nil)
