package scenarios

import (
	"time"

	"github.com/zhubert/numbox/internal/config"
	"github.com/zhubert/numbox/internal/demo"
	"github.com/zhubert/numbox/internal/keys"
)

// Comprehensive walks through every operator, cancelling, erasing the
// operand to close the popup, integer filtering, paste and settings.
var Comprehensive = &demo.Scenario{
	Name:        "comprehensive",
	Description: "Every operator, cancel, integer mode, paste and settings",
	Width:       100,
	Height:      30,
	Setup: &demo.ScenarioSetup{
		Mode: config.ModeFloat,
		Fields: []config.Field{
			{Label: "Amount"},
			{Label: "Quantity", Mode: config.ModeInteger},
			{Label: "Price"},
		},
		Clipboard: "19.99",
	},
	Steps: []demo.Step{
		demo.Wait(500 * time.Millisecond),

		// Multiply
		demo.Annotate("Multiply"),
		demo.Type("12"),
		demo.Key("*"),
		demo.Type("3"),
		demo.Wait(800 * time.Millisecond),
		demo.Key(keys.Enter),
		demo.Wait(800 * time.Millisecond),

		// Minus after a digit is an operator, not a sign
		demo.Annotate("Subtract"),
		demo.Key("-"),
		demo.Type("6"),
		demo.Wait(800 * time.Millisecond),
		demo.Key(keys.Enter),
		demo.Wait(800 * time.Millisecond),

		// Division by zero shows an error and escape leaves the field alone
		demo.Annotate("Division by zero"),
		demo.Key("/"),
		demo.Type("0"),
		demo.Wait(1200 * time.Millisecond),
		demo.KeyWithDesc(keys.Escape, "Cancel without committing"),
		demo.Wait(800 * time.Millisecond),

		// Erasing past the start of the operand closes the popup
		demo.Annotate("Backspace on an empty operand closes"),
		demo.Key("+"),
		demo.Type("5"),
		demo.Wait(600 * time.Millisecond),
		demo.Key(keys.Backspace),
		demo.Key(keys.Backspace),
		demo.Wait(800 * time.Millisecond),

		// Integer field drops the decimal separator
		demo.Annotate("Integer fields reject decimals"),
		demo.KeyWithDesc(keys.Tab, "Next field"),
		demo.TypeWithDesc("2.5", "The dot is filtered out"),
		demo.Key("*"),
		demo.Type("2"),
		demo.Key(keys.Enter),
		demo.Wait(1 * time.Second),

		// Clipboard and bracketed paste are filtered like typing
		demo.Annotate("Paste"),
		demo.KeyWithDesc(keys.Tab, "Next field"),
		demo.KeyWithDesc(keys.CtrlV, "Paste from the clipboard"),
		demo.Wait(600 * time.Millisecond),
		demo.Paste("abc4"),
		demo.Wait(1 * time.Second),

		// Settings
		demo.Annotate("Settings"),
		demo.KeyWithDesc(keys.CtrlS, "Open settings"),
		demo.Wait(1500 * time.Millisecond),
		demo.KeyWithDesc(keys.Escape, "Close settings"),
		demo.Wait(2 * time.Second),
	},
}
