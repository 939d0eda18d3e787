// Package scenarios contains built-in demo scenarios for numbox.
package scenarios

import (
	"time"

	"github.com/zhubert/numbox/internal/demo"
	"github.com/zhubert/numbox/internal/keys"
)

// Basic shows the shortest path through the calculator: type a number,
// press an operator, enter the second operand and commit the result.
var Basic = &demo.Scenario{
	Name:        "basic",
	Description: "Type a value, add to it, commit",
	Width:       80,
	Height:      24,
	Setup:       demo.DefaultSetup(),
	Steps: []demo.Step{
		demo.Wait(500 * time.Millisecond),
		demo.Annotate("A numeric field"),
		demo.TypeWithDesc("120", "Type the first value"),
		demo.Wait(700 * time.Millisecond),

		demo.Annotate("An operator opens the calculator"),
		demo.KeyWithDesc("+", "Open the calculator with +"),
		demo.Wait(700 * time.Millisecond),

		demo.TypeWithDesc("30", "Type the operand"),
		demo.Wait(1 * time.Second),

		demo.Annotate("Enter writes the result back"),
		demo.KeyWithDesc(keys.Enter, "Commit"),
		demo.Wait(2 * time.Second),
	},
}

// All returns all built-in scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Basic,
		Comprehensive,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
