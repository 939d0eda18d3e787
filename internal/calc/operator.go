// Package calc holds the arithmetic behind the inline calculator: the
// operator variant, number parsing and formatting, and result evaluation.
package calc

// Operator is the arithmetic applied by a calculator session. It is chosen
// once from the trigger character and never changes for that session.
type Operator int

const (
	Add Operator = iota
	Subtract
	Multiply
	Divide
)

// Operators lists every operator in display order.
var Operators = []Operator{Add, Subtract, Multiply, Divide}

// OperatorFromTrigger maps a typed trigger character to its operator.
func OperatorFromTrigger(s string) (Operator, bool) {
	switch s {
	case "+":
		return Add, true
	case "-":
		return Subtract, true
	case "*":
		return Multiply, true
	case "/":
		return Divide, true
	}
	return 0, false
}

// IsTrigger reports whether s opens a calculator session.
func IsTrigger(s string) bool {
	_, ok := OperatorFromTrigger(s)
	return ok
}

func (o Operator) String() string {
	switch o {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	default:
		return "unknown"
	}
}

// Symbol returns the trigger character for the operator.
func (o Operator) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		return "?"
	}
}

// Kind returns the icon key for the operator: add, sub, mult or div.
func (o Operator) Kind() string {
	switch o {
	case Add:
		return "add"
	case Subtract:
		return "sub"
	case Multiply:
		return "mult"
	case Divide:
		return "div"
	default:
		return ""
	}
}

// Valid reports whether o is one of the four operators.
func (o Operator) Valid() bool {
	return o >= Add && o <= Divide
}
