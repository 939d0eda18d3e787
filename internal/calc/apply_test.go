package calc

import (
	"math"
	"testing"

	"github.com/zhubert/numbox/internal/errors"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		op       Operator
		a, b     float64
		want     float64
		wantKind errors.Kind
	}{
		{"add", Add, 3, 5, 8, errors.KindUnknown},
		{"subtract", Subtract, 3, 5, -2, errors.KindUnknown},
		{"multiply", Multiply, 4, 2.5, 10, errors.KindUnknown},
		{"divide", Divide, 10, 4, 2.5, errors.KindUnknown},
		{"divide by zero", Divide, 10, 0, 0, errors.KindDivideByZero},
		{"zero by zero", Divide, 0, 0, 0, errors.KindDivideByZero},
		{"divide by negative zero", Divide, 1, math.Copysign(0, -1), 0, errors.KindDivideByZero},
		{"divide overflow", Divide, math.MaxFloat64, 1e-10, 0, errors.KindNotFinite},
		{"multiply overflow", Multiply, math.MaxFloat64, 10, 0, errors.KindNotFinite},
		{"add overflow", Add, math.MaxFloat64, math.MaxFloat64, 0, errors.KindNotFinite},
		{"unknown operator", Operator(99), 1, 1, 0, errors.KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.op, tt.a, tt.b)
			if tt.wantKind != errors.KindUnknown {
				if !errors.Is(err, tt.wantKind) {
					t.Fatalf("Apply() error = %v, want kind %v", err, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("Apply() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Apply(%v, %v, %v) = %v, want %v", tt.op, tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		left    string
		operand string
		op      Operator
		want    string
		wantErr bool
	}{
		{"add", "3", "5", Add, "8", false},
		{"comma operand", "1", "0,5", Add, "1.5", false},
		{"comma field", "1,5", "2", Multiply, "3", false},
		{"trailing separator operand", "3", "2.", Multiply, "6", false},
		{"negative operand", "10", "-4", Subtract, "14", false},
		{"divide", "10", "4", Divide, "2.5", false},
		{"divide by zero", "10", "0", Divide, "", true},
		{"empty operand", "3", "", Add, "", true},
		{"bare minus operand", "3", "-", Add, "", true},
		{"non-numeric field", "abc", "5", Add, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.left, tt.operand, tt.op)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Evaluate(%q, %q, %v) error = %v, wantErr %v", tt.left, tt.operand, tt.op, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Evaluate(%q, %q, %v) = %q, want %q", tt.left, tt.operand, tt.op, got, tt.want)
			}
		})
	}
}
