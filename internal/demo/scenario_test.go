package demo

import (
	"errors"
	"testing"
	"time"
)

func TestScenarioValidate(t *testing.T) {
	tests := []struct {
		name       string
		scenario   *Scenario
		wantErr    bool
		errField   string
		wantWidth  int
		wantHeight int
	}{
		{
			name: "valid scenario",
			scenario: &Scenario{
				Name:   "test",
				Width:  100,
				Height: 30,
				Setup:  DefaultSetup(),
			},
			wantWidth:  100,
			wantHeight: 30,
		},
		{
			name:     "missing name",
			scenario: &Scenario{Description: "Test scenario"},
			wantErr:  true,
			errField: "Name",
		},
		{
			name:       "default width and height",
			scenario:   &Scenario{Name: "test"},
			wantWidth:  80,
			wantHeight: 24,
		},
		{
			name:     "unknown mode",
			scenario: &Scenario{Name: "test", Setup: &ScenarioSetup{Mode: "hex"}},
			wantErr:  true,
			errField: "Setup.Mode",
		},
		{
			name:     "empty key",
			scenario: &Scenario{Name: "test", Steps: []Step{Key("")}},
			wantErr:  true,
			errField: "Steps[0]",
		},
		{
			name:     "empty paste",
			scenario: &Scenario{Name: "test", Steps: []Step{Wait(time.Second), Paste("")}},
			wantErr:  true,
			errField: "Steps[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scenario.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("error %T is not a *ValidationError", err)
				}
				if verr.Field != tt.errField {
					t.Errorf("ValidationError.Field = %q, want %q", verr.Field, tt.errField)
				}
				return
			}
			if tt.scenario.Width != tt.wantWidth {
				t.Errorf("Width = %d, want %d", tt.scenario.Width, tt.wantWidth)
			}
			if tt.scenario.Height != tt.wantHeight {
				t.Errorf("Height = %d, want %d", tt.scenario.Height, tt.wantHeight)
			}
			if tt.scenario.Setup == nil {
				t.Error("Setup should be filled in")
			}
		})
	}
}

func TestStepBuilders(t *testing.T) {
	tests := []struct {
		name string
		step Step
		want Step
	}{
		{"Wait", Wait(time.Second), Step{Type: StepWait, Duration: time.Second}},
		{"Key", Key("+"), Step{Type: StepKey, Key: "+"}},
		{"KeyWithDesc", KeyWithDesc("+", "add"), Step{Type: StepKey, Key: "+", Description: "add"}},
		{"Type", Type("12"), Step{Type: StepTypeText, Text: "12"}},
		{"TypeWithDesc", TypeWithDesc("12", "digits"), Step{Type: StepTypeText, Text: "12", Description: "digits"}},
		{"Paste", Paste("3.5"), Step{Type: StepPaste, Text: "3.5"}},
		{"Annotate", Annotate("note"), Step{Type: StepAnnotate, Annotation: "note"}},
		{"Capture", Capture(), Step{Type: StepCapture}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.step != tt.want {
				t.Errorf("%s = %+v, want %+v", tt.name, tt.step, tt.want)
			}
		})
	}
}

func TestStepTypeString(t *testing.T) {
	tests := []struct {
		st   StepType
		want string
	}{
		{StepWait, "wait"},
		{StepKey, "key"},
		{StepTypeText, "type"},
		{StepPaste, "paste"},
		{StepCapture, "capture"},
		{StepAnnotate, "annotate"},
		{StepType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.st.String(); got != tt.want {
			t.Errorf("StepType(%d).String() = %q, want %q", tt.st, got, tt.want)
		}
	}
}
