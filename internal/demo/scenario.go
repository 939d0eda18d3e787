// Package demo replays scripted key sequences against the numbox form and
// captures the rendered frames. Scenarios are deterministic: they never
// touch the real clipboard or the user's config file.
package demo

import (
	"fmt"
	"time"

	"github.com/zhubert/numbox/internal/config"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait pauses for a duration (for timing/pacing).
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepPaste delivers text as a bracketed paste.
	StepPaste
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the next captured frame.
	StepAnnotate
)

func (t StepType) String() string {
	switch t {
	case StepWait:
		return "wait"
	case StepKey:
		return "key"
	case StepTypeText:
		return "type"
	case StepPaste:
		return "paste"
	case StepCapture:
		return "capture"
	case StepAnnotate:
		return "annotate"
	default:
		return "unknown"
	}
}

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepTypeText and StepPaste
	Text string

	// For StepWait
	Duration time.Duration

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 80)
	Height      int // Terminal height (default 24)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup defines the initial state for a demo.
type ScenarioSetup struct {
	Mode   string         // Default field mode
	Theme  string         // Theme name, "" for the default
	Fields []config.Field // Form fields, defaults when empty

	// Clipboard is what ctrl+v pastes during the scenario.
	Clipboard string
}

// DefaultSetup returns a minimal setup for demos.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{
		Mode:   config.ModeFloat,
		Fields: config.DefaultFields(),
	}
}

// Validate checks that the scenario is valid and fills in defaults.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 80
	}
	if s.Height <= 0 {
		s.Height = 24
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	if s.Setup.Mode != "" && !config.ValidMode(s.Setup.Mode) {
		return &ValidationError{Field: "Setup.Mode", Message: fmt.Sprintf("unknown mode %q", s.Setup.Mode)}
	}

	for i, step := range s.Steps {
		switch step.Type {
		case StepKey:
			if step.Key == "" {
				return &ValidationError{Field: fmt.Sprintf("Steps[%d]", i), Message: "key step needs a key"}
			}
		case StepTypeText, StepPaste:
			if step.Text == "" {
				return &ValidationError{Field: fmt.Sprintf("Steps[%d]", i), Message: step.Type.String() + " step needs text"}
			}
		}
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{
		Type:     StepWait,
		Duration: d,
	}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{
		Type: StepKey,
		Key:  key,
	}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{
		Type:        StepKey,
		Key:         key,
		Description: description,
	}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{
		Type: StepTypeText,
		Text: text,
	}
}

// TypeWithDesc creates a text typing step with a description.
func TypeWithDesc(text, description string) Step {
	return Step{
		Type:        StepTypeText,
		Text:        text,
		Description: description,
	}
}

// Paste creates a bracketed paste step.
func Paste(text string) Step {
	return Step{
		Type: StepPaste,
		Text: text,
	}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{
		Type:       StepAnnotate,
		Annotation: text,
	}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{
		Type: StepCapture,
	}
}
