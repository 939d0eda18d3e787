package demo

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/numbox/internal/config"
	"github.com/zhubert/numbox/internal/keys"
	"github.com/zhubert/numbox/internal/logger"
)

func TestMain(m *testing.M) {
	// Disable logging during tests to avoid polluting /tmp/numbox-debug.log
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}

func TestExecutorDefaultConfig(t *testing.T) {
	cfg := DefaultExecutorConfig()

	if cfg.CaptureEveryStep {
		t.Error("CaptureEveryStep should be false by default")
	}

	if cfg.TypeDelay != 50*time.Millisecond {
		t.Errorf("TypeDelay = %v, want 50ms", cfg.TypeDelay)
	}

	if cfg.KeyDelay != 100*time.Millisecond {
		t.Errorf("KeyDelay = %v, want 100ms", cfg.KeyDelay)
	}
}

func TestExecutorRun(t *testing.T) {
	scenario := &Scenario{
		Name:   "test",
		Width:  80,
		Height: 24,
		Steps: []Step{
			Wait(100 * time.Millisecond),
			Type("12"),
			Key("+"),
			Type("30"),
			Key(keys.Enter),
			Wait(100 * time.Millisecond),
		},
	}

	executor := NewExecutor(DefaultExecutorConfig())
	frames, err := executor.Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Initial frame plus one per wait
	if len(frames) != 3 {
		t.Errorf("Expected 3 frames, got %d", len(frames))
	}

	// First frame should have initial delay
	if frames[0].Delay != 500*time.Millisecond {
		t.Errorf("First frame delay = %v, want 500ms", frames[0].Delay)
	}

	if got := executor.Model().Field(0).Value(); got != "42" {
		t.Errorf("field value = %q, want %q", got, "42")
	}

	last := ansi.Strip(frames[len(frames)-1].Content)
	if !strings.Contains(last, "42") {
		t.Errorf("last frame should show the committed value, got:\n%s", last)
	}
}

func TestExecutorCaptureEveryStep(t *testing.T) {
	scenario := &Scenario{
		Name: "every-step",
		Steps: []Step{
			Type("123"),
			Key(keys.Backspace),
		},
	}

	cfg := DefaultExecutorConfig()
	cfg.CaptureEveryStep = true

	frames, err := NewExecutor(cfg).Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Initial + 3 typed characters + 1 key
	if len(frames) != 5 {
		t.Fatalf("Expected 5 frames, got %d", len(frames))
	}
	if frames[1].Delay != cfg.TypeDelay {
		t.Errorf("typed frame delay = %v, want %v", frames[1].Delay, cfg.TypeDelay)
	}
	if frames[4].Delay != cfg.KeyDelay {
		t.Errorf("key frame delay = %v, want %v", frames[4].Delay, cfg.KeyDelay)
	}
	if frames[4].StepIndex != 1 {
		t.Errorf("key frame StepIndex = %d, want 1", frames[4].StepIndex)
	}
}

func TestExecutorAnnotation(t *testing.T) {
	scenario := &Scenario{
		Name: "annotated",
		Steps: []Step{
			Annotate("hello"),
			Capture(),
			Capture(),
		},
	}

	frames, err := NewExecutor(DefaultExecutorConfig()).Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("Expected 3 frames, got %d", len(frames))
	}
	if frames[1].Annotation != "hello" {
		t.Errorf("frames[1].Annotation = %q, want %q", frames[1].Annotation, "hello")
	}
	// Annotations apply to a single frame
	if frames[2].Annotation != "" {
		t.Errorf("frames[2].Annotation = %q, want empty", frames[2].Annotation)
	}
}

func TestExecutorPaste(t *testing.T) {
	scenario := &Scenario{
		Name: "paste",
		Setup: &ScenarioSetup{
			Mode:      config.ModeFloat,
			Fields:    []config.Field{{Label: "Total"}},
			Clipboard: "7.5",
		},
		Steps: []Step{
			Key(keys.CtrlV),
			Paste("x2"),
		},
	}

	executor := NewExecutor(DefaultExecutorConfig())
	if _, err := executor.Run(scenario); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := executor.Model().Field(0).Value(); got != "7.52" {
		t.Errorf("field value = %q, want %q", got, "7.52")
	}
}

func TestExecutorSetupFromScenario(t *testing.T) {
	scenario := &Scenario{
		Name: "setup",
		Setup: &ScenarioSetup{
			Mode: config.ModeInteger,
			Fields: []config.Field{
				{Label: "Count", Value: "4"},
				{Label: "Ratio", Mode: config.ModeFloat},
			},
		},
		Steps: []Step{
			Type(".5"),
		},
	}

	executor := NewExecutor(DefaultExecutorConfig())
	if _, err := executor.Run(scenario); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	m := executor.Model()
	// Integer mode drops the separator
	if got := m.Field(0).Value(); got != "45" {
		t.Errorf("Count = %q, want %q", got, "45")
	}
	if m.Field(1) == nil || m.Field(2) != nil {
		t.Error("expected exactly two fields")
	}
}

func TestExecutorCleanup(t *testing.T) {
	executor := NewExecutor(DefaultExecutorConfig())
	if _, err := executor.Run(&Scenario{Name: "cleanup"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if executor.tmpDir != "" {
		t.Errorf("tmpDir = %q after Run, want empty", executor.tmpDir)
	}

	dir, err := os.MkdirTemp("", "numbox-demo-test-")
	if err != nil {
		t.Fatal(err)
	}
	executor.tmpDir = dir
	executor.Cleanup()
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("Cleanup should remove %s", dir)
	}
}

func TestExecutorRunInvalid(t *testing.T) {
	tests := []struct {
		name     string
		scenario *Scenario
	}{
		{"no name", &Scenario{}},
		{"bad mode", &Scenario{Name: "x", Setup: &ScenarioSetup{Mode: "hex"}}},
		{"duplicate labels", &Scenario{Name: "x", Setup: &ScenarioSetup{
			Fields: []config.Field{{Label: "A"}, {Label: "A"}},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			executor := NewExecutor(DefaultExecutorConfig())
			if _, err := executor.Run(tt.scenario); err == nil {
				t.Error("Run() should fail")
			}
			if executor.tmpDir != "" {
				t.Error("failed setup should not leave a temp dir")
			}
		})
	}
}

func TestKeyPress(t *testing.T) {
	tests := []string{
		keys.Enter, keys.Tab, keys.ShiftTab, keys.Escape, keys.Backspace,
		keys.Delete, keys.Left, keys.Right, keys.Home, keys.End,
		keys.CtrlC, keys.CtrlV, keys.CtrlS, "5", "+",
	}

	for _, key := range tests {
		t.Run(key, func(t *testing.T) {
			if got := keyPress(key).String(); got != key {
				t.Errorf("keyPress(%q).String() = %q", key, got)
			}
		})
	}
}
