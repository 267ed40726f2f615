// Package testutil provides the shared harness for app-level tests: it
// writes a temporary HCL configuration, runs a full resolution cycle with a
// recording engine, and captures log output.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/schemabind/internal/app"
	"github.com/vk/schemabind/internal/config"
	"github.com/vk/schemabind/internal/extension"
	"github.com/vk/schemabind/internal/hclloader"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// RecordingEngine captures the plans handed to it instead of generating.
type RecordingEngine struct {
	mu    sync.Mutex
	Plans []*config.Plan
}

// Generate implements generate.Engine.
func (e *RecordingEngine) Generate(_ context.Context, plan *config.Plan) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Plans = append(e.Plans, plan)
	return nil
}

// LastPlan returns the most recently recorded plan, or nil.
func (e *RecordingEngine) LastPlan() *config.Plan {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.Plans) == 0 {
		return nil
	}
	return e.Plans[len(e.Plans)-1]
}

// HarnessResult holds the outcomes of one harnessed run.
type HarnessResult struct {
	LogOutput string
	Err       error
	Engine    *RecordingEngine
}

// RunResolution writes hclContent to a temp config file and runs a full
// app cycle against it with a recording engine. A nil registry gets the
// built-in extension set.
func RunResolution(t *testing.T, hclContent string, reg *extension.Registry) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "schemabind.hcl")
	require.NoError(t, os.WriteFile(configPath, []byte(hclContent), 0644))

	appConfig, err := app.NewConfig(app.Config{
		ConfigPath: configPath,
		LogLevel:   "debug",
		LogFormat:  "text",
	})
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}
	engine := &RecordingEngine{}

	testApp := app.NewApp(logBuffer, appConfig, hclloader.NewLoader(), reg, engine)
	runErr := testApp.Run(context.Background(), appConfig)

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		Engine:    engine,
	}
}
