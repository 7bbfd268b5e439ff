package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"github.com/ytget/launchgrid/internal/platform"
)

type fixture struct {
	configPath string
	lockPath   string
	layoutPath string
	appsDir    string
}

func newFixture(t *testing.T, apps ...string) *fixture {
	t.Helper()

	dir := t.TempDir()
	f := &fixture{
		configPath: filepath.Join(dir, "config.toml"),
		lockPath:   filepath.Join(dir, "run", "launchgrid.lock"),
		layoutPath: filepath.Join(dir, "data", "layout.json"),
		appsDir:    filepath.Join(dir, "Applications"),
	}
	for _, name := range apps {
		require.NoError(t, os.MkdirAll(filepath.Join(f.appsDir, name+".app"), 0o755))
	}

	conf := fmt.Sprintf(`[grid]
columns = 2
rows = 2

[discovery]
roots = [%q]
pattern = "*.app"
max_depth = 1
watch = false

[storage]
layout_path = %q
lock_path = %q
`, f.appsDir, f.layoutPath, f.lockPath)
	require.NoError(t, os.WriteFile(f.configPath, []byte(conf), 0o644))
	return f
}

func (f *fixture) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := NewCLI("test", &out)
	argv := append([]string{"gridctl", "--config", f.configPath}, args...)
	err := app.Run(context.Background(), argv)
	return out.String(), err
}

func (f *fixture) pages(t *testing.T) []pageView {
	t.Helper()

	out, err := f.run(t, "--json", "pages")
	require.NoError(t, err)
	var views []pageView
	require.NoError(t, sonic.Unmarshal([]byte(out), &views))
	return views
}

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "expected ExitError, got %v", err)
	require.Equal(t, code, exitErr.Code, exitErr.Error())
}

func TestNewCLI(t *testing.T) {
	t.Parallel()

	app := NewCLI("1.0.0", nil)

	require.NotNil(t, app.app)
	require.Equal(t, "gridctl", app.app.Name)
	require.NotEmpty(t, app.app.Usage)

	names := make(map[string]bool)
	for _, cmd := range app.app.Commands {
		names[cmd.Name] = true
	}
	for _, expected := range []string{"pages", "scan", "rescan", "move", "swap", "delete", "return", "rename", "reset"} {
		require.True(t, names[expected], "command %s should exist", expected)
	}
}

func TestCLI_RescanThenPages(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "Notes", "calc", "Mail")

	out, err := f.run(t, "rescan")
	require.NoError(t, err)
	require.Equal(t, "rescan: 3 added, 0 removed\n", out)
	require.FileExists(t, f.layoutPath)

	views := f.pages(t)
	require.Len(t, views, 1)
	require.Len(t, views[0].Slots, 4)
	require.Equal(t, "calc", views[0].Slots[0].Name)
	require.Equal(t, "Mail", views[0].Slots[1].Name)
	require.Equal(t, "Notes", views[0].Slots[2].Name)
	require.Equal(t, "empty", views[0].Slots[3].Kind)

	out, err = f.run(t, "pages", "--query", "MA")
	require.NoError(t, err)
	require.Contains(t, out, "Mail")
	require.NotContains(t, out, "Notes")

	out, err = f.run(t, "rescan")
	require.NoError(t, err)
	require.Equal(t, "rescan: unchanged\n", out)
}

func TestCLI_Scan(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "Calc")

	out, err := f.run(t, "scan")
	require.NoError(t, err)
	require.Contains(t, out, "Calc")
	require.Contains(t, out, filepath.Join(f.appsDir, "Calc.app"))
	require.NoFileExists(t, f.layoutPath, "scan never writes the layout")
}

func TestCLI_MoveGroupsAndReturn(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "Calc", "Mail", "Notes")
	_, err := f.run(t, "rescan")
	require.NoError(t, err)

	out, err := f.run(t, "move", "--dragged", "mail", "--target", "Calc", "--long")
	require.NoError(t, err)
	require.Equal(t, "move: group\n", out)

	views := f.pages(t)
	folder := views[0].Slots[0]
	require.Equal(t, "folder", folder.Kind)
	require.Equal(t, []string{"Calc", "Mail"}, folder.Items)

	// the folder takes the target's name, so "Calc" now names two elements
	_, err = f.run(t, "delete", "--app", "Calc")
	requireExitCode(t, err, ExitUsageError)

	out, err = f.run(t, "return", "--app", "Mail")
	require.NoError(t, err)
	require.Equal(t, "return: returned\n", out)

	views = f.pages(t)
	var topLevel []string
	for _, slot := range views[0].Slots {
		if slot.Kind == "app" {
			topLevel = append(topLevel, slot.Name)
		}
	}
	require.Contains(t, topLevel, "Mail")

	_, err = f.run(t, "rename", "--folder", folder.ID, "--name", "Tools")
	require.NoError(t, err)
	views = f.pages(t)
	require.Equal(t, "Tools", views[0].Slots[0].Name)
}

func TestCLI_SwapAndDelete(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "Calc", "Mail")
	_, err := f.run(t, "rescan")
	require.NoError(t, err)

	_, err = f.run(t, "swap", "--a", "1", "--b", "2")
	require.NoError(t, err)
	views := f.pages(t)
	require.Equal(t, "Mail", views[0].Slots[0].Name)
	require.Equal(t, "Calc", views[0].Slots[1].Name)

	_, err = f.run(t, "swap", "--page", "9", "--a", "1", "--b", "2")
	requireExitCode(t, err, ExitRejectedError)

	out, err := f.run(t, "--json", "delete", "--app", "Mail")
	require.NoError(t, err)
	require.Contains(t, out, `"action": "deleted"`)

	views = f.pages(t)
	require.Equal(t, "Calc", views[0].Slots[0].Name)
	require.Equal(t, "empty", views[0].Slots[1].Kind)
}

func TestCLI_Errors(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "Calc", "Mail")
	_, err := f.run(t, "rescan")
	require.NoError(t, err)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{name: "unknown application", args: []string{"delete", "--app", "Paint"}, code: ExitNotFoundError},
		{name: "return outside folder", args: []string{"return", "--app", "Calc"}, code: ExitRejectedError},
		{name: "rename application", args: []string{"rename", "--folder", "Calc", "--name", "X"}, code: ExitRejectedError},
	}

	for _, testCase := range tests {
		_, err := f.run(t, testCase.args...)
		requireExitCode(t, err, testCase.code)
	}
}

func TestCLI_RefusesWhileLauncherRuns(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "Calc")
	lock, err := platform.AcquireLock(f.lockPath)
	require.NoError(t, err)
	defer lock.Unlock()

	_, err = f.run(t, "rescan")
	requireExitCode(t, err, ExitBusyError)
	require.ErrorIs(t, err, platform.ErrLocked)

	_, err = f.run(t, "pages")
	require.NoError(t, err, "reading does not need the lock")
}

func TestCLI_ResetAndConfigErrors(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "Calc")
	_, err := f.run(t, "rescan")
	require.NoError(t, err)

	_, err = f.run(t, "reset")
	require.NoError(t, err)
	require.NoFileExists(t, f.layoutPath)

	require.NoError(t, os.WriteFile(f.configPath, []byte("[grid]\ncolumns = -1\n"), 0o644))
	_, err = f.run(t, "pages")
	requireExitCode(t, err, ExitConfigError)
}
