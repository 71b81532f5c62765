// internal/cli/cli_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: Real filesystem (t.TempDir), isolated config and state dirs
// PURPOSE: Test the command line end to end, from arguments to rendered output

package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/desks/pkg/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliEnv struct {
	t      *testing.T
	root   string
	anchor string
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	testutil.SkipOnWindows(t)

	root := testutil.TempDir(t)
	t.Setenv("DESKS_CONFIG_DIR", filepath.Join(root, "config"))
	t.Setenv("DESKS_STATE_DIR", filepath.Join(root, "state"))
	t.Setenv("NO_COLOR", "1")

	anchor := testutil.CreateDir(t, root, "Desktop")
	testutil.CreateFile(t, anchor, "notes.txt", "hello")
	return &cliEnv{t: t, root: root, anchor: anchor}
}

// run executes desks with the anchor override and returns the exit code,
// stdout and stderr
func (e *cliEnv) run(args ...string) (int, string, string) {
	e.t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"--anchor", e.anchor}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func (e *cliEnv) runJSON(args ...string) map[string]interface{} {
	e.t.Helper()
	code, out, errOut := e.run(append([]string{"--format", "json"}, args...)...)
	require.Equal(e.t, 0, code, "stderr: %s", errOut)

	var doc map[string]interface{}
	require.NoError(e.t, json.Unmarshal([]byte(out), &doc), out)
	return doc
}

func TestCLI_InitSetReset(t *testing.T) {
	e := newCLIEnv(t)
	before := testutil.Snapshot(t, e.anchor)
	work := testutil.CreateDir(t, e.root, "work")

	doc := e.runJSON("init")
	assert.Equal(t, "init", doc["command"])
	testutil.AssertSymlink(t, e.anchor, e.anchor+"_desks_temp")
	assert.FileExists(t, filepath.Join(e.root, "state", "state.toml"))

	doc = e.runJSON("set", work, "--usual", "w")
	assert.Equal(t, "set", doc["command"])
	testutil.AssertSymlink(t, e.anchor, work)

	doc = e.runJSON("state")
	assert.Equal(t, true, doc["initialized"])
	assert.Nil(t, doc["problems"])

	doc = e.runJSON("original")
	assert.Equal(t, "original", doc["command"])
	testutil.AssertSymlink(t, e.anchor, e.anchor+"_desks_temp")

	doc = e.runJSON("usual", "w")
	assert.Equal(t, "usual", doc["command"])
	testutil.AssertSymlink(t, e.anchor, work)

	doc = e.runJSON("reset")
	assert.Equal(t, "reset", doc["command"])
	testutil.AssertRealDir(t, e.anchor)
	assert.Equal(t, before, testutil.Snapshot(t, e.anchor))
}

func TestCLI_TextOutput(t *testing.T) {
	e := newCLIEnv(t)

	code, out, _ := e.run("--format", "text", "init")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Done:")
	assert.Contains(t, out, "move the desktop folder aside")

	code, out, _ = e.run("--format", "text", "init")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Nothing to do: already initialized")
}

func TestCLI_DryRun(t *testing.T) {
	e := newCLIEnv(t)
	before := testutil.Snapshot(t, e.root)

	doc := e.runJSON("--dry-run", "init")
	assert.Equal(t, true, doc["dryRun"])
	assert.Len(t, doc["plan"], 2)
	assert.Equal(t, before, testutil.Snapshot(t, e.root))
}

func TestCLI_Errors(t *testing.T) {
	e := newCLIEnv(t)

	code, _, errOut := e.run("--format", "text", "set", e.root)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Error:")
	assert.Contains(t, errOut, "NOT_INITIALIZED")

	code, out, _ := e.run("--format", "json", "usual", "nope")
	assert.Equal(t, 1, code)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "SHORTCUT_NOT_FOUND", doc["code"])

	code, _, _ = e.run("--format", "xml", "state")
	assert.Equal(t, 1, code)

	code, _, errOut = e.run("usual", "x", "--remove", "--add", e.root)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "cannot be combined")
}

func TestCLI_UsualAddListRemove(t *testing.T) {
	e := newCLIEnv(t)
	games := testutil.CreateDir(t, e.root, "games")

	doc := e.runJSON("usual", "g", "--add", games)
	assert.Equal(t, "usual-add", doc["command"])

	code, out, _ := e.run("--format", "text", "usual")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Shortcuts")
	assert.Contains(t, out, games)

	doc = e.runJSON("u", "g", "--remove")
	assert.Equal(t, "usual-remove", doc["command"])
	testutil.AssertRealDir(t, games)
}

func TestCLI_Config(t *testing.T) {
	e := newCLIEnv(t)

	code, out, _ := e.run("config")
	require.Equal(t, 0, code)
	assert.Contains(t, out, e.anchor)
	assert.Contains(t, out, "_desks_parked")

	code, out, _ = e.run("config", "--defaults")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "[anchor]")

	cfgFile := testutil.CreateFile(t, e.root, "custom.toml", "[anchor]\ntemp_suffix = \".orig\"\n")
	doc := e.runJSON("--config", cfgFile, "init")
	assert.Equal(t, e.anchor+".orig", doc["binding"].(map[string]interface{})["temporary"])
}

func TestCLI_Misc(t *testing.T) {
	e := newCLIEnv(t)

	code, out, _ := e.run("version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "desks version")

	code, out, _ = e.run("topics")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "recovery")
	assert.Contains(t, out, "--dry-run")

	code, out, _ = e.run("help", "recovery")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Recovering")

	code, out, _ = e.run("completion", "bash")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "desks")

	code, _, _ = e.run()
	assert.Equal(t, 1, code)

	dir := filepath.Join(e.root, "man")
	code, _, _ = e.run("man", dir)
	assert.Equal(t, 0, code)
	assert.FileExists(t, filepath.Join(dir, "desks.1"))
}

func TestNewRootCmd_Structure(t *testing.T) {
	root := NewRootCmd()

	want := map[string][]string{
		"init": nil, "set": nil, "reset": nil, "state": {"status"},
		"original": {"o", "ori"}, "usual": {"u", "switch"},
		"topics": nil, "version": nil, "completion": nil, "config": nil,
	}
	found := map[string]*cobra.Command{}
	for _, c := range root.Commands() {
		found[c.Name()] = c
	}
	for name, aliases := range want {
		c, ok := found[name]
		require.True(t, ok, "missing command %s", name)
		if aliases != nil {
			assert.Equal(t, aliases, c.Aliases)
		}
	}

	for _, flag := range []string{"verbose", "dry-run", "config", "anchor", "format"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
	assert.True(t, strings.HasPrefix(found["set"].Use, "set <target>"))
}
