package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todo-cli/internal/model"
	"github.com/idilsaglam/todo-cli/internal/store/linestore"
)

var fixedNow = time.Date(2024, 3, 5, 9, 7, 0, 0, time.Local)

// run executes the root command against file and returns stdout.
func run(t *testing.T, file string, argv ...string) (string, error) {
	t.Helper()
	app := &App{now: func() time.Time { return fixedNow }}
	cmd := newRootCmd(app)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--file", file, "--no-color"}, argv...))
	err := cmd.Execute()
	return out.String(), err
}

func todoFile(t *testing.T, descs ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".todo")
	if len(descs) == 0 {
		return path
	}
	records := make([]model.Record, 0, len(descs))
	for i, d := range descs {
		records = append(records, model.Record{Timestamp: fixedNow.Add(time.Duration(i) * time.Hour), Description: d})
	}
	require.NoError(t, linestore.Store{Path: path}.Save(records))
	return path
}

func TestAdd(t *testing.T) {
	path := todoFile(t)
	out, err := run(t, path, "add", "buy", "milk")
	require.NoError(t, err)
	assert.Equal(t, "Added: buy milk\n03-05 09:07\n", out)

	_, err = run(t, path, "add", "call", "mum")
	require.NoError(t, err)

	got, err := linestore.Store{Path: path}.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "buy milk", got[0].Description)
	assert.Equal(t, "call mum", got[1].Description)
	assert.True(t, got[0].Timestamp.Equal(fixedNow))
}

func TestAddNeedsWords(t *testing.T) {
	_, err := run(t, todoFile(t), "add")
	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))
}

func TestListEmpty(t *testing.T) {
	out, err := run(t, todoFile(t), "list")
	require.NoError(t, err)
	assert.Equal(t, "No todos\n", out)
}

func TestList(t *testing.T) {
	path := todoFile(t, "buy milk", "call mum")
	for _, name := range []string{"list", "ls"} {
		out, err := run(t, path, name)
		require.NoError(t, err)
		assert.Equal(t, "1. [03-05 09:07] buy milk\n2. [03-05 10:07] call mum\n", out)
	}
}

func TestRemove(t *testing.T) {
	path := todoFile(t, "a", "b", "c")
	out, err := run(t, path, "remove", "2")
	require.NoError(t, err)
	assert.Equal(t, "Removed: b\n", out)

	got, err := linestore.Store{Path: path}.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Description)
	assert.Equal(t, "c", got[1].Description)
}

func TestRemoveInvalidIndexLeavesFile(t *testing.T) {
	path := todoFile(t, "a", "b", "c")
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	for _, idx := range []string{"0", "4"} {
		out, err := run(t, path, "remove", idx)
		require.NoError(t, err)
		assert.Contains(t, out, "Invalid todo index: "+idx)

		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	}
}

func TestRemoveNotANumber(t *testing.T) {
	_, err := run(t, todoFile(t, "a"), "rm", "two")
	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))
}

func TestDoneIsRemoveAlias(t *testing.T) {
	path := todoFile(t, "a")
	out, err := run(t, path, "done", "1")
	require.NoError(t, err)
	assert.Equal(t, "Removed: a\n", out)
}

func TestNoSubcommandIsUsageError(t *testing.T) {
	_, err := run(t, todoFile(t))
	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))
}

func TestBadLogLevel(t *testing.T) {
	_, err := run(t, todoFile(t), "--log-level", "loud", "ls")
	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))
}

func TestLoadErrorIsFailure(t *testing.T) {
	_, err := run(t, t.TempDir(), "ls")
	require.Error(t, err)
	assert.Equal(t, 1, ExitCode(err))
	assert.Equal(t, 0, ExitCode(nil))
}

func TestInteractiveAlias(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{"interactive", "i"} {
		found, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, "interactive", found.Name())
	}
}
