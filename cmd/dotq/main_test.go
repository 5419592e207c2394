package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serverDoc = `{"server": {"port": 80, "host": "localhost"}, "tags": ["a", "b"]}`

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")

	return path
}

func runArgs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(out, errOut, args)

	return out.String(), errOut.String(), err
}

func TestRun_Get(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, "doc.json", serverDoc)

	out, _, err := runArgs(t, "get", path, "server.port")
	require.NoError(t, err)
	assert.Equal(t, "80\n", out)

	out, _, err = runArgs(t, "get", path, "server")
	require.NoError(t, err)
	assert.JSONEq(t, `{"port": 80, "host": "localhost"}`, out)
}

func TestRun_GetMissSuggests(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, "doc.json", serverDoc)

	out, logs, err := runArgs(t, "get", path, "server.prot")
	require.Error(t, err)
	assert.Empty(t, out)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, exitErr.Message, "server.prot")
	assert.Contains(t, logs, "did you mean server.port")
}

func TestRun_CustomDelimiter(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, "doc.json", `{"a.b": {"c": 1}}`)

	out, _, err := runArgs(t, "-delim", "/", "get", path, "a.b/c")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestRun_SetWrite(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, "doc.json", `{"a": 1}`)

	out, _, err := runArgs(t, "-write", "set", path, "b.c", "true")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": {\n    \"c\": true\n  }\n}\n", string(data))
}

func TestRun_SetStructuredValue(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, "doc.yaml", "name: x\n")

	out, _, err := runArgs(t, "-out", "yaml", "set", path, "limits", "{cpu: 2, mem: 1Gi}")
	require.NoError(t, err)
	assert.Equal(t, "name: x\nlimits:\n    cpu: 2\n    mem: 1Gi\n", out)
}

func TestRun_SetNullDeletes(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, "doc.json", serverDoc)

	out, _, err := runArgs(t, "set", path, "server", "null")
	require.NoError(t, err)
	assert.JSONEq(t, `{"tags": ["a", "b"]}`, out)
}

func TestRun_Delete(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, "doc.json", serverDoc)

	out, _, err := runArgs(t, "del", path, "server.host")
	require.NoError(t, err)
	assert.JSONEq(t, `{"server": {"port": 80}, "tags": ["a", "b"]}`, out)

	out, _, err = runArgs(t, "del", path, "missing.level")
	require.NoError(t, err)
	assert.JSONEq(t, serverDoc, out)
}

func TestRun_Leaves(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, "doc.json", serverDoc)

	out, _, err := runArgs(t, "leaves", path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"server.port\": 80,\n  \"server.host\": \"localhost\",\n  \"tags\": [\n    \"a\",\n    \"b\"\n  ]\n}\n", out)

	out, _, err = runArgs(t, "-out", "yaml", "leaves", path, "server")
	require.NoError(t, err)
	assert.Equal(t, "server.port: 80\nserver.host: localhost\n", out)
}

func TestRun_Keys(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, "doc.json", serverDoc)

	out, _, err := runArgs(t, "keys", path)
	require.NoError(t, err)
	assert.Equal(t, "server\ntags\n", out)

	out, _, err = runArgs(t, "keys", path, "server")
	require.NoError(t, err)
	assert.Equal(t, "port\nhost\n", out)

	_, _, err = runArgs(t, "keys", path, "tags")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tags is a List")
}

func TestRun_HCLInput(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, "vars.tfvars", "name = \"api\"\nport = 8080\n")

	out, _, err := runArgs(t, "get", path, "port")
	require.NoError(t, err)
	assert.Equal(t, "8080\n", out)

	out, _, err = runArgs(t, "-out", "hcl", "set", path, "replicas", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "replicas = 3")
}

func TestRun_Dump(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, "doc.json", serverDoc)

	out, _, err := runArgs(t, "-dump", "get", path, "server.port")
	require.NoError(t, err)
	assert.Equal(t, "(int64) 80\n", out)
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out, _, err := runArgs(t, "-h")
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	assert.Contains(t, out, "Usage:")

	out, _, err = runArgs(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
}

func TestRun_ParseErrors(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, "doc.json", serverDoc)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"--nope"}, "flag provided but not defined: -nope"},
		{"unknown command", []string{"fetch", path}, `unknown command "fetch"`},
		{"missing file", []string{"get"}, "missing FILE argument"},
		{"get without key", []string{"get", path}, "wrong number of arguments for get"},
		{"set without value", []string{"set", path, "a"}, "wrong number of arguments for set"},
		{"write on get", []string{"-write", "get", path, "a"}, "-write only applies to set and del"},
		{"empty delimiter", []string{"-delim", "", "get", path, "a"}, "invalid delim"},
		{"bad format", []string{"-format", "toml", "get", path, "a"}, "invalid format"},
		{"msgpack output", []string{"-out", "msgpack", "get", path, "a"}, "invalid out"},
		{"bad log level", []string{"-log-level", "loud", "get", path, "a"}, "invalid log-level"},
		{"bad log format", []string{"-log-format", "xml", "get", path, "a"}, "invalid log-format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := runArgs(t, tt.args...)
			require.Error(t, err)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tt.want)
		})
	}
}

func TestRun_LoadErrors(t *testing.T) {
	t.Parallel()

	_, _, err := runArgs(t, "get", filepath.Join(t.TempDir(), "missing.json"), "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read document")

	path := writeDoc(t, "list.json", `[1, 2]`)
	_, _, err = runArgs(t, "get", path, "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")
}
