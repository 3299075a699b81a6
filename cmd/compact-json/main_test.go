package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCapture(t *testing.T, args []string, stdin string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeDoc(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRun_File(t *testing.T) {
	path := writeDoc(t, `{"status":"ok","count":3}`)

	code, stdout, stderr := runCapture(t, []string{path}, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "{\"status\": \"ok\", \"count\": 3}\n", stdout)
	assert.Empty(t, stderr)
}

func TestRun_Stdin(t *testing.T) {
	code, stdout, _ := runCapture(t, []string{"-"}, `[1,2,3]`)
	assert.Equal(t, 0, code)
	assert.Equal(t, "[1, 2, 3]\n", stdout)
}

func TestRun_StdinImplicit(t *testing.T) {
	// A non-file stdin is treated as piped input even without "-".
	code, stdout, _ := runCapture(t, nil, `true`)
	assert.Equal(t, 0, code)
	assert.Equal(t, "true\n", stdout)
}

func TestRun_MultipleFiles(t *testing.T) {
	a := writeDoc(t, `1`)
	b := writeDoc(t, `2`)

	code, stdout, _ := runCapture(t, []string{a, b}, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "1\n2\n", stdout)
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runCapture(t, []string{"--version"}, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, version+"\n", stdout)
}

func TestRun_Flags(t *testing.T) {
	path := writeDoc(t, `{"a":{"b":1}}`)

	code, stdout, _ := runCapture(t,
		[]string{"--max-inline-complexity", "0", "--indent", "2", "--prefix-string", "> ", path}, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "> {\n>   \"a\": {\n>     \"b\": 1\n>   }\n> }\n", stdout)
}

func TestRun_CRLF(t *testing.T) {
	code, stdout, _ := runCapture(t, []string{"--crlf", "-"}, `[1]`)
	assert.Equal(t, 0, code)
	assert.Equal(t, "[1]\r\n", stdout)
}

func TestRun_BadBracketPadding(t *testing.T) {
	code, _, stderr := runCapture(t, []string{"--bracket-padding", "wild", "-"}, `1`)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "bracket padding")
}

func TestRun_UnknownFlag(t *testing.T) {
	code, _, _ := runCapture(t, []string{"--no-such-flag"}, "")
	assert.Equal(t, 2, code)
}

func TestRun_MissingFile(t *testing.T) {
	code, _, stderr := runCapture(t, []string{filepath.Join(t.TempDir(), "absent.json")}, "")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "absent.json")
}

func TestRun_BadJSON(t *testing.T) {
	path := writeDoc(t, `{"a":`)
	code, _, stderr := runCapture(t, []string{path}, "")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "doc.json")
}
