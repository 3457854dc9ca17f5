// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const script = `
[vectors]
a = [1.0, 2.0, 3.0, 4.0]

[matrices.m]
rows = [[1.0, 2.0, 3.0], [4.0, 5.0, 6.0]]

[views.mid]
of = "a"
start = 1
len = 2

[[ops]]
op = "sum"
on = "a"

[[ops]]
op = "sum"
on = "m"
out = "rows"

[[ops]]
op = "inc"
on = "mid"
args = [10]

[[ops]]
op = "set"
on = "m"
named = { alpha = 0.5 }

[[ops]]
op = "pow"
value = 2.0
args = [3]
`

func TestRun_Script(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "session.toml")
	cfgPath := filepath.Join(dir, "linear.toml")
	require.NoError(t, os.WriteFile(scriptPath, []byte(script), 0o600))
	require.NoError(t, os.WriteFile(cfgPath, []byte("seed = 3\nlog_level = \"error\"\n"), 0o600))

	var out bytes.Buffer
	require.NoError(t, run(cfgPath, scriptPath, &out))
	require.Equal(t, "sum a = 10\n"+
		"sum m -> rows = [6, 15]\n"+
		"inc mid = [12, 13]\n"+
		"set m = [0.5, 0.5, 0.5]\n[0.5, 0.5, 0.5]\n\n"+
		"pow = 8\n", out.String())
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[vectors]\na = [1.0]\n[[ops]]\nop = \"var\"\non = \"a\"\nargs = [1]\n"), 0o600))

	var out bytes.Buffer
	err := run("", bad, &out)
	require.Error(t, err)
	require.Contains(t, err.Error(), "ops[0]")

	require.Error(t, run("", filepath.Join(dir, "missing.toml"), &out))
}
