package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/ajroetker/burstgen/burst"
	"github.com/ajroetker/burstgen/kernels"
)

const (
	testCompute = "acc {{.Op}}= f(projection_{{.Index}}, sines_{{.Row}}{{.Access}});"
	testOuter   = "kernel void burst_{{.Burst}} (\n{{.Inputs}}\n{{.LUTs}}int n)\n{\n{{.Body}}}\n"
)

func writeFamily(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"k.in":             testCompute + "\n%nl\n{{.Terms}}\n",
		burst.OuterFile:    testOuter,
		burst.PreambleFile: "/* defs */\n",
	}
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644))
	}
	return filepath.Join(dir, "k.in")
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Cleanup(func() { burst.SetLogger(nil) })
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestGenerateStdout(t *testing.T) {
	tmpl := writeFamily(t)
	stdout, _, err := execute(t, tmpl, "0", "1", "3")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "/* defs */\n\n"))
	for _, want := range []string{"burst_1 (", "burst_2 (", "burst_3 ("} {
		assert.Contains(t, stdout, want)
	}
	assert.Contains(t, stdout, "const float4 sines_0,")
}

func TestConstantSelector(t *testing.T) {
	tmpl := writeFamily(t)
	stdout, _, err := execute(t, tmpl, "1", "2", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "constant float *sines_0,")
	assert.Contains(t, stdout, "acc += f(projection_1, sines_0[1]);")
}

func TestStopBeforeStart(t *testing.T) {
	// The template does not exist: the range must be rejected first.
	stdout, _, err := execute(t, filepath.Join(t.TempDir(), "missing.in"), "0", "5", "4")
	require.Error(t, err)
	assert.ErrorIs(t, err, burst.ErrConfiguration)
	assert.Contains(t, err.Error(), "'stop' (4) < 'start' (5)")
	assert.Empty(t, stdout)
}

func TestInvalidArguments(t *testing.T) {
	tmpl := writeFamily(t)
	tests := []struct {
		name string
		args []string
	}{
		{"selector", []string{tmpl, "2", "1", "4"}},
		{"start", []string{tmpl, "0", "one", "4"}},
		{"stop", []string{tmpl, "0", "1", "4.5"}},
		{"missing template", []string{filepath.Join(t.TempDir(), "absent.in"), "0", "1", "4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, burst.ErrConfiguration)
			assert.Empty(t, stdout)
		})
	}
}

func TestWrongArgCount(t *testing.T) {
	_, _, err := execute(t, "k.in", "0", "1")
	assert.Error(t, err)
}

func TestOutputFile(t *testing.T) {
	tmpl := writeFamily(t)
	out := filepath.Join(t.TempDir(), "burst.cl")

	stdout, _, err := execute(t, "-o", out, "-j", "4", tmpl, "0", "1", "20")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	want, _, err := execute(t, tmpl, "0", "1", "20")
	require.NoError(t, err)
	assert.Equal(t, want, string(data))
}

func TestOutputFileUntouchedOnFailure(t *testing.T) {
	dir := t.TempDir()
	tmpl := filepath.Join(dir, "k.in")
	require.NoError(t, os.WriteFile(tmpl, []byte(testCompute+"\n{{.Terms}}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, burst.OuterFile), []byte(testOuter), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, burst.PreambleFile), []byte("defs\n"), 0o644))

	out := filepath.Join(dir, "burst.cl")
	require.NoError(t, os.WriteFile(out, []byte("previous"), 0o644))

	_, _, err := execute(t, "-o", out, tmpl, "0", "1", "4")
	require.ErrorIs(t, err, burst.ErrConfiguration)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}

func TestArchive(t *testing.T) {
	archive := &txtar.Archive{Files: []txtar.File{
		{Name: "family/k.in", Data: []byte(testCompute + "\n%nl\n{{.Terms}}\n")},
		{Name: "family/" + burst.OuterFile, Data: []byte(testOuter)},
		{Name: "family/" + burst.PreambleFile, Data: []byte("/* defs */\n")},
	}}
	path := filepath.Join(t.TempDir(), "family.txtar")
	require.NoError(t, os.WriteFile(path, txtar.Format(archive), 0o644))

	fromArchive, _, err := execute(t, "--archive", path, "family/k.in", "0", "1", "18")
	require.NoError(t, err)
	fromDisk, _, err := execute(t, writeFamily(t), "0", "1", "18")
	require.NoError(t, err)
	assert.Equal(t, fromDisk, fromArchive)
}

func TestEmbedded(t *testing.T) {
	for _, family := range kernels.Families {
		stdout, _, err := execute(t, "--embedded", family, "0", "1", "17")
		require.NoError(t, err, family)
		assert.Contains(t, stdout, "backproject_burst_17 (")
	}
}

func TestArchiveAndEmbeddedExclusive(t *testing.T) {
	_, _, err := execute(t, "--embedded", "--archive", "x.txtar", "lamino/z.in", "0", "1", "2")
	assert.ErrorIs(t, err, burst.ErrConfiguration)
}

func TestInputTemplateFlag(t *testing.T) {
	tmpl := writeFamily(t)
	stdout, _, err := execute(t, "--input-template", "global float *in_{{.Index}},", tmpl, "1", "2", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "global float *in_0,\nglobal float *in_1,\n")
}

func TestBadInputTemplate(t *testing.T) {
	tmpl := writeFamily(t)
	stdout, _, err := execute(t, "--input-template", "global float *in,", tmpl, "1", "2", "2")
	assert.ErrorIs(t, err, burst.ErrTemplateFormat)
	assert.Empty(t, stdout)
}

func TestVerbose(t *testing.T) {
	tmpl := writeFamily(t)
	_, stderr, err := execute(t, "-v", tmpl, "0", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, "templates loaded")
	assert.Contains(t, stderr, "kernel generated")

	_, stderr, err = execute(t, tmpl, "0", "1", "2")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}
