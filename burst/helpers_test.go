package burst

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

// testText is the minimal kernel family of testdata/minimal.txtar.
var testText = TemplateText{
	Compute:  "acc {{.Op}}= f(projection_{{.Index}}, sines_{{.Row}}{{.Access}});",
	Inner:    "{{.Terms}}\n",
	Outer:    "kernel void burst_{{.Burst}} (\n{{.Inputs}}\n{{.LUTs}}int n)\n{\n{{.Body}}}\n",
	Preamble: "/* defs */\n",
}

func testSet(t *testing.T) *TemplateSet {
	t.Helper()
	set, err := ParseTemplateSet(testText)
	require.NoError(t, err)
	return set
}

func testArchive(t *testing.T) fs.FS {
	t.Helper()
	a, err := txtar.ParseFile("testdata/minimal.txtar")
	require.NoError(t, err)
	fsys, err := txtar.FS(a)
	require.NoError(t, err)
	return fsys
}
