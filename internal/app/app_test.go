package app

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const miniPDB = "../structure/testdata/mini.pdb"

func run(argv ...string) (int, string, string) {
	var out, errBuf bytes.Buffer
	code := Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestRun_Version(t *testing.T) {
	code, out, _ := run("-version")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "pcn version")
}

func TestRun_Help(t *testing.T) {
	code, out, _ := run("-h")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage: pcn")
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want string
	}{
		{"no chain", []string{miniPDB}, "-chain is required"},
		{"no structures", []string{"-chain", "A"}, "STRUCTURE"},
		{"unknown flag", []string{"-bogus", "-chain", "A", miniPDB}, "bogus"},
		{"bad strategy", []string{"-chain", "A", "-strategy", "quantum", miniPDB}, "quantum"},
		{"bad format", []string{"-chain", "A", "-format", "xml", miniPDB}, "xml"},
		{"negative cutoff", []string{"-chain", "A", "-cutoff", "-1", miniPDB}, "cutoff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := run(tt.argv...)
			assert.Equal(t, 2, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestRun_CSV(t *testing.T) {
	dir := t.TempDir()

	code, out, stderr := run("-chain", "a", "-dir", dir, miniPDB)

	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "5 contacts")
	data, err := os.ReadFile(filepath.Join(dir, "mini_A.csv"))
	require.NoError(t, err)
	assert.Equal(t, ",Node1,Node2\n0,1,2\n1,1,4\n2,2,3\n3,2,4\n4,3,4\n", string(data))
}

func TestRun_JSONAndStrategies(t *testing.T) {
	for _, strategy := range []string{"naive", "parallel", "grid"} {
		t.Run(strategy, func(t *testing.T) {
			dir := t.TempDir()

			code, _, stderr := run("-chain", "A", "-dir", dir, "-format", "json", "-strategy", strategy, miniPDB)

			require.Equal(t, 0, code, stderr)
			data, err := os.ReadFile(filepath.Join(dir, "mini_A.json"))
			require.NoError(t, err)
			assert.JSONEq(t, `{"edges":[[1,2],[1,4],[2,3],[2,4],[3,4]]}`, string(data))
		})
	}
}

func TestRun_ResidueNoDiff(t *testing.T) {
	dir := t.TempDir()

	code, _, _ := run("-chain", "A", "-dir", dir, "-residue-no-diff", "1", miniPDB)

	require.Equal(t, 0, code)
	data, err := os.ReadFile(filepath.Join(dir, "mini_A.csv"))
	require.NoError(t, err)
	assert.Equal(t, ",Node1,Node2\n0,1,4\n1,2,4\n", string(data))
}

func TestRun_FailuresAreIsolated(t *testing.T) {
	dir := t.TempDir()
	var logged bytes.Buffer
	log.SetOutput(&logged)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	code, out, stderr := run("-chain", "A", "-dir", dir, "no-such-structure", miniPDB)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "acquisition_failure")
	assert.Equal(t, 1, strings.Count(stderr, "acquisition_failure"))
	assert.NotContains(t, logged.String(), "no-such-structure")
	assert.Contains(t, out, "mini_A.csv")
	assert.FileExists(t, filepath.Join(dir, "mini_A.csv"))
}

func TestRun_EmptySelection(t *testing.T) {
	dir := t.TempDir()

	code, _, stderr := run("-chain", "Z", "-dir", dir, miniPDB)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "empty_selection")
	assert.Equal(t, 1, strings.Count(stderr, "no selectable atoms"))
	assert.NoFileExists(t, filepath.Join(dir, "mini_Z.csv"))
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "networks")
	cfgPath := filepath.Join(dir, "pcn.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[network]
cutoff = 3.0

[output]
dir = "`+filepath.ToSlash(outDir)+`"
`), 0o644))

	code, _, stderr := run("-config", cfgPath, "-chain", "A", miniPDB)
	require.Equal(t, 0, code, stderr)
	data, err := os.ReadFile(filepath.Join(outDir, "mini_A.csv"))
	require.NoError(t, err)
	assert.Equal(t, ",Node1,Node2\n0,1,2\n1,2,4\n", string(data))

	// Flags win over the file.
	code, _, _ = run("-config", cfgPath, "-cutoff", "7", "-chain", "A", miniPDB)
	require.Equal(t, 0, code)
	data, err = os.ReadFile(filepath.Join(outDir, "mini_A.csv"))
	require.NoError(t, err)
	assert.Equal(t, ",Node1,Node2\n0,1,2\n1,1,4\n2,2,3\n3,2,4\n4,3,4\n", string(data))
}

func TestRun_PersistWithoutDatabase(t *testing.T) {
	t.Setenv("MEMGRAPH_URI", "bolt://127.0.0.1:1")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var out, stderr bytes.Buffer

	code := RunContext(ctx, []string{"-chain", "A", "-dir", t.TempDir(), "-persist", miniPDB}, &out, &stderr)

	assert.Equal(t, 1, code)
	assert.NotEmpty(t, stderr.String())
}

func TestRun_SameBaseNameInOneBatch(t *testing.T) {
	dir := t.TempDir()
	raw, err := os.ReadFile(miniPDB)
	require.NoError(t, err)
	first := filepath.Join(dir, "run1", "mini.pdb")
	second := filepath.Join(dir, "run2", "mini.pdb")
	for _, p := range []string{first, second} {
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, raw, 0o644))
	}
	out := filepath.Join(dir, "out")

	code, _, stderr := run("-chain", "A", "-dir", out, first, second)

	require.Equal(t, 0, code, stderr)
	assert.FileExists(t, filepath.Join(out, "mini_A.csv"))
	assert.FileExists(t, filepath.Join(out, "mini_A_2.csv"))
}
