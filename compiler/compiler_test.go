package compiler

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tlog.app/go/errors"
)

//go:generate mockgen -write_package_comment=false -package=$GOPACKAGE -destination=mock_writer_test.go github.com/slowlang/irgen/compiler Writer

const (
	testConfig = `
package = "tiny"
formats = "tables/formats.txt"
operators = "tables/operators.txt"
`

	testFormats = `
format Move
	def Result RegisterOperand
	use Val Operand
`

	testOperators = `
INT_MOVE Move move
`
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	for name, text := range files {
		p := filepath.Join(dir, name)

		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(text), 0o644))
	}

	return dir
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig("/gen", []byte(testConfig))
	require.NoError(t, err)

	assert.Equal(t, "tiny", cfg.Package)
	assert.Equal(t, DefaultIRImport, cfg.IRImport)
	assert.Equal(t, "formats_gen.go", cfg.FormatsOut)
	assert.Equal(t, filepath.Join("/gen", "tables/formats.txt"), cfg.Path(cfg.Formats))
	assert.Equal(t, "/abs/x.go", cfg.Path("/abs/x.go"))

	for _, text := range []string{
		`package = "tiny"` + "\n" + `formats = "f"` + "\n" + `operators = "o"` + "\n" + `extra = 1`,
		`package = "not a name"` + "\n" + `formats = "f"` + "\n" + `operators = "o"`,
		`package = "tiny"`,
		`package = `,
	} {
		_, err := ParseConfig("", []byte(text))
		assert.Error(t, err, "%s", text)
	}
}

func TestGenerate(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"irgen.toml":           testConfig,
		"tables/formats.txt":   testFormats,
		"tables/operators.txt": testOperators,
	})

	cfg, err := LoadConfig(filepath.Join(dir, "irgen.toml"))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	w := NewMockWriter(ctrl)

	var formats []byte

	w.EXPECT().WriteFile(filepath.Join(dir, "formats_gen.go"), gomock.Any()).
		DoAndReturn(func(name string, data []byte) error {
			formats = data
			return nil
		})

	w.EXPECT().WriteFile(filepath.Join(dir, "operators_gen.go"), gomock.Any()).Return(nil)

	err = Generate(context.Background(), cfg, w)
	require.NoError(t, err)

	assert.Contains(t, string(formats), "package tiny")
	assert.Contains(t, string(formats), "// Code generated by irgen from formats.txt; DO NOT EDIT.")
}

func TestGenerateWriteError(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"irgen.toml":           testConfig,
		"tables/formats.txt":   testFormats,
		"tables/operators.txt": testOperators,
	})

	cfg, err := LoadConfig(filepath.Join(dir, "irgen.toml"))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	w := NewMockWriter(ctrl)

	fail := errors.New("disk full")

	w.EXPECT().WriteFile(gomock.Any(), gomock.Any()).Return(fail)

	err = Generate(context.Background(), cfg, w)
	assert.ErrorIs(t, err, fail)
}

func TestGenerateSecondWriteError(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"irgen.toml":           testConfig,
		"tables/formats.txt":   testFormats,
		"tables/operators.txt": testOperators,
	})

	cfg, err := LoadConfig(filepath.Join(dir, "irgen.toml"))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	w := NewMockWriter(ctrl)

	fail := errors.New("disk full")

	gomock.InOrder(
		w.EXPECT().WriteFile(filepath.Join(dir, "formats_gen.go"), gomock.Any()).Return(nil),
		w.EXPECT().WriteFile(filepath.Join(dir, "operators_gen.go"), gomock.Any()).Return(fail),
	)

	err = Generate(context.Background(), cfg, w)
	assert.ErrorIs(t, err, fail)
	assert.Contains(t, err.Error(), "operators_gen.go")
}

func TestGenerateBadTables(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"irgen.toml":           testConfig,
		"tables/formats.txt":   testFormats,
		"tables/operators.txt": "INT_MOVE Nowhere\n",
	})

	cfg, err := LoadConfig(filepath.Join(dir, "irgen.toml"))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	w := NewMockWriter(ctrl)

	err = Generate(context.Background(), cfg, w)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operators.txt:1")
}

// The committed hir sources must match what the generator produces.
func TestHirUpToDate(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("ir", "hir", "irgen.toml"))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	w := NewMockWriter(ctrl)

	w.EXPECT().WriteFile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(name string, data []byte) error {
			have, err := os.ReadFile(name)
			require.NoError(t, err)

			assert.Equal(t, string(have), string(data), "%v is out of date, run go generate", name)

			return nil
		}).Times(2)

	err = Generate(context.Background(), cfg, w)
	require.NoError(t, err)
}

func TestDirWriter(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "out.go")

	w := NewDirWriter()

	require.NoError(t, w.WriteFile(name, []byte("package a\n")))

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "package a\n", string(data))

	st, err := os.Stat(name)
	require.NoError(t, err)

	require.NoError(t, w.WriteFile(name, []byte("package a\n")))

	st2, err := os.Stat(name)
	require.NoError(t, err)
	assert.Equal(t, st.ModTime(), st2.ModTime(), "unchanged file is not rewritten")

	require.NoError(t, w.WriteFile(name, []byte("package b\n")))

	data, err = os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "package b\n", string(data))

	ents, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, ents, 1, "no temp files left")

	err = w.WriteFile(filepath.Join(dir, "missing", "x.go"), nil)
	assert.Error(t, err)

	w.Cleanup()
}
