package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var cli CLI
	parser, err := kong.New(&cli, kong.Name("voynich"), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	require.NoError(t, err)

	var out bytes.Buffer
	app, err := NewApp(cli.Globals, &out)
	if err != nil {
		return "", err
	}

	err = ctx.Run(app)
	return out.String(), err
}

func TestAnalyzeCommand(t *testing.T) {
	path := writeFile(t, "manuscript.txt", "oco.chy.\noco.ory\n")

	out, err := run(t, "analyze", path)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Character Frequency:\no: 5\n"), out)
	assert.Contains(t, out, "\nMost Common Words:\noco: 2\n")
	assert.Contains(t, out, "\nDecrypted Text:\nata ton ata arn\n")
	assert.Contains(t, out, "\nTranslated Words:\nfather/data\nton\nfather/data\narn\n")
}

func TestAnalyzeIsDefaultCommand(t *testing.T) {
	path := writeFile(t, "manuscript.txt", "oco")

	out, err := run(t, path, "--annotate")
	require.NoError(t, err)
	assert.Contains(t, out, "ata -> father/data\n")
}

func TestAnalyzeMissingSource(t *testing.T) {
	out, err := run(t, "analyze", filepath.Join(t.TempDir(), "absent.txt"))
	assert.ErrorIs(t, err, errAborted)
	assert.Equal(t, missingSourceMessage+"\n", out)
}

func TestAnalyzeUnreadableSource(t *testing.T) {
	out, err := run(t, "analyze", t.TempDir())
	assert.ErrorIs(t, err, errAborted)
	assert.Equal(t, missingSourceMessage+"\n", out)
}

func TestAnalyzeEmptySource(t *testing.T) {
	path := writeFile(t, "empty.txt", " \n\n ")

	out, err := run(t, "shift", path)
	assert.ErrorIs(t, err, errAborted)
	assert.Equal(t, missingSourceMessage+"\n", out)
}

func TestShiftCommand(t *testing.T) {
	path := writeFile(t, "sample.txt", "XQX lov")

	out, err := run(t, "shift", "--parallel", "--best", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, "Caesar Shift Scan:", lines[0])
	assert.Equal(t, "Shift 1: 0 matches found.", lines[1])
	assert.Equal(t, "Shift 3: 2 matches found.", lines[3])
	assert.Equal(t, "Shift 25: 0 matches found.", lines[25])
	assert.Equal(t, "Best shift: 3 (2 matches)", lines[len(lines)-1])
}

func TestCaesarCommand(t *testing.T) {
	path := writeFile(t, "abc.txt", "ABC")

	out, err := run(t, "caesar", "--shift", "25", path)
	require.NoError(t, err)
	assert.Equal(t, "ZAB\n", out)

	out, err = run(t, "caesar", "--shift", "1", "--decrypt", path)
	require.NoError(t, err)
	assert.Equal(t, "ZAB\n", out)
}

func TestStatsCommandWordsMode(t *testing.T) {
	path := writeFile(t, "words.txt", "The cat, the hat.")

	out, err := run(t, "stats", "--mode", "words", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Most Common Words:\nthe: 2\ncat: 1\nhat: 1\n")
	assert.NotContains(t, out, ",: ")
}

func TestStatsRejectsUnknownMode(t *testing.T) {
	_, err := run(t, "stats", "--mode", "bigram", writeFile(t, "a.txt", "a"))
	assert.ErrorContains(t, err, "unsupported tokenizer mode")
}

func TestConfigAndDictionaryFlags(t *testing.T) {
	cfg := writeFile(t, "voynich.yaml", "cipher:\n  map:\n    q: a\n    k: t\nreport:\n  annotate: true\n")
	dict := writeFile(t, "dict.yaml", "ata: [father]\n")
	text := writeFile(t, "manuscript.txt", "qkq")

	out, err := run(t, "--config", cfg, "--dictionary", dict, "analyze", text)
	require.NoError(t, err)
	assert.Contains(t, out, "ata -> father\n")
}

func TestJSONFormat(t *testing.T) {
	path := writeFile(t, "sample.txt", "dwd")

	out, err := run(t, "--format", "json", "shift", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"matches": 1`)
	assert.Contains(t, out, `"shift": 23`)
}

func TestInvalidFormat(t *testing.T) {
	_, err := run(t, "--format", "xml", "shift", writeFile(t, "a.txt", "a"))
	assert.ErrorContains(t, err, "unsupported report format")
}

func TestAnalyzeSave(t *testing.T) {
	path := writeFile(t, "manuscript.txt", "oco.chy")
	base := filepath.Join(t.TempDir(), "out")

	_, err := run(t, "analyze", "--save", base, path)
	require.NoError(t, err)

	text, err := os.ReadFile(base + ".txt")
	require.NoError(t, err)
	assert.Equal(t, "ata ton\n", string(text))
	assert.FileExists(t, base+".json")
}
