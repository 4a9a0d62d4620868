package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CatherineTower/air-ride-statistics/vocab"
)

func writeTestFile(t *testing.T, name, contents string) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return path
}

func chdir(t *testing.T, dir string) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("Failed to restore working directory: %v", err)
		}
	})
}

func TestLoad_ReadsAllKeys(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "airstats.toml"))
	require.NoError(t, err)

	assert.Equal(t, byte(','), s.SeparatorByte())
	assert.Equal(t, byte(';'), s.CommentByte())
	assert.Equal(t, filepath.Join("testdata", "underhouses.hcl"), s.Vocabulary)
	assert.Equal(t, 256, s.MaxLineLength)
	assert.Equal(t, 16, s.InitialCapacity)
	assert.Equal(t, "select(.parts)", s.Filter)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	s, err := Load(writeTestFile(t, "airstats.toml", ""))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
	assert.Equal(t, byte('|'), s.SeparatorByte())
	assert.Equal(t, byte('#'), s.CommentByte())
	assert.Equal(t, 256, s.InitialCapacity)
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AIRSTATS_TEST_DIR", dir)

	s, err := Load(writeTestFile(t, "airstats.toml", `vocabulary = "$AIRSTATS_TEST_DIR/words.hcl"`))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "words.hcl"), s.Vocabulary)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"multi-byte separator": `separator = "||"`,
		"letter separator":     `separator = "x"`,
		"same characters":      `comment = "|"`,
		"negative length":      `max_line_length = -1`,
		"negative capacity":    `initial_capacity = -4`,
		"not toml":             `separator = `,
	}
	for name, contents := range cases {
		_, err := Load(writeTestFile(t, "airstats.toml", contents))
		assert.Error(t, err, name)
	}
}

func TestResolve(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(EnvConfig, "")

	s, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)

	_, err = Resolve("missing.toml")
	assert.Error(t, err)

	t.Setenv(EnvConfig, writeTestFile(t, "env.toml", `separator = ";"`))
	s, err = Resolve("")
	require.NoError(t, err)
	assert.Equal(t, ";", s.Separator)
}

func TestLoadVocabulary_ReplacesLocations(t *testing.T) {
	v, labels, err := LoadVocabulary(filepath.Join("testdata", "underhouses.hcl"))
	require.NoError(t, err)

	require.Equal(t, 12, v.Location.Len())
	m, err := v.Location.Resolve("UnderHouses")
	require.NoError(t, err)
	assert.EqualValues(t, 8, m)
	assert.Equal(t, "Under the Houses", labels.Label(v.Location, m))

	_, err = v.Location.Resolve("underforest")
	assert.ErrorIs(t, err, vocab.ErrUnknownToken)

	// Untouched domains keep the built-in terms and labels.
	assert.Equal(t, vocab.Default().Event.Spellings(), v.Event.Spellings())
	assert.Equal(t, "A UFO has appeared", labels.Label(v.Event, vocab.UFO))
}

func TestParseVocabulary_LabelsAreOptional(t *testing.T) {
	v, labels, err := ParseVocabulary([]byte(`
domain "machine" {
  term "alpha" {}
  term "beta" { label = "Beta" }
}
`), "inline.hcl")
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "beta"}, v.Machine.Spellings())
	assert.Equal(t, "alpha", labels.Label(v.Machine, 0))
	assert.Equal(t, "Beta", labels.Label(v.Machine, 1))
}

func TestParseVocabulary_Invalid(t *testing.T) {
	cases := map[string]string{
		"syntax":         "domain \"location\" {\n",
		"unknown domain": "domain \"weather\" {\n  term \"rain\" {}\n}\n",
		"flag domain":    "domain \"flag\" {\n  term \"maybe\" {}\n}\n",
		"empty domain":   "domain \"location\" {}\n",
		"bad spelling":   "domain \"location\" {\n  term \"sky platform\" {}\n}\n",
		"duplicate term": "domain \"color\" {\n  term \"red\" {}\n  term \"RED\" {}\n}\n",
		"twice":          "domain \"color\" {\n  term \"red\" {}\n}\ndomain \"color\" {\n  term \"blue\" {}\n}\n",
		"unknown block":  "colour \"red\" {}\n",
	}
	for name, src := range cases {
		_, _, err := ParseVocabulary([]byte(src), "inline.hcl")
		assert.Error(t, err, name)
	}
}
