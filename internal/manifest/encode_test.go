package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal_RoundTrip(t *testing.T) {
	passFilenames := false
	in := &Manifest{
		Exclude:  `^tests/data/`,
		FailFast: true,
		DefaultLanguageVersion: map[string]string{
			"python": "python3.10",
		},
		Repos: []Repo{
			{
				Repo: "https://github.com/pre-commit/pre-commit-hooks",
				Rev:  "v4.6.0",
				Hooks: []Hook{
					{ID: "check-yaml"},
					{ID: "trailing-whitespace", Exclude: `\.md$`},
				},
			},
			{
				Repo: "local",
				Hooks: []Hook{
					{
						ID:            "make-lint",
						Name:          "Lint",
						Entry:         "make lint",
						Language:      "system",
						Args:          []string{"--fast"},
						AlwaysRun:     true,
						PassFilenames: &passFilenames,
					},
				},
			},
		},
	}

	data, err := Marshal(in)
	require.NoError(t, err)

	out, err := NewLoader().LoadFromBytes(data, ".yaml")
	require.NoError(t, err)

	assert.Equal(t, in, out)
}

func TestMarshal_RoundTripFixture(t *testing.T) {
	loader := NewLoader()

	first, err := loader.Load(filepath.Join("testdata", "pre-commit-config.yaml"))
	require.NoError(t, err)

	data, err := Marshal(first)
	require.NoError(t, err)

	second, err := loader.LoadFromBytes(data, ".yaml")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMarshal_RoundTripHooklessRepo(t *testing.T) {
	loader := NewLoader()

	// A repo without a hooks key loads fine (validation only warns), and
	// the rewritten form must reload to the same graph.
	yamlContent := `
repos:
  - repo: https://example.com/hooks
    rev: v1.0.0
`

	first, err := loader.LoadFromBytes([]byte(yamlContent), ".yaml")
	require.NoError(t, err)
	assert.Nil(t, first.Repos[0].Hooks)

	data, err := Marshal(first)
	require.NoError(t, err)

	second, err := loader.LoadFromBytes(data, ".yaml")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMarshal_RoundTripEmptySequences(t *testing.T) {
	loader := NewLoader()

	tests := []struct {
		name    string
		content string
	}{
		{"no repos key", "exclude: ^vendor/\n"},
		{"explicit empty repos", "repos: []\n"},
		{"explicit empty hooks", `
repos:
  - repo: https://example.com/hooks
    rev: v1.0.0
    hooks: []
`},
		{"explicit empty args", `
repos:
  - repo: https://example.com/hooks
    rev: v1.0.0
    hooks:
      - id: check-yaml
        args: []
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, err := loader.LoadFromBytes([]byte(tt.content), ".yaml")
			require.NoError(t, err)

			data, err := Marshal(first)
			require.NoError(t, err)

			second, err := loader.LoadFromBytes(data, ".yaml")
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestMarshalExt(t *testing.T) {
	loader := NewLoader()

	m := &Manifest{Repos: []Repo{
		{Repo: "https://example.com/hooks", Rev: "v1.0.0", Hooks: []Hook{{ID: "check-yaml"}}},
	}}

	t.Run("yaml", func(t *testing.T) {
		data, err := MarshalExt(m, ".yaml")
		require.NoError(t, err)

		out, err := loader.LoadFromBytes(data, ".yaml")
		require.NoError(t, err)
		assert.Equal(t, m, out)
	})

	t.Run("json stays json", func(t *testing.T) {
		data, err := MarshalExt(m, ".json")
		require.NoError(t, err)
		assert.True(t, json.Valid(data))

		out, err := loader.LoadFromBytes(data, ".json")
		require.NoError(t, err)
		assert.Equal(t, m, out)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		data, err := MarshalExt(m, ".toml")
		assert.Nil(t, data)
		assert.ErrorIs(t, err, ErrUnsupportedExt)
	})
}

func TestSave(t *testing.T) {
	m := &Manifest{Repos: []Repo{
		{Repo: "https://example.com/hooks", Rev: "v1.0.0", Hooks: []Hook{{ID: "check-yaml"}}},
	}}

	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, Save(m, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	loaded, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, m, loaded)
}
