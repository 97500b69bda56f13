package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepo_IsLocal(t *testing.T) {
	assert.True(t, Repo{Repo: LocalRepo}.IsLocal())
	assert.True(t, Repo{Repo: MetaRepo}.IsLocal())
	assert.False(t, Repo{Repo: "https://github.com/pre-commit/pre-commit-hooks"}.IsLocal())
	assert.False(t, Repo{Repo: ""}.IsLocal())
}

func TestRepo_HookIDs(t *testing.T) {
	r := Repo{Hooks: []Hook{{ID: "ruff"}, {ID: "ruff-format"}}}
	assert.Equal(t, []string{"ruff", "ruff-format"}, r.HookIDs())

	assert.Empty(t, Repo{}.HookIDs())
}

func TestManifest_HookCount(t *testing.T) {
	m := &Manifest{Repos: []Repo{
		{Repo: "a", Hooks: []Hook{{ID: "x"}, {ID: "y"}}},
		{Repo: "b"},
		{Repo: "c", Hooks: []Hook{{ID: "z"}}},
	}}

	assert.Equal(t, 3, m.HookCount())
	assert.Equal(t, 0, (&Manifest{}).HookCount())
}
