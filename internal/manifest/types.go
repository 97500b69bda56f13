package manifest

// ConfigFileName is the conventional name of a pre-commit manifest file.
const ConfigFileName = ".pre-commit-config.yaml"

// Special repository locations understood by the pre-commit runner.
// Hooks under them are defined inline (local) or ship with the runner
// itself (meta), so they carry no pinned revision.
const (
	LocalRepo = "local"
	MetaRepo  = "meta"
)

// Manifest is the root of a pre-commit configuration document
type Manifest struct {
	Exclude                 string            `yaml:"exclude,omitempty" json:"exclude,omitempty"`
	FailFast                bool              `yaml:"fail_fast,omitempty" json:"fail_fast,omitempty"`
	DefaultStages           []string          `yaml:"default_stages,omitempty" json:"default_stages,omitempty"`
	DefaultLanguageVersion  map[string]string `yaml:"default_language_version,omitempty" json:"default_language_version,omitempty"`
	MinimumPreCommitVersion string            `yaml:"minimum_pre_commit_version,omitempty" json:"minimum_pre_commit_version,omitempty"`
	Repos                   []Repo            `yaml:"repos,omitempty" json:"repos,omitempty"`
}

// Repo pins one hook repository at a reproducible revision
type Repo struct {
	Repo  string `yaml:"repo" json:"repo"`
	Rev   string `yaml:"rev,omitempty" json:"rev,omitempty"`
	Hooks []Hook `yaml:"hooks,omitempty" json:"hooks,omitempty"`
}

// Hook activates a single hook exported by its repository, optionally
// overriding how the runner invokes it
type Hook struct {
	ID                     string   `yaml:"id" json:"id"`
	Name                   string   `yaml:"name,omitempty" json:"name,omitempty"`
	Entry                  string   `yaml:"entry,omitempty" json:"entry,omitempty"`
	Language               string   `yaml:"language,omitempty" json:"language,omitempty"`
	LanguageVersion        string   `yaml:"language_version,omitempty" json:"language_version,omitempty"`
	Args                   []string `yaml:"args,omitempty" json:"args,omitempty"`
	Files                  string   `yaml:"files,omitempty" json:"files,omitempty"`
	Exclude                string   `yaml:"exclude,omitempty" json:"exclude,omitempty"`
	Stages                 []string `yaml:"stages,omitempty" json:"stages,omitempty"`
	AdditionalDependencies []string `yaml:"additional_dependencies,omitempty" json:"additional_dependencies,omitempty"`
	AlwaysRun              bool     `yaml:"always_run,omitempty" json:"always_run,omitempty"`
	PassFilenames          *bool    `yaml:"pass_filenames,omitempty" json:"pass_filenames,omitempty"`
}

// IsLocal reports whether the entry uses one of the special locations
// that are resolved by the runner without cloning anything.
func (r Repo) IsLocal() bool {
	return r.Repo == LocalRepo || r.Repo == MetaRepo
}

// HookIDs returns the ids of the repo's hooks in declaration order.
func (r Repo) HookIDs() []string {
	ids := make([]string, len(r.Hooks))
	for i, h := range r.Hooks {
		ids[i] = h.ID
	}
	return ids
}

// HookCount returns the total number of hook activations in the manifest.
func (m *Manifest) HookCount() int {
	n := 0
	for _, r := range m.Repos {
		n += len(r.Hooks)
	}
	return n
}
