package manifest

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Severity classifies a violation
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Violation describes one invariant broken by an otherwise well-formed
// manifest. Repo carries the location of the offending entry; it is empty
// for top-level fields.
type Violation struct {
	Repo     string
	Field    string
	Message  string
	Severity Severity
}

func (v Violation) Error() string {
	if v.Repo == "" {
		return fmt.Sprintf("%s: %s: %s", v.Severity, v.Field, v.Message)
	}
	return fmt.Sprintf("%s: %s: %s: %s", v.Severity, v.Repo, v.Field, v.Message)
}

// Result holds the violations found by Validate, in document order.
type Result struct {
	Violations []Violation
}

// OK reports whether the manifest passed with no error-severity violations.
func (r Result) OK() bool {
	return len(r.Errors()) == 0
}

// Errors returns the error-severity violations.
func (r Result) Errors() []Violation {
	return r.filter(SeverityError)
}

// Warnings returns the warning-severity violations.
func (r Result) Warnings() []Violation {
	return r.filter(SeverityWarning)
}

func (r Result) filter(sev Severity) []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Severity == sev {
			out = append(out, v)
		}
	}
	return out
}

// revPattern matches the charset git accepts for tags, branches, and
// commit shas. Not a semver check: real manifests pin shas and tags
// that are nowhere near semver.
var revPattern = regexp.MustCompile(`^[0-9A-Za-z][0-9A-Za-z._/+-]*$`)

func validRev(rev string) bool {
	return revPattern.MatchString(rev) && !strings.Contains(rev, "..")
}

// Validate checks the invariants that are checkable offline: pinned
// revisions on remote repos, compilable path patterns, non-empty hook ids,
// and duplicate repository entries. It does not touch the network and does
// not mutate the manifest. Whether a hook id actually exists in its
// repository is the runner's problem, not ours.
func Validate(m *Manifest) Result {
	var vs []Violation

	if m.Exclude != "" {
		if _, err := regexp.Compile(m.Exclude); err != nil {
			vs = append(vs, Violation{
				Field:    "exclude",
				Message:  fmt.Sprintf("invalid pattern: %v", err),
				Severity: SeverityError,
			})
		}
	}

	seen := map[string]Repo{}
	for i, r := range m.Repos {
		vs = append(vs, validateRepo(i, r)...)

		if prev, ok := seen[r.Repo]; ok {
			vs = append(vs, duplicateViolation(prev, r))
		} else {
			seen[r.Repo] = r
		}
	}

	return Result{Violations: vs}
}

func validateRepo(i int, r Repo) []Violation {
	var vs []Violation

	if !r.IsLocal() {
		switch {
		case r.Rev == "":
			vs = append(vs, Violation{
				Repo:     r.Repo,
				Field:    fmt.Sprintf("repos[%d].rev", i),
				Message:  "rev must not be empty",
				Severity: SeverityError,
			})
		case !validRev(r.Rev):
			vs = append(vs, Violation{
				Repo:     r.Repo,
				Field:    fmt.Sprintf("repos[%d].rev", i),
				Message:  fmt.Sprintf("%q is not a valid tag or commit reference", r.Rev),
				Severity: SeverityError,
			})
		}
	}

	if len(r.Hooks) == 0 {
		vs = append(vs, Violation{
			Repo:     r.Repo,
			Field:    fmt.Sprintf("repos[%d].hooks", i),
			Message:  "repository declares no hooks",
			Severity: SeverityWarning,
		})
	}

	for j, h := range r.Hooks {
		field := fmt.Sprintf("repos[%d].hooks[%d]", i, j)
		if h.ID == "" {
			vs = append(vs, Violation{
				Repo:     r.Repo,
				Field:    field + ".id",
				Message:  "hook id must not be empty",
				Severity: SeverityError,
			})
		}
		for _, p := range []struct{ name, pat string }{{"files", h.Files}, {"exclude", h.Exclude}} {
			name, pat := p.name, p.pat
			if pat == "" {
				continue
			}
			if _, err := regexp.Compile(pat); err != nil {
				vs = append(vs, Violation{
					Repo:     r.Repo,
					Field:    field + "." + name,
					Message:  fmt.Sprintf("invalid pattern: %v", err),
					Severity: SeverityError,
				})
			}
		}
	}

	return vs
}

// duplicateViolation decides how hard to complain about a repeated
// location. The same location with the same rev and the same hook set is
// a copy-paste mistake; anything else could be an intentional override,
// so it is only flagged.
func duplicateViolation(prev, cur Repo) Violation {
	if prev.Rev == cur.Rev && sameIDSet(prev.HookIDs(), cur.HookIDs()) {
		return Violation{
			Repo:     cur.Repo,
			Field:    "repos",
			Message:  "duplicate repository entry with an identical hook set",
			Severity: SeverityError,
		}
	}
	return Violation{
		Repo:     cur.Repo,
		Field:    "repos",
		Message:  "repository listed more than once",
		Severity: SeverityWarning,
	}
}

func sameIDSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	a, b = append([]string(nil), a...), append([]string(nil), b...)
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
