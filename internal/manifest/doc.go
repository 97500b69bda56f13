// Package manifest provides types and utilities for loading, validating,
// and rewriting pre-commit hook manifests (.pre-commit-config.yaml). A
// manifest declares which hook repositories a project uses, the revision
// each is pinned at, and which hooks to activate with what arguments. The
// pre-commit runner itself (cloning repositories, matching files, running
// hooks) is out of scope; this package only owns the document.
//
// # Manifest Format
//
// Manifests can be written in YAML or JSON:
//
//	exclude: ^tests/data/
//	default_language_version:
//	  python: python3.10
//	repos:
//	  - repo: https://github.com/pre-commit/pre-commit-hooks
//	    rev: v4.6.0
//	    hooks:
//	      - id: check-yaml
//	      - id: end-of-file-fixer
//	  - repo: local
//	    hooks:
//	      - id: make-lint
//	        entry: make lint
//	        language: system
//
// # Usage
//
// Load a manifest and check its invariants:
//
//	loader := manifest.NewLoader()
//	m, err := loader.Load(manifest.ConfigFileName)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res := manifest.Validate(m)
//	for _, v := range res.Violations {
//	    fmt.Println(v)
//	}
//
// # Error Handling
//
// Load failures are split into two typed errors: ParseError for a document
// that is not well-formed YAML/JSON, and SchemaError for a well-formed
// document missing a required field (a repo without "repo", a hook without
// "id") or carrying a wrong-typed value. Both also match their sentinels
// (ErrMalformedDocument, ErrInvalidSchema) via errors.Is. Everything that
// is only checkable against a loaded manifest, such as empty or malformed
// revisions, uncompilable patterns, and duplicate repository entries, is
// reported by Validate as a list of Violations rather than a single error.
package manifest
