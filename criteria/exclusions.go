package criteria

import "path/filepath"

// Exclusions is a name-glob filter consulted by all three canonical
// variants before anything else: a matching class, method or field is
// never visible, regardless of access. Supplemental feature (SPEC_FULL.md
// §3) modeled on platinummonkey-spoke's pkg/linter rule-suppression list,
// adapted from rule names to class/member identifiers.
//
// Patterns use filepath.Match syntax (e.g. "internal/*", "*$Generated").
// A nil Exclusions excludes nothing.
type Exclusions struct {
	ClassPatterns  []string
	MethodPatterns []string
	FieldPatterns  []string
}

func matchesAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}

func (e *Exclusions) excludesClass(name string) bool {
	if e == nil {
		return false
	}
	return matchesAny(e.ClassPatterns, name)
}

func (e *Exclusions) excludesMethod(name string) bool {
	if e == nil {
		return false
	}
	return matchesAny(e.MethodPatterns, name)
}

func (e *Exclusions) excludesField(name string) bool {
	if e == nil {
		return false
	}
	return matchesAny(e.FieldPatterns, name)
}
