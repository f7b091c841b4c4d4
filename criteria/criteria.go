// Package criteria implements the pluggable comparison policy of spec.md
// §4.3 (component C3): which members are visible, what constitutes a
// difference, and what constitutes a binary-incompatible difference.
package criteria

import "github.com/bradleyfalzon/vmcfdiff/info"

// Criteria is the policy a Differ consults for every class, method and
// field it considers. Implementations must be total: ValidClass/ValidMethod/ValidField
// never panic and always return a definite answer (spec.md §3 invariant).
type Criteria interface {
	ValidClass(c *info.ClassInfo) bool
	ValidMethod(m *info.MethodInfo) bool
	ValidField(f *info.FieldInfo) bool

	ClassDiffers(oldC, newC *info.ClassInfo) bool
	MethodDiffers(oldM, newM *info.MethodInfo) bool
	FieldDiffers(oldF, newF *info.FieldInfo) bool

	MethodDiffersBinary(oldM, newM *info.MethodInfo) bool
	FieldDiffersBinary(oldF, newF *info.FieldInfo) bool
}

// classAccessIgnoreMask is the set of bits a class access comparison
// ignores per spec.md §4.3: "super" and "synthetic" never contribute to a
// class-level difference on their own. The deprecated bit is deliberately
// NOT masked here — see the "deprecation resolution" note below.
const classAccessIgnoreMask = info.AccSuper | info.AccSynthetic

func classAccessDiffers(a, b info.AccessFlags) bool {
	return (a &^ classAccessIgnoreMask) != (b &^ classAccessIgnoreMask)
}

// memberAccessDiffers is the full access-bitmask comparison used by
// differs() for methods and fields.
//
// Deprecation resolution (spec.md §9 Open Questions): spec.md §4.3's table
// also lists "deprecated" among bits a class/member access comparison
// ignores, but §4.4.d's deprecation-only shortcut and §8 scenario 1 only
// make sense if differs() DOES notice a deprecated-bit flip — otherwise a
// member that gains only the deprecated bit would never even enter the
// differ's "changed" bucket (§4.4.b: changed is filtered down to entries
// where differs holds, §4.4.c), and classDeprecated/Deprecate would be
// unreachable dead protocol surface. This implementation includes the
// deprecated bit in differs() and relies exclusively on the
// clonedWithDeprecated probe (§4.1, §9) to recognize the deprecation-only
// case; differsBinary (below) masks the deprecated bit so a pure
// deprecation flip is never binary-incompatible on its own.
func memberAccessDiffers(a, b info.AccessFlags) bool {
	return a != b
}

// memberAccessDiffersBinary ignores the deprecated bit: toggling
// @Deprecated is never binary-breaking by itself.
func memberAccessDiffersBinary(a, b info.AccessFlags) bool {
	return (a &^ info.AccDeprecated) != (b &^ info.AccDeprecated)
}

// exceptionsDiffer reports whether two throws-clauses differ as sets;
// order and duplicates are ignored (spec.md §4.3).
func exceptionsDiffer(a, b []string) bool {
	return !setsEqual(setOf(a), setOf(b))
}

func setOf(ss []string) map[string]struct{} {
	m := make(map[string]struct{}, len(ss))
	for _, s := range ss {
		m[s] = struct{}{}
	}
	return m
}

func setsEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

func classSupernameOrInterfacesDiffer(oldC, newC *info.ClassInfo) bool {
	if oldC.Supername != newC.Supername {
		return true
	}
	return !stringSliceSetEqual(oldC.Interfaces, newC.Interfaces)
}

func stringSliceSetEqual(a, b []string) bool {
	return setsEqual(setOf(a), setOf(b))
}

func valueDiffers(a, b *info.Value) bool {
	return !a.Equal(b)
}

// classDiffersCommon implements the §4.3 table's "Class differs on" row,
// shared by all three canonical variants.
func classDiffersCommon(oldC, newC *info.ClassInfo) bool {
	return classAccessDiffers(oldC.Access, newC.Access) || classSupernameOrInterfacesDiffer(oldC, newC)
}

// methodDiffersCommon implements the §4.3 table's method row. The
// descriptor is never compared: it is part of the method key, so a
// descriptor change already manifests as a different key and is handled by
// add/remove, never by this function (spec.md §9 Open Question).
func methodDiffersCommon(oldM, newM *info.MethodInfo) bool {
	return memberAccessDiffers(oldM.Access, newM.Access) || exceptionsDiffer(oldM.Exceptions, newM.Exceptions)
}

func methodDiffersBinaryCommon(oldM, newM *info.MethodInfo) bool {
	return memberAccessDiffersBinary(oldM.Access, newM.Access)
}

// fieldDiffersCommon implements the §4.3 table's field row.
func fieldDiffersCommon(oldF, newF *info.FieldInfo) bool {
	return memberAccessDiffers(oldF.Access, newF.Access) || valueDiffers(oldF.Value, newF.Value)
}

func fieldDiffersBinaryCommon(oldF, newF *info.FieldInfo) bool {
	return memberAccessDiffersBinary(oldF.Access, newF.Access)
}
