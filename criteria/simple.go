package criteria

import "github.com/bradleyfalzon/vmcfdiff/info"

// Simple includes every non-synthetic entity, and private ones too when
// IncludePrivate is set.
type Simple struct {
	IncludePrivate bool
	Exclusions     *Exclusions
}

func NewSimple(includePrivate bool) *Simple {
	return &Simple{IncludePrivate: includePrivate}
}

func (s *Simple) visible(access info.AccessFlags) bool {
	if access.IsSynthetic() {
		return false
	}
	if access.IsPrivate() && !s.IncludePrivate {
		return false
	}
	return true
}

func (s *Simple) ValidClass(c *info.ClassInfo) bool {
	return s.visible(c.Access) && !s.Exclusions.excludesClass(c.Name)
}

func (s *Simple) ValidMethod(m *info.MethodInfo) bool {
	return s.visible(m.Access) && !s.Exclusions.excludesMethod(m.Name)
}

func (s *Simple) ValidField(f *info.FieldInfo) bool {
	return s.visible(f.Access) && !s.Exclusions.excludesField(f.Name)
}

func (s *Simple) ClassDiffers(oldC, newC *info.ClassInfo) bool { return classDiffersCommon(oldC, newC) }
func (s *Simple) MethodDiffers(oldM, newM *info.MethodInfo) bool {
	return methodDiffersCommon(oldM, newM)
}
func (s *Simple) FieldDiffers(oldF, newF *info.FieldInfo) bool { return fieldDiffersCommon(oldF, newF) }

func (s *Simple) MethodDiffersBinary(oldM, newM *info.MethodInfo) bool {
	return methodDiffersBinaryCommon(oldM, newM)
}
func (s *Simple) FieldDiffersBinary(oldF, newF *info.FieldInfo) bool {
	return fieldDiffersBinaryCommon(oldF, newF)
}
