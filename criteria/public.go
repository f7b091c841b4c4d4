package criteria

import "github.com/bradleyfalzon/vmcfdiff/info"

// Public is the strictest canonical variant: only non-synthetic, public
// entities are visible.
type Public struct {
	Exclusions *Exclusions
}

func NewPublic() *Public { return &Public{} }

func (p *Public) ValidClass(c *info.ClassInfo) bool {
	return !c.Access.IsSynthetic() && c.Access.IsPublic() && !p.Exclusions.excludesClass(c.Name)
}

func (p *Public) ValidMethod(m *info.MethodInfo) bool {
	return !m.Access.IsSynthetic() && m.Access.IsPublic() && !p.Exclusions.excludesMethod(m.Name)
}

func (p *Public) ValidField(f *info.FieldInfo) bool {
	return !f.Access.IsSynthetic() && f.Access.IsPublic() && !p.Exclusions.excludesField(f.Name)
}

func (p *Public) ClassDiffers(oldC, newC *info.ClassInfo) bool  { return classDiffersCommon(oldC, newC) }
func (p *Public) MethodDiffers(oldM, newM *info.MethodInfo) bool {
	return methodDiffersCommon(oldM, newM)
}
func (p *Public) FieldDiffers(oldF, newF *info.FieldInfo) bool { return fieldDiffersCommon(oldF, newF) }

func (p *Public) MethodDiffersBinary(oldM, newM *info.MethodInfo) bool {
	return methodDiffersBinaryCommon(oldM, newM)
}
func (p *Public) FieldDiffersBinary(oldF, newF *info.FieldInfo) bool {
	return fieldDiffersBinaryCommon(oldF, newF)
}
