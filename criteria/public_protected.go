package criteria

import "github.com/bradleyfalzon/vmcfdiff/info"

// PublicProtected widens Public's visibility to also include protected
// entities; difference rules are otherwise identical.
type PublicProtected struct {
	Exclusions *Exclusions
}

func NewPublicProtected() *PublicProtected { return &PublicProtected{} }

func (p *PublicProtected) ValidClass(c *info.ClassInfo) bool {
	return !c.Access.IsSynthetic() && (c.Access.IsPublic() || c.Access.IsProtected()) && !p.Exclusions.excludesClass(c.Name)
}

func (p *PublicProtected) ValidMethod(m *info.MethodInfo) bool {
	return !m.Access.IsSynthetic() && (m.Access.IsPublic() || m.Access.IsProtected()) && !p.Exclusions.excludesMethod(m.Name)
}

func (p *PublicProtected) ValidField(f *info.FieldInfo) bool {
	return !f.Access.IsSynthetic() && (f.Access.IsPublic() || f.Access.IsProtected()) && !p.Exclusions.excludesField(f.Name)
}

func (p *PublicProtected) ClassDiffers(oldC, newC *info.ClassInfo) bool {
	return classDiffersCommon(oldC, newC)
}
func (p *PublicProtected) MethodDiffers(oldM, newM *info.MethodInfo) bool {
	return methodDiffersCommon(oldM, newM)
}
func (p *PublicProtected) FieldDiffers(oldF, newF *info.FieldInfo) bool {
	return fieldDiffersCommon(oldF, newF)
}

func (p *PublicProtected) MethodDiffersBinary(oldM, newM *info.MethodInfo) bool {
	return methodDiffersBinaryCommon(oldM, newM)
}
func (p *PublicProtected) FieldDiffersBinary(oldF, newF *info.FieldInfo) bool {
	return fieldDiffersBinaryCommon(oldF, newF)
}
