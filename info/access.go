// Package info holds the immutable, language-neutral class-metadata model
// that the rest of vmcfdiff reads but never mutates.
package info

// AccessFlags is a bitmask of VMCF's access/modifier bits. Each flag has its
// own bit, assigned in declaration order (1 << iota). These positions are not
// the VMCF specification's values (AccInterface is 0x40 here, not 0x200), so
// a parser's raw access word does not map onto AccessFlags without
// translation.
type AccessFlags uint32

const (
	AccPublic AccessFlags = 1 << iota
	AccPrivate
	AccProtected
	AccStatic
	AccFinal
	AccSuper
	AccInterface
	AccAbstract
	AccSynthetic
	AccAnnotation
	AccEnum
	AccBridge
	AccVarargs
	AccNative
	AccSynchronized
	AccStrict
	AccTransient
	AccVolatile
	AccDeprecated
)

func (a AccessFlags) has(bit AccessFlags) bool { return a&bit != 0 }

func (a AccessFlags) IsPublic() bool       { return a.has(AccPublic) }
func (a AccessFlags) IsPrivate() bool      { return a.has(AccPrivate) }
func (a AccessFlags) IsProtected() bool    { return a.has(AccProtected) }
func (a AccessFlags) IsStatic() bool       { return a.has(AccStatic) }
func (a AccessFlags) IsFinal() bool        { return a.has(AccFinal) }
func (a AccessFlags) IsSuper() bool        { return a.has(AccSuper) }
func (a AccessFlags) IsInterface() bool    { return a.has(AccInterface) }
func (a AccessFlags) IsAbstract() bool     { return a.has(AccAbstract) }
func (a AccessFlags) IsSynthetic() bool    { return a.has(AccSynthetic) }
func (a AccessFlags) IsAnnotation() bool   { return a.has(AccAnnotation) }
func (a AccessFlags) IsEnum() bool         { return a.has(AccEnum) }
func (a AccessFlags) IsBridge() bool       { return a.has(AccBridge) }
func (a AccessFlags) IsVarargs() bool      { return a.has(AccVarargs) }
func (a AccessFlags) IsNative() bool       { return a.has(AccNative) }
func (a AccessFlags) IsSynchronized() bool { return a.has(AccSynchronized) }
func (a AccessFlags) IsStrict() bool       { return a.has(AccStrict) }
func (a AccessFlags) IsTransient() bool    { return a.has(AccTransient) }
func (a AccessFlags) IsVolatile() bool     { return a.has(AccVolatile) }
func (a AccessFlags) IsDeprecated() bool   { return a.has(AccDeprecated) }

// IsPackagePrivate reports the absence of public, protected and private:
// VMCF has no dedicated bit for it, the spec synthesizes the predicate.
func (a AccessFlags) IsPackagePrivate() bool {
	return !a.IsPublic() && !a.IsProtected() && !a.IsPrivate()
}

// WithDeprecated returns a copy of a with the deprecated bit forced on.
func (a AccessFlags) WithDeprecated() AccessFlags {
	return a | AccDeprecated
}
