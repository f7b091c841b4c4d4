package classreader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bradleyfalzon/vmcfdiff/info"
	"github.com/bradleyfalzon/vmcfdiff/vmcferr"
)

func TestReadClass_BuildsCompleteClassInfo(t *testing.T) {
	class, err := ReadClass(func(v Visitor) {
		v.VisitHeader(52, info.AccPublic, "a/B", "", "a/Root", []string{"a/Iface"})
		v.VisitField(info.AccPublic, "x", "I", "", &info.Value{Type: "I", Data: 0})
		v.VisitMethod(info.AccPublic, "m", "()V", "", nil)
		v.VisitEnd()
	})
	require.NoError(t, err)
	assert.Equal(t, "a/B", class.Name)
	assert.Equal(t, "a/Root", class.Supername)
	require.Contains(t, class.FieldMap, "x")
	require.Contains(t, class.MethodMap, "m()V")
}

func TestReadClass_DuplicateMethodKeyIsMalformed(t *testing.T) {
	_, err := ReadClass(func(v Visitor) {
		v.VisitHeader(52, info.AccPublic, "a/B", "", "", nil)
		v.VisitMethod(info.AccPublic, "m", "()V", "", nil)
		v.VisitMethod(info.AccPrivate, "m", "()V", "", nil)
		v.VisitEnd()
	})
	assert.ErrorIs(t, err, vmcferr.ErrMalformedClass)
}

func TestReadClass_MissingHeaderIsMalformed(t *testing.T) {
	_, err := ReadClass(func(v Visitor) {
		v.VisitEnd()
	})
	assert.ErrorIs(t, err, vmcferr.ErrMalformedClass)
}

func TestAdapter_ClassInfoPanicsBeforeVisitEnd(t *testing.T) {
	a := NewAdapter()
	a.VisitHeader(52, info.AccPublic, "a/B", "", "", nil)
	assert.Panics(t, func() { a.ClassInfo() }, "expected ClassInfo() to panic before VisitEnd")
}

func TestAdapter_Reset(t *testing.T) {
	a := NewAdapter()
	a.VisitHeader(52, info.AccPublic, "a/B", "", "", nil)
	a.VisitEnd()
	a.Reset()

	assert.Panics(t, func() { a.ClassInfo() }, "expected ClassInfo() to panic after Reset")
}
