package vmcfdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bradleyfalzon/vmcfdiff/criteria"
	"github.com/bradleyfalzon/vmcfdiff/delta"
	internalconfig "github.com/bradleyfalzon/vmcfdiff/internal/config"
	"github.com/bradleyfalzon/vmcfdiff/info"
)

func classWithMethod(name string, methodAccess info.AccessFlags) *info.ClassInfo {
	return &info.ClassInfo{
		AbstractInfo: info.AbstractInfo{Access: info.AccPublic, Name: name},
		MethodMap: map[string]*info.MethodInfo{
			"m()V": {AbstractInfo: info.AbstractInfo{Access: methodAccess, Name: "m"}, Desc: "()V"},
		},
		FieldMap: map[string]*info.FieldInfo{},
	}
}

func TestNew_Defaults(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	assert.NotNil(t, c.crit, "New() should default to a non-nil criteria")
	assert.NotNil(t, c.differ, "New() should build a Differ")
}

func TestChecker_Check_AddingPublicMethod(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	oldClasses := map[string]*info.ClassInfo{
		"a/X": {AbstractInfo: info.AbstractInfo{Access: info.AccPublic, Name: "a/X"}, MethodMap: map[string]*info.MethodInfo{}, FieldMap: map[string]*info.FieldInfo{}},
	}
	newClasses := map[string]*info.ClassInfo{
		"a/X": classWithMethod("a/X", info.AccPublic),
	}

	d, err := c.Check("1.0.0", "1.1.0", oldClasses, newClasses, false)
	require.NoError(t, err)
	require.Len(t, d.Differences(), 1)
	assert.Equal(t, delta.KindAdd, d.Differences()[0].Kind)
	assert.Equal(t, delta.BackwardCompatibleUser, d.Category())
}

func TestChecker_WithCriteria_SimpleIncludesPrivate(t *testing.T) {
	c, err := New(WithCriteria(criteria.NewSimple(true)))
	require.NoError(t, err)

	oldClasses := map[string]*info.ClassInfo{
		"a/X": {AbstractInfo: info.AbstractInfo{Access: info.AccPublic, Name: "a/X"}, MethodMap: map[string]*info.MethodInfo{}, FieldMap: map[string]*info.FieldInfo{}},
	}
	newClasses := map[string]*info.ClassInfo{
		"a/X": classWithMethod("a/X", info.AccPrivate),
	}

	d, err := c.Check("1.0.0", "1.1.0", oldClasses, newClasses, false)
	require.NoError(t, err)
	require.Len(t, d.Differences(), 1, "a private method should register as Add under Simple(true)")
	assert.Equal(t, delta.KindAdd, d.Differences()[0].Kind)
}

func TestChecker_WithConfig_SelectsCriteriaPreset(t *testing.T) {
	cfg := &internalconfig.CheckConfig{Criteria: "public_protected", ExtendedViewCacheSize: 64}
	c, err := New(WithConfig(cfg))
	require.NoError(t, err)

	oldClasses := map[string]*info.ClassInfo{
		"a/X": {AbstractInfo: info.AbstractInfo{Access: info.AccPublic, Name: "a/X"}, MethodMap: map[string]*info.MethodInfo{}, FieldMap: map[string]*info.FieldInfo{}},
	}
	newClasses := map[string]*info.ClassInfo{
		"a/X": classWithMethod("a/X", info.AccProtected),
	}

	d, err := c.Check("1.0.0", "1.1.0", oldClasses, newClasses, false)
	require.NoError(t, err)
	require.Len(t, d.Differences(), 1, "a protected method should register as Add under PublicProtected")
	assert.Equal(t, delta.KindAdd, d.Differences()[0].Kind)
}

func TestChecker_Check_ReusedAcrossCallsDoesNotLeakCache(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	firstOld := map[string]*info.ClassInfo{
		"a/ClassA": {
			AbstractInfo: info.AbstractInfo{Access: info.AccPublic, Name: "a/ClassA"},
			Supername:    "a/Root",
			MethodMap:    map[string]*info.MethodInfo{},
			FieldMap: map[string]*info.FieldInfo{
				"aField": {AbstractInfo: info.AbstractInfo{Access: info.AccPublic, Name: "aField"}},
			},
		},
	}
	firstNew := map[string]*info.ClassInfo{
		"a/ClassA": {AbstractInfo: info.AbstractInfo{Access: info.AccPublic, Name: "a/ClassA"}, Supername: "a/Root", MethodMap: map[string]*info.MethodInfo{}, FieldMap: map[string]*info.FieldInfo{}},
		"a/Root": {
			AbstractInfo: info.AbstractInfo{Access: info.AccPublic, Name: "a/Root"},
			MethodMap:    map[string]*info.MethodInfo{},
			FieldMap: map[string]*info.FieldInfo{
				"aField": {AbstractInfo: info.AbstractInfo{Access: info.AccPublic, Name: "aField"}},
			},
		},
	}
	first, err := c.Check("old", "new", firstOld, firstNew, false)
	require.NoError(t, err)
	for _, d := range first.Differences() {
		if d.ClassID == "a/ClassA" && d.Kind == delta.KindRemove {
			require.Fail(t, "first Check(): unexpected Remove", "%+v", d)
		}
	}

	secondOld := map[string]*info.ClassInfo{
		"a/ClassA": {
			AbstractInfo: info.AbstractInfo{Access: info.AccPublic, Name: "a/ClassA"},
			MethodMap:    map[string]*info.MethodInfo{},
			FieldMap: map[string]*info.FieldInfo{
				"aField": {AbstractInfo: info.AbstractInfo{Access: info.AccPublic, Name: "aField"}},
			},
		},
	}
	secondNew := map[string]*info.ClassInfo{
		"a/ClassA": {AbstractInfo: info.AbstractInfo{Access: info.AccPublic, Name: "a/ClassA"}, MethodMap: map[string]*info.MethodInfo{}, FieldMap: map[string]*info.FieldInfo{}},
	}
	second, err := c.Check("old", "new", secondOld, secondNew, false)
	require.NoError(t, err)
	var found bool
	for _, d := range second.Differences() {
		if d.ClassID == "a/ClassA" && d.Kind == delta.KindRemove && d.Entity == delta.EntityField {
			found = true
		}
	}
	assert.True(t, found, "second Check(): aField should be reported removed, not suppressed by a stale cached closure from the first Check()")
}

func TestChecker_Check_DevelopmentBaselinePropagates(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	oldClasses := map[string]*info.ClassInfo{
		"a/X": {AbstractInfo: info.AbstractInfo{Access: info.AccPublic, Name: "a/X"}, MethodMap: map[string]*info.MethodInfo{}, FieldMap: map[string]*info.FieldInfo{}},
	}
	newClasses := map[string]*info.ClassInfo{
		"a/X": {AbstractInfo: info.AbstractInfo{Access: info.AccPublic, Name: "a/X"}, MethodMap: map[string]*info.MethodInfo{}, FieldMap: map[string]*info.FieldInfo{}},
	}

	d, err := c.Check("0.1.0", "0.1.0", oldClasses, newClasses, true)
	require.NoError(t, err)
	assert.True(t, d.OldIsDevelopment, "Check() should record oldIsDevelopment on the Delta")
	dev := &delta.Version{Major: 0, Minor: 1, Patch: 0}
	ok, err := d.Validate(dev, &delta.Version{Major: 0, Minor: 9, Patch: 0})
	require.NoError(t, err)
	assert.True(t, ok, "Validate() with a development baseline should be true")
}
