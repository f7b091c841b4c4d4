package delta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bradleyfalzon/vmcfdiff/vmcferr"
)

func TestDelta_Category(t *testing.T) {
	tests := []struct {
		name  string
		kinds []Kind
		want  Category
	}{
		{"empty", nil, BackwardCompatibleImplementer},
		{"only compat change", []Kind{KindCompatChange}, BackwardCompatibleImplementer},
		{"only deprecate", []Kind{KindDeprecate}, BackwardCompatibleUser},
		{"deprecate plus add", []Kind{KindDeprecate, KindAdd}, BackwardCompatibleUser},
		{"add", []Kind{KindAdd}, BackwardCompatibleUser},
		{"remove flips to non-backward-compatible", []Kind{KindAdd, KindRemove}, NonBackwardCompatible},
		{"change flips to non-backward-compatible", []Kind{KindDeprecate, KindChange}, NonBackwardCompatible},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var diffs []Difference
			for i, k := range tt.kinds {
				diffs = append(diffs, Difference{Kind: k, Entity: EntityMethod, ClassID: "a/B", Name: "m" + string(rune('0'+i))})
			}
			d := NewDelta("run", "1.0.0", "1.1.0", false, diffs)
			assert.Equal(t, tt.want, d.Category())
		})
	}
}

func TestNewDelta_SortsDeterministically(t *testing.T) {
	diffs := []Difference{
		{Kind: KindChange, Entity: EntityMethod, ClassID: "b/Z", Name: "m"},
		{Kind: KindAdd, Entity: EntityClass, ClassID: "a/A", Name: "a/A"},
		{Kind: KindRemove, Entity: EntityField, ClassID: "a/A", Name: "f"},
	}
	d := NewDelta("run", "old", "new", false, diffs)
	got := d.Differences()
	require.Len(t, got, 3)
	assert.Equal(t, "a/A", got[0].ClassID)
	assert.Equal(t, "a/A", got[1].ClassID)
	assert.Equal(t, "b/Z", got[2].ClassID)
	assert.Equal(t, EntityClass, got[0].Entity, "expected class entity before field entity within a/A")
	assert.Equal(t, EntityField, got[1].Entity)
}

func TestDelta_Infer(t *testing.T) {
	d := NewDelta("run", "1.2.3", "1.3.0", false, []Difference{
		{Kind: KindAdd, Entity: EntityMethod, ClassID: "a/B", Name: "y()V"},
	})
	baseline := &Version{Major: 1, Minor: 2, Patch: 3}
	got, err := d.Infer(baseline)
	require.NoError(t, err)
	assert.True(t, got.Equal(&Version{Major: 1, Minor: 3}))
}

func TestDelta_Validate_Scenario3_AddingMethod(t *testing.T) {
	d := NewDelta("run", "1.2.3", "1.3.0", false, []Difference{
		{Kind: KindAdd, Entity: EntityMethod, ClassID: "a/B", Name: "y()V"},
	})
	previous := &Version{Major: 1, Minor: 2, Patch: 3}

	ok, err := d.Validate(previous, &Version{Major: 1, Minor: 3, Patch: 0})
	require.NoError(t, err)
	assert.True(t, ok, "Validate(1.2.3, 1.3.0) should be true")

	ok, err = d.Validate(previous, &Version{Major: 1, Minor: 2, Patch: 4})
	require.NoError(t, err)
	assert.False(t, ok, "Validate(1.2.3, 1.2.4) should be false")
}

func TestDelta_Validate_Scenario4_RemovingField(t *testing.T) {
	d := NewDelta("run", "1.2.3", "2.0.0", false, []Difference{
		{Kind: KindRemove, Entity: EntityField, ClassID: "a/B", Name: "f"},
	})
	previous := &Version{Major: 1, Minor: 2, Patch: 3}

	ok, err := d.Validate(previous, &Version{Major: 1, Minor: 3, Patch: 0})
	require.NoError(t, err)
	assert.False(t, ok, "Validate(1.2.3, 1.3.0) should be false")

	ok, err = d.Validate(previous, &Version{Major: 2})
	require.NoError(t, err)
	assert.True(t, ok, "Validate(1.2.3, 2.0.0) should be true")
}

func TestDelta_Validate_Scenario6_PreReleaseOrdering(t *testing.T) {
	d := NewDelta("run", "1.1.0-rc1", "1.1.0-rc2", false, nil)
	previous := &Version{Major: 1, Minor: 1, Patch: 0, Sep: "-", PreRelease: "rc1"}
	current := &Version{Major: 1, Minor: 1, Patch: 0, Sep: "-", PreRelease: "rc2"}

	ok, err := d.Validate(previous, current)
	require.NoError(t, err)
	assert.True(t, ok, "Validate(1.1.0-rc1, 1.1.0-rc2) with an empty Delta should be true")
}

func TestDelta_Validate_DevelopmentBaselineAllowsAnything(t *testing.T) {
	d := NewDelta("run", "0.1.0", "0.2.0", true, []Difference{
		{Kind: KindRemove, Entity: EntityMethod, ClassID: "a/B", Name: "m"},
	})
	dev := &Version{Major: 0, Minor: 1, Patch: 0}
	ok, err := d.Validate(dev, &Version{Major: 0, Minor: 1, Patch: 1})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDelta_Validate_CurrentNotGreaterFails(t *testing.T) {
	d := NewDelta("run", "1.0.0", "1.0.0", false, nil)
	v := &Version{Major: 1}
	_, err := d.Validate(v, v)
	assert.ErrorIs(t, err, vmcferr.ErrInvalidArgument)
}

func TestDelta_Describe(t *testing.T) {
	d := NewDelta("run", "1.0.0", "1.1.0", false, []Difference{
		{Kind: KindAdd, Entity: EntityMethod, ClassID: "a/B", Name: "y()V"},
	})
	assert.NotEmpty(t, d.Describe())
}
