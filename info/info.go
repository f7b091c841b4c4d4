package info

import "fmt"

// AbstractInfo is the shared header every Info kind embeds: an access
// bitmask plus the entity's identifier. Classes use VM-internal form
// (slash separated); members use their simple name.
type AbstractInfo struct {
	Access AccessFlags
	Name   string
}

// IsDeprecated tests the deprecated bit alone, independent of visibility.
func (a AbstractInfo) IsDeprecated() bool { return a.Access.IsDeprecated() }

// Value is a compile-time constant tagged with its wire type, so that a
// constant `0` typed `int` and the same constant typed `long` compare as
// different (spec.md §4.3, "field value change").
type Value struct {
	Type string // VMCF wire-type tag, e.g. "I", "J", "Ljava/lang/String;"
	Data interface{}
}

func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	return v.Type == o.Type && v.Data == o.Data
}

// ClassInfo is the projection of one VMCF class into the language-neutral
// model. Immutable after construction by classreader.Adapter.
type ClassInfo struct {
	AbstractInfo
	Version    int
	Signature  string // optional; "" means absent
	Supername  string // optional; "" means this is the root class
	Interfaces []string
	MethodMap  map[string]*MethodInfo // key: name+desc
	FieldMap   map[string]*FieldInfo  // key: name
}

func (c *ClassInfo) String() string {
	return fmt.Sprintf("class %s", c.Name)
}

// HasSupername reports whether this class declares a parent.
func (c *ClassInfo) HasSupername() bool { return c.Supername != "" }

// MethodInfo is the projection of one VMCF method.
type MethodInfo struct {
	AbstractInfo
	ClassName  string
	Desc       string
	Signature  string
	Exceptions []string // declared checked exceptions, may be nil
}

// Key is the method-key used in ClassInfo.MethodMap: name+descriptor.
func (m *MethodInfo) Key() string { return MethodKey(m.Name, m.Desc) }

// MethodKey concatenates name and descriptor the way spec.md §3 defines
// the method key, so callers building a map can reuse the exact rule.
func MethodKey(name, desc string) string { return name + desc }

// CloneWithDeprecated returns a new MethodInfo with the deprecated bit
// forcibly set and everything else unchanged. Used by the differ to probe
// whether a change was deprecation-only (spec.md §4.1/§9).
func (m *MethodInfo) CloneWithDeprecated() *MethodInfo {
	clone := *m
	clone.Access = m.Access.WithDeprecated()
	clone.Exceptions = append([]string(nil), m.Exceptions...)
	return &clone
}

// FieldInfo is the projection of one VMCF field.
type FieldInfo struct {
	AbstractInfo
	ClassName string
	Desc      string
	Signature string
	Value     *Value
}

// CloneWithDeprecated returns a new FieldInfo with the deprecated bit
// forcibly set and everything else unchanged.
func (f *FieldInfo) CloneWithDeprecated() *FieldInfo {
	clone := *f
	clone.Access = f.Access.WithDeprecated()
	return &clone
}

// CloneClassWithDeprecated returns a new ClassInfo with the deprecated bit
// forcibly set. The member maps are shared by reference since the probe
// never looks past the class's own header fields.
func CloneClassWithDeprecated(c *ClassInfo) *ClassInfo {
	clone := *c
	clone.Access = c.Access.WithDeprecated()
	return &clone
}
