// Package classreader turns a stream of external VMCF parser events into
// one info.ClassInfo (spec.md §4.2, component C2).
package classreader

import (
	"fmt"

	"github.com/bradleyfalzon/vmcfdiff/info"
	"github.com/bradleyfalzon/vmcfdiff/vmcferr"
)

// Visitor is the contract the external VMCF parser is assumed to drive:
// one visitHeader call, then any number of visitField/visitMethod calls in
// any order, then exactly one visitEnd.
type Visitor interface {
	VisitHeader(version int, access info.AccessFlags, name, signature, supername string, interfaces []string)
	VisitField(access info.AccessFlags, name, desc, signature string, value *info.Value)
	VisitMethod(access info.AccessFlags, name, desc, signature string, exceptions []string)
	VisitEnd()
}

// Adapter implements Visitor and accumulates one ClassInfo. It is reusable
// across classes via Reset, but is not concurrency-safe across classes; the
// recommended idiom (spec.md §5) is one Adapter per parse.
type Adapter struct {
	class   *info.ClassInfo
	ended   bool
	started bool
}

// NewAdapter returns a ready-to-use Adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Reset clears accumulated state so the Adapter can be reused for the next
// class in a stream.
func (a *Adapter) Reset() {
	a.class = nil
	a.ended = false
	a.started = false
}

func (a *Adapter) VisitHeader(version int, access info.AccessFlags, name, signature, supername string, interfaces []string) {
	a.started = true
	a.class = &info.ClassInfo{
		AbstractInfo: info.AbstractInfo{Access: access, Name: name},
		Version:      version,
		Signature:    signature,
		Supername:    supername,
		Interfaces:   append([]string(nil), interfaces...),
		MethodMap:    make(map[string]*info.MethodInfo),
		FieldMap:     make(map[string]*info.FieldInfo),
	}
}

func (a *Adapter) VisitField(access info.AccessFlags, name, desc, signature string, value *info.Value) {
	if a.class == nil {
		return
	}
	a.class.FieldMap[name] = &info.FieldInfo{
		AbstractInfo: info.AbstractInfo{Access: access, Name: name},
		ClassName:    a.class.Name,
		Desc:         desc,
		Signature:    signature,
		Value:        value,
	}
}

func (a *Adapter) VisitMethod(access info.AccessFlags, name, desc, signature string, exceptions []string) {
	if a.class == nil {
		return
	}
	key := info.MethodKey(name, desc)
	a.class.MethodMap[key] = &info.MethodInfo{
		AbstractInfo: info.AbstractInfo{Access: access, Name: name},
		ClassName:    a.class.Name,
		Desc:         desc,
		Signature:    signature,
		Exceptions:   append([]string(nil), exceptions...),
	}
}

func (a *Adapter) VisitEnd() {
	a.ended = true
}

// ClassInfo returns the accumulated class. It must only be called after
// VisitEnd; calling it before that is a caller bug, not a data error, so it
// panics rather than returning a zero value silently.
func (a *Adapter) ClassInfo() *info.ClassInfo {
	if !a.ended {
		panic("classreader: ClassInfo called before VisitEnd")
	}
	return a.class
}

// ReadClass drives a Visitor (via fn) against a fresh Adapter and returns
// the resulting ClassInfo, detecting duplicate method keys as
// vmcferr.ErrMalformedClass. fn is expected to call the four Visit* methods
// of the passed Visitor in the contract order; ReadClass does not itself
// talk to any parser (parsing bytes is an external collaborator per
// spec.md §1).
func ReadClass(fn func(Visitor)) (*info.ClassInfo, error) {
	a := NewAdapter()
	counting := &countingVisitor{Visitor: a, seen: make(map[string]int)}
	fn(counting)
	if !counting.started {
		return nil, vmcferr.Malformed("classreader.ReadClass", fmt.Errorf("visitEnd without a preceding visitHeader"))
	}
	if dup := counting.firstDuplicate(); dup != "" {
		return nil, vmcferr.Malformed("classreader.ReadClass", fmt.Errorf("duplicate method key %q", dup))
	}
	return a.ClassInfo(), nil
}

// countingVisitor wraps an Adapter to detect duplicate method keys as they
// are visited, without the Adapter itself needing to special-case the
// collision (spec.md §4.2: "collision indicates a malformed input").
type countingVisitor struct {
	Visitor
	started   bool
	seen      map[string]int
	duplicate string
}

func (c *countingVisitor) VisitHeader(version int, access info.AccessFlags, name, signature, supername string, interfaces []string) {
	c.started = true
	c.Visitor.VisitHeader(version, access, name, signature, supername, interfaces)
}

func (c *countingVisitor) VisitMethod(access info.AccessFlags, name, desc, signature string, exceptions []string) {
	key := info.MethodKey(name, desc)
	c.seen[key]++
	if c.seen[key] > 1 && c.duplicate == "" {
		c.duplicate = key
	}
	c.Visitor.VisitMethod(access, name, desc, signature, exceptions)
}

func (c *countingVisitor) firstDuplicate() string { return c.duplicate }
