package diff

import (
	"github.com/bradleyfalzon/vmcfdiff/delta"
	"github.com/bradleyfalzon/vmcfdiff/info"
)

// AccumulatingHandler is the canonical Handler: it buffers every emitted
// event into a delta.Difference and exposes the resulting Delta once EndDiff
// fires (spec.md §4.6). StartDiff records the two labels; the other boundary
// events (Start*/End*/Contains) carry no payload of their own and are
// ignored here.
type AccumulatingHandler struct {
	runID            string
	oldIsDevelopment bool
	oldLabel         string
	newLabel         string
	diffs            []delta.Difference
	result           *delta.Delta
}

// NewAccumulatingHandler builds an accumulator. runID is an opaque
// correlation id for the produced Delta (the Checker facade supplies a
// UUID); oldIsDevelopment flags whether the old snapshot's version is pre-1.0
// and is recorded as the produced Delta's OldIsDevelopment. Delta.Infer and
// Delta.Validate do not read it: they judge development status from the
// Version passed to them.
func NewAccumulatingHandler(runID string, oldIsDevelopment bool) *AccumulatingHandler {
	return &AccumulatingHandler{runID: runID, oldIsDevelopment: oldIsDevelopment}
}

// Result returns the accumulated Delta. Valid only after EndDiff has fired.
func (h *AccumulatingHandler) Result() *delta.Delta { return h.result }

func (h *AccumulatingHandler) StartDiff(oldLabel, newLabel string) {
	h.oldLabel = oldLabel
	h.newLabel = newLabel
}

func (h *AccumulatingHandler) StartOldContents()        {}
func (h *AccumulatingHandler) OldContains(string)        {}
func (h *AccumulatingHandler) EndOldContents()          {}
func (h *AccumulatingHandler) StartNewContents()        {}
func (h *AccumulatingHandler) NewContains(string)        {}
func (h *AccumulatingHandler) EndNewContents()          {}

func (h *AccumulatingHandler) StartRemoved() {}
func (h *AccumulatingHandler) EndRemoved()   {}
func (h *AccumulatingHandler) StartAdded()   {}
func (h *AccumulatingHandler) EndAdded()     {}
func (h *AccumulatingHandler) StartChanged() {}
func (h *AccumulatingHandler) EndChanged()   {}

func (h *AccumulatingHandler) StartClassChanged(string) {}
func (h *AccumulatingHandler) EndClassChanged(string)   {}

func (h *AccumulatingHandler) ClassRemoved(classID string, old *info.ClassInfo) {
	h.add(delta.KindRemove, delta.EntityClass, classID, classID, old, nil)
}

func (h *AccumulatingHandler) ClassAdded(classID string, new *info.ClassInfo) {
	h.add(delta.KindAdd, delta.EntityClass, classID, classID, nil, new)
}

func (h *AccumulatingHandler) ClassChanged(classID string, old, new *info.ClassInfo) {
	h.add(delta.KindChange, delta.EntityClass, classID, classID, old, new)
}

func (h *AccumulatingHandler) ClassDeprecated(classID string, old, new *info.ClassInfo) {
	h.add(delta.KindDeprecate, delta.EntityClass, classID, classID, old, new)
}

func (h *AccumulatingHandler) FieldRemoved(classID, name string, old *info.FieldInfo) {
	h.add(delta.KindRemove, delta.EntityField, classID, name, old, nil)
}

func (h *AccumulatingHandler) FieldAdded(classID, name string, new *info.FieldInfo) {
	h.add(delta.KindAdd, delta.EntityField, classID, name, nil, new)
}

func (h *AccumulatingHandler) FieldChanged(classID, name string, old, new *info.FieldInfo) {
	h.add(delta.KindChange, delta.EntityField, classID, name, old, new)
}

func (h *AccumulatingHandler) FieldChangedCompat(classID, name string, old, new *info.FieldInfo) {
	h.add(delta.KindCompatChange, delta.EntityField, classID, name, old, new)
}

func (h *AccumulatingHandler) FieldDeprecated(classID, name string, old, new *info.FieldInfo) {
	h.add(delta.KindDeprecate, delta.EntityField, classID, name, old, new)
}

func (h *AccumulatingHandler) MethodRemoved(classID, key string, old *info.MethodInfo) {
	h.add(delta.KindRemove, delta.EntityMethod, classID, key, old, nil)
}

func (h *AccumulatingHandler) MethodAdded(classID, key string, new *info.MethodInfo) {
	h.add(delta.KindAdd, delta.EntityMethod, classID, key, nil, new)
}

func (h *AccumulatingHandler) MethodChanged(classID, key string, old, new *info.MethodInfo) {
	h.add(delta.KindChange, delta.EntityMethod, classID, key, old, new)
}

func (h *AccumulatingHandler) MethodChangedCompat(classID, key string, old, new *info.MethodInfo) {
	h.add(delta.KindCompatChange, delta.EntityMethod, classID, key, old, new)
}

func (h *AccumulatingHandler) MethodDeprecated(classID, key string, old, new *info.MethodInfo) {
	h.add(delta.KindDeprecate, delta.EntityMethod, classID, key, old, new)
}

func (h *AccumulatingHandler) EndDiff() {
	h.result = delta.NewDelta(h.runID, h.oldLabel, h.newLabel, h.oldIsDevelopment, h.diffs)
}

func (h *AccumulatingHandler) add(kind delta.Kind, entity delta.EntityKind, classID, name string, old, new interface{}) {
	h.diffs = append(h.diffs, delta.Difference{
		Kind:    kind,
		Entity:  entity,
		ClassID: classID,
		Name:    name,
		OldInfo: old,
		NewInfo: new,
	})
}
