package diff

import (
	"errors"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/bradleyfalzon/vmcfdiff/criteria"
	"github.com/bradleyfalzon/vmcfdiff/info"
	"github.com/bradleyfalzon/vmcfdiff/vmcferr"
)

const defaultExtendedViewCacheSize = 256

// Differ implements spec.md §4.4: a deterministic, single-threaded
// comparison between two class snapshots, pushing events into a Handler.
// The zero value is not usable; build one with NewDiffer. A Differ is meant
// to be reused across many Diff calls (that's what WithCache is for in the
// root Checker), but the cache is scoped to a single call's newClasses map
// and is purged at the start of every Diff.
type Differ struct {
	cache *lru.Cache[string, extendedView]
}

// NewDiffer builds a Differ. cacheSize bounds the extended-new-view memo
// (one entry per "both" class visited within a single Diff call); 0
// selects a sane default.
func NewDiffer(cacheSize int) (*Differ, error) {
	if cacheSize <= 0 {
		cacheSize = defaultExtendedViewCacheSize
	}
	c, err := lru.New[string, extendedView](cacheSize)
	if err != nil {
		return nil, vmcferr.Invalid("NewDiffer", err)
	}
	return &Differ{cache: c}, nil
}

// extendedView is the "what does this new class appear to offer, including
// inherited members" closure of spec.md §4.4.a, reduced to the key sets the
// inherited-member reconciliation needs.
type extendedView struct {
	methodKeys map[string]struct{}
	fieldKeys  map[string]struct{}
}

// Diff drives handler through the full event stream for one comparison
// (spec.md §4.4). Classes are visited in sorted classId order; within a
// class, fields are emitted before methods, each in sorted key order.
func (d *Differ) Diff(h Handler, crit criteria.Criteria, oldLabel, newLabel string, oldClasses, newClasses map[string]*info.ClassInfo) error {
	if h == nil || crit == nil {
		return vmcferr.Invalid("Differ.Diff", errors.New("handler and criteria must be non-nil"))
	}

	// The extended-new-view cache is keyed by classID alone, so it must not
	// survive past this call: a Checker keeps one Differ for its whole
	// lifetime (that's the point of WithCache), and a second Diff against a
	// different newClasses map reusing a classID would otherwise read back
	// the previous call's stale inherited-member closure.
	d.cache.Purge()

	h.StartDiff(oldLabel, newLabel)

	oldIDs := sortedClassIDs(oldClasses)
	newIDs := sortedClassIDs(newClasses)

	h.StartOldContents()
	for _, id := range oldIDs {
		h.OldContains(id)
	}
	h.EndOldContents()

	h.StartNewContents()
	for _, id := range newIDs {
		h.NewContains(id)
	}
	h.EndNewContents()

	onlyOld, onlyNew, both := partitionClassIDs(oldClasses, newClasses)

	h.StartRemoved()
	for _, id := range onlyOld {
		c := oldClasses[id]
		if crit.ValidClass(c) {
			h.ClassRemoved(id, c)
		}
	}
	h.EndRemoved()

	h.StartAdded()
	for _, id := range onlyNew {
		c := newClasses[id]
		if crit.ValidClass(c) {
			h.ClassAdded(id, c)
		}
	}
	h.EndAdded()

	h.StartChanged()
	for _, id := range both {
		oldC := oldClasses[id]
		newC := newClasses[id]
		if !crit.ValidClass(oldC) && !crit.ValidClass(newC) {
			continue
		}
		d.diffClass(h, crit, id, oldC, newC, newClasses)
	}
	h.EndChanged()

	h.EndDiff()
	return nil
}

func (d *Differ) diffClass(h Handler, crit criteria.Criteria, id string, oldC, newC *info.ClassInfo, newClasses map[string]*info.ClassInfo) {
	ext := d.extendedNewView(id, newClasses)

	removedFields, addedFields, changedFields := partitionFields(oldC, newC, crit)
	removedFields = subtractStrings(removedFields, ext.fieldKeys)

	removedMethods, addedMethods, changedMethods := partitionMethods(oldC, newC, crit)
	removedMethods = subtractStrings(removedMethods, ext.methodKeys)

	changedFields = filterFields(changedFields, oldC, newC, crit.FieldDiffers)
	changedMethods = filterMethods(changedMethods, oldC, newC, crit.MethodDiffers)

	classDiffers := crit.ClassDiffers(oldC, newC)
	if len(removedFields) == 0 && len(addedFields) == 0 && len(removedMethods) == 0 &&
		len(addedMethods) == 0 && len(changedFields) == 0 && len(changedMethods) == 0 && !classDiffers {
		return
	}

	h.StartClassChanged(id)

	h.StartRemoved()
	for _, name := range sortedStrings(removedFields) {
		h.FieldRemoved(id, name, oldC.FieldMap[name])
	}
	for _, key := range sortedStrings(removedMethods) {
		h.MethodRemoved(id, key, oldC.MethodMap[key])
	}
	h.EndRemoved()

	h.StartAdded()
	for _, name := range sortedStrings(addedFields) {
		h.FieldAdded(id, name, newC.FieldMap[name])
	}
	for _, key := range sortedStrings(addedMethods) {
		h.MethodAdded(id, key, newC.MethodMap[key])
	}
	h.EndAdded()

	if classDiffers {
		if isDeprecationOnlyClass(crit, oldC, newC) {
			h.ClassDeprecated(id, oldC, newC)
		} else {
			h.ClassChanged(id, oldC, newC)
		}
	}

	for _, name := range sortedStrings(changedFields) {
		oldF, newF := oldC.FieldMap[name], newC.FieldMap[name]
		emitFieldChange(h, crit, id, name, oldF, newF)
	}
	for _, key := range sortedStrings(changedMethods) {
		oldM, newM := oldC.MethodMap[key], newC.MethodMap[key]
		emitMethodChange(h, crit, id, key, oldM, newM)
	}

	h.EndClassChanged(id)
}

func isDeprecationOnlyClass(crit criteria.Criteria, oldC, newC *info.ClassInfo) bool {
	if oldC.IsDeprecated() || !newC.IsDeprecated() {
		return false
	}
	return !crit.ClassDiffers(info.CloneClassWithDeprecated(oldC), newC)
}

func emitFieldChange(h Handler, crit criteria.Criteria, classID, name string, oldF, newF *info.FieldInfo) {
	if !oldF.IsDeprecated() && newF.IsDeprecated() && !crit.FieldDiffers(oldF.CloneWithDeprecated(), newF) {
		h.FieldDeprecated(classID, name, oldF, newF)
		return
	}
	if crit.FieldDiffersBinary(oldF, newF) {
		h.FieldChanged(classID, name, oldF, newF)
		return
	}
	h.FieldChangedCompat(classID, name, oldF, newF)
}

func emitMethodChange(h Handler, crit criteria.Criteria, classID, key string, oldM, newM *info.MethodInfo) {
	if !oldM.IsDeprecated() && newM.IsDeprecated() && !crit.MethodDiffers(oldM.CloneWithDeprecated(), newM) {
		h.MethodDeprecated(classID, key, oldM, newM)
		return
	}
	if crit.MethodDiffersBinary(oldM, newM) {
		h.MethodChanged(classID, key, oldM, newM)
		return
	}
	h.MethodChangedCompat(classID, key, oldM, newM)
}

// partitionFields computes spec.md §4.4.b's removed/added/changed sets for
// fields, before the inherited-member subtraction. changed is the
// intersection of old's visible keys with new's raw key presence: a field
// that survives under a different visibility is still "changed", not
// silently dropped, and criteria.FieldDiffers sorts out the substance.
func partitionFields(oldC, newC *info.ClassInfo, crit criteria.Criteria) (removed, added, changed map[string]struct{}) {
	removed = map[string]struct{}{}
	added = map[string]struct{}{}
	changed = map[string]struct{}{}
	for name, f := range oldC.FieldMap {
		if crit.ValidField(f) {
			removed[name] = struct{}{}
		}
	}
	for name, f := range newC.FieldMap {
		if crit.ValidField(f) {
			added[name] = struct{}{}
		}
	}
	for name := range removed {
		if _, ok := newC.FieldMap[name]; ok {
			changed[name] = struct{}{}
		}
	}
	for name := range changed {
		delete(removed, name)
		delete(added, name)
	}
	return removed, added, changed
}

func partitionMethods(oldC, newC *info.ClassInfo, crit criteria.Criteria) (removed, added, changed map[string]struct{}) {
	removed = map[string]struct{}{}
	added = map[string]struct{}{}
	changed = map[string]struct{}{}
	for key, m := range oldC.MethodMap {
		if crit.ValidMethod(m) {
			removed[key] = struct{}{}
		}
	}
	for key, m := range newC.MethodMap {
		if crit.ValidMethod(m) {
			added[key] = struct{}{}
		}
	}
	for key := range removed {
		if _, ok := newC.MethodMap[key]; ok {
			changed[key] = struct{}{}
		}
	}
	for key := range changed {
		delete(removed, key)
		delete(added, key)
	}
	return removed, added, changed
}

func filterFields(keys map[string]struct{}, oldC, newC *info.ClassInfo, differs func(a, b *info.FieldInfo) bool) map[string]struct{} {
	out := map[string]struct{}{}
	for name := range keys {
		if differs(oldC.FieldMap[name], newC.FieldMap[name]) {
			out[name] = struct{}{}
		}
	}
	return out
}

func filterMethods(keys map[string]struct{}, oldC, newC *info.ClassInfo, differs func(a, b *info.MethodInfo) bool) map[string]struct{} {
	out := map[string]struct{}{}
	for key := range keys {
		if differs(oldC.MethodMap[key], newC.MethodMap[key]) {
			out[key] = struct{}{}
		}
	}
	return out
}

func subtractStrings(a, b map[string]struct{}) map[string]struct{} {
	out := map[string]struct{}{}
	for k := range a {
		if _, ok := b[k]; !ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func sortedStrings(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedClassIDs(m map[string]*info.ClassInfo) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// partitionClassIDs splits the union of two class maps' keys into
// onlyOld, onlyNew and both, each sorted.
func partitionClassIDs(oldClasses, newClasses map[string]*info.ClassInfo) (onlyOld, onlyNew, both []string) {
	for id := range oldClasses {
		if _, ok := newClasses[id]; ok {
			both = append(both, id)
		} else {
			onlyOld = append(onlyOld, id)
		}
	}
	for id := range newClasses {
		if _, ok := oldClasses[id]; !ok {
			onlyNew = append(onlyNew, id)
		}
	}
	sort.Strings(onlyOld)
	sort.Strings(onlyNew)
	sort.Strings(both)
	return onlyOld, onlyNew, both
}

// extendedNewView builds (and memoizes, for the duration of the enclosing
// Diff call) the inherited-member closure for classID within newClasses,
// walking the supername chain with a visited set to defend against cycles
// (spec.md §9). The cache is purged at the top of Diff, so memoization
// never leaks across calls even though a Differ itself is long-lived.
func (d *Differ) extendedNewView(classID string, newClasses map[string]*info.ClassInfo) extendedView {
	if cached, ok := d.cache.Get(classID); ok {
		return cached
	}
	view := buildExtendedView(classID, newClasses)
	d.cache.Add(classID, view)
	return view
}

func buildExtendedView(classID string, newClasses map[string]*info.ClassInfo) extendedView {
	view := extendedView{methodKeys: map[string]struct{}{}, fieldKeys: map[string]struct{}{}}
	cur, ok := newClasses[classID]
	if !ok {
		return view
	}
	for key := range cur.MethodMap {
		view.methodKeys[key] = struct{}{}
	}
	for name := range cur.FieldMap {
		view.fieldKeys[name] = struct{}{}
	}

	visited := map[string]struct{}{classID: {}}
	supername := cur.Supername
	for supername != "" {
		if _, seen := visited[supername]; seen {
			break
		}
		visited[supername] = struct{}{}
		parent, ok := newClasses[supername]
		if !ok {
			break
		}
		for key, m := range parent.MethodMap {
			if !m.Access.IsPrivate() {
				view.methodKeys[key] = struct{}{}
			}
		}
		for name, f := range parent.FieldMap {
			if !f.Access.IsPrivate() {
				view.fieldKeys[name] = struct{}{}
			}
		}
		supername = parent.Supername
	}
	return view
}
