// Package diff implements the two-set comparison of spec.md §4.4 (the
// Differ, component C4) and the push-based sink protocol it drives
// (component C6).
package diff

import "github.com/bradleyfalzon/vmcfdiff/info"

// Handler is the event-style sink a Differ pushes into. Event names are
// reused at two nesting levels: StartRemoved/EndRemoved and
// StartAdded/EndAdded each wrap a top-level bucket of ClassRemoved/ClassAdded
// calls, and separately wrap a per-class bucket of FieldRemoved/MethodRemoved
// or FieldAdded/MethodAdded calls nested inside StartClassChanged/EndClassChanged.
// Implementations track their own nesting context; the Differ never calls
// these out of the sequence spec.md §4.4 describes.
type Handler interface {
	StartDiff(oldLabel, newLabel string)

	StartOldContents()
	OldContains(classID string)
	EndOldContents()

	StartNewContents()
	NewContains(classID string)
	EndNewContents()

	StartRemoved()
	ClassRemoved(classID string, old *info.ClassInfo)
	FieldRemoved(classID, name string, old *info.FieldInfo)
	MethodRemoved(classID, key string, old *info.MethodInfo)
	EndRemoved()

	StartAdded()
	ClassAdded(classID string, new *info.ClassInfo)
	FieldAdded(classID, name string, new *info.FieldInfo)
	MethodAdded(classID, key string, new *info.MethodInfo)
	EndAdded()

	StartChanged()
	StartClassChanged(classID string)

	ClassChanged(classID string, old, new *info.ClassInfo)
	ClassDeprecated(classID string, old, new *info.ClassInfo)

	FieldChanged(classID, name string, old, new *info.FieldInfo)
	FieldChangedCompat(classID, name string, old, new *info.FieldInfo)
	FieldDeprecated(classID, name string, old, new *info.FieldInfo)

	MethodChanged(classID, key string, old, new *info.MethodInfo)
	MethodChangedCompat(classID, key string, old, new *info.MethodInfo)
	MethodDeprecated(classID, key string, old, new *info.MethodInfo)

	EndClassChanged(classID string)
	EndChanged()

	EndDiff()
}
