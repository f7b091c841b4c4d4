package diff

import (
	"github.com/sirupsen/logrus"

	"github.com/bradleyfalzon/vmcfdiff/info"
)

// DumpingHandler logs emitted events through a logrus.FieldLogger: the diff
// and per-class boundaries, the old/new contents, and every class, field and
// method event. The bucket boundaries (Start/End of OldContents, NewContents,
// Removed, Added and Changed) are not logged. It exists to exercise the push-based protocol independently of
// AccumulatingHandler — a streaming reporter sitting alongside the
// accumulator, not a replacement for it.
type DumpingHandler struct {
	log logrus.FieldLogger
}

func NewDumpingHandler(log logrus.FieldLogger) *DumpingHandler {
	return &DumpingHandler{log: log}
}

func (h *DumpingHandler) StartDiff(oldLabel, newLabel string) {
	h.log.WithFields(logrus.Fields{"old": oldLabel, "new": newLabel}).Debug("diff started")
}
func (h *DumpingHandler) EndDiff() { h.log.Debug("diff complete") }

func (h *DumpingHandler) StartOldContents()       {}
func (h *DumpingHandler) OldContains(classID string) {
	h.log.WithField("class", classID).Trace("old contains")
}
func (h *DumpingHandler) EndOldContents() {}

func (h *DumpingHandler) StartNewContents()       {}
func (h *DumpingHandler) NewContains(classID string) {
	h.log.WithField("class", classID).Trace("new contains")
}
func (h *DumpingHandler) EndNewContents() {}

func (h *DumpingHandler) StartRemoved() {}
func (h *DumpingHandler) EndRemoved()   {}
func (h *DumpingHandler) StartAdded()   {}
func (h *DumpingHandler) EndAdded()     {}
func (h *DumpingHandler) StartChanged() {}
func (h *DumpingHandler) EndChanged()   {}

func (h *DumpingHandler) StartClassChanged(classID string) {
	h.log.WithField("class", classID).Debug("class changed: begin")
}
func (h *DumpingHandler) EndClassChanged(classID string) {
	h.log.WithField("class", classID).Debug("class changed: end")
}

func (h *DumpingHandler) ClassRemoved(classID string, old *info.ClassInfo) {
	h.log.WithField("class", classID).Info("class removed")
}
func (h *DumpingHandler) ClassAdded(classID string, new *info.ClassInfo) {
	h.log.WithField("class", classID).Info("class added")
}
func (h *DumpingHandler) ClassChanged(classID string, old, new *info.ClassInfo) {
	h.log.WithField("class", classID).Info("class changed")
}
func (h *DumpingHandler) ClassDeprecated(classID string, old, new *info.ClassInfo) {
	h.log.WithField("class", classID).Info("class deprecated")
}

func (h *DumpingHandler) FieldRemoved(classID, name string, old *info.FieldInfo) {
	h.log.WithFields(logrus.Fields{"class": classID, "field": name}).Info("field removed")
}
func (h *DumpingHandler) FieldAdded(classID, name string, new *info.FieldInfo) {
	h.log.WithFields(logrus.Fields{"class": classID, "field": name}).Info("field added")
}
func (h *DumpingHandler) FieldChanged(classID, name string, old, new *info.FieldInfo) {
	h.log.WithFields(logrus.Fields{"class": classID, "field": name}).Info("field changed")
}
func (h *DumpingHandler) FieldChangedCompat(classID, name string, old, new *info.FieldInfo) {
	h.log.WithFields(logrus.Fields{"class": classID, "field": name}).Info("field compat-changed")
}
func (h *DumpingHandler) FieldDeprecated(classID, name string, old, new *info.FieldInfo) {
	h.log.WithFields(logrus.Fields{"class": classID, "field": name}).Info("field deprecated")
}

func (h *DumpingHandler) MethodRemoved(classID, key string, old *info.MethodInfo) {
	h.log.WithFields(logrus.Fields{"class": classID, "method": key}).Info("method removed")
}
func (h *DumpingHandler) MethodAdded(classID, key string, new *info.MethodInfo) {
	h.log.WithFields(logrus.Fields{"class": classID, "method": key}).Info("method added")
}
func (h *DumpingHandler) MethodChanged(classID, key string, old, new *info.MethodInfo) {
	h.log.WithFields(logrus.Fields{"class": classID, "method": key}).Info("method changed")
}
func (h *DumpingHandler) MethodChangedCompat(classID, key string, old, new *info.MethodInfo) {
	h.log.WithFields(logrus.Fields{"class": classID, "method": key}).Info("method compat-changed")
}
func (h *DumpingHandler) MethodDeprecated(classID, key string, old, new *info.MethodInfo) {
	h.log.WithFields(logrus.Fields{"class": classID, "method": key}).Info("method deprecated")
}
