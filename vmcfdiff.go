// Package vmcfdiff wires the class-metadata model, diff criteria, differ
// and compatibility classifier into a single entrypoint: compare two VMCF
// class snapshots, get back a Delta you can classify, infer a version from,
// or validate a proposed version against.
package vmcfdiff

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/bradleyfalzon/vmcfdiff/criteria"
	"github.com/bradleyfalzon/vmcfdiff/delta"
	"github.com/bradleyfalzon/vmcfdiff/diff"
	internalconfig "github.com/bradleyfalzon/vmcfdiff/internal/config"
	"github.com/bradleyfalzon/vmcfdiff/info"
)

// Checker compares two VMCF class snapshots. Build one with New and a set
// of functional options; the zero value is not usable.
type Checker struct {
	log       *logrus.Logger
	crit      criteria.Criteria
	cacheSize int
	differ    *diff.Differ
}

// New builds a Checker. Defaults: a discard logger, criteria.Public, and
// diff.Differ's default extended-new-view cache size. Mirrors the teacher's
// New(options ...func(*Checker)) constructor, rewired to VMCF inputs
// instead of VCS revisions.
func New(options ...func(*Checker)) (*Checker, error) {
	c := &Checker{
		log:  logrus.New(),
		crit: criteria.NewPublic(),
	}
	c.log.SetOutput(discardWriter{})

	for _, option := range options {
		option(c)
	}

	differ, err := diff.NewDiffer(c.cacheSize)
	if err != nil {
		return nil, err
	}
	c.differ = differ
	return c, nil
}

// WithLogger overrides the default discard logger.
func WithLogger(log *logrus.Logger) func(*Checker) {
	return func(c *Checker) { c.log = log }
}

// WithCriteria overrides the default Public criteria.
func WithCriteria(crit criteria.Criteria) func(*Checker) {
	return func(c *Checker) { c.crit = crit }
}

// WithCache sets the extended-new-view cache size diff.NewDiffer uses.
func WithCache(size int) func(*Checker) {
	return func(c *Checker) { c.cacheSize = size }
}

// WithConfig applies an internal/config.CheckConfig: criteria preset,
// IncludePrivate (for the simple preset), exclusion patterns and cache size.
// VersionSeparator is not applied here — it is a ParseVersion argument, not
// a Checker field.
func WithConfig(cfg *internalconfig.CheckConfig) func(*Checker) {
	return func(c *Checker) {
		if cfg == nil {
			return
		}
		excl := &criteria.Exclusions{
			ClassPatterns:  cfg.Exclusions.ClassPatterns,
			MethodPatterns: cfg.Exclusions.MethodPatterns,
			FieldPatterns:  cfg.Exclusions.FieldPatterns,
		}
		switch cfg.Criteria {
		case "public_protected":
			c.crit = &criteria.PublicProtected{Exclusions: excl}
		case "simple":
			c.crit = &criteria.Simple{IncludePrivate: cfg.IncludePrivate, Exclusions: excl}
		default:
			c.crit = &criteria.Public{Exclusions: excl}
		}
		c.cacheSize = cfg.ExtendedViewCacheSize
	}
}

// Check compares oldClasses against newClasses and returns the resulting
// Delta. oldIsDevelopment flags whether the old snapshot's own version is
// pre-1.0 and is recorded as the Delta's OldIsDevelopment; Delta.Infer and
// Delta.Validate do not read it.
func (c *Checker) Check(oldLabel, newLabel string, oldClasses, newClasses map[string]*info.ClassInfo, oldIsDevelopment bool) (*delta.Delta, error) {
	runID := uuid.NewString()
	log := c.log.WithFields(logrus.Fields{"run_id": runID, "old": oldLabel, "new": newLabel})
	log.Debug("check started")

	handler := diff.NewAccumulatingHandler(runID, oldIsDevelopment)
	if err := c.differ.Diff(handler, c.crit, oldLabel, newLabel, oldClasses, newClasses); err != nil {
		log.WithError(err).Debug("check failed")
		return nil, fmt.Errorf("diff: %w", err)
	}

	result := handler.Result()
	log.WithField("category", result.Category()).Debug("check complete")
	return result, nil
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
