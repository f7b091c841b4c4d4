// Package vmcfdiff compares two snapshots of a compiled VMCF class library
// and reports what changed in the public contract.
//
// # Overview
//
// A Checker wires together the four collaborating packages:
//
//	classreader - turns parser events into info.ClassInfo records (C2)
//	criteria    - decides what's visible and what counts as a difference (C3)
//	diff        - the two-set comparison, including inherited-member
//	              reconciliation (C4), pushed into a Handler (C6)
//	delta       - aggregates differences, classifies compatibility, and
//	              infers/validates semantic versions (C5)
//
// # Usage
//
//	checker, err := vmcfdiff.New(vmcfdiff.WithCriteria(criteria.NewPublicProtected()))
//	if err != nil {
//		return err
//	}
//	d, err := checker.Check("1.2.3", "1.3.0", oldClasses, newClasses, false)
//	if err != nil {
//		return err
//	}
//	next, err := d.Infer(baseline)
//
// Checker never reads bytes itself: oldClasses and newClasses are built by
// feeding an external VMCF parser's events into classreader.Adapter.
package vmcfdiff
