// Package badpattern runs the syntactic necessary checks for causal
// consistency over the write-read graph co = (po ∪ wr)⁺.
//
// The detector is defined only for differentiated histories - every
// written (key, value) pair occurs at most once - because the
// write-read relation is recovered by looking each read's return up
// in a (key, value) → writer index. Construction of co:
//
//  1. index writes by (key, value);
//  2. for every read of a non-initial value, link its writer to it -
//     a missing writer is ThinAirRead;
//  3. a cycle in po ∪ wr is CyclicCO;
//  4. otherwise co is the transitive closure.
//
// On a clean co the detectors test, in fixed order:
//
//	WriteCOInitRead - an initial-value read causally after a write of
//	                  the same key
//	WriteCORead     - a same-key overwrite causally between a write
//	                  and the read returning it
//	CyclicCF        - (CCv) the conflict edges - every other same-key
//	                  writer in a read's causal past points at the
//	                  read's writer - close a cycle
//	WriteHBInitRead - (CM) as WriteCOInitRead under the per-process
//	                  happens-before extension of co
//	CyclicHB        - (CM) a per-process happens-before extension
//	                  closes a cycle
//
// A detected pattern means the corresponding semantic checker is
// certain to reject; a clean verdict means nothing more than "the
// cheap filter passed". The checkers in package check are complete on
// their own and never rely on this filter.
//
// Errors:
//
//   - ErrNotDifferentiated - a written (key, value) pair repeats
package badpattern
