// Package causalix decides whether a recorded execution of a shared
// key-value memory satisfies one of the weak causal consistency
// criteria from the distributed shared memory literature: Causal
// Consistency (CC), Causal Convergence (CCv), and Causal Memory (CM).
//
// 🚀 What is causalix?
//
//	A library that takes a history - the read/write operations observed
//	per client process, with their return values - and answers:
//
//	  • CC  - can the returns be explained by some causal order
//	          consistent with program order?
//	  • CCv - can they additionally be explained under one globally
//	          agreed total order of writes?
//	  • CM  - can they be explained with per-process causal views that
//	          include the reader's own causal past?
//
// Everything is organized under four subpackages (plus fixtures):
//
//	poset/      - transitively-closed strict partial orders: incremental
//	              ordering with asymmetry checks, refinements, and
//	              enumeration of all topological sorts
//	history/    - operations, program order, causal-past derivations,
//	              and the abstract Specification state machine
//	badpattern/ - syntactic necessary checks over the write-read graph
//	              co = (po ∪ wr)⁺
//	check/      - the CC / CM / CCv semantic search procedures
//	litmus/     - canonical litmus histories and a seeded generator
//
// Quick ASCII example (history Ha):
//
//	a: wr(x,1) ── rd(x)=2
//	b: wr(x,2) ── rd(x)=1
//
//	CC and CM hold; CCv does not - no single total order of the two
//	writes can explain both reads.
//
// Bad-pattern detection is a cheap necessary filter; the semantic
// checkers are complete on their own and never rely on it.
package causalix
