// Package czonotope implements the constrained zonotope abstract domain:
// a zonotope whose noise-symbol vector is further restricted by linear
// inequalities, yielding a tighter polytope.
//
// On top of the generator/center representation the domain keeps an
// append-only constraint store. Each constraint is a sparse row a over
// noise symbols and a bound c, meaning a·eps <= c. Constraints are never
// retired during a propagation; because rows are sparse (index,
// coefficient pairs over a shared, growable noise-symbol arena) they stay
// valid as later transformers allocate new symbols, with no re-padding.
//
// Two bound-extraction tiers exist, with one policy applied everywhere:
//
//   - Concretize: the constraint-ignoring L1 enclosure. Sound but loose;
//     it is what transformers use internally to decide case splits.
//   - ConcretizeExact: per output dimension, two linear programs
//     (min and max of alpha·eps + beta over the unit box intersected with
//     the store) solved with a dedicated simplex method. This is the
//     final answer. A dimension whose LP fails to converge reports
//     ErrSolverFailed for that dimension only; it is never silently
//     mapped to ±Inf.
//
// Each nonlinear transformer supports two constraint encodings, chosen
// per call: Standard (zonotope row update plus inequalities tying the
// relaxed row to the pre-transform row) and Rectangle (fresh symbol fixed
// at the midpoint of the output sub-range plus the same kind of ties).
// Neither dominates the other in general.
package czonotope
