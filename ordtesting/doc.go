package ordtesting

/*

Package ordtesting generates randomized ordmap instances and operation
sequences for property style tests, and checks the structural invariants a
Map must satisfy after every public operation.

The generator is deliberately deterministic: TestConfig carries a fixed
seed, and every key is drawn from a uuid-derived corpus built from that
seed, so a failing sequence reproduces from run to run. Keeping the corpus
small relative to the operation count forces duplicate-key insertions,
overwrites and remove-then-reinsert interleavings, which is where the
position repair logic earns its keep.

MutateRandomly drives a Map and a plain-slice model of it through the same
operation sequence and requires them to agree after every step, on top of
the invariant check. The model is the source of truth: a plain slice of
pairs with the documented ordering behavior of each operation applied
naively.

Nothing in this package is used by the container at runtime; it exists for
test collaborators only.
*/
