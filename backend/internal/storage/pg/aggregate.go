package pg

// foldRows collapses a fully materialized join result into one accumulator
// per parent key. Relational joins multiply rows per combination of child
// associations (M members x N messages yields M*N rows per thread), so all
// rows sharing a key are funneled into the same accumulator: the first row
// for a key initializes it via newAcc, then every row (including the first)
// is applied via merge. Every distinct key seen in the input ends up in the
// output exactly once, even when no row carries any child value for it.
//
// merge owns per-child-group semantics: null child columns are skipped,
// non-null values are deduplicated on their own identity.
func foldRows[R any, K comparable, A any](rows []R, key func(R) K, newAcc func(R) *A, merge func(*A, R)) map[K]*A {
	out := make(map[K]*A, len(rows))
	for _, row := range rows {
		k := key(row)
		acc, ok := out[k]
		if !ok {
			acc = newAcc(row)
			out[k] = acc
		}
		merge(acc, row)
	}
	return out
}
