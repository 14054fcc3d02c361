package reql

// Transformations: mapping, ordering and slicing sequences.

// Map transforms each element of one or more sequences with a mapping
// function, given last.
//
// Example usage:
//
//	r.Expr(r.List{1, 2, 3}).Map(func(v r.Term) r.Term { return v.Mul(2) })
func (t Term) Map(args ...interface{}) Term {
	return newTerm(TermMap).withManyArgs(args...).withParent(t)
}

// ConcatMap transforms each element into a sequence and concatenates the
// results.
//
// Example usage:
//
//	r.Table("marvel").ConcatMap(func(hero r.Term) r.Term {
//		return hero.G("defeatedMonsters")
//	})
func (t Term) ConcatMap(function interface{}) Term {
	return newTerm(TermConcatMap).withOneArg(function).withParent(t)
}

// WithFields keeps only the documents having all the given fields, then
// plucks those fields.
func (t Term) WithFields(selectors ...interface{}) Term {
	return newTerm(TermWithFields).withManyArgs(selectors...).withParent(t)
}

// OrderBy sorts a sequence by one or more keys or key functions, or by
// an index.
//
// Example usage:
//
//	r.Table("posts").OrderBy(r.Desc("date"))
//	r.Table("posts").OrderBy(r.Index("date"))
func (t Term) OrderBy(keys ...interface{}) Term {
	return newTerm(TermOrderBy).withManyArgs(keys...).withParent(t)
}

// Asc marks an OrderBy key as ascending.
func Asc(key interface{}) Term {
	return newTerm(TermAsc).withOneArg(key)
}

// Desc marks an OrderBy key as descending.
func Desc(key interface{}) Term {
	return newTerm(TermDesc).withOneArg(key)
}

// Skip drops the first n elements of a sequence.
func (t Term) Skip(n interface{}) Term {
	return newTerm(TermSkip).withLiteralArgs(n).withParent(t)
}

// Limit keeps only the first n elements of a sequence.
func (t Term) Limit(n interface{}) Term {
	return newTerm(TermLimit).withLiteralArgs(n).withParent(t)
}

// Slice keeps the elements between two offsets, the end offset being
// optional and exclusive by default.
//
// Example usage:
//
//	r.Table("players").OrderBy(r.Index("age")).Slice(3, 6)
func (t Term) Slice(offsets ...interface{}) Term {
	return newTerm(TermSlice).withLiteralArgs(offsets...).withParent(t)
}

// Nth returns the element at the given index, counting from the end when
// negative.
func (t Term) Nth(index interface{}) Term {
	return newTerm(TermNth).withLiteralArgs(index).withParent(t)
}

// OffsetsOf returns the positions where a value occurs, or where a
// predicate is satisfied.
func (t Term) OffsetsOf(datumOrPredicate interface{}) Term {
	return newTerm(TermOffsetsOf).withOneArg(datumOrPredicate).withParent(t)
}

// IsEmpty tests whether a sequence has no elements.
func (t Term) IsEmpty() Term {
	return newTerm(TermIsEmpty).withParent(t)
}

// Union concatenates two or more sequences.
//
// Example usage:
//
//	r.Table("marvel").Union(r.Table("dc"))
func (t Term) Union(sequences ...interface{}) Term {
	return newTerm(TermUnion).withManyArgs(sequences...).withParent(t)
}

// Union is the prefix form of Term.Union.
func Union(sequences ...interface{}) Term {
	return newTerm(TermUnion).withManyArgs(sequences...)
}

// Sample returns up to n elements of a sequence, selected uniformly at
// random.
func (t Term) Sample(n interface{}) Term {
	return newTerm(TermSample).withLiteralArgs(n).withParent(t)
}
