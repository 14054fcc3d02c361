package reql

// Aggregation: grouping sequences and reducing them to values.

// Group partitions a sequence by field, function or index; subsequent
// commands operate on each group separately until Ungroup.
//
// Example usage:
//
//	r.Table("games").Group("player").Max("points")
func (t Term) Group(args ...interface{}) Term {
	return newTerm(TermGroup).withManyArgs(args...).withParent(t)
}

// Ungroup turns grouped data back into a plain sequence of
// {group, reduction} objects.
func (t Term) Ungroup() Term {
	return newTerm(TermUngroup).withParent(t)
}

// Reduce combines a sequence to a single value with a two-argument
// function.
//
// Example usage:
//
//	r.Table("posts").Map(func(r.Term) r.Term { return r.Expr(1) }).
//		Reduce(func(left, right r.Term) r.Term { return left.Add(right) })
func (t Term) Reduce(function interface{}) Term {
	return newTerm(TermReduce).withOneArg(function).withParent(t)
}

// Fold combines a sequence to a single value like Reduce, but walks the
// sequence in order from a base value; FoldOpts' Emit function turns it
// into a stateful transform instead.
func (t Term) Fold(base, function interface{}, opts ...interface{}) Term {
	cmd := newTerm(TermFold).withLiteralArgs(base).withOneArg(function)
	for _, o := range opts {
		cmd = cmd.withOptArg(o)
	}
	return cmd.withParent(t)
}

// Count returns the number of elements, optionally counting only those
// equal to a value or satisfying a predicate.
//
// Example usage:
//
//	r.Table("marvel").Count()
func (t Term) Count(values ...interface{}) Term {
	return newTerm(TermCount).withManyArgs(values...).withParent(t)
}

// Sum adds the elements, or the given field of each element.
func (t Term) Sum(values ...interface{}) Term {
	return newTerm(TermSum).withManyArgs(values...).withParent(t)
}

// Avg averages the elements, or the given field of each element.
func (t Term) Avg(values ...interface{}) Term {
	return newTerm(TermAvg).withManyArgs(values...).withParent(t)
}

// Min finds the smallest element, by value, field, function or index.
//
// Example usage:
//
//	r.Table("games").Min(r.Index("points"))
func (t Term) Min(values ...interface{}) Term {
	return newTerm(TermMin).withManyArgs(values...).withParent(t)
}

// Max finds the largest element, by value, field, function or index.
func (t Term) Max(values ...interface{}) Term {
	return newTerm(TermMax).withManyArgs(values...).withParent(t)
}

// Distinct removes duplicates from a sequence; on a table it can stream
// the distinct values of a secondary index.
//
// Example usage:
//
//	r.Table("marvel").Distinct(r.DistinctOpts{Index: "power"})
func (t Term) Distinct(opts ...interface{}) Term {
	return newTerm(TermDistinct).withManyArgs(opts...).withParent(t)
}

// Contains tests whether a sequence includes every given value, or
// satisfies every given predicate.
//
// Example usage:
//
//	r.Table("marvel").G("villains").Contains("magneto")
func (t Term) Contains(values ...interface{}) Term {
	return newTerm(TermContains).withManyArgs(values...).withParent(t)
}
