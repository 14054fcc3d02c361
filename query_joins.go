package reql

// Joins between sequences.

// InnerJoin pairs up the elements of two sequences for which the
// predicate is true.  EqJoin is much faster when the predicate is an
// equality on a key.
//
// Example usage:
//
//	marvel.InnerJoin(dc, func(m, d r.Term) r.Term {
//		return m.G("strength").Lt(d.G("strength"))
//	})
func (t Term) InnerJoin(other, predicate interface{}) Term {
	return newTerm(TermInnerJoin).
		withLiteralArgs(other).
		withOneArg(predicate).
		withParent(t)
}

// OuterJoin is InnerJoin that also keeps unmatched left-hand elements.
func (t Term) OuterJoin(other, predicate interface{}) Term {
	return newTerm(TermOuterJoin).
		withLiteralArgs(other).
		withOneArg(predicate).
		withParent(t)
}

// EqJoin joins each element to the rows of a table whose key equals the
// element's field, or the result of a field function.
//
// Example usage:
//
//	r.Table("players").EqJoin("gameId", r.Table("games"))
//	r.Table("players").EqJoin("city", r.Table("arenas"), r.Index("cityId"))
func (t Term) EqJoin(leftField, rightTable interface{}, opts ...interface{}) Term {
	cmd := newTerm(TermEqJoin).
		withOneArg(leftField).
		withLiteralArgs(rightTable)
	for _, o := range opts {
		cmd = cmd.withOptArg(o)
	}
	return cmd.withParent(t)
}

// Zip merges the left and right halves of a joined sequence into single
// documents.
func (t Term) Zip() Term {
	return newTerm(TermZip).withParent(t)
}
