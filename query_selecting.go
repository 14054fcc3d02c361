package reql

// Selecting data: fetching documents out of tables and narrowing
// sequences down.

// Get fetches a single document by its primary key.
//
// Example usage:
//
//	r.Table("marvel").Get("superman")
func (t Term) Get(key interface{}) Term {
	return newTerm(TermGet).withLiteralArgs(key).withParent(t)
}

// GetAll fetches the documents matching the given keys, on the primary
// key or a secondary index.
//
// Example usage:
//
//	r.Table("marvel").GetAll("man_of_steel", r.Index("code_name"))
func (t Term) GetAll(keys ...interface{}) Term {
	return newTerm(TermGetAll).withManyArgs(keys...).withParent(t)
}

// Between selects all documents whose key is in a range.  The bounds may
// be r.MinVal and r.MaxVal to leave one side open.
//
// Example usage:
//
//	r.Table("marvel").Between(10, 20)
//	r.Table("marvel").Between(10, r.MaxVal, r.BetweenOpts{Index: "power"})
func (t Term) Between(lower, upper interface{}, opts ...interface{}) Term {
	cmd := newTerm(TermBetween).withLiteralArgs(lower, upper)
	for _, o := range opts {
		cmd = cmd.withOptArg(o)
	}
	return cmd.withParent(t)
}

// Filter keeps the documents for which the predicate is true.  The
// predicate may be an object to match against, an expression on r.Row,
// or a function.
//
// Example usage:
//
//	r.Table("users").Filter(r.Map{"age": 30})
//	r.Table("users").Filter(r.Row.G("age").Gt(18))
//	r.Table("users").Filter(func(user r.Term) r.Term {
//		return user.G("age").Gt(18)
//	})
func (t Term) Filter(predicate interface{}, opts ...interface{}) Term {
	cmd := newTerm(TermFilter).withOneArg(predicate)
	for _, o := range opts {
		cmd = cmd.withOptArg(o)
	}
	return cmd.withParent(t)
}
