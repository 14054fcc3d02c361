package reql

// Writing data: inserts, updates, replacements and deletions.

// Insert adds one or more documents to a table.
//
// Example usage:
//
//	r.Table("marvel").Insert(r.Map{"name": "Iron Man"})
//	r.Table("marvel").Insert(doc, r.InsertOpts{Conflict: "update"})
func (t Term) Insert(args ...interface{}) Term {
	return newTerm(TermInsert).withManyArgs(args...).withParent(t)
}

// Update modifies the selected documents with new values, given as an
// object or a function.
//
// Example usage:
//
//	r.Table("marvel").Get("superman").Update(r.Map{"age": 30})
//	r.Table("marvel").Update(r.Map{"age": r.Row.G("age").Add(1)})
func (t Term) Update(value interface{}, opts ...interface{}) Term {
	cmd := newTerm(TermUpdate).withOneArg(value)
	for _, o := range opts {
		cmd = cmd.withOptArg(o)
	}
	return cmd.withParent(t)
}

// Replace swaps the selected documents for entirely new ones; unlike
// Update, fields missing from the new value are removed.
//
// Example usage:
//
//	r.Table("marvel").Get("superman").Replace(hero)
func (t Term) Replace(value interface{}, opts ...interface{}) Term {
	cmd := newTerm(TermReplace).withOneArg(value)
	for _, o := range opts {
		cmd = cmd.withOptArg(o)
	}
	return cmd.withParent(t)
}

// Delete removes the selected documents.
//
// Example usage:
//
//	r.Table("marvel").Get("superman").Delete()
//	r.Table("marvel").Delete(r.DeleteOpts{Durability: "soft"})
func (t Term) Delete(opts ...interface{}) Term {
	cmd := newTerm(TermDelete)
	for _, o := range opts {
		cmd = cmd.withOptArg(o)
	}
	return cmd.withParent(t)
}
