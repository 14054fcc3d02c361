package reql

// Document and array manipulation.

// G is shorthand for GetField: it fetches one field from an object, or
// maps the fetch over a sequence.
//
// Example usage:
//
//	r.Row.G("age")
func (t Term) G(field interface{}) Term {
	return t.GetField(field)
}

// GetField fetches one field from an object, or maps the fetch over a
// sequence.
func (t Term) GetField(field interface{}) Term {
	return newTerm(TermGetField).withLiteralArgs(field).withParent(t)
}

// Bracket fetches a field by name or an element by index, like [] in
// other drivers.
func (t Term) Bracket(attrOrIndex interface{}) Term {
	return newTerm(TermBracket).withLiteralArgs(attrOrIndex).withParent(t)
}

// HasFields keeps the documents that have all the given fields.
//
// Example usage:
//
//	r.Table("marvel").HasFields("secretIdentity")
func (t Term) HasFields(selectors ...interface{}) Term {
	return newTerm(TermHasFields).withManyArgs(selectors...).withParent(t)
}

// Pluck keeps only the given fields of each document.
//
// Example usage:
//
//	r.Table("marvel").Pluck("name", "age")
func (t Term) Pluck(selectors ...interface{}) Term {
	return newTerm(TermPluck).withManyArgs(selectors...).withParent(t)
}

// Without removes the given fields from each document.
func (t Term) Without(selectors ...interface{}) Term {
	return newTerm(TermWithout).withManyArgs(selectors...).withParent(t)
}

// Merge combines objects, with fields of later arguments winning;
// arguments may be functions of the object being merged into.
//
// Example usage:
//
//	r.Table("marvel").Get("thor").Merge(r.Map{"weapon": "hammer"})
func (t Term) Merge(values ...interface{}) Term {
	return newTerm(TermMerge).withManyArgs(values...).withParent(t)
}

// Literal marks an object as a literal replacement value inside Merge
// and Update, instead of being merged field by field.
//
// Example usage:
//
//	r.Table("users").Get(id).Update(r.Map{"data": r.Literal(newData)})
func Literal(values ...interface{}) Term {
	return newTerm(TermLiteral).withLiteralArgs(values...)
}

// Object builds an object from alternating keys and values.
//
// Example usage:
//
//	r.Object("id", 5, "data", r.List{"foo", "bar"})
func Object(keyValues ...interface{}) Term {
	return newTerm(TermObject).withManyArgs(keyValues...)
}

// Append adds a value at the end of an array.
func (t Term) Append(value interface{}) Term {
	return newTerm(TermAppend).withLiteralArgs(value).withParent(t)
}

// Prepend adds a value at the start of an array.
func (t Term) Prepend(value interface{}) Term {
	return newTerm(TermPrepend).withLiteralArgs(value).withParent(t)
}

// Difference removes from an array every value occurring in another.
func (t Term) Difference(array interface{}) Term {
	return newTerm(TermDifference).withLiteralArgs(array).withParent(t)
}

// SetInsert adds a value to an array treated as a set.
func (t Term) SetInsert(value interface{}) Term {
	return newTerm(TermSetInsert).withLiteralArgs(value).withParent(t)
}

// SetUnion unions two arrays treated as sets.
func (t Term) SetUnion(array interface{}) Term {
	return newTerm(TermSetUnion).withLiteralArgs(array).withParent(t)
}

// SetIntersection intersects two arrays treated as sets.
func (t Term) SetIntersection(array interface{}) Term {
	return newTerm(TermSetIntersection).withLiteralArgs(array).withParent(t)
}

// SetDifference subtracts one array from another, treated as sets.
func (t Term) SetDifference(array interface{}) Term {
	return newTerm(TermSetDifference).withLiteralArgs(array).withParent(t)
}

// Keys lists the field names of an object.
func (t Term) Keys() Term {
	return newTerm(TermKeys).withParent(t)
}

// Values lists the field values of an object.
func (t Term) Values() Term {
	return newTerm(TermValues).withParent(t)
}

// InsertAt inserts a value into an array at the given offset.
func (t Term) InsertAt(offset, value interface{}) Term {
	return newTerm(TermInsertAt).withLiteralArgs(offset, value).withParent(t)
}

// SpliceAt inserts the elements of an array into another at the given
// offset.
func (t Term) SpliceAt(offset, array interface{}) Term {
	return newTerm(TermSpliceAt).withLiteralArgs(offset, array).withParent(t)
}

// DeleteAt removes one element, or the elements between two offsets,
// from an array.
//
// Example usage:
//
//	r.Expr(r.List{"a", "b", "c"}).DeleteAt(1) => ["a", "c"]
func (t Term) DeleteAt(offsets ...interface{}) Term {
	return newTerm(TermDeleteAt).withLiteralArgs(offsets...).withParent(t)
}

// ChangeAt replaces the element of an array at the given offset.
func (t Term) ChangeAt(offset, value interface{}) Term {
	return newTerm(TermChangeAt).withLiteralArgs(offset, value).withParent(t)
}
