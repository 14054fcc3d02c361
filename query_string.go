package reql

// String commands.

// Match tests a string against a RE2 regular expression, returning the
// match object or null.
//
// Example usage:
//
//	r.Table("users").Filter(r.Row.G("name").Match("^A"))
func (t Term) Match(regexp interface{}) Term {
	return newTerm(TermMatch).withLiteralArgs(regexp).withParent(t)
}

// Split breaks a string on whitespace, or on a separator, optionally at
// most maxSplits times.
//
// Example usage:
//
//	r.Expr("foo,bar,bax").Split(",") => ["foo", "bar", "bax"]
func (t Term) Split(args ...interface{}) Term {
	return newTerm(TermSplit).withManyArgs(args...).withParent(t)
}

// Upcase converts a string to upper case.
func (t Term) Upcase() Term {
	return newTerm(TermUpcase).withParent(t)
}

// Downcase converts a string to lower case.
func (t Term) Downcase() Term {
	return newTerm(TermDowncase).withParent(t)
}
