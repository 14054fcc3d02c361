package reql

// Control structures: function application, branching, iteration and
// type handling.

// JSON parses a JSON string on the server.
//
// Example usage:
//
//	r.JSON("[1,2,3]")
func JSON(jsonString interface{}) Term {
	return newTerm(TermJSON).withOneArg(jsonString)
}

// Do calls a function with the given arguments.  The function comes
// last, after the values it is applied to.
//
// Example usage:
//
//	r.Do(10, 20, func(x, y r.Term) r.Term { return x.Add(y) })
func Do(args ...interface{}) Term {
	return doTerm(nil, args)
}

// Do calls a function with this value as its first argument, followed by
// any additional values.  As with the root form, the function comes
// last.
//
// Example usage:
//
//	r.Table("players").Get(id).Do(func(player r.Term) r.Term {
//		return player.G("gross_score").Sub(player.G("course_handicap"))
//	})
func (t Term) Do(args ...interface{}) Term {
	return doTerm(&t, args)
}

// Branch evaluates one of two actions based on a test; tests and actions
// may be supplied in alternating pairs, with a final fallback action.
//
// Example usage:
//
//	r.Branch(r.Row.G("age").Ge(18), "adult", "minor")
func Branch(test interface{}, actions ...interface{}) Term {
	return newTerm(TermBranch).withLiteralArgs(test).withLiteralArgs(actions...)
}

// Branch evaluates one of two actions with the receiver as the test.
func (t Term) Branch(actions ...interface{}) Term {
	return newTerm(TermBranch).withLiteralArgs(actions...).withParent(t)
}

// ForEach runs a write function once for each element of the sequence.
//
// Example usage:
//
//	r.Table("marvel").ForEach(func(hero r.Term) r.Term {
//		return r.Table("villains").Get(hero.G("villainDefeated")).Delete()
//	})
func (t Term) ForEach(writeFunction interface{}) Term {
	return newTerm(TermForEach).withOneArg(writeFunction).withParent(t)
}

// Range generates a stream of sequential integers: all of them, up to an
// exclusive end, or between two bounds.
//
// Example usage:
//
//	r.Range(4) => [0, 1, 2, 3]
func Range(values ...interface{}) Term {
	return newTerm(TermRange).withManyArgs(values...)
}

// Error throws a runtime error on the server.
//
// Example usage:
//
//	r.Error("impossible code path reached")
func Error(message interface{}) Term {
	return newTerm(TermError).withOneArg(message)
}

// Js evaluates a JavaScript expression on the server.
//
// Example usage:
//
//	r.Js("'str1' + 'str2'")
//	r.Js(r.ArgsWithOpt{"while(true) {}", r.JsOpts{Timeout: 1.3}})
func Js(code interface{}) Term {
	return newTerm(TermJavascript).withOneArg(code)
}

// Http retrieves data from the specified URL.
//
// Example usage:
//
//	r.Http("http://httpbin.org/get")
func Http(url interface{}) Term {
	return newTerm(TermHTTP).withOneArg(url)
}

// UUID returns a random UUID, or a UUID derived deterministically from a
// string.
func UUID(values ...interface{}) Term {
	return newTerm(TermUUID).withManyArgs(values...)
}

// Binary declares binary data.
func Binary(data interface{}) Term {
	return newTerm(TermBinary).withOneArg(data)
}

// CoerceTo converts a value to the named type, for instance "string" or
// "array".
//
// Example usage:
//
//	r.Expr(1).CoerceTo("string") => "1"
func (t Term) CoerceTo(typeName interface{}) Term {
	return newTerm(TermCoerceTo).withOneArg(typeName).withParent(t)
}

// TypeOf returns the name of the value's type.
func (t Term) TypeOf() Term {
	return newTerm(TermTypeOf).withParent(t)
}

// Info returns information about the value, such as a table's indexes.
func (t Term) Info() Term {
	return newTerm(TermInfo).withParent(t)
}

// ToJSON converts the value to a JSON string.
func (t Term) ToJSON() Term {
	return newTerm(TermToJSONString).withParent(t)
}

// Default replaces missing-field errors and null values with a default
// value, or the result of a default function.
//
// Example usage:
//
//	r.Row.G("comment").Default("no comment")
func (t Term) Default(value interface{}) Term {
	return newTerm(TermDefault).withOneArg(value).withParent(t)
}
