package reql

import "reflect"

// Argument-shape handling.  Every command accepts plain values, but some
// positions understand more: a trailing options object, a server-side
// argument splice, or an index selector.  The tag types below let callers
// say which one they mean, and the unexported helpers on Term dispatch on
// them.

// Args marks a value as a collection of arguments rather than a single
// one.  A slice or List is spread into separate arguments client-side;
// a Term is passed to the server to be spread at evaluation time, which
// is the only way to splice an argument list that is itself computed by
// the query.
//
// Example usage:
//
//	r.Table("heroes").GetAll(r.Args{r.List{"a", "b"}})
type Args struct {
	Value interface{}
}

// ArgsWithOpt pairs an argument with the command's options object.
//
// Example usage:
//
//	r.Table("heroes").Insert(r.ArgsWithOpt{doc, r.InsertOpts{Conflict: "update"}})
type ArgsWithOpt struct {
	Value interface{}
	Opt   interface{}
}

// IndexArg selects the index a command operates on; build one with Index.
type IndexArg struct {
	Value interface{}
}

// Index names a secondary index for commands such as GetAll, Between,
// OrderBy and EqJoin.
//
// Example usage:
//
//	r.Table("heroes").GetAll("durability", r.Index("stats"))
func Index(value interface{}) IndexArg {
	return IndexArg{Value: value}
}

// OptArgs is implemented by every command option struct.
type OptArgs interface {
	optArgs()
}

// withOneArg handles commands taking exactly one argument.  Null literals
// are dropped so an explicit nil reads as "not given", and values
// containing an implicit-row reference are wrapped into functions.
func (t Term) withOneArg(value interface{}) Term {
	if aw, ok := value.(ArgsWithOpt); ok {
		return t.withOneArg(aw.Value).withOptValue(aw.Opt)
	}
	a := funcWrap(value)
	if a.isNullLiteral() {
		return t
	}
	return t.withArg(a)
}

// withManyArgs handles variadic commands.  Each value may be a plain
// argument, an Args splice, an IndexArg, an option struct or an
// ArgsWithOpt pair.
func (t Term) withManyArgs(values ...interface{}) Term {
	for _, v := range values {
		t = t.withManyArg(v)
	}
	return t
}

func (t Term) withManyArg(value interface{}) Term {
	switch x := value.(type) {
	case nil:
		return t
	case Args:
		return t.withSpliced(x.Value)
	case ArgsWithOpt:
		return t.withManyArg(x.Value).withOptValue(x.Opt)
	case IndexArg:
		return t.withOpts(Map{"index": x.Value})
	case OptArgs:
		return t.withOpts(x)
	}
	a := funcWrap(value)
	if a.isNullLiteral() {
		return t
	}
	return t.withArg(a)
}

// withSpliced spreads an Args value.  Slices are spread here; a Term is
// handed to the server wrapped in an args node, since its elements are
// not known until it is evaluated.
func (t Term) withSpliced(value interface{}) Term {
	switch x := value.(type) {
	case nil:
		return t
	case Term:
		return t.withArg(newTerm(TermArgs).withArg(x))
	case *Term:
		if x == nil {
			return t
		}
		return t.withArg(newTerm(TermArgs).withArg(Term{ref: x}))
	case List:
		return t.withManyArgs(x...)
	case []interface{}:
		return t.withManyArgs(x...)
	}
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		for i := 0; i < rv.Len(); i++ {
			t = t.withManyArg(rv.Index(i).Interface())
		}
		return t
	}
	return t.withManyArg(value)
}

// withLiteralArgs handles positions that take values verbatim: no null
// dropping and no function wrapping, so passing nil really sends null.
// An ArgsWithOpt pair or option struct still attaches options.
func (t Term) withLiteralArgs(values ...interface{}) Term {
	for _, v := range values {
		switch x := v.(type) {
		case ArgsWithOpt:
			t = t.withLiteralArgs(x.Value).withOptValue(x.Opt)
		case OptArgs:
			t = t.withOpts(x)
		default:
			t = t.withArg(toTerm(v))
		}
	}
	return t
}

// withOptArg handles commands whose only trailing argument is an options
// object.
func (t Term) withOptArg(value interface{}) Term {
	switch x := value.(type) {
	case nil:
		return t
	case ArgsWithOpt:
		return t.withOneArg(x.Value).withOptValue(x.Opt)
	case IndexArg:
		return t.withOpts(Map{"index": x.Value})
	}
	return t.withOptValue(value)
}

// withOptValue attaches options unless the value is absent.
func (t Term) withOptValue(opt interface{}) Term {
	if opt == nil {
		return t
	}
	if ot := toTerm(opt); ot.isNullLiteral() {
		return t
	}
	return t.withOpts(opt)
}

// doTerm builds a function-call node for Do.  The caller-supplied
// function comes last in the argument list but first on the wire,
// followed by the chained receiver, then the remaining values.  With no
// arguments at all the call degenerates to invoking null, which the
// server rejects with a clear error.
func doTerm(parent *Term, args []interface{}) Term {
	cmd := newTerm(TermFuncall)
	if len(args) == 0 {
		cmd = cmd.withArg(funcWrap(nil))
	} else {
		cmd = cmd.withArg(funcWrap(args[len(args)-1]))
	}
	if parent != nil {
		p := parent.resolve()
		cmd = cmd.withArg(p)
		cmd.changeFeed = cmd.changeFeed || p.changeFeed
	}
	if len(args) > 0 {
		for _, v := range args[:len(args)-1] {
			cmd = cmd.withArg(funcWrap(v))
		}
	}
	return cmd
}
