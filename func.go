package reql

import (
	"fmt"
	"reflect"
	"sync/atomic"
)

// Parameter ids are allocated from one process-wide counter so that two
// goroutines compiling closures concurrently can never collide, even when
// one function ends up nested inside another.
var varCounter atomic.Uint64

func nextVarID() uint64 {
	return varCounter.Add(1)
}

// funcTerm builds a function node binding the given parameter ids over
// the body.
func funcTerm(ids []uint64, body Term) Term {
	params := newTerm(TermMakeArray)
	for _, id := range ids {
		params = params.withArg(fromJSON(id))
	}
	return newTerm(TermFunc).withArg(params).withArg(body)
}

func errTerm(err error) Term {
	t := newTerm(TermDatum)
	t.datumSet = true
	t.datumErr = err
	return t
}

var termType = reflect.TypeOf(Term{})

// compileGoFunc converts a Go closure into a function term.  The closure
// runs once, immediately, with each parameter bound to a fresh variable
// reference; whatever expression it returns becomes the function body.
// Accepted signatures take zero or more Term parameters and return one
// value convertible to a term.
func compileGoFunc(f interface{}) Term {
	v := reflect.ValueOf(f)
	t := v.Type()
	if t.NumOut() != 1 {
		return errTerm(fmt.Errorf("reql: function must return one value, has %d", t.NumOut()))
	}
	if t.IsVariadic() {
		return errTerm(fmt.Errorf("reql: variadic functions cannot be compiled"))
	}

	ids := make([]uint64, t.NumIn())
	in := make([]reflect.Value, t.NumIn())
	for i := range in {
		if t.In(i) != termType {
			return errTerm(fmt.Errorf("reql: function parameter %d must be of type reql.Term, is %s", i, t.In(i)))
		}
		ids[i] = nextVarID()
		in[i] = reflect.ValueOf(varTerm(ids[i]))
	}

	out := v.Call(in)[0]
	return funcTerm(ids, toTerm(out.Interface()))
}

// funcWrap prepares a value for an argument position that the server
// evaluates as a function: Go closures are compiled, and plain terms
// containing an implicit-row reference are wrapped into one-parameter
// functions.  Everything else passes through untouched.
func funcWrap(value interface{}) Term {
	if value == nil {
		return fromJSON(nil)
	}
	if reflect.TypeOf(value).Kind() == reflect.Func {
		return compileGoFunc(value)
	}
	return toTerm(value).wrapByFunc()
}
