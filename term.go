package reql

// Let users create queries as ReQL expression trees.  Most functions take
// interface{} arguments: any conversion error is carried inside the term
// and deferred until the query is serialized, so a single bad leaf deep in
// a large composed query poisons submission, not construction.

import (
	"encoding/json"
)

// Map is a shorthand object type for use in queries.
//
// Example usage:
//
//	r.Table("heroes").Filter(r.Map{"durability": 7})
type Map map[string]interface{}

// List is a shorthand array type for use in queries.
//
// Example usage:
//
//	r.Expr(r.List{1, 2, 3})
type List []interface{}

// Term is one node of a query: an operation type, its ordered arguments,
// and an optional trailing options object.  Terms are built by chaining
// methods, each of which returns a new Term with the receiver prepended as
// the first positional argument.  A Term may instead be a one-level
// indirection to another Term, so terms produced through generic code
// paths compose transparently with directly-built ones.
type Term struct {
	ref *Term

	typ        TermType
	datum      Datum
	datumSet   bool
	datumErr   error
	args       []Term
	opts       Datum
	optsSet    bool
	optsErr    error
	changeFeed bool
}

// Command is the protocol's name for a query node.
type Command = Term

// Row supplies access to the current document in any query, without
// needing a Go closure with a reference to it.  It is only valid inside
// an argument that the server evaluates as a function; the driver wraps
// it into a one-parameter function automatically.
//
// Example usage:
//
//	r.Table("heroes").Filter(r.Row.G("intelligence").Eq(7))
var Row = Term{typ: TermImplicitVar}

// MinVal and MaxVal represent "less than any index key" and "greater than
// any index key" for use as Between bounds.
var (
	MinVal = Term{typ: TermMinval}
	MaxVal = Term{typ: TermMaxval}
)

func newTerm(typ TermType) Term {
	return Term{typ: typ}
}

// varTerm references the function parameter with the given id.
func varTerm(id uint64) Term {
	return newTerm(TermVar).withArg(fromJSON(id))
}

// resolve follows the boxed indirection, if any, and returns the concrete
// node.  Mutating builder methods resolve first so the underlying shared
// term is never modified through a copy.
func (t Term) resolve() Term {
	for t.ref != nil {
		t = *t.ref
	}
	return t
}

// Expr converts any value to a query term.  Values are converted with the
// json module, so any type annotations or methods understood by that
// module can be used.  If the value cannot be converted, the error is
// carried inside the term and surfaces when the query is run.
//
// Example usage:
//
//	r.Expr(r.Map{"go": "awesome", "rethinkdb": "awesomer"})
func Expr(value interface{}) Term {
	return toTerm(value)
}

// toTerm converts an arbitrary value into a Term.  Terms pass through,
// pointers become boxed indirections, everything else becomes a literal
// datum node.
func toTerm(value interface{}) Term {
	switch x := value.(type) {
	case Term:
		return x
	case *Term:
		if x == nil {
			return fromJSON(nil)
		}
		return Term{ref: x}
	}
	return fromJSON(value)
}

// fromJSON builds a literal term from any serializable value; a
// conversion failure is stored and surfaces at serialization time.
func fromJSON(value interface{}) Term {
	d, err := toDatum(value)
	t := newTerm(TermDatum)
	t.datum = d
	t.datumSet = true
	t.datumErr = err
	return t
}

// withArg appends one positional argument.
func (t Term) withArg(arg interface{}) Term {
	t = t.resolve()
	a := toTerm(arg)
	// full slice expression forces copy-on-append so a term embedded in
	// two chains never shares argument storage
	t.args = append(t.args[:len(t.args):len(t.args)], a)
	return t
}

// withParent prepends the receiver of a chained call as the first
// positional argument and propagates its changefeed marker: once a chain
// contains a changefeed, everything built on top of it is one too.
func (t Term) withParent(parent Term) Term {
	t = t.resolve()
	parent = parent.resolve()
	args := make([]Term, 0, len(t.args)+1)
	args = append(args, parent)
	args = append(args, t.args...)
	t.args = args
	t.changeFeed = t.changeFeed || parent.changeFeed
	return t
}

// withOpts attaches the trailing options object.  If the value is a
// literal object it is stored directly; a term-valued option set is
// stored as an embedded term, so options whose values are themselves
// queries are legal.
func (t Term) withOpts(opts interface{}) Term {
	t = t.resolve()
	o := toTerm(opts).resolve()
	if o.typ == TermDatum {
		t.opts = o.datum
		t.optsErr = o.datumErr
	} else {
		t.opts = termDatum(o)
	}
	t.optsSet = true
	return t
}

// isNullLiteral is true only for a literal null node.  The argument layer
// uses it to omit optional arguments rather than serialize null.
func (t Term) isNullLiteral() bool {
	t = t.resolve()
	return t.typ == TermDatum && t.datumErr == nil && t.datumSet && t.datum.isNull()
}

func (t Term) markChangeFeed() Term {
	t = t.resolve()
	t.changeFeed = true
	return t
}

// IsChangeFeed reports whether this term, or any term it was chained
// onto, was produced by Changes.
func (t Term) IsChangeFeed() bool {
	return t.resolve().changeFeed
}

// hasImplicitVar reports whether the term contains an implicit-row
// reference that is not already bound by a nested function; functions do
// not leak their parent's implicit binding, so descent stops there.
func (t Term) hasImplicitVar() bool {
	t = t.resolve()
	switch t.typ {
	case TermImplicitVar:
		return true
	case TermFunc:
		return false
	}
	for _, a := range t.args {
		if a.hasImplicitVar() {
			return true
		}
	}
	if t.datumSet && t.datumErr == nil {
		return t.datum.hasImplicitVar()
	}
	return false
}

// wrapByFunc rewrites a term containing an unguarded implicit-row
// reference into a one-parameter function over it; terms without one are
// returned unchanged, so wrapping is idempotent.
func (t Term) wrapByFunc() Term {
	if !t.hasImplicitVar() {
		return t
	}
	return funcTerm([]uint64{1}, t)
}

// MarshalJSON writes the term in wire form: a literal node serializes as
// its bare datum (this is how the server tells data from operations); any
// other node serializes as [type], [type, args] or [type, args, opts].
// Errors carried from construction surface here.
func (t Term) MarshalJSON() ([]byte, error) {
	t = t.resolve()
	if t.typ == TermDatum {
		if t.datumErr != nil {
			return nil, t.datumErr
		}
		return json.Marshal(t.datum)
	}
	if t.optsErr != nil {
		return nil, t.optsErr
	}
	if t.optsSet {
		args := t.args
		if args == nil {
			// the three-element form always carries an args array
			args = []Term{}
		}
		return json.Marshal([3]interface{}{int32(t.typ), args, t.opts})
	}
	if len(t.args) == 0 {
		return json.Marshal([1]interface{}{int32(t.typ)})
	}
	return json.Marshal([2]interface{}{int32(t.typ), t.args})
}
