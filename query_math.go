package reql

// Math and logic commands.  The arithmetic and comparison operators all
// take one or more operands; r.Args can splice a computed operand list.

// Add sums numbers, concatenates strings or arrays, or advances times.
//
// Example usage:
//
//	r.Expr(2).Add(2) => 4
func (t Term) Add(values ...interface{}) Term {
	return newTerm(TermAdd).withManyArgs(values...).withParent(t)
}

// Add is the prefix form of Term.Add.
//
// Example usage:
//
//	r.Add(2, 2) => 4
func Add(values ...interface{}) Term {
	return newTerm(TermAdd).withManyArgs(values...)
}

// Sub is the prefix form of Term.Sub.
func Sub(values ...interface{}) Term {
	return newTerm(TermSub).withManyArgs(values...)
}

// Mul is the prefix form of Term.Mul.
func Mul(values ...interface{}) Term {
	return newTerm(TermMul).withManyArgs(values...)
}

// Div is the prefix form of Term.Div.
func Div(values ...interface{}) Term {
	return newTerm(TermDiv).withManyArgs(values...)
}

// Mod is the prefix form of Term.Mod.
func Mod(values ...interface{}) Term {
	return newTerm(TermMod).withManyArgs(values...)
}

// And is the prefix form of Term.And.
func And(values ...interface{}) Term {
	return newTerm(TermAnd).withManyArgs(values...)
}

// Or is the prefix form of Term.Or.
func Or(values ...interface{}) Term {
	return newTerm(TermOr).withManyArgs(values...)
}

// Eq is the prefix form of Term.Eq.
func Eq(values ...interface{}) Term {
	return newTerm(TermEq).withManyArgs(values...)
}

// Ne is the prefix form of Term.Ne.
func Ne(values ...interface{}) Term {
	return newTerm(TermNe).withManyArgs(values...)
}

// Lt is the prefix form of Term.Lt.
func Lt(values ...interface{}) Term {
	return newTerm(TermLt).withManyArgs(values...)
}

// Le is the prefix form of Term.Le.
func Le(values ...interface{}) Term {
	return newTerm(TermLe).withManyArgs(values...)
}

// Gt is the prefix form of Term.Gt.
func Gt(values ...interface{}) Term {
	return newTerm(TermGt).withManyArgs(values...)
}

// Ge is the prefix form of Term.Ge.
func Ge(values ...interface{}) Term {
	return newTerm(TermGe).withManyArgs(values...)
}

// Sub subtracts numbers or shifts times back.
func (t Term) Sub(values ...interface{}) Term {
	return newTerm(TermSub).withManyArgs(values...).withParent(t)
}

// Mul multiplies numbers or repeats arrays.
func (t Term) Mul(values ...interface{}) Term {
	return newTerm(TermMul).withManyArgs(values...).withParent(t)
}

// Div divides numbers.
func (t Term) Div(values ...interface{}) Term {
	return newTerm(TermDiv).withManyArgs(values...).withParent(t)
}

// Mod finds the remainder of two numbers.
func (t Term) Mod(values ...interface{}) Term {
	return newTerm(TermMod).withManyArgs(values...).withParent(t)
}

// Eq tests if values are equal.
//
// Example usage:
//
//	r.Row.G("age").Eq(30)
func (t Term) Eq(values ...interface{}) Term {
	return newTerm(TermEq).withManyArgs(values...).withParent(t)
}

// Ne tests if values are not equal.
func (t Term) Ne(values ...interface{}) Term {
	return newTerm(TermNe).withManyArgs(values...).withParent(t)
}

// Lt tests if each value is less than the next.
func (t Term) Lt(values ...interface{}) Term {
	return newTerm(TermLt).withManyArgs(values...).withParent(t)
}

// Le tests if each value is less than or equal to the next.
func (t Term) Le(values ...interface{}) Term {
	return newTerm(TermLe).withManyArgs(values...).withParent(t)
}

// Gt tests if each value is greater than the next.
func (t Term) Gt(values ...interface{}) Term {
	return newTerm(TermGt).withManyArgs(values...).withParent(t)
}

// Ge tests if each value is greater than or equal to the next.
func (t Term) Ge(values ...interface{}) Term {
	return newTerm(TermGe).withManyArgs(values...).withParent(t)
}

// And is the logical conjunction of two or more values.
func (t Term) And(values ...interface{}) Term {
	return newTerm(TermAnd).withManyArgs(values...).withParent(t)
}

// Or is the logical disjunction of two or more values.
func (t Term) Or(values ...interface{}) Term {
	return newTerm(TermOr).withManyArgs(values...).withParent(t)
}

// Not inverts a boolean.
func (t Term) Not() Term {
	return newTerm(TermNot).withParent(t)
}

// Not inverts a boolean value.
//
// Example usage:
//
//	r.Not(r.Row.G("deleted"))
func Not(value interface{}) Term {
	return newTerm(TermNot).withOneArg(value)
}

// Random generates a random number.  With no arguments it returns a
// float in [0,1); with bounds it returns an integer, or a float when
// RandomOpts{Float: true}.
//
// Example usage:
//
//	r.Random(0, 100)
func Random(values ...interface{}) Term {
	return newTerm(TermRandom).withManyArgs(values...)
}

// Round rounds a number to the nearest integer.
func (t Term) Round() Term {
	return newTerm(TermRound).withParent(t)
}

// Round rounds the given number to the nearest integer.
func Round(value interface{}) Term {
	return newTerm(TermRound).withOneArg(value)
}

// Ceil rounds a number up.
func (t Term) Ceil() Term {
	return newTerm(TermCeil).withParent(t)
}

// Ceil rounds the given number up.
func Ceil(value interface{}) Term {
	return newTerm(TermCeil).withOneArg(value)
}

// Floor rounds a number down.
func (t Term) Floor() Term {
	return newTerm(TermFloor).withParent(t)
}

// Floor rounds the given number down.
func Floor(value interface{}) Term {
	return newTerm(TermFloor).withOneArg(value)
}

// BitAnd is the bitwise AND of two or more integers.
func (t Term) BitAnd(values ...interface{}) Term {
	return newTerm(TermBitAnd).withManyArgs(values...).withParent(t)
}

// BitOr is the bitwise OR of two or more integers.
func (t Term) BitOr(values ...interface{}) Term {
	return newTerm(TermBitOr).withManyArgs(values...).withParent(t)
}

// BitXor is the bitwise exclusive OR of two or more integers.
func (t Term) BitXor(values ...interface{}) Term {
	return newTerm(TermBitXor).withManyArgs(values...).withParent(t)
}

// BitNot is the bitwise complement of an integer.
func (t Term) BitNot() Term {
	return newTerm(TermBitNot).withParent(t)
}

// BitSal shifts an integer left, filling with zeroes.
func (t Term) BitSal(values ...interface{}) Term {
	return newTerm(TermBitSal).withManyArgs(values...).withParent(t)
}

// BitSar shifts an integer right, preserving the sign bit.
func (t Term) BitSar(values ...interface{}) Term {
	return newTerm(TermBitSar).withManyArgs(values...).withParent(t)
}
