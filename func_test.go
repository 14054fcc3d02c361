package reql

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowWrappingIsIdempotent(t *testing.T) {
	varCounter.Store(0)

	wrapped := Row.G("age").Gt(21).wrapByFunc()
	assert.Equal(t, `[69,[[2,[1]],[21,[[31,[[13],"age"]],21]]]]`, wire(t, wrapped))

	// wrapping an expression that is already a function must not nest it
	again := wrapped.wrapByFunc()
	assert.Equal(t, wire(t, wrapped), wire(t, again))
}

func TestPlainValuesAreNotWrapped(t *testing.T) {
	assert.Equal(t, `"abc"`, wire(t, funcWrap("abc")))
	assert.Equal(t, `[2,[1,2]]`, wire(t, funcWrap(List{1, 2})))
	assert.Equal(t, `null`, wire(t, funcWrap(nil)))

	// a term without a row reference passes through untouched
	assert.Equal(t, `[15,["heroes"]]`, wire(t, funcWrap(Table("heroes"))))
}

func TestRowDetectionRecursesIntoArrays(t *testing.T) {
	varCounter.Store(0)

	term := toTerm(List{Row.G("x"), 2})
	require.True(t, term.hasImplicitVar())
	assert.Equal(t, `[69,[[2,[1]],[2,[[31,[[13],"x"]],2]]]]`, wire(t, term.wrapByFunc()))
}

func TestRowDetectionStopsAtFunctionBoundaries(t *testing.T) {
	// a row reference inside a nested function belongs to that function
	inner := funcTerm([]uint64{1}, Row.G("x"))
	assert.False(t, inner.hasImplicitVar())
}

func TestCompileClosure(t *testing.T) {
	varCounter.Store(0)

	fn := compileGoFunc(func(x, y Term) Term { return x.Add(y) })
	assert.Equal(t, `[69,[[2,[1,2]],[24,[[10,[1]],[10,[2]]]]]]`, wire(t, fn))
}

func TestCompileZeroArgumentClosure(t *testing.T) {
	varCounter.Store(0)

	fn := compileGoFunc(func() Term { return Expr(42) })
	assert.Equal(t, `[69,[[2],42]]`, wire(t, fn))
}

func TestCompileRejectsBadSignatures(t *testing.T) {
	for name, f := range map[string]interface{}{
		"non-term parameter": func(x int) Term { return Expr(x) },
		"multiple returns":   func(x Term) (Term, error) { return x, nil },
		"no returns":         func(x Term) {},
		"variadic":           func(xs ...Term) Term { return xs[0] },
	} {
		t.Run(name, func(t *testing.T) {
			_, err := compileGoFunc(f).MarshalJSON()
			assert.Error(t, err)
		})
	}
}

func TestClosureReturningPlainValue(t *testing.T) {
	varCounter.Store(0)

	fn := compileGoFunc(func(x Term) interface{} { return Map{"from": x} })
	assert.Equal(t, `[69,[[2,[1]],{"from":[10,[1]]}]]`, wire(t, fn))
}

func TestVariableIDsAreUniqueAcrossGoroutines(t *testing.T) {
	varCounter.Store(0)

	const goroutines = 16
	const perGoroutine = 100
	ids := make(chan uint64, goroutines*perGoroutine)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				ids <- nextVarID()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint64]bool)
	for id := range ids {
		require.False(t, seen[id], "variable id %d handed out twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, goroutines*perGoroutine)
}
