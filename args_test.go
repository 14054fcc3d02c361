package reql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgsSpreadsSliceClientSide(t *testing.T) {
	term := Table("heroes").GetAll(Args{List{"a", "b"}})
	assert.Equal(t, `[78,[[15,["heroes"]],"a","b"]]`, wire(t, term))

	// typed slices spread the same way
	term = Table("heroes").GetAll(Args{[]string{"a", "b"}})
	assert.Equal(t, `[78,[[15,["heroes"]],"a","b"]]`, wire(t, term))
}

func TestArgsSplicesTermServerSide(t *testing.T) {
	// ids computed by the query itself cannot be spread client-side; the
	// server does it with an args node
	ids := Table("posts").G("author_ids")
	term := Table("heroes").GetAll(Args{ids})
	assert.Equal(t, `[78,[[15,["heroes"]],[154,[[31,[[15,["posts"]],"author_ids"]]]]]]`, wire(t, term))
}

func TestArgsWithOptPairsValueAndOptions(t *testing.T) {
	term := Table("heroes").Insert(ArgsWithOpt{Map{"id": 1}, InsertOpts{Conflict: "replace"}})
	assert.Equal(t, `[56,[[15,["heroes"]],{"id":1}],{"conflict":"replace"}]`, wire(t, term))
}

func TestIndexSelectsSecondaryIndex(t *testing.T) {
	term := Table("heroes").Between(10, 20, Index("power"))
	assert.Equal(t, `[182,[[15,["heroes"]],10,20],{"index":"power"}]`, wire(t, term))
}

func TestManyArgsMixedForms(t *testing.T) {
	term := Table("heroes").GetAll("solo", Args{List{"a", "b"}}, Index("name"))
	assert.Equal(t, `[78,[[15,["heroes"]],"solo","a","b"],{"index":"name"}]`, wire(t, term))
}

func TestOptionStructAsTrailingArgument(t *testing.T) {
	term := Table("heroes").Delete(DeleteOpts{Durability: DurabilitySoft})
	assert.Equal(t, `[54,[[15,["heroes"]]],{"durability":"soft"}]`, wire(t, term))
}

func TestEmptyOptionStructStillSerializes(t *testing.T) {
	// all-zero option structs attach an empty options object rather than
	// nothing, the caller asked for one explicitly
	term := Table("heroes").Delete(DeleteOpts{})
	assert.Equal(t, `[54,[[15,["heroes"]]],{}]`, wire(t, term))
}
