package reql

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// Golden copies of complete query frames, exactly as they go on the
// wire after the 12-byte header.
func TestQueryWireFormatGolden(t *testing.T) {
	g := goldie.New(t)

	marshal := func(p Payload) []byte {
		body, err := json.Marshal(p)
		require.NoError(t, err)
		return body
	}

	count := Table("table").Filter(Map{"id": 103}).Count()
	db, err := optsToDatum(RunOpts{Db: newTerm(TermDb).withArg(fromJSON("test"))})
	require.NoError(t, err)
	g.Assert(t, "start_filter_count", marshal(Payload{
		QueryType: QueryStart, Term: &count, Opts: db,
	}))

	insert := Table("table").Insert(Map{"id": 1, "name": "a"}, InsertOpts{Conflict: "update"})
	g.Assert(t, "start_insert", marshal(Payload{QueryType: QueryStart, Term: &insert}))

	feed := Table("games").Changes()
	g.Assert(t, "start_changefeed", marshal(Payload{QueryType: QueryStart, Term: &feed}))

	g.Assert(t, "continue", marshal(Payload{QueryType: QueryContinue}))
	g.Assert(t, "stop", marshal(Payload{QueryType: QueryStop}))
	g.Assert(t, "noreply_wait", marshal(Payload{QueryType: QueryNoreplyWait}))
	g.Assert(t, "server_info", marshal(Payload{QueryType: QueryServerInfo}))
}
