package reql

import (
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testServer speaks the framed response protocol over one half of a
// net.Pipe, standing in for a real server.
type testServer struct {
	t    *testing.T
	conn net.Conn
}

func newTestSession(t *testing.T) (*Session, *testServer) {
	t.Helper()
	client, server := net.Pipe()
	sess := newSession(client, ConnectOpts{})
	t.Cleanup(func() {
		client.Close()
		server.Close()
	})
	return sess, &testServer{t: t, conn: server}
}

// read consumes one query frame and returns its token, query type and
// term payload.
func (s *testServer) read() (uint64, QueryType, json.RawMessage) {
	token, body, err := readFrame(s.conn)
	if !assert.NoError(s.t, err) {
		return 0, 0, nil
	}
	var parts []json.RawMessage
	if !assert.NoError(s.t, json.Unmarshal(body, &parts)) {
		return 0, 0, nil
	}
	var qt QueryType
	assert.NoError(s.t, json.Unmarshal(parts[0], &qt))
	var term json.RawMessage
	if len(parts) > 1 {
		term = parts[1]
	}
	return token, qt, term
}

func (s *testServer) respond(token uint64, response Response) {
	body, err := json.Marshal(response)
	if !assert.NoError(s.t, err) {
		return
	}
	assert.NoError(s.t, writeFrame(s.conn, token, body))
}

func atomResponse(values ...interface{}) Response {
	response := Response{Type: ResponseSuccessAtom}
	for _, v := range values {
		raw, _ := json.Marshal(v)
		response.Results = append(response.Results, raw)
	}
	return response
}

func TestRunDecodesAtom(t *testing.T) {
	sess, srv := newTestSession(t)
	go func() {
		token, qt, _ := srv.read()
		assert.Equal(t, QueryStart, qt)
		srv.respond(token, atomResponse(42))
	}()

	var n int
	require.NoError(t, Expr(40).Add(2).Run(sess).One(&n))
	assert.Equal(t, 42, n)
}

func TestTokensAreUniqueAndRetired(t *testing.T) {
	sess, srv := newTestSession(t)
	tokens := make(chan uint64, 3)
	go func() {
		for i := 0; i < 3; i++ {
			token, _, _ := srv.read()
			tokens <- token
			srv.respond(token, atomResponse(i))
		}
	}()

	for i := 0; i < 3; i++ {
		var got int
		require.NoError(t, Expr(i).Run(sess).One(&got))
		assert.Equal(t, i, got)
	}

	prev := uint64(0)
	for i := 0; i < 3; i++ {
		token := <-tokens
		assert.Greater(t, token, prev, "tokens must be strictly increasing")
		prev = token
	}

	// every completed query must have retired its token
	remaining := 0
	sess.channels.Range(func(_, _ interface{}) bool {
		remaining++
		return true
	})
	assert.Zero(t, remaining)
}

func TestConcurrentQueriesAreRoutedByToken(t *testing.T) {
	sess, srv := newTestSession(t)

	const queries = 8
	type frame struct {
		token uint64
		term  json.RawMessage
	}
	frames := make([]frame, 0, queries)
	go func() {
		for i := 0; i < queries; i++ {
			token, _, term := srv.read()
			frames = append(frames, frame{token, term})
		}
		// answer in reverse arrival order to exercise routing
		for i := len(frames) - 1; i >= 0; i-- {
			var n int
			assert.NoError(t, json.Unmarshal(frames[i].term, &n))
			srv.respond(frames[i].token, atomResponse(n))
		}
	}()

	results := make(chan error, queries)
	for i := 0; i < queries; i++ {
		go func(i int) {
			var got int
			err := Expr(i).Run(sess).One(&got)
			if err == nil && got != i {
				err = assert.AnError
			}
			results <- err
		}(i)
	}
	for i := 0; i < queries; i++ {
		require.NoError(t, <-results)
	}
}

func TestBrokenSessionFailsFast(t *testing.T) {
	sess, srv := newTestSession(t)

	started := make(chan struct{})
	go func() {
		srv.read()
		close(started)
		srv.conn.Close()
	}()

	err := Expr(1).Run(sess).Err()
	assert.ErrorIs(t, err, ErrConnectionBroken)
	<-started

	// the session stays broken: later queries fail without touching the
	// socket
	assert.ErrorIs(t, Expr(2).Run(sess).Err(), ErrConnectionBroken)
	assert.ErrorIs(t, sess.NoreplyWait(), ErrConnectionBroken)
}

func TestFailureWhileDeliveryBlocked(t *testing.T) {
	sess, srv := newTestSession(t)
	conn, err := sess.connection()
	require.NoError(t, err)

	// more responses than the delivery buffer holds, with nobody
	// receiving, so the reader ends up blocked mid-send
	go func() {
		for i := 0; i < 6; i++ {
			body, err := json.Marshal(atomResponse(i))
			if err != nil || writeFrame(srv.conn, conn.token, body) != nil {
				return
			}
		}
	}()
	time.Sleep(50 * time.Millisecond)

	sess.fail()

	// the wedged delivery must unwind without panicking; draining what
	// was delivered before the failure ends in ErrConnectionBroken
	for {
		if _, err := conn.wait(); err != nil {
			assert.ErrorIs(t, err, ErrConnectionBroken)
			return
		}
	}
}

func TestChangefeedLocksSession(t *testing.T) {
	sess, srv := newTestSession(t)

	go func() {
		token, qt, _ := srv.read()
		assert.Equal(t, QueryStart, qt)
		srv.respond(token, Response{
			Type:    ResponseSuccessPartial,
			Results: []json.RawMessage{json.RawMessage(`{"new_val":1}`)},
			Notes:   []ResponseNote{NoteSequenceFeed},
		})
	}()

	feed := Table("games").Changes().Run(sess)
	require.NoError(t, feed.Err())
	assert.True(t, feed.IsFeed())

	var change map[string]interface{}
	require.True(t, feed.Next(&change))

	// the feed owns the session exclusively
	assert.ErrorIs(t, Expr(1).Run(sess).Err(), ErrConnectionLocked)

	go func() {
		token, qt, _ := srv.read()
		assert.Equal(t, QueryStop, qt)
		srv.respond(token, Response{Type: ResponseSuccessSequence})
	}()
	require.NoError(t, feed.Close())

	// closing the feed releases the lock
	go func() {
		token, _, _ := srv.read()
		srv.respond(token, atomResponse("ok"))
	}()
	var s string
	require.NoError(t, Expr("ok").Run(sess).One(&s))
}

func TestChangefeedCloseNoreplyWait(t *testing.T) {
	run := func(t *testing.T, opts []CloseOpts, wantStop string) {
		sess, srv := newTestSession(t)
		go func() {
			token, _, _ := srv.read()
			srv.respond(token, Response{
				Type:    ResponseSuccessPartial,
				Results: []json.RawMessage{json.RawMessage(`{"new_val":1}`)},
				Notes:   []ResponseNote{NoteSequenceFeed},
			})
		}()
		feed := Table("games").Changes().Run(sess)
		require.NoError(t, feed.Err())

		stop := make(chan string, 1)
		go func() {
			token, body, err := readFrame(srv.conn)
			if !assert.NoError(t, err) {
				return
			}
			stop <- string(body)
			srv.respond(token, Response{Type: ResponseSuccessSequence})
		}()
		require.NoError(t, feed.Close(opts...))
		assert.Equal(t, wantStop, <-stop)
	}

	t.Run("default drops noreply writes", func(t *testing.T) {
		run(t, nil, `[3,{"noreply":false}]`)
	})
	t.Run("waits for noreply writes", func(t *testing.T) {
		run(t, []CloseOpts{{NoreplyWait: true}}, `[3]`)
	})
}

func TestCursorContinue(t *testing.T) {
	sess, srv := newTestSession(t)

	go func() {
		token, qt, _ := srv.read()
		assert.Equal(t, QueryStart, qt)
		srv.respond(token, Response{
			Type:    ResponseSuccessPartial,
			Results: []json.RawMessage{json.RawMessage(`1`), json.RawMessage(`2`)},
		})
		token, qt, _ = srv.read()
		assert.Equal(t, QueryContinue, qt)
		srv.respond(token, Response{
			Type:    ResponseSuccessSequence,
			Results: []json.RawMessage{json.RawMessage(`3`)},
		})
	}()

	var all []int
	require.NoError(t, Table("t").Run(sess).All(&all))
	assert.Equal(t, []int{1, 2, 3}, all)
}

func TestAtomArrayIteratesElementWise(t *testing.T) {
	sess, srv := newTestSession(t)
	go func() {
		token, _, _ := srv.read()
		srv.respond(token, atomResponse([]int{1, 2, 3}))
	}()

	var all []int
	require.NoError(t, Expr(List{1, 2, 3}).Run(sess).All(&all))
	assert.Equal(t, []int{1, 2, 3}, all)
}

func TestRunReportsServerErrors(t *testing.T) {
	sess, srv := newTestSession(t)
	go func() {
		token, _, _ := srv.read()
		srv.respond(token, Response{
			Type:    ResponseRuntimeError,
			Results: []json.RawMessage{json.RawMessage(`"table missing"`)},
		})
	}()

	err := Table("nope").Run(sess).Err()
	var runtimeErr ErrRuntime
	require.ErrorAs(t, err, &runtimeErr)
	assert.Contains(t, runtimeErr.Error(), "table missing")
}

func TestNoreplyWait(t *testing.T) {
	sess, srv := newTestSession(t)
	go func() {
		token, qt, _ := srv.read()
		assert.Equal(t, QueryNoreplyWait, qt)
		srv.respond(token, Response{Type: ResponseWaitComplete})
	}()
	require.NoError(t, sess.NoreplyWait())
}

func TestServerInfo(t *testing.T) {
	sess, srv := newTestSession(t)
	go func() {
		token, qt, _ := srv.read()
		assert.Equal(t, QueryServerInfo, qt)
		srv.respond(token, Response{
			Type:    ResponseServerInfo,
			Results: []json.RawMessage{json.RawMessage(`{"id":"a5","proxy":false,"name":"kermit"}`)},
		})
	}()

	info, err := sess.Server()
	require.NoError(t, err)
	assert.Equal(t, "kermit", info.Name)
	assert.False(t, info.Proxy)
}

func TestNoreplyRunReturnsImmediately(t *testing.T) {
	sess, srv := newTestSession(t)
	received := make(chan json.RawMessage, 1)
	go func() {
		_, _, term := srv.read()
		received <- term
	}()

	cursor := Table("t").Insert(Map{"a": 1}).Run(sess, RunOpts{Noreply: true})
	require.NoError(t, cursor.Err())

	select {
	case term := <-received:
		assert.Contains(t, string(term), `[56,`)
	case <-time.After(time.Second):
		t.Fatal("server never received the noreply query")
	}
}

func TestRunSendsSessionDatabase(t *testing.T) {
	sess, srv := newTestSession(t)
	sess.Use("testdb")

	go func() {
		token, body, err := readFrame(srv.conn)
		if !assert.NoError(t, err) {
			return
		}
		assert.Contains(t, string(body), `"db":[14,["testdb"]]`)
		srv.respond(token, atomResponse(1))
	}()

	var n int
	require.NoError(t, Expr(1).Run(sess).One(&n))
}
