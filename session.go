package reql

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"math"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

var debugMode bool

var queryLog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: slog.LevelDebug,
}))

// SetDebug causes all queries sent to the server and responses received
// to be logged in raw form.
//
// Example usage:
//
//	r.SetDebug(true)
func SetDebug(debug bool) {
	debugMode = debug
}

// Session state bits.  Broken and changefeed-locked live in one word so
// a single load observes both consistently.
const (
	stateBroken uint32 = 1 << iota
	stateChangeFeed
)

// Session represents a connection to a server, use it to run queries
// against a database with query.Run(session).  A session multiplexes
// concurrent queries over one socket: each query gets a token, and a
// reader goroutine routes responses back by token.
//
// Example usage:
//
//	session, err := r.Connect(r.ConnectOpts{Address: "localhost:28015", Database: "test"})
//	rows := r.Table("heroes").Run(session)
type Session struct {
	opts ConnectOpts

	mu   sync.Mutex // guards conn, bw, done and db
	conn net.Conn
	bw   *bufio.Writer
	done chan struct{} // closed when the session breaks
	db   string

	wmu sync.Mutex // serializes query frames on the socket

	token    atomic.Uint64
	state    atomic.Uint32
	channels sync.Map // token -> chan *Response
}

// newSession wraps an already-established connection without
// authenticating, which is how tests talk to an in-process fake server.
func newSession(conn net.Conn, opts ConnectOpts) *Session {
	s := &Session{opts: opts, db: opts.Database}
	s.start(conn, false)
	return s
}

// start authenticates the connection if asked, installs it, and launches
// the reader goroutine.
func (s *Session) start(conn net.Conn, auth bool) error {
	br := bufio.NewReader(conn)
	bw := bufio.NewWriter(conn)
	if auth {
		conn.SetDeadline(time.Now().Add(s.opts.Timeout))
		if err := performHandshake(bw, br, s.opts.User, s.opts.Password); err != nil {
			return err
		}
		conn.SetDeadline(time.Time{})
	}

	done := make(chan struct{})
	s.mu.Lock()
	s.conn = conn
	s.bw = bw
	s.done = done
	s.mu.Unlock()
	s.state.Store(0)
	go s.readLoop(br, done)
	return nil
}

// readLoop routes each response frame to the in-flight query that owns
// its token.  Responses for unknown tokens belong to abandoned queries
// and are dropped.  Any read failure breaks the session: in-flight
// queries cannot tell whether they were executed.
func (s *Session) readLoop(br *bufio.Reader, done chan struct{}) {
	for {
		token, body, err := readFrame(br)
		if err != nil {
			s.fail()
			return
		}
		response := new(Response)
		if err := json.Unmarshal(body, response); err != nil {
			s.fail()
			return
		}
		if debugMode {
			queryLog.Debug("response", "token", token, "body", string(body))
		}
		if ch, ok := s.channels.Load(token); ok {
			select {
			case ch.(chan *Response) <- response:
			case <-done:
				// the session failed while this delivery was blocked
				return
			}
		}
	}
}

// fail marks the session broken, drops the socket, and closes the done
// signal so blocked queries return ErrConnectionBroken.  Delivery
// channels are never closed: the reader may be mid-send on one.
func (s *Session) fail() {
	if s.setState(stateBroken)&stateBroken != 0 {
		return
	}
	s.mu.Lock()
	if s.conn != nil {
		s.conn.Close()
	}
	done := s.done
	s.mu.Unlock()
	if done != nil {
		close(done)
	}
	s.channels.Range(func(token, _ interface{}) bool {
		s.channels.Delete(token)
		return true
	})
}

// setState sets the given bits and returns the previous state.
func (s *Session) setState(bits uint32) uint32 {
	for {
		old := s.state.Load()
		if s.state.CompareAndSwap(old, old|bits) {
			return old
		}
	}
}

func (s *Session) clearState(bits uint32) {
	for {
		old := s.state.Load()
		if s.state.CompareAndSwap(old, old&^bits) {
			return
		}
	}
}

// nextToken hands out query tokens.  The counter is never reused; if it
// ever runs out the session is beyond saving and is marked broken.
func (s *Session) nextToken() uint64 {
	token := s.token.Add(1)
	if token == math.MaxUint64 {
		s.setState(stateBroken)
	}
	return token
}

// connection registers a new in-flight query.  It fails when the session
// is broken, or when a changefeed is streaming: a changefeed occupies its
// session exclusively.
func (s *Session) connection() (*connection, error) {
	st := s.state.Load()
	if st&stateBroken != 0 {
		return nil, ErrConnectionBroken
	}
	if st&stateChangeFeed != 0 {
		return nil, ErrConnectionLocked
	}
	token := s.nextToken()
	if s.state.Load()&stateBroken != 0 {
		return nil, ErrConnectionBroken
	}
	ch := make(chan *Response, 4)
	s.channels.Store(token, ch)
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	return &connection{session: s, token: token, ch: ch, done: done}, nil
}

func (s *Session) writeQuery(token uint64, body []byte) error {
	if debugMode {
		queryLog.Debug("query", "token", token, "body", string(body))
	}
	s.wmu.Lock()
	defer s.wmu.Unlock()
	if s.state.Load()&stateBroken != 0 {
		return ErrConnectionBroken
	}
	s.mu.Lock()
	bw := s.bw
	s.mu.Unlock()
	if err := writeFrame(bw, token, body); err != nil {
		s.fail()
		return err
	}
	if err := bw.Flush(); err != nil {
		s.fail()
		return err
	}
	return nil
}

// Use changes the default database for a session.  This is the database
// that will be used when a query does not name one.
//
// Example usage:
//
//	session.Use("dave")
//	rows := r.Table("employees").Run(session) // uses database "dave"
func (s *Session) Use(database string) {
	s.mu.Lock()
	s.db = database
	s.mu.Unlock()
}

func (s *Session) database() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db
}

// NoreplyWait blocks until all previously submitted noreply queries have
// been executed by the server.
//
// Example usage:
//
//	err := session.NoreplyWait()
func (s *Session) NoreplyWait() error {
	conn, err := s.connection()
	if err != nil {
		return err
	}
	defer conn.release(false)

	response, err := conn.request(QueryNoreplyWait, nil, nullDatum())
	if err != nil {
		return err
	}
	if err := responseError(response); err != nil {
		return err
	}
	if response.Type != ResponseWaitComplete {
		return ErrWrongResponseType{response: response}
	}
	return nil
}

// Server returns identifying information about the server at the other
// end of the session.
//
// Example usage:
//
//	info, err := session.Server()
//	fmt.Println("connected to", info.Name)
func (s *Session) Server() (*ServerInfo, error) {
	conn, err := s.connection()
	if err != nil {
		return nil, err
	}
	defer conn.release(false)

	response, err := conn.request(QueryServerInfo, nil, nullDatum())
	if err != nil {
		return nil, err
	}
	if err := responseError(response); err != nil {
		return nil, err
	}
	if response.Type != ResponseServerInfo || len(response.Results) != 1 {
		return nil, ErrWrongResponseType{response: response}
	}
	info := new(ServerInfo)
	if err := json.Unmarshal(response.Results[0], info); err != nil {
		return nil, err
	}
	return info, nil
}

// Close closes the session, freeing any associated resources.  Pass
// CloseOpts{NoreplyWait: true} to first wait for outstanding noreply
// writes.
//
// Example usage:
//
//	err := session.Close()
func (s *Session) Close(opts ...CloseOpts) error {
	for _, o := range opts {
		if o.NoreplyWait {
			if err := s.NoreplyWait(); err != nil {
				return err
			}
		}
	}

	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return nil
	}
	// closing the socket stops the reader goroutine, which breaks the
	// session and unblocks any in-flight queries
	return conn.Close()
}

// Reconnect closes and re-opens a session, cancelling any outstanding
// requests.
//
// Example usage:
//
//	err := session.Reconnect()
func (s *Session) Reconnect() error {
	if err := s.Close(); err != nil {
		return err
	}
	conn, err := net.DialTimeout("tcp", s.opts.Address, s.opts.Timeout)
	if err != nil {
		return err
	}
	if err := s.start(conn, true); err != nil {
		conn.Close()
		return err
	}
	return nil
}
