package reql

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"sync/atomic"
	"time"
)

// Every message after the handshake is framed the same way in both
// directions: an 8 byte query token, a 4 byte body length, then that many
// bytes of JSON, all integers little-endian.

const frameHeaderSize = 12

// maxFrameSize bounds a single response body; anything larger means the
// stream is out of sync.
const maxFrameSize = 128 << 20

func writeFrame(w io.Writer, token uint64, body []byte) error {
	header := make([]byte, frameHeaderSize)
	binary.LittleEndian.PutUint64(header[0:8], token)
	binary.LittleEndian.PutUint32(header[8:12], uint32(len(body)))
	if _, err := w.Write(header); err != nil {
		return err
	}
	_, err := w.Write(body)
	return err
}

func readFrame(r io.Reader) (uint64, []byte, error) {
	header := make([]byte, frameHeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return 0, nil, err
	}
	token := binary.LittleEndian.Uint64(header[0:8])
	length := binary.LittleEndian.Uint32(header[8:12])
	if length > maxFrameSize {
		return 0, nil, fmt.Errorf("reql: oversized response frame (%d bytes), stream is out of sync", length)
	}
	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return 0, nil, err
	}
	return token, body, nil
}

// ConnectOpts are the options for Connect.
//
// Example usage:
//
//	session, err := r.Connect(r.ConnectOpts{Address: "localhost:28015", Database: "test"})
type ConnectOpts struct {
	// Address of the server, defaults to "localhost:28015".
	Address string
	// Database used when a query does not name one.
	Database string
	// User defaults to "admin", Password to the empty string.
	User     string
	Password string
	// Timeout for establishing the connection and completing the
	// handshake, defaults to 20 seconds.
	Timeout time.Duration
}

// CloseOpts are the options for closing a session or cursor.
type CloseOpts struct {
	// NoreplyWait makes Close first wait for all outstanding noreply
	// writes to be committed.
	NoreplyWait bool
}

func (CloseOpts) optArgs() {}

// connection is one query in flight on a session: a token, the channel
// the reader goroutine delivers that token's responses on, and the
// session's failure signal.
type connection struct {
	session *Session
	token   uint64
	ch      chan *Response
	done    chan struct{}
	closed  atomic.Bool
}

// request sends one framed query and waits for its response.
func (c *connection) request(qt QueryType, term *Term, opts Datum) (*Response, error) {
	if err := c.send(qt, term, opts); err != nil {
		return nil, err
	}
	return c.wait()
}

func (c *connection) send(qt QueryType, term *Term, opts Datum) error {
	body, err := json.Marshal(Payload{QueryType: qt, Term: term, Opts: opts})
	if err != nil {
		return err
	}
	return c.session.writeQuery(c.token, body)
}

// wait blocks for this token's next response.  The done signal firing
// means the reader goroutine died; anything it delivered before the
// failure is still handed out first.
func (c *connection) wait() (*Response, error) {
	select {
	case response := <-c.ch:
		return response, nil
	case <-c.done:
		select {
		case response := <-c.ch:
			return response, nil
		default:
			return nil, ErrConnectionBroken
		}
	}
}

// release retires the token.  If this query was a changefeed the session
// becomes available for new queries again.
func (c *connection) release(changeFeed bool) {
	if !c.closed.CompareAndSwap(false, true) {
		return
	}
	c.session.channels.Delete(c.token)
	if changeFeed {
		c.session.clearState(stateChangeFeed)
	}
}

// Connect opens a session: it dials the server, authenticates, and
// starts the goroutine that routes responses to in-flight queries.
//
// Example usage:
//
//	session, err := r.Connect(r.ConnectOpts{Address: "localhost:28015"})
func Connect(opts ConnectOpts) (*Session, error) {
	if opts.Address == "" {
		opts.Address = "localhost:28015"
	}
	if opts.User == "" {
		opts.User = "admin"
	}
	if opts.Timeout == 0 {
		opts.Timeout = 20 * time.Second
	}

	s := &Session{opts: opts, db: opts.Database}
	conn, err := net.DialTimeout("tcp", opts.Address, opts.Timeout)
	if err != nil {
		return nil, err
	}
	if err := s.start(conn, true); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}
