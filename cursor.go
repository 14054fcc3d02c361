package reql

import (
	"encoding/json"
	"io"
)

// Cursor is an iterator over the rows returned by a query, pulling
// further batches from the server as it is consumed.  A cursor is not
// shared between goroutines.
//
// Example usage:
//
//	rows := r.Table("heroes").Run(session)
//	var hero map[string]interface{}
//	for rows.Next(&hero) {
//		fmt.Println("hero:", hero)
//	}
//	if rows.Err() != nil {
//		...
//	}
type Cursor struct {
	conn     *connection
	feed     bool
	buffer   []json.RawMessage
	complete bool
	closed   bool
	lasterr  error
	profile  json.RawMessage
}

// absorb folds one response into the cursor.  Atom responses holding an
// array iterate element by element, the same as a sequence.
func (c *Cursor) absorb(response *Response) {
	if err := responseError(response); err != nil {
		c.lasterr = err
		c.finish()
		return
	}
	if len(response.Profile) > 0 {
		c.profile = response.Profile
	}

	switch response.Type {
	case ResponseSuccessAtom:
		if len(response.Results) == 1 {
			c.buffer = explodeAtom(response.Results[0])
		} else {
			c.buffer = response.Results
		}
		c.complete = true
		c.finish()
	case ResponseSuccessSequence:
		c.buffer = response.Results
		c.complete = true
		c.finish()
	case ResponseSuccessPartial:
		c.buffer = response.Results
		c.feed = c.feed || response.isFeed()
	case ResponseWaitComplete:
		c.complete = true
		c.finish()
	default:
		c.lasterr = ErrWrongResponseType{response: response}
		c.finish()
	}
}

// explodeAtom splits an array-valued atom into its elements so it can be
// iterated; any other value is a single row.
func explodeAtom(raw json.RawMessage) []json.RawMessage {
	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err == nil && isJSONArray(raw) {
		return rows
	}
	return []json.RawMessage{raw}
}

func isJSONArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b == '['
	}
	return false
}

// finish retires the cursor's token; for a changefeed this unlocks the
// session.
func (c *Cursor) finish() {
	if c.conn != nil {
		c.conn.release(c.feed)
		c.conn = nil
	}
}

// Next retrieves the next row, decoding it into dest, and returns false
// when the cursor is exhausted or has failed.  Check Err afterwards to
// tell those apart.
func (c *Cursor) Next(dest interface{}) bool {
	for {
		if c.lasterr != nil || c.closed {
			return false
		}
		if len(c.buffer) > 0 {
			row := c.buffer[0]
			c.buffer = c.buffer[1:]
			if err := json.Unmarshal(row, dest); err != nil {
				c.lasterr = err
				return false
			}
			return true
		}
		if c.complete || c.conn == nil {
			c.lasterr = io.EOF
			return false
		}

		response, err := c.conn.request(QueryContinue, nil, nullDatum())
		if err != nil {
			c.lasterr = err
			c.finish()
			return false
		}
		c.absorb(response)
	}
}

// One retrieves the first row and closes the cursor.  It returns
// ErrEmptyResult if the query returned no rows at all.
//
// Example usage:
//
//	var hero map[string]interface{}
//	err := r.Table("heroes").Get("Wolverine").Run(session).One(&hero)
func (c *Cursor) One(dest interface{}) error {
	if !c.Next(dest) {
		if err := c.Err(); err != nil {
			return err
		}
		return ErrEmptyResult
	}
	return c.Close()
}

// All retrieves every remaining row into dest, which must be a pointer
// to a slice, then closes the cursor.  Do not use it on a changefeed.
//
// Example usage:
//
//	var heroes []map[string]interface{}
//	err := r.Table("heroes").Run(session).All(&heroes)
func (c *Cursor) All(dest interface{}) error {
	rows := []json.RawMessage{}
	var row json.RawMessage
	for c.Next(&row) {
		rows = append(rows, append(json.RawMessage(nil), row...))
	}
	if err := c.Err(); err != nil {
		return err
	}
	if err := c.Close(); err != nil {
		return err
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// Err returns the error that stopped iteration, if any.  Reaching the
// end of the rows is not an error.
func (c *Cursor) Err() error {
	if c.lasterr == io.EOF {
		return nil
	}
	return c.lasterr
}

// Profile returns the query execution profile, when the query was run
// with RunOpts{Profile: true}.
func (c *Cursor) Profile() json.RawMessage {
	return c.profile
}

// IsFeed reports whether the cursor is a changefeed, streaming changes
// indefinitely rather than a finite result set.
func (c *Cursor) IsFeed() bool {
	return c.feed
}

// Close stops the cursor.  If rows are still pending server-side the
// server is told to drop them; closing a changefeed's cursor is how the
// feed is ended, and unlocks the session for other queries.  Pass
// CloseOpts{NoreplyWait: true} to have the server flush outstanding
// noreply writes before acknowledging.
//
// Example usage:
//
//	feed := r.Table("heroes").Changes(nil).Run(session)
//	...
//	err := feed.Close()
func (c *Cursor) Close(opts ...CloseOpts) error {
	if c.closed {
		return nil
	}
	c.closed = true

	conn := c.conn
	c.conn = nil
	if conn == nil {
		return nil
	}
	var err error
	if !c.complete {
		wait := false
		for _, o := range opts {
			wait = wait || o.NoreplyWait
		}
		// tell the server to drop the stream, and wait for the
		// acknowledgement so the token is dead before it is reused.
		// Unless asked to wait for noreply writes, the stop carries a
		// noreply marker telling the server not to flush them.
		var term *Term
		if !wait {
			marker := fromJSON(Map{"noreply": false})
			term = &marker
		}
		if err = conn.send(QueryStop, term, nullDatum()); err == nil {
			_, err = conn.wait()
		}
	}
	conn.release(c.feed)
	return err
}
