package reql

import "encoding/json"

// Payload is the framed body of one query: the query type, then for
// start queries the term being run and the global options object.
type Payload struct {
	QueryType QueryType
	Term      *Term
	Opts      Datum
}

func (p Payload) MarshalJSON() ([]byte, error) {
	if p.Term == nil {
		return json.Marshal([1]interface{}{int32(p.QueryType)})
	}
	if p.Opts.isNull() {
		return json.Marshal([2]interface{}{int32(p.QueryType), p.Term})
	}
	return json.Marshal([3]interface{}{int32(p.QueryType), p.Term, p.Opts})
}

// RunOpts are the global options for Run; they apply to the whole query
// rather than any one command in it.
type RunOpts struct {
	// Db overrides the session's default database.  It may be a database
	// name or a Db term.
	Db         interface{} `json:"db,omitempty"`
	ReadMode   interface{} `json:"read_mode,omitempty"`
	TimeFormat interface{} `json:"time_format,omitempty"`
	Profile    interface{} `json:"profile,omitempty"`
	Durability interface{} `json:"durability,omitempty"`
	// GroupFormat and BinaryFormat control how grouped data and binary
	// objects are serialized in the response.
	GroupFormat  interface{} `json:"group_format,omitempty"`
	BinaryFormat interface{} `json:"binary_format,omitempty"`
	// Noreply makes the server execute the query without sending back a
	// response; the returned cursor is empty.
	Noreply                   interface{} `json:"noreply,omitempty"`
	ArrayLimit                interface{} `json:"array_limit,omitempty"`
	MinBatchRows              interface{} `json:"min_batch_rows,omitempty"`
	MaxBatchRows              interface{} `json:"max_batch_rows,omitempty"`
	FirstBatchScaledownFactor interface{} `json:"first_batch_scaledown_factor,omitempty"`
}

func (RunOpts) optArgs() {}

// Run executes a query on the given session and returns an iterator over
// the resulting rows.  Query construction is lazy, so an invalid value
// embedded anywhere in the query surfaces here, through the cursor's
// Err method.
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
func (t Term) Run(session *Session, opts ...RunOpts) *Cursor {
	var o RunOpts
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Db == nil {
		if db := session.database(); db != "" {
			o.Db = db
		}
	}
	if name, ok := o.Db.(string); ok {
		o.Db = newTerm(TermDb).withArg(fromJSON(name))
	}
	globalOpts, err := optsToDatum(o)
	if err != nil {
		return &Cursor{lasterr: err}
	}

	conn, err := session.connection()
	if err != nil {
		return &Cursor{lasterr: err}
	}

	t = t.resolve()
	feed := t.changeFeed
	if feed {
		session.setState(stateChangeFeed)
	}
	cursor := &Cursor{conn: conn, feed: feed}

	if o.Noreply == true {
		err := conn.send(QueryStart, &t, globalOpts)
		conn.release(feed)
		cursor.conn = nil
		cursor.complete = true
		cursor.lasterr = err
		return cursor
	}

	response, err := conn.request(QueryStart, &t, globalOpts)
	if err != nil {
		conn.release(feed)
		cursor.conn = nil
		cursor.lasterr = err
		return cursor
	}
	cursor.absorb(response)
	return cursor
}

// Exec runs a query, discards any result, and reports only whether it
// succeeded.  Useful for writes when the write counts are not needed.
//
// Example usage:
//
//	err := r.Table("heroes").Insert(hero).Exec(session)
func (t Term) Exec(session *Session, opts ...RunOpts) error {
	cursor := t.Run(session, opts...)
	if err := cursor.Err(); err != nil {
		return err
	}
	return cursor.Close()
}
