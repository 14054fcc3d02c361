package reql

import "encoding/json"

// Response is one message read from the server, matching the JSON wire
// layout.  Results hold raw JSON so callers decide what to decode them
// into.
type Response struct {
	Type      ResponseType      `json:"t"`
	Results   []json.RawMessage `json:"r"`
	Backtrace []interface{}     `json:"b,omitempty"`
	Profile   json.RawMessage   `json:"p,omitempty"`
	Notes     []ResponseNote    `json:"n,omitempty"`
	ErrorType ErrorType         `json:"e,omitempty"`
}

// isFeed reports whether the response stream is a changefeed, per the
// notes attached to the first response.
func (r *Response) isFeed() bool {
	for _, n := range r.Notes {
		switch n {
		case NoteSequenceFeed, NoteAtomFeed, NoteOrderByLimitFeed, NoteUnidirectionalFeed:
			return true
		}
	}
	return false
}

// WriteResponse is a type that can be used to read any responses to write
// queries, such as .Insert()
//
// Example usage:
//
//	var response r.WriteResponse
//	err := r.Table("heroes").Insert(r.Map{"name": "Professor X"}).Run(session).One(&response)
//	fmt.Println("inserted", response.Inserted, "rows")
type WriteResponse struct {
	Inserted      int
	Errors        int
	Created       int
	Dropped       int
	Replaced      int
	Unchanged     int
	Skipped       int
	Deleted       int
	GeneratedKeys []string `json:"generated_keys"`
	FirstError    string   `json:"first_error"` // populated if Errors > 0
	Changes       []struct {
		NewValue interface{} `json:"new_val"`
		OldValue interface{} `json:"old_val"`
	}
}

// ServerInfo describes the server at the other end of a session.
//
// Example usage:
//
//	info, err := session.Server()
type ServerInfo struct {
	ID    string `json:"id"`
	Proxy bool   `json:"proxy"`
	Name  string `json:"name,omitempty"`
}
