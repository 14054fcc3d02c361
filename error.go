package reql

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrConnectionBroken is returned when a session has hit an
	// unrecoverable failure; the session must be reconnected before any
	// further queries can run.
	ErrConnectionBroken = errors.New("reql: connection is broken")

	// ErrConnectionLocked is returned when a session is streaming a
	// changefeed; a changefeed occupies its session exclusively until the
	// feed's cursor is closed.
	ErrConnectionLocked = errors.New("reql: connection is locked by a changefeed")

	// ErrEmptyResult is returned by Cursor.One when the query returned no
	// documents.
	ErrEmptyResult = errors.New("reql: query returned no documents")

	// ErrClosed is returned when using a cursor or session after closing
	// it.
	ErrClosed = errors.New("reql: closed")
)

func formatError(message string, response *Response) string {
	var responseString string
	if len(response.Results) == 1 {
		json.Unmarshal(response.Results[0], &responseString)
	}
	if responseString == "" {
		responseString = fmt.Sprintf("%v", response.Results)
	}
	return fmt.Sprintf("reql: %v: %v", message, responseString)
}

// ErrBadQuery indicates that the server has told us we have constructed an
// invalid query.
//
// Example usage:
//
//	err := r.Table("heroes").Slice(5, 2).Run(session).Err()
type ErrBadQuery struct {
	response *Response
}

func (e ErrBadQuery) Error() string {
	return formatError("Server could not make sense of our query", e.response)
}

// ErrRuntime indicates that the server has encountered an error while
// trying to execute our query.
//
// Example usage:
//
//	err := r.Table("table_that_doesnt_exist").Run(session).Err()
//	err := r.Error("error time!").Run(session).Err()
type ErrRuntime struct {
	response *Response
}

func (e ErrRuntime) Error() string {
	return formatError("Server could not execute our query", e.response)
}

// ErrBrokenClient means the server believes there's a bug in the client
// library, for instance a malformed message.
type ErrBrokenClient struct {
	response *Response
}

func (e ErrBrokenClient) Error() string {
	return formatError("Server rejected our message as malformed, this is likely a bug in the client library", e.response)
}

// ErrWrongResponseType is returned when the response from the server does
// not match what the calling method expected, for instance calling .One()
// on a query that returns a stream.
type ErrWrongResponseType struct {
	response *Response
}

func (e ErrWrongResponseType) Error() string {
	return "reql: Wrong response type, you may have used the wrong one of: .Exec(), .One(), .All()"
}

// responseError converts an error response into a typed error, or returns
// nil for success responses.
func responseError(response *Response) error {
	switch response.Type {
	case ResponseCompileError:
		return ErrBadQuery{response: response}
	case ResponseClientError:
		return ErrBrokenClient{response: response}
	case ResponseRuntimeError:
		return ErrRuntime{response: response}
	}
	return nil
}
