// Package reql implements the RethinkDB query language for Go.
// RethinkDB (http://www.rethinkdb.com/) is an open-source distributed
// database built around changefeeds: queries that push updates to the
// client as the underlying data changes.
//
// Queries are built client-side as expression trees and serialized to
// the server's JSON wire format when run.  If you are familiar with the
// RethinkDB API from another driver, this package should be
// straightforward to use; the docs contain plenty of examples.
//
// Example usage:
//
//	package main
//
//	import (
//	    "fmt"
//	    r "github.com/rethinkgo/reql"
//	)
//
//	type Employee struct {
//	    FirstName string
//	    LastName  string
//	    Job       string
//	}
//
//	func main() {
//	    // Connect creates a session that may be used to run queries on
//	    // the server.
//	    session, err := r.Connect(r.ConnectOpts{
//	        Address:  "localhost:28015",
//	        Database: "company_info",
//	    })
//	    if err != nil {
//	        fmt.Println("error connecting:", err)
//	        return
//	    }
//
//	    // Run returns an iterator over the resulting rows.
//	    rows := r.Table("employees").Run(session)
//	    var row Employee
//	    for rows.Next(&row) {
//	        fmt.Println("row:", row)
//	    }
//	    if err = rows.Err(); err != nil {
//	        fmt.Println("err:", err)
//	    }
//	}
//
// Queries compose like the JavaScript driver's: chain commands off
// r.Table, reference the current document with r.Row, or pass Go
// closures taking and returning r.Term.  A query is only sent to the
// server when Run is called, and a single session runs any number of
// concurrent queries, each matched to its responses by token.
package reql
