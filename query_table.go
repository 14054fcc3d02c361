package reql

// Table references and secondary index administration.

// Table references a table in the session's default database.
//
// Example usage:
//
//	r.Table("marvel").Run(session)
//	r.Table("marvel", r.TableOpts{ReadMode: "outdated"})
func Table(name interface{}, opts ...interface{}) Term {
	return newTerm(TermTable).withOneArg(name).withManyArgs(opts...)
}

// Table references a table in this database.
//
// Example usage:
//
//	r.Db("heroes").Table("marvel")
func (t Term) Table(name interface{}, opts ...interface{}) Term {
	return newTerm(TermTable).withOneArg(name).withManyArgs(opts...).withParent(t)
}

// TableCreate creates a table in the session's default database.
//
// Example usage:
//
//	r.TableCreate("dc_universe", r.TableCreateOpts{PrimaryKey: "name"})
func TableCreate(name interface{}, opts ...interface{}) Term {
	return newTerm(TermTableCreate).withOneArg(name).withManyArgs(opts...)
}

// TableCreate creates a table in this database.
func (t Term) TableCreate(name interface{}, opts ...interface{}) Term {
	return newTerm(TermTableCreate).withOneArg(name).withManyArgs(opts...).withParent(t)
}

// TableDrop drops a table from the session's default database.
func TableDrop(name interface{}) Term {
	return newTerm(TermTableDrop).withOneArg(name)
}

// TableDrop drops a table from this database.
func (t Term) TableDrop(name interface{}) Term {
	return newTerm(TermTableDrop).withOneArg(name).withParent(t)
}

// TableList lists the table names in the session's default database.
func TableList() Term {
	return newTerm(TermTableList)
}

// TableList lists the table names in this database.
func (t Term) TableList() Term {
	return newTerm(TermTableList).withParent(t)
}

// IndexCreate creates a secondary index on a table, optionally from an
// index function.
//
// Example usage:
//
//	r.Table("comments").IndexCreate("postId")
//	r.Table("places").IndexCreate("location", r.IndexCreateOpts{Geo: true})
func (t Term) IndexCreate(args ...interface{}) Term {
	return newTerm(TermIndexCreate).withManyArgs(args...).withParent(t)
}

// IndexDrop deletes a secondary index.
func (t Term) IndexDrop(name interface{}) Term {
	return newTerm(TermIndexDrop).withOneArg(name).withParent(t)
}

// IndexList lists a table's secondary indexes.
func (t Term) IndexList() Term {
	return newTerm(TermIndexList).withParent(t)
}

// IndexStatus returns the construction status of the named indexes, or
// of all indexes.
func (t Term) IndexStatus(names ...interface{}) Term {
	return newTerm(TermIndexStatus).withManyArgs(names...).withParent(t)
}

// IndexWait blocks until the named indexes, or all indexes, are ready.
func (t Term) IndexWait(names ...interface{}) Term {
	return newTerm(TermIndexWait).withManyArgs(names...).withParent(t)
}

// IndexRename renames a secondary index.  Pass
// IndexRenameOpts{Overwrite: true} to replace an existing index.
func (t Term) IndexRename(oldName, newName interface{}, opts ...interface{}) Term {
	cmd := newTerm(TermIndexRename).withOneArg(oldName).withOneArg(newName)
	for _, o := range opts {
		cmd = cmd.withOptArg(o)
	}
	return cmd.withParent(t)
}

// Changes turns a query into a changefeed: an infinite stream of
// notifications as the query's results change.  A changefeed occupies
// its session exclusively; close the cursor to end the feed and release
// the session.
//
// Example usage:
//
//	feed := r.Table("games").Changes().Run(session)
//	var change map[string]interface{}
//	for feed.Next(&change) {
//		fmt.Println(change["new_val"])
//	}
func (t Term) Changes(opts ...interface{}) Term {
	cmd := newTerm(TermChanges)
	for _, o := range opts {
		cmd = cmd.withOptArg(o)
	}
	return cmd.withParent(t).markChangeFeed()
}
