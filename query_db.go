package reql

// Database and cluster administration commands.

// Db references a database.
//
// Example usage:
//
//	r.Db("heroes").Table("marvel")
func Db(name interface{}) Term {
	return newTerm(TermDb).withOneArg(name)
}

// DbCreate creates a database.
func DbCreate(name interface{}) Term {
	return newTerm(TermDbCreate).withOneArg(name)
}

// DbDrop drops a database, deleting all its tables.
func DbDrop(name interface{}) Term {
	return newTerm(TermDbDrop).withOneArg(name)
}

// DbList lists all database names.
func DbList() Term {
	return newTerm(TermDbList)
}

// Grant grants or denies access permissions for a user account,
// globally.
//
// Example usage:
//
//	r.Grant("chatapp", r.GrantOpts{Read: true, Write: true})
func Grant(username interface{}, opts ...interface{}) Term {
	cmd := newTerm(TermGrant).withOneArg(username)
	for _, o := range opts {
		cmd = cmd.withOptArg(o)
	}
	return cmd
}

// Grant grants or denies access permissions on this database or table.
func (t Term) Grant(username interface{}, opts ...interface{}) Term {
	cmd := newTerm(TermGrant).withOneArg(username)
	for _, o := range opts {
		cmd = cmd.withOptArg(o)
	}
	return cmd.withParent(t)
}

// Config accesses the configuration object of a table or database.
func (t Term) Config() Term {
	return newTerm(TermConfig).withParent(t)
}

// Status returns the readiness status of a table.
func (t Term) Status() Term {
	return newTerm(TermStatus).withParent(t)
}

// Wait blocks until a table or database is ready, or until WaitOpts'
// timeout elapses.
//
// Example usage:
//
//	r.Table("superheroes").Wait()
func (t Term) Wait(opts ...interface{}) Term {
	cmd := newTerm(TermWait)
	for _, o := range opts {
		cmd = cmd.withOptArg(o)
	}
	return cmd.withParent(t)
}

// Rebalance rebalances the shards of a table or of every table in a
// database.
func (t Term) Rebalance() Term {
	return newTerm(TermRebalance).withParent(t)
}

// Reconfigure changes the sharding and replication of a table or
// database.
//
// Example usage:
//
//	r.Table("superheroes").Reconfigure(r.ReconfigureOpts{Shards: 2, Replicas: 1})
func (t Term) Reconfigure(opts ...interface{}) Term {
	return newTerm(TermReconfigure).withManyArgs(opts...).withParent(t)
}

// Sync flushes soft-durability writes of a table to disk.
func (t Term) Sync() Term {
	return newTerm(TermSync).withParent(t)
}
