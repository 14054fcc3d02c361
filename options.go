package reql

import (
	"reflect"
	"strings"
)

// Option structs for commands that accept a trailing options object.
// Fields are interface{} so "not set" (nil) is distinct from a false or
// zero value, and so option values may themselves be sub-expressions.
// Unset fields are never serialized.

// Durability values for write commands.
const (
	DurabilityHard = "hard"
	DurabilitySoft = "soft"
)

// Conflict resolution strategies for Insert.
const (
	ConflictError   = "error"
	ConflictReplace = "replace"
	ConflictUpdate  = "update"
)

// Bound values for Between, During and Slice.
const (
	BoundOpen   = "open"
	BoundClosed = "closed"
)

// TableOpts are the options for Table.
type TableOpts struct {
	ReadMode         interface{} `json:"read_mode,omitempty"`
	IdentifierFormat interface{} `json:"identifier_format,omitempty"`
}

// TableCreateOpts are the options for TableCreate.
type TableCreateOpts struct {
	PrimaryKey        interface{} `json:"primary_key,omitempty"`
	Durability        interface{} `json:"durability,omitempty"`
	Shards            interface{} `json:"shards,omitempty"`
	Replicas          interface{} `json:"replicas,omitempty"`
	PrimaryReplicaTag interface{} `json:"primary_replica_tag,omitempty"`
}

// FilterOpts are the options for Filter.  Default controls how documents
// with missing fields are treated.
type FilterOpts struct {
	Default interface{} `json:"default,omitempty"`
}

// ChangesOpts are the options for Changes.
type ChangesOpts struct {
	// Squash may be a bool, or a number of seconds the server waits to
	// batch changes together.
	Squash              interface{} `json:"squash,omitempty"`
	ChangefeedQueueSize interface{} `json:"changefeed_queue_size,omitempty"`
	IncludeInitial      interface{} `json:"include_initial,omitempty"`
	IncludeStates       interface{} `json:"include_states,omitempty"`
	IncludeOffsets      interface{} `json:"include_offsets,omitempty"`
	IncludeTypes        interface{} `json:"include_types,omitempty"`
}

// InsertOpts are the options for Insert.  Conflict may also be a
// three-argument resolution function.
type InsertOpts struct {
	Durability      interface{} `json:"durability,omitempty"`
	ReturnChanges   interface{} `json:"return_changes,omitempty"`
	Conflict        interface{} `json:"conflict,omitempty"`
	IgnoreWriteHook interface{} `json:"ignore_write_hook,omitempty"`
}

// UpdateOpts are the options for Update.
type UpdateOpts struct {
	Durability      interface{} `json:"durability,omitempty"`
	ReturnChanges   interface{} `json:"return_changes,omitempty"`
	NonAtomic       interface{} `json:"non_atomic,omitempty"`
	IgnoreWriteHook interface{} `json:"ignore_write_hook,omitempty"`
}

// ReplaceOpts are the options for Replace.
type ReplaceOpts struct {
	Durability      interface{} `json:"durability,omitempty"`
	ReturnChanges   interface{} `json:"return_changes,omitempty"`
	NonAtomic       interface{} `json:"non_atomic,omitempty"`
	IgnoreWriteHook interface{} `json:"ignore_write_hook,omitempty"`
}

// DeleteOpts are the options for Delete.
type DeleteOpts struct {
	Durability      interface{} `json:"durability,omitempty"`
	ReturnChanges   interface{} `json:"return_changes,omitempty"`
	IgnoreWriteHook interface{} `json:"ignore_write_hook,omitempty"`
}

// BetweenOpts are the options for Between.
type BetweenOpts struct {
	Index      interface{} `json:"index,omitempty"`
	LeftBound  interface{} `json:"left_bound,omitempty"`
	RightBound interface{} `json:"right_bound,omitempty"`
}

// DuringOpts are the options for During.
type DuringOpts struct {
	LeftBound  interface{} `json:"left_bound,omitempty"`
	RightBound interface{} `json:"right_bound,omitempty"`
}

// SliceOpts are the options for Slice.
type SliceOpts struct {
	LeftBound  interface{} `json:"left_bound,omitempty"`
	RightBound interface{} `json:"right_bound,omitempty"`
}

// UnionOpts are the options for Union.  Interleave may be a bool, a
// field name to merge sorted streams on, or a sub-expression.
type UnionOpts struct {
	Interleave interface{} `json:"interleave,omitempty"`
}

// GroupOpts are the options for Group.
type GroupOpts struct {
	Index interface{} `json:"index,omitempty"`
	Multi interface{} `json:"multi,omitempty"`
}

// EqJoinOpts are the options for EqJoin.
type EqJoinOpts struct {
	Index   interface{} `json:"index,omitempty"`
	Ordered interface{} `json:"ordered,omitempty"`
}

// FoldOpts are the options for Fold.  Emit and FinalEmit take functions.
type FoldOpts struct {
	Emit      interface{} `json:"emit,omitempty"`
	FinalEmit interface{} `json:"final_emit,omitempty"`
}

// DistinctOpts are the options for Distinct.
type DistinctOpts struct {
	Index interface{} `json:"index,omitempty"`
}

// RandomOpts are the options for Random.
type RandomOpts struct {
	Float interface{} `json:"float,omitempty"`
}

// IndexCreateOpts are the options for IndexCreate.
type IndexCreateOpts struct {
	Multi interface{} `json:"multi,omitempty"`
	Geo   interface{} `json:"geo,omitempty"`
}

// IndexRenameOpts are the options for IndexRename.
type IndexRenameOpts struct {
	Overwrite interface{} `json:"overwrite,omitempty"`
}

// JsOpts are the options for Js.
type JsOpts struct {
	Timeout interface{} `json:"timeout,omitempty"`
}

// HttpOpts are the options for Http.
type HttpOpts struct {
	Timeout      interface{} `json:"timeout,omitempty"`
	Attempts     interface{} `json:"attempts,omitempty"`
	Redirects    interface{} `json:"redirects,omitempty"`
	Verify       interface{} `json:"verify,omitempty"`
	ResultFormat interface{} `json:"result_format,omitempty"`
	Method       interface{} `json:"method,omitempty"`
	Auth         interface{} `json:"auth,omitempty"`
	Params       interface{} `json:"params,omitempty"`
	Header       interface{} `json:"header,omitempty"`
	Data         interface{} `json:"data,omitempty"`
	Page         interface{} `json:"page,omitempty"`
	PageLimit    interface{} `json:"page_limit,omitempty"`
}

// CircleOpts are the options for Circle.
type CircleOpts struct {
	NumVertices interface{} `json:"num_vertices,omitempty"`
	GeoSystem   interface{} `json:"geo_system,omitempty"`
	Unit        interface{} `json:"unit,omitempty"`
	Fill        interface{} `json:"fill,omitempty"`
}

// DistanceOpts are the options for Distance.
type DistanceOpts struct {
	GeoSystem interface{} `json:"geo_system,omitempty"`
	Unit      interface{} `json:"unit,omitempty"`
}

// GetNearestOpts are the options for GetNearest.
type GetNearestOpts struct {
	Index      interface{} `json:"index,omitempty"`
	MaxResults interface{} `json:"max_results,omitempty"`
	Unit       interface{} `json:"unit,omitempty"`
	MaxDist    interface{} `json:"max_dist,omitempty"`
	GeoSystem  interface{} `json:"geo_system,omitempty"`
}

// GrantOpts are the options for Grant.
type GrantOpts struct {
	Read    interface{} `json:"read,omitempty"`
	Write   interface{} `json:"write,omitempty"`
	Connect interface{} `json:"connect,omitempty"`
	Config  interface{} `json:"config,omitempty"`
}

// WaitOpts are the options for Wait.
type WaitOpts struct {
	WaitFor interface{} `json:"wait_for,omitempty"`
	Timeout interface{} `json:"timeout,omitempty"`
}

// ReconfigureOpts are the options for Reconfigure.
type ReconfigureOpts struct {
	Shards               interface{} `json:"shards,omitempty"`
	Replicas             interface{} `json:"replicas,omitempty"`
	PrimaryReplicaTag    interface{} `json:"primary_replica_tag,omitempty"`
	DryRun               interface{} `json:"dry_run,omitempty"`
	NonvotingReplicaTags interface{} `json:"nonvoting_replica_tags,omitempty"`
	EmergencyRepair      interface{} `json:"emergency_repair,omitempty"`
}

func (TableOpts) optArgs()       {}
func (TableCreateOpts) optArgs() {}
func (FilterOpts) optArgs()      {}
func (ChangesOpts) optArgs()     {}
func (InsertOpts) optArgs()      {}
func (UpdateOpts) optArgs()      {}
func (ReplaceOpts) optArgs()     {}
func (DeleteOpts) optArgs()      {}
func (BetweenOpts) optArgs()     {}
func (DuringOpts) optArgs()      {}
func (SliceOpts) optArgs()       {}
func (UnionOpts) optArgs()       {}
func (GroupOpts) optArgs()       {}
func (EqJoinOpts) optArgs()      {}
func (FoldOpts) optArgs()        {}
func (DistinctOpts) optArgs()    {}
func (RandomOpts) optArgs()      {}
func (IndexCreateOpts) optArgs() {}
func (IndexRenameOpts) optArgs() {}
func (JsOpts) optArgs()          {}
func (HttpOpts) optArgs()        {}
func (CircleOpts) optArgs()      {}
func (DistanceOpts) optArgs()    {}
func (GetNearestOpts) optArgs()  {}
func (GrantOpts) optArgs()       {}
func (WaitOpts) optArgs()        {}
func (ReconfigureOpts) optArgs() {}

// optsToDatum converts an option struct to an object datum, skipping
// unset fields.  Fields are converted with toDatum rather than the json
// module directly so option values that are sub-expressions keep their
// meaning.
func optsToDatum(opts OptArgs) (Datum, error) {
	rv := reflect.ValueOf(opts)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nullDatum(), nil
		}
		rv = rv.Elem()
	}
	rt := rv.Type()
	obj := make(map[string]Datum, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		name, _, _ := strings.Cut(rt.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		fv := rv.Field(i)
		if fv.IsZero() {
			continue
		}
		v := fv.Interface()
		if reflect.TypeOf(v).Kind() == reflect.Func {
			v = compileGoFunc(v)
		}
		d, err := toDatum(v)
		if err != nil {
			return nullDatum(), err
		}
		obj[name] = d
	}
	return objectDatum(obj), nil
}
