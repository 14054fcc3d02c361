package reql

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Datum is a JSON-compatible literal value.  A datum may embed a Term, so
// values and sub-queries can mix freely: an object literal passed to
// .Update() may carry a nested r.Row expression as one of its fields.
//
// The zero Datum is null.
type Datum struct {
	// one of: nil, bool, json.Number, string, []Datum,
	// map[string]Datum, json.RawMessage, *Term
	v interface{}
}

func nullDatum() Datum                     { return Datum{} }
func boolDatum(b bool) Datum               { return Datum{v: b} }
func numberDatum(n json.Number) Datum      { return Datum{v: n} }
func stringDatum(s string) Datum           { return Datum{v: s} }
func arrayDatum(a []Datum) Datum           { return Datum{v: a} }
func objectDatum(m map[string]Datum) Datum { return Datum{v: m} }
func termDatum(t Term) Datum               { return Datum{v: &t} }

func (d Datum) isNull() bool {
	return d.v == nil
}

// MarshalJSON writes the datum in wire form.  Arrays are always prefixed
// with the make-array term type so that a literal array is
// indistinguishable from an explicit array-construction term; the server
// requires this to tell data apart from operations.
func (d Datum) MarshalJSON() ([]byte, error) {
	switch x := d.v.(type) {
	case nil:
		return []byte("null"), nil
	case bool, json.Number, string:
		return json.Marshal(x)
	case []Datum:
		return json.Marshal([2]interface{}{int32(TermMakeArray), x})
	case map[string]Datum:
		return marshalDatumObject(x)
	case json.RawMessage:
		return x, nil
	case *Term:
		return x.MarshalJSON()
	}
	return nil, fmt.Errorf("reql: cannot marshal datum of type %T", d.v)
}

// marshalDatumObject emits keys in sorted order so serialized queries are
// deterministic, the same property encoding/json gives plain maps.
func marshalDatumObject(m map[string]Datum) ([]byte, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(m[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// hasImplicitVar reports whether the datum contains an unguarded
// implicit-row reference, recursing through embedded terms and through
// object and array literals.
func (d Datum) hasImplicitVar() bool {
	switch x := d.v.(type) {
	case *Term:
		return x.hasImplicitVar()
	case map[string]Datum:
		for _, v := range x {
			if v.hasImplicitVar() {
				return true
			}
		}
	case []Datum:
		for _, v := range x {
			if v.hasImplicitVar() {
				return true
			}
		}
	}
	return false
}

// toDatum converts an arbitrary value to a Datum.  Maps and slices are
// walked so that embedded Terms survive the conversion; everything else
// goes through the json module, so any type annotations or Marshaler
// implementations understood by that module can be used.
func toDatum(v interface{}) (Datum, error) {
	switch x := v.(type) {
	case nil:
		return nullDatum(), nil
	case Datum:
		return x, nil
	case Term:
		return termDatum(x), nil
	case *Term:
		if x == nil {
			return nullDatum(), nil
		}
		return termDatum(*x), nil
	case bool:
		return boolDatum(x), nil
	case string:
		return stringDatum(x), nil
	case json.Number:
		return numberDatum(x), nil
	case Map:
		return mapToDatum(x)
	case map[string]interface{}:
		return mapToDatum(x)
	case List:
		return listToDatum(x)
	case []interface{}:
		return listToDatum(x)
	case OptArgs:
		return optsToDatum(x)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nullDatum(), fmt.Errorf("reql: cannot convert %T to a datum: %w", v, err)
	}
	return decodedToDatum(data)
}

func mapToDatum(m map[string]interface{}) (Datum, error) {
	obj := make(map[string]Datum, len(m))
	for k, v := range m {
		d, err := toDatum(v)
		if err != nil {
			return nullDatum(), err
		}
		obj[k] = d
	}
	return objectDatum(obj), nil
}

func listToDatum(l []interface{}) (Datum, error) {
	arr := make([]Datum, 0, len(l))
	for _, v := range l {
		d, err := toDatum(v)
		if err != nil {
			return nullDatum(), err
		}
		arr = append(arr, d)
	}
	return arrayDatum(arr), nil
}

// decodedToDatum parses JSON text into a Datum tree, preserving number
// precision with json.Number.
func decodedToDatum(data []byte) (Datum, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nullDatum(), err
	}
	return jsonValueToDatum(v), nil
}

func jsonValueToDatum(v interface{}) Datum {
	switch x := v.(type) {
	case nil:
		return nullDatum()
	case bool:
		return boolDatum(x)
	case json.Number:
		return numberDatum(x)
	case string:
		return stringDatum(x)
	case []interface{}:
		arr := make([]Datum, 0, len(x))
		for _, e := range x {
			arr = append(arr, jsonValueToDatum(e))
		}
		return arrayDatum(arr)
	case map[string]interface{}:
		obj := make(map[string]Datum, len(x))
		for k, e := range x {
			obj[k] = jsonValueToDatum(e)
		}
		return objectDatum(obj)
	}
	// unreachable for values produced by the json decoder
	return nullDatum()
}
