// internal/logging/value.go
package logging

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Value is structured log data. It is a closed sum type: the only
// implementations are Null, Bool, Number, String, List and Map.
//
// A nil Value means no data was supplied; Null is an explicit null.
type Value interface {
	isValue()
}

type (
	// Null is an explicit null.
	Null struct{}
	// Bool is a boolean scalar.
	Bool bool
	// Number is a numeric scalar.
	Number float64
	// String is a string scalar.
	String string
	// List is an ordered sequence.
	List []Value
	// Map is a string-keyed mapping.
	Map map[string]Value
)

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (List) isValue()   {}
func (Map) isValue()    {}

// MarshalJSON implements json.Marshaler.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// FromAny converts an arbitrary Go value into a Value.
//
// Maps with string keys, slices and arrays are converted recursively; structs
// go through their JSON encoding. Values with no structured form become their
// fmt representation. Cyclic input is not supported.
func FromAny(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null{}
	case Value:
		return x
	case bool:
		return Bool(x)
	case string:
		return String(x)
	case []byte:
		return String(x)
	case int:
		return Number(x)
	case int8:
		return Number(x)
	case int16:
		return Number(x)
	case int32:
		return Number(x)
	case int64:
		return Number(x)
	case uint:
		return Number(x)
	case uint8:
		return Number(x)
	case uint16:
		return Number(x)
	case uint32:
		return Number(x)
	case uint64:
		return Number(x)
	case float32:
		return Number(x)
	case float64:
		return Number(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return String(x.String())
		}
		return Number(f)
	case error:
		return String(x.Error())
	case []any:
		out := make(List, len(x))
		for i, e := range x {
			out[i] = FromAny(e)
		}
		return out
	case map[string]any:
		out := make(Map, len(x))
		for k, e := range x {
			out[k] = FromAny(e)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null{}
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Slice:
		if rv.IsNil() {
			return Null{}
		}
		return listFromReflect(rv)
	case reflect.Array:
		return listFromReflect(rv)
	case reflect.Map:
		if rv.IsNil() {
			return Null{}
		}
		out := make(Map, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = FromAny(iter.Value().Interface())
		}
		return out
	case reflect.Struct:
		if decoded, ok := fromJSON(v); ok {
			return decoded
		}
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.String:
		return String(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Number(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float())
	}

	if s, ok := v.(fmt.Stringer); ok {
		return String(s.String())
	}
	return String(fmt.Sprint(v))
}

func listFromReflect(rv reflect.Value) List {
	out := make(List, rv.Len())
	for i := range out {
		out[i] = FromAny(rv.Index(i).Interface())
	}
	return out
}

func fromJSON(v any) (Value, bool) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	decoded, err := ParseJSON(raw)
	if err != nil {
		return nil, false
	}
	return decoded, true
}

// ParseJSON decodes a JSON document into a Value. Numbers keep full float64 precision.
func ParseJSON(data []byte) (Value, error) {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	return FromAny(decoded), nil
}

// ToAny converts a Value back into plain Go values (nil, bool, float64,
// string, []any, map[string]any).
func ToAny(v Value) any {
	switch x := v.(type) {
	case nil, Null:
		return nil
	case Bool:
		return bool(x)
	case Number:
		return float64(x)
	case String:
		return string(x)
	case List:
		if x == nil {
			return nil
		}
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = ToAny(e)
		}
		return out
	case Map:
		if x == nil {
			return nil
		}
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = ToAny(e)
		}
		return out
	}
	return nil
}

// MarshalLogObject implements zapcore.ObjectMarshaler. Keys are emitted sorted.
func (m Map) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := addValue(enc, k, m[k]); err != nil {
			return err
		}
	}
	return nil
}

// MarshalLogArray implements zapcore.ArrayMarshaler.
func (l List) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, e := range l {
		if err := appendValue(enc, e); err != nil {
			return err
		}
	}
	return nil
}

func addValue(enc zapcore.ObjectEncoder, key string, v Value) error {
	switch x := v.(type) {
	case nil, Null:
		return enc.AddReflected(key, nil)
	case Bool:
		enc.AddBool(key, bool(x))
	case Number:
		enc.AddFloat64(key, float64(x))
	case String:
		enc.AddString(key, string(x))
	case List:
		return enc.AddArray(key, x)
	case Map:
		return enc.AddObject(key, x)
	}
	return nil
}

func appendValue(enc zapcore.ArrayEncoder, v Value) error {
	switch x := v.(type) {
	case nil, Null:
		return enc.AppendReflected(nil)
	case Bool:
		enc.AppendBool(bool(x))
	case Number:
		enc.AppendFloat64(float64(x))
	case String:
		enc.AppendString(string(x))
	case List:
		return enc.AppendArray(x)
	case Map:
		return enc.AppendObject(x)
	}
	return nil
}

// Field builds a zap field for v. A nil Value produces no field.
func Field(key string, v Value) zap.Field {
	switch x := v.(type) {
	case nil:
		return zap.Skip()
	case Null:
		return zap.Reflect(key, nil)
	case Bool:
		return zap.Bool(key, bool(x))
	case Number:
		return zap.Float64(key, float64(x))
	case String:
		return zap.String(key, string(x))
	case List:
		return zap.Array(key, x)
	case Map:
		return zap.Object(key, x)
	}
	return zap.Skip()
}
