package neuroglancer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Value is a node in a parsed viewer-state document.
type Value interface {
	Type() ValueType
	String() string
}

// ValueType identifies the variant held by a Value.
type ValueType int

const (
	TypeNull ValueType = iota
	TypeBool
	TypeNumber
	TypeString
	TypeArray
	TypeObject
)

// String returns the JSON name of the value type
func (t ValueType) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	default:
		return "unknown"
	}
}

// Null represents a JSON null
type Null struct{}

func (Null) Type() ValueType { return TypeNull }
func (Null) String() string  { return "null" }

// Bool represents a JSON boolean
type Bool bool

func (b Bool) Type() ValueType { return TypeBool }
func (b Bool) String() string  { return strconv.FormatBool(bool(b)) }

// Number represents a JSON number
type Number float64

func (n Number) Type() ValueType { return TypeNumber }
func (n Number) String() string  { return strconv.FormatFloat(float64(n), 'g', -1, 64) }

// String represents a JSON string
type String string

func (s String) Type() ValueType { return TypeString }
func (s String) String() string  { return strconv.Quote(string(s)) }

// Array represents a JSON array
type Array []Value

func (a Array) Type() ValueType { return TypeArray }
func (a Array) String() string {
	parts := make([]string, 0, len(a))
	for _, v := range a {
		parts = append(parts, v.String())
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Object represents a JSON object
type Object map[string]Value

func (o Object) Type() ValueType { return TypeObject }
func (o Object) String() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, strconv.Quote(k)+":"+o[k].String())
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Lookup retrieves a value from the object
func (o Object) Lookup(key string) (Value, bool) {
	v, ok := o[key]
	return v, ok
}

// fromJSON converts the output of encoding/json into a Value tree.
func fromJSON(v interface{}) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(t), nil
	case float64:
		return Number(t), nil
	case string:
		return String(t), nil
	case []interface{}:
		arr := make(Array, 0, len(t))
		for _, elem := range t {
			ev, err := fromJSON(elem)
			if err != nil {
				return nil, err
			}
			arr = append(arr, ev)
		}
		return arr, nil
	case map[string]interface{}:
		obj := make(Object, len(t))
		for k, elem := range t {
			ev, err := fromJSON(elem)
			if err != nil {
				return nil, err
			}
			obj[k] = ev
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported JSON value of type %T", v)
	}
}
