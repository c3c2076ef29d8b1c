package neuroglancer

import (
	"fmt"
	"strconv"
)

// node pairs a value with its path in the document so that every
// accessor failure can name where the traversal went wrong.
type node struct {
	path string
	v    Value
}

func root(doc Value) node {
	return node{path: "", v: doc}
}

func (n node) where() string {
	if n.path == "" {
		return "document"
	}
	return n.path
}

func (n node) mismatch(want ValueType) error {
	got := "nothing"
	if n.v != nil {
		got = n.v.Type().String()
	}
	return &FieldError{Path: n.where(), Reason: fmt.Sprintf("expected %s, got %s", want, got)}
}

func (n node) object() (Object, error) {
	obj, ok := n.v.(Object)
	if !ok {
		return nil, n.mismatch(TypeObject)
	}
	return obj, nil
}

// field returns the child at key. A missing key is an error.
func (n node) field(key string) (node, error) {
	obj, err := n.object()
	if err != nil {
		return node{}, err
	}

	path := key
	if n.path != "" {
		path = n.path + "." + key
	}

	v, ok := obj.Lookup(key)
	if !ok {
		return node{}, &FieldError{Path: path, Reason: "missing key"}
	}
	return node{path: path, v: v}, nil
}

// elements returns the children of an array node in order.
func (n node) elements() ([]node, error) {
	arr, ok := n.v.(Array)
	if !ok {
		return nil, n.mismatch(TypeArray)
	}

	out := make([]node, len(arr))
	for i, v := range arr {
		out[i] = node{path: n.where() + "[" + strconv.Itoa(i) + "]", v: v}
	}
	return out, nil
}

func (n node) str() (string, error) {
	s, ok := n.v.(String)
	if !ok {
		return "", n.mismatch(TypeString)
	}
	return string(s), nil
}

func (n node) number() (float64, error) {
	num, ok := n.v.(Number)
	if !ok {
		return 0, n.mismatch(TypeNumber)
	}
	return float64(num), nil
}

func (n node) stringField(key string) (string, error) {
	child, err := n.field(key)
	if err != nil {
		return "", err
	}
	return child.str()
}

func (n node) arrayField(key string) ([]node, error) {
	child, err := n.field(key)
	if err != nil {
		return nil, err
	}
	return child.elements()
}

// point decodes a fixed-length coordinate array.
func (n node) point() (Point, error) {
	elems, err := n.elements()
	if err != nil {
		return Point{}, err
	}
	if len(elems) != len(Point{}) {
		return Point{}, &FieldError{
			Path:   n.where(),
			Reason: fmt.Sprintf("expected %d coordinates, got %d", len(Point{}), len(elems)),
		}
	}

	var p Point
	for i, e := range elems {
		c, err := e.number()
		if err != nil {
			return Point{}, err
		}
		p[i] = c
	}
	return p, nil
}

// layerMatches reports whether a layer has the given type and name.
// The name is only inspected once the type matches, so unrelated layers
// without a name are not an error.
func (n node) layerMatches(layerType, name string) (bool, error) {
	t, err := n.stringField("type")
	if err != nil {
		return false, err
	}
	if t != layerType {
		return false, nil
	}

	got, err := n.stringField("name")
	if err != nil {
		return false, err
	}
	return got == name, nil
}
