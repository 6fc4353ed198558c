package jsonnav

import "encoding/json"

// The voyager api nests data several layers deep under type-tagged
// keys that vary between payload variants, so responses are navigated
// by key path instead of being mapped onto exhaustive schema types.
// Navigating through a missing or mismatched node yields an absent
// node instead of panicking, which lets optional sub-resources degrade
// to zero values.

// Node wraps one decoded JSON value.
type Node struct {
	value  any
	exists bool
}

// Decode parses a JSON document into its root node.
func Decode(data []byte) (Node, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return Node{}, err
	}
	return Wrap(value), nil
}

func Wrap(value any) Node {
	return Node{value: value, exists: true}
}

func (n Node) Exists() bool {
	return n.exists
}

// Get descends into an object field. Absent when the node is not an
// object or the key is missing.
func (n Node) Get(key string) Node {
	obj, ok := n.value.(map[string]any)
	if !ok {
		return Node{}
	}
	value, ok := obj[key]
	if !ok {
		return Node{}
	}
	return Node{value: value, exists: true}
}

// Index descends into an array element. Absent when the node is not an
// array or the index is out of range.
func (n Node) Index(i int) Node {
	arr, ok := n.value.([]any)
	if !ok || i < 0 || i >= len(arr) {
		return Node{}
	}
	return Node{value: arr[i], exists: true}
}

// Arr returns the node's elements, or nil when it is not an array.
func (n Node) Arr() []Node {
	arr, ok := n.value.([]any)
	if !ok {
		return nil
	}
	out := make([]Node, len(arr))
	for i, value := range arr {
		out[i] = Node{value: value, exists: true}
	}
	return out
}

// Map returns the node's fields, or nil when it is not an object.
func (n Node) Map() map[string]Node {
	obj, ok := n.value.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]Node, len(obj))
	for key, value := range obj {
		out[key] = Node{value: value, exists: true}
	}
	return out
}

func (n Node) Str() string {
	s, _ := n.value.(string)
	return s
}

func (n Node) Float() float64 {
	f, _ := n.value.(float64)
	return f
}

func (n Node) Int() int64 {
	return int64(n.Float())
}

func (n Node) Bool() bool {
	b, _ := n.value.(bool)
	return b
}

func (n Node) Value() any {
	return n.value
}

func (n Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.value)
}
