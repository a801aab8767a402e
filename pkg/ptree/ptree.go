/*
Copyright 2026 Ardika Saputro.
Licensed under the Apache License, Version 2.0.
*/

// Package ptree provides the ordered hierarchical data model exchanged
// between device data providers and the report renderers.
package ptree

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// MissingFieldError reports a lookup of a key that the node does not carry
// as a scalar child. It signals a schema bug in a report definition, not a
// runtime condition, and is never defaulted away.
type MissingFieldError struct {
	Key string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Key)
}

type kind uint8

const (
	kindScalar kind = iota
	kindObject
	kindArray
)

// Node is a tree node that is exactly one of: a scalar string value, an
// object with ordered keyed children, or an array of unnamed children.
// A node never mixes a value with children. Insertion order of object keys
// and array elements is preserved; report row order depends on it.
//
// All read methods are safe on nil receivers, so the emptiness of a named
// collection is n.Child(key).Len() == 0 whether or not the key exists.
type Node struct {
	kind  kind
	value string
	obj   *orderedmap.OrderedMap[string, *Node]
	arr   []*Node
}

// Entry is one (key, child) pair of a container node. Array entries carry
// an empty key.
type Entry struct {
	Key  string
	Node *Node
}

// NewObject returns an empty object node.
func NewObject() *Node {
	return &Node{kind: kindObject, obj: orderedmap.New[string, *Node]()}
}

// NewArray returns an empty array node.
func NewArray() *Node {
	return &Node{kind: kindArray}
}

// String returns a scalar node holding v.
func String(v string) *Node {
	return &Node{kind: kindScalar, value: v}
}

// Set attaches child under key and returns the receiver for chaining.
// Setting an existing key replaces the child in place, keeping its
// original position. The receiver must be an object node.
func (n *Node) Set(key string, child *Node) *Node {
	if n == nil || n.kind != kindObject {
		panic("ptree: Set on a non-object node")
	}
	n.obj.Set(key, child)
	return n
}

// SetString attaches a scalar child under key.
func (n *Node) SetString(key, value string) *Node {
	return n.Set(key, String(value))
}

// Append adds child to the end of an array node and returns the receiver.
func (n *Node) Append(child *Node) *Node {
	if n == nil || n.kind != kindArray {
		panic("ptree: Append on a non-array node")
	}
	n.arr = append(n.arr, child)
	return n
}

// IsScalar reports whether the node holds a scalar value.
func (n *Node) IsScalar() bool {
	return n != nil && n.kind == kindScalar
}

// Value returns the scalar value. Containers and nil nodes return "".
func (n *Node) Value() string {
	if n == nil || n.kind != kindScalar {
		return ""
	}
	return n.value
}

// Child returns the direct child under key, or nil when the key is absent
// or the receiver is not an object.
func (n *Node) Child(key string) *Node {
	if n == nil || n.kind != kindObject {
		return nil
	}
	child, ok := n.obj.Get(key)
	if !ok {
		return nil
	}
	return child
}

// Len returns the number of children of a container node. Scalars and nil
// nodes have length zero.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.kind {
	case kindObject:
		return n.obj.Len()
	case kindArray:
		return len(n.arr)
	default:
		return 0
	}
}

// Entries returns the container's (key, child) pairs in insertion order.
func (n *Node) Entries() []Entry {
	if n == nil {
		return nil
	}
	switch n.kind {
	case kindObject:
		entries := make([]Entry, 0, n.obj.Len())
		for pair := n.obj.Oldest(); pair != nil; pair = pair.Next() {
			entries = append(entries, Entry{Key: pair.Key, Node: pair.Value})
		}
		return entries
	case kindArray:
		entries := make([]Entry, 0, len(n.arr))
		for _, child := range n.arr {
			entries = append(entries, Entry{Node: child})
		}
		return entries
	default:
		return nil
	}
}

// GetString returns the scalar value of the direct child under key. Absent
// keys and non-scalar children fail with *MissingFieldError.
func (n *Node) GetString(key string) (string, error) {
	child := n.Child(key)
	if child == nil || child.kind != kindScalar {
		return "", &MissingFieldError{Key: key}
	}
	return child.value, nil
}
