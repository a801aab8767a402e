/*
Copyright 2026 Ardika Saputro.
Licensed under the Apache License, Version 2.0.
*/

package ptree

import (
	"encoding/json"
	"io"
)

// MarshalJSON serializes the node as JSON: scalars as strings, objects with
// keys in insertion order, arrays as JSON arrays. Rendering the same tree
// twice yields byte-identical output.
func (n *Node) MarshalJSON() ([]byte, error) {
	switch n.kind {
	case kindObject:
		return n.obj.MarshalJSON()
	case kindArray:
		if len(n.arr) == 0 {
			return []byte("[]"), nil
		}
		return json.Marshal(n.arr)
	default:
		return json.Marshal(n.value)
	}
}

// WriteJSON pretty-prints the full node tree to w with two-space indent,
// followed by a newline.
func WriteJSON(w io.Writer, n *Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(n)
}
