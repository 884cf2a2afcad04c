package api

import (
	"bytes"
	"encoding/json"
)

// items is the tagged-union decode boundary for list-shaped responses.
// The upstream contract inconsistently returns either a bare array or an
// {items: [...]} envelope; both shapes are valid and normalized here, so
// no component ever branches on shape.
type items[T any] struct {
	list []T
}

func (i *items[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return json.Unmarshal(data, &i.list)
	}
	var env struct {
		Items []T `json:"items"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	i.list = env.Items
	return nil
}
