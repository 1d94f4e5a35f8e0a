package dlist

import (
	"encoding/json"
	"slices"

	"gopkg.in/yaml.v3"
)

// Lists encode as arrays. Decoding appends to the existing elements.

func (l *List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.values())
}

func (l *List[T]) UnmarshalJSON(in []byte) error {
	var vs []T
	if err := json.Unmarshal(in, &vs); err != nil {
		return err
	}
	l.append(vs)
	return nil
}

func (l *List[T]) MarshalYAML() (any, error) {
	return l.values(), nil
}

func (l *List[T]) UnmarshalYAML(value *yaml.Node) error {
	var vs []T
	if err := value.Decode(&vs); err != nil {
		return err
	}
	l.append(vs)
	return nil
}

// never nil, so empty lists encode as [].
func (l *List[T]) values() []T {
	vs := make([]T, 0, l.len)
	return slices.AppendSeq(vs, l.All())
}

func (l *List[T]) append(vs []T) {
	for _, v := range vs {
		l.PushBack(v)
	}
}
