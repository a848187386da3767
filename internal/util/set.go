package util

import "sort"

type Set struct {
	data map[string]struct{}
}

func NewSet(items ...string) *Set {
	s := &Set{
		data: make(map[string]struct{}),
	}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

func (s *Set) Add(item string) {
	s.data[item] = struct{}{}
}

// List returns the items sorted.
func (s Set) List() []string {
	out := []string{}
	for v := range s.data {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
