// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

// Package sets implement a set type as a `map[T]struct{}` but with better ergonomics.
package sets

import (
	"cmp"
	"slices"
)

// Set implements a Set for the key type T.
type Set[T comparable] map[T]struct{}

// Make returns an empty Set of the given type.
func Make[T comparable]() Set[T] {
	return make(Set[T])
}

// MakeWith creates a Set[T] with the given elements inserted.
func MakeWith[T comparable](elements ...T) Set[T] {
	s := make(Set[T], len(elements))
	s.Insert(elements...)
	return s
}

// Has returns true if Set s has the given key.
func (s Set[T]) Has(key T) bool {
	_, found := s[key]
	return found
}

// HasAll returns true if every key is in s. It is true for no keys.
func (s Set[T]) HasAll(keys ...T) bool {
	for _, key := range keys {
		if !s.Has(key) {
			return false
		}
	}
	return true
}

// HasAny returns true if at least one of the keys is in s.
func (s Set[T]) HasAny(keys ...T) bool {
	for _, key := range keys {
		if s.Has(key) {
			return true
		}
	}
	return false
}

// Insert keys into set.
func (s Set[T]) Insert(keys ...T) {
	for _, key := range keys {
		s[key] = struct{}{}
	}
}

// Sorted returns the elements of s in ascending order. Useful for deterministic logging and error messages.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	elements := make([]T, 0, len(s))
	for k := range s {
		elements = append(elements, k)
	}
	slices.Sort(elements)
	return elements
}
