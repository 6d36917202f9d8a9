package core

import "fmt"

const (
	identifierIndexBits = 24
	identifierIndexMask = 1<<identifierIndexBits - 1
	// generations wrap before 0xff so no id can equal ^uint32(0)
	identifierMaxGeneration = 0xff
)

// Identifiers hands out small integer ids for owners and reuses released slots.
// The scene uses it as its actor arena. The low 24 bits of an id are the slot
// index and the high 8 bits are the slot's generation, which changes on every
// Release so an id kept past its owner's release no longer resolves.
type Identifiers[T comparable] struct {
	owners      []T
	used        []bool
	generations []uint8
}

func NewIdentifiers[T comparable](capacity int) *Identifiers[T] {
	return &Identifiers[T]{
		owners:      make([]T, 0, capacity),
		used:        make([]bool, 0, capacity),
		generations: make([]uint8, 0, capacity),
	}
}

// Acquire stores owner in the first free slot and returns its id.
func (ids *Identifiers[T]) Acquire(owner T) uint32 {
	for i := range ids.owners {
		// Existing free spot. Take it.
		if !ids.used[i] {
			ids.owners[i] = owner
			ids.used[i] = true
			return makeIdentifier(i, ids.generations[i])
		}
	}

	// If here, no existing free slots. Need a new id, so push one.
	if len(ids.owners) > identifierIndexMask {
		panic(fmt.Sprintf("identifiers: more than %d slots", identifierIndexMask+1))
	}
	ids.owners = append(ids.owners, owner)
	ids.used = append(ids.used, true)
	ids.generations = append(ids.generations, 0)
	return makeIdentifier(len(ids.owners)-1, 0)
}

// Release frees the slot so a later Acquire can reuse it under a new id.
func (ids *Identifiers[T]) Release(id uint32) error {
	index, ok := ids.lookup(id)
	if !ok {
		return fmt.Errorf("release id %#x (slots=%d): %w", id, len(ids.owners), ErrInvalidHandle)
	}

	var zero T
	ids.owners[index] = zero
	ids.used[index] = false
	ids.generations[index] = (ids.generations[index] + 1) % identifierMaxGeneration
	return nil
}

// Get returns the owner of id, or false when the slot is free, out of range,
// or has been reused since id was handed out.
func (ids *Identifiers[T]) Get(id uint32) (T, bool) {
	index, ok := ids.lookup(id)
	if !ok {
		var zero T
		return zero, false
	}
	return ids.owners[index], true
}

// Count returns the number of slots in use.
func (ids *Identifiers[T]) Count() int {
	n := 0
	for _, u := range ids.used {
		if u {
			n++
		}
	}
	return n
}

func (ids *Identifiers[T]) lookup(id uint32) (int, bool) {
	index := int(id & identifierIndexMask)
	if index >= len(ids.owners) || !ids.used[index] {
		return 0, false
	}
	if ids.generations[index] != uint8(id>>identifierIndexBits) {
		return 0, false
	}
	return index, true
}

func makeIdentifier(index int, generation uint8) uint32 {
	return uint32(generation)<<identifierIndexBits | uint32(index)
}
