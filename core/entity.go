package core

// Entity is a generational handle: low 32 bits hold the slot index, high 32 bits the slot generation
// Zero is the null entity; live generations start at 1 so no valid handle packs to zero
type Entity uint64

// NewEntity packs a slot index and generation into a handle
func NewEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the storage slot of the entity
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot generation the handle was issued for
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// IsNull reports whether e is the zero handle
func (e Entity) IsNull() bool {
	return e == 0
}
