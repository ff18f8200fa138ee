package ecs

// EntityId encodes both the archetype ID (upper 32 bits) and the slot index
// inside that archetype (lower 32 bits).
type EntityId uint64

func NewEntityId(archetypeId uint32, index uint32) EntityId {
	return EntityId(uint64(archetypeId)<<32 | uint64(index))
}

func (e EntityId) ArchetypeId() uint32 {
	return uint32(e >> 32)
}

func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}
