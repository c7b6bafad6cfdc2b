package core

import "fmt"

// Identifiers hands out small integer ids and recycles released slots.
type Identifiers struct {
	owners []interface{}
}

func NewIdentifiers() *Identifiers {
	return &Identifiers{
		owners: make([]interface{}, 0, 100),
	}
}

func (ids *Identifiers) Acquire(owner interface{}) uint32 {
	for i, o := range ids.owners {
		// Existing free spot. Take it.
		if o == nil {
			ids.owners[i] = owner
			return uint32(i)
		}
	}
	ids.owners = append(ids.owners, owner)
	return uint32(len(ids.owners) - 1)
}

func (ids *Identifiers) Release(id uint32) error {
	if int(id) >= len(ids.owners) {
		return fmt.Errorf("identifier release: id '%d' out of range (max=%d). Nothing was done", id, len(ids.owners))
	}
	ids.owners[id] = nil
	return nil
}

// Owner returns whatever acquired id, or nil for a free slot.
func (ids *Identifiers) Owner(id uint32) interface{} {
	if int(id) >= len(ids.owners) {
		return nil
	}
	return ids.owners[id]
}
