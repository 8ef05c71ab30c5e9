package shadertrack

// SlotMask selects which material slots of a renderer a track affects.
// Index i corresponds to slot i; true means affected.
type SlotMask []bool

// NewSlotMask returns a mask of n slots, all affected.
func NewSlotMask(n int) SlotMask {
	var m SlotMask
	return m.Resize(n)
}

// Resize returns the mask adjusted to n slots. Existing entries are kept and
// new slots default to affected.
func (m SlotMask) Resize(n int) SlotMask {
	if n < 0 {
		n = 0
	}
	if len(m) == n {
		return m
	}
	if len(m) > n {
		return m[:n:n]
	}
	out := make(SlotMask, n)
	copy(out, m)
	for i := len(m); i < n; i++ {
		out[i] = true
	}
	return out
}

// Affects reports whether slot is selected. Slots beyond the mask are not.
func (m SlotMask) Affects(slot int) bool {
	return slot >= 0 && slot < len(m) && m[slot]
}

// Only returns a mask of n slots affecting just the given slots.
func Only(n int, slots ...int) SlotMask {
	m := make(SlotMask, n)
	for _, s := range slots {
		if s >= 0 && s < n {
			m[s] = true
		}
	}
	return m
}
