package slotarena

func (e *engine[T]) logGrow() {
	e.log.Debug("arena grew",
		"kind", e.kind,
		"chunks", e.slots.NumChunks(),
		"capacity", e.slots.Capacity(),
	)
}

func (e *engine[T]) logRetired(index int, gen uint32) {
	e.log.Warn("slot retired: generation exhausted",
		"kind", e.kind,
		"index", index,
		"generation", gen,
		"retired", e.retired,
	)
}

func (e *engine[T]) logCleared(removed int) {
	e.log.Debug("arena cleared",
		"kind", e.kind,
		"removed", removed,
		"slots", e.slots.Len(),
	)
}
