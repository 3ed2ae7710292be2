package fieldkind

// MapHolder is a Holder backed by plain maps: the dynamic data bag plus the
// owning entity's native attributes. Hosts with real entity types implement
// Holder directly; this covers tests and map-shaped records.
type MapHolder struct {
	Data  map[string]any
	Attrs map[string]any
}

func (h MapHolder) DataValue(name string) (any, bool) {
	value, ok := h.Data[name]
	return value, ok
}

func (h MapHolder) Attribute(name string) (any, bool) {
	value, ok := h.Attrs[name]
	return value, ok
}
