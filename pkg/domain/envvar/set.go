package envvar

// Set is an ordered mapping of variable names to values. A key keeps the
// position of its first insertion; later writes only replace the value.
type Set struct {
	keys   []string
	values map[string]string
}

func NewSet() *Set {
	return &Set{values: make(map[string]string)}
}

func (x *Set) Set(key, value string) {
	if _, ok := x.values[key]; !ok {
		x.keys = append(x.keys, key)
	}
	x.values[key] = value
}

func (x *Set) Get(key string) (string, bool) {
	v, ok := x.values[key]
	return v, ok
}

func (x *Set) Keys() []string {
	keys := make([]string, len(x.keys))
	copy(keys, x.keys)
	return keys
}

func (x *Set) Len() int {
	return len(x.keys)
}

// Merge overlays src onto x. Values from src win; positions of keys already
// in x are kept.
func (x *Set) Merge(src *Set) {
	for _, k := range src.keys {
		x.Set(k, src.values[k])
	}
}

func (x *Set) Map() map[string]string {
	m := make(map[string]string, len(x.values))
	for k, v := range x.values {
		m[k] = v
	}
	return m
}
