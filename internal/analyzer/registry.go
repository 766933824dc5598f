package analyzer

// TypeRegistry tracks structure sizes so nested references can be checked
// before every structure has been built
type TypeRegistry struct {
	types map[string]int // structure name → size in bytes
	order []string
}

func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		types: make(map[string]int),
	}
}

// Register adds a structure with its size. It reports false if the name was
// already registered.
func (r *TypeRegistry) Register(name string, size int) bool {
	if _, ok := r.types[name]; ok {
		return false
	}
	r.types[name] = size
	r.order = append(r.order, name)
	return true
}

// Lookup returns the size of a registered structure
func (r *TypeRegistry) Lookup(name string) (int, bool) {
	size, ok := r.types[name]
	return size, ok
}

// Names returns registered structure names in registration order
func (r *TypeRegistry) Names() []string {
	return append([]string(nil), r.order...)
}
