package corpus

import "fmt"

// Registry maps generator names to factory functions. Factories let callers
// tweak generator fields before Init.
var Registry = map[string]func() Generator{
	"payroll": func() Generator { return NewPayrollGenerator() },
}

// Get returns a generator by name.
func Get(name string) (Generator, error) {
	factory, exists := Registry[name]
	if !exists {
		return nil, fmt.Errorf("unknown generator: %s", name)
	}
	return factory(), nil
}

// List returns all available generator names.
func List() []string {
	var names []string
	for name := range Registry {
		names = append(names, name)
	}
	return names
}
