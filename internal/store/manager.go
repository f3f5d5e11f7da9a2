package store

import "fmt"

// Open selects and opens a storage backend. If backendName is empty,
// it tries backends in order of preference, ending with the
// non-durable memory store so startup never fails on persistence.
func Open(backendName, path string) (Store, error) {
	if backendName != "" {
		s, err := CreateBackend(backendName, path)
		if err != nil {
			return nil, fmt.Errorf("opening store %s: %w", backendName, err)
		}
		return s, nil
	}

	preference := []string{"json", "sqlite", "memory"}
	for _, name := range preference {
		s, err := CreateBackend(name, path)
		if err != nil {
			continue
		}
		return s, nil
	}

	return NewMemory(), nil
}
