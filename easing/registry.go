package easing

import (
	"fmt"
	"sync"
)

// registry resolves custom curves by name so animation configs never embed
// arbitrary executable code. Registration uses mutex; lookup is read-locked
var registry = struct {
	mu    sync.RWMutex
	items map[string]CurveFunc
}{items: make(map[string]CurveFunc)}

// Register stores a named custom curve
// Re-registering a name replaces the previous curve
func Register(name string, fn CurveFunc) error {
	if name == "" {
		return fmt.Errorf("%w: custom easing name is empty", ErrInvalidParameter)
	}
	if fn == nil {
		return fmt.Errorf("%w: custom easing %q has nil curve", ErrInvalidParameter, name)
	}
	registry.mu.Lock()
	registry.items[name] = fn
	registry.mu.Unlock()
	return nil
}

// Named resolves a previously registered custom curve
func Named(name string) (Easing, error) {
	registry.mu.RLock()
	fn, ok := registry.items[name]
	registry.mu.RUnlock()
	if !ok {
		return Easing{}, fmt.Errorf("%w: no custom easing registered under %q", ErrInvalidParameter, name)
	}
	return New("custom:"+name, fn), nil
}
