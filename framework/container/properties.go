package container

import "sync"

// Properties is the extensible property bag attached to a component
// registration, in the manner of Castle Windsor's ExtendedProperties.
//
// Keys must be comparable. Insertion order is preserved; overwriting an
// existing key keeps its original position.
//
//	reg.ExtendedProperty("retries", 3)
//	v, ok := reg.Properties().Get("retries")
type Properties struct {
	mu     sync.RWMutex
	keys   []any
	values map[any]any
}

func newProperties() *Properties {
	return &Properties{values: make(map[any]any)}
}

// Set stores value under key, replacing any previous value for the same key.
func (p *Properties) Set(key, value any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value stored under key.
func (p *Properties) Get(key any) (any, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key is present.
func (p *Properties) Has(key any) bool {
	_, ok := p.Get(key)
	return ok
}

// Delete removes key from the bag.
func (p *Properties) Delete(key any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of stored entries.
func (p *Properties) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.keys)
}

// Keys returns a snapshot of the keys in insertion order.
func (p *Properties) Keys() []any {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]any, len(p.keys))
	copy(out, p.keys)
	return out
}

// Each calls fn for every entry in insertion order until fn returns false.
// fn runs on a snapshot, so it may safely call Set on the same bag.
func (p *Properties) Each(fn func(key, value any) bool) {
	p.mu.RLock()
	keys := make([]any, len(p.keys))
	copy(keys, p.keys)
	vals := make([]any, len(keys))
	for i, k := range keys {
		vals[i] = p.values[k]
	}
	p.mu.RUnlock()

	for i := range keys {
		if !fn(keys[i], vals[i]) {
			return
		}
	}
}
