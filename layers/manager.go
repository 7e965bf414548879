// Package layers schedules game objects across ordered render layers.
// Layer 0 is drawn first; an object's layer is fixed when it is inserted.
package layers

import (
	"fmt"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// Object is anything the manager can host. Implementations must be
// comparable, which in practice means pointer types.
type Object interface {
	Update(dt float64)
	Draw(screen *ebiten.Image)
	Destroyed() bool
}

// Hideable objects can opt out of drawing without being destroyed.
type Hideable interface {
	Visible() bool
}

// Releaser objects are told when the manager drops them.
type Releaser interface {
	Release()
}

type insertion struct {
	obj   Object
	layer int
}

// Manager owns a fixed number of layers.
type Manager struct {
	layers  [][]Object
	layerOf map[Object]int

	updating bool
	pending  []insertion
	removed  map[Object]bool
}

// NewManager creates a manager with count layers.
func NewManager(count int) *Manager {
	if count < 1 {
		count = 1
	}
	return &Manager{
		layers:  make([][]Object, count),
		layerOf: make(map[Object]int),
		removed: make(map[Object]bool),
	}
}

// Insert adds obj to layer. Objects inserted while Update is running are
// queued and join their layer once the pass ends.
func (m *Manager) Insert(obj Object, layer int) error {
	if obj == nil {
		return fmt.Errorf("insert nil object")
	}
	if layer < 0 || layer >= len(m.layers) {
		return fmt.Errorf("layer %d out of range [0, %d)", layer, len(m.layers))
	}
	if l, ok := m.layerOf[obj]; ok {
		return fmt.Errorf("object already in layer %d", l)
	}
	if m.updating {
		for _, p := range m.pending {
			if p.obj == obj {
				return fmt.Errorf("object already queued for layer %d", p.layer)
			}
		}
		m.pending = append(m.pending, insertion{obj: obj, layer: layer})
		return nil
	}
	m.layers[layer] = append(m.layers[layer], obj)
	m.layerOf[obj] = layer
	return nil
}

// Remove drops obj. It reports false if obj is not managed.
func (m *Manager) Remove(obj Object) bool {
	if i := slices.IndexFunc(m.pending, func(p insertion) bool { return p.obj == obj }); i >= 0 {
		m.pending = slices.Delete(m.pending, i, i+1)
		return true
	}
	layer, ok := m.layerOf[obj]
	if !ok {
		return false
	}
	if m.updating {
		m.removed[obj] = true
		return true
	}
	m.drop(layer, obj)
	return true
}

// Update advances every object. Layers run in index order and each layer
// runs newest first, so an object destroyed during its own update is pruned
// without disturbing the ones still to be visited.
func (m *Manager) Update(dt float64) {
	m.updating = true
	for l := range m.layers {
		objs := m.layers[l]
		for i := len(objs) - 1; i >= 0; i-- {
			obj := objs[i]
			if !m.removed[obj] && !obj.Destroyed() {
				obj.Update(dt)
				if !obj.Destroyed() {
					continue
				}
			}
			objs = slices.Delete(objs, i, i+1)
			m.forget(obj)
		}
		m.layers[l] = objs
	}
	m.updating = false

	// removals of objects that were already visited this pass
	for obj := range m.removed {
		if layer, ok := m.layerOf[obj]; ok {
			m.drop(layer, obj)
		}
		delete(m.removed, obj)
	}

	pending := m.pending
	m.pending = nil
	for _, p := range pending {
		m.layers[p.layer] = append(m.layers[p.layer], p.obj)
		m.layerOf[p.obj] = p.layer
	}
}

// Draw renders back to front, each layer in insertion order.
func (m *Manager) Draw(screen *ebiten.Image) {
	m.Each(func(_ int, obj Object) {
		obj.Draw(screen)
	})
}

// Each visits drawable objects in render order.
func (m *Manager) Each(fn func(layer int, obj Object)) {
	for l, objs := range m.layers {
		for _, obj := range objs {
			if obj.Destroyed() || m.removed[obj] {
				continue
			}
			if h, ok := obj.(Hideable); ok && !h.Visible() {
				continue
			}
			fn(l, obj)
		}
	}
}

// Len returns the number of managed objects, excluding queued insertions.
func (m *Manager) Len() int {
	return len(m.layerOf)
}

// LayerOf returns obj's layer.
func (m *Manager) LayerOf(obj Object) (int, bool) {
	l, ok := m.layerOf[obj]
	return l, ok
}

// Clear drops every object.
func (m *Manager) Clear() {
	for l, objs := range m.layers {
		for _, obj := range objs {
			m.forget(obj)
		}
		m.layers[l] = nil
	}
	m.pending = nil
	clear(m.removed)
}

func (m *Manager) drop(layer int, obj Object) {
	objs := m.layers[layer]
	if i := slices.Index(objs, obj); i >= 0 {
		m.layers[layer] = slices.Delete(objs, i, i+1)
	}
	m.forget(obj)
}

func (m *Manager) forget(obj Object) {
	delete(m.layerOf, obj)
	if r, ok := obj.(Releaser); ok {
		r.Release()
	}
}
