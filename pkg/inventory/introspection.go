package inventory

import (
	"github.com/aretw0/introspection"
)

// ManagerState exposes internal state for observability.
type ManagerState struct {
	Variant string `json:"variant"`
	Items   int    `json:"items"`
}

// State implements introspection.Introspectable.
func (m *Manager) State() any {
	return ManagerState{
		Variant: m.variant,
		Items:   m.items.Len(),
	}
}

// ComponentType implements introspection.Component.
func (m *Manager) ComponentType() string {
	return "inventory-manager"
}

var _ introspection.Introspectable = (*Manager)(nil)
var _ introspection.Component = (*Manager)(nil)
