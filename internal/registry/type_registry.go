package registry

import (
	"sync"

	"github.com/toyz/vtgen/internal/models"
)

// EntryKind discriminates the declarations stored in the type table
type EntryKind int

const (
	// OpaqueEntry is an opaque type, forward-declared but never defined
	OpaqueEntry EntryKind = iota
	// InterfaceEntry is an interface declaration with a vtable layout
	InterfaceEntry
)

// TypeEntry is one row of the unit's type table. Opaque types are carried
// by identity only, so a handle plus a name is all later stages consume.
type TypeEntry struct {
	Handle    models.TypeHandle
	Name      string
	Kind      EntryKind
	Opaque    *models.OpaqueTypeMetadata // set for OpaqueEntry declarations
	Interface *models.InterfaceMetadata  // set for InterfaceEntry

	// AutoDeclared marks opaque types that were never declared in the
	// input but were referenced by a signature. Policy is to forward
	// declare them on first use rather than fail, since opaque types
	// are intentionally undefined by this system.
	AutoDeclared bool
}

// TypeRegistryInterface defines the interface for type table operations
type TypeRegistryInterface interface {
	RegisterOpaque(opaque *models.OpaqueTypeMetadata) error
	RegisterInterface(iface *models.InterfaceMetadata) error
	EnsureOpaque(name string) models.TypeHandle
	Lookup(name string) (TypeEntry, bool)
	Entry(handle models.TypeHandle) (TypeEntry, bool)
	Entries() []TypeEntry
	Len() int
}

// TypeRegistry holds every type declared or referenced by one generation
// unit. Each run builds its own registry so generation units stay
// independent of each other.
type TypeRegistry struct {
	entries []TypeEntry
	index   map[string]models.TypeHandle
	mu      sync.RWMutex
}

// NewTypeRegistry creates an empty type registry
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		index: make(map[string]models.TypeHandle),
	}
}

// RegisterOpaque adds a declared opaque type to the table
func (r *TypeRegistry) RegisterOpaque(opaque *models.OpaqueTypeMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if handle, exists := r.index[opaque.Name]; exists {
		existing := r.entries[handle]
		// A declaration may land after its first use was auto declared.
		// Upgrade the placeholder instead of reporting a duplicate.
		if existing.Kind == OpaqueEntry && existing.AutoDeclared {
			r.entries[handle].Opaque = opaque
			r.entries[handle].AutoDeclared = false
			return nil
		}
		return duplicateError(opaque.Name, opaque.FileName, opaque.Line, existing)
	}

	handle := models.TypeHandle(len(r.entries))
	r.entries = append(r.entries, TypeEntry{
		Handle: handle,
		Name:   opaque.Name,
		Kind:   OpaqueEntry,
		Opaque: opaque,
	})
	r.index[opaque.Name] = handle
	return nil
}

// RegisterInterface adds a declared interface to the table
func (r *TypeRegistry) RegisterInterface(iface *models.InterfaceMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if handle, exists := r.index[iface.Name]; exists {
		return duplicateError(iface.Name, iface.FileName, iface.Line, r.entries[handle])
	}

	handle := models.TypeHandle(len(r.entries))
	r.entries = append(r.entries, TypeEntry{
		Handle:    handle,
		Name:      iface.Name,
		Kind:      InterfaceEntry,
		Interface: iface,
	})
	r.index[iface.Name] = handle
	return nil
}

// EnsureOpaque resolves a referenced type name, auto-declaring an opaque
// placeholder if the name was never declared. Returns the handle either way.
func (r *TypeRegistry) EnsureOpaque(name string) models.TypeHandle {
	r.mu.Lock()
	defer r.mu.Unlock()

	if handle, exists := r.index[name]; exists {
		return handle
	}

	handle := models.TypeHandle(len(r.entries))
	r.entries = append(r.entries, TypeEntry{
		Handle:       handle,
		Name:         name,
		Kind:         OpaqueEntry,
		AutoDeclared: true,
	})
	r.index[name] = handle
	return handle
}

// Lookup retrieves a type entry by name
func (r *TypeRegistry) Lookup(name string) (TypeEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handle, exists := r.index[name]
	if !exists {
		return TypeEntry{}, false
	}
	return r.entries[handle], true
}

// Entry retrieves a type entry by handle
func (r *TypeRegistry) Entry(handle models.TypeHandle) (TypeEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if handle < 0 || int(handle) >= len(r.entries) {
		return TypeEntry{}, false
	}
	return r.entries[handle], true
}

// Entries returns all table entries in registration order
func (r *TypeRegistry) Entries() []TypeEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]TypeEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Len returns the number of registered types
func (r *TypeRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func duplicateError(name, file string, line int, existing TypeEntry) *models.GeneratorError {
	existingFile := ""
	existingLine := 0
	switch existing.Kind {
	case OpaqueEntry:
		if existing.Opaque != nil {
			existingFile = existing.Opaque.FileName
			existingLine = existing.Opaque.Line
		}
	case InterfaceEntry:
		if existing.Interface != nil {
			existingFile = existing.Interface.FileName
			existingLine = existing.Interface.Line
		}
	}

	err := models.NewMalformedInputError(file, line, "duplicate type name '%s'", name)
	err.Suggestions = []string{
		"rename one of the conflicting declarations",
		"type names are shared between interfaces and opaque types within a unit",
	}
	err.Context = map[string]interface{}{
		"type_name":     name,
		"existing_file": existingFile,
		"existing_line": existingLine,
	}
	return err
}
