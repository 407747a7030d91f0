package route

import (
	"reflect"
	"strings"
	"sync"

	"github.com/vitalvas/routedoc/openapi"
)

// key identifies a controller member. Pointer types are normalized to their
// element type, so a controller and a pointer to it share records.
type key struct {
	typ    reflect.Type
	member string
}

// Registry stores route metadata keyed by (controller type, member name).
//
// Records are expected to be attached before any aggregation runs, usually
// from the controller package's init function. Attaching while Aggregate is
// walking the same registry is not supported.
type Registry struct {
	mu      sync.RWMutex
	records map[key]Metadata
}

// Default is the process-wide registry used by the package-level Attach,
// Read and Aggregate functions. It is never torn down.
var Default = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		records: make(map[key]Metadata),
	}
}

// Attach stores route metadata for the named member of a controller.
//
// The target is a controller value, a pointer to one, or its reflect.Type.
// The method is lower-cased and stored without validation. Only the first
// Options value is used; when none is given, or it has no responses, the
// record gets an empty responses map. Attaching again to the same pair
// replaces the previous record entirely.
//
//	func init() {
//	    route.Attach(Users{}, "List", route.GET, "/users", route.Options{
//	        Summary: "List users",
//	    })
//	}
func (r *Registry) Attach(target any, member string, method Method, path string, opts ...Options) {
	meta := Metadata{
		Method: strings.ToLower(string(method)),
		Path:   path,
	}
	if len(opts) > 0 {
		meta.Options = opts[0]
	}
	if meta.Responses == nil {
		meta.Responses = make(map[string]*openapi.Response)
	}

	r.mu.Lock()
	r.records[key{typ: controllerType(target), member: member}] = meta
	r.mu.Unlock()
}

// Read returns the most recent metadata attached to the named member, and
// whether any was found.
func (r *Registry) Read(target any, member string) (Metadata, bool) {
	r.mu.RLock()
	meta, ok := r.records[key{typ: controllerType(target), member: member}]
	r.mu.RUnlock()
	return meta, ok
}

// Len returns the number of stored records.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// Attach stores route metadata in the Default registry.
func Attach(target any, member string, method Method, path string, opts ...Options) {
	Default.Attach(target, member, method, path, opts...)
}

// Read looks up route metadata in the Default registry.
func Read(target any, member string) (Metadata, bool) {
	return Default.Read(target, member)
}

// controllerType resolves the registry key type for a target.
func controllerType(target any) reflect.Type {
	t, ok := target.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(target)
	}
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
