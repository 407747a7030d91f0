// Package route attaches OpenAPI route metadata to controller methods and
// aggregates it, across many controllers, into a single OpenAPI document.
//
// # Registering Routes
//
// Metadata is keyed by (controller type, member name). Register it next to
// the controller, usually from init, so that it exists before any document
// is built:
//
//	type Users struct{}
//
//	func (Users) List(w http.ResponseWriter, r *http.Request) {}
//	func (Users) Get(w http.ResponseWriter, r *http.Request)  {}
//
//	func init() {
//	    route.Attach(Users{}, "List", route.GET, "/users", route.Options{
//	        Summary: "List users",
//	        Tags:    []string{"users"},
//	    })
//	    route.Attach(Users{}, "Get", route.GET, "/users/{id}", route.Options{
//	        Summary: "Get a user",
//	        Parameters: []route.Parameter{{
//	            Name: "id", In: route.InPath, Required: true,
//	            Schema: openapi.Property{Type: openapi.PropertyString},
//	        }},
//	    })
//	}
//
// The method is stored lower-cased and neither it nor the path is validated.
// Attaching to the same member again replaces the previous record. Attaching
// leaves the method itself untouched.
//
// Options can also be composed fluently with Op:
//
//	route.Attach(Users{}, "Delete", route.DELETE, "/users/{id}", route.Op().
//	    Summary("Delete a user").
//	    Response(http.StatusNoContent, "", nil).
//	    Options())
//
// # Building a Document
//
// Aggregate takes controller factories in order plus the base document:
//
//	doc, err := route.Aggregate([]route.Factory{
//	    route.Controller[Users](),
//	    route.Controller[Orders](),
//	}, route.DocumentOptions{
//	    Info:    openapi.Info{Title: "Shop API", Version: "1.0.0"},
//	    Schemas: map[string]*openapi.Schema{"User": userSchema},
//	})
//
// Each factory is called once. A factory error is returned wrapped and
// aborts the build.
//
// Members are visited in the order returned by the controller's
// RouteMembers method when it implements Manifest; otherwise the exported
// method set is walked in reflect (lexicographic) order. Members without
// metadata are skipped.
//
// Conflicts are resolved by traversal order: when two members, in the same
// controller or in different ones, declare the same path and method, the
// later one replaces the earlier operation as a whole. Fields are never
// merged.
//
// Parameters are reshaped into parameter objects whose schema holds only
// type, example and description. A route without parameters yields an
// operation without a parameters field; an explicitly empty list is kept
// and encoded as [].
//
// The returned document is new on every call and does not share maps or
// slices with the registry. Calling Aggregate twice with unchanged
// registrations yields equal documents.
//
// # Registries
//
// The package-level Attach, Read and Aggregate use the process-wide Default
// registry. Use NewRegistry for isolated registries, such as in tests.
// Attaching to a registry while it is being aggregated is not supported.
package route
