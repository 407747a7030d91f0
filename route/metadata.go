package route

import (
	"github.com/vitalvas/routedoc/openapi"
)

// Method is the HTTP method a route is annotated with.
type Method string

const (
	GET    Method = "GET"
	POST   Method = "POST"
	PUT    Method = "PUT"
	PATCH  Method = "PATCH"
	DELETE Method = "DELETE"
)

// Location is where a parameter is carried in the request.
type Location string

const (
	InPath   Location = "path"
	InQuery  Location = "query"
	InHeader Location = "header"
)

// Parameter describes one operation parameter as declared on a route.
// The nested schema is a flat property; its Required flag is not meaningful
// for parameters and is dropped during aggregation.
type Parameter struct {
	Name        string
	In          Location
	Description string
	Required    bool
	Schema      openapi.Property
}

// Options carries the operation fields that accompany a route's method and
// path. RequestBody and Responses are passed through to the document as-is.
type Options struct {
	Summary      string
	Description  string
	Tags         []string
	OperationID  string
	Deprecated   bool
	Parameters   []Parameter
	RequestBody  *openapi.RequestBody
	Responses    map[string]*openapi.Response
	Security     []openapi.SecurityRequirement
	Servers      []openapi.Server
	ExternalDocs *openapi.ExternalDocs
}

// Metadata is the record stored for one (controller, member) pair.
// Method is always lower-cased.
type Metadata struct {
	Method string
	Path   string
	Options
}
