package route

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/vitalvas/routedoc/openapi"
)

// ErrNilController is returned when a controller factory is nil or produces
// a nil controller.
var ErrNilController = errors.New("nil controller")

// Factory constructs a controller instance. A returned error aborts the
// aggregation that called it.
type Factory func() (any, error)

// Controller returns a Factory that yields a new zero value of T.
func Controller[T any]() Factory {
	return func() (any, error) {
		return new(T), nil
	}
}

// Manifest lists the route-bearing members of a controller, in the order
// they are visited during aggregation. Controllers that do not implement it
// are walked by their exported method set in reflect order.
type Manifest interface {
	RouteMembers() []string
}

// DocumentOptions is the caller's base document. Schemas is merged into
// components.schemas of the result.
type DocumentOptions struct {
	OpenAPI           string
	Info              openapi.Info
	JSONSchemaDialect string
	Servers           []openapi.Server
	Tags              []openapi.Tag
	Security          []openapi.SecurityRequirement
	ExternalDocs      *openapi.ExternalDocs
	Schemas           map[string]*openapi.Schema
}

// Aggregate walks the controllers in order and folds their route metadata
// into a new document.
//
// Each factory is called once. Every member of the controller is looked up
// in the registry and members without metadata are skipped. When several
// members (of one controller or of different controllers) map to the same
// path and method, the one visited last replaces the earlier operation
// entirely.
//
// A factory error aborts the call; the error is wrapped and no document is
// returned.
func (r *Registry) Aggregate(controllers []Factory, opts DocumentOptions) (*openapi.Document, error) {
	paths := make(map[string]openapi.PathItem)

	for i, factory := range controllers {
		if factory == nil {
			return nil, fmt.Errorf("route: controller %d: %w", i, ErrNilController)
		}

		instance, err := factory()
		if err != nil {
			return nil, fmt.Errorf("route: instantiate controller %d: %w", i, err)
		}
		if instance == nil {
			return nil, fmt.Errorf("route: controller %d: %w", i, ErrNilController)
		}

		typ := controllerType(instance)
		for _, member := range members(instance) {
			meta, ok := r.Read(typ, member)
			if !ok {
				continue
			}

			item, ok := paths[meta.Path]
			if !ok {
				item = make(openapi.PathItem)
				paths[meta.Path] = item
			}
			item[meta.Method] = buildOperation(meta)
		}
	}

	return buildDocument(opts, paths), nil
}

// Aggregate builds a document from the Default registry.
func Aggregate(controllers []Factory, opts DocumentOptions) (*openapi.Document, error) {
	return Default.Aggregate(controllers, opts)
}

// members returns the member names to visit for a controller instance.
func members(instance any) []string {
	if m, ok := instance.(Manifest); ok {
		return m.RouteMembers()
	}

	// The pointer method set covers both value and pointer receivers.
	t := reflect.PointerTo(controllerType(instance))
	names := make([]string, 0, t.NumMethod())
	for i := range t.NumMethod() {
		names = append(names, t.Method(i).Name)
	}
	return names
}

// buildOperation converts a metadata record into an Operation. Slices, maps,
// responses and the request body are copied so the document does not alias
// registry state. Schemas are shared.
func buildOperation(meta Metadata) *openapi.Operation {
	op := &openapi.Operation{
		Tags:         slices.Clone(meta.Tags),
		Summary:      meta.Summary,
		Description:  meta.Description,
		ExternalDocs: meta.ExternalDocs,
		OperationID:  meta.OperationID,
		Parameters:   buildParameters(meta.Parameters),
		RequestBody:  cloneRequestBody(meta.RequestBody),
		Responses:    cloneResponses(meta.Responses),
		Deprecated:   meta.Deprecated,
		Security:     slices.Clone(meta.Security),
		Servers:      slices.Clone(meta.Servers),
	}
	if op.Responses == nil {
		op.Responses = make(map[string]*openapi.Response)
	}
	return op
}

func cloneRequestBody(body *openapi.RequestBody) *openapi.RequestBody {
	if body == nil {
		return nil
	}
	out := *body
	out.Content = cloneContent(body.Content)
	return &out
}

func cloneResponses(responses map[string]*openapi.Response) map[string]*openapi.Response {
	if responses == nil {
		return nil
	}
	out := make(map[string]*openapi.Response, len(responses))
	for status, resp := range responses {
		if resp == nil {
			out[status] = nil
			continue
		}
		c := *resp
		c.Headers = maps.Clone(resp.Headers)
		c.Content = cloneContent(resp.Content)
		out[status] = &c
	}
	return out
}

func cloneContent(content map[string]*openapi.MediaType) map[string]*openapi.MediaType {
	if content == nil {
		return nil
	}
	out := make(map[string]*openapi.MediaType, len(content))
	for ct, media := range content {
		if media == nil {
			out[ct] = nil
			continue
		}
		m := *media
		out[ct] = &m
	}
	return out
}

// buildParameters reshapes declared parameters into parameter objects.
// A nil list stays nil so the field is left out of the document.
func buildParameters(params []Parameter) []*openapi.Parameter {
	if params == nil {
		return nil
	}

	out := make([]*openapi.Parameter, 0, len(params))
	for _, p := range params {
		out = append(out, &openapi.Parameter{
			Name:        p.Name,
			In:          string(p.In),
			Description: p.Description,
			Required:    p.Required,
			Schema:      p.Schema.ToSchema(),
		})
	}
	return out
}

// buildDocument lays the base options down first, then the built paths and
// components on top.
func buildDocument(opts DocumentOptions, paths map[string]openapi.PathItem) *openapi.Document {
	version := opts.OpenAPI
	if version == "" {
		version = openapi.Version
	}

	schemas := maps.Clone(opts.Schemas)
	if schemas == nil {
		schemas = make(map[string]*openapi.Schema)
	}

	return &openapi.Document{
		OpenAPI:           version,
		Info:              opts.Info,
		JSONSchemaDialect: opts.JSONSchemaDialect,
		Servers:           slices.Clone(opts.Servers),
		Tags:              slices.Clone(opts.Tags),
		Security:          slices.Clone(opts.Security),
		ExternalDocs:      opts.ExternalDocs,
		Paths:             paths,
		Components: &openapi.Components{
			Schemas: schemas,
		},
	}
}
