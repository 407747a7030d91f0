package route

import (
	"net/http"
	"strconv"

	"github.com/vitalvas/routedoc/openapi"
)

// OperationBuilder provides a fluent API for composing route Options.
//
//	route.Attach(Users{}, "Create", route.POST, "/users", route.Op().
//	    Summary("Create a user").
//	    Tags("users").
//	    Request("User to create", true, userSchema).
//	    Response(http.StatusCreated, "", userSchema).
//	    Options())
type OperationBuilder struct {
	opts Options
}

// Op starts a new operation builder.
func Op() *OperationBuilder {
	return &OperationBuilder{}
}

// Summary sets the operation summary.
func (b *OperationBuilder) Summary(s string) *OperationBuilder {
	b.opts.Summary = s
	return b
}

// Description sets the operation description.
func (b *OperationBuilder) Description(d string) *OperationBuilder {
	b.opts.Description = d
	return b
}

// Tags adds one or more tags to the operation.
func (b *OperationBuilder) Tags(tags ...string) *OperationBuilder {
	b.opts.Tags = append(b.opts.Tags, tags...)
	return b
}

// OperationID sets the operation ID.
func (b *OperationBuilder) OperationID(id string) *OperationBuilder {
	b.opts.OperationID = id
	return b
}

// Deprecated marks the operation as deprecated.
func (b *OperationBuilder) Deprecated() *OperationBuilder {
	b.opts.Deprecated = true
	return b
}

// Parameter appends a parameter.
func (b *OperationBuilder) Parameter(p Parameter) *OperationBuilder {
	b.opts.Parameters = append(b.opts.Parameters, p)
	return b
}

// Request sets an application/json request body.
//
// See: https://spec.openapis.org/oas/v3.1.0#request-body-object
func (b *OperationBuilder) Request(description string, required bool, schema *openapi.Schema) *OperationBuilder {
	b.RequestContent("application/json", schema)
	b.opts.RequestBody.Description = description
	b.opts.RequestBody.Required = required
	return b
}

// RequestContent adds a request body media type. A nil schema registers the
// content type without a schema.
func (b *OperationBuilder) RequestContent(contentType string, schema *openapi.Schema) *OperationBuilder {
	if b.opts.RequestBody == nil {
		b.opts.RequestBody = &openapi.RequestBody{}
	}
	if b.opts.RequestBody.Content == nil {
		b.opts.RequestBody.Content = make(map[string]*openapi.MediaType)
	}
	b.opts.RequestBody.Content[contentType] = &openapi.MediaType{Schema: schema}
	return b
}

// Response registers a response for the status code. A nil schema declares
// a response without content (e.g. 204). An empty description falls back to
// the HTTP status text.
//
// See: https://spec.openapis.org/oas/v3.1.0#responses-object
func (b *OperationBuilder) Response(statusCode int, description string, schema *openapi.Schema) *OperationBuilder {
	key := strconv.Itoa(statusCode)
	resp := b.response(key, description)
	if schema != nil {
		resp.Content = map[string]*openapi.MediaType{
			"application/json": {Schema: schema},
		}
	}
	return b
}

// ResponseContent adds a media type to the response for the status code.
func (b *OperationBuilder) ResponseContent(statusCode int, contentType string, schema *openapi.Schema) *OperationBuilder {
	resp := b.response(strconv.Itoa(statusCode), "")
	if resp.Content == nil {
		resp.Content = make(map[string]*openapi.MediaType)
	}
	resp.Content[contentType] = &openapi.MediaType{Schema: schema}
	return b
}

// DefaultResponse registers the catch-all "default" response.
//
// See: https://spec.openapis.org/oas/v3.1.0#responses-object (default)
func (b *OperationBuilder) DefaultResponse(description string, schema *openapi.Schema) *OperationBuilder {
	resp := b.response("default", description)
	if schema != nil {
		resp.Content = map[string]*openapi.MediaType{
			"application/json": {Schema: schema},
		}
	}
	return b
}

// Security sets operation-level security requirements. Call with no
// arguments to mark the operation as unauthenticated.
func (b *OperationBuilder) Security(reqs ...openapi.SecurityRequirement) *OperationBuilder {
	if reqs == nil {
		reqs = []openapi.SecurityRequirement{}
	}
	b.opts.Security = reqs
	return b
}

// ExternalDocs sets external documentation for the operation.
func (b *OperationBuilder) ExternalDocs(url, description string) *OperationBuilder {
	b.opts.ExternalDocs = &openapi.ExternalDocs{URL: url, Description: description}
	return b
}

// Server adds a server override for the operation.
func (b *OperationBuilder) Server(server openapi.Server) *OperationBuilder {
	b.opts.Servers = append(b.opts.Servers, server)
	return b
}

// Options returns the collected options.
func (b *OperationBuilder) Options() Options {
	return b.opts
}

// response returns the response for key, creating it when missing. A
// non-empty description always replaces the current one.
func (b *OperationBuilder) response(key, description string) *openapi.Response {
	if b.opts.Responses == nil {
		b.opts.Responses = make(map[string]*openapi.Response)
	}
	resp, ok := b.opts.Responses[key]
	if !ok {
		resp = &openapi.Response{Description: responseDescription(key)}
		b.opts.Responses[key] = resp
	}
	if description != "" {
		resp.Description = description
	}
	return resp
}

// responseDescription returns a human-readable description for a response key.
func responseDescription(key string) string {
	if key == "default" {
		return "Default response"
	}
	code, err := strconv.Atoi(key)
	if err == nil {
		if text := http.StatusText(code); text != "" {
			return text
		}
	}
	return key
}
