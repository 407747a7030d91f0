package openapi

// PropertyType is the declared type of a single schema property.
type PropertyType string

const (
	PropertyString  PropertyType = "string"
	PropertyNumber  PropertyType = "number"
	PropertyInteger PropertyType = "integer"
	PropertyBoolean PropertyType = "boolean"
	PropertyObject  PropertyType = "object"
	PropertyNull    PropertyType = "null"
)

// Property is a flat property definition. Required is only consulted by
// BuildSchema to fill the required list; it never appears in the emitted
// property object.
type Property struct {
	Type        PropertyType
	Required    bool
	Example     any
	Description string
}

// ToSchema returns the {type, example, description} schema for the property.
// Unset attributes stay unset.
func (p Property) ToSchema() *Schema {
	s := &Schema{
		Example:     p.Example,
		Description: p.Description,
	}
	if p.Type != "" {
		s.Type = TypeString(string(p.Type))
	}
	return s
}

// Field is a named property inside a Definition.
type Field struct {
	Name     string
	Property Property
}

// Definition is an ordered list of fields. Order matters: it decides the
// order of the generated required list.
type Definition []Field

// BuildSchema converts a flat definition into an object schema.
//
// The name is informational only and is not embedded in the result; callers
// typically use it as the key under components.schemas. Every field is copied
// unconditionally. A repeated field name replaces the earlier property and is
// listed in required at most once, at its first required position.
//
// Required is always a non-nil list. When no field is required the list is
// empty and the "required" keyword is left out of the encoded output.
//
//	user := openapi.BuildSchema("User", openapi.Definition{
//	    {Name: "id", Property: openapi.Property{Type: openapi.PropertyInteger, Required: true}},
//	    {Name: "name", Property: openapi.Property{Type: openapi.PropertyString}},
//	})
//
// See: https://json-schema.org/draft/2020-12/json-schema-validation#section-6.5.3 (required)
func BuildSchema(_ string, def Definition) *Schema {
	schema := &Schema{
		Type:       TypeString(string(PropertyObject)),
		Properties: make(map[string]*Schema, len(def)),
		Required:   []string{},
	}

	listed := make(map[string]bool)
	for _, field := range def {
		schema.Properties[field.Name] = field.Property.ToSchema()

		if field.Property.Required && !listed[field.Name] {
			listed[field.Name] = true
			schema.Required = append(schema.Required, field.Name)
		}
	}

	return schema
}
