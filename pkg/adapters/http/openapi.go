package http

import (
	"fmt"
	"net/http"

	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPI handles GET /openapi.json.
func (s *Server) OpenAPI(w http.ResponseWriter, r *http.Request) {
	doc, err := Document(s.Engine, s.Version)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// Document describes the HTTP API. Each module contributes one input schema
// per strategy, named <MODULE>.<strategy>, so clients can build forms from it.
func Document(engine Engine, version string) (*openapi3.T, error) {
	descriptors := engine.Modules()
	ids := make([]any, 0, len(descriptors))
	schemas := openapi3.Schemas{}

	for _, d := range descriptors {
		ids = append(ids, d.ID)
		m, err := engine.Module(d.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to describe module %s: %w", d.ID, err)
		}
		for _, st := range m.Strategies {
			obj := openapi3.NewObjectSchema()
			obj.Title = d.Name + " / " + st.Name
			for _, f := range st.Fields {
				obj.WithProperty(f.Name, fieldSchema(f))
			}
			schemas[fmt.Sprintf("%s.%s", d.ID, st.ID)] = openapi3.NewSchemaRef("", obj)
		}
	}

	idParam := &openapi3.ParameterRef{Value: openapi3.NewPathParameter("id").
		WithDescription("Module identifier").
		WithSchema(openapi3.NewStringSchema().WithEnum(ids...))}

	computeBody := openapi3.NewObjectSchema().
		WithProperty("strategy", openapi3.NewStringSchema()).
		WithProperty("inputs", openapi3.NewObjectSchema().WithAdditionalProperties(openapi3.NewStringSchema()))

	result := openapi3.NewObjectSchema().
		WithProperty("label", openapi3.NewStringSchema()).
		WithProperty("value", &openapi3.Schema{}).
		WithProperty("unit", openapi3.NewStringSchema()).
		WithProperty("kind", openapi3.NewStringSchema().WithEnum(
			string(domain.ResultValue), string(domain.ResultInfo),
			string(domain.ResultError), string(domain.ResultUnsatisfiable))).
		WithProperty("text", openapi3.NewStringSchema())

	computeResponse := openapi3.NewObjectSchema().
		WithProperty("module", openapi3.NewStringSchema()).
		WithProperty("strategy", openapi3.NewStringSchema()).
		WithProperty("outcome", openapi3.NewStringSchema()).
		WithProperty("results", openapi3.NewArraySchema().WithItems(result))

	descriptor := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewStringSchema()).
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("description", openapi3.NewStringSchema())

	anyObject := openapi3.NewObjectSchema()

	formatParam := &openapi3.ParameterRef{Value: openapi3.NewQueryParameter("format").
		WithSchema(openapi3.NewStringSchema().WithEnum("markdown", "json", "yaml"))}

	paths := openapi3.NewPaths(
		openapi3.WithPath("/health", &openapi3.PathItem{Get: operation("health", "Liveness check", nil, anyObject)}),
		openapi3.WithPath("/info", &openapi3.PathItem{Get: operation("info", "Service information", nil, anyObject)}),
		openapi3.WithPath("/modules", &openapi3.PathItem{Get: operation("listModules", "List the catalog", nil,
			openapi3.NewArraySchema().WithItems(descriptor))}),
		openapi3.WithPath("/modules/{id}", &openapi3.PathItem{
			Parameters: openapi3.Parameters{idParam},
			Get:        operation("describeModule", "Describe a module and its strategies", nil, anyObject),
		}),
		openapi3.WithPath("/modules/{id}/compute", &openapi3.PathItem{
			Parameters: openapi3.Parameters{idParam},
			Post:       operation("compute", "Run one strategy over raw inputs", computeBody, computeResponse),
		}),
		openapi3.WithPath("/modules/{id}/report", &openapi3.PathItem{
			Parameters: openapi3.Parameters{idParam},
			Post: withParams(operation("report", "Compute and export a report", computeBody, anyObject),
				formatParam),
		}),
		openapi3.WithPath("/render", &openapi3.PathItem{Post: operation("render", "Project a state into a view", anyObject, anyObject)}),
		openapi3.WithPath("/dispatch", &openapi3.PathItem{Post: operation("dispatch", "Apply an event to a state", anyObject, anyObject)}),
	)

	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "agrocalc",
			Description: "Calculadoras agronômicas",
			Version:     version,
		},
		Paths:      paths,
		Components: &openapi3.Components{Schemas: schemas},
	}, nil
}

func operation(id, summary string, body, response *openapi3.Schema) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = id
	op.Summary = summary
	if body != nil {
		op.RequestBody = &openapi3.RequestBodyRef{Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(body)}
	}
	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{Value: openapi3.NewResponse().
			WithDescription("OK").
			WithJSONSchema(response)}),
		openapi3.WithStatus(http.StatusBadRequest, &openapi3.ResponseRef{Value: openapi3.NewResponse().
			WithDescription("Invalid request")}),
	)
	return op
}

func withParams(op *openapi3.Operation, params ...*openapi3.ParameterRef) *openapi3.Operation {
	op.Parameters = append(op.Parameters, params...)
	return op
}

func fieldSchema(f domain.FieldSchema) *openapi3.Schema {
	s := openapi3.NewStringSchema()
	s.Title = f.Label
	if f.Unit != "" {
		s.Description = "Unidade: " + f.Unit
	}
	if f.Default != "" {
		s.Default = f.Default
	}
	if f.Kind == domain.KindChoice {
		values := make([]any, len(f.Choices))
		for i, c := range f.Choices {
			values[i] = c.Value
		}
		s.Enum = values
	}
	return s
}
