// Package docs builds the OpenAPI document of the HTTP API from the kind
// descriptors.
package docs

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/tpc/ocean/internal/resource"
)

const (
	Title   = "Ocean API"
	Version = "1.0.0"

	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// Build documents every route registered per kind. 401 responses are
// declared on writes but nothing in the service enforces them.
func Build(specs []resource.Spec) *openapi3.T {
	b := &builder{doc: &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       Title,
			Version:     Version,
			Description: "Cadastro de empresas, instituições, contratos, serviços, transações, exibições, usuários e perfis.",
		},
		Paths:      openapi3.NewPaths(),
		Components: &openapi3.Components{Schemas: openapi3.Schemas{}},
	}}

	b.component("error", openapi3.NewObjectSchema().
		WithProperty("error", openapi3.NewStringSchema()))
	b.component("link", openapi3.NewObjectSchema().
		WithProperty("href", openapi3.NewStringSchema()))
	b.component("page-metadata", openapi3.NewObjectSchema().
		WithProperty("number", openapi3.NewIntegerSchema()).
		WithProperty("size", openapi3.NewIntegerSchema()).
		WithProperty("total_elements", openapi3.NewInt64Schema()).
		WithProperty("total_pages", openapi3.NewIntegerSchema()))

	for _, spec := range specs {
		b.doc.Tags = append(b.doc.Tags, &openapi3.Tag{Name: spec.Plural, Description: spec.Description})
		b.component(spec.Name, b.entitySchema(spec))
		b.component(spec.Name+"-page", b.pageSchema(spec))

		b.doc.Paths.Set(spec.BasePath(), &openapi3.PathItem{
			Get:  b.listOperation(spec),
			Post: b.createOperation(spec),
		})
		b.doc.Paths.Set(spec.BasePath()+"/export", &openapi3.PathItem{
			Get: b.exportOperation(spec),
		})
		b.doc.Paths.Set(spec.BasePath()+"/{id}", &openapi3.PathItem{
			Get:    b.getOperation(spec),
			Put:    b.updateOperation(spec),
			Delete: b.deleteOperation(spec),
		})
	}
	return b.doc
}

type builder struct {
	doc *openapi3.T
}

func (b *builder) component(name string, schema *openapi3.Schema) {
	b.doc.Components.Schemas[name] = schema.NewRef()
}

// ref points at a registered component and carries its value so the
// document validates without a loader pass.
func (b *builder) ref(name string) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("#/components/schemas/"+name, b.doc.Components.Schemas[name].Value)
}

func (b *builder) entitySchema(spec resource.Spec) *openapi3.Schema {
	schema := openapi3.NewObjectSchema().WithProperty("id", readOnly(openapi3.NewInt64Schema()))
	for _, f := range spec.Fields {
		prop := fieldSchema(f)
		prop.Title = f.Label
		schema.WithProperty(f.Name, prop)
		if f.Required {
			schema.Required = append(schema.Required, f.Name)
		}
	}
	schema.Properties["_links"] = &openapi3.SchemaRef{Value: readOnly(openapi3.NewObjectSchema().
		WithPropertyRef("self", b.ref("link")))}
	return schema
}

func fieldSchema(f resource.FieldSpec) *openapi3.Schema {
	switch f.Type {
	case resource.FieldDate:
		return openapi3.NewStringSchema().WithFormat("date").WithNullable()
	case resource.FieldNumber:
		return openapi3.NewFloat64Schema().WithNullable()
	case resource.FieldReference:
		s := openapi3.NewInt64Schema()
		s.Description = "id em " + f.Ref
		return s
	case resource.FieldSecret:
		s := openapi3.NewStringSchema().WithFormat("password")
		s.WriteOnly = true
		return s
	default:
		return openapi3.NewStringSchema()
	}
}

func (b *builder) pageSchema(spec resource.Spec) *openapi3.Schema {
	items := openapi3.NewArraySchema()
	items.Items = b.ref(spec.Name)
	return openapi3.NewObjectSchema().
		WithProperty("_embedded", openapi3.NewObjectSchema().WithProperty(spec.Name, items)).
		WithProperty("_links", openapi3.NewObjectSchema().WithPropertyRef("self", b.ref("link"))).
		WithPropertyRef("page", b.ref("page-metadata"))
}

func (b *builder) listOperation(spec resource.Spec) *openapi3.Operation {
	op := newOperation(spec, "list", "Lista "+spec.Plural+" paginados")
	op.AddParameter(openapi3.NewQueryParameter("page").
		WithDescription("página, a partir de 0").
		WithSchema(openapi3.NewIntegerSchema().WithMin(0)))
	op.AddParameter(openapi3.NewQueryParameter("size").
		WithDescription("registros por página").
		WithSchema(openapi3.NewIntegerSchema().WithMin(1)))
	b.addJSONResponse(op, http.StatusOK, "Página de "+spec.Plural, spec.Name+"-page")
	b.addErrorResponse(op, http.StatusBadRequest, "Parâmetros de paginação inválidos")
	return op
}

func (b *builder) getOperation(spec resource.Spec) *openapi3.Operation {
	op := newOperation(spec, "get", "Busca "+spec.Singular+" por id")
	op.AddParameter(idParameter())
	b.addJSONResponse(op, http.StatusOK, spec.Singular+" encontrado", spec.Name)
	b.addErrorResponse(op, http.StatusNotFound, spec.Singular+" não encontrado")
	return op
}

func (b *builder) createOperation(spec resource.Spec) *openapi3.Operation {
	op := newOperation(spec, "create", "Cria "+spec.Singular)
	op.RequestBody = b.requestBody(spec)
	created := openapi3.NewResponse().
		WithDescription(spec.Singular + " criado").
		WithJSONSchemaRef(b.ref(spec.Name))
	created.Headers = openapi3.Headers{
		"Location": &openapi3.HeaderRef{Value: &openapi3.Header{Parameter: openapi3.Parameter{
			Description: "link do registro criado",
			Schema:      openapi3.NewStringSchema().NewRef(),
		}}},
	}
	op.AddResponse(http.StatusCreated, created)
	b.addErrorResponse(op, http.StatusBadRequest, "Campos obrigatórios ausentes")
	b.addErrorResponse(op, http.StatusUnauthorized, "Não autorizado")
	return op
}

func (b *builder) updateOperation(spec resource.Spec) *openapi3.Operation {
	op := newOperation(spec, "update", "Substitui todos os campos de "+spec.Singular)
	op.AddParameter(idParameter())
	op.RequestBody = b.requestBody(spec)
	b.addJSONResponse(op, http.StatusOK, spec.Singular+" atualizado", spec.Name)
	b.addErrorResponse(op, http.StatusBadRequest, "Campos obrigatórios ausentes")
	b.addErrorResponse(op, http.StatusUnauthorized, "Não autorizado")
	b.addErrorResponse(op, http.StatusNotFound, spec.Singular+" não encontrado")
	return op
}

func (b *builder) deleteOperation(spec resource.Spec) *openapi3.Operation {
	op := newOperation(spec, "delete", "Remove "+spec.Singular)
	op.AddParameter(idParameter())
	op.AddResponse(http.StatusNoContent, openapi3.NewResponse().WithDescription(spec.Singular+" removido"))
	b.addErrorResponse(op, http.StatusNotFound, spec.Singular+" não encontrado")
	b.addErrorResponse(op, http.StatusUnauthorized, "Não autorizado")
	return op
}

func (b *builder) exportOperation(spec resource.Spec) *openapi3.Operation {
	op := newOperation(spec, "export", "Exporta "+spec.Plural+" em planilha ou PDF")
	op.AddParameter(openapi3.NewQueryParameter("format").
		WithSchema(openapi3.NewStringSchema().WithEnum("xlsx", "pdf")))
	binary := openapi3.NewStringSchema().WithFormat("binary")
	ok := openapi3.NewResponse().WithDescription("Arquivo gerado").WithContent(openapi3.Content{
		contentTypeXLSX: openapi3.NewMediaType().WithSchema(binary),
		contentTypePDF:  openapi3.NewMediaType().WithSchema(binary),
	})
	op.AddResponse(http.StatusOK, ok)
	b.addErrorResponse(op, http.StatusBadRequest, "Formato inválido")
	return op
}

func newOperation(spec resource.Spec, action, summary string) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = action + "-" + spec.Name
	op.Summary = summary
	op.Tags = []string{spec.Plural}
	op.Responses = openapi3.NewResponsesWithCapacity(4)
	return op
}

func (b *builder) requestBody(spec resource.Spec) *openapi3.RequestBodyRef {
	return &openapi3.RequestBodyRef{Value: openapi3.NewRequestBody().
		WithRequired(true).
		WithJSONSchemaRef(b.ref(spec.Name))}
}

func idParameter() *openapi3.Parameter {
	return openapi3.NewPathParameter("id").WithSchema(openapi3.NewInt64Schema().WithMin(1))
}

func (b *builder) addJSONResponse(op *openapi3.Operation, status int, description, schema string) {
	op.AddResponse(status, openapi3.NewResponse().
		WithDescription(description).
		WithJSONSchemaRef(b.ref(schema)))
}

func (b *builder) addErrorResponse(op *openapi3.Operation, status int, description string) {
	b.addJSONResponse(op, status, description, "error")
}

func readOnly(s *openapi3.Schema) *openapi3.Schema {
	s.ReadOnly = true
	return s
}
