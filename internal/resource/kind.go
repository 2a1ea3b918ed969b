// Package resource describes entity kinds once so that validation, storage
// checks, hypermedia, exports and API documentation can all be driven from
// the same field list.
package resource

import (
	"fmt"
	"strconv"
	"strings"
)

type FieldType string

const (
	FieldString    FieldType = "string"
	FieldText      FieldType = "text"
	FieldDate      FieldType = "date"
	FieldNumber    FieldType = "number"
	FieldReference FieldType = "reference"
	FieldSecret    FieldType = "secret"
)

// FieldSpec is the non-generic description of one attribute.
type FieldSpec struct {
	Name     string
	Label    string
	Type     FieldType
	Required bool
	// Ref is the table of the referenced kind, set for FieldReference only.
	Ref string
}

// Field binds a FieldSpec to an accessor on T.
type Field[T any] struct {
	FieldSpec
	Get func(*T) any
}

// Spec is the non-generic view of a kind, used where the entity type does
// not matter (documentation, routing tables).
type Spec struct {
	Name        string
	Table       string
	Singular    string
	Plural      string
	Description string
	Fields      []FieldSpec
}

func (s Spec) BasePath() string {
	return "/" + s.Name
}

// Kind describes one entity kind.
type Kind[T any] struct {
	// Name is the path segment and cache namespace, e.g. "contratos".
	Name        string
	Table       string
	Singular    string
	Plural      string
	Description string
	Fields      []Field[T]

	ID    func(*T) uint64
	SetID func(*T, uint64)
	// Overwrite copies every mutable field of src onto dst.
	Overwrite func(dst, src *T)
}

func (k Kind[T]) BasePath() string {
	return "/" + k.Name
}

func (k Kind[T]) Spec() Spec {
	fields := make([]FieldSpec, 0, len(k.Fields))
	for _, f := range k.Fields {
		fields = append(fields, f.FieldSpec)
	}
	return Spec{
		Name:        k.Name,
		Table:       k.Table,
		Singular:    k.Singular,
		Plural:      k.Plural,
		Description: k.Description,
		Fields:      fields,
	}
}

// Reference is a foreign id carried by a record of kind T.
type Reference[T any] struct {
	Column string
	Table  string
	Get    func(*T) uint64
}

func (k Kind[T]) References() []Reference[T] {
	var refs []Reference[T]
	for _, f := range k.Fields {
		if f.Type != FieldReference {
			continue
		}
		get := f.Get
		refs = append(refs, Reference[T]{
			Column: f.Name,
			Table:  f.Ref,
			Get: func(rec *T) uint64 {
				id, _ := get(rec).(uint64)
				return id
			},
		})
	}
	return refs
}

// Row renders the exportable fields of rec, prefixed by its identity.
// Secret fields are never rendered.
func (k Kind[T]) Row(rec *T) []string {
	row := []string{strconv.FormatUint(k.ID(rec), 10)}
	for _, f := range k.Fields {
		if f.Type == FieldSecret {
			continue
		}
		row = append(row, formatValue(f.Get(rec)))
	}
	return row
}

func (k Kind[T]) Headers() []string {
	headers := []string{"ID"}
	for _, f := range k.Fields {
		if f.Type == FieldSecret {
			continue
		}
		headers = append(headers, f.Label)
	}
	return headers
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case uint64:
		if v == 0 {
			return ""
		}
		return strconv.FormatUint(v, 10)
	case *float64:
		if v == nil {
			return ""
		}
		return strconv.FormatFloat(*v, 'f', 2, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
