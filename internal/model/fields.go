package model

import "github.com/tpc/ocean/internal/resource"

func required[T any](name, label string, typ resource.FieldType, get func(*T) any) resource.Field[T] {
	return resource.Field[T]{
		FieldSpec: resource.FieldSpec{Name: name, Label: label, Type: typ, Required: true},
		Get:       get,
	}
}

func optional[T any](name, label string, typ resource.FieldType, get func(*T) any) resource.Field[T] {
	return resource.Field[T]{
		FieldSpec: resource.FieldSpec{Name: name, Label: label, Type: typ},
		Get:       get,
	}
}

// reference declares a mandatory foreign id pointing at table.
func reference[T any](name, label, table string, get func(*T) any) resource.Field[T] {
	return resource.Field[T]{
		FieldSpec: resource.FieldSpec{Name: name, Label: label, Type: resource.FieldReference, Required: true, Ref: table},
		Get:       get,
	}
}
