package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stamp struct{ set bool }

func (s *stamp) IsZero() bool   { return s == nil || !s.set }
func (s *stamp) String() string {
	if s == nil || !s.set {
		return ""
	}
	return "2024-01-31"
}

type widget struct {
	ID       uint64
	Name     string
	Price    *float64
	OwnerID  uint64
	Since    *stamp
	Password string
}

var widgetKind = Kind[widget]{
	Name:     "widgets",
	Table:    "widgets",
	Singular: "Widget",
	Plural:   "Widgets",
	Fields: []Field[widget]{
		{FieldSpec: FieldSpec{Name: "name", Label: "Nome", Type: FieldString, Required: true}, Get: func(w *widget) any { return w.Name }},
		{FieldSpec: FieldSpec{Name: "price", Label: "Preço", Type: FieldNumber, Required: true}, Get: func(w *widget) any { return w.Price }},
		{FieldSpec: FieldSpec{Name: "owner_id", Label: "Dono", Type: FieldReference, Required: true, Ref: "owners"}, Get: func(w *widget) any { return w.OwnerID }},
		{FieldSpec: FieldSpec{Name: "since", Label: "Desde", Type: FieldDate, Required: true}, Get: func(w *widget) any { return w.Since }},
		{FieldSpec: FieldSpec{Name: "password", Label: "Senha", Type: FieldSecret}, Get: func(w *widget) any { return w.Password }},
	},
	ID: func(w *widget) uint64 { return w.ID },
}

func TestValidateReportsEveryMissingField(t *testing.T) {
	err := widgetKind.Validate(&widget{Name: "   "})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"name", "price", "owner_id", "since"}, verr.Fields)
	assert.Equal(t, "name, price, owner_id, since are required", err.Error())
}

func TestValidateAcceptsCompleteRecord(t *testing.T) {
	price := 10.5
	w := &widget{Name: "bolt", Price: &price, OwnerID: 3, Since: &stamp{set: true}}

	assert.NoError(t, widgetKind.Validate(w))
}

func TestValidateNilRecord(t *testing.T) {
	err := widgetKind.Validate(nil)
	assert.EqualError(t, err, "body is required")
}

func TestReferences(t *testing.T) {
	refs := widgetKind.References()
	require.Len(t, refs, 1)
	assert.Equal(t, "owner_id", refs[0].Column)
	assert.Equal(t, "owners", refs[0].Table)
	assert.Equal(t, uint64(7), refs[0].Get(&widget{OwnerID: 7}))
}

func TestRowSkipsSecretsAndFormatsValues(t *testing.T) {
	price := 3.0
	w := &widget{ID: 4, Name: "nut", Price: &price, OwnerID: 9, Since: &stamp{set: true}, Password: "hunter2"}

	assert.Equal(t, []string{"ID", "Nome", "Preço", "Dono", "Desde"}, widgetKind.Headers())
	assert.Equal(t, []string{"4", "nut", "3.00", "9", "2024-01-31"}, widgetKind.Row(w))
	assert.Equal(t, []string{"5", "", "", "", ""}, widgetKind.Row(&widget{ID: 5}))
}

func TestSpec(t *testing.T) {
	spec := widgetKind.Spec()
	assert.Equal(t, "/widgets", spec.BasePath())
	assert.Equal(t, widgetKind.BasePath(), spec.BasePath())
	assert.Len(t, spec.Fields, 5)
}
