package hypermedia

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpc/ocean/internal/resource"
)

type ship struct {
	ID   uint64 `json:"id"`
	Name string `json:"nome"`
}

var shipKind = resource.Kind[ship]{
	Name: "navios",
	ID:   func(s *ship) uint64 { return s.ID },
}

func TestRecordLinks(t *testing.T) {
	links := RecordLinks("/empresas", 42)
	assert.Equal(t, Links{"self": {Href: "/empresas/42"}}, links)
}

func TestEntityModelJSON(t *testing.T) {
	a := NewAssembler("https://api.ocean.test", shipKind)
	m := a.ToModel(ship{ID: 3, Name: "Aurora"})

	assert.Equal(t, "https://api.ocean.test/navios/3", m.Self())

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"nome":"Aurora","_links":{"self":{"href":"https://api.ocean.test/navios/3"}}}`, string(out))

	var back EntityModel[ship]
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, ship{ID: 3, Name: "Aurora"}, back.Content)
	assert.Equal(t, m.Self(), back.Self())
}

func TestEntityModelRejectsNonObjects(t *testing.T) {
	_, err := json.Marshal(EntityModel[int]{Content: 5})
	assert.Error(t, err)
}

func TestEntityModelEmptyObject(t *testing.T) {
	out, err := json.Marshal(EntityModel[struct{}]{Links: RecordLinks("/x", 1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"_links":{"self":{"href":"/x/1"}}}`, string(out))
}

func TestPagedModel(t *testing.T) {
	a := NewAssembler("", shipKind)
	page := a.ToPagedModel([]ship{{ID: 11, Name: "a"}, {ID: 12, Name: "b"}}, 2, 5, 12)

	assert.Equal(t, PageMetadata{Number: 2, Size: 5, TotalElements: 12, TotalPages: 3}, page.Page)
	assert.Equal(t, "/navios?page=2&size=5", page.Links["self"].Href)
	require.Len(t, page.Items(), 2)
	assert.Equal(t, "/navios/12", page.Items()[1].Self())

	out, err := json.Marshal(page)
	require.NoError(t, err)
	var decoded PagedModel[ship]
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, page.Page, decoded.Page)
	assert.Len(t, decoded.Embedded["navios"], 2)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 5))
	assert.Equal(t, 1, TotalPages(5, 5))
	assert.Equal(t, 3, TotalPages(12, 5))
	assert.Equal(t, 0, TotalPages(12, 0))
}
