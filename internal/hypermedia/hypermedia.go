// Package hypermedia wraps records and pages with HAL-style navigation links.
package hypermedia

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/tpc/ocean/internal/resource"
)

const RelSelf = "self"

type Link struct {
	Href string `json:"href"`
}

type Links map[string]Link

// RecordLinks builds the link set of a single record.
func RecordLinks(basePath string, id uint64) Links {
	return Links{RelSelf: {Href: basePath + "/" + strconv.FormatUint(id, 10)}}
}

// PageLinks builds the link set of one page of a collection.
func PageLinks(basePath string, page, size int) Links {
	return Links{RelSelf: {Href: fmt.Sprintf("%s?page=%d&size=%d", basePath, page, size)}}
}

// EntityModel is a record plus its links. It serializes as the record's own
// fields with an extra "_links" member.
type EntityModel[T any] struct {
	Content T
	Links   Links
}

func (m EntityModel[T]) Self() string {
	return m.Links[RelSelf].Href
}

func (m EntityModel[T]) MarshalJSON() ([]byte, error) {
	body, err := json.Marshal(m.Content)
	if err != nil {
		return nil, err
	}
	body = bytes.TrimSpace(body)
	if len(body) < 2 || body[0] != '{' || body[len(body)-1] != '}' {
		return nil, fmt.Errorf("hypermedia: %T does not encode as a JSON object", m.Content)
	}
	links, err := json.Marshal(m.Links)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(body) + len(links) + 12)
	buf.Write(body[:len(body)-1])
	if len(body) > 2 {
		buf.WriteByte(',')
	}
	buf.WriteString(`"_links":`)
	buf.Write(links)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *EntityModel[T]) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &m.Content); err != nil {
		return err
	}
	var envelope struct {
		Links Links `json:"_links"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	m.Links = envelope.Links
	return nil
}

type PageMetadata struct {
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

type PagedModel[T any] struct {
	Embedded map[string][]EntityModel[T] `json:"_embedded"`
	Links    Links                       `json:"_links"`
	Page     PageMetadata                `json:"page"`
}

// Items returns the embedded records regardless of the collection name.
func (p PagedModel[T]) Items() []EntityModel[T] {
	for _, items := range p.Embedded {
		return items
	}
	return nil
}

func TotalPages(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

// Assembler builds representations for one kind.
type Assembler[T any] struct {
	basePath   string
	collection string
	id         func(*T) uint64
}

// NewAssembler prefixes every link with publicURL, which may be empty.
func NewAssembler[T any](publicURL string, kind resource.Kind[T]) *Assembler[T] {
	return &Assembler[T]{
		basePath:   publicURL + kind.BasePath(),
		collection: kind.Name,
		id:         kind.ID,
	}
}

func (a *Assembler[T]) BasePath() string {
	return a.basePath
}

// ToModel must only be called once rec carries its identity.
func (a *Assembler[T]) ToModel(rec T) EntityModel[T] {
	return EntityModel[T]{Content: rec, Links: RecordLinks(a.basePath, a.id(&rec))}
}

func (a *Assembler[T]) ToPagedModel(records []T, page, size int, total int64) PagedModel[T] {
	items := make([]EntityModel[T], 0, len(records))
	for _, rec := range records {
		items = append(items, a.ToModel(rec))
	}
	return PagedModel[T]{
		Embedded: map[string][]EntityModel[T]{a.collection: items},
		Links:    PageLinks(a.basePath, page, size),
		Page: PageMetadata{
			Number:        page,
			Size:          size,
			TotalElements: total,
			TotalPages:    TotalPages(total, size),
		},
	}
}
