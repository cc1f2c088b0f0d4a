package catalog

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/ajxudir/cascade/pkg/filtering"
)

// XMLParser parses <catalog><item .../></catalog> documents.
type XMLParser struct{}

type xmlCatalog struct {
	Items []xmlItem `xml:"item"`
}

type xmlItem struct {
	ID   string   `xml:"id,attr"`
	Dim1 string   `xml:"dim1,attr"`
	Dim2 string   `xml:"dim2,attr"`
	Dim3 []string `xml:"dim3"`
}

// Parse implements Parser.
func (p *XMLParser) Parse(content []byte) ([]filtering.Item, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, nil
	}

	var doc xmlCatalog
	if err := xml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("invalid XML: %w", err)
	}

	items := make([]filtering.Item, 0, len(doc.Items))
	for _, it := range doc.Items {
		items = append(items, filtering.Item{ID: it.ID, Dim1: it.Dim1, Dim2: it.Dim2, Dim3: it.Dim3})
	}
	return items, nil
}
