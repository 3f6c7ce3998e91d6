package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/schemakit/schemakit/pkg/schema"
)

// LinkDoc is the serialized form of one flattened graph edge.
type LinkDoc struct {
	From string `json:"from"`
	To   string `json:"to"`
	Rel  string `json:"rel"`
}

// EncodeLinks converts flattened links into their document form, preserving
// node-major, target-minor order.
func EncodeLinks(links []schema.Link[string]) []LinkDoc {
	out := make([]LinkDoc, len(links))
	for i, l := range links {
		out[i] = LinkDoc{From: *l.From, To: *l.To, Rel: l.Rel.String()}
	}
	return out
}

// MarshalLinks converts flattened links to indented JSON bytes.
func MarshalLinks(links []schema.Link[string]) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeLinksTo(links, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteLinks writes flattened links as JSON to an io.Writer.
func WriteLinks(links []schema.Link[string], w io.Writer) error {
	return writeLinksTo(links, w)
}

// WriteGraphFile writes a graph document as JSON to a file.
// The file is created with 0644 permissions.
func WriteGraphFile(g *schema.Graph[string], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraph(g, f)
}

// WriteGraph writes a graph document as JSON to an io.Writer.
func WriteGraph(g *schema.Graph[string], w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(EncodeGraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func writeLinksTo(links []schema.Link[string], w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(EncodeLinks(links)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
