package document

import (
	"strings"
	"testing"

	"github.com/schemakit/schemakit/pkg/errors"
	"github.com/schemakit/schemakit/pkg/schema"
)

func TestDecodeTree(t *testing.T) {
	doc := TreeDoc{Value: "schema", Children: []TreeDoc{
		{Value: "users", Children: []TreeDoc{{Value: "id"}}},
		{Value: "orders"},
	}}

	tr, err := DecodeTree(doc)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Value != "schema" || len(tr.Children) != 2 {
		t.Fatalf("root = %s with %d children", tr.Value, len(tr.Children))
	}
	if tr.Children[0].Children[0].Value != "id" {
		t.Error("nested child not decoded")
	}
}

func TestDecodeTreeEmptyValue(t *testing.T) {
	_, err := DecodeTree(TreeDoc{Value: "a", Children: []TreeDoc{{}}})
	if !errors.Is(err, errors.ErrCodeInvalidDocument) {
		t.Errorf("err = %v, want INVALID_DOCUMENT", err)
	}
}

func TestTreeRoundTrip(t *testing.T) {
	doc := TreeDoc{Value: "a", Children: []TreeDoc{
		{Value: "b", Children: []TreeDoc{{Value: "c"}}},
		{Value: "b"},
	}}
	tr, err := DecodeTree(doc)
	if err != nil {
		t.Fatal(err)
	}
	back := EncodeTree(tr)
	if back.Value != doc.Value || len(back.Children) != len(doc.Children) {
		t.Errorf("round trip changed shape: %+v", back)
	}
}

func TestDecodeGraph(t *testing.T) {
	tests := []struct {
		name     string
		doc      GraphDoc
		wantErr  errors.Code
		wantType string
	}{
		{
			name: "Valid",
			doc: GraphDoc{Nodes: []NodeDoc{
				{Type: "users", Targets: []TargetDoc{{Type: "orders", Rel: "one_to_many"}}},
			}},
			wantType: "users",
		},
		{
			name: "DanglingTargetAllowed",
			doc: GraphDoc{Nodes: []NodeDoc{
				{Type: "users", Targets: []TargetDoc{{Type: "ghost", Rel: "one_to_one"}}},
			}},
			wantType: "users",
		},
		{
			name:    "MissingNodeType",
			doc:     GraphDoc{Nodes: []NodeDoc{{}}},
			wantErr: errors.ErrCodeInvalidDocument,
		},
		{
			name: "MissingTargetType",
			doc: GraphDoc{Nodes: []NodeDoc{
				{Type: "users", Targets: []TargetDoc{{Rel: "one_to_one"}}},
			}},
			wantErr: errors.ErrCodeInvalidDocument,
		},
		{
			name: "UnknownRelationship",
			doc: GraphDoc{Nodes: []NodeDoc{
				{Type: "users", Targets: []TargetDoc{{Type: "orders", Rel: "some_to_any"}}},
			}},
			wantErr: errors.ErrCodeInvalidRelationship,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := DecodeGraph(tt.doc)
			if tt.wantErr != "" {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if g.Nodes[0].Type != tt.wantType {
				t.Errorf("node type = %s, want %s", g.Nodes[0].Type, tt.wantType)
			}
		})
	}
}

func TestGraphRoundTrip(t *testing.T) {
	doc := GraphDoc{Nodes: []NodeDoc{
		{Type: "users", Targets: []TargetDoc{
			{Type: "orders", Rel: "one_to_many"},
			{Type: "ghost", Rel: "many_to_many"},
		}},
		{Type: "orders"},
	}}
	g, err := DecodeGraph(doc)
	if err != nil {
		t.Fatal(err)
	}
	back := EncodeGraph(g)
	if len(back.Nodes) != 2 || len(back.Nodes[0].Targets) != 2 {
		t.Fatalf("round trip changed shape: %+v", back)
	}
	if back.Nodes[0].Targets[0].Rel != "one_to_many" {
		t.Errorf("rel = %s, want one_to_many", back.Nodes[0].Targets[0].Rel)
	}
}

func TestReadGraphJSON(t *testing.T) {
	const src = `{"nodes": [
		{"type": "users", "targets": [{"type": "orders", "rel": "one_to_many"}]},
		{"type": "orders"}
	]}`

	g, err := ReadGraph(strings.NewReader(src), FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	links := schema.Links(g)
	if len(links) != 1 {
		t.Fatalf("len(links) = %d, want 1", len(links))
	}
	if *links[0].Rel != schema.OneToMany {
		t.Errorf("rel = %s, want one_to_many", *links[0].Rel)
	}
}

func TestReadTreeTOML(t *testing.T) {
	const src = `
value = "schema"

[[children]]
value = "users"

  [[children.children]]
  value = "id"

[[children]]
value = "orders"
`

	tr, err := ReadTree(strings.NewReader(src), FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Value != "schema" || len(tr.Children) != 2 {
		t.Fatalf("root = %s with %d children", tr.Value, len(tr.Children))
	}
	if tr.Children[0].Children[0].Value != "id" {
		t.Error("nested TOML child not decoded")
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "schema.json", want: FormatJSON},
		{path: "schema.TOML", want: FormatTOML},
		{path: "schema.yaml", wantErr: true},
		{path: "schema", wantErr: true},
	}

	for _, tt := range tests {
		got, err := DetectFormat(tt.path)
		if tt.wantErr {
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("DetectFormat(%s) err = %v, want INVALID_FORMAT", tt.path, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("DetectFormat(%s) = %s, %v, want %s", tt.path, got, err, tt.want)
		}
	}
}

func TestMarshalLinks(t *testing.T) {
	g := schema.Graph[string]{Nodes: []schema.Node[string]{
		{Type: "a", Targets: []schema.Target[string]{{Type: "b", Rel: schema.OneToMany}}},
	}}

	data, err := MarshalLinks(schema.Links(&g))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"from": "a"`, `"to": "b"`, `"rel": "one_to_many"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("output missing %s:\n%s", want, data)
		}
	}
}
