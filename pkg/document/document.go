package document

import (
	"github.com/schemakit/schemakit/pkg/errors"
	"github.com/schemakit/schemakit/pkg/schema"
	"github.com/schemakit/schemakit/pkg/tree"
)

// TreeDoc is the serialized form of a string-labelled tree.
type TreeDoc struct {
	Value    string    `json:"value" toml:"value"`
	Children []TreeDoc `json:"children,omitempty" toml:"children"`
}

// GraphDoc is the serialized form of a string-labelled relationship graph.
// Relationships are carried symbolically ("one_to_one", "one_to_many",
// "many_to_one", "many_to_many").
type GraphDoc struct {
	Nodes []NodeDoc `json:"nodes" toml:"nodes"`
}

// NodeDoc is one graph node in a document.
type NodeDoc struct {
	Type    string      `json:"type" toml:"type"`
	Targets []TargetDoc `json:"targets,omitempty" toml:"targets"`
}

// TargetDoc is one outgoing edge in a document.
type TargetDoc struct {
	Type string `json:"type" toml:"type"`
	Rel  string `json:"rel" toml:"rel"`
}

// DecodeTree converts a tree document into a tree value.
// Returns ErrCodeInvalidDocument if any node has an empty value.
func DecodeTree(doc TreeDoc) (*tree.Tree[string], error) {
	if doc.Value == "" {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "tree node with empty value")
	}
	t := &tree.Tree[string]{Value: doc.Value}
	for _, c := range doc.Children {
		child, err := DecodeTree(c)
		if err != nil {
			return nil, err
		}
		t.Children = append(t.Children, child)
	}
	return t, nil
}

// EncodeTree converts a tree value back into its document form.
func EncodeTree(t *tree.Tree[string]) TreeDoc {
	doc := TreeDoc{Value: t.Value}
	for _, c := range t.Children {
		doc.Children = append(doc.Children, EncodeTree(c))
	}
	return doc
}

// DecodeGraph converts a graph document into a schema graph.
// Node and target types must be non-empty (ErrCodeInvalidDocument) and every
// rel must name one of the four cardinalities (ErrCodeInvalidRelationship).
// Targets pointing at types no node declares are preserved as-is: documents
// carry no referential integrity, matching the schema model.
func DecodeGraph(doc GraphDoc) (*schema.Graph[string], error) {
	g := &schema.Graph[string]{}
	for i, n := range doc.Nodes {
		if n.Type == "" {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "node %d: missing type", i)
		}
		node := schema.Node[string]{Type: n.Type}
		for j, tgt := range n.Targets {
			if tgt.Type == "" {
				return nil, errors.New(errors.ErrCodeInvalidDocument,
					"node %s: target %d: missing type", n.Type, j)
			}
			rel, err := schema.ParseRelationship(tgt.Rel)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidRelationship, err,
					"node %s: target %s", n.Type, tgt.Type)
			}
			node.Targets = append(node.Targets, schema.Target[string]{Type: tgt.Type, Rel: rel})
		}
		g.Nodes = append(g.Nodes, node)
	}
	return g, nil
}

// EncodeGraph converts a schema graph back into its document form.
func EncodeGraph(g *schema.Graph[string]) GraphDoc {
	doc := GraphDoc{}
	for _, n := range g.Nodes {
		node := NodeDoc{Type: n.Type}
		for _, tgt := range n.Targets {
			node.Targets = append(node.Targets, TargetDoc{Type: tgt.Type, Rel: tgt.Rel.String()})
		}
		doc.Nodes = append(doc.Nodes, node)
	}
	return doc
}
