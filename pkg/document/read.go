package document

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/schemakit/schemakit/pkg/errors"
	"github.com/schemakit/schemakit/pkg/schema"
	"github.com/schemakit/schemakit/pkg/tree"
)

// Format identifies a document encoding.
type Format string

// Supported document encodings.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// DetectFormat maps a file path to its document format by extension.
// Returns ErrCodeInvalidFormat for anything other than .json or .toml.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"unsupported document extension %q (want .json or .toml)", filepath.Ext(path))
	}
}

// ReadTree decodes a tree document from r in the given format.
func ReadTree(r io.Reader, format Format) (*tree.Tree[string], error) {
	var doc TreeDoc
	if err := decode(r, format, &doc); err != nil {
		return nil, err
	}
	return DecodeTree(doc)
}

// ReadTreeFile reads a tree document, with the format chosen by extension.
func ReadTreeFile(path string) (*tree.Tree[string], error) {
	format, f, err := openDocument(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTree(f, format)
}

// ReadGraph decodes a graph document from r in the given format.
func ReadGraph(r io.Reader, format Format) (*schema.Graph[string], error) {
	var doc GraphDoc
	if err := decode(r, format, &doc); err != nil {
		return nil, err
	}
	return DecodeGraph(doc)
}

// ReadGraphFile reads a graph document, with the format chosen by extension.
func ReadGraphFile(path string) (*schema.Graph[string], error) {
	format, f, err := openDocument(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadGraph(f, format)
}

// Document is the result of reading a file whose shape is not known up
// front: exactly one of Tree or Graph is non-nil.
type Document struct {
	Tree  *tree.Tree[string]
	Graph *schema.Graph[string]
}

// ReadFile reads a document of either shape. A document with a top-level
// "nodes" key is a graph, one with a top-level "value" key is a tree;
// anything else is ErrCodeInvalidDocument.
func ReadFile(path string) (Document, error) {
	format, f, err := openDocument(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}

	var probe struct {
		Value string    `json:"value" toml:"value"`
		Nodes []NodeDoc `json:"nodes" toml:"nodes"`
	}
	if err := decode(strings.NewReader(string(data)), format, &probe); err != nil {
		return Document{}, err
	}

	switch {
	case probe.Nodes != nil:
		g, err := ReadGraph(strings.NewReader(string(data)), format)
		if err != nil {
			return Document{}, err
		}
		return Document{Graph: g}, nil
	case probe.Value != "":
		t, err := ReadTree(strings.NewReader(string(data)), format)
		if err != nil {
			return Document{}, err
		}
		return Document{Tree: t}, nil
	default:
		return Document{}, errors.New(errors.ErrCodeInvalidDocument,
			"%s: neither a tree ('value') nor a graph ('nodes') document", path)
	}
}

func openDocument(path string) (Format, *os.File, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return "", nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return "", nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	return format, f, nil
}

func decode(r io.Reader, format Format, v any) error {
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode JSON")
		}
		return nil
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode TOML")
		}
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
	}
}
