package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/photweb"
)

// Encoding is a serialization for documents.
type Encoding string

const (
	JSON Encoding = "json"
	YAML Encoding = "yaml"
)

// EncodingFor picks the encoding from a file extension.
func EncodingFor(path string) (Encoding, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", errors.New(errors.ErrCodeUnsupportedExtension, "unsupported export extension %q", filepath.Ext(path))
}

// ParseEncoding validates an encoding name.
func ParseEncoding(s string) (Encoding, error) {
	switch e := Encoding(strings.ToLower(s)); e {
	case JSON, YAML:
		return e, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown encoding %q (json, yaml)", s)
}

// Write encodes d to w.
func Write(d *Document, enc Encoding, w io.Writer) error {
	switch enc {
	case JSON:
		je := json.NewEncoder(w)
		je.SetIndent("", "  ")
		if err := je.Encode(d); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "encode json")
		}
	case YAML:
		ye := yaml.NewEncoder(w)
		ye.SetIndent(2)
		if err := ye.Encode(d); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "encode yaml")
		}
		return ye.Close()
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown encoding %q", enc)
	}
	return nil
}

// Read decodes a document from r.
func Read(r io.Reader, enc Encoding) (*Document, error) {
	var d Document
	var err error
	switch enc {
	case JSON:
		err = json.NewDecoder(r).Decode(&d)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&d)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown encoding %q", enc)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode %s", enc)
	}
	return &d, nil
}

// Export writes web to path, choosing JSON or YAML by extension.
func Export(web *photweb.Web, meta Meta, path string) error {
	enc, err := EncodingFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	defer f.Close()
	return Write(NewDocument(web, meta), enc, f)
}

// Import reads a web exported by Export.
func Import(path string) (*photweb.Web, error) {
	enc, err := EncodingFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	d, err := Read(f, enc)
	if err != nil {
		return nil, err
	}
	return d.Web()
}
