package storage

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/jeanpaul/addressbook/internal/schema"
)

// Format names accepted by CodecFor.
const (
	FormatCBOR = "cbor"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Codec turns a snapshot into bytes and back.
type Codec interface {
	Name() string
	encode(*snapshot) ([]byte, error)
	decode([]byte, *snapshot) error
}

// CodecFor returns the codec for format, or infers it from the extension of path
// when format is empty. Unknown extensions fall back to CBOR.
func CodecFor(format, path string) (Codec, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			format = FormatJSON
		case ".yaml", ".yml":
			format = FormatYAML
		default:
			format = FormatCBOR
		}
	}
	switch strings.ToLower(format) {
	case FormatCBOR:
		return cborCodec{}, nil
	case FormatJSON:
		return jsonCodec{validator: schema.NewValidator()}, nil
	case FormatYAML:
		return yamlCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown storage format %q (must be cbor, json, or yaml)", format)
	}
}

type cborCodec struct{}

func (cborCodec) Name() string { return FormatCBOR }

func (cborCodec) encode(s *snapshot) ([]byte, error) { return cbor.Marshal(s) }

func (cborCodec) decode(data []byte, s *snapshot) error { return cbor.Unmarshal(data, s) }

type jsonCodec struct {
	validator *schema.Validator
}

func (jsonCodec) Name() string { return FormatJSON }

func (jsonCodec) encode(s *snapshot) ([]byte, error) { return json.MarshalIndent(s, "", "  ") }

func (c jsonCodec) decode(data []byte, s *snapshot) error {
	if err := c.validator.Validate(schema.Snapshot, data); err != nil {
		return err
	}
	return json.Unmarshal(data, s)
}

type yamlCodec struct{}

func (yamlCodec) Name() string { return FormatYAML }

func (yamlCodec) encode(s *snapshot) ([]byte, error) { return yaml.Marshal(s) }

func (yamlCodec) decode(data []byte, s *snapshot) error { return yaml.Unmarshal(data, s) }
