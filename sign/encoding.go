package sign

import (
	"bytes"
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler.
func (s Sign) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Sign) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalJSON encodes s as the JSON string "+" or "-".
func (s Sign) MarshalJSON() ([]byte, error) {
	text, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return []byte(strconv.Quote(string(text))), nil
}

// UnmarshalJSON accepts only the JSON strings "+" and "-".
func (s *Sign) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return invalidValue("null")
	}
	var token string
	if err := jsoniter.Unmarshal(data, &token); err != nil {
		return invalidValue(string(data))
	}
	v, err := Parse(token)
	if err != nil {
		return invalidValue(strconv.Quote(token))
	}
	*s = v
	return nil
}

// MarshalYAML encodes s as a double-quoted string; a bare "-" would read back
// as a sequence entry.
func (s Sign) MarshalYAML() (interface{}, error) {
	text, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Value: string(text),
		Style: yaml.DoubleQuotedStyle,
	}, nil
}

// UnmarshalYAML accepts only the string scalars "+" and "-".
//
// yaml.v3 handles null nodes (null, ~, an empty value) itself without calling
// this method, so they leave the target unchanged. A Sign field that may be
// absent or null must be checked with Valid after decoding, or declared as
// *Sign.
func (s *Sign) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return invalidValue(value.ShortTag())
	}
	if value.ShortTag() != "!!str" {
		return invalidValue(value.Value)
	}
	v, err := Parse(value.Value)
	if err != nil {
		return invalidValue(strconv.Quote(value.Value))
	}
	*s = v
	return nil
}
