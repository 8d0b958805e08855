// Package member holds the element type used by the members command and
// the decoding of member rosters.
package member

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrEmptyName = errors.New("member name is empty")

type Member struct {
	Name string `yaml:"name"`
}

func New(name string) Member {
	return Member{Name: name}
}

func (m Member) String() string {
	return m.Name
}

// ValidateName rejects members without a name. It is shaped to be used as
// a collection validator.
func ValidateName(item any) error {
	m, ok := item.(Member)
	if !ok {
		return nil
	}
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

// DecodeRoster reads a YAML sequence. Mapping entries become Members, every
// other entry is returned as the plain value it decodes to, so a roster can
// hold things that are not members at all.
func DecodeRoster(r io.Reader) ([]any, error) {
	var nodes []yaml.Node
	if err := yaml.NewDecoder(r).Decode(&nodes); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "could not decode roster")
	}

	entries := make([]any, 0, len(nodes))
	for i := range nodes {
		entry, err := decodeEntry(&nodes[i])
		if err != nil {
			return nil, errors.Wrapf(err, "roster entry %d", i)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func decodeEntry(node *yaml.Node) (any, error) {
	if node.Kind == yaml.MappingNode {
		var m Member
		if err := node.Decode(&m); err != nil {
			return nil, err
		}
		return m, nil
	}

	var v any
	if err := node.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
