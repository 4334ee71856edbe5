package yamlcodec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/semwerk/semspec/internal/core/domain"
	"github.com/semwerk/semspec/internal/core/ports/driven"
)

// Ensure Codec implements the interface.
var _ driven.NavigationDecoder = (*Codec)(nil)

// navigationDTO is the transport shape of a navigation configuration.
type navigationDTO struct {
	Title    string      `yaml:"title"`
	Versions []string    `yaml:"versions"`
	Items    []navItemDTO `yaml:"items"`
}

type navItemDTO struct {
	ID       string      `yaml:"id"`
	Title    string      `yaml:"title"`
	Ref      string      `yaml:"ref"`
	Hidden   bool        `yaml:"hidden"`
	Versions []string    `yaml:"versions"`
	Children []navItemDTO `yaml:"children"`
}

// DecodeNavigation parses a navigation tree document.
func (c *Codec) DecodeNavigation(data []byte) (*domain.NavigationTree, error) {
	var dto navigationDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	return &domain.NavigationTree{
		Title:    dto.Title,
		Versions: dto.Versions,
		Items:    convertNavItems(dto.Items),
	}, nil
}

func convertNavItems(items []navItemDTO) []domain.NavigationItem {
	if items == nil {
		return nil
	}
	out := make([]domain.NavigationItem, len(items))
	for i, item := range items {
		out[i] = domain.NavigationItem{
			ID:       item.ID,
			Title:    item.Title,
			Ref:      item.Ref,
			Hidden:   item.Hidden,
			Versions: item.Versions,
			Children: convertNavItems(item.Children),
		}
	}
	return out
}
