// Package yamlcodec is the YAML deserialization edge for frontmatter
// blocks and typed graph document envelopes. The core never imports
// YAML directly; it consumes the decoded shapes through the driven
// ports.
package yamlcodec

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/semwerk/semspec/internal/core/domain"
	"github.com/semwerk/semspec/internal/core/ports/driven"
)

// Ensure Codec implements the interfaces.
var (
	_ driven.Decoder      = (*Codec)(nil)
	_ driven.GraphDecoder = (*Codec)(nil)
)

// Codec decodes YAML documents. Envelope headers are mechanically
// checked with struct tags; the core's own structural checks do not
// depend on this layer.
type Codec struct {
	validate *validator.Validate
}

// New creates a YAML codec.
func New() *Codec {
	return &Codec{validate: validator.New()}
}

// Decode parses a YAML block into a generic map.
func (c *Codec) Decode(data []byte) (map[string]any, error) {
	out := make(map[string]any)
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return out, nil
}

// envelope is the transport shape of a graph document.
type envelope struct {
	Version string `yaml:"version" validate:"required"`
	Kind    string `yaml:"kind" validate:"required,oneof=project version journey concepts linkage"`

	Journey      *journeyDTO              `yaml:"journey"`
	Concepts     map[string]conceptDTO    `yaml:"concepts"`
	Relationship []conceptRelationshipDTO `yaml:"relationships"`
	CodeToAssets map[string][]assetLinkDTO `yaml:"code_to_assets"`
	AssetToCode  map[string][]codeLinkDTO  `yaml:"asset_to_code"`
}

type journeyDTO struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Nodes []struct {
		ID          string `yaml:"id"`
		Type        string `yaml:"type"`
		Title       string `yaml:"title"`
		Connections []struct {
			TargetNodeID string `yaml:"target_node_id"`
			JumpTo       string `yaml:"jump_to"`
			Condition    string `yaml:"condition"`
			Label        string `yaml:"label"`
		} `yaml:"connections"`
	} `yaml:"nodes"`
}

type conceptDTO struct {
	Name       string   `yaml:"name"`
	Source     string   `yaml:"source"`
	Status     string   `yaml:"status"`
	Confidence *float64 `yaml:"confidence"`
}

type conceptRelationshipDTO struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Kind   string  `yaml:"kind"`
	Weight float64 `yaml:"weight"`
}

type assetLinkDTO struct {
	AssetPath string   `yaml:"asset_path"`
	Relevance float64  `yaml:"relevance"`
	DocType   string   `yaml:"doc_type"`
	Segments  []string `yaml:"segments"`
}

type codeLinkDTO struct {
	CodePath  string   `yaml:"code_path"`
	Functions []string `yaml:"functions"`
	Lines     []int    `yaml:"lines"`
}

// DecodeGraph parses a full graph document envelope and converts the
// payload matching its kind.
func (c *Codec) DecodeGraph(data []byte) (*domain.GraphDocument, error) {
	var env envelope
	if err := yaml.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := c.validate.Struct(env); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	doc := &domain.GraphDocument{
		Envelope: domain.Envelope{Version: env.Version, Kind: env.Kind},
	}

	switch env.Kind {
	case domain.KindJourney:
		if env.Journey == nil {
			return nil, fmt.Errorf("%w: journey document has no journey payload", domain.ErrInvalidInput)
		}
		doc.Journey = convertJourney(env.Journey)
	case domain.KindConcepts:
		doc.Concepts = convertConcepts(env)
	case domain.KindLinkage:
		doc.Linkage = convertLinkage(env)
	}

	return doc, nil
}

func convertJourney(dto *journeyDTO) *domain.Journey {
	journey := &domain.Journey{ID: dto.ID, Title: dto.Title}
	for _, n := range dto.Nodes {
		node := domain.JourneyNode{
			ID:    n.ID,
			Type:  domain.NodeType(n.Type),
			Title: n.Title,
		}
		for _, conn := range n.Connections {
			node.Connections = append(node.Connections, domain.NodeConnection{
				TargetNodeID: conn.TargetNodeID,
				JumpTo:       conn.JumpTo,
				Condition:    conn.Condition,
				Label:        conn.Label,
			})
		}
		journey.Nodes = append(journey.Nodes, node)
	}
	return journey
}

func convertConcepts(env envelope) *domain.ConceptGraph {
	graph := &domain.ConceptGraph{
		Concepts: make(map[string]domain.Concept, len(env.Concepts)),
	}
	for id, c := range env.Concepts {
		graph.Concepts[id] = domain.Concept{
			ID:         id,
			Name:       c.Name,
			Source:     domain.ConceptSource(c.Source),
			Status:     domain.ConceptStatus(c.Status),
			Confidence: c.Confidence,
		}
	}
	for _, rel := range env.Relationship {
		graph.Relationships = append(graph.Relationships, domain.ConceptRelationship{
			From:   rel.From,
			To:     rel.To,
			Kind:   domain.RelationshipKind(rel.Kind),
			Weight: rel.Weight,
		})
	}
	return graph
}

func convertLinkage(env envelope) *domain.Linkage {
	linkage := &domain.Linkage{
		CodeToAssets: make(map[string][]domain.AssetLink, len(env.CodeToAssets)),
		AssetToCode:  make(map[string][]domain.CodeLink, len(env.AssetToCode)),
	}
	for symbol, links := range env.CodeToAssets {
		linkage.CodeToAssets[symbol] = []domain.AssetLink{}
		for _, l := range links {
			linkage.CodeToAssets[symbol] = append(linkage.CodeToAssets[symbol], domain.AssetLink{
				AssetPath: l.AssetPath,
				Relevance: l.Relevance,
				DocType:   l.DocType,
				Segments:  l.Segments,
			})
		}
	}
	for assetPath, links := range env.AssetToCode {
		linkage.AssetToCode[assetPath] = []domain.CodeLink{}
		for _, l := range links {
			linkage.AssetToCode[assetPath] = append(linkage.AssetToCode[assetPath], domain.CodeLink{
				CodePath:  l.CodePath,
				Functions: l.Functions,
				Lines:     l.Lines,
			})
		}
	}
	return linkage
}
