// Package memory provides the in-memory link registry.
package memory

import (
	"context"
	"sync"

	"github.com/semwerk/semspec/internal/core/domain"
	"github.com/semwerk/semspec/internal/core/ports/driven"
)

// Ensure LinkRegistry implements the interface.
var _ driven.LinkRegistry = (*LinkRegistry)(nil)

// LinkRegistry is an in-memory implementation of driven.LinkRegistry.
// It is a simple keyed map guarded for single-process use; concurrent
// mutation from multiple writers is out of scope.
type LinkRegistry struct {
	mu           sync.RWMutex
	codeToAssets map[string][]domain.AssetLink
	assetToCode  map[string][]domain.CodeLink
}

// NewLinkRegistry creates an empty link registry.
func NewLinkRegistry() *LinkRegistry {
	return &LinkRegistry{
		codeToAssets: make(map[string][]domain.AssetLink),
		assetToCode:  make(map[string][]domain.CodeLink),
	}
}

// Add merges a linkage document into the registry.
func (r *LinkRegistry) Add(_ context.Context, linkage domain.Linkage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for symbol, links := range linkage.CodeToAssets {
		r.codeToAssets[symbol] = append(r.codeToAssets[symbol], links...)
	}
	for assetPath, links := range linkage.AssetToCode {
		r.assetToCode[assetPath] = append(r.assetToCode[assetPath], links...)
	}
	return nil
}

// AssetsForSymbol returns the asset links for a "path:function" key.
func (r *LinkRegistry) AssetsForSymbol(_ context.Context, symbol string) ([]domain.AssetLink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	links, ok := r.codeToAssets[symbol]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]domain.AssetLink(nil), links...), nil
}

// CodeForAsset returns the code links for an asset path.
func (r *LinkRegistry) CodeForAsset(_ context.Context, assetPath string) ([]domain.CodeLink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	links, ok := r.assetToCode[assetPath]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]domain.CodeLink(nil), links...), nil
}

// Snapshot returns a copy of the merged linkage for consistency checks.
func (r *LinkRegistry) Snapshot(_ context.Context) (domain.Linkage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := domain.Linkage{
		CodeToAssets: make(map[string][]domain.AssetLink, len(r.codeToAssets)),
		AssetToCode:  make(map[string][]domain.CodeLink, len(r.assetToCode)),
	}
	for symbol, links := range r.codeToAssets {
		out.CodeToAssets[symbol] = append([]domain.AssetLink(nil), links...)
	}
	for assetPath, links := range r.assetToCode {
		out.AssetToCode[assetPath] = append([]domain.CodeLink(nil), links...)
	}
	return out, nil
}
