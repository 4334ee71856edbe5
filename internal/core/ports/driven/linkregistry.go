package driven

import (
	"context"

	"github.com/semwerk/semspec/internal/core/domain"
)

// LinkRegistry is the in-memory index of code/doc linkage. It is safe
// only for single-threaded or externally-synchronised use; concurrent
// mutation is out of scope.
type LinkRegistry interface {
	// Add merges a linkage document into the registry.
	Add(ctx context.Context, linkage domain.Linkage) error

	// AssetsForSymbol returns the asset links for a "path:function" key.
	AssetsForSymbol(ctx context.Context, symbol string) ([]domain.AssetLink, error)

	// CodeForAsset returns the code links for an asset path.
	CodeForAsset(ctx context.Context, assetPath string) ([]domain.CodeLink, error)

	// Snapshot returns the merged linkage for consistency checking.
	Snapshot(ctx context.Context) (domain.Linkage, error)
}
