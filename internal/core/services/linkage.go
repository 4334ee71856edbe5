package services

import (
	"sort"

	"github.com/semwerk/semspec/internal/core/domain"
)

// ValidateLinkage checks the bidirectional index between code symbols
// and documentation assets. Both directions are checked independently
// and every violation is reported; the check never short-circuits.
func (g *GraphValidator) ValidateLinkage(linkage *domain.Linkage) []domain.Finding {
	if linkage == nil {
		return nil
	}

	var findings []domain.Finding

	// Forward: every asset reachable from CodeToAssets must have an
	// entry in AssetToCode.
	for _, symbol := range sortedKeys(linkage.CodeToAssets) {
		for _, link := range linkage.CodeToAssets[symbol] {
			if _, ok := linkage.AssetToCode[link.AssetPath]; !ok {
				findings = append(findings, domain.Finding{
					EntityID: link.AssetPath,
					Field:    "asset_to_code",
					Message:  "asset referenced from symbol " + symbol + " has no reverse entry",
				})
			}
		}
	}

	// Reverse: every (codePath, function) pair reachable from
	// AssetToCode must exist as a symbol key in CodeToAssets.
	for _, assetPath := range sortedKeys(linkage.AssetToCode) {
		for _, link := range linkage.AssetToCode[assetPath] {
			for _, function := range link.Functions {
				symbol := domain.SymbolKey(link.CodePath, function)
				if _, ok := linkage.CodeToAssets[symbol]; !ok {
					findings = append(findings, domain.Finding{
						EntityID: symbol,
						Field:    "code_to_assets",
						Message:  "code link from asset " + assetPath + " has no symbol entry",
					})
				}
			}
		}
	}

	return findings
}

// sortedKeys returns map keys in sorted order for deterministic output.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
