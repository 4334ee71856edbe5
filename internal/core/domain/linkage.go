package domain

// AssetLink points from a code symbol to a documentation asset.
type AssetLink struct {
	// AssetPath is the documentation asset path.
	AssetPath string

	// Relevance is the link relevance, 0.0 to 1.0.
	Relevance float64

	// DocType tags the asset kind (e.g. "guide", "reference").
	DocType string

	// Segments names the segments within the asset, if any.
	Segments []string
}

// CodeLink points from a documentation asset back to code.
type CodeLink struct {
	// CodePath is the source file path.
	CodePath string

	// Functions are the linked function names.
	Functions []string

	// Lines are the linked line numbers, if tracked.
	Lines []int
}

// Linkage is the bidirectional index between code symbols and
// documentation assets.
//
// Invariant (cross-map): every asset path reachable from CodeToAssets
// has an entry in AssetToCode, and every (codePath, function) pair
// reachable from AssetToCode corresponds to a "codePath:function" key
// in CodeToAssets.
type Linkage struct {
	// CodeToAssets maps "path:function" symbol keys to asset links.
	CodeToAssets map[string][]AssetLink

	// AssetToCode maps asset paths to code links.
	AssetToCode map[string][]CodeLink
}

// SymbolKey builds the CodeToAssets key for a (codePath, function) pair.
func SymbolKey(codePath, function string) string {
	return codePath + ":" + function
}
