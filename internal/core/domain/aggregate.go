package domain

// PageSummary is the fold of one document's segment metadata.
type PageSummary struct {
	// PageID identifies the summarised page.
	PageID string

	// Concepts is the set-union of segment concepts, first-seen order.
	Concepts []string

	// AudienceRoles is the set-union of audience roles, first-seen order.
	AudienceRoles []string

	// Tags is the union-by-key of free-form semantic tag lists.
	Tags map[string][]string

	// RetrievalTokens is the summed retrieval token budget.
	RetrievalTokens int

	// GenerationTokens is the summed generation budget. Nil when no
	// segment declares a generation config.
	GenerationTokens *int

	// AvgBoost is the token-weighted average boost:
	// sum(boost_i * retrievalTokens_i) / sum(retrievalTokens_i),
	// defaulting to 1.0 when the denominator is zero.
	AvgBoost float64

	// Checksum is the combined content checksum over the ordered
	// per-segment checksums. Empty when no segment has one.
	Checksum string
}

// ProjectSummary is the same fold applied across page summaries.
type ProjectSummary struct {
	// Project identifies the summarised project.
	Project string

	// Pages is the number of aggregated pages.
	Pages int

	// Concepts is the set-union across pages, first-seen order.
	Concepts []string

	// AudienceRoles is the set-union across pages, first-seen order.
	AudienceRoles []string

	// Tags is the union-by-key across pages.
	Tags map[string][]string

	// RetrievalTokens is the summed retrieval budget across pages.
	RetrievalTokens int

	// GenerationTokens is the summed generation budget. Nil when no
	// page carries one.
	GenerationTokens *int

	// AvgBoost weights each page's own average by its retrieval budget.
	AvgBoost float64

	// Checksum combines the page checksums in page order.
	Checksum string
}
