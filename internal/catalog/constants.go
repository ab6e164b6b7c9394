package catalog

// Tab keys. TabAll disables the game filter.
const (
	TabAll      = "all"
	TabCSGO     = "csgo"
	TabValorant = "valorant"
)

// ConfigVersion is the expected version string of the catalog file.
const ConfigVersion = "1.0"

// Error context messages for wrapped errors during catalog loading
const (
	ErrContextFailedToReadCatalog  = "failed to read catalog"
	ErrContextFailedToParseCatalog = "failed to parse catalog"
)

const (
	LogMsgCatalogLoaded  = "Catalog loaded"
	LogMsgCatalogVersion = "Unexpected catalog version"
)
