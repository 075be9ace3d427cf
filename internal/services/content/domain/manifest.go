package domain

// ManifestSchemaVersion is bumped when the manifest shape changes
const ManifestSchemaVersion = 1

// Manifest summarizes what the gateway can serve
type Manifest struct {
	SchemaVersion int              `json:"schemaVersion" example:"1"`
	Quotes        QuotesSummary    `json:"quotes"`
	Scripture     ScriptureSummary `json:"scripture"`
	Devotionals   LocalCount       `json:"devotionals"`
	Prayers       LocalCount       `json:"prayers"`
	UpdatedAt     string           `json:"updatedAt" example:"2025-03-01T12:00:00Z"`
}

// QuotesSummary counts local quotes and lists provider switches
type QuotesSummary struct {
	LocalCount        int             `json:"localCount" example:"20"`
	ExternalProviders map[string]bool `json:"externalProviders"`
}

// ScriptureSummary counts passages per theme
type ScriptureSummary struct {
	ThemeCount    int                   `json:"themeCount" example:"1"`
	TotalPassages int                   `json:"totalPassages" example:"1"`
	Themes        map[string]ThemeCount `json:"themes"`
}

// ThemeCount is one theme entry
type ThemeCount struct {
	PassageCount int `json:"passageCount" example:"1"`
}

// LocalCount is a bare count block
type LocalCount struct {
	LocalCount int `json:"localCount" example:"5"`
}
