// Package configs holds the seed catalog, case definitions and their JSON schemas.
package configs

import "embed"

// FS contains every seed file and schema shipped with the binary.
//
//go:embed *.json schemas/*.json
var FS embed.FS

// Embedded file names
const (
	SkinsFile       = "skins.json"
	CasesFile       = "cases.json"
	SkinsSchemaFile = "schemas/skins.schema.json"
	CasesSchemaFile = "schemas/cases.schema.json"
)
