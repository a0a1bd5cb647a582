package migrations

import "embed"

// Rule store schema migrations bundled at compile time, one directory per
// supported driver. Single binary deployment without external file
// dependencies.
//
//go:embed sqlite/*.sql
var SqliteMigrations embed.FS

//go:embed postgres/*.sql
var PostgresMigrations embed.FS
