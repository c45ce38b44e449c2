package migrations

import "embed"

// FS embeds the SQL migrations for the PostgreSQL campaign store. They are
// applied through the golang-migrate iofs source.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version main migrates to.
const Version = 1
