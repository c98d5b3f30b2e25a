// Package history records every applied MCP server configuration as an
// append-only snapshot log and can restore the previous configuration of
// any (client, server) pair.
//
// Each snapshot carries the applied config plus an embedded copy of the
// config it replaced. Rollback reads that embedded copy, writes it through
// the client adapter, and appends a new snapshot describing the restore.
// Nothing ever rewrites or deletes existing records except the explicit
// Prune maintenance operation.
package history
