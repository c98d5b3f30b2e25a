// Package paths centralizes file system path resolution for mcph.
//
// Client config paths are computed as pure functions of an injected home
// directory rather than ambient environment lookup, which keeps the client
// adapters testable against a temp directory. mcph's own data directories
// (history, backups) follow the XDG base directory specification via
// github.com/adrg/xdg.
package paths
