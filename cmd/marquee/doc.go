// Package main hosts the marquee CLI entrypoint and command graph.
//
// Running `marquee <file>` opens the interactive menu against a JSON or CSV
// catalog. The scripted subcommands (list, stats, sorted, search, gallery)
// run the same operations without prompts, and `config` scaffolds and checks
// the TOML configuration. This package only wires configuration, logging,
// storage, the OMDb client, and the gallery publisher together; behavior lives
// in the internal packages.
package main
