// Package commands implements the interactive movie catalog: the nine menu
// commands and the loop that dispatches them.
//
// App composes a storage backend, a metadata lookup, a gallery publisher, and
// a Prompter. Every command reloads the catalog from the backend, so there is
// no in-memory state between commands. Commands return errors; Run prints
// them and keeps the menu going. Prompting lives here and never in storage.
package commands
