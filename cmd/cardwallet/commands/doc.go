// Package commands defines the cardwallet CLI.
//
// Commands
//
//   - serve   Run the JSON HTTP API over the in-memory card collection
//   - tui     Run the terminal card screen
//   - cards   Print the current card collection
//
// # Implementation
//
// Every subcommand builds its own application graph from the --config file
// and the environment. The card collection lives only as long as the process.
package commands
