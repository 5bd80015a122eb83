// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle (resolve input, dispatch
// to the registry, print and check answers), decoupled from any specific
// entrypoint like a CLI.
package app
