// Package app provides the application service layer.
//
// Orchestrates the analysis pipeline: normalization, local scorers, optional
// external collaborators, ensemble combination, and response assembly.
// Sits between HTTP handlers and the analysis core. Depends on domain
// interfaces, not concrete implementations.
package app
