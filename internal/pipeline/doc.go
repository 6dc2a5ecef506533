// Package pipeline contains the core business logic for building the
// pronunciation lexicon. It orchestrates vocabulary extraction, dictionary
// resolution, G2P transcription of the out-of-vocabulary remainder, and the
// optional SQLite export. This package serves as the main coordinator
// between all other components.
package pipeline
