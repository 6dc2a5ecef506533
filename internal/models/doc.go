// Package models provides functionality for listing and categorizing
// available OpenAI models. It helps users discover which chat models can
// serve as the hosted G2P provider with their API key.
package models
