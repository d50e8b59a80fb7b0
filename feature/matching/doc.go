// Package matching implements the record-matching and confidence-scoring
// engine that reconciles event player records against a trusted reference
// roster.
//
// # Pipeline
//
// For every event record the Matcher picks the best reference candidate
// through a multi-stage strategy with strict tier priority:
//
//  1. exact      — normalized last and first name match (hash lookup)
//  2. name-swap  — first and last name transposed (hash lookup)
//  3. fuzzy      — combined Jaro-Winkler name similarity above the
//     configured threshold (scan over the reference set)
//  4. none       — no candidate found
//
// The outcome is then scored: exact matches start at confidence 1.0,
// name swaps at 0.9, fuzzy matches at their raw similarity, no-matches
// at 0.0. Every secondary issue (transposed birth fields, sex,
// nationality or birth-year mismatch) deducts a fixed penalty, floored
// at zero.
//
// # Determinism
//
// Matching is a pure function of the two input record sets. Candidate
// indices preserve reference-set order, ties always break towards the
// record encountered first, and issues are emitted in a fixed detection
// order, so repeated runs over the same inputs yield identical results.
//
// # Serve mode
//
//   - Service: holds the reference roster and answers match requests.
//   - Handler: exposes POST /match and GET /health over Fiber.
//   - Feature: registers the handler with the application loader.
package matching
