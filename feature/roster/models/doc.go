// Package models defines the player record shape shared by the roster
// reader, the matching engine, and the report writers.
package models
