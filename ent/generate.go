// Package ent holds the schema definitions and generated client for the
// Reportline data model. Run `go generate ./ent` after editing schemas.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --feature sql/lock ./schema
