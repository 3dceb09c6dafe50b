// Package database wires the persistence layer. The ent client under ./ent
// is generated from the schemas in ./entschema and is not committed.
package database

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target ./ent ./entschema
