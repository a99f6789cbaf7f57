// Package ficha manages the person-profile records (fichas) stored in the
// fichas file: creation, search, in-place updates and deletion.
package ficha

import "time"

// Ficha is a person profile. FechaModificacion stays nil until the first
// update. Field names match the on-disk JSON, which predates this service.
type Ficha struct {
	ID                string     `json:"id"`
	Nombre            string     `json:"nombre"`
	Edad              int        `json:"edad"`
	Ciudad            string     `json:"ciudad"`
	FechaCreacion     time.Time  `json:"fecha_creacion"`
	FechaModificacion *time.Time `json:"fecha_modificacion"`
}

// Match pairs a search hit with its position in the backing collection, the
// position being what Update and Delete address records by.
type Match struct {
	Index int   `json:"index"`
	Ficha Ficha `json:"ficha"`
}

// Changes carries a partial update; nil fields are left untouched.
type Changes struct {
	Nombre *string
	Edad   *int
	Ciudad *string
}
