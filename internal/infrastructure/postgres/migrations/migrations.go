// Package migrations contiene el esquema SQL embebido que se aplica al arranque.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
