// Package a11yscanner holds assets shared by every binary of the module.
package a11yscanner

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
