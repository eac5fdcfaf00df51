// Package migrations содержит SQL миграции, встраиваемые в бинарник
// и применяемые при старте сервиса через golang-migrate
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
