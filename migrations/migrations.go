// Package migrations embute os arquivos SQL do goose no binário.
package migrations

import "embed"

// FS contém as migrações do ledger (tabelas sales_records, warehouse_orders, invoices).
//
//go:embed *.sql
var FS embed.FS
