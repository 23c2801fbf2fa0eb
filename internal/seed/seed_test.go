package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParts_CompatibilityReferencesKnownVehicles(t *testing.T) {
	known := map[string]bool{"Universal": true}
	for _, v := range Vehicles() {
		known[v.ID] = true
	}
	for _, p := range Parts() {
		for _, c := range p.Compatibility {
			assert.Truef(t, known[c], "peça %s referencia veículo desconhecido %s", p.ID, c)
		}
	}
}

func TestRetailers_InventoryReferencesCatalog(t *testing.T) {
	catalog := map[string]bool{}
	for _, p := range Parts() {
		catalog[p.ID] = true
	}
	for _, r := range Retailers() {
		for _, line := range r.Inventory {
			assert.True(t, catalog[line.PartID])
			assert.GreaterOrEqual(t, line.Quantity, 0)
		}
	}
}

func TestInvoices_MatchWarehouseOrder(t *testing.T) {
	orders := WarehouseOrders(Parts())
	assert.Equal(t, orders[0].ID, Invoices()[0].OrderID)
	assert.Equal(t, orders[0].Total, Invoices()[0].Amount)
}
