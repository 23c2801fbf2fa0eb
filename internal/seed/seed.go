// Package seed contém os dados iniciais da demonstração: catálogo, veículos,
// lojas e o histórico de vendas, pedidos e faturas.
package seed

import (
	"time"

	"partshub/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Vehicles devolve a lista de veículos referenciada pela compatibilidade das peças.
func Vehicles() []domain.Vehicle {
	return []domain.Vehicle{
		{ID: "v1", Make: "Maruti Suzuki", Model: "Swift", YearRange: "2018-2024", Variants: []string{"Petrol VXi", "Diesel VDi"}},
		{ID: "v2", Make: "Maruti Suzuki", Model: "Baleno", YearRange: "2019-2024", Variants: []string{"Petrol Alpha", "Diesel Delta"}},
		{ID: "v3", Make: "Maruti Suzuki", Model: "Alto", YearRange: "2017-2023", Variants: []string{"LXi", "VXi"}},
		{ID: "v4", Make: "Hyundai", Model: "i20", YearRange: "2018-2024", Variants: []string{"Sportz", "Asta"}},
		{ID: "v5", Make: "Hyundai", Model: "Creta", YearRange: "2020-2024", Variants: []string{"EX", "SX"}},
		{ID: "v6", Make: "Honda", Model: "City", YearRange: "2017-2024", Variants: []string{"V", "VX"}},
		{ID: "v7", Make: "Honda", Model: "Amaze", YearRange: "2018-2024", Variants: []string{"VX", "S"}},
		{ID: "v8", Make: "Tata", Model: "Nexon", YearRange: "2020-2024", Variants: []string{"XM", "XZ+"}},
		{ID: "v9", Make: "Tata", Model: "Altroz", YearRange: "2020-2024", Variants: []string{"XE", "XT"}},
		{ID: "v10", Make: "Mahindra", Model: "XUV300", YearRange: "2019-2024", Variants: []string{"W6", "W8"}},
	}
}

// Parts devolve o catálogo inicial.
func Parts() []domain.Part {
	return []domain.Part{
		{ID: "p1", SKU: "BP-2891", Name: "Oil Filter", Category: "Engine", Price: 250, Compatibility: []string{"v1", "v2", "v4"}, StockLevel: domain.StockHigh, WarehouseStock: 150, Complexity: domain.ComplexitySimple, Description: "High efficiency oil filter for petrol engines."},
		{ID: "p2", SKU: "OF-4523", Name: "Air Filter", Category: "Engine", Price: 350, Compatibility: []string{"v1", "v2", "v3", "v5"}, StockLevel: domain.StockMedium, WarehouseStock: 80, Complexity: domain.ComplexitySimple, Description: "Clean air intake filter."},
		{ID: "p3", SKU: "SP-9901", Name: "Spark Plugs Set", Category: "Engine", Price: 800, Compatibility: []string{"v1", "v6", "v7"}, StockLevel: domain.StockMedium, WarehouseStock: 60, Complexity: domain.ComplexityMedium, Description: "Set of 4 iridium spark plugs."},
		{ID: "p4", SKU: "EO-5W30", Name: "Engine Oil 5W-30", Category: "Engine", Price: 1200, Compatibility: []string{domain.UniversalFit}, StockLevel: domain.StockHigh, WarehouseStock: 200, Complexity: domain.ComplexitySimple, Description: "Synthetic blend engine oil."},
		{ID: "p5", SKU: "BP-FR-01", Name: "Brake Pad Set Front", Category: "Brake System", Price: 1500, Compatibility: []string{"v1", "v2", "v4"}, StockLevel: domain.StockLow, WarehouseStock: 20, Complexity: domain.ComplexityMedium, Description: "Ceramic brake pads, low dust."},
		{ID: "p6", SKU: "BD-FR-02", Name: "Brake Disc Front", Category: "Brake System", Price: 2200, Compatibility: []string{"v5", "v8", "v10"}, StockLevel: domain.StockMedium, WarehouseStock: 45, Complexity: domain.ComplexityMedium, Description: "Ventilated front brake disc."},
		{ID: "p7", SKU: "BAT-35Ah", Name: "Car Battery 35Ah", Category: "Electrical", Price: 4500, Compatibility: []string{"v3", "v9"}, StockLevel: domain.StockMedium, WarehouseStock: 30, Complexity: domain.ComplexityMedium, Description: "Maintenance free battery."},
		{ID: "p8", SKU: "ALT-GEN2", Name: "Alternator 90A", Category: "Electrical", Price: 8500, Compatibility: []string{"v5", "v8"}, StockLevel: domain.StockLow, WarehouseStock: 10, Complexity: domain.ComplexityComplex, Description: "High output alternator."},
		{ID: "p9", SKU: "RAD-ALM", Name: "Radiator Assembly", Category: "Cooling System", Price: 5500, Compatibility: []string{"v1", "v2"}, StockLevel: domain.StockMedium, WarehouseStock: 25, Complexity: domain.ComplexityComplex, Description: "Aluminum core radiator."},
		{ID: "p10", SKU: "WP-GEN1", Name: "Water Pump", Category: "Cooling System", Price: 1800, Compatibility: []string{"v4", "v5"}, StockLevel: domain.StockMedium, WarehouseStock: 40, Complexity: domain.ComplexityComplex, Description: "Centrifugal water pump."},
		{ID: "p11", SKU: "SHK-FR", Name: "Shock Absorber Front", Category: "Suspension", Price: 2800, Compatibility: []string{"v8", "v10"}, StockLevel: domain.StockMedium, WarehouseStock: 50, Complexity: domain.ComplexityMedium, Description: "Gas filled shock absorber."},
	}
}

// Retailers devolve a rede de lojas com seus estoques locais.
func Retailers() []domain.Retailer {
	return []domain.Retailer{
		{ID: "r1", Name: "AutoParts Hub", Address: "Connaught Place, Delhi", Distance: 2.3, Phone: "+91 98765 43210",
			Coordinates: domain.Coordinates{Lat: 28.6304, Lng: 77.2177},
			Inventory:   []domain.InventoryLine{{PartID: "p1", Quantity: 5}, {PartID: "p2", Quantity: 2}, {PartID: "p5", Quantity: 1}}},
		{ID: "r2", Name: "SpeedFix Motors", Address: "Karol Bagh, Delhi", Distance: 3.8, Phone: "+91 98765 12345",
			Coordinates: domain.Coordinates{Lat: 28.6520, Lng: 77.1915},
			Inventory:   []domain.InventoryLine{{PartID: "p4", Quantity: 10}, {PartID: "p7", Quantity: 1}}},
		{ID: "r3", Name: "Prime Auto Solutions", Address: "Lajpat Nagar, Delhi", Distance: 4.5, Phone: "+91 99999 88888",
			Coordinates: domain.Coordinates{Lat: 28.5672, Lng: 77.2435},
			Inventory:   []domain.InventoryLine{{PartID: "p1", Quantity: 0}, {PartID: "p9", Quantity: 2}}},
		{ID: "r4", Name: "MechZone", Address: "Nehru Place, Delhi", Distance: 5.2, Phone: "+91 88888 77777",
			Coordinates: domain.Coordinates{Lat: 28.5494, Lng: 77.2526},
			Inventory:   []domain.InventoryLine{{PartID: "p2", Quantity: 5}, {PartID: "p6", Quantity: 3}}},
		{ID: "r5", Name: "CarCare Center", Address: "Dwarka, Delhi", Distance: 7.8, Phone: "+91 77777 66666",
			Coordinates: domain.Coordinates{Lat: 28.5921, Lng: 77.0460},
			Inventory:   []domain.InventoryLine{{PartID: "p11", Quantity: 4}}},
		{ID: "r6", Name: "Elite Auto Parts", Address: "Rohini, Delhi", Distance: 9.1, Phone: "+91 66666 55555",
			Coordinates: domain.Coordinates{Lat: 28.7041, Lng: 77.1025},
			Inventory:   []domain.InventoryLine{}},
	}
}

// Sales devolve o histórico inicial do ledger (mais recente primeiro).
func Sales() []domain.SalesRecord {
	return []domain.SalesRecord{
		{ID: "s1", Date: day(2023, time.November, 20), PartName: "Oil Filter", SKU: "BP-2891", Amount: 250, Status: domain.SalePaid, Customer: "DL-3C-1234"},
		{ID: "s2", Date: day(2023, time.November, 21), PartName: "Brake Pads", SKU: "BP-FR-01", Amount: 1500, Status: domain.SalePending, Customer: "UP-16-5678"},
	}
}

// WarehouseOrders devolve o pedido de reposição histórico.
func WarehouseOrders(parts []domain.Part) []domain.WarehouseOrder {
	return []domain.WarehouseOrder{
		{
			ID: "WO-1001", Date: day(2023, time.November, 15), Total: 45000, Status: domain.WarehouseShipped,
			Items: []domain.CartItem{{Part: parts[0].Clone(), Quantity: 50}, {Part: parts[3].Clone(), Quantity: 20}},
		},
	}
}

// Invoices devolve as faturas históricas.
func Invoices() []domain.Invoice {
	return []domain.Invoice{
		{ID: "INV-2023-001", Date: day(2023, time.November, 15), Amount: 45000, DueDate: day(2023, time.December, 15), Status: domain.InvoicePending, OrderID: "WO-1001"},
		{ID: "INV-2023-002", Date: day(2023, time.October, 1), Amount: 12000, DueDate: day(2023, time.November, 1), Status: domain.InvoicePaid, OrderID: "WO-0998"},
	}
}
