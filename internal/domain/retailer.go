package domain

// Coordinates são latitude/longitude de uma loja.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// InventoryLine é a quantidade de uma peça no estoque de um lojista.
type InventoryLine struct {
	PartID   string `json:"part_id"`
	Quantity int    `json:"quantity"`
}

// Retailer representa uma loja da rede com seu estoque local.
type Retailer struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	Distance    float64         `json:"distance"` // km
	Phone       string          `json:"phone"`
	Coordinates Coordinates     `json:"coordinates"`
	Inventory   []InventoryLine `json:"inventory"`
}

// Clone devolve uma cópia com o estoque desacoplado.
func (r Retailer) Clone() Retailer {
	r.Inventory = append([]InventoryLine(nil), r.Inventory...)
	return r
}

// StockedPart junta uma linha de estoque do lojista com a peça do catálogo.
type StockedPart struct {
	Part     Part `json:"part"`
	Quantity int  `json:"quantity"`
}
