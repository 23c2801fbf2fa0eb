package domain

// UniversalFit marca uma peça compatível com qualquer veículo.
const UniversalFit = "Universal"

// StockLevel é a etiqueta de nível de estoque exibida no varejo.
type StockLevel string

const (
	StockHigh   StockLevel = "high"
	StockMedium StockLevel = "medium"
	StockLow    StockLevel = "low"
	StockOut    StockLevel = "out"
)

// Complexity indica a dificuldade de instalação da peça.
type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

// Part representa uma entrada do catálogo de peças.
// Apenas WarehouseStock muda, e somente via ajuste explícito de estoque.
type Part struct {
	ID             string     `json:"id"`
	SKU            string     `json:"sku"`
	Name           string     `json:"name"`
	Category       string     `json:"category"`
	Price          float64    `json:"price"`
	Image          string     `json:"image,omitempty"`
	Compatibility  []string   `json:"compatibility"` // IDs de veículos ou "Universal"
	StockLevel     StockLevel `json:"stock_level"`
	WarehouseStock int        `json:"warehouse_stock"`
	Complexity     Complexity `json:"complexity"`
	Description    string     `json:"description,omitempty"`
}

// Fits informa se a peça serve no veículo.
func (p Part) Fits(vehicleID string) bool {
	for _, c := range p.Compatibility {
		if c == vehicleID || c == UniversalFit {
			return true
		}
	}
	return false
}

// Clone devolve uma cópia sem compartilhar a fatia de compatibilidade.
func (p Part) Clone() Part {
	p.Compatibility = append([]string(nil), p.Compatibility...)
	return p
}

// Vehicle é um modelo de veículo referenciado pela compatibilidade das peças.
type Vehicle struct {
	ID        string   `json:"id"`
	Make      string   `json:"make"`
	Model     string   `json:"model"`
	YearRange string   `json:"year_range"`
	Variants  []string `json:"variants"`
}

// PartFilter define os parâmetros de busca no catálogo.
type PartFilter struct {
	Query     string // nome ou SKU, sem diferenciar maiúsculas
	Category  string // substring da categoria
	VehicleID string // compatível ou "Universal"
}

// StockUpdateRequest é o payload do ajuste de estoque do atacadista.
type StockUpdateRequest struct {
	WarehouseStock *int `json:"warehouse_stock"`
}
