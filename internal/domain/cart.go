package domain

// MaxQuantity é o teto de unidades por linha de carrinho ou item de pedido.
const MaxQuantity = 1_000_000

// CartItem é uma linha do carrinho: a peça (cópia) e a quantidade (>= 1).
type CartItem struct {
	Part     Part `json:"part"`
	Quantity int  `json:"quantity"`
}

// LineTotal devolve preço * quantidade.
func (c CartItem) LineTotal() float64 {
	return c.Part.Price * float64(c.Quantity)
}

// CloneItems copia uma lista de itens sem compartilhar memória.
func CloneItems(items []CartItem) []CartItem {
	if items == nil {
		return nil
	}
	out := make([]CartItem, len(items))
	for i, it := range items {
		out[i] = CartItem{Part: it.Part.Clone(), Quantity: it.Quantity}
	}
	return out
}

// SumItems soma preço * quantidade de todos os itens.
func SumItems(items []CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.LineTotal()
	}
	return total
}

// ItemRequest é a forma como a API recebe itens: ID da peça e quantidade.
type ItemRequest struct {
	PartID   string `json:"part_id"`
	Quantity int    `json:"quantity"`
}

// CartView é o carrinho como exposto pela API: linhas e total.
type CartView struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}
