// Package store é o contêiner único do estado da aplicação: papel ativo,
// carrinho, ledger de vendas, estoques dos lojistas, catálogo, pedidos,
// faturas e tema. Todos os mutadores são seções críticas curtas e nunca
// falham; buscas que não encontram o alvo são no-ops.
package store

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"partshub/internal/domain"
	"partshub/internal/seed"
)

// IDGenerator gera um ID com prefixo e sufixo numérico em [0, max).
type IDGenerator func(prefix string, max int) string

// RandomID é o gerador padrão. Não há garantia contra colisões.
func RandomID(prefix string, max int) string {
	return fmt.Sprintf("%s-%d", prefix, rand.IntN(max))
}

// State é a fotografia completa do estado.
type State struct {
	Role            domain.Role
	Theme           domain.Theme
	Cart            []domain.CartItem
	Sales           []domain.SalesRecord
	Orders          []domain.Order
	DarkstoreOrders []domain.DarkstoreOrder
	WarehouseOrders []domain.WarehouseOrder
	Invoices        []domain.Invoice
	Retailers       []domain.Retailer
	Parts           []domain.Part
	Vehicles        []domain.Vehicle
}

// SeedState monta o estado inicial da demonstração.
func SeedState() State {
	parts := seed.Parts()
	return State{
		Theme:           domain.DefaultTheme,
		Sales:           seed.Sales(),
		WarehouseOrders: seed.WarehouseOrders(parts),
		Invoices:        seed.Invoices(),
		Retailers:       seed.Retailers(),
		Parts:           parts,
		Vehicles:        seed.Vehicles(),
	}
}

// Store guarda o estado atrás de um RWMutex; o servidor HTTP é concorrente,
// mas cada operação é aplicada por inteiro antes da próxima.
type Store struct {
	mu    sync.RWMutex
	state State

	newID IDGenerator
	now   func() time.Time
}

// Option customiza o Store (gerador de IDs, relógio).
type Option func(*Store)

// WithIDGenerator troca o gerador de IDs.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) { s.newID = gen }
}

// WithClock troca a fonte de tempo.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New cria um Store a partir de uma cópia do estado informado.
func New(initial State, opts ...Option) *Store {
	s := &Store{
		state: cloneState(initial),
		newID: RandomID,
		now:   time.Now,
	}
	if !s.state.Theme.Valid() {
		s.state.Theme = domain.DefaultTheme
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSeeded cria um Store com os dados da demonstração.
func NewSeeded(opts ...Option) *Store {
	return New(SeedState(), opts...)
}

// today devolve a data corrente (UTC, sem hora), como os registros guardam.
func (s *Store) today() time.Time {
	n := s.now().UTC()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

// Snapshot devolve uma cópia profunda de todo o estado.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneState(s.state)
}

// --- Papel e tema ---

// Role devolve o papel ativo.
func (s *Store) Role() domain.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Role
}

// SetRole troca o papel ativo.
func (s *Store) SetRole(role domain.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Role = role
}

// Theme devolve o tema atual.
func (s *Store) Theme() domain.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Theme
}

// SetTheme grava o tema; valores desconhecidos são ignorados.
func (s *Store) SetTheme(theme domain.Theme) {
	if !theme.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Theme = theme
}

// ToggleTheme alterna entre claro e escuro e devolve o novo tema.
func (s *Store) ToggleTheme() domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Theme = s.state.Theme.Toggle()
	return s.state.Theme
}

// --- cópias ---

func cloneState(st State) State {
	return State{
		Role:            st.Role,
		Theme:           st.Theme,
		Cart:            domain.CloneItems(st.Cart),
		Sales:           append([]domain.SalesRecord(nil), st.Sales...),
		Orders:          cloneOrders(st.Orders),
		DarkstoreOrders: cloneDarkstoreOrders(st.DarkstoreOrders),
		WarehouseOrders: cloneWarehouseOrders(st.WarehouseOrders),
		Invoices:        append([]domain.Invoice(nil), st.Invoices...),
		Retailers:       cloneRetailers(st.Retailers),
		Parts:           cloneParts(st.Parts),
		Vehicles:        cloneVehicles(st.Vehicles),
	}
}

func cloneParts(in []domain.Part) []domain.Part {
	if in == nil {
		return nil
	}
	out := make([]domain.Part, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}

func cloneVehicles(in []domain.Vehicle) []domain.Vehicle {
	if in == nil {
		return nil
	}
	out := make([]domain.Vehicle, len(in))
	for i, v := range in {
		v.Variants = append([]string(nil), v.Variants...)
		out[i] = v
	}
	return out
}

func cloneRetailers(in []domain.Retailer) []domain.Retailer {
	if in == nil {
		return nil
	}
	out := make([]domain.Retailer, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}
	return out
}

func cloneOrders(in []domain.Order) []domain.Order {
	if in == nil {
		return nil
	}
	out := make([]domain.Order, len(in))
	for i, o := range in {
		o.Items = domain.CloneItems(o.Items)
		out[i] = o
	}
	return out
}

func cloneDarkstoreOrders(in []domain.DarkstoreOrder) []domain.DarkstoreOrder {
	if in == nil {
		return nil
	}
	out := make([]domain.DarkstoreOrder, len(in))
	for i, o := range in {
		o.Items = domain.CloneItems(o.Items)
		if o.Rider != nil {
			rider := *o.Rider
			o.Rider = &rider
		}
		out[i] = o
	}
	return out
}

func cloneWarehouseOrders(in []domain.WarehouseOrder) []domain.WarehouseOrder {
	if in == nil {
		return nil
	}
	out := make([]domain.WarehouseOrder, len(in))
	for i, o := range in {
		o.Items = domain.CloneItems(o.Items)
		out[i] = o
	}
	return out
}
