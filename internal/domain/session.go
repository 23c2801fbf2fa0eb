package domain

// Role é o modo de uso escolhido na tela inicial. Vazio significa nenhum.
type Role string

const (
	RoleNone       Role = ""
	RoleRetailer   Role = "retailer"
	RoleGarage     Role = "garage"
	RoleWholesaler Role = "wholesaler"
)

// Valid informa se o papel é um dos três modos selecionáveis.
func (r Role) Valid() bool {
	switch r {
	case RoleRetailer, RoleGarage, RoleWholesaler:
		return true
	}
	return false
}

// Theme é a preferência visual persistida do usuário.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme é usado quando não há preferência salva.
const DefaultTheme = ThemeDark

// Valid informa se o tema é conhecido.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle devolve o tema oposto.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// SessionRequest é o payload de escolha de papel.
type SessionRequest struct {
	Role Role `json:"role"`
}

// Session é a resposta da escolha de papel: o token assinado e o papel ativo.
type Session struct {
	Token string `json:"token"`
	Role  Role   `json:"role"`
}
