package dto

// PageRequest limite de itens para listagens.
type PageRequest struct {
	Limit int `query:"limit" validate:"min=1,max=100"`
}

// DefaultPage aplica o limite padrão e o teto informado.
func (p *PageRequest) DefaultPage(max int) {
	if p.Limit <= 0 || p.Limit > max {
		p.Limit = max
	}
}

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
