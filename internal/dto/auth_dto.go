package dto

type LoginRequest struct {
	Matricula string `json:"matricula" validate:"required"`
}

type LoginResponse struct {
	AccessToken string              `json:"access_token"`
	TokenType   string              `json:"token_type"`
	ExpiresIn   int                 `json:"expires_in"`
	Funcionario FuncionarioResponse `json:"funcionario"`
}

type RegistrarFuncionarioRequest struct {
	NomeCompleto string `json:"nome_completo" validate:"required"`
	Matricula    string `json:"matricula" validate:"required"`
	Papel        string `json:"papel" validate:"required"`
	Setor        string `json:"setor"`
	Observacao   string `json:"observacao"`
}

type AlterarStatusFuncionarioRequest struct {
	Status string `json:"status" validate:"required"`
}

type FuncionarioResponse struct {
	ID           string  `json:"id"`
	NomeCompleto string  `json:"nome_completo"`
	Matricula    string  `json:"matricula"`
	Papel        string  `json:"papel"`
	Setor        string  `json:"setor"`
	Status       string  `json:"status"`
	UltimoAcesso *string `json:"ultimo_acesso,omitempty"`
}

type PermissaoPapelRequest struct {
	Papel      string   `json:"papel" validate:"required"`
	Permissoes []string `json:"permissoes" validate:"required,min=1"`
}

type PermissaoPapelResponse struct {
	Papel      string   `json:"papel"`
	Permissoes []string `json:"permissoes"`
}
