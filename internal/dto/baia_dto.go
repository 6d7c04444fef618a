package dto

type CriarBaiaRequest struct {
	Identificacao string `json:"identificacao" validate:"required"`
	Setor         string `json:"setor" validate:"required"`
	Capacidade    int    `json:"capacidade" validate:"required,min=1"`
	Dimensoes     string `json:"dimensoes"`
	TipoPiso      string `json:"tipo_piso"`
}

type BaiaResponse struct {
	ID            string `json:"id"`
	Identificacao string `json:"identificacao"`
	Setor         string `json:"setor"`
	Capacidade    int    `json:"capacidade"`
	Dimensoes     string `json:"dimensoes,omitempty"`
	TipoPiso      string `json:"tipo_piso,omitempty"`
}

// DisponibilidadeItem joins a pen with its current occupancy; only pens with
// free capacity appear in availability queries.
type DisponibilidadeItem struct {
	BaiaResponse
	Ocupacao       int `json:"ocupacao"`
	CapacidadeLivre int `json:"capacidade_livre"`
}

type AlocarRequest struct {
	BaiaID        string  `json:"baia_id" validate:"required"`
	AnimalID      *string `json:"animal_id"`
	LoteDescricao *string `json:"lote_descricao"`
	QtdAnimais    int     `json:"qtd_animais"`
	DataEntrada   string  `json:"data_entrada" validate:"required"`
}

type LiberarAlocacaoRequest struct {
	DataSaida   string `json:"data_saida" validate:"required"`
	MotivoSaida string `json:"motivo_saida" validate:"required"`
}

type AlocacaoResponse struct {
	ID            string  `json:"id"`
	BaiaID        string  `json:"baia_id"`
	AnimalID      *string `json:"animal_id,omitempty"`
	LoteDescricao *string `json:"lote_descricao,omitempty"`
	QtdAnimais    int     `json:"qtd_animais"`
	DataEntrada   string  `json:"data_entrada"`
	DataSaida     *string `json:"data_saida,omitempty"`
	MotivoSaida   string  `json:"motivo_saida,omitempty"`
	Status        string  `json:"status"`
}
