package dto

import "github.com/shopspring/decimal"

type CriarMarraRequest struct {
	AnimalID       string          `json:"animal_id"`
	Identificacao  string          `json:"identificacao" validate:"required"`
	Linhagem       string          `json:"linhagem"`
	DataNascimento string          `json:"data_nascimento" validate:"required"`
	PesoKg         decimal.Decimal `json:"peso_kg"`
}

type MarraResponse struct {
	ID             string          `json:"id"`
	Identificacao  string          `json:"identificacao"`
	Linhagem       string          `json:"linhagem,omitempty"`
	DataNascimento string          `json:"data_nascimento"`
	PesoKg         decimal.Decimal `json:"peso_kg"`
	Status         string          `json:"status"`
}

type AvaliarMarraRequest struct {
	MarraID         string `json:"marra_id" validate:"required"`
	Data            string `json:"data" validate:"required"`
	NumeroTetos     int    `json:"numero_tetos" validate:"min=0"`
	NotaAprumos     int    `json:"nota_aprumos" validate:"min=1,max=5"`
	NotaConformacao int    `json:"nota_conformacao" validate:"min=1,max=5"`
	NotaFinal       int    `json:"nota_final" validate:"required,min=1,max=5"`
	Recomendacao    string `json:"recomendacao" validate:"required"`
	Avaliador       string `json:"avaliador"`
	Observacoes     string `json:"observacoes"`
}

type DescartarMarraRequest struct {
	MarraID string `json:"marra_id" validate:"required"`
	Data    string `json:"data" validate:"required"`
	Motivo  string `json:"motivo" validate:"required"`
	Destino string `json:"destino"`
}

// TaxaSelecaoResponse: selected / evaluated × 100.
type TaxaSelecaoResponse struct {
	Avaliadas    int             `json:"avaliadas"`
	Selecionadas int             `json:"selecionadas"`
	Descartadas  int             `json:"descartadas"`
	TaxaPct      decimal.Decimal `json:"taxa_pct"`
}
