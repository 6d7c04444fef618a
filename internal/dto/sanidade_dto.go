package dto

import "github.com/shopspring/decimal"

type CriarVacinaRequest struct {
	Nome         string          `json:"nome" validate:"required"`
	Fabricante   string          `json:"fabricante"`
	Doencas      string          `json:"doencas"`
	DoseMl       decimal.Decimal `json:"dose_ml"`
	ViaAplicacao string          `json:"via_aplicacao"`
}

type VacinaResponse struct {
	ID           string          `json:"id"`
	Nome         string          `json:"nome"`
	Fabricante   string          `json:"fabricante,omitempty"`
	Doencas      string          `json:"doencas,omitempty"`
	DoseMl       decimal.Decimal `json:"dose_ml"`
	ViaAplicacao string          `json:"via_aplicacao,omitempty"`
}

type CriarProtocoloRequest struct {
	VacinaID             string `json:"vacina_id" validate:"required"`
	CategoriaAnimal      string `json:"categoria_animal" validate:"required"`
	IdadeAplicacaoDias   int    `json:"idade_aplicacao_dias" validate:"min=0"`
	IntervaloReforcoDias int    `json:"intervalo_reforco_dias" validate:"required,min=1"`
	Observacao           string `json:"observacao"`
}

type RegistrarVacinacaoRequest struct {
	AnimalID      string          `json:"animal_id" validate:"required"`
	VacinaID      string          `json:"vacina_id" validate:"required"`
	ProtocoloID   string          `json:"protocolo_id"`
	DataAplicacao string          `json:"data_aplicacao" validate:"required"`
	DoseMl        decimal.Decimal `json:"dose_ml"`
	Lote          string          `json:"lote"`
	Responsavel   string          `json:"responsavel"`
}

// ProximaVacinacaoItem is one due protocol for an animal: its age reached the
// application age and no application exists within the booster interval.
type ProximaVacinacaoItem struct {
	AnimalID       string `json:"animal_id"`
	Identificacao  string `json:"identificacao"`
	ProtocoloID    string `json:"protocolo_id"`
	Vacina         string `json:"vacina"`
	IdadeDias      int    `json:"idade_dias"`
	IdadeAplicacao int    `json:"idade_aplicacao_dias"`
	DiasAtraso     int    `json:"dias_atraso"`
}

type RegistrarMortalidadeRequest struct {
	AnimalID           string          `json:"animal_id" validate:"required"`
	DataMorte          string          `json:"data_morte" validate:"required"`
	Causa              string          `json:"causa" validate:"required"`
	PesoMorteKg        decimal.Decimal `json:"peso_morte_kg"`
	Local              string          `json:"local"`
	Necropsia          bool            `json:"necropsia"`
	ResultadoNecropsia *string         `json:"resultado_necropsia"`
	MedidasPreventivas string          `json:"medidas_preventivas"`
	Responsavel        string          `json:"responsavel"`
	Observacoes        string          `json:"observacoes"`
}

type MortalidadeFilter struct {
	Inicio    string `form:"inicio"`
	Fim       string `form:"fim"`
	Categoria string `form:"categoria"`
}

// EstatisticasMortalidadeResponse aggregates deaths over a range.
type EstatisticasMortalidadeResponse struct {
	Total          int             `json:"total"`
	PorCausa       map[string]int  `json:"por_causa"`
	PorLocal       map[string]int  `json:"por_local"`
	IdadeMediaDias decimal.Decimal `json:"idade_media_dias"`
}
