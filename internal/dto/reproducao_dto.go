package dto

import "github.com/shopspring/decimal"

type RegistrarCioRequest struct {
	AnimalID       string   `json:"animal_id" validate:"required"`
	DataCio        string   `json:"data_cio" validate:"required"`
	IntensidadeCio string   `json:"intensidade_cio" validate:"required"`
	Irmas          []string `json:"irmas"`
	Observacao     string   `json:"observacao"`
}

type CicloResponse struct {
	ID             string   `json:"id"`
	AnimalID       string   `json:"animal_id"`
	NumeroCiclo    int      `json:"numero_ciclo"`
	DataCio        string   `json:"data_cio"`
	IntensidadeCio string   `json:"intensidade_cio"`
	Irmas          []string `json:"irmas,omitempty"`
	QtdIrmas       int      `json:"qtd_irmas"`
	Status         string   `json:"status"`
	// ProximoCio is derived (data_cio + 21d), never stored
	ProximoCio string `json:"proximo_cio"`
	Observacao string `json:"observacao,omitempty"`
}

type RegistrarInseminacaoRequest struct {
	AnimalID       string          `json:"animal_id" validate:"required"`
	Data           string          `json:"data" validate:"required"`
	LoteSemen      string          `json:"lote_semen" validate:"required"`
	LinhagemSemen  string          `json:"linhagem_semen"`
	IdadeSemenDias int             `json:"idade_semen_dias" validate:"min=0"`
	VolumeDoseMl   decimal.Decimal `json:"volume_dose_ml"`
	OrdemDose      string          `json:"ordem_dose" validate:"required"`
	Metodo         string          `json:"metodo" validate:"required"`
	Tecnico        string          `json:"tecnico"`
}

type InseminacaoResponse struct {
	ID          string `json:"id"`
	AnimalID    string `json:"animal_id"`
	Data        string `json:"data"`
	LoteSemen   string `json:"lote_semen"`
	OrdemDose   string `json:"ordem_dose"`
	Metodo      string `json:"metodo"`
	SemanaSuina int    `json:"semana_suina"`
	// CicloAtualizado reports whether a breeding cycle transitioned to Inseminado
	CicloAtualizado bool `json:"ciclo_atualizado"`
}

type AbrirGestacaoRequest struct {
	AnimalID      string `json:"animal_id" validate:"required"`
	DataCobertura string `json:"data_cobertura" validate:"required"`
	Status        string `json:"status"`
}

type GestacaoResponse struct {
	ID            string  `json:"id"`
	AnimalID      string  `json:"animal_id"`
	DataCobertura string  `json:"data_cobertura"`
	PrevisaoParto string  `json:"previsao_parto"`
	DataParto     *string `json:"data_parto,omitempty"`
	QtdLeitoes    *int    `json:"qtd_leitoes,omitempty"`
	Status        string  `json:"status"`
}

type RegistrarPartoRequest struct {
	DataParto  string `json:"data_parto" validate:"required"`
	QtdLeitoes int    `json:"qtd_leitoes" validate:"required,min=0"`
}

type RegistrarCioRufiaoRequest struct {
	RufiaoID       string   `json:"rufiao_id" validate:"required"`
	AnimalID       string   `json:"animal_id" validate:"required"`
	DataHora       string   `json:"data_hora" validate:"required"` // RFC3339
	Intensidade    string   `json:"intensidade" validate:"required"`
	Comportamentos []string `json:"comportamentos"`
	DuracaoMin     int      `json:"duracao_min" validate:"min=0"`
	SinaisExternos string   `json:"sinais_externos"`
	Confirmado     bool     `json:"confirmado"`
	Responsavel    string   `json:"responsavel"`
}

// AnaliseIntervaloResponse summarizes consecutive confirmed-detection
// intervals in days. Requires at least two confirmed records.
type AnaliseIntervaloResponse struct {
	AnimalID       string          `json:"animal_id"`
	QtdRegistros   int             `json:"qtd_registros"`
	UltimoIntervalo int            `json:"ultimo_intervalo"`
	MediaIntervalo decimal.Decimal `json:"media_intervalo"`
	MinIntervalo   int             `json:"min_intervalo"`
	MaxIntervalo   int             `json:"max_intervalo"`
}

type PrevisaoCioResponse struct {
	AnimalID        string `json:"animal_id"`
	UltimaDeteccao  string `json:"ultima_deteccao"`
	ProximoPrevisto string `json:"proximo_previsto"`
	Confianca       string `json:"confianca"` // Alta | Média
}

type RegistroCioItem struct {
	ID            string `json:"id"`
	Rufiao        string `json:"rufiao"`
	Animal        string `json:"animal"`
	DataHora      string `json:"data_hora"`
	Intensidade   string `json:"intensidade"`
	DuracaoMin    int    `json:"duracao_min"`
	Confirmado    bool   `json:"confirmado"`
	Responsavel   string `json:"responsavel"`
}

type ProximoCioItem struct {
	AnimalID      string `json:"animal_id"`
	Identificacao string `json:"identificacao"`
	NumeroCiclo   int    `json:"numero_ciclo"`
	DataCio       string `json:"data_cio"`
	ProximoCio    string `json:"proximo_cio"`
}

type PartoPrevistoItem struct {
	AnimalID      string `json:"animal_id"`
	Identificacao string `json:"identificacao"`
	DataCobertura string `json:"data_cobertura"`
	PrevisaoParto string `json:"previsao_parto"`
	DiasRestantes int    `json:"dias_restantes"`
}
