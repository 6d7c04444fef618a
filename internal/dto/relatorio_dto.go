package dto

import "github.com/shopspring/decimal"

// PainelResponse backs the dashboard page: herd counters plus the derived
// next-estrus and upcoming-farrowing lists.
type PainelResponse struct {
	TotalAnimais     int64               `json:"total_animais"`
	TotalMatrizes    int64               `json:"total_matrizes"`
	GestacoesAbertas int64               `json:"gestacoes_abertas"`
	MaternidadesAtivas int64             `json:"maternidades_ativas"`
	LotesCrecheAtivos  int64             `json:"lotes_creche_ativos"`
	ProximosCios     []ProximoCioItem    `json:"proximos_cios"`
	PartosPrevistos  []PartoPrevistoItem `json:"partos_previstos"`
	DiaSuinoHoje     int                 `json:"dia_suino_hoje"`
}

// CalendarioSuinoResponse pairs a civil date with its cyclic swine-calendar
// index.
type CalendarioSuinoResponse struct {
	Data     string `json:"data"`
	DiaSuino int    `json:"dia_suino"`
}

type RelatorioDesmameItem struct {
	Matriz           string          `json:"matriz"`
	Data             string          `json:"data"`
	TotalDesmamados  int             `json:"total_desmamados"`
	PesoMedio        decimal.Decimal `json:"peso_medio"`
	GanhoMedioDiario decimal.Decimal `json:"ganho_medio_diario"`
	DestinoLeitoes   string          `json:"destino_leitoes"`
}

type RelatorioDesmameResponse struct {
	Inicio string                 `json:"inicio"`
	Fim    string                 `json:"fim"`
	Itens  []RelatorioDesmameItem `json:"itens"`
	TotalDesmamados int            `json:"total_desmamados"`
	PesoMedioGeral  decimal.Decimal `json:"peso_medio_geral"`
}

type EnviarRelatorioRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Inicio string `json:"inicio" validate:"required"`
	Fim    string `json:"fim" validate:"required"`
}
