package dto

import "github.com/shopspring/decimal"

type AbrirMaternidadeRequest struct {
	AnimalID    string `json:"animal_id" validate:"required"`
	BaiaID      string `json:"baia_id" validate:"required"`
	DataEntrada string `json:"data_entrada" validate:"required"`
	DataParto   string `json:"data_parto" validate:"required"`
}

type MaternidadeResponse struct {
	ID          string  `json:"id"`
	AnimalID    string  `json:"animal_id"`
	BaiaID      string  `json:"baia_id"`
	DataEntrada string  `json:"data_entrada"`
	DataParto   string  `json:"data_parto"`
	DataSaida   *string `json:"data_saida,omitempty"`
	Status      string  `json:"status"`
}

type RegistrarLeitegadaRequest struct {
	MaternidadeID string          `json:"maternidade_id" validate:"required"`
	DataParto     string          `json:"data_parto" validate:"required"`
	TotalNascidos int             `json:"total_nascidos" validate:"required,min=0"`
	NascidosVivos int             `json:"nascidos_vivos" validate:"min=0"`
	Natimortos    int             `json:"natimortos" validate:"min=0"`
	Mumificados   int             `json:"mumificados" validate:"min=0"`
	PesoTotal     decimal.Decimal `json:"peso_total"`
}

type LeitegadaResponse struct {
	ID              string          `json:"id"`
	MaternidadeID   string          `json:"maternidade_id"`
	AnimalID        string          `json:"animal_id"`
	DataParto       string          `json:"data_parto"`
	TotalNascidos   int             `json:"total_nascidos"`
	NascidosVivos   int             `json:"nascidos_vivos"`
	Natimortos      int             `json:"natimortos"`
	Mumificados     int             `json:"mumificados"`
	PesoTotal       decimal.Decimal `json:"peso_total"`
	PesoMedio       decimal.Decimal `json:"peso_medio"`
	TamanhoAjustado int             `json:"tamanho_ajustado"`
}

type LeitaoRequest struct {
	Identificacao  string           `json:"identificacao" validate:"required"`
	Sexo           string           `json:"sexo" validate:"required"`
	PesoNascimento *decimal.Decimal `json:"peso_nascimento"`
}

type RegistrarLeitoesRequest struct {
	LeitegadaID string          `json:"leitegada_id" validate:"required"`
	Leitoes     []LeitaoRequest `json:"leitoes" validate:"required,min=1,dive"`
}

type AtualizarLeitaoRequest struct {
	PesoAtual    *decimal.Decimal `json:"peso_atual"`
	Status       string           `json:"status"`
	CausaMorte   *string          `json:"causa_morte"`
	MaeAdotivaID *string          `json:"mae_adotiva_id"`
}

type LeitaoResponse struct {
	ID             string           `json:"id"`
	LeitegadaID    string           `json:"leitegada_id"`
	Identificacao  string           `json:"identificacao"`
	Sexo           string           `json:"sexo"`
	DataNascimento string           `json:"data_nascimento"`
	PesoNascimento *decimal.Decimal `json:"peso_nascimento,omitempty"`
	PesoAtual      *decimal.Decimal `json:"peso_atual,omitempty"`
	Status         string           `json:"status"`
	DataStatus     string           `json:"data_status"`
}

// MetricasDesmameResponse carries the weaning metrics preview; the weight
// fields collapse to zero when any live piglet lacks a current weight.
type MetricasDesmameResponse struct {
	LeitegadaID      string          `json:"leitegada_id"`
	TotalDesmamados  int             `json:"total_desmamados"`
	PesoTotal        decimal.Decimal `json:"peso_total_desmame"`
	PesoMedio        decimal.Decimal `json:"peso_medio_desmame"`
	GanhoMedioDiario decimal.Decimal `json:"ganho_medio_diario"`
	IdadeMediaDias   int             `json:"idade_media_dias"`
}

type RegistrarDesmameRequest struct {
	LeitegadaID    string `json:"leitegada_id" validate:"required"`
	Data           string `json:"data" validate:"required"`
	DestinoLeitoes string `json:"destino_leitoes" validate:"required"`
	DestinoMatriz  string `json:"destino_matriz" validate:"required"`
	BaiaDestinoID  string `json:"baia_destino_id"`
}

type DesmameResponse struct {
	ID               string          `json:"id"`
	LeitegadaID      string          `json:"leitegada_id"`
	AnimalID         string          `json:"animal_id"`
	Data             string          `json:"data"`
	IdadeMediaDias   int             `json:"idade_media_dias"`
	TotalDesmamados  int             `json:"total_desmamados"`
	PesoTotal        decimal.Decimal `json:"peso_total"`
	PesoMedio        decimal.Decimal `json:"peso_medio"`
	GanhoMedioDiario decimal.Decimal `json:"ganho_medio_diario"`
	DestinoLeitoes   string          `json:"destino_leitoes"`
	DestinoMatriz    string          `json:"destino_matriz"`
}
