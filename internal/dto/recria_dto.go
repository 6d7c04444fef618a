package dto

import "github.com/shopspring/decimal"

type CriarLoteRecriaRequest struct {
	Identificacao string `json:"identificacao" validate:"required"`
	BaiaID        string `json:"baia_id"`
	Fase          string `json:"fase"`
	DataInicio    string `json:"data_inicio" validate:"required"`
}

type LoteRecriaResponse struct {
	ID                 string          `json:"id"`
	Identificacao      string          `json:"identificacao"`
	Fase               string          `json:"fase,omitempty"`
	DataInicio         string          `json:"data_inicio"`
	DataFim            *string         `json:"data_fim,omitempty"`
	QtdInicial         int             `json:"qtd_inicial"`
	QtdFinal           *int            `json:"qtd_final,omitempty"`
	MortalidadePct     decimal.Decimal `json:"mortalidade_pct"`
	PesoMedioFinal     decimal.Decimal `json:"peso_medio_final"`
	GPDMedio           decimal.Decimal `json:"gpd_medio"`
	ConversaoAlimentar decimal.Decimal `json:"conversao_alimentar"`
	Status             string          `json:"status"`
}

type AdicionarAnimalRecriaRequest struct {
	LoteID        string          `json:"lote_id" validate:"required"`
	AnimalID      string          `json:"animal_id"`
	Identificacao string          `json:"identificacao" validate:"required"`
	DataEntrada   string          `json:"data_entrada" validate:"required"`
	PesoEntrada   decimal.Decimal `json:"peso_entrada" validate:"required,gt=0"`
}

type AnimalRecriaResponse struct {
	ID            string          `json:"id"`
	LoteID        string          `json:"lote_id"`
	Identificacao string          `json:"identificacao"`
	DataEntrada   string          `json:"data_entrada"`
	PesoEntrada   decimal.Decimal `json:"peso_entrada"`
	DataSaida     *string         `json:"data_saida,omitempty"`
	PesoSaida     *decimal.Decimal `json:"peso_saida,omitempty"`
	Destino       string          `json:"destino,omitempty"`
	Status        string          `json:"status"`
}

type PesagemRecriaRequest struct {
	AnimalRecriaID string          `json:"animal_recria_id" validate:"required"`
	Tipo           string          `json:"tipo" validate:"required"` // Individual | Grupo
	Data           string          `json:"data" validate:"required"`
	PesoKg         decimal.Decimal `json:"peso_kg" validate:"required,gt=0"`
}

type PesagemRecriaResponse struct {
	ID               string          `json:"id"`
	AnimalRecriaID   string          `json:"animal_recria_id"`
	Tipo             string          `json:"tipo"`
	Data             string          `json:"data"`
	PesoKg           decimal.Decimal `json:"peso_kg"`
	GanhoDesdeUltima decimal.Decimal `json:"ganho_desde_ultima"`
	GPDPeriodo       decimal.Decimal `json:"gpd_periodo"`
}

type TransferirAnimalRecriaRequest struct {
	AnimalRecriaID string          `json:"animal_recria_id" validate:"required"`
	LoteDestinoID  string          `json:"lote_destino_id" validate:"required"`
	BaiaDestinoID  string          `json:"baia_destino_id"`
	Data           string          `json:"data" validate:"required"`
	Fase           string          `json:"fase"`
	PesoKg         decimal.Decimal `json:"peso_kg" validate:"required,gt=0"`
}

type ArracoamentoRequest struct {
	LoteID     string          `json:"lote_id" validate:"required"`
	DataInicio string          `json:"data_inicio" validate:"required"`
	DataFim    string          `json:"data_fim" validate:"required"`
	Racao      string          `json:"racao" validate:"required"`
	QtdKg      decimal.Decimal `json:"qtd_kg" validate:"required,gt=0"`
	CustoKg    decimal.Decimal `json:"custo_kg" validate:"required"`
}

type ArracoamentoResponse struct {
	ID               string          `json:"id"`
	LoteID           string          `json:"lote_id"`
	Racao            string          `json:"racao"`
	QtdKg            decimal.Decimal `json:"qtd_kg"`
	CustoTotal       decimal.Decimal `json:"custo_total"`
	ConsumoAnimalDia decimal.Decimal `json:"consumo_animal_dia"`
}

type MedicacaoRecriaRequest struct {
	Tipo           string `json:"tipo" validate:"required"` // Individual | Coletiva
	AnimalRecriaID string `json:"animal_recria_id"`
	LoteID         string `json:"lote_id"`
	Data           string `json:"data" validate:"required"`
	Medicamento    string `json:"medicamento" validate:"required"`
	Dose           string `json:"dose" validate:"required"`
	Via            string `json:"via" validate:"required"`
	CarenciaDias   int    `json:"carencia_dias" validate:"min=0"`
	Responsavel    string `json:"responsavel"`
}

type MedicacaoRecriaResponse struct {
	ID          string `json:"id"`
	Tipo        string `json:"tipo"`
	Data        string `json:"data"`
	Medicamento string `json:"medicamento"`
	FimCarencia string `json:"fim_carencia"`
}

type FinalizarAnimalRecriaRequest struct {
	DataSaida string          `json:"data_saida" validate:"required"`
	PesoSaida decimal.Decimal `json:"peso_saida" validate:"required,gt=0"`
	Destino   string          `json:"destino" validate:"required"`
}

type FinalizarLoteRecriaRequest struct {
	DataFim            string          `json:"data_fim" validate:"required"`
	ConversaoAlimentar decimal.Decimal `json:"conversao_alimentar"`
}
