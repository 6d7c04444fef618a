package dto

import "github.com/shopspring/decimal"

type FormarLoteCrecheRequest struct {
	DesmameID         string          `json:"desmame_id"`
	Identificacao     string          `json:"identificacao" validate:"required"`
	PeriodoID         string          `json:"periodo_id"`
	BaiaID            string          `json:"baia_id" validate:"required"`
	QtdInicial        int             `json:"qtd_inicial" validate:"required,min=1"`
	PesoMedioEntrada  decimal.Decimal `json:"peso_medio_entrada"`
	IdadeMediaEntrada int             `json:"idade_media_entrada"`
	Origem            string          `json:"origem" validate:"required"`
	DataEntrada       string          `json:"data_entrada" validate:"required"`
}

type LoteCrecheResponse struct {
	ID                string          `json:"id"`
	Identificacao     string          `json:"identificacao"`
	PeriodoID         string          `json:"periodo_id"`
	QtdInicial        int             `json:"qtd_inicial"`
	QtdAtual          int             `json:"qtd_atual"`
	PesoMedioEntrada  decimal.Decimal `json:"peso_medio_entrada"`
	PesoMedioAtual    decimal.Decimal `json:"peso_medio_atual"`
	MortalidadePct    decimal.Decimal `json:"mortalidade_pct"`
	Origem            string          `json:"origem"`
	DataEntrada       string          `json:"data_entrada"`
	DataSaida         *string         `json:"data_saida,omitempty"`
	Destino           string          `json:"destino,omitempty"`
	Status            string          `json:"status"`
}

type PesagemCrecheRequest struct {
	Data       string          `json:"data" validate:"required"`
	Quantidade int             `json:"quantidade" validate:"required,min=1"` // sample size
	PesoTotal  decimal.Decimal `json:"peso_total" validate:"required"`
	Observacao string          `json:"observacao"`
}

type MortalidadeCrecheRequest struct {
	Data       string `json:"data" validate:"required"`
	Quantidade int    `json:"quantidade" validate:"required,min=1"`
	Causa      string `json:"causa" validate:"required"`
	Observacao string `json:"observacao"`
}

type MedicacaoCrecheRequest struct {
	Data        string `json:"data" validate:"required"`
	Medicamento string `json:"medicamento" validate:"required"`
	Dose        string `json:"dose" validate:"required"`
	Via         string `json:"via" validate:"required"`
	Quantidade  int    `json:"quantidade"`
	Observacao  string `json:"observacao"`
}

type SaidaCrecheRequest struct {
	Tipo       string          `json:"tipo" validate:"required"` // Transferência | Saída
	Data       string          `json:"data" validate:"required"`
	Quantidade int             `json:"quantidade" validate:"required,min=1"`
	PesoTotal  decimal.Decimal `json:"peso_total"`
	Destino    string          `json:"destino" validate:"required"`
	Observacao string          `json:"observacao"`
}

type MovimentoCrecheResponse struct {
	ID         string          `json:"id"`
	Tipo       string          `json:"tipo"`
	Data       string          `json:"data"`
	Quantidade int             `json:"quantidade,omitempty"`
	PesoTotal  decimal.Decimal `json:"peso_total"`
	PesoMedio  decimal.Decimal `json:"peso_medio"`
	GPD        decimal.Decimal `json:"gpd"`
	Causa      string          `json:"causa,omitempty"`
	Destino    string          `json:"destino,omitempty"`
	Medicamento string         `json:"medicamento,omitempty"`
	Observacao string          `json:"observacao,omitempty"`
}

// LoteCrecheDetalheResponse is the batch plus its full movement ledger.
type LoteCrecheDetalheResponse struct {
	Lote       LoteCrecheResponse        `json:"lote"`
	Movimentos []MovimentoCrecheResponse `json:"movimentos"`
}
