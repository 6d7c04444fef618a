package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	LoteAtivo      = "Ativo"
	LoteFinalizado = "Finalizado"

	MovEntrada       = "Entrada"
	MovPesagem       = "Pesagem"
	MovMortalidade   = "Mortalidade"
	MovMedicacao     = "Medicação"
	MovTransferencia = "Transferência"
	MovSaida         = "Saída"
)

var OrigensLote = map[string]bool{
	"Desmame": true, "Transferência": true, "Compra Externa": true,
}

// PeriodoCreche groups nursery batches that share a room cycle; it is
// finalized when its last batch exits.
type PeriodoCreche struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Identificacao string     `gorm:"not null"`
	DataInicio    time.Time  `gorm:"not null"`
	DataFim       *time.Time
	Status        string `gorm:"type:varchar(20);not null;default:'Ativo'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (PeriodoCreche) TableName() string { return "periodos_creche" }

// LoteCreche is a nursery batch. QtdAtual, PesoMedioAtual and MortalidadePct
// evolve as movements are appended; the movement ledger stays immutable.
type LoteCreche struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PeriodoCrecheID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	DesmameID         *uuid.UUID `gorm:"type:uuid;index"`
	Identificacao     string     `gorm:"uniqueIndex;not null"`
	QtdInicial        int        `gorm:"not null"`
	QtdAtual          int        `gorm:"not null"`
	PesoMedioEntrada  decimal.Decimal `gorm:"type:decimal(6,3)"`
	IdadeMediaEntrada int
	PesoMedioAtual    decimal.Decimal `gorm:"type:decimal(6,3)"`
	MortalidadePct    decimal.Decimal `gorm:"type:decimal(5,2)"`
	Origem            string          `gorm:"type:varchar(20);not null"`
	DataEntrada       time.Time       `gorm:"not null"`
	DataSaida         *time.Time
	Destino           string
	Status            string `gorm:"type:varchar(20);not null;default:'Ativo'"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Periodo *PeriodoCreche `gorm:"foreignKey:PeriodoCrecheID"`
}

func (LoteCreche) TableName() string { return "lotes_creche" }

// MovimentoCreche is an immutable event in a batch's ledger. Known kinds are
// the Mov* constants; free-form kinds are accepted as opaque bookkeeping.
type MovimentoCreche struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LoteCrecheID uuid.UUID `gorm:"type:uuid;not null;index"`
	Tipo         string    `gorm:"not null"`
	Data         time.Time `gorm:"not null"`
	Quantidade   int
	PesoTotal    decimal.Decimal `gorm:"type:decimal(8,3)"`
	PesoMedio    decimal.Decimal `gorm:"type:decimal(6,3)"`
	// GPD in g/day, filled only for Pesagem movements
	GPD         decimal.Decimal `gorm:"type:decimal(8,2)"`
	Causa       string
	Destino     string
	Medicamento string
	Dose        string
	Via         string
	Observacao  string
	CreatedAt   time.Time

	Lote *LoteCreche `gorm:"foreignKey:LoteCrecheID"`
}

func (MovimentoCreche) TableName() string { return "movimentos_creche" }
