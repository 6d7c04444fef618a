package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	RecomendacaoSelecionada = "Selecionada"
	RecomendacaoDescartada  = "Descartada"
)

// Marra is a gilt candidate under evaluation for the breeding herd.
type Marra struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AnimalID       *uuid.UUID `gorm:"type:uuid;index"`
	Identificacao  string     `gorm:"uniqueIndex;not null"`
	Linhagem       string
	DataNascimento time.Time `gorm:"not null"`
	PesoKg         decimal.Decimal `gorm:"type:decimal(6,3)"`
	Status         string          `gorm:"type:varchar(20);not null;default:'Em Avaliação'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Marra) TableName() string { return "marras" }

// SelecaoMarra stores one evaluation: criteria scores, a final 1..5 score and
// the keep/cull recommendation.
type SelecaoMarra struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MarraID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Data             time.Time `gorm:"not null"`
	NumeroTetos      int
	NotaAprumos      int
	NotaConformacao  int
	NotaFinal        int    `gorm:"not null"` // 1..5
	Recomendacao     string `gorm:"type:varchar(20);not null"`
	Avaliador        string
	Observacoes      string
	CreatedAt        time.Time

	Marra *Marra `gorm:"foreignKey:MarraID"`
}

func (SelecaoMarra) TableName() string { return "selecoes_marra" }

// DescarteMarra records the culling of a discarded candidate.
type DescarteMarra struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MarraID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Data      time.Time `gorm:"not null"`
	Motivo    string    `gorm:"not null"`
	Destino   string
	CreatedAt time.Time

	Marra *Marra `gorm:"foreignKey:MarraID"`
}

func (DescarteMarra) TableName() string { return "descartes_marra" }
