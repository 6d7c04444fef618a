package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	AlocacaoAtiva   = "Ativo"
	AlocacaoInativa = "Inativo"
)

// SetorPorCategoria maps an animal category to the pen sector recommended
// for it in availability queries.
var SetorPorCategoria = map[string]string{
	CategoriaLeitao:   "Creche",
	CategoriaMatriz:   "Gestação",
	CategoriaReprodutor: "Reprodução",
	"Matriz Lactante": "Maternidade",
}

// Baia is a housing unit of fixed capacity.
type Baia struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Identificacao string    `gorm:"uniqueIndex;not null"`
	Setor         string    `gorm:"not null;index"`
	Capacidade    int       `gorm:"not null"`
	Dimensoes     string
	TipoPiso      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Baia) TableName() string { return "baias" }

// AlocacaoBaia records that an individual animal OR a cohort (litter, nursery
// batch) occupies a pen between entry and exit. Exactly one of AnimalID and
// LoteDescricao is set. Active allocations of a pen never exceed its capacity.
type AlocacaoBaia struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BaiaID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	AnimalID      *uuid.UUID `gorm:"type:uuid;index"`
	LoteDescricao *string
	QtdAnimais    int        `gorm:"not null;default:1"`
	DataEntrada   time.Time  `gorm:"not null"`
	DataSaida     *time.Time
	MotivoSaida   string
	Status        string `gorm:"type:varchar(10);not null;default:'Ativo'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Baia   *Baia   `gorm:"foreignKey:BaiaID"`
	Animal *Animal `gorm:"foreignKey:AnimalID"`
}

func (AlocacaoBaia) TableName() string { return "alocacoes_baia" }
