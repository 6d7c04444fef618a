package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Vacina is a catalog entry; protocols bind it to a category and age.
type Vacina struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome         string    `gorm:"uniqueIndex;not null"`
	Fabricante   string
	Doencas      string
	DoseMl       decimal.Decimal `gorm:"type:decimal(6,2)"`
	ViaAplicacao string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Vacina) TableName() string { return "vacinas" }

// ProtocoloVacinacao maps (animal category, application age, booster interval)
// to a vaccine. A protocol is due for an animal when its age in days has
// reached IdadeAplicacaoDias and no application exists within the booster
// interval.
type ProtocoloVacinacao struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VacinaID            uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoriaAnimal     string    `gorm:"not null;index"`
	IdadeAplicacaoDias  int       `gorm:"not null"`
	IntervaloReforcoDias int      `gorm:"not null"`
	Observacao          string
	CreatedAt           time.Time

	Vacina *Vacina `gorm:"foreignKey:VacinaID"`
}

func (ProtocoloVacinacao) TableName() string { return "protocolos_vacinacao" }

// RegistroVacinacao ties an application to (animal, vaccine, protocol?).
type RegistroVacinacao struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AnimalID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	VacinaID      uuid.UUID  `gorm:"type:uuid;not null"`
	ProtocoloID   *uuid.UUID `gorm:"type:uuid;index"`
	DataAplicacao time.Time  `gorm:"not null"`
	DoseMl        decimal.Decimal `gorm:"type:decimal(6,2)"`
	Lote          string
	Responsavel   string
	CreatedAt     time.Time

	Vacina *Vacina `gorm:"foreignKey:VacinaID"`
}

func (RegistroVacinacao) TableName() string { return "registros_vacinacao" }

// RegistroMortalidade records one death with necropsy details.
type RegistroMortalidade struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AnimalID           uuid.UUID `gorm:"type:uuid;not null;index"`
	DataMorte          time.Time `gorm:"not null;index"`
	Causa              string    `gorm:"not null"`
	Categoria          string    `gorm:"not null"`
	IdadeDias          int
	PesoMorteKg        decimal.Decimal `gorm:"type:decimal(8,3)"`
	Local              string
	Necropsia          bool `gorm:"not null;default:false"`
	ResultadoNecropsia *string
	MedidasPreventivas string
	Responsavel        string
	Observacoes        string
	CreatedAt          time.Time
}

func (RegistroMortalidade) TableName() string { return "registros_mortalidade" }
