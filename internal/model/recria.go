package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PesagemIndividual = "Individual"
	PesagemGrupo      = "Grupo"

	MedicacaoIndividual = "Individual"
	MedicacaoColetiva   = "Coletiva"
)

// LoteRecria is a grow-out batch. Unlike the nursery, membership is tracked
// per animal through AnimalRecria rows.
type LoteRecria struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Identificacao      string     `gorm:"uniqueIndex;not null"`
	BaiaID             *uuid.UUID `gorm:"type:uuid"`
	Fase               string
	DataInicio         time.Time `gorm:"not null"`
	DataFim            *time.Time
	QtdInicial         int `gorm:"not null"`
	QtdFinal           *int
	MortalidadePct     decimal.Decimal `gorm:"type:decimal(5,2)"`
	PesoMedioFinal     decimal.Decimal `gorm:"type:decimal(6,3)"`
	GPDMedio           decimal.Decimal `gorm:"type:decimal(8,2)"`
	ConversaoAlimentar decimal.Decimal `gorm:"type:decimal(6,3)"`
	Status             string          `gorm:"type:varchar(20);not null;default:'Ativo'"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (LoteRecria) TableName() string { return "lotes_recria" }

// AnimalRecria is one animal's membership in a grow-out batch. An animal may
// be active in at most one batch at a time.
type AnimalRecria struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AnimalID      *uuid.UUID `gorm:"type:uuid;index"`
	LoteRecriaID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Identificacao string     `gorm:"not null"`
	DataEntrada   time.Time  `gorm:"not null"`
	PesoEntrada   decimal.Decimal `gorm:"type:decimal(6,3);not null"`
	DataSaida     *time.Time
	PesoSaida     *decimal.Decimal `gorm:"type:decimal(6,3)"`
	Destino       string
	Status        string `gorm:"type:varchar(20);not null;default:'Ativo'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Lote *LoteRecria `gorm:"foreignKey:LoteRecriaID"`
}

func (AnimalRecria) TableName() string { return "animais_recria" }

// PesagemRecria is a per-animal weighing. GanhoDesdeUltima and GPDPeriodo are
// computed against the previous weighing of the same animal, falling back to
// its entry weight.
type PesagemRecria struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AnimalRecriaID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Tipo            string    `gorm:"type:varchar(15);not null"` // Individual | Grupo
	Data            time.Time `gorm:"not null"`
	PesoKg          decimal.Decimal `gorm:"type:decimal(6,3);not null"`
	GanhoDesdeUltima decimal.Decimal `gorm:"type:decimal(6,3)"`
	GPDPeriodo      decimal.Decimal `gorm:"type:decimal(8,2)"` // g/day
	CreatedAt       time.Time

	AnimalRecria *AnimalRecria `gorm:"foreignKey:AnimalRecriaID"`
}

func (PesagemRecria) TableName() string { return "pesagens_recria" }

// TransferenciaRecria moves an animal between grow-out batches; committing
// one also records an Individual weighing on the transfer date.
type TransferenciaRecria struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AnimalRecriaID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Data           time.Time  `gorm:"not null"`
	LoteOrigemID   uuid.UUID  `gorm:"type:uuid;not null"`
	LoteDestinoID  uuid.UUID  `gorm:"type:uuid;not null"`
	BaiaDestinoID  *uuid.UUID `gorm:"type:uuid"`
	Fase           string
	PesoKg         decimal.Decimal `gorm:"type:decimal(6,3)"`
	CreatedAt      time.Time
}

func (TransferenciaRecria) TableName() string { return "transferencias_recria" }

// ArracoamentoRecria is a per-batch feeding interval with cost accounting.
type ArracoamentoRecria struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LoteRecriaID     uuid.UUID `gorm:"type:uuid;not null;index"`
	DataInicio       time.Time `gorm:"not null"`
	DataFim          time.Time `gorm:"not null"`
	Racao            string    `gorm:"not null"`
	QtdKg            decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	CustoKg          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CustoTotal       decimal.Decimal `gorm:"type:decimal(12,2)"`
	ConsumoAnimalDia decimal.Decimal `gorm:"type:decimal(8,3)"` // kg/animal/day
	CreatedAt        time.Time
}

func (ArracoamentoRecria) TableName() string { return "arracoamentos_recria" }

// MedicacaoRecria is an Individual (per animal) or Coletiva (per batch)
// medication. FimCarencia = Data + CarenciaDias is fixed on commit.
type MedicacaoRecria struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Tipo           string     `gorm:"type:varchar(15);not null"`
	AnimalRecriaID *uuid.UUID `gorm:"type:uuid;index"`
	LoteRecriaID   *uuid.UUID `gorm:"type:uuid;index"`
	Data           time.Time  `gorm:"not null"`
	Medicamento    string     `gorm:"not null"`
	Dose           string     `gorm:"not null"`
	Via            string     `gorm:"not null"`
	CarenciaDias   int
	FimCarencia    time.Time
	Responsavel    string
	CreatedAt      time.Time
}

func (MedicacaoRecria) TableName() string { return "medicacoes_recria" }
