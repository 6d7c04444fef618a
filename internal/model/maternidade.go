package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MaternidadeAtiva      = "Ativa"
	MaternidadeFinalizada = "Finalizada"

	LeitaoVivo        = "Vivo"
	LeitaoMorto       = "Morto"
	LeitaoDesmamado   = "Desmamado"
	LeitaoTransferido = "Transferido"
)

var DestinosLeitoes = map[string]bool{
	"Creche": true, "Venda": true, "Outro": true,
}

var DestinosMatriz = map[string]bool{
	"Gestação": true, "Descarte": true, "Outro": true,
}

// Maternidade is the farrowing stay of a sow in a maternity pen.
type Maternidade struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AnimalID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	BaiaID      uuid.UUID  `gorm:"type:uuid;not null"`
	DataEntrada time.Time  `gorm:"not null"`
	DataParto   time.Time  `gorm:"not null"`
	DataSaida   *time.Time
	Status      string `gorm:"type:varchar(20);not null;default:'Ativa'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Animal *Animal `gorm:"foreignKey:AnimalID"`
	Baia   *Baia   `gorm:"foreignKey:BaiaID"`
}

func (Maternidade) TableName() string { return "maternidades" }

// Leitegada holds the farrowing totals of one litter.
// Invariant: TotalNascidos = NascidosVivos + Natimortos + Mumificados.
type Leitegada struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MaternidadeID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	AnimalID        uuid.UUID `gorm:"type:uuid;not null;index"` // sow
	DataParto       time.Time `gorm:"not null"`
	TotalNascidos   int       `gorm:"not null"`
	NascidosVivos   int       `gorm:"not null"`
	Natimortos      int       `gorm:"not null"`
	Mumificados     int       `gorm:"not null"`
	PesoTotal       decimal.Decimal `gorm:"type:decimal(8,3)"`
	PesoMedio       decimal.Decimal `gorm:"type:decimal(8,3)"`
	// TamanhoAjustado reflects cross-fostering moves after birth
	TamanhoAjustado int
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Maternidade *Maternidade `gorm:"foreignKey:MaternidadeID"`
}

func (Leitegada) TableName() string { return "leitegadas" }

// Leitao is an individual piglet of a litter. MaeAdotivaID is set when the
// piglet was cross-fostered to another sow.
type Leitao struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LeitegadaID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	MaeBiologicaID uuid.UUID  `gorm:"type:uuid;not null"`
	MaeAdotivaID   *uuid.UUID `gorm:"type:uuid"`
	Identificacao  string     `gorm:"not null"`
	Sexo           string     `gorm:"type:varchar(10);not null"`
	DataNascimento time.Time  `gorm:"not null"`
	PesoNascimento *decimal.Decimal `gorm:"type:decimal(6,3)"`
	PesoAtual      *decimal.Decimal `gorm:"type:decimal(6,3)"`
	Status         string           `gorm:"type:varchar(20);not null;default:'Vivo'"`
	DataStatus     time.Time        `gorm:"not null"`
	CausaMorte     *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Leitegada *Leitegada `gorm:"foreignKey:LeitegadaID"`
}

func (Leitao) TableName() string { return "leitoes" }

// Desmame closes a litter's maternity stay. Committing one cascades over
// Leitao, Maternidade, Animal and AlocacaoBaia in a single transaction; a
// second weaning for the same litter is rejected.
type Desmame struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LeitegadaID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	AnimalID         uuid.UUID `gorm:"type:uuid;not null;index"` // sow
	Data             time.Time `gorm:"not null"`
	IdadeMediaDias   int
	TotalDesmamados  int             `gorm:"not null"`
	PesoTotal        decimal.Decimal `gorm:"type:decimal(8,3)"`
	PesoMedio        decimal.Decimal `gorm:"type:decimal(8,3)"`
	GanhoMedioDiario decimal.Decimal `gorm:"type:decimal(8,2)"` // g/day
	DestinoLeitoes   string          `gorm:"type:varchar(20);not null"`
	DestinoMatriz    string          `gorm:"type:varchar(20);not null"`
	BaiaDestinoID    *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt        time.Time

	Leitegada *Leitegada `gorm:"foreignKey:LeitegadaID"`
}

func (Desmame) TableName() string { return "desmames" }
