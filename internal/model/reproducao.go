package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// Breeding-cycle statuses
	CicloDetectado     = "Detectado"
	CicloInseminado    = "Inseminado"
	CicloNaoInseminado = "Não Inseminado"
	CicloIrregular     = "Irregular"

	// Gestation statuses
	GestacaoConfirmada   = "Confirmada"
	GestacaoSuspeita     = "Suspeita"
	GestacaoEmObservacao = "Em Observação"

	// Fixed reproductive constants for swine
	DiasCicloEstral   = 21  // predicted next estrus = estrus date + 21 days
	DiasGestacao      = 114 // expected delivery = cover date + 114 days
	JanelaCioDias     = 5   // insemination matches a cycle within ±5 days
)

var IntensidadesCio = map[string]bool{
	"Fraco": true, "Moderado": true, "Forte": true, "Muito Forte": true,
}

var OrdensDose = map[string]bool{
	"Primeira": true, "Segunda": true, "Terceira": true, "Quarta": true, "Quinta+": true,
}

var MetodosInseminacao = map[string]bool{
	"Tradicional": true, "Pós-Cervical": true, "Intra-Uterina Profunda": true,
}

// CicloReprodutivo records one estrus detection of a sow. NumeroCiclo is
// 1-based and strictly increasing per animal. The predicted next estrus
// (DataCio + 21d) is derived on demand and never stored.
type CicloReprodutivo struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AnimalID       uuid.UUID `gorm:"type:uuid;not null;index"`
	NumeroCiclo    int       `gorm:"not null"`
	DataCio        time.Time `gorm:"not null"`
	IntensidadeCio string    `gorm:"type:varchar(20);not null"`
	// Irmas holds the identifications of sister sows in simultaneous estrus
	Irmas      StringList `gorm:"type:jsonb"`
	QtdIrmas   int
	Status     string `gorm:"type:varchar(20);not null;default:'Detectado'"`
	Observacao string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Animal *Animal `gorm:"foreignKey:AnimalID"`
}

func (CicloReprodutivo) TableName() string { return "ciclos_reprodutivos" }

// ProximoCio is the derived prediction for this cycle.
func (c *CicloReprodutivo) ProximoCio() time.Time {
	return c.DataCio.AddDate(0, 0, DiasCicloEstral)
}

// Inseminacao is an immutable service/AI event. On commit the most recent
// CicloReprodutivo of the animal within ±5 days transitions to Inseminado.
type Inseminacao struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AnimalID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Data           time.Time       `gorm:"not null"`
	LoteSemen      string          `gorm:"not null"`
	LinhagemSemen  string
	IdadeSemenDias int
	VolumeDoseMl   decimal.Decimal `gorm:"type:decimal(6,2)"`
	OrdemDose      string          `gorm:"type:varchar(20);not null"`
	Metodo         string          `gorm:"type:varchar(30);not null"`
	Tecnico        string
	SemanaSuina    int       `gorm:"not null"` // 1..52
	DataRegistro   time.Time `gorm:"not null"`
	CreatedAt      time.Time

	Animal *Animal `gorm:"foreignKey:AnimalID"`
}

func (Inseminacao) TableName() string { return "inseminacoes" }

// Gestacao tracks a pregnancy. At most one row per animal may have a null
// DataParto. PrevisaoParto is fixed at open (cover + 114d) and is never
// recomputed when the actual farrowing lands on a different date.
type Gestacao struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AnimalID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	DataCobertura time.Time  `gorm:"not null"`
	PrevisaoParto time.Time  `gorm:"not null"`
	DataParto     *time.Time
	QtdLeitoes    *int
	Status        string `gorm:"type:varchar(20);not null;default:'Confirmada'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Animal *Animal `gorm:"foreignKey:AnimalID"`
}

func (Gestacao) TableName() string { return "gestacoes" }

var IntensidadesRegistroCio = map[string]bool{
	"Fraco": true, "Médio": true, "Forte": true,
}

// RegistroCio is one teaser-assisted heat observation. The rufião is a
// long-lived Animal of category Rufião; confirmed records feed the
// heat-interval analysis and prediction.
type RegistroCio struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RufiaoID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	AnimalID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	DataHora       time.Time  `gorm:"not null"`
	Intensidade    string     `gorm:"type:varchar(10);not null"`
	Comportamentos StringList `gorm:"type:jsonb"`
	DuracaoMin     int
	SinaisExternos string
	Confirmado     bool `gorm:"not null;default:false"`
	Responsavel    string
	CreatedAt      time.Time

	Rufiao *Animal `gorm:"foreignKey:RufiaoID"`
	Animal *Animal `gorm:"foreignKey:AnimalID"`
}

func (RegistroCio) TableName() string { return "registros_cio" }
