package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Animal categories and sexes are validated against these sets on every write.
// "Reprodutor" was chosen over the legacy "Varraco" spelling; seed data using
// the old value must be migrated.
const (
	CategoriaMatriz     = "Matriz"
	CategoriaReprodutor = "Reprodutor"
	CategoriaLeitao     = "Leitão"
	CategoriaLeitoa     = "Leitoa"
	CategoriaRecria     = "Recria"
	CategoriaEngorda    = "Engorda"
	CategoriaRufiao     = "Rufião"

	SexoFemea = "Fêmea"
	SexoMacho = "Macho"

	StatusAnimalAtivo    = "Ativo"
	StatusAnimalRemovido = "Removido"
)

var CategoriasAnimal = map[string]bool{
	CategoriaMatriz:     true,
	CategoriaReprodutor: true,
	CategoriaLeitao:     true,
	CategoriaLeitoa:     true,
	CategoriaRecria:     true,
	CategoriaEngorda:    true,
	CategoriaRufiao:     true,
}

// CategoriasFemea are the categories only a Fêmea may hold.
var CategoriasFemea = map[string]bool{
	CategoriaMatriz: true,
	CategoriaLeitoa: true,
}

// Animal is the central registry record. Removal is soft: Status flips to
// "Removido" so cross-references from other collections never dangle.
type Animal struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Identificacao  string    `gorm:"uniqueIndex;not null"`
	Brinco         *string
	Tatuagem       *string
	Nome           *string
	Categoria      string `gorm:"type:varchar(20);not null;index"`
	Sexo           string `gorm:"type:varchar(10);not null"`
	Raca           string
	Origem         string
	DataNascimento time.Time `gorm:"not null"`
	DataRegistro   time.Time `gorm:"not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:'Ativo'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName overrides GORM's default pluralization (animals → animais).
func (Animal) TableName() string { return "animais" }

// IdadeDias returns the animal's age in whole days at the given reference date.
func (a *Animal) IdadeDias(ref time.Time) int {
	return int(ref.Sub(a.DataNascimento).Hours() / 24)
}

// RegistroPeso is a point-in-time weighing of an individual animal.
type RegistroPeso struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AnimalID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Data      time.Time       `gorm:"not null"`
	PesoKg    decimal.Decimal `gorm:"type:decimal(8,3);not null"`
	CreatedAt time.Time

	Animal *Animal `gorm:"foreignKey:AnimalID"`
}

func (RegistroPeso) TableName() string { return "registros_peso" }
