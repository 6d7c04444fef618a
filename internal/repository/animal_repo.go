package repository

import (
	"context"

	"suinotrack/internal/dto"
	"suinotrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnimalRepository interface {
	Create(ctx context.Context, a *model.Animal) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Animal, error)
	FindByIdentificacao(ctx context.Context, identificacao string) (*model.Animal, error)
	List(ctx context.Context, filter dto.AnimalFilter) ([]model.Animal, int64, error)
	Update(ctx context.Context, a *model.Animal) error
	// Remover is soft: flips Status to Removido so references never dangle
	Remover(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, categoria string) (int64, error)

	// Used inside transactions — callers must pass the tx instance
	UpdateCategoriaTx(tx *gorm.DB, id uuid.UUID, categoria string) error

	// Weight records
	CreatePeso(ctx context.Context, p *model.RegistroPeso) error
	ListPesos(ctx context.Context, animalID uuid.UUID) ([]model.RegistroPeso, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type animalRepo struct{ db *gorm.DB }

func NewAnimalRepository(db *gorm.DB) AnimalRepository { return &animalRepo{db: db} }

func (r *animalRepo) Create(ctx context.Context, a *model.Animal) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *animalRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Animal, error) {
	var a model.Animal
	err := r.db.WithContext(ctx).First(&a, id).Error
	return &a, err
}

func (r *animalRepo) FindByIdentificacao(ctx context.Context, identificacao string) (*model.Animal, error) {
	var a model.Animal
	err := r.db.WithContext(ctx).Where("identificacao = ?", identificacao).First(&a).Error
	return &a, err
}

func (r *animalRepo) List(ctx context.Context, filter dto.AnimalFilter) ([]model.Animal, int64, error) {
	var animais []model.Animal
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Animal{})

	// Status filter: "Removido" = removed, "all" = everything, default active
	switch filter.Status {
	case model.StatusAnimalRemovido:
		q = q.Where("status = ?", model.StatusAnimalRemovido)
	case "all":
		// no filter
	default:
		q = q.Where("status = ?", model.StatusAnimalAtivo)
	}

	if filter.Categoria != "" {
		q = q.Where("categoria = ?", filter.Categoria)
	}
	if filter.Sexo != "" {
		q = q.Where("sexo = ?", filter.Sexo)
	}
	if filter.Identificacao != "" {
		q = q.Where("identificacao ILIKE ?", "%"+filter.Identificacao+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("identificacao ASC").Limit(filter.Limit).Offset(offset).Find(&animais).Error
	return animais, total, err
}

func (r *animalRepo) Update(ctx context.Context, a *model.Animal) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *animalRepo) Remover(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Animal{}).Where("id = ?", id).
		Update("status", model.StatusAnimalRemovido).Error
}

func (r *animalRepo) Count(ctx context.Context, categoria string) (int64, error) {
	var total int64
	q := r.db.WithContext(ctx).Model(&model.Animal{}).Where("status = ?", model.StatusAnimalAtivo)
	if categoria != "" {
		q = q.Where("categoria = ?", categoria)
	}
	err := q.Count(&total).Error
	return total, err
}

func (r *animalRepo) UpdateCategoriaTx(tx *gorm.DB, id uuid.UUID, categoria string) error {
	return tx.Model(&model.Animal{}).Where("id = ?", id).Update("categoria", categoria).Error
}

func (r *animalRepo) CreatePeso(ctx context.Context, p *model.RegistroPeso) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *animalRepo) ListPesos(ctx context.Context, animalID uuid.UUID) ([]model.RegistroPeso, error) {
	var pesos []model.RegistroPeso
	err := r.db.WithContext(ctx).Where("animal_id = ?", animalID).Order("data ASC").Find(&pesos).Error
	return pesos, err
}

func (r *animalRepo) DB() *gorm.DB { return r.db }
