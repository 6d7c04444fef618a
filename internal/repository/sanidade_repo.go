package repository

import (
	"context"
	"time"

	"suinotrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SanidadeRepository interface {
	CreateVacina(ctx context.Context, v *model.Vacina) error
	FindVacinaByID(ctx context.Context, id uuid.UUID) (*model.Vacina, error)
	ListVacinas(ctx context.Context) ([]model.Vacina, error)

	CreateProtocolo(ctx context.Context, p *model.ProtocoloVacinacao) error
	ListProtocolos(ctx context.Context) ([]model.ProtocoloVacinacao, error)
	ListProtocolosPorCategoria(ctx context.Context, categoria string) ([]model.ProtocoloVacinacao, error)

	CreateRegistroVacinacao(ctx context.Context, rv *model.RegistroVacinacao) error
	ListRegistrosVacinacao(ctx context.Context, animalID uuid.UUID) ([]model.RegistroVacinacao, error)
	// FindAplicacaoRecente returns the newest application of a protocol on an
	// animal after the cutoff date, or gorm.ErrRecordNotFound.
	FindAplicacaoRecente(ctx context.Context, animalID, protocoloID uuid.UUID, desde time.Time) (*model.RegistroVacinacao, error)

	CreateMortalidade(ctx context.Context, rm *model.RegistroMortalidade) error
	ListMortalidadePeriodo(ctx context.Context, inicio, fim time.Time, categoria string) ([]model.RegistroMortalidade, error)

	DB() *gorm.DB
}

type sanidadeRepo struct{ db *gorm.DB }

func NewSanidadeRepository(db *gorm.DB) SanidadeRepository { return &sanidadeRepo{db: db} }

func (r *sanidadeRepo) CreateVacina(ctx context.Context, v *model.Vacina) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *sanidadeRepo) FindVacinaByID(ctx context.Context, id uuid.UUID) (*model.Vacina, error) {
	var v model.Vacina
	err := r.db.WithContext(ctx).First(&v, id).Error
	return &v, err
}

func (r *sanidadeRepo) ListVacinas(ctx context.Context) ([]model.Vacina, error) {
	var vs []model.Vacina
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&vs).Error
	return vs, err
}

func (r *sanidadeRepo) CreateProtocolo(ctx context.Context, p *model.ProtocoloVacinacao) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *sanidadeRepo) ListProtocolos(ctx context.Context) ([]model.ProtocoloVacinacao, error) {
	var ps []model.ProtocoloVacinacao
	err := r.db.WithContext(ctx).Preload("Vacina").
		Order("categoria_animal ASC, idade_aplicacao_dias ASC").Find(&ps).Error
	return ps, err
}

func (r *sanidadeRepo) ListProtocolosPorCategoria(ctx context.Context, categoria string) ([]model.ProtocoloVacinacao, error) {
	var ps []model.ProtocoloVacinacao
	err := r.db.WithContext(ctx).Preload("Vacina").
		Where("categoria_animal = ?", categoria).
		Order("idade_aplicacao_dias ASC").Find(&ps).Error
	return ps, err
}

func (r *sanidadeRepo) CreateRegistroVacinacao(ctx context.Context, rv *model.RegistroVacinacao) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *sanidadeRepo) ListRegistrosVacinacao(ctx context.Context, animalID uuid.UUID) ([]model.RegistroVacinacao, error) {
	var rvs []model.RegistroVacinacao
	err := r.db.WithContext(ctx).Preload("Vacina").
		Where("animal_id = ?", animalID).
		Order("data_aplicacao DESC").Find(&rvs).Error
	return rvs, err
}

func (r *sanidadeRepo) FindAplicacaoRecente(ctx context.Context, animalID, protocoloID uuid.UUID, desde time.Time) (*model.RegistroVacinacao, error) {
	var rv model.RegistroVacinacao
	err := r.db.WithContext(ctx).
		Where("animal_id = ? AND protocolo_id = ? AND data_aplicacao >= ?", animalID, protocoloID, desde).
		Order("data_aplicacao DESC").First(&rv).Error
	return &rv, err
}

func (r *sanidadeRepo) CreateMortalidade(ctx context.Context, rm *model.RegistroMortalidade) error {
	return r.db.WithContext(ctx).Create(rm).Error
}

func (r *sanidadeRepo) ListMortalidadePeriodo(ctx context.Context, inicio, fim time.Time, categoria string) ([]model.RegistroMortalidade, error) {
	var rms []model.RegistroMortalidade
	q := r.db.WithContext(ctx).Where("data_morte BETWEEN ? AND ?", inicio, fim)
	if categoria != "" {
		q = q.Where("categoria = ?", categoria)
	}
	err := q.Order("data_morte ASC").Find(&rms).Error
	return rms, err
}

func (r *sanidadeRepo) DB() *gorm.DB { return r.db }
