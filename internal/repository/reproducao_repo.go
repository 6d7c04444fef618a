package repository

import (
	"context"
	"time"

	"suinotrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReproducaoRepository interface {
	// Breeding cycles
	CreateCiclo(ctx context.Context, c *model.CicloReprodutivo) error
	MaxNumeroCiclo(ctx context.Context, animalID uuid.UUID) (int, error)
	ListCiclos(ctx context.Context, animalID uuid.UUID) ([]model.CicloReprodutivo, error)
	ListCiclosPeriodo(ctx context.Context, inicio, fim time.Time) ([]model.CicloReprodutivo, error)
	UpdateCicloTx(tx *gorm.DB, c *model.CicloReprodutivo) error

	// Inseminations
	CreateInseminacaoTx(tx *gorm.DB, i *model.Inseminacao) error
	ListInseminacoes(ctx context.Context, animalID uuid.UUID) ([]model.Inseminacao, error)

	// Gestations
	CreateGestacao(ctx context.Context, g *model.Gestacao) error
	FindGestacaoAberta(ctx context.Context, animalID uuid.UUID) (*model.Gestacao, error)
	FindGestacaoByID(ctx context.Context, id uuid.UUID) (*model.Gestacao, error)
	UpdateGestacao(ctx context.Context, g *model.Gestacao) error
	ListGestacoesAbertas(ctx context.Context) ([]model.Gestacao, error)
	CountGestacoesAbertas(ctx context.Context) (int64, error)

	// Teaser heat records
	CreateRegistroCio(ctx context.Context, rc *model.RegistroCio) error
	ListRegistrosCioConfirmados(ctx context.Context, animalID uuid.UUID) ([]model.RegistroCio, error)
	ListRegistrosCioPeriodo(ctx context.Context, inicio, fim time.Time) ([]model.RegistroCio, error)

	DB() *gorm.DB
}

type reproducaoRepo struct{ db *gorm.DB }

func NewReproducaoRepository(db *gorm.DB) ReproducaoRepository { return &reproducaoRepo{db: db} }

func (r *reproducaoRepo) CreateCiclo(ctx context.Context, c *model.CicloReprodutivo) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *reproducaoRepo) MaxNumeroCiclo(ctx context.Context, animalID uuid.UUID) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).Model(&model.CicloReprodutivo{}).
		Where("animal_id = ?", animalID).
		Select("MAX(numero_ciclo)").Scan(&max).Error
	if err != nil || max == nil {
		return 0, err
	}
	return *max, nil
}

func (r *reproducaoRepo) ListCiclos(ctx context.Context, animalID uuid.UUID) ([]model.CicloReprodutivo, error) {
	var ciclos []model.CicloReprodutivo
	err := r.db.WithContext(ctx).Where("animal_id = ?", animalID).
		Order("numero_ciclo ASC").Find(&ciclos).Error
	return ciclos, err
}

func (r *reproducaoRepo) ListCiclosPeriodo(ctx context.Context, inicio, fim time.Time) ([]model.CicloReprodutivo, error) {
	var ciclos []model.CicloReprodutivo
	err := r.db.WithContext(ctx).Preload("Animal").
		Where("data_cio BETWEEN ? AND ?", inicio, fim).
		Order("data_cio ASC").Find(&ciclos).Error
	return ciclos, err
}

func (r *reproducaoRepo) UpdateCicloTx(tx *gorm.DB, c *model.CicloReprodutivo) error {
	return tx.Save(c).Error
}

func (r *reproducaoRepo) CreateInseminacaoTx(tx *gorm.DB, i *model.Inseminacao) error {
	return tx.Create(i).Error
}

func (r *reproducaoRepo) ListInseminacoes(ctx context.Context, animalID uuid.UUID) ([]model.Inseminacao, error) {
	var ins []model.Inseminacao
	err := r.db.WithContext(ctx).Where("animal_id = ?", animalID).Order("data DESC").Find(&ins).Error
	return ins, err
}

func (r *reproducaoRepo) CreateGestacao(ctx context.Context, g *model.Gestacao) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *reproducaoRepo) FindGestacaoAberta(ctx context.Context, animalID uuid.UUID) (*model.Gestacao, error) {
	var g model.Gestacao
	err := r.db.WithContext(ctx).
		Where("animal_id = ? AND data_parto IS NULL", animalID).First(&g).Error
	return &g, err
}

func (r *reproducaoRepo) FindGestacaoByID(ctx context.Context, id uuid.UUID) (*model.Gestacao, error) {
	var g model.Gestacao
	err := r.db.WithContext(ctx).First(&g, id).Error
	return &g, err
}

func (r *reproducaoRepo) UpdateGestacao(ctx context.Context, g *model.Gestacao) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *reproducaoRepo) ListGestacoesAbertas(ctx context.Context) ([]model.Gestacao, error) {
	var gs []model.Gestacao
	err := r.db.WithContext(ctx).Preload("Animal").
		Where("data_parto IS NULL").Order("previsao_parto ASC").Find(&gs).Error
	return gs, err
}

func (r *reproducaoRepo) CountGestacoesAbertas(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Gestacao{}).
		Where("data_parto IS NULL").Count(&total).Error
	return total, err
}

func (r *reproducaoRepo) CreateRegistroCio(ctx context.Context, rc *model.RegistroCio) error {
	return r.db.WithContext(ctx).Create(rc).Error
}

func (r *reproducaoRepo) ListRegistrosCioConfirmados(ctx context.Context, animalID uuid.UUID) ([]model.RegistroCio, error) {
	var rcs []model.RegistroCio
	err := r.db.WithContext(ctx).
		Where("animal_id = ? AND confirmado = true", animalID).
		Order("data_hora ASC").Find(&rcs).Error
	return rcs, err
}

func (r *reproducaoRepo) ListRegistrosCioPeriodo(ctx context.Context, inicio, fim time.Time) ([]model.RegistroCio, error) {
	var rcs []model.RegistroCio
	err := r.db.WithContext(ctx).Preload("Animal").Preload("Rufiao").
		Where("data_hora BETWEEN ? AND ?", inicio, fim).
		Order("data_hora ASC").Find(&rcs).Error
	return rcs, err
}

func (r *reproducaoRepo) DB() *gorm.DB { return r.db }
