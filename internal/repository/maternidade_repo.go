package repository

import (
	"context"
	"time"

	"suinotrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaternidadeRepository interface {
	CreateMaternidadeTx(tx *gorm.DB, m *model.Maternidade) error
	FindMaternidadeByID(ctx context.Context, id uuid.UUID) (*model.Maternidade, error)
	FindMaternidadeAtiva(ctx context.Context, animalID uuid.UUID) (*model.Maternidade, error)
	UpdateMaternidadeTx(tx *gorm.DB, m *model.Maternidade) error
	CountMaternidadesAtivas(ctx context.Context) (int64, error)

	CreateLeitegada(ctx context.Context, l *model.Leitegada) error
	FindLeitegadaByID(ctx context.Context, id uuid.UUID) (*model.Leitegada, error)
	FindLeitegadaByMaternidade(ctx context.Context, maternidadeID uuid.UUID) (*model.Leitegada, error)

	CreateLeitoes(ctx context.Context, leitoes []model.Leitao) error
	ListLeitoes(ctx context.Context, leitegadaID uuid.UUID) ([]model.Leitao, error)
	FindLeitaoByID(ctx context.Context, id uuid.UUID) (*model.Leitao, error)
	UpdateLeitao(ctx context.Context, l *model.Leitao) error
	UpdateLeitaoStatusTx(tx *gorm.DB, id uuid.UUID, status string, data time.Time) error

	CreateDesmameTx(tx *gorm.DB, d *model.Desmame) error
	FindDesmameByLeitegada(ctx context.Context, leitegadaID uuid.UUID) (*model.Desmame, error)
	FindDesmameByID(ctx context.Context, id uuid.UUID) (*model.Desmame, error)
	ListDesmamesPeriodo(ctx context.Context, inicio, fim time.Time) ([]model.Desmame, error)

	DB() *gorm.DB
}

type maternidadeRepo struct{ db *gorm.DB }

func NewMaternidadeRepository(db *gorm.DB) MaternidadeRepository { return &maternidadeRepo{db: db} }

func (r *maternidadeRepo) CreateMaternidadeTx(tx *gorm.DB, m *model.Maternidade) error {
	return tx.Create(m).Error
}

func (r *maternidadeRepo) FindMaternidadeByID(ctx context.Context, id uuid.UUID) (*model.Maternidade, error) {
	var m model.Maternidade
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *maternidadeRepo) FindMaternidadeAtiva(ctx context.Context, animalID uuid.UUID) (*model.Maternidade, error) {
	var m model.Maternidade
	err := r.db.WithContext(ctx).
		Where("animal_id = ? AND status = ?", animalID, model.MaternidadeAtiva).First(&m).Error
	return &m, err
}

func (r *maternidadeRepo) UpdateMaternidadeTx(tx *gorm.DB, m *model.Maternidade) error {
	return tx.Save(m).Error
}

func (r *maternidadeRepo) CountMaternidadesAtivas(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Maternidade{}).
		Where("status = ?", model.MaternidadeAtiva).Count(&total).Error
	return total, err
}

func (r *maternidadeRepo) CreateLeitegada(ctx context.Context, l *model.Leitegada) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *maternidadeRepo) FindLeitegadaByID(ctx context.Context, id uuid.UUID) (*model.Leitegada, error) {
	var l model.Leitegada
	err := r.db.WithContext(ctx).First(&l, id).Error
	return &l, err
}

func (r *maternidadeRepo) FindLeitegadaByMaternidade(ctx context.Context, maternidadeID uuid.UUID) (*model.Leitegada, error) {
	var l model.Leitegada
	err := r.db.WithContext(ctx).Where("maternidade_id = ?", maternidadeID).First(&l).Error
	return &l, err
}

func (r *maternidadeRepo) CreateLeitoes(ctx context.Context, leitoes []model.Leitao) error {
	return r.db.WithContext(ctx).Create(&leitoes).Error
}

func (r *maternidadeRepo) ListLeitoes(ctx context.Context, leitegadaID uuid.UUID) ([]model.Leitao, error) {
	var ls []model.Leitao
	err := r.db.WithContext(ctx).Where("leitegada_id = ?", leitegadaID).
		Order("identificacao ASC").Find(&ls).Error
	return ls, err
}

func (r *maternidadeRepo) FindLeitaoByID(ctx context.Context, id uuid.UUID) (*model.Leitao, error) {
	var l model.Leitao
	err := r.db.WithContext(ctx).First(&l, id).Error
	return &l, err
}

func (r *maternidadeRepo) UpdateLeitao(ctx context.Context, l *model.Leitao) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *maternidadeRepo) UpdateLeitaoStatusTx(tx *gorm.DB, id uuid.UUID, status string, data time.Time) error {
	return tx.Model(&model.Leitao{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":      status,
		"data_status": data,
	}).Error
}

func (r *maternidadeRepo) CreateDesmameTx(tx *gorm.DB, d *model.Desmame) error {
	return tx.Create(d).Error
}

func (r *maternidadeRepo) FindDesmameByLeitegada(ctx context.Context, leitegadaID uuid.UUID) (*model.Desmame, error) {
	var d model.Desmame
	err := r.db.WithContext(ctx).Where("leitegada_id = ?", leitegadaID).First(&d).Error
	return &d, err
}

func (r *maternidadeRepo) FindDesmameByID(ctx context.Context, id uuid.UUID) (*model.Desmame, error) {
	var d model.Desmame
	err := r.db.WithContext(ctx).First(&d, id).Error
	return &d, err
}

func (r *maternidadeRepo) ListDesmamesPeriodo(ctx context.Context, inicio, fim time.Time) ([]model.Desmame, error) {
	var ds []model.Desmame
	err := r.db.WithContext(ctx).Preload("Leitegada").
		Where("data BETWEEN ? AND ?", inicio, fim).
		Order("data ASC").Find(&ds).Error
	return ds, err
}

func (r *maternidadeRepo) DB() *gorm.DB { return r.db }
