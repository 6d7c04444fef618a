package repository

import (
	"context"

	"suinotrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MarraRepository interface {
	Create(ctx context.Context, m *model.Marra) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Marra, error)
	List(ctx context.Context, status string) ([]model.Marra, error)
	UpdateTx(tx *gorm.DB, m *model.Marra) error

	CreateSelecaoTx(tx *gorm.DB, s *model.SelecaoMarra) error
	ListSelecoes(ctx context.Context, marraID uuid.UUID) ([]model.SelecaoMarra, error)
	CountSelecoesPorRecomendacao(ctx context.Context, recomendacao string) (int64, error)

	CreateDescarteTx(tx *gorm.DB, d *model.DescarteMarra) error

	DB() *gorm.DB
}

type marraRepo struct{ db *gorm.DB }

func NewMarraRepository(db *gorm.DB) MarraRepository { return &marraRepo{db: db} }

func (r *marraRepo) Create(ctx context.Context, m *model.Marra) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *marraRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Marra, error) {
	var m model.Marra
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *marraRepo) List(ctx context.Context, status string) ([]model.Marra, error) {
	var ms []model.Marra
	q := r.db.WithContext(ctx).Order("identificacao ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&ms).Error
	return ms, err
}

func (r *marraRepo) UpdateTx(tx *gorm.DB, m *model.Marra) error {
	return tx.Save(m).Error
}

func (r *marraRepo) CreateSelecaoTx(tx *gorm.DB, s *model.SelecaoMarra) error {
	return tx.Create(s).Error
}

func (r *marraRepo) ListSelecoes(ctx context.Context, marraID uuid.UUID) ([]model.SelecaoMarra, error) {
	var ss []model.SelecaoMarra
	err := r.db.WithContext(ctx).Where("marra_id = ?", marraID).
		Order("data ASC").Find(&ss).Error
	return ss, err
}

func (r *marraRepo) CountSelecoesPorRecomendacao(ctx context.Context, recomendacao string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.SelecaoMarra{}).
		Where("recomendacao = ?", recomendacao).Count(&total).Error
	return total, err
}

func (r *marraRepo) CreateDescarteTx(tx *gorm.DB, d *model.DescarteMarra) error {
	return tx.Create(d).Error
}

func (r *marraRepo) DB() *gorm.DB { return r.db }
