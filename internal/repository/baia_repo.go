package repository

import (
	"context"
	"time"

	"suinotrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaiaRepository interface {
	Create(ctx context.Context, b *model.Baia) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Baia, error)
	List(ctx context.Context, setor string) ([]model.Baia, error)

	// Allocations — the Tx variants run inside capacity-checked cascades
	CreateAlocacaoTx(tx *gorm.DB, a *model.AlocacaoBaia) error
	CountAtivasTx(tx *gorm.DB, baiaID uuid.UUID) (int64, error)
	CountAtivas(ctx context.Context, baiaID uuid.UUID) (int64, error)
	FindAlocacaoAtivaByAnimal(ctx context.Context, animalID uuid.UUID) (*model.AlocacaoBaia, error)
	FecharAlocacaoTx(tx *gorm.DB, id uuid.UUID, saida time.Time, motivo string) error
	ListAlocacoes(ctx context.Context, baiaID uuid.UUID, somenteAtivas bool) ([]model.AlocacaoBaia, error)

	DB() *gorm.DB
}

type baiaRepo struct{ db *gorm.DB }

func NewBaiaRepository(db *gorm.DB) BaiaRepository { return &baiaRepo{db: db} }

func (r *baiaRepo) Create(ctx context.Context, b *model.Baia) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *baiaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Baia, error) {
	var b model.Baia
	err := r.db.WithContext(ctx).First(&b, id).Error
	return &b, err
}

func (r *baiaRepo) List(ctx context.Context, setor string) ([]model.Baia, error) {
	var baias []model.Baia
	q := r.db.WithContext(ctx).Order("identificacao ASC")
	if setor != "" {
		q = q.Where("setor = ?", setor)
	}
	err := q.Find(&baias).Error
	return baias, err
}

func (r *baiaRepo) CreateAlocacaoTx(tx *gorm.DB, a *model.AlocacaoBaia) error {
	return tx.Create(a).Error
}

func (r *baiaRepo) CountAtivasTx(tx *gorm.DB, baiaID uuid.UUID) (int64, error) {
	var total int64
	err := tx.Model(&model.AlocacaoBaia{}).
		Where("baia_id = ? AND data_saida IS NULL", baiaID).Count(&total).Error
	return total, err
}

func (r *baiaRepo) CountAtivas(ctx context.Context, baiaID uuid.UUID) (int64, error) {
	return r.CountAtivasTx(r.db.WithContext(ctx), baiaID)
}

func (r *baiaRepo) FindAlocacaoAtivaByAnimal(ctx context.Context, animalID uuid.UUID) (*model.AlocacaoBaia, error) {
	var a model.AlocacaoBaia
	err := r.db.WithContext(ctx).
		Where("animal_id = ? AND data_saida IS NULL", animalID).First(&a).Error
	return &a, err
}

func (r *baiaRepo) FecharAlocacaoTx(tx *gorm.DB, id uuid.UUID, saida time.Time, motivo string) error {
	return tx.Model(&model.AlocacaoBaia{}).Where("id = ?", id).Updates(map[string]interface{}{
		"data_saida":   saida,
		"motivo_saida": motivo,
		"status":       model.AlocacaoInativa,
	}).Error
}

func (r *baiaRepo) ListAlocacoes(ctx context.Context, baiaID uuid.UUID, somenteAtivas bool) ([]model.AlocacaoBaia, error) {
	var as []model.AlocacaoBaia
	q := r.db.WithContext(ctx).Where("baia_id = ?", baiaID)
	if somenteAtivas {
		q = q.Where("data_saida IS NULL")
	}
	err := q.Order("data_entrada ASC").Find(&as).Error
	return as, err
}

func (r *baiaRepo) DB() *gorm.DB { return r.db }
