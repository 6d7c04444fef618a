package repository

import (
	"context"
	"time"

	"suinotrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CrecheRepository interface {
	CreatePeriodoTx(tx *gorm.DB, p *model.PeriodoCreche) error
	FindPeriodoByID(ctx context.Context, id uuid.UUID) (*model.PeriodoCreche, error)
	FinalizarPeriodoTx(tx *gorm.DB, id uuid.UUID, fim time.Time) error

	CreateLoteTx(tx *gorm.DB, l *model.LoteCreche) error
	FindLoteByID(ctx context.Context, id uuid.UUID) (*model.LoteCreche, error)
	FindLoteByDesmame(ctx context.Context, desmameID uuid.UUID) (*model.LoteCreche, error)
	ListLotes(ctx context.Context, somenteAtivos bool) ([]model.LoteCreche, error)
	UpdateLoteTx(tx *gorm.DB, l *model.LoteCreche) error
	CountLotesAtivos(ctx context.Context) (int64, error)

	CreateMovimentoTx(tx *gorm.DB, m *model.MovimentoCreche) error
	ListMovimentos(ctx context.Context, loteID uuid.UUID) ([]model.MovimentoCreche, error)
	// FindUltimaPesagemOuEntrada returns the most recent Pesagem or Entrada
	// movement of a batch — the baseline for daily-gain computation.
	FindUltimaPesagemOuEntrada(ctx context.Context, loteID uuid.UUID) (*model.MovimentoCreche, error)

	DB() *gorm.DB
}

type crecheRepo struct{ db *gorm.DB }

func NewCrecheRepository(db *gorm.DB) CrecheRepository { return &crecheRepo{db: db} }

func (r *crecheRepo) CreatePeriodoTx(tx *gorm.DB, p *model.PeriodoCreche) error {
	return tx.Create(p).Error
}

func (r *crecheRepo) FindPeriodoByID(ctx context.Context, id uuid.UUID) (*model.PeriodoCreche, error) {
	var p model.PeriodoCreche
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *crecheRepo) FinalizarPeriodoTx(tx *gorm.DB, id uuid.UUID, fim time.Time) error {
	return tx.Model(&model.PeriodoCreche{}).Where("id = ?", id).Updates(map[string]interface{}{
		"data_fim": fim,
		"status":   model.LoteFinalizado,
	}).Error
}

func (r *crecheRepo) CreateLoteTx(tx *gorm.DB, l *model.LoteCreche) error {
	return tx.Create(l).Error
}

func (r *crecheRepo) FindLoteByID(ctx context.Context, id uuid.UUID) (*model.LoteCreche, error) {
	var l model.LoteCreche
	err := r.db.WithContext(ctx).First(&l, id).Error
	return &l, err
}

func (r *crecheRepo) FindLoteByDesmame(ctx context.Context, desmameID uuid.UUID) (*model.LoteCreche, error) {
	var l model.LoteCreche
	err := r.db.WithContext(ctx).Where("desmame_id = ?", desmameID).First(&l).Error
	return &l, err
}

func (r *crecheRepo) ListLotes(ctx context.Context, somenteAtivos bool) ([]model.LoteCreche, error) {
	var ls []model.LoteCreche
	q := r.db.WithContext(ctx).Order("data_entrada DESC")
	if somenteAtivos {
		q = q.Where("status = ?", model.LoteAtivo)
	}
	err := q.Find(&ls).Error
	return ls, err
}

func (r *crecheRepo) UpdateLoteTx(tx *gorm.DB, l *model.LoteCreche) error {
	return tx.Save(l).Error
}

func (r *crecheRepo) CountLotesAtivos(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.LoteCreche{}).
		Where("status = ?", model.LoteAtivo).Count(&total).Error
	return total, err
}

func (r *crecheRepo) CreateMovimentoTx(tx *gorm.DB, m *model.MovimentoCreche) error {
	return tx.Create(m).Error
}

func (r *crecheRepo) ListMovimentos(ctx context.Context, loteID uuid.UUID) ([]model.MovimentoCreche, error) {
	var ms []model.MovimentoCreche
	err := r.db.WithContext(ctx).Where("lote_creche_id = ?", loteID).
		Order("data ASC, created_at ASC").Find(&ms).Error
	return ms, err
}

func (r *crecheRepo) FindUltimaPesagemOuEntrada(ctx context.Context, loteID uuid.UUID) (*model.MovimentoCreche, error) {
	var m model.MovimentoCreche
	err := r.db.WithContext(ctx).
		Where("lote_creche_id = ? AND tipo IN ?", loteID, []string{model.MovPesagem, model.MovEntrada}).
		Order("data DESC, created_at DESC").First(&m).Error
	return &m, err
}

func (r *crecheRepo) DB() *gorm.DB { return r.db }
