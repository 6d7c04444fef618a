package repository

import (
	"context"
	"time"

	"suinotrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SincronizacaoRepository interface {
	// Upsert replaces the payload when the (user, collection, row) key already
	// exists; otherwise it inserts.
	Upsert(ctx context.Context, reg *model.RegistroSincronizacao) error
	ListPorColecao(ctx context.Context, usuarioID uuid.UUID, colecao string) ([]model.RegistroSincronizacao, error)
	ListColecoes(ctx context.Context, usuarioID uuid.UUID) ([]string, error)
	ListDesde(ctx context.Context, usuarioID uuid.UUID, desde time.Time) ([]model.RegistroSincronizacao, error)

	DB() *gorm.DB
}

type sincronizacaoRepo struct{ db *gorm.DB }

func NewSincronizacaoRepository(db *gorm.DB) SincronizacaoRepository {
	return &sincronizacaoRepo{db: db}
}

func (r *sincronizacaoRepo) Upsert(ctx context.Context, reg *model.RegistroSincronizacao) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "usuario_id"}, {Name: "colecao"}, {Name: "registro_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"dados", "atualizado_em"}),
	}).Create(reg).Error
}

func (r *sincronizacaoRepo) ListPorColecao(ctx context.Context, usuarioID uuid.UUID, colecao string) ([]model.RegistroSincronizacao, error) {
	var regs []model.RegistroSincronizacao
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND colecao = ?", usuarioID, colecao).
		Order("atualizado_em ASC").Find(&regs).Error
	return regs, err
}

func (r *sincronizacaoRepo) ListColecoes(ctx context.Context, usuarioID uuid.UUID) ([]string, error) {
	var colecoes []string
	err := r.db.WithContext(ctx).Model(&model.RegistroSincronizacao{}).
		Where("usuario_id = ?", usuarioID).
		Distinct("colecao").Order("colecao ASC").Pluck("colecao", &colecoes).Error
	return colecoes, err
}

func (r *sincronizacaoRepo) ListDesde(ctx context.Context, usuarioID uuid.UUID, desde time.Time) ([]model.RegistroSincronizacao, error) {
	var regs []model.RegistroSincronizacao
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND atualizado_em >= ?", usuarioID, desde).
		Order("colecao ASC, atualizado_em ASC").Find(&regs).Error
	return regs, err
}

func (r *sincronizacaoRepo) DB() *gorm.DB { return r.db }
