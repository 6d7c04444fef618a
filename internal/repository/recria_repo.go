package repository

import (
	"context"

	"suinotrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecriaRepository interface {
	CreateLote(ctx context.Context, l *model.LoteRecria) error
	FindLoteByID(ctx context.Context, id uuid.UUID) (*model.LoteRecria, error)
	ListLotes(ctx context.Context, somenteAtivos bool) ([]model.LoteRecria, error)
	UpdateLoteTx(tx *gorm.DB, l *model.LoteRecria) error

	// CreateAnimalTx runs inside the enrollment transaction that also bumps
	// the batch's initial count.
	CreateAnimalTx(tx *gorm.DB, a *model.AnimalRecria) error
	FindAnimalByID(ctx context.Context, id uuid.UUID) (*model.AnimalRecria, error)
	// FindAnimalAtivo locates an active membership by farm identification —
	// the guard against double-enrollment across batches.
	FindAnimalAtivo(ctx context.Context, identificacao string) (*model.AnimalRecria, error)
	ListAnimais(ctx context.Context, loteID uuid.UUID, somenteAtivos bool) ([]model.AnimalRecria, error)
	UpdateAnimalTx(tx *gorm.DB, a *model.AnimalRecria) error

	CreatePesagemTx(tx *gorm.DB, p *model.PesagemRecria) error
	FindUltimaPesagem(ctx context.Context, animalRecriaID uuid.UUID) (*model.PesagemRecria, error)
	ListPesagens(ctx context.Context, animalRecriaID uuid.UUID) ([]model.PesagemRecria, error)

	CreateTransferenciaTx(tx *gorm.DB, t *model.TransferenciaRecria) error
	CreateArracoamento(ctx context.Context, a *model.ArracoamentoRecria) error
	ListArracoamentos(ctx context.Context, loteID uuid.UUID) ([]model.ArracoamentoRecria, error)
	CreateMedicacao(ctx context.Context, m *model.MedicacaoRecria) error

	DB() *gorm.DB
}

type recriaRepo struct{ db *gorm.DB }

func NewRecriaRepository(db *gorm.DB) RecriaRepository { return &recriaRepo{db: db} }

func (r *recriaRepo) CreateLote(ctx context.Context, l *model.LoteRecria) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *recriaRepo) FindLoteByID(ctx context.Context, id uuid.UUID) (*model.LoteRecria, error) {
	var l model.LoteRecria
	err := r.db.WithContext(ctx).First(&l, id).Error
	return &l, err
}

func (r *recriaRepo) ListLotes(ctx context.Context, somenteAtivos bool) ([]model.LoteRecria, error) {
	var ls []model.LoteRecria
	q := r.db.WithContext(ctx).Order("data_inicio DESC")
	if somenteAtivos {
		q = q.Where("status = ?", model.LoteAtivo)
	}
	err := q.Find(&ls).Error
	return ls, err
}

func (r *recriaRepo) UpdateLoteTx(tx *gorm.DB, l *model.LoteRecria) error {
	return tx.Save(l).Error
}

func (r *recriaRepo) CreateAnimalTx(tx *gorm.DB, a *model.AnimalRecria) error {
	return tx.Create(a).Error
}

func (r *recriaRepo) FindAnimalByID(ctx context.Context, id uuid.UUID) (*model.AnimalRecria, error) {
	var a model.AnimalRecria
	err := r.db.WithContext(ctx).First(&a, id).Error
	return &a, err
}

func (r *recriaRepo) FindAnimalAtivo(ctx context.Context, identificacao string) (*model.AnimalRecria, error) {
	var a model.AnimalRecria
	err := r.db.WithContext(ctx).
		Where("identificacao = ? AND status = ?", identificacao, model.LoteAtivo).First(&a).Error
	return &a, err
}

func (r *recriaRepo) ListAnimais(ctx context.Context, loteID uuid.UUID, somenteAtivos bool) ([]model.AnimalRecria, error) {
	var as []model.AnimalRecria
	q := r.db.WithContext(ctx).Where("lote_recria_id = ?", loteID)
	if somenteAtivos {
		q = q.Where("status = ?", model.LoteAtivo)
	}
	err := q.Order("identificacao ASC").Find(&as).Error
	return as, err
}

func (r *recriaRepo) UpdateAnimalTx(tx *gorm.DB, a *model.AnimalRecria) error {
	return tx.Save(a).Error
}

func (r *recriaRepo) CreatePesagemTx(tx *gorm.DB, p *model.PesagemRecria) error {
	return tx.Create(p).Error
}

func (r *recriaRepo) FindUltimaPesagem(ctx context.Context, animalRecriaID uuid.UUID) (*model.PesagemRecria, error) {
	var p model.PesagemRecria
	err := r.db.WithContext(ctx).Where("animal_recria_id = ?", animalRecriaID).
		Order("data DESC, created_at DESC").First(&p).Error
	return &p, err
}

func (r *recriaRepo) ListPesagens(ctx context.Context, animalRecriaID uuid.UUID) ([]model.PesagemRecria, error) {
	var ps []model.PesagemRecria
	err := r.db.WithContext(ctx).Where("animal_recria_id = ?", animalRecriaID).
		Order("data ASC").Find(&ps).Error
	return ps, err
}

func (r *recriaRepo) CreateTransferenciaTx(tx *gorm.DB, t *model.TransferenciaRecria) error {
	return tx.Create(t).Error
}

func (r *recriaRepo) CreateArracoamento(ctx context.Context, a *model.ArracoamentoRecria) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *recriaRepo) ListArracoamentos(ctx context.Context, loteID uuid.UUID) ([]model.ArracoamentoRecria, error) {
	var as []model.ArracoamentoRecria
	err := r.db.WithContext(ctx).Where("lote_recria_id = ?", loteID).
		Order("data_inicio ASC").Find(&as).Error
	return as, err
}

func (r *recriaRepo) CreateMedicacao(ctx context.Context, m *model.MedicacaoRecria) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *recriaRepo) DB() *gorm.DB { return r.db }
