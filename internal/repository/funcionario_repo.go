package repository

import (
	"context"

	"suinotrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FuncionarioRepository is the data access contract for employees and the
// role→permission mapping. Services depend on this interface, not on the
// concrete GORM implementation, enabling clean unit testing via stubs.
type FuncionarioRepository interface {
	Create(ctx context.Context, f *model.Funcionario) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Funcionario, error)
	FindByMatricula(ctx context.Context, matricula string) (*model.Funcionario, error)
	List(ctx context.Context) ([]model.Funcionario, error)
	Update(ctx context.Context, f *model.Funcionario) error

	// Role→permission mapping (permissions are data, not code)
	FindPermissoes(ctx context.Context, papel string) (*model.PermissaoPapel, error)
	UpsertPermissoes(ctx context.Context, p *model.PermissaoPapel) error
	ListPermissoes(ctx context.Context) ([]model.PermissaoPapel, error)
}

type funcionarioRepo struct{ db *gorm.DB }

func NewFuncionarioRepository(db *gorm.DB) FuncionarioRepository { return &funcionarioRepo{db: db} }

func (r *funcionarioRepo) Create(ctx context.Context, f *model.Funcionario) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *funcionarioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Funcionario, error) {
	var f model.Funcionario
	err := r.db.WithContext(ctx).First(&f, id).Error
	return &f, err
}

func (r *funcionarioRepo) FindByMatricula(ctx context.Context, matricula string) (*model.Funcionario, error) {
	var f model.Funcionario
	err := r.db.WithContext(ctx).Where("matricula = ?", matricula).First(&f).Error
	return &f, err
}

func (r *funcionarioRepo) List(ctx context.Context) ([]model.Funcionario, error) {
	var fs []model.Funcionario
	err := r.db.WithContext(ctx).Order("nome_completo ASC").Find(&fs).Error
	return fs, err
}

func (r *funcionarioRepo) Update(ctx context.Context, f *model.Funcionario) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *funcionarioRepo) FindPermissoes(ctx context.Context, papel string) (*model.PermissaoPapel, error) {
	var p model.PermissaoPapel
	err := r.db.WithContext(ctx).Where("papel = ?", papel).First(&p).Error
	return &p, err
}

func (r *funcionarioRepo) UpsertPermissoes(ctx context.Context, p *model.PermissaoPapel) error {
	var existing model.PermissaoPapel
	err := r.db.WithContext(ctx).Where("papel = ?", p.Papel).First(&existing).Error
	if err == nil {
		existing.Permissoes = p.Permissoes
		return r.db.WithContext(ctx).Save(&existing).Error
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *funcionarioRepo) ListPermissoes(ctx context.Context) ([]model.PermissaoPapel, error) {
	var ps []model.PermissaoPapel
	err := r.db.WithContext(ctx).Find(&ps).Error
	return ps, err
}
