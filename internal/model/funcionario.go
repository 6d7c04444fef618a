package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	FuncionarioAtivo    = "Ativo"
	FuncionarioInativo  = "Inativo"
	FuncionarioFerias   = "Férias"
	FuncionarioAfastado = "Afastado"
)

var StatusFuncionario = map[string]bool{
	FuncionarioAtivo: true, FuncionarioInativo: true,
	FuncionarioFerias: true, FuncionarioAfastado: true,
}

// Funcionario authenticates by registration number only; the role resolves
// to a permission set through PermissaoPapel.
type Funcionario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NomeCompleto string    `gorm:"not null"`
	Matricula    string    `gorm:"uniqueIndex;not null"`
	Papel        string    `gorm:"type:varchar(30);not null"`
	Setor        string
	DataAdmissao time.Time `gorm:"not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'Ativo'"`
	Observacao   string
	UltimoAcesso *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Funcionario) TableName() string { return "funcionarios" }

// PermissaoPapel is the configurable role→permissions mapping. Permissions
// are data, not code: adding a role or tag is a row insert, not a deploy.
// Roles absent from this collection fall back to PermissoesPadrao.
type PermissaoPapel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Papel      string     `gorm:"uniqueIndex;not null"`
	Permissoes StringList `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (PermissaoPapel) TableName() string { return "permissoes_papel" }

// PermissoesPadrao is the built-in default mapping used when the
// permissoes_papel collection has no row for a role.
var PermissoesPadrao = map[string][]string{
	"Administrador": {
		"admin", "edit", "view_reports", "manage_users", "manage_animals",
		"manage_reproduction", "manage_health", "manage_growth",
		"export_data", "import_data",
	},
	"Desenvolvedor": {
		"admin", "edit", "view_reports", "manage_users", "manage_animals",
		"manage_reproduction", "manage_health", "manage_growth",
		"export_data", "import_data", "developer_tools", "system_config",
	},
	"Gerente": {
		"admin", "edit", "view_reports", "manage_users", "manage_animals",
		"manage_reproduction", "manage_health", "manage_growth",
		"export_data", "import_data",
	},
	"Técnico": {
		"edit", "view_reports", "manage_animals", "manage_reproduction",
		"manage_health", "manage_growth",
	},
	"Operador": {
		"edit", "manage_animals", "manage_health", "view_reports",
	},
	"Visitante": {
		"view_reports",
	},
}
