package model

import (
	"time"

	"github.com/google/uuid"
)

// RegistroSincronizacao is one row pushed by the offline client, stored under
// a per-user collection prefix. Upsert key: (UsuarioID, Colecao, RegistroID).
// The prefix is a data-isolation convention, not an authorization boundary.
type RegistroSincronizacao struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID    uuid.UUID `gorm:"type:uuid;not null;index:idx_sync_chave,unique"`
	Colecao      string    `gorm:"not null;index:idx_sync_chave,unique"`
	RegistroID   string    `gorm:"not null;index:idx_sync_chave,unique"`
	Dados        JSONMap   `gorm:"type:jsonb;not null"`
	AtualizadoEm time.Time `gorm:"not null"`
	CreatedAt    time.Time
}

func (RegistroSincronizacao) TableName() string { return "registros_sincronizacao" }
