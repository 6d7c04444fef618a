package infra

import (
	"fmt"

	"suinotrack/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// for every collection of the domain. Each command touching several collections
// runs inside one GORM transaction, which gives the whole-cascade atomicity the
// callers rely on.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Animal{},
		&model.RegistroPeso{},
		&model.CicloReprodutivo{},
		&model.Inseminacao{},
		&model.Gestacao{},
		&model.RegistroCio{},
		&model.Baia{},
		&model.AlocacaoBaia{},
		&model.Maternidade{},
		&model.Leitegada{},
		&model.Leitao{},
		&model.Desmame{},
		&model.PeriodoCreche{},
		&model.LoteCreche{},
		&model.MovimentoCreche{},
		&model.LoteRecria{},
		&model.AnimalRecria{},
		&model.PesagemRecria{},
		&model.TransferenciaRecria{},
		&model.ArracoamentoRecria{},
		&model.MedicacaoRecria{},
		&model.Vacina{},
		&model.ProtocoloVacinacao{},
		&model.RegistroVacinacao{},
		&model.RegistroMortalidade{},
		&model.Marra{},
		&model.SelecaoMarra{},
		&model.DescarteMarra{},
		&model.Funcionario{},
		&model.PermissaoPapel{},
		&model.RegistroSincronizacao{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
