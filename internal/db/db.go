package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("record already exists")

// Tx is the set of record operations available inside a transaction.
type Tx interface {
	CreateRecord(ctx context.Context, record any) error
	SaveRecord(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any) error
	DeleteAllBy(ctx context.Context, column string, value any, model any) error
}

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (p *PostgresDB) MigrateTable(tbl ...any) error {
	err := p.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (p *PostgresDB) CreateRecord(ctx context.Context, record any) error {
	err := p.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert record: %w", err)
	}

	return nil
}

func (p *PostgresDB) SaveRecord(ctx context.Context, record any) error {
	err := p.DB.WithContext(ctx).Save(record).Error
	if err != nil {
		return fmt.Errorf("save record: %w", err)
	}

	return nil
}

func (p *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := p.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (p *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	tx := p.DB.WithContext(ctx).Where(query, value).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (p *PostgresDB) DeleteAllBy(ctx context.Context, column string, value any, model any) error {
	query := fmt.Sprintf("%s = ?", column)
	tx := p.DB.WithContext(ctx).Where(query, value).Delete(model)
	if tx.Error != nil {
		return fmt.Errorf("deleting records by %q: %w", column, tx.Error)
	}
	return nil
}

// Transaction runs fn inside a single database transaction. The handle
// passed to fn is only valid until fn returns.
func (p *PostgresDB) Transaction(ctx context.Context, fn func(tx Tx) error) error {
	return p.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresDB{DB: tx})
	})
}
