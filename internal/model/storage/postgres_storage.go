package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/logger"
)

const dsnTemplate = "user=%s password=%s host=%s dbname=%s sslmode=disable"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

//go:embed migrations/*.sql
var embedMigrations embed.FS

type config interface {
	Host() string
	Username() string
	Password() string
	Database() string
}

// PostgresStorage keeps encrypted blobs in the user_blobs table. Keys never go there.
type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config config) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = migrate(db); err != nil {
		return nil, err
	}
	return &PostgresStorage{db}, nil
}

func migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "goose dialect")
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return errors.Wrap(err, "apply migrations")
	}
	return nil
}

func (s *PostgresStorage) Close() {
	if err := s.db.Close(); err != nil {
		logger.Error("failed to close database", zap.Error(err))
	}
}

func (s *PostgresStorage) Read(ctx context.Context, userID int64) ([]byte, error) {
	query := psql.Select("blob").
		From("user_blobs").
		Where(sq.Eq{"user_id": userID})

	var blob []byte
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "read blob")
	}
	return blob, nil
}

func (s *PostgresStorage) Write(ctx context.Context, userID int64, blob []byte) error {
	query := psql.Insert("user_blobs").
		Columns("user_id", "blob", "updated_at").
		Values(userID, blob, time.Now()).
		Suffix("ON CONFLICT(user_id) DO UPDATE SET blob = EXCLUDED.blob, updated_at = EXCLUDED.updated_at")

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "write blob")
}

func (s *PostgresStorage) List(ctx context.Context) ([]int64, error) {
	query := psql.Select("user_id").
		From("user_blobs").
		OrderBy("user_id")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	defer func() {
		rowErr := rows.Close()
		if rowErr != nil {
			logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "list users")
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	return ids, nil
}
