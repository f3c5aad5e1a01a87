package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sequemusic/backend/internal/domain"
)

type pgNewsRepository struct {
	db *sqlx.DB
}

func NewNewsRepository(db *sqlx.DB) domain.NewsRepository {
	return &pgNewsRepository{db: db}
}

func (r *pgNewsRepository) Create(ctx context.Context, item *domain.News) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.PublishedAt.IsZero() {
		item.PublishedAt = time.Now()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	item.UpdatedAt = time.Now()

	query := `
        INSERT INTO news (id, title, body, published_at, source, summary,
                          image_ref, artist_id, created_at, updated_at)
        VALUES (:id, :title, :body, :published_at, :source, :summary,
                :image_ref, :artist_id, :created_at, :updated_at)`
	_, err := r.db.NamedExecContext(ctx, query, item)
	return err
}

func (r *pgNewsRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.News, error) {
	item := &domain.News{}
	query := `
        SELECT n.*, a.name AS artist_name
        FROM news n
        JOIN artists a ON a.id = n.artist_id
        WHERE n.id = $1`
	err := r.db.GetContext(ctx, item, query, id)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNewsNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *pgNewsRepository) List(ctx context.Context) ([]domain.News, error) {
	items := []domain.News{}
	query := `
        SELECT n.*, a.name AS artist_name
        FROM news n
        JOIN artists a ON a.id = n.artist_id
        ORDER BY n.published_at DESC`
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pgNewsRepository) ListLatest(ctx context.Context, n int) ([]domain.News, error) {
	items := []domain.News{}
	query := `
        SELECT n.*, a.name AS artist_name
        FROM news n
        JOIN artists a ON a.id = n.artist_id
        ORDER BY n.published_at DESC
        LIMIT $1`
	if err := r.db.SelectContext(ctx, &items, query, n); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pgNewsRepository) Update(ctx context.Context, item *domain.News) error {
	item.UpdatedAt = time.Now()
	query := `
        UPDATE news SET
            title = :title, body = :body, published_at = :published_at,
            source = :source, summary = :summary, image_ref = :image_ref,
            artist_id = :artist_id, updated_at = :updated_at
        WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return mapConflict(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNewsNotFound
	}
	return nil
}

func (r *pgNewsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return mapConflict(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNewsNotFound
	}
	return nil
}
