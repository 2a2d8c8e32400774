package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"blogapi/internal/models"
)

type CommentRepositoryImpl struct {
	db *sqlx.DB
}

type CreateCommentRequest struct {
	PostID          int64  `json:"post_id"`
	Author          string `json:"author"`
	Text            string `json:"text"`
	ApprovedComment bool   `json:"approved_comment"`
}

type UpdateCommentRequest struct {
	CommentID       int64  `json:"comment_id"`
	PostID          int64  `json:"post_id"`
	Author          string `json:"author"`
	Text            string `json:"text"`
	ApprovedComment bool   `json:"approved_comment"`
}

func NewCommentRepository(db *sqlx.DB) *CommentRepositoryImpl {
	return &CommentRepositoryImpl{db: db}
}

func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (post_id, author, text, approved_comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		comment.PostID, comment.Author, comment.Text, comment.ApprovedComment).Scan(&comment.ID)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

func (r *CommentRepositoryImpl) GetByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	query := `SELECT * FROM comments WHERE id = $1`

	var comment models.Comment
	err := r.db.GetContext(ctx, &comment, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return &comment, nil
}

func (r *CommentRepositoryImpl) GetAll(ctx context.Context) ([]models.Comment, error) {
	query := `SELECT * FROM comments ORDER BY id`

	comments := []models.Comment{}
	err := r.db.SelectContext(ctx, &comments, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}

func (r *CommentRepositoryImpl) GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	query := `SELECT * FROM comments WHERE post_id = $1 ORDER BY id`

	comments := []models.Comment{}
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for post: %w", err)
	}

	return comments, nil
}

func (r *CommentRepositoryImpl) Update(ctx context.Context, comment *models.Comment) error {
	query := `
		UPDATE comments SET
			post_id = $1,
			author = $2,
			text = $3,
			approved_comment = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query,
		comment.PostID, comment.Author, comment.Text, comment.ApprovedComment, comment.ID)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *CommentRepositoryImpl) Delete(ctx context.Context, commentID int64) error {
	query := `DELETE FROM comments WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *CommentRepositoryImpl) DeleteByPostID(ctx context.Context, postID int64) error {
	return deleteCommentsByPostID(ctx, r.db, postID)
}

// deleteCommentsByPostID also runs inside the post-delete transaction.
func deleteCommentsByPostID(ctx context.Context, ex sqlx.ExecerContext, postID int64) error {
	query := `DELETE FROM comments WHERE post_id = $1`

	_, err := ex.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("failed to delete comments for post: %w", err)
	}

	return nil
}
