package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dailyink/blog-backend/models"
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// FindAllDesc returns every post ordered by id descending (newest first).
// The home page and the archive are both slices of this one ordering.
func (r *PostRepo) FindAllDesc(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).Order("id DESC").Find(&posts).Error
	return posts, err
}

// FindByAuthor returns the posts owned by the given external user id.
func (r *PostRepo) FindByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).Where("author_id = ?", authorID).Find(&posts).Error
	return posts, err
}

// FindByID returns a post by its id, or (nil, nil) when absent.
func (r *PostRepo) FindByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new post into the database
func (r *PostRepo) Add(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// Save persists all fields of an existing post
func (r *PostRepo) Save(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// DeleteWithComments removes a post and every comment referencing it in one
// transaction. Done explicitly rather than relying on the engine-level
// cascade so the behavior holds on sqlite as well as postgres.
func (r *PostRepo) DeleteWithComments(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}
