package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dailyink/blog-backend/database"
	"github.com/dailyink/blog-backend/errs"
	"github.com/dailyink/blog-backend/models"
)

type CommentService struct {
	posts    *database.PostRepo
	comments *database.CommentRepo
	logger   zerolog.Logger
}

func NewCommentService(posts *database.PostRepo, comments *database.CommentRepo) *CommentService {
	return &CommentService{
		posts:    posts,
		comments: comments,
		logger:   log.With().Str("serviceName", "commentService").Logger(),
	}
}

// Add appends a comment to a post on behalf of the acting user. The author
// name is snapshotted from the actor at this moment.
func (s *CommentService) Add(ctx context.Context, postID uint, actor *models.User, body string) (*models.Comment, error) {
	if body == "" {
		return nil, errs.MissingField("comment")
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "post", err)
	}
	if post == nil {
		return nil, errs.NewNotFound("post")
	}

	comment := &models.Comment{
		Author:   actor.Name,
		AuthorID: actor.UserID,
		Body:     body,
		PostID:   post.ID,
	}
	if err := s.comments.Add(ctx, comment); err != nil {
		return nil, errs.NewDatabaseError("create", "comment", err)
	}

	s.logger.Info().Uint("postId", post.ID).Uint("commentId", comment.ID).Msg("added comment")
	return comment, nil
}

// ListForPost returns a post's comments in insertion order.
func (s *CommentService) ListForPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	comments, err := s.comments.FindByPost(ctx, postID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "comments", err)
	}
	return comments, nil
}
