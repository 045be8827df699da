package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dailyink/blog-backend/database"
	"github.com/dailyink/blog-backend/errs"
	"github.com/dailyink/blog-backend/models"
)

// recentPostCount is how many posts the home page shows; everything older
// lands in the archive view.
const recentPostCount = 4

// postDateLayout reproduces the stored date format, literal double quotes
// included, e.g. `"March 07, 2024"`.
const postDateLayout = `"January 02, 2006"`

// PostInput is the allow-list of client-writable post fields. A nil field
// means "not submitted": Create requires all of them, Update applies only
// the ones present. author, date and author_id are snapshots stamped by the
// service and are never writable from a submission.
type PostInput struct {
	Title    *string
	Subtitle *string
	Body     *string
	ImgURL   *string
}

type PostService struct {
	posts  *database.PostRepo
	logger zerolog.Logger
	now    func() time.Time
}

func NewPostService(posts *database.PostRepo) *PostService {
	return &PostService{
		posts:  posts,
		logger: log.With().Str("serviceName", "postService").Logger(),
		now:    time.Now,
	}
}

// ListRecent returns the newest posts, at most recentPostCount of them,
// ordered newest first.
func (s *PostService) ListRecent(ctx context.Context) ([]models.Post, error) {
	posts, err := s.posts.FindAllDesc(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "posts", err)
	}
	if len(posts) > recentPostCount {
		posts = posts[:recentPostCount]
	}
	return posts, nil
}

// ListArchive returns everything beyond the recent slice, same global
// ordering. Recent and archive together cover the full set exactly once.
func (s *PostService) ListArchive(ctx context.Context) ([]models.Post, error) {
	posts, err := s.posts.FindAllDesc(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "posts", err)
	}
	if len(posts) <= recentPostCount {
		return []models.Post{}, nil
	}
	return posts[recentPostCount:], nil
}

// ListByAuthor returns the posts owned by the given external user id.
func (s *PostService) ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	posts, err := s.posts.FindByAuthor(ctx, authorID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "posts", err)
	}
	return posts, nil
}

// Get returns a single post by id.
func (s *PostService) Get(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "post", err)
	}
	if post == nil {
		return nil, errs.NewNotFound("post")
	}
	return post, nil
}

// Create persists a new post owned by the acting user. Author name and date
// are stamped here as point-in-time snapshots.
func (s *PostService) Create(ctx context.Context, input PostInput, actor *models.User) (*models.Post, error) {
	if err := requireField(input.Title, "title"); err != nil {
		return nil, err
	}
	if err := requireField(input.Subtitle, "subtitle"); err != nil {
		return nil, err
	}
	if err := requireField(input.Body, "body"); err != nil {
		return nil, err
	}
	if err := requireField(input.ImgURL, "img_url"); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:    *input.Title,
		Subtitle: *input.Subtitle,
		Body:     *input.Body,
		ImgURL:   *input.ImgURL,
		Author:   actor.Name,
		AuthorID: actor.UserID,
		Date:     s.now().Format(postDateLayout),
	}
	if err := s.posts.Add(ctx, post); err != nil {
		return nil, errs.NewDatabaseError("create", "post", err)
	}

	s.logger.Info().Uint("postId", post.ID).Str("title", post.Title).Msg("created post")
	return post, nil
}

// Update overwrites only the submitted fields, leaving the rest at their
// prior values. Missing posts are an error, not a silent no-op.
func (s *PostService) Update(ctx context.Context, id uint, input PostInput) (*models.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "post", err)
	}
	if post == nil {
		return nil, errs.NewNotFound("post")
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Subtitle != nil {
		post.Subtitle = *input.Subtitle
	}
	if input.Body != nil {
		post.Body = *input.Body
	}
	if input.ImgURL != nil {
		post.ImgURL = *input.ImgURL
	}

	if err := s.posts.Save(ctx, post); err != nil {
		return nil, errs.NewDatabaseError("update", "post", err)
	}
	return post, nil
}

// Delete removes a post and, transitively, all of its comments.
func (s *PostService) Delete(ctx context.Context, id uint) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return errs.NewDatabaseError("find", "post", err)
	}
	if post == nil {
		return errs.NewNotFound("post")
	}

	if err := s.posts.DeleteWithComments(ctx, id); err != nil {
		return errs.NewDatabaseError("delete", "post", err)
	}

	s.logger.Info().Uint("postId", id).Msg("deleted post and its comments")
	return nil
}

func requireField(value *string, name string) error {
	if value == nil || *value == "" {
		return errs.MissingField(name)
	}
	return nil
}
