package store

import (
	"context"
	"time"

	"github.com/maisonbelle/salon-api/internal/models"
)

// ListBlogPosts returns every post, or only those matching the published
// flag when one is supplied. The unfiltered listing is newest first.
func (s *Store) ListBlogPosts(ctx context.Context, published *int) ([]models.BlogPost, error) {
	db := s.handle()
	if db == nil {
		return []models.BlogPost{}, nil
	}

	q := db.WithContext(ctx).Model(&models.BlogPost{})
	if published != nil {
		q = q.Where("published = ?", *published)
	} else {
		q = q.Order("created_at DESC")
	}

	var posts []models.BlogPost
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}
	return posts, nil
}

func (s *Store) GetBlogPostByID(ctx context.Context, id uint) (*models.BlogPost, error) {
	db := s.handle()
	if db == nil {
		return nil, ErrNotFound
	}

	var post models.BlogPost
	if err := db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *Store) GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	db := s.handle()
	if db == nil {
		return nil, ErrNotFound
	}

	var post models.BlogPost
	if err := db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *Store) CreateBlogPost(ctx context.Context, post *models.BlogPost) error {
	db := s.handle()
	if db == nil {
		return ErrUnavailable
	}
	return db.WithContext(ctx).Create(post).Error
}

type UpdateBlogPostParams struct {
	Title           *string
	Slug            *string
	Excerpt         *string
	Content         *string
	Author          *string
	Image           *string
	ReadTime        *string
	MetaDescription *string
	Keywords        *string
	Featured        *int
	Published       *int
	PublishedAt     *time.Time
}

// UpdateBlogPost applies the supplied fields to an existing post and stamps
// its update time. Concurrent editors are not reconciled; last write wins.
func (s *Store) UpdateBlogPost(ctx context.Context, id uint, p UpdateBlogPostParams) error {
	db := s.handle()
	if db == nil {
		return ErrUnavailable
	}

	var post models.BlogPost
	if err := db.WithContext(ctx).First(&post, id).Error; err != nil {
		return err
	}

	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Slug != nil {
		post.Slug = *p.Slug
	}
	if p.Excerpt != nil {
		post.Excerpt = *p.Excerpt
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
	if p.Author != nil {
		post.Author = *p.Author
	}
	if p.Image != nil {
		post.Image = *p.Image
	}
	if p.ReadTime != nil {
		post.ReadTime = *p.ReadTime
	}
	if p.MetaDescription != nil {
		post.MetaDescription = *p.MetaDescription
	}
	if p.Keywords != nil {
		post.Keywords = *p.Keywords
	}
	if p.Featured != nil {
		post.Featured = *p.Featured
	}
	if p.Published != nil {
		post.Published = *p.Published
	}
	if p.PublishedAt != nil {
		post.PublishedAt = p.PublishedAt
	}
	post.UpdatedAt = time.Now()

	return db.WithContext(ctx).Save(&post).Error
}

func (s *Store) DeleteBlogPost(ctx context.Context, id uint) error {
	db := s.handle()
	if db == nil {
		return ErrUnavailable
	}

	var post models.BlogPost
	if err := db.WithContext(ctx).First(&post, id).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Delete(&post).Error
}
