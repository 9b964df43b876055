package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"

	"github.com/maisonbelle/salon-api/internal/audit"
	"github.com/maisonbelle/salon-api/internal/cache"
	"github.com/maisonbelle/salon-api/internal/httperr"
	"github.com/maisonbelle/salon-api/internal/httpresp"
	"github.com/maisonbelle/salon-api/internal/middleware"
	"github.com/maisonbelle/salon-api/internal/models"
	"github.com/maisonbelle/salon-api/internal/storage"
	"github.com/maisonbelle/salon-api/internal/store"
)

// markdown renderer for post bodies, GFM feature set
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithUnsafe(),
	),
)

var blogListKeys = []string{
	"blog:list:all",
	"blog:list:published:0",
	"blog:list:published:1",
}

const blogListTTL = 5 * time.Minute

type BlogHandler struct {
	st      *store.Store
	cache   *cache.Cache
	audit   *audit.Dispatcher
	storage storage.Storage
}

func NewBlogHandler(st *store.Store, ch *cache.Cache, dispatcher *audit.Dispatcher, fs storage.Storage) *BlogHandler {
	return &BlogHandler{st: st, cache: ch, audit: dispatcher, storage: fs}
}

// --------- Requests ---------

type CreateBlogPostRequest struct {
	Title           string     `json:"title" binding:"required"`
	Slug            string     `json:"slug" binding:"required"`
	Excerpt         string     `json:"excerpt"`
	Content         string     `json:"content" binding:"required"`
	Author          string     `json:"author" binding:"required"`
	Image           string     `json:"image"`
	ReadTime        string     `json:"readTime"`
	MetaDescription string     `json:"metaDescription" binding:"max=160"`
	Keywords        string     `json:"keywords"`
	Featured        int        `json:"featured" binding:"oneof=0 1"`
	Published       int        `json:"published" binding:"oneof=0 1"`
	PublishedAt     *time.Time `json:"publishedAt"`
}

type UpdateBlogPostRequest struct {
	Title           *string    `json:"title,omitempty"`
	Slug            *string    `json:"slug,omitempty"`
	Excerpt         *string    `json:"excerpt,omitempty"`
	Content         *string    `json:"content,omitempty"`
	Author          *string    `json:"author,omitempty"`
	Image           *string    `json:"image,omitempty"`
	ReadTime        *string    `json:"readTime,omitempty"`
	MetaDescription *string    `json:"metaDescription,omitempty" binding:"omitempty,max=160"`
	Keywords        *string    `json:"keywords,omitempty"`
	Featured        *int       `json:"featured,omitempty" binding:"omitempty,oneof=0 1"`
	Published       *int       `json:"published,omitempty" binding:"omitempty,oneof=0 1"`
	PublishedAt     *time.Time `json:"publishedAt,omitempty"`
}

type blogPostResponse struct {
	models.BlogPost
	ContentHTML string `json:"contentHtml"`
}

// --------- Handlers ---------

func (h *BlogHandler) List(c *gin.Context) {
	var published *int
	key := "blog:list:all"

	switch c.Query("published") {
	case "true", "1":
		v := 1
		published = &v
		key = "blog:list:published:1"
	case "false", "0":
		v := 0
		published = &v
		key = "blog:list:published:0"
	case "":
	default:
		httperr.BadRequest(c, "invalid_published_filter", "published must be a boolean")
		return
	}

	if cached, ok := h.cache.Get(c.Request.Context(), key); ok {
		c.Data(200, "application/json; charset=utf-8", cached)
		return
	}

	posts, err := h.st.ListBlogPosts(c.Request.Context(), published)
	if err != nil {
		httperr.Internal(c, "failed_to_list_posts", "Failed to list blog posts")
		return
	}

	if body, err := json.Marshal(posts); err == nil {
		h.cache.Set(c.Request.Context(), key, body, blogListTTL)
	}

	httpresp.OK(c, posts)
}

func (h *BlogHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.st.GetBlogPostBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "post_not_found", "Blog post not found")
			return
		}
		httperr.Internal(c, "failed_to_get_post", "Failed to load blog post")
		return
	}

	httpresp.OK(c, blogPostResponse{
		BlogPost:    *post,
		ContentHTML: renderMarkdown(post.Content),
	})
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	existing, err := h.st.GetBlogPostBySlug(c.Request.Context(), req.Slug)
	if err == nil && existing != nil {
		httperr.BadRequest(c, "slug_already_exists", "A post with this slug already exists")
		return
	}

	post := models.BlogPost{
		Title:           req.Title,
		Slug:            req.Slug,
		Excerpt:         req.Excerpt,
		Content:         req.Content,
		Author:          req.Author,
		Image:           req.Image,
		ReadTime:        req.ReadTime,
		MetaDescription: req.MetaDescription,
		Keywords:        req.Keywords,
		Featured:        req.Featured,
		Published:       req.Published,
		PublishedAt:     req.PublishedAt,
	}

	if err := h.st.CreateBlogPost(c.Request.Context(), &post); err != nil {
		if errors.Is(err, store.ErrUnavailable) {
			httperr.Unavailable(c, "database_unavailable", "Database not available")
			return
		}
		httperr.Internal(c, "failed_to_create_post", "Failed to create blog post")
		return
	}

	h.dispatchAudit(c, "blog_post_created", post.ID)
	h.cache.Del(c.Request.Context(), blogListKeys...)
	httpresp.Success(c)
}

func (h *BlogHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid post id")
		return
	}

	var req UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Slug != nil {
		existing, err := h.st.GetBlogPostBySlug(c.Request.Context(), *req.Slug)
		if err == nil && existing.ID != uint(id) {
			httperr.BadRequest(c, "slug_already_exists", "A post with this slug already exists")
			return
		}
	}

	// remember the current image so a replaced one can be cleaned up
	var oldImage string
	if req.Image != nil {
		if current, err := h.st.GetBlogPostByID(c.Request.Context(), uint(id)); err == nil {
			oldImage = current.Image
		}
	}

	params := store.UpdateBlogPostParams{
		Title:           req.Title,
		Slug:            req.Slug,
		Excerpt:         req.Excerpt,
		Content:         req.Content,
		Author:          req.Author,
		Image:           req.Image,
		ReadTime:        req.ReadTime,
		MetaDescription: req.MetaDescription,
		Keywords:        req.Keywords,
		Featured:        req.Featured,
		Published:       req.Published,
		PublishedAt:     req.PublishedAt,
	}

	if err := h.st.UpdateBlogPost(c.Request.Context(), uint(id), params); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			httperr.NotFound(c, "post_not_found", "Blog post not found")
		case errors.Is(err, store.ErrUnavailable):
			httperr.Unavailable(c, "database_unavailable", "Database not available")
		default:
			httperr.Internal(c, "failed_to_update_post", "Failed to update blog post")
		}
		return
	}

	if req.Image != nil && oldImage != "" && oldImage != *req.Image {
		h.removeStoredImage(c.Request.Context(), oldImage)
	}

	h.dispatchAudit(c, "blog_post_updated", uint(id))
	h.cache.Del(c.Request.Context(), blogListKeys...)
	httpresp.Success(c)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid post id")
		return
	}

	var image string
	if post, err := h.st.GetBlogPostByID(c.Request.Context(), uint(id)); err == nil {
		image = post.Image
	}

	if err := h.st.DeleteBlogPost(c.Request.Context(), uint(id)); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			httperr.NotFound(c, "post_not_found", "Blog post not found")
		case errors.Is(err, store.ErrUnavailable):
			httperr.Unavailable(c, "database_unavailable", "Database not available")
		default:
			httperr.Internal(c, "failed_to_delete_post", "Failed to delete blog post")
		}
		return
	}

	h.removeStoredImage(c.Request.Context(), image)

	h.dispatchAudit(c, "blog_post_deleted", uint(id))
	h.cache.Del(c.Request.Context(), blogListKeys...)
	httpresp.Success(c)
}

// removeStoredImage drops an uploaded image and its thumbnail once no post
// references them. Only keys under blog-images/ are touched; external image
// URLs pass through untouched.
func (h *BlogHandler) removeStoredImage(ctx context.Context, imageURL string) {
	if h.storage == nil || imageURL == "" {
		return
	}

	key, ok := storage.KeyFromURL(imageURL)
	if !ok || !strings.HasPrefix(key, "blog-images/") {
		return
	}

	if err := h.storage.Delete(ctx, key); err != nil {
		log.Printf("failed to remove image %s: %v", key, err)
	}
	if err := h.storage.Delete(ctx, key+".thumb.webp"); err != nil {
		log.Printf("failed to remove thumbnail for %s: %v", key, err)
	}
}

func (h *BlogHandler) dispatchAudit(c *gin.Context, action string, entityID uint) {
	var userID *uint
	if user := middleware.CurrentUser(c); user != nil {
		userID = &user.ID
	}
	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   action,
		Entity:   "blog_post",
		EntityID: &entityID,
	})
}

func renderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		// fall back to raw content rather than breaking the page
		return content
	}
	return buf.String()
}
