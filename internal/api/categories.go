package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"fintrack/internal/cache"
	"fintrack/internal/core"
	"fintrack/internal/session"
)

const categoriesCacheKey = "categories"

// CategoriesClient serves the category list through a small read-through
// cache: categories change rarely but are read by almost every screen.
// Writes invalidate the cached list.
type CategoriesClient struct {
	session *session.Manager
	cache   *cache.LRUCache[[]core.Category]
}

func NewCategoriesClient(s *session.Manager, cacheTTL time.Duration) *CategoriesClient {
	return &CategoriesClient{
		session: s,
		cache:   cache.NewLRUCache[[]core.Category](1, cacheTTL),
	}
}

// List returns all categories. An empty result is an empty slice, never an
// error.
func (c *CategoriesClient) List(ctx context.Context) ([]core.Category, error) {
	if cached, ok := c.cache.Get(categoriesCacheKey); ok {
		return cached, nil
	}

	var out []core.Category
	err := c.session.Do(ctx, &session.Call{
		Method:       http.MethodGet,
		Path:         "/categories",
		RequiresAuth: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []core.Category{}
	}
	c.cache.Set(categoriesCacheKey, out)
	return out, nil
}

func (c *CategoriesClient) Get(ctx context.Context, id string) (core.Category, error) {
	var out core.Category
	err := c.session.Do(ctx, &session.Call{
		Method:       http.MethodGet,
		Path:         "/categories/" + url.PathEscape(id),
		RequiresAuth: true,
	}, &out)
	return out, err
}

func (c *CategoriesClient) Create(ctx context.Context, category core.Category) (core.Category, error) {
	if err := category.Validate(); err != nil {
		return core.Category{}, fmt.Errorf("%w: %w", core.ErrValidationFailed, err)
	}
	var out core.Category
	err := c.session.Do(ctx, &session.Call{
		Method:       http.MethodPost,
		Path:         "/categories",
		Body:         category,
		RequiresAuth: true,
	}, &out)
	if err != nil {
		return core.Category{}, err
	}
	c.cache.Delete(categoriesCacheKey)
	return out, nil
}

func (c *CategoriesClient) Update(ctx context.Context, id string, category core.Category) (core.Category, error) {
	if err := category.Validate(); err != nil {
		return core.Category{}, fmt.Errorf("%w: %w", core.ErrValidationFailed, err)
	}
	var out core.Category
	err := c.session.Do(ctx, &session.Call{
		Method:       http.MethodPut,
		Path:         "/categories/" + url.PathEscape(id),
		Body:         category,
		RequiresAuth: true,
	}, &out)
	if err != nil {
		return core.Category{}, err
	}
	c.cache.Delete(categoriesCacheKey)
	return out, nil
}

func (c *CategoriesClient) Remove(ctx context.Context, id string) error {
	err := c.session.Do(ctx, &session.Call{
		Method:       http.MethodDelete,
		Path:         "/categories/" + url.PathEscape(id),
		RequiresAuth: true,
	}, nil)
	if err != nil {
		return err
	}
	c.cache.Delete(categoriesCacheKey)
	return nil
}
