package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wishlane-app/wishlane-backend/pkg/config"
	pkgerrors "github.com/wishlane-app/wishlane-backend/pkg/errors"
	"github.com/wishlane-app/wishlane-backend/pkg/logger"
	"github.com/wishlane-app/wishlane-backend/pkg/redis"
)

const productsCacheScope = "catalog:products"

// Product mirrors the upstream FakeStore product shape.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Rating      Rating          `json:"rating"`
}

// Rating carries the upstream review aggregate.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Service proxies the external product catalog.
type Service interface {
	ListProducts(ctx context.Context) ([]Product, error)
}

type cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CacheKey(scope string) string
}

// ServiceParams groups dependencies for the catalog service.
type ServiceParams struct {
	Config config.CatalogConfig
	Cache  cache
	Logger *logger.Logger
	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

type service struct {
	baseURL  string
	cacheTTL time.Duration
	cache    cache
	client   *http.Client
	logg     *logger.Logger
}

// NewService builds a catalog proxy with a bounded upstream timeout.
func NewService(params ServiceParams) (Service, error) {
	baseURL := strings.TrimRight(params.Config.BaseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("catalog base url is required")
	}
	client := params.HTTPClient
	if client == nil {
		timeout := params.Config.Timeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &service{
		baseURL:  baseURL,
		cacheTTL: params.Config.CacheTTL,
		cache:    params.Cache,
		client:   client,
		logg:     params.Logger,
	}, nil
}

// ListProducts returns the upstream catalog, served from the redis cache
// when a fresh copy exists.
func (s *service) ListProducts(ctx context.Context) ([]Product, error) {
	if products, ok := s.fromCache(ctx); ok {
		return products, nil
	}

	body, err := s.fetch(ctx, "/products")
	if err != nil {
		return nil, err
	}

	var products []Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode catalog response")
	}

	s.toCache(ctx, body)
	return products, nil
}

func (s *service) fetch(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build catalog request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "catalog upstream unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, pkgerrors.New(pkgerrors.CodeDependency,
			fmt.Sprintf("catalog upstream returned %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read catalog response")
	}
	return body, nil
}

func (s *service) fromCache(ctx context.Context) ([]Product, bool) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, s.cache.CacheKey(productsCacheScope))
	if err != nil {
		if !redis.IsNil(err) && s.logg != nil {
			s.logg.Warn(ctx, "catalog cache read failed")
		}
		return nil, false
	}
	var products []Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return nil, false
	}
	return products, true
}

func (s *service) toCache(ctx context.Context, body []byte) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	if err := s.cache.Set(ctx, s.cache.CacheKey(productsCacheScope), string(body), s.cacheTTL); err != nil && s.logg != nil {
		s.logg.Warn(ctx, "catalog cache write failed")
	}
}
