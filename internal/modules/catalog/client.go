package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrUpstreamNotFound marks a 404 from the catalog API so handlers can
// translate it rather than reporting an internal failure.
var ErrUpstreamNotFound = errors.New("catalog: not found")

// ProductQuery carries the supported upstream list filters. Zero values are
// omitted from the request.
type ProductQuery struct {
	Limit    int
	Page     int
	Sort     string
	Keyword  string
	PriceGTE float64
	PriceLTE float64
	Brand    string
	Category string
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.Limit > 0 {
		v.Set("limit", fmt.Sprint(q.Limit))
	}
	if q.Page > 0 {
		v.Set("page", fmt.Sprint(q.Page))
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Keyword != "" {
		v.Set("keyword", q.Keyword)
	}
	if q.PriceGTE > 0 {
		v.Set("price[gte]", fmt.Sprint(q.PriceGTE))
	}
	if q.PriceLTE > 0 {
		v.Set("price[lte]", fmt.Sprint(q.PriceLTE))
	}
	if q.Brand != "" {
		v.Set("brand", q.Brand)
	}
	if q.Category != "" {
		v.Set("category[in]", q.Category)
	}
	return v
}

// Client is a read-only client for the external catalog REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) GetProducts(ctx context.Context, q ProductQuery) (*ListResponse[Product], error) {
	return getList[Product](ctx, c, "/api/v1/products", q.values())
}

func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	return getItem[Product](ctx, c, "/api/v1/products/"+url.PathEscape(id))
}

func (c *Client) GetCategories(ctx context.Context) (*ListResponse[Category], error) {
	return getList[Category](ctx, c, "/api/v1/categories", nil)
}

func (c *Client) GetCategory(ctx context.Context, id string) (*Category, error) {
	return getItem[Category](ctx, c, "/api/v1/categories/"+url.PathEscape(id))
}

func (c *Client) GetSubcategories(ctx context.Context, categoryID string) (*ListResponse[Category], error) {
	return getList[Category](ctx, c, "/api/v1/categories/"+url.PathEscape(categoryID)+"/subcategories", nil)
}

func (c *Client) GetBrands(ctx context.Context) (*ListResponse[Brand], error) {
	return getList[Brand](ctx, c, "/api/v1/brands", nil)
}

func (c *Client) GetBrand(ctx context.Context, id string) (*Brand, error) {
	return getItem[Brand](ctx, c, "/api/v1/brands/"+url.PathEscape(id))
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, ErrUpstreamNotFound
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog upstream returned %d for %s", res.StatusCode, path)
	}
	return io.ReadAll(res.Body)
}

func getList[T any](ctx context.Context, c *Client, path string, query url.Values) (*ListResponse[T], error) {
	raw, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	var out ListResponse[T]
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	if out.Data == nil {
		out.Data = []T{}
	}
	return &out, nil
}

func getItem[T any](ctx context.Context, c *Client, path string) (*T, error) {
	raw, err := c.get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	var out ItemResponse[T]
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	return &out.Data, nil
}
