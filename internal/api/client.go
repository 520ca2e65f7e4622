// Package api wraps the backend REST service the panel depends on. Each
// operation is a single fire-and-forget request; failures surface
// immediately as typed errors without retries or batching.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"category-admin/internal/logging/events"
)

const defaultTimeout = 30 * time.Second

// Client talks to the category backend over JSON/HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the given base URL, e.g.
// "https://example.com/api". A trailing slash is tolerated.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// FindUser resolves a user by chat identifier.
func (c *Client) FindUser(ctx context.Context, chatID string) (User, error) {
	endpoint := fmt.Sprintf("%s/user/find-by-chat-id?chat_id=%s", c.baseURL, url.QueryEscape(chatID))
	events.API.Request("user:find", chatID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return User{}, fmt.Errorf("find user: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		events.API.Failure("user:find", err)
		return User{}, fmt.Errorf("find user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		lerr := &LookupError{StatusCode: resp.StatusCode}
		events.API.Failure("user:find", lerr)
		return User{}, lerr
	}
	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		events.API.Failure("user:find", err)
		return User{}, fmt.Errorf("find user: decode: %w", err)
	}
	events.API.Success("user:find")
	return user, nil
}

// ListCategories fetches the full category collection.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	endpoint := c.baseURL + "/category/list"
	events.API.Request("category:list", "")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		events.API.Failure("category:list", err)
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		ferr := &FetchError{StatusCode: resp.StatusCode}
		events.API.Failure("category:list", ferr)
		return nil, ferr
	}
	var categories []Category
	if err := json.NewDecoder(resp.Body).Decode(&categories); err != nil {
		events.API.Failure("category:list", err)
		return nil, fmt.Errorf("list categories: decode: %w", err)
	}
	events.API.Success("category:list")
	return categories, nil
}

// CreateCategory adds a new category and returns the stored record.
func (c *Client) CreateCategory(ctx context.Context, req CategoryRequest) (Category, error) {
	endpoint := c.baseURL + "/category/add-category"
	return c.writeCategory(ctx, "category:add", http.MethodPost, endpoint, &req)
}

// EditCategory applies a partial update to the category with the given id.
func (c *Client) EditCategory(ctx context.Context, id string, req CategoryRequest) (Category, error) {
	endpoint := c.baseURL + "/category/edit-category/" + url.PathEscape(id)
	return c.writeCategory(ctx, "category:edit", http.MethodPost, endpoint, &req)
}

// DeleteCategory removes the category with the given id and returns the
// backend's plain-text confirmation.
func (c *Client) DeleteCategory(ctx context.Context, id string) (string, error) {
	endpoint := c.baseURL + "/category/delete-category/" + url.PathEscape(id)
	events.API.Request("category:delete", id)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("delete category: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		events.API.Failure("category:delete", err)
		return "", fmt.Errorf("delete category: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		werr := &WriteError{Op: "category:delete", StatusCode: resp.StatusCode}
		events.API.Failure("category:delete", werr)
		return "", werr
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		events.API.Failure("category:delete", err)
		return "", fmt.Errorf("delete category: read body: %w", err)
	}
	events.API.Success("category:delete")
	return string(body), nil
}

func (c *Client) writeCategory(ctx context.Context, op, method, endpoint string, body *CategoryRequest) (Category, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return Category{}, fmt.Errorf("%s: marshal: %w", op, err)
	}
	events.API.Request(op, endpoint)

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(payload))
	if err != nil {
		return Category{}, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		events.API.Failure(op, err)
		return Category{}, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		werr := &WriteError{Op: op, StatusCode: resp.StatusCode}
		events.API.Failure(op, werr)
		return Category{}, werr
	}
	var category Category
	if err := json.NewDecoder(resp.Body).Decode(&category); err != nil {
		events.API.Failure(op, err)
		return Category{}, fmt.Errorf("%s: decode: %w", op, err)
	}
	events.API.Success(op)
	return category, nil
}
