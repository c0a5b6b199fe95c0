package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/user-management-api/internal/config"
	"github.com/MKhiriev/user-management-api/internal/logger"
	"github.com/MKhiriev/user-management-api/internal/utils"
	"github.com/MKhiriev/user-management-api/models"
)

const (
	usersPath   = "/api/users"
	versionPath = "/api/version/"
)

type httpUsersAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPUsersAdapter constructs an HTTP/REST implementation of [UsersAPI].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL, the
// request timeout and the API key header.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPUsersAdapter(cfg config.ClientAdapter, logger *logger.Logger) (UsersAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	logger.Debug().Str("base_url", baseURL).Msg("users API adapter created")

	return &httpUsersAdapter{
		client: utils.NewAPIClient(baseURL, cfg.RequestTimeout, cfg.APIKey),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListUsers implements [UsersAPI]. Zero page values are left out of the
// query so the server applies its defaults.
func (h *httpUsersAdapter) ListUsers(ctx context.Context, req models.PageRequest) (models.Page, error) {
	var users []models.User

	r := h.client.R().
		SetContext(ctx).
		SetResult(&users)
	if req.Page != 0 {
		r.SetQueryParam("page", strconv.Itoa(req.Page))
	}
	if req.PageSize != 0 {
		r.SetQueryParam("pageSize", strconv.Itoa(req.PageSize))
	}

	resp, err := r.Get(usersPath)
	if err != nil {
		return models.Page{}, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Page{}, err
	}

	header := resp.Header()
	return models.Page{
		Page:     headerInt(header.Get("X-Page")),
		PageSize: headerInt(header.Get("X-PageSize")),
		Total:    headerInt(header.Get("X-Total-Count")),
		Users:    users,
	}, nil
}

// GetUser implements [UsersAPI].
func (h *httpUsersAdapter) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&user).
		Get(usersPath + "/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// CreateUser implements [UsersAPI].
func (h *httpUsersAdapter) CreateUser(ctx context.Context, req models.UserRequest) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&user).
		Post(usersPath)
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	h.logger.Debug().Str("id", user.ID).Str("location", resp.Header().Get("Location")).Msg("user created")
	return user, nil
}

// UpdateUser implements [UsersAPI].
func (h *httpUsersAdapter) UpdateUser(ctx context.Context, id string, req models.UserRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(req).
		Put(usersPath + "/{id}")
	if err != nil {
		return fmt.Errorf("update user request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteUser implements [UsersAPI].
func (h *httpUsersAdapter) DeleteUser(ctx context.Context, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete(usersPath + "/{id}")
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version implements [UsersAPI].
func (h *httpUsersAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func headerInt(value string) int {
	n, _ := strconv.Atoi(value)
	return n
}
