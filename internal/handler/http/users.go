// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/user-management-api/internal/logger"
	"github.com/MKhiriev/user-management-api/internal/utils"
	"github.com/MKhiriev/user-management-api/models"
)

const (
	maxBodyBytes = 1 << 20

	usersPath = "/api/users"

	headerPage       = "X-Page"
	headerPageSize   = "X-PageSize"
	headerTotalCount = "X-Total-Count"
	headerCount      = "X-Count"
)

// listUsers serves GET /api/users?page=&pageSize=. Missing or unparsable
// values fall back to the defaults; the service clamps the rest.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()
	pageRequest := models.PageRequest{
		Page:     queryInt(query.Get("page")),
		PageSize: queryInt(query.Get("pageSize")),
	}

	page, err := h.services.UserService.ListUsers(r.Context(), pageRequest)
	if err != nil {
		return fmt.Errorf("error listing users: %w", err)
	}

	users := page.Users
	if users == nil {
		users = []models.User{}
	}

	header := w.Header()
	header.Set(headerPage, strconv.Itoa(page.Page))
	header.Set(headerPageSize, strconv.Itoa(page.PageSize))
	header.Set(headerTotalCount, strconv.Itoa(page.Total))
	header.Set(headerCount, strconv.Itoa(page.Count()))

	_, err = utils.WriteJSON(w, users, http.StatusOK)
	return err
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) error {
	user, err := h.services.UserService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, user, http.StatusOK)
	return err
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) error {
	var request models.UserRequest
	if err := decodeJSON(w, r, &request); err != nil {
		return err
	}

	user, err := h.services.UserService.CreateUser(r.Context(), request)
	if err != nil {
		return err
	}

	logger.FromRequest(r).Debug().Str("id", user.ID).Msg("user created")

	w.Header().Set("Location", usersPath+"/"+user.ID)
	_, err = utils.WriteJSON(w, user, http.StatusCreated)
	return err
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) error {
	var request models.UserRequest
	if err := decodeJSON(w, r, &request); err != nil {
		return err
	}

	if err := h.services.UserService.UpdateUser(r.Context(), chi.URLParam(r, "id"), request); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) error {
	if err := h.services.UserService.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// decodeJSON reads exactly one JSON value from a body of at most
// maxBodyBytes into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	if err := decoder.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return ErrRequestBodyTooLarge
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after the JSON value", ErrInvalidJSON)
	}

	return nil
}

// queryInt parses a query value, returning 0 for anything that is not an
// integer so that pagination falls back to its defaults.
func queryInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
