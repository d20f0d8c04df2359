package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/roselab/warehouse/internal/constants"
)

// parseIDParam 解析路徑上的整數id, 非法值當作查無資料處理
func parseIDParam(r *http.Request, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// parsePagination 解析skip/limit query, 非法值回退預設
func parsePagination(r *http.Request) (skip, limit int) {
	skip = 0
	limit = constants.DefaultPageLimit

	if raw := r.URL.Query().Get("skip"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			skip = v
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			limit = v
		}
	}
	if limit > constants.MaxPageLimit {
		limit = constants.MaxPageLimit
	}
	return skip, limit
}
