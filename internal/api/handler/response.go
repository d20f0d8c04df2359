package handler

import (
	"encoding/json"
	"net/http"

	"github.com/roselab/warehouse/internal/errs"
	"github.com/rs/zerolog/log"
)

// ErrorResponse 錯誤回應統一格式
// detail為字串; 驗證錯誤時detail為欄位錯誤陣列
type ErrorResponse struct {
	Detail any `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			log.Error().Err(err).Msg("failed to encode response body")
		}
	}
}

// writeError 將領域錯誤轉換為http status, 內部錯誤不洩漏細節
func writeError(w http.ResponseWriter, err error) {
	domainErr := errs.AsError(err)

	switch domainErr.Code {
	case errs.ValidationCode:
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Detail: domainErr.Fields})
	case errs.NotFoundCode:
		writeJSON(w, http.StatusNotFound, ErrorResponse{Detail: domainErr.Message})
	case errs.BusinessRuleCode:
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Detail: domainErr.Message})
	default:
		log.Error().Err(domainErr).Msg("internal server error")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Detail: errs.ErrStrMap[errs.InternalCode]})
	}
}

func writeValidationError(w http.ResponseWriter, fields []errs.FieldError) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Detail: fields})
}

func writeBadBody(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Detail: "invalid request body"})
}
