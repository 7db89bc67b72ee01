package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/BakeWatt_Go/internal/cookbook"
)

// FormatAmountResponse pairs a quantity with its display form
type FormatAmountResponse struct {
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

// HandleFormatAmount renders a quantity the way recipe instructions do
// @Summary Format amount
// @Description Renders a quantity with fraction glyphs, e.g. 2.25 as "2 ¼"
// @Tags recipes
// @Produce json
// @Param value query number true "Quantity to format"
// @Success 200 {object} FormatAmountResponse
// @Failure 400 {object} ErrorResponse
// @Router /format/amount [get]
func HandleFormatAmount(service cookbook.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := GetQueryParam(r, w, "value")
		if !ok {
			return
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidValueParam)
			return
		}

		formatted, err := service.FormatAmount(r.Context(), value)
		if err != nil {
			respondServiceError(w, r, ErrMsgFormatAmountFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, FormatAmountResponse{Value: value, Formatted: formatted})
	}
}
