package handler

import (
	"net/http"

	"github.com/mtlprog/timecalc/internal/domain"
	"github.com/mtlprog/timecalc/internal/handler/dto"
)

// handleCreateCalculator starts a calculator session.
// @Summary Create a calculator
// @Tags calculators
// @Produce json
// @Success 201 {object} dto.CalculatorResponse
// @Router /calculators [post]
func (h *Handler) handleCreateCalculator(w http.ResponseWriter, r *http.Request) {
	c, err := h.calculatorService.Create(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToCalculatorResponse(c))
}

// handleGetCalculator returns a calculator session.
// @Summary Get a calculator
// @Tags calculators
// @Produce json
// @Param id path string true "Calculator ID"
// @Success 200 {object} dto.CalculatorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /calculators/{id} [get]
func (h *Handler) handleGetCalculator(w http.ResponseWriter, r *http.Request) {
	calculatorID, ok := extractID(w, r)
	if !ok {
		return
	}

	c, err := h.calculatorService.Get(r.Context(), calculatorID)
	h.respondCalculator(w, c, err)
}

// handlePressDigits appends digits to the pending input.
// @Summary Press digits
// @Description Non-digit characters are ignored
// @Tags calculators
// @Accept json
// @Produce json
// @Param id path string true "Calculator ID"
// @Param request body dto.PressDigitsRequest true "Digits"
// @Success 200 {object} dto.CalculatorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /calculators/{id}/digits [post]
func (h *Handler) handlePressDigits(w http.ResponseWriter, r *http.Request) {
	calculatorID, ok := extractID(w, r)
	if !ok {
		return
	}

	var req dto.PressDigitsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.calculatorService.PressDigits(r.Context(), calculatorID, req.Digits)
	h.respondCalculator(w, c, err)
}

// handleApplyUnit adds the pending input as days, hours or minutes.
// @Summary Apply unit
// @Tags calculators
// @Produce json
// @Param id path string true "Calculator ID"
// @Param unit path string true "Unit" Enums(d, h, m)
// @Success 200 {object} dto.CalculatorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /calculators/{id}/units/{unit} [post]
func (h *Handler) handleApplyUnit(w http.ResponseWriter, r *http.Request) {
	calculatorID, ok := extractID(w, r)
	if !ok {
		return
	}

	c, err := h.calculatorService.ApplyUnit(r.Context(), calculatorID, r.PathValue("unit"))
	h.respondCalculator(w, c, err)
}

// handlePlus adds the current duration to the accumulator.
// @Summary Plus
// @Tags calculators
// @Produce json
// @Param id path string true "Calculator ID"
// @Success 200 {object} dto.CalculatorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /calculators/{id}/plus [post]
func (h *Handler) handlePlus(w http.ResponseWriter, r *http.Request) {
	calculatorID, ok := extractID(w, r)
	if !ok {
		return
	}

	c, err := h.calculatorService.Plus(r.Context(), calculatorID)
	h.respondCalculator(w, c, err)
}

// handleEquals adds the current duration to the accumulator.
// @Summary Equals
// @Tags calculators
// @Produce json
// @Param id path string true "Calculator ID"
// @Success 200 {object} dto.CalculatorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /calculators/{id}/equals [post]
func (h *Handler) handleEquals(w http.ResponseWriter, r *http.Request) {
	calculatorID, ok := extractID(w, r)
	if !ok {
		return
	}

	c, err := h.calculatorService.Equals(r.Context(), calculatorID)
	h.respondCalculator(w, c, err)
}

// handleClear resets the session.
// @Summary Clear
// @Tags calculators
// @Produce json
// @Param id path string true "Calculator ID"
// @Success 200 {object} dto.CalculatorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /calculators/{id}/clear [post]
func (h *Handler) handleClear(w http.ResponseWriter, r *http.Request) {
	calculatorID, ok := extractID(w, r)
	if !ok {
		return
	}

	c, err := h.calculatorService.Clear(r.Context(), calculatorID)
	h.respondCalculator(w, c, err)
}

func (h *Handler) respondCalculator(w http.ResponseWriter, c *domain.Calculator, err error) {
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.ToCalculatorResponse(c))
}
