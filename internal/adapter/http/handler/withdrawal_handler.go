package handler

import (
	"fmt"
	"net/http"

	"atm-withdrawal/internal/adapter/http/dto"
	"atm-withdrawal/internal/adapter/http/middleware"
	"atm-withdrawal/internal/core/domain"
	"atm-withdrawal/internal/core/ports"
	"atm-withdrawal/pkg/apperror"
	"atm-withdrawal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	// ServiceName is reported by the liveness endpoint.
	ServiceName = "ATM Withdrawal API"

	// maxBodyBytes is the request body limit applied by the router.
	maxBodyBytes = 1 << 20

	// maxResponseNotes bounds how many notes a single response may list.
	maxResponseNotes = 100_000
)

// WithdrawalHandler handles the withdrawal API.
type WithdrawalHandler struct {
	calc      ports.NoteCalculator
	currency  domain.Currency
	maxAmount decimal.NullDecimal
	log       zerolog.Logger
}

// NewWithdrawalHandler creates a new WithdrawalHandler. An invalid maxAmount
// disables the per-request cap.
func NewWithdrawalHandler(calc ports.NoteCalculator, currency domain.Currency, maxAmount decimal.NullDecimal, log zerolog.Logger) *WithdrawalHandler {
	return &WithdrawalHandler{calc: calc, currency: currency, maxAmount: maxAmount, log: log}
}

// Withdraw handles POST /api/withdrawal.
func (h *WithdrawalHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, maxBodyBytes))
		return
	}

	result, err := h.dispense(c, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WithdrawalResponse{
		Notes:       dto.Amounts(result.Notes()),
		TotalAmount: dto.Amount(result.TotalAmount()),
		NoteCount:   result.NoteCount(),
	})
}

// Denominations handles GET /api/withdrawal/denominations.
func (h *WithdrawalHandler) Denominations(c *gin.Context) {
	resp := dto.DenominationsResponse{
		Currency:      h.currency.Code(),
		Symbol:        h.currency.Symbol,
		Name:          h.currency.Name,
		Denominations: dto.Amounts(h.calc.Denominations().Values()),
	}
	if h.maxAmount.Valid {
		max := dto.Amount(h.maxAmount.Decimal)
		resp.MaxAmount = &max
	}
	response.OK(c, resp)
}

// Liveness handles GET /api/withdrawal/health.
func Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ServiceStatusResponse{Status: "healthy", Service: ServiceName})
}

// dispense runs the calculator for one request. It publishes the amount and
// note count for the audit middleware and returns client-facing errors only.
func (h *WithdrawalHandler) dispense(c *gin.Context, amount decimal.NullDecimal) (*domain.WithdrawalResult, error) {
	log := h.log.With().Str("request_id", middleware.GetRequestID(c)).Logger()

	// checked before the amount is ever rendered as a string
	if amount.Valid && !dto.AmountWithinPrecision(amount.Decimal) {
		log.Warn().Int32("exponent", amount.Decimal.Exponent()).Msg("withdrawal amount exceeds supported precision")
		return nil, apperror.Validation(msgTooManyDigits)
	}

	if amount.Valid {
		c.Set(middleware.CtxWithdrawalAmount, amount.Decimal.String())
	}
	log.Info().Str("amount", amountField(amount)).Msg("processing withdrawal")

	if h.maxAmount.Valid && amount.Valid && amount.Decimal.GreaterThan(h.maxAmount.Decimal) {
		log.Warn().Str("amount", amount.Decimal.String()).Msg("withdrawal above configured maximum")
		return nil, apperror.Validation(fmt.Sprintf("Amount exceeds the maximum withdrawal of %s",
			h.currency.Format(h.maxAmount.Decimal)))
	}

	result, err := h.calc.Calculate(amount)
	if err != nil {
		appErr := toAppError(err, h.currency.Format)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			log.Error().Err(err).Msg("withdrawal failed")
		} else {
			log.Warn().Str("error_type", appErr.Code).Str("reason", err.Error()).Msg("withdrawal rejected")
		}
		return nil, appErr
	}

	if result.NoteCount() > maxResponseNotes {
		log.Warn().Int64("note_count", result.NoteCount()).Msg("withdrawal needs too many notes")
		return nil, apperror.Validation(fmt.Sprintf("Amount would require more than %d notes", maxResponseNotes))
	}

	c.Set(middleware.CtxNoteCount, result.NoteCount())
	log.Info().
		Str("total", result.TotalAmount().String()).
		Int64("note_count", result.NoteCount()).
		Msg("withdrawal dispensed")

	return result, nil
}

func amountField(amount decimal.NullDecimal) string {
	if !amount.Valid {
		return "null"
	}
	return amount.Decimal.String()
}
