package handler

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"atm-withdrawal/internal/adapter/http/dto"
	"atm-withdrawal/internal/core/domain"
	"atm-withdrawal/pkg/apperror"
	"atm-withdrawal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templatesFS embed.FS

// formulaTerms caps the notes spelled out in the "R100.00 + R20.00" line.
const formulaTerms = 12

// Templates returns the parsed HTML templates for the form client.
func Templates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.html")
}

type formView struct {
	CurrencyName string
	CurrencyCode string
	Notes        []string
	MaxAmount    string
	Amount       string
	Result       *formResult
	Error        *formError
}

type formResult struct {
	Total     string
	NoteCount int64
	Formula   string
	Breakdown []breakdownRow
}

type breakdownRow struct {
	Note     string
	Count    int64
	Subtotal string
}

type formError struct {
	Type    string
	Message string
}

// FormPage handles GET /.
func (h *WithdrawalHandler) FormPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.newFormView(""))
}

// FormSubmit handles POST / from the HTML form.
func (h *WithdrawalHandler) FormSubmit(c *gin.Context) {
	var form dto.WithdrawalForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderFormError(c, form.Amount, bindError(err, maxBodyBytes))
		return
	}
	dto.SanitizeStruct(&form)

	view := h.newFormView(form.Amount)
	if form.Amount == "" {
		h.renderFormError(c, form.Amount, apperror.Validation("Please enter an amount"))
		return
	}
	amount, err := decimal.NewFromString(form.Amount)
	if err != nil {
		h.renderFormError(c, form.Amount, apperror.Validation("Amount must be a valid number"))
		return
	}

	result, err := h.dispense(c, decimal.NewNullDecimal(amount))
	if err != nil {
		h.renderFormError(c, form.Amount, err)
		return
	}

	view.Result = h.newFormResult(result)
	c.HTML(http.StatusOK, "index.html", view)
}

func (h *WithdrawalHandler) newFormView(amount string) formView {
	view := formView{
		CurrencyName: h.currency.Name,
		CurrencyCode: h.currency.Code(),
		Amount:       amount,
	}
	for _, d := range h.calc.Denominations().Values() {
		view.Notes = append(view.Notes, h.currency.Format(d))
	}
	if h.maxAmount.Valid {
		view.MaxAmount = h.currency.Format(h.maxAmount.Decimal)
	}
	return view
}

func (h *WithdrawalHandler) newFormResult(result *domain.WithdrawalResult) *formResult {
	res := &formResult{
		Total:     h.currency.Format(result.TotalAmount()),
		NoteCount: result.NoteCount(),
	}

	terms := make([]string, 0, formulaTerms)
	for _, b := range result.Breakdown() {
		res.Breakdown = append(res.Breakdown, breakdownRow{
			Note:     h.currency.Format(b.Denomination),
			Count:    b.Count,
			Subtotal: h.currency.Format(b.Total()),
		})
		for i := int64(0); i < b.Count && len(terms) < formulaTerms; i++ {
			terms = append(terms, h.currency.Format(b.Denomination))
		}
	}
	res.Formula = strings.Join(terms, " + ")
	if result.NoteCount() > formulaTerms {
		res.Formula += " + …"
	}
	return res
}

func (h *WithdrawalHandler) renderFormError(c *gin.Context, amount string, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.InternalError(err)
	}
	c.Set(response.ErrorTypeKey, appErr.Code)

	view := h.newFormView(amount)
	view.Error = &formError{Type: appErr.Code, Message: appErr.Message}
	c.HTML(appErr.HTTPStatus, "index.html", view)
}
