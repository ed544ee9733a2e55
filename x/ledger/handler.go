package ledger

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hashsign/hashsign/core"
)

// Handler exposes the embedded ledger over HTTP so a remote node's client
// has a counterpart. Typed errors cross the boundary as stable wire codes.
type Handler interface {
	Read(c echo.Context) error
	Submit(c echo.Context) error
}

type handler struct {
	ledger core.Ledger
}

// NewHandler creates a new ledger handler
func NewHandler(ledger core.Ledger) Handler {
	return &handler{ledger: ledger}
}

type transitionRequest struct {
	Function string `json:"function"`
	Args     []any  `json:"args"`
}

// Read is for Handling HTTP Get Method
func (h handler) Read(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Ledger.Handler.Read")
	defer span.End()

	account := c.Param("account")
	resourceType := c.Param("type")

	resource, err := h.ledger.Read(ctx, account, resourceType)
	if err != nil {
		if errors.As(err, &core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "error": wireError{Code: codeNotFound}})
		}
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": resource})
}

// Submit is for Handling HTTP Post Method
func (h handler) Submit(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Ledger.Handler.Submit")
	defer span.End()

	account := c.Param("account")

	var request transitionRequest
	if err := c.Bind(&request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": wireError{Code: codeRejected, Message: "malformed transition"}})
	}

	committed, err := h.ledger.Submit(ctx, account, request.Function, request.Args)
	if err != nil {
		span.RecordError(err)
		return c.JSON(statusOf(err), echo.Map{"status": "error", "error": toWireError(err)})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": committed})
}

func statusOf(err error) int {
	switch {
	case errors.As(err, &core.ErrorNotFound{}),
		errors.As(err, &core.ErrorNotRegistered{}),
		errors.As(err, &core.ErrorDocumentNotFound{}):
		return http.StatusNotFound
	case errors.As(err, &core.ErrorAlreadyRegistered{}),
		errors.As(err, &core.ErrorAlreadySigned{}),
		errors.As(err, &core.ErrorAlreadyCompleted{}):
		return http.StatusConflict
	case errors.As(err, &core.ErrorNotASigner{}):
		return http.StatusForbidden
	case errors.As(err, &core.ErrorSignerListEmpty{}),
		errors.As(err, &core.ErrorDuplicateSigner{}):
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}
