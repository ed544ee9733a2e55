package workflow

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hashsign/hashsign/core"
)

// Handler handles the workflow HTTP surface
type Handler interface {
	Onboard(c echo.Context) error
	List(c echo.Context) error
	Create(c echo.Context) error
	Sign(c echo.Context) error
	View(c echo.Context) error
}

type handler struct {
	service core.WorkflowService
}

// NewHandler creates a new workflow handler
func NewHandler(service core.WorkflowService) Handler {
	return &handler{service: service}
}

// Onboard is for Handling HTTP Post Method
func (h handler) Onboard(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Workflow.Handler.Onboard")
	defer span.End()

	account := c.Param("account")
	if err := h.service.Onboard(ctx, account); err != nil {
		span.RecordError(err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// List is for Handling HTTP Get Method
func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Workflow.Handler.List")
	defer span.End()

	account := c.Param("account")
	documents, err := h.service.ListDocuments(ctx, account)
	if err != nil {
		span.RecordError(err)
		return respondError(c, err)
	}

	views := make([]documentView, 0, len(documents))
	for _, d := range documents {
		views = append(views, newDocumentView(d))
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": listResponse{Documents: views}})
}

// Create is for Handling HTTP Post Method. The request is multipart, the
// way the original upload form submits it: a file plus a comma-separated
// signer list.
func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Workflow.Handler.Create")
	defer span.End()

	account := c.Param("account")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "could not read file"})
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "could not read file"})
	}

	signers := splitSigners(c.FormValue("signers"))

	documentID, err := h.service.CreateDocument(ctx, account, payload, signers)
	if err != nil {
		span.RecordError(err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": createResponse{ID: documentID}})
}

// Sign is for Handling HTTP Post Method
func (h handler) Sign(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Workflow.Handler.Sign")
	defer span.End()

	owner := c.Param("account")
	documentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "invalid document id"})
	}

	var request signRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "invalid request body"})
	}
	if request.Signer == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "signer is required"})
	}

	if err := h.service.SignDocument(ctx, request.Signer, owner, uint(documentID)); err != nil {
		span.RecordError(err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// View is for Handling HTTP Get Method. It streams the payload bytes back
// for local rendering.
func (h handler) View(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Workflow.Handler.View")
	defer span.End()

	contentID := c.Param("cid")
	payload, err := h.service.ViewDocument(ctx, contentID)
	if err != nil {
		span.RecordError(err)
		return respondError(c, err)
	}

	return c.Blob(http.StatusOK, "application/octet-stream", payload)
}

func splitSigners(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	signers := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			signers = append(signers, p)
		}
	}
	return signers
}

func respondError(c echo.Context, err error) error {
	switch {
	case errors.As(err, &core.ErrorPayloadTooLarge{}):
		return c.JSON(http.StatusRequestEntityTooLarge, echo.Map{"status": "error", "error": err.Error()})
	case errors.As(err, &core.ErrorSignerListEmpty{}),
		errors.As(err, &core.ErrorDuplicateSigner{}):
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": err.Error()})
	case errors.As(err, &core.ErrorNotRegistered{}),
		errors.As(err, &core.ErrorDocumentNotFound{}),
		errors.As(err, &core.ErrorNotFound{}):
		return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "error": err.Error()})
	case errors.As(err, &core.ErrorNotASigner{}):
		return c.JSON(http.StatusForbidden, echo.Map{"status": "error", "error": err.Error()})
	case errors.As(err, &core.ErrorAlreadySigned{}),
		errors.As(err, &core.ErrorAlreadyCompleted{}),
		errors.As(err, &core.ErrorAlreadyRegistered{}):
		return c.JSON(http.StatusConflict, echo.Map{"status": "error", "error": err.Error()})
	case errors.As(err, &core.ErrorFetchFailed{}),
		errors.As(err, &core.ErrorUploadFailed{}),
		errors.As(err, &core.ErrorTransport{}),
		errors.As(err, &core.ErrorTransactionRejected{}):
		return c.JSON(http.StatusBadGateway, echo.Map{"status": "error", "error": err.Error()})
	default:
		return err
	}
}
