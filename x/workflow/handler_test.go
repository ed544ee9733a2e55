package workflow

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/hashsign/hashsign/core"
	mock_core "github.com/hashsign/hashsign/core/mock"
)

func TestHandlerCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockWorkflowService(ctrl)
	mockService.EXPECT().
		CreateDocument(gomock.Any(), "alice", []byte("contract body"), []string{"alice", "bob"}).
		Return(uint(1), nil)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "contract.pdf")
	assert.NoError(t, err)
	_, err = part.Write([]byte("contract body"))
	assert.NoError(t, err)
	err = writer.WriteField("signers", "alice, bob")
	assert.NoError(t, err)
	writer.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("account")
	c.SetParamValues("alice")

	h := NewHandler(mockService)
	err = h.Create(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":1`)
}

func TestHandlerSignStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"success", nil, http.StatusOK},
		{"unknown document", core.NewErrorDocumentNotFound(), http.StatusNotFound},
		{"not a signer", core.NewErrorNotASigner(), http.StatusForbidden},
		{"already signed", core.NewErrorAlreadySigned(), http.StatusConflict},
		{"already completed", core.NewErrorAlreadyCompleted(), http.StatusConflict},
		{"ledger unreachable", core.NewErrorTransport(assert.AnError), http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mock_core.NewMockWorkflowService(ctrl)
			mockService.EXPECT().
				SignDocument(gomock.Any(), "bob", "alice", uint(1)).
				Return(tc.err)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"signer":"bob"}`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("account", "id")
			c.SetParamValues("alice", "1")

			h := NewHandler(mockService)
			err := h.Sign(c)
			assert.NoError(t, err)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestHandlerSignBadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockWorkflowService(ctrl)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"signer":""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("account", "id")
	c.SetParamValues("alice", "not-a-number")

	h := NewHandler(mockService)
	err := h.Sign(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("streams the payload", func(t *testing.T) {
		mockService := mock_core.NewMockWorkflowService(ctrl)
		mockService.EXPECT().ViewDocument(gomock.Any(), "QmPayload").Return([]byte("contract body"), nil)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("cid")
		c.SetParamValues("QmPayload")

		h := NewHandler(mockService)
		err := h.View(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "contract body", rec.Body.String())
	})

	t.Run("missing content is not found", func(t *testing.T) {
		mockService := mock_core.NewMockWorkflowService(ctrl)
		mockService.EXPECT().
			ViewDocument(gomock.Any(), "QmMissing").
			Return(nil, core.NewErrorFetchFailed(core.NewErrorNotFound()))

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("cid")
		c.SetParamValues("QmMissing")

		h := NewHandler(mockService)
		err := h.View(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSplitSigners(t *testing.T) {
	assert.Equal(t, []string{}, splitSigners(""))
	assert.Equal(t, []string{}, splitSigners("  "))
	assert.Equal(t, []string{"alice"}, splitSigners("alice"))
	assert.Equal(t, []string{"alice", "bob"}, splitSigners(" alice , bob ,"))
}
