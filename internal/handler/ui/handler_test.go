package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightwell-health/portal/internal/model"
	"github.com/brightwell-health/portal/internal/presenter"
	"github.com/brightwell-health/portal/internal/store"
)

func setup(t *testing.T) (*gin.Engine, *store.Store, *presenter.ToastPresenter) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(store.Seed{}, nil, nil)
	toast, err := presenter.NewToastPresenter(st, nil, time.Minute, nil, nil)
	require.NoError(t, err)
	require.NoError(t, toast.Start(context.Background()))
	t.Cleanup(toast.Stop)
	modal := presenter.NewModalPresenter(st)

	r := gin.New()
	NewHandler(st, toast, modal, nil).RegisterRoutes(r.Group("/api/v1"))
	return r, st, toast
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestShowToastEndpoint(t *testing.T) {
	r, st, _ := setup(t)

	w := doJSON(r, http.MethodPost, "/api/v1/ui/toast", gin.H{"message": "saved", "type": "success"})
	assert.Equal(t, http.StatusOK, w.Code)

	snap := st.State()
	require.NotNil(t, snap.Toast)
	assert.Equal(t, "saved", snap.Toast.Message)
	assert.Equal(t, model.ToastSuccess, snap.Toast.Type)
}

func TestShowToastValidation(t *testing.T) {
	r, st, _ := setup(t)

	// Missing message.
	w := doJSON(r, http.MethodPost, "/api/v1/ui/toast", gin.H{"type": "info"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown type.
	w = doJSON(r, http.MethodPost, "/api/v1/ui/toast", gin.H{"message": "x", "type": "loud"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Nil(t, st.State().Toast)
}

func TestDismissToastIdempotent(t *testing.T) {
	r, st, _ := setup(t)

	st.ShowToast("bye", model.ToastInfo)
	w := doJSON(r, http.MethodDelete, "/api/v1/ui/toast", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, st.State().Toast)

	// Second dismiss with nothing showing still succeeds.
	w = doJSON(r, http.MethodDelete, "/api/v1/ui/toast", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestModalLifecycleOverHTTP(t *testing.T) {
	r, st, _ := setup(t)

	w := doJSON(r, http.MethodPost, "/api/v1/ui/modal", gin.H{"title": "Hi", "body": "there"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.OverlayModal, st.State().Overlay.Kind)

	w = doJSON(r, http.MethodDelete, "/api/v1/ui/modal", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.OverlayNone, st.State().Overlay.Kind)

	// Closing again is harmless.
	w = doJSON(r, http.MethodDelete, "/api/v1/ui/modal", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCloseModalLeavesIdleWarning(t *testing.T) {
	r, st, _ := setup(t)

	st.OpenIdleWarning()
	w := doJSON(r, http.MethodDelete, "/api/v1/ui/modal", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.OverlayIdleWarning, st.State().Overlay.Kind, "the modal close channel cannot dismiss the idle warning")
}

func TestGetSurfaces(t *testing.T) {
	r, st, _ := setup(t)

	st.OpenModal(model.ModalContent{Title: "T", Body: "B"})
	st.ShowToast("hello", model.ToastInfo)

	w := doJSON(r, http.MethodGet, "/api/v1/ui", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Modal presenter.ModalView `json:"modal"`
			Toast *model.Toast        `json:"toast"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.True(t, resp.Data.Modal.Open)
	require.NotNil(t, resp.Data.Toast)
	assert.Equal(t, "hello", resp.Data.Toast.Message)
}
