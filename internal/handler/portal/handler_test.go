package portal

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightwell-health/portal/internal/model"
	"github.com/brightwell-health/portal/internal/store"
)

var billerID = uuid.MustParse("70000000-0000-0000-0000-000000000001")

func setup(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(store.Seed{
		Practices: []model.Practice{{ID: "p1", Name: "One"}, {ID: "p2", Name: "Two"}},
		Users: []model.User{
			{Base: model.Base{ID: billerID}, Name: "Dana", Role: model.RoleBiller, PracticeID: "p1"},
		},
	}, nil, nil)

	r := gin.New()
	NewHandler(st).RegisterRoutes(r.Group("/api/v1"))
	return r, st
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestGetPortalWithoutSelection(t *testing.T) {
	r, _ := setup(t)

	w := get(r, "/api/v1/portal")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Portal string   `json:"portal"`
			Views  []string `json:"views"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "selection", resp.Data.Portal)
	assert.Empty(t, resp.Data.Views)
}

func TestGetPortalForSelectedRole(t *testing.T) {
	r, st := setup(t)
	st.SetCurrentUser(billerID)

	w := get(r, "/api/v1/portal")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Portal string     `json:"portal"`
			Views  []string   `json:"views"`
			User   model.User `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "biller", resp.Data.Portal)
	assert.Contains(t, resp.Data.Views, "claims")
	assert.Equal(t, "Dana", resp.Data.User.Name)
}

func TestEveryRoleHasAPortal(t *testing.T) {
	for _, role := range []model.Role{model.RoleBiller, model.RolePracticeAdmin, model.RoleProvider, model.RoleStaff, model.RolePatient} {
		desc, ok := portals[role]
		require.True(t, ok, "role %s has no portal mapping", role)
		assert.NotEmpty(t, desc.Portal)
		assert.NotEmpty(t, desc.Views)
	}
}

func TestListUsersAndPractices(t *testing.T) {
	r, _ := setup(t)

	w := get(r, "/api/v1/portal/users")
	require.Equal(t, http.StatusOK, w.Code)
	var users struct {
		Data []model.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users.Data, 1)

	w = get(r, "/api/v1/portal/practices")
	require.Equal(t, http.StatusOK, w.Code)
	var practices struct {
		Data []model.Practice `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &practices))
	assert.Len(t, practices.Data, 2)
}
