package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"quickbite-api/config"
	"quickbite-api/handlers"
	"quickbite-api/models"
	"quickbite-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// setupTest wires a fresh sqlite database behind the real router. A single
// open connection serializes concurrent handler calls at the store, the
// same property the production database provides.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := config.Open(filepath.Join(t.TempDir(), "quickbite_test.db"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var raw []json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw), w.Body.String())
	out := make([]map[string]interface{}, 0, len(raw))
	for _, m := range raw {
		var item map[string]interface{}
		require.NoError(t, json.Unmarshal(m, &item))
		out = append(out, item)
	}
	return out
}

// register creates an account and returns the identity payload (id, email,
// role, riderId, token).
func register(t *testing.T, r *gin.Engine, email string, role models.Role, rider *handlers.RiderProfile) map[string]interface{} {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/register", handlers.RegisterRequest{
		Email:    email,
		Password: "secret123",
		Role:     role,
		Rider:    rider,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)
}

func adminToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/login", handlers.LoginRequest{
		Email:    models.AdminEmail,
		Password: models.AdminPassword,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode(t, w)["token"].(string)
}

// ownerWithStore registers a store owner, launches their store and adds the
// given menu items. Returns the owner identity, store id and item ids.
func ownerWithStore(t *testing.T, r *gin.Engine, email string, prices ...float64) (owner map[string]interface{}, storeID uint, itemIDs []uint) {
	t.Helper()
	owner = register(t, r, email, models.RoleStoreOwner, nil)
	token := owner["token"].(string)
	ownerID := uint(owner["id"].(float64))

	w := doJSON(t, r, http.MethodPost, "/store", handlers.CreateStoreRequest{
		OwnerID: ownerID,
		Name:    "Test Store",
		Address: "123 Main St",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	storeID = uint(decode(t, w)["id"].(float64))

	for i, price := range prices {
		w := doJSON(t, r, http.MethodPost, "/store/item", handlers.AddFoodItemRequest{
			StoreID: storeID,
			Name:    "Item " + string(rune('A'+i)),
			Price:   price,
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		itemIDs = append(itemIDs, uint(decode(t, w)["id"].(float64)))
	}
	return owner, storeID, itemIDs
}
