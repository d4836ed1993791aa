package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/vape_shop/internal/admin"
	"github.com/Skotchmaster/vape_shop/internal/assistant"
	"github.com/Skotchmaster/vape_shop/internal/cart"
	"github.com/Skotchmaster/vape_shop/internal/catalog"
	"github.com/Skotchmaster/vape_shop/internal/checkout"
	"github.com/Skotchmaster/vape_shop/internal/models"
	"github.com/Skotchmaster/vape_shop/internal/search"
	"github.com/Skotchmaster/vape_shop/internal/snapshot"
)

var testSecret = []byte("test-jwt-secret")

type testEnv struct {
	T       *testing.T
	E       *echo.Echo
	Catalog *catalog.Store
	Cart    *cart.Store
	Orders  []checkout.Record
}

func (env *testEnv) Notify(_ context.Context, r checkout.Record) error {
	env.Orders = append(env.Orders, r)
	return nil
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	storage, err := snapshot.OpenBolt(filepath.Join(t.TempDir(), "shop.bolt"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	products, err := catalog.Open(ctx, storage, catalog.DefaultProducts())
	require.NoError(t, err)
	carts, err := cart.Open(ctx, storage)
	require.NoError(t, err)

	auth, err := admin.NewAuthenticator("Karas", "Karas", "", testSecret, time.Hour)
	require.NoError(t, err)

	env := &testEnv{T: t, E: echo.New(), Catalog: products, Cart: carts}
	svc := checkout.NewService(carts, env, 0)

	Register(env.E, &Deps{
		CatalogHandler:   &CatalogHTTP{Store: products, Search: search.Local{Products: products.List}},
		CartHandler:      &CartHTTP{Cart: carts, Catalog: products},
		CheckoutHandler:  &CheckoutHTTP{Svc: svc},
		AdminHandler:     &AdminHTTP{Auth: auth, Catalog: products},
		AssistantHandler: &AssistantHTTP{Responder: assistant.CatalogResponder{Products: products.List}},
		JWTSecret:        testSecret,
	})
	return env
}

func (env *testEnv) doJSONRequest(method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) login() *http.Cookie {
	env.T.Helper()

	rec := env.doJSONRequest(http.MethodPost, "/api/v1/admin/login", map[string]string{"username": "Karas", "password": "Karas"})
	require.Equal(env.T, http.StatusOK, rec.Code, rec.Body.String())

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "accessToken" {
			return &http.Cookie{Name: ck.Name, Value: ck.Value}
		}
	}
	env.T.Fatal("login did not set accessToken cookie")
	return nil
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func productByName(t *testing.T, s *catalog.Store, name string) models.Product {
	t.Helper()
	for _, p := range s.List() {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("product %q not found", name)
	return models.Product{}
}
