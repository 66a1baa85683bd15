package nuvemshop_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nuvemshop-descriptions/internal/application/ports"
	"github.com/jhoicas/nuvemshop-descriptions/internal/domain/entity"
	"github.com/jhoicas/nuvemshop-descriptions/internal/infrastructure/nuvemshop"
	"github.com/jhoicas/nuvemshop-descriptions/pkg/config"
	"github.com/jhoicas/nuvemshop-descriptions/pkg/logger"
)

// El cliente debe satisfacer los puertos de la aplicación.
var _ ports.CategoryAPI = (*nuvemshop.Client)(nil)
var _ ports.PlatformAuthorizer = (*nuvemshop.Client)(nil)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newTestClient(t *testing.T, srv *httptest.Server) *nuvemshop.Client {
	t.Helper()
	cfg := config.NuvemshopConfig{
		ClientID:     "client-123",
		ClientSecret: "secret-456",
		TokenURL:     srv.URL + "/apps/authorize/token",
		APIBaseURL:   srv.URL + "/2025-03",
		UserAgent:    "Nuvemshop-Category-Description-App",
		TimeoutSecs:  5,
	}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return nuvemshop.NewClient(cfg, log)
}

func testStore() *entity.Store {
	return &entity.Store{StoreID: "42", AccessToken: "tok-abc"}
}

// assertAPIHeaders verifica los headers que Nuvemshop exige en cada llamada,
// incluido el header de autenticación con nombre no estándar.
func assertAPIHeaders(t *testing.T, r *http.Request) {
	t.Helper()
	assert.Equal(t, "bearer tok-abc", r.Header.Get("Authentication"),
		"el header Authentication debe llevar el token con el prefijo bearer")
	assert.Equal(t, "Nuvemshop-Category-Description-App", r.Header.Get("User-Agent"))
	assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Authorize
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthorize_IntercambiaCodigoPorToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/apps/authorize/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client-123", r.PostForm.Get("client_id"))
		assert.Equal(t, "secret-456", r.PostForm.Get("client_secret"))
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "abc123", r.PostForm.Get("code"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok","token_type":"bearer","user_id":42,"expires_in":3600}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	token, err := client.Authorize(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "tok", token.AccessToken)
	assert.Equal(t, "42", token.ResolveStoreID(), "user_id numérico debe resolverse como string")
	assert.Equal(t, int64(3600), token.ExpiresIn)
	assert.NotEmpty(t, token.Raw, "el payload crudo debe conservarse para auditoría")
}

func TestAuthorize_PrefiereUserIDSobreStoreID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":"tok","user_id":"7","store_id":"99"}`))
	}))
	defer srv.Close()

	token, err := newTestClient(t, srv).Authorize(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "7", token.ResolveStoreID())
}

func TestAuthorize_RechazoRemoto_RetornaRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).Authorize(context.Background(), "codigo-malo")
	var remoteErr *nuvemshop.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusUnauthorized, remoteErr.Status)
	assert.Contains(t, remoteErr.Body, "invalid_grant",
		"el cuerpo remoto debe conservarse para diagnóstico")
}

func TestAuthorize_SinAccessToken_RetornaErrTokenMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user_id":"42"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).Authorize(context.Background(), "abc")
	assert.ErrorIs(t, err, nuvemshop.ErrTokenMissing)
}

func TestAuthorize_SinIdentificadorDeTienda_RetornaErrStoreIDMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":"tok"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).Authorize(context.Background(), "abc")
	assert.ErrorIs(t, err, nuvemshop.ErrStoreIDMissing)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListCategories / GetCategory
// ──────────────────────────────────────────────────────────────────────────────

func TestListCategories_PaginacionYCamposFijos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/2025-03/42/categories", r.URL.Path)
		assertAPIHeaders(t, r)

		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "100", q.Get("per_page"))
		assert.Equal(t, "id,name,description,handle,subcategories", q.Get("fields"))

		_, _ = w.Write([]byte(`[
			{"id":1,"name":{"pt":"Sapatos"},"description":{"pt":"<p>Velho</p>"},"subcategories":[3,4]},
			{"id":2,"name":{"pt":"Roupas"},"description":""}
		]`))
	}))
	defer srv.Close()

	categories, err := newTestClient(t, srv).ListCategories(context.Background(), testStore())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, int64(1), categories[0].ID)
	assert.Equal(t, "<p>Velho</p>", categories[0].Description.Get("pt"))
	assert.Equal(t, []int64{3, 4}, categories[0].Subcategories)
	assert.Nil(t, categories[1].Description.Values, "string plano no debe producir mapa")
}

func TestGetCategory_ErrorRemoto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).GetCategory(context.Background(), testStore(), "999")
	var remoteErr *nuvemshop.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusNotFound, remoteErr.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateCategoryDescription (leer-combinar-escribir)
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateCategoryDescription_GETLuegoPUT_PreservandoName(t *testing.T) {
	const rawName = `{"es":"Zapatos","pt":"Sapatos"}`
	var gets, puts int
	var putBody []byte
	var putPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			gets++
			require.Equal(t, "/2025-03/42/categories/7", r.URL.Path)
			assertAPIHeaders(t, r)
			_, _ = w.Write([]byte(`{"id":7,"name":` + rawName + `,"description":{"pt":"<p>Velho</p>"},"handle":{"pt":"sapatos"}}`))
		case http.MethodPut:
			puts++
			putPath = r.URL.Path
			require.Equal(t, 1, gets, "el PUT solo puede ocurrir después del GET")
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			putBody = body
			_, _ = w.Write([]byte(`{"id":7,"name":` + rawName + `,"description":{"pt":"<b>x</b>","es":"<b>x</b>","en":"<b>x</b>"}}`))
		default:
			t.Fatalf("método inesperado: %s", r.Method)
		}
	}))
	defer srv.Close()

	updated, err := newTestClient(t, srv).UpdateCategoryDescription(context.Background(), testStore(), "7", "<b>x</b>")
	require.NoError(t, err)

	assert.Equal(t, 1, gets, "exactamente un GET")
	assert.Equal(t, 1, puts, "exactamente un PUT")
	assert.Equal(t, "/2025-03/42/categories/7", putPath, "GET y PUT deben apuntar al mismo recurso")

	var payload struct {
		Name        json.RawMessage   `json:"name"`
		Description map[string]string `json:"description"`
	}
	require.NoError(t, json.Unmarshal(putBody, &payload))
	assert.Equal(t, rawName, string(payload.Name),
		"name debe copiarse byte a byte de la respuesta del GET")
	assert.Equal(t, "<b>x</b>", payload.Description["pt"])
	assert.Equal(t, payload.Description["pt"], payload.Description["es"])
	assert.Equal(t, payload.Description["pt"], payload.Description["en"])

	// El payload debe contener exactamente name y description.
	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(putBody, &keys))
	assert.Len(t, keys, 2)

	assert.Equal(t, int64(7), updated.ID)
	assert.Equal(t, "<b>x</b>", updated.Description.Get("es"))
}

func TestUpdateCategoryDescription_SinNameEnOrigen_EnviaEstructuraVacia(t *testing.T) {
	var putBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`{"id":7,"description":""}`))
			return
		}
		putBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"id":7}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).UpdateCategoryDescription(context.Background(), testStore(), "7", "<p>a</p>")
	require.NoError(t, err)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(putBody, &payload))
	assert.JSONEq(t, `{}`, string(payload["name"]))
}

func TestUpdateCategoryDescription_GETFalla_NoEmitePUT(t *testing.T) {
	var puts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			puts++
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"boom"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).UpdateCategoryDescription(context.Background(), testStore(), "7", "<b>x</b>")
	var remoteErr *nuvemshop.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusInternalServerError, remoteErr.Status)
	assert.Equal(t, 0, puts, "nunca escribir sin una lectura exitosa previa")
}

func TestUpdateCategoryDescription_PUTFalla_RetornaRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`{"id":7,"name":{"pt":"Sapatos"}}`))
			return
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"description":["inválida"]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).UpdateCategoryDescription(context.Background(), testStore(), "7", "<b>x</b>")
	var remoteErr *nuvemshop.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusUnprocessableEntity, remoteErr.Status)
	assert.NotContains(t, remoteErr.Error(), "<b>x</b>",
		"el error devuelto no debe filtrar el payload enviado")
}
