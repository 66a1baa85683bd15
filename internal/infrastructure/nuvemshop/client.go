package nuvemshop

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/nuvemshop-descriptions/internal/domain/entity"
	"github.com/jhoicas/nuvemshop-descriptions/pkg/config"
	"github.com/jhoicas/nuvemshop-descriptions/pkg/logger"
)

// maxResponseSize tamaño máximo aceptado en respuestas de Nuvemshop (1 MB).
const maxResponseSize = 1 * 1024 * 1024

// Client adaptador HTTP para la API de Nuvemshop: autorización OAuth y categorías.
// Todas las llamadas a la API llevan el header "Authentication: bearer <token>".
// Nuvemshop usa ese nombre de header no estándar en lugar de Authorization;
// debe reproducirse tal cual o la API responde 401.
type Client struct {
	cfg        config.NuvemshopConfig
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el adaptador. El timeout viene de NUVEMSHOP_TIMEOUT_SECONDS.
func NewClient(cfg config.NuvemshopConfig, log *logger.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if cfg.TimeoutSecs <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// ── Autorización ──────────────────────────────────────────────────────────────

// Authorize intercambia el código de instalación por un access token.
// POST form-encoded al endpoint fijo de token. Sin reintentos: un fallo
// transitorio se reporta de inmediato al llamador.
func (c *Client) Authorize(ctx context.Context, code string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("nuvemshop: crear request de token: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nuvemshop: llamada al endpoint de token: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("nuvemshop: leer respuesta de token: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error().Int("status", resp.StatusCode).Str("body", string(rawBody)).Msg("autorización Nuvemshop rechazada")
		return nil, &RemoteError{Status: resp.StatusCode, Body: string(rawBody)}
	}

	var token TokenResponse
	if err := json.Unmarshal(rawBody, &token); err != nil {
		return nil, fmt.Errorf("nuvemshop: deserializar respuesta de token: %w", err)
	}
	if token.AccessToken == "" {
		return nil, ErrTokenMissing
	}
	if token.ResolveStoreID() == "" {
		return nil, ErrStoreIDMissing
	}
	token.Raw = rawBody

	c.log.Info().Str("store_id", token.ResolveStoreID()).Msg("token recibido de Nuvemshop")
	return &token, nil
}

// ── Categorías ────────────────────────────────────────────────────────────────

// ListCategories obtiene las categorías de la tienda. Paginación fija: primera
// página de 100. Limitación conocida heredada del contrato original: tiendas
// con más de 100 categorías quedan truncadas; no se recorre la paginación.
func (c *Client) ListCategories(ctx context.Context, store *entity.Store) ([]Category, error) {
	endpoint := fmt.Sprintf("%s/%s/categories?page=1&per_page=100&fields=%s",
		c.cfg.APIBaseURL, store.StoreID, url.QueryEscape("id,name,description,handle,subcategories"))

	rawBody, err := c.doAPI(ctx, http.MethodGet, endpoint, nil, store.AccessToken)
	if err != nil {
		return nil, err
	}

	var categories []Category
	if err := json.Unmarshal(rawBody, &categories); err != nil {
		return nil, fmt.Errorf("nuvemshop: deserializar categorías: %w", err)
	}
	return categories, nil
}

// GetCategory obtiene una categoría por ID.
func (c *Client) GetCategory(ctx context.Context, store *entity.Store, categoryID string) (*Category, error) {
	endpoint := fmt.Sprintf("%s/%s/categories/%s", c.cfg.APIBaseURL, store.StoreID, url.PathEscape(categoryID))

	rawBody, err := c.doAPI(ctx, http.MethodGet, endpoint, nil, store.AccessToken)
	if err != nil {
		return nil, err
	}

	var category Category
	if err := json.Unmarshal(rawBody, &category); err != nil {
		return nil, fmt.Errorf("nuvemshop: deserializar categoría: %w", err)
	}
	return &category, nil
}

// UpdateCategoryDescription actualiza la descripción con el protocolo
// leer-combinar-escribir: GET del recurso actual, payload con name copiado tal
// cual y description replicada en pt/es/en, PUT del resultado. Si el GET falla
// no se escribe nada: escribir sin leer podría anular campos que este servicio
// no administra. Entre GET y PUT no hay atomicidad: si otro proceso modifica la
// categoría en ese intervalo gana la última escritura (la API no expone ETag).
func (c *Client) UpdateCategoryDescription(ctx context.Context, store *entity.Store, categoryID, htmlDescription string) (*Category, error) {
	current, err := c.GetCategory(ctx, store, categoryID)
	if err != nil {
		return nil, err
	}

	name := current.Name
	if len(name) == 0 {
		name = json.RawMessage(`{}`)
	}
	// La app no maneja contenido por idioma: los tres locales reciben el mismo markup.
	payload := updatePayload{
		Name: name,
		Description: map[string]string{
			"pt": htmlDescription,
			"es": htmlDescription,
			"en": htmlDescription,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("nuvemshop: serializar payload de categoría: %w", err)
	}

	// El payload solo se registra en logs; no se incluye en errores devueltos
	// para no filtrar contenido en mensajes de cara al usuario.
	c.log.Debug().
		Str("store_id", store.StoreID).
		Str("category_id", categoryID).
		RawJSON("payload", body).
		Msg("actualizando descripción de categoría en Nuvemshop")

	endpoint := fmt.Sprintf("%s/%s/categories/%s", c.cfg.APIBaseURL, store.StoreID, url.PathEscape(categoryID))
	rawBody, err := c.doAPI(ctx, http.MethodPut, endpoint, body, store.AccessToken)
	if err != nil {
		var remoteErr *RemoteError
		if errors.As(err, &remoteErr) {
			c.log.Error().
				Int("status", remoteErr.Status).
				Str("body", remoteErr.Body).
				Str("category_id", categoryID).
				Msg("error al actualizar categoría en Nuvemshop")
		}
		return nil, err
	}

	var updated Category
	if err := json.Unmarshal(rawBody, &updated); err != nil {
		return nil, fmt.Errorf("nuvemshop: deserializar categoría actualizada: %w", err)
	}

	c.log.Info().Str("category_id", categoryID).Msg("categoría actualizada en Nuvemshop")
	return &updated, nil
}

// doAPI ejecuta una llamada autenticada a la API y devuelve el cuerpo crudo.
// Un status fuera de 2xx se devuelve como *RemoteError con el cuerpo incluido.
func (c *Client) doAPI(ctx context.Context, method, endpoint string, body []byte, accessToken string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("nuvemshop: crear request: %w", err)
	}
	req.Header.Set("Authentication", "bearer "+accessToken)
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nuvemshop: llamada HTTP: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("nuvemshop: leer respuesta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RemoteError{Status: resp.StatusCode, Body: string(rawBody)}
	}
	return rawBody, nil
}
