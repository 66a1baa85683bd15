package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nuvemshop-descriptions/internal/application/catalog"
	"github.com/jhoicas/nuvemshop-descriptions/internal/application/stores"
	"github.com/jhoicas/nuvemshop-descriptions/internal/domain"
	"github.com/jhoicas/nuvemshop-descriptions/internal/domain/entity"
	"github.com/jhoicas/nuvemshop-descriptions/internal/infrastructure/nuvemshop"
	"github.com/jhoicas/nuvemshop-descriptions/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeStoreRepo struct {
	byID map[string]*entity.Store
	ord  []string
}

func newFakeStoreRepo(storeIDs ...string) *fakeStoreRepo {
	r := &fakeStoreRepo{byID: map[string]*entity.Store{}}
	for _, id := range storeIDs {
		r.byID[id] = &entity.Store{StoreID: id, AccessToken: "tok-" + id}
		r.ord = append(r.ord, id)
	}
	return r
}

func (r *fakeStoreRepo) FindByStoreID(storeID string) (*entity.Store, error) {
	return r.byID[storeID], nil
}

func (r *fakeStoreRepo) First() (*entity.Store, error) {
	if len(r.ord) == 0 {
		return nil, nil
	}
	return r.byID[r.ord[0]], nil
}

func (r *fakeStoreRepo) Upsert(store *entity.Store) error {
	if _, ok := r.byID[store.StoreID]; !ok {
		r.ord = append(r.ord, store.StoreID)
	}
	r.byID[store.StoreID] = store
	return nil
}

// stubCategoryAPI registra las llamadas y devuelve respuestas fijas.
type stubCategoryAPI struct {
	listResult []nuvemshop.Category
	getResult  *nuvemshop.Category
	err        error

	updateCalls []updateCall
	lastStore   *entity.Store
}

type updateCall struct {
	categoryID string
	html       string
}

func (s *stubCategoryAPI) ListCategories(ctx context.Context, store *entity.Store) ([]nuvemshop.Category, error) {
	s.lastStore = store
	return s.listResult, s.err
}

func (s *stubCategoryAPI) GetCategory(ctx context.Context, store *entity.Store, categoryID string) (*nuvemshop.Category, error) {
	s.lastStore = store
	return s.getResult, s.err
}

func (s *stubCategoryAPI) UpdateCategoryDescription(ctx context.Context, store *entity.Store, categoryID, html string) (*nuvemshop.Category, error) {
	s.lastStore = store
	s.updateCalls = append(s.updateCalls, updateCall{categoryID: categoryID, html: html})
	if s.err != nil {
		return nil, s.err
	}
	return &nuvemshop.Category{ID: 7, Description: nuvemshop.LocalizedText{Values: map[string]string{"pt": html, "es": html, "en": html}}}, nil
}

func newSyncUC(api *stubCategoryAPI, repo *fakeStoreRepo) *catalog.SyncUseCase {
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return catalog.NewSyncUseCase(api, stores.NewResolver(repo, true), log)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestListWithDescriptions_NormalizaPreservandoOrden(t *testing.T) {
	api := &stubCategoryAPI{listResult: []nuvemshop.Category{
		{ID: 3, Description: nuvemshop.LocalizedText{Values: map[string]string{"pt": "<p>c</p>"}}},
		{ID: 1, Description: nuvemshop.LocalizedText{Plain: "<p>a</p>"}},
		{ID: 2, Description: nuvemshop.LocalizedText{Values: map[string]string{"es": "<p>b</p>"}}},
	}}
	uc := newSyncUC(api, newFakeStoreRepo("42"))

	out, err := uc.ListWithDescriptions(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, []int64{3, 1, 2}, []int64{out[0].ID, out[1].ID, out[2].ID},
		"el orden de la plataforma debe preservarse")
	assert.Equal(t, "c", out[0].Content)
	assert.Equal(t, "a", out[1].Content)
	assert.Equal(t, "b", out[2].Content)
	assert.Equal(t, "42", api.lastStore.StoreID, "sin store_id explícito se usa la primera tienda")
}

func TestListWithDescriptions_SinTiendas(t *testing.T) {
	uc := newSyncUC(&stubCategoryAPI{}, newFakeStoreRepo())
	_, err := uc.ListWithDescriptions(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrNoStoreConfigured)
}

func TestGetDescription_TiendaExplicita(t *testing.T) {
	api := &stubCategoryAPI{getResult: &nuvemshop.Category{ID: 7, Description: nuvemshop.LocalizedText{Values: map[string]string{"en": "<i>x</i>"}}}}
	uc := newSyncUC(api, newFakeStoreRepo("42", "43"))

	out, err := uc.GetDescription(context.Background(), "43", "7")
	require.NoError(t, err)
	assert.Equal(t, "43", api.lastStore.StoreID)
	assert.Equal(t, "x", out.Content)
}

func TestSetDescription_IgnoraContentPlano(t *testing.T) {
	api := &stubCategoryAPI{}
	uc := newSyncUC(api, newFakeStoreRepo("42"))

	out, err := uc.SetDescription(context.Background(), "42", "7", "texto plano que no viaja", "<b>x</b>")
	require.NoError(t, err)
	require.Len(t, api.updateCalls, 1)
	assert.Equal(t, "<b>x</b>", api.updateCalls[0].html,
		"solo html_content se publica; content no tiene campo en la plataforma")
	assert.Equal(t, "x", out.Content)
}

func TestSetDescription_SinTiendaExplicita_NoCaeALaPrimera(t *testing.T) {
	api := &stubCategoryAPI{}
	uc := newSyncUC(api, newFakeStoreRepo("42"))

	_, err := uc.SetDescription(context.Background(), "", "7", "", "<b>x</b>")
	assert.ErrorIs(t, err, domain.ErrNoStoreConfigured,
		"una mutación exige tienda explícita aunque exista fallback de lectura")
	assert.Empty(t, api.updateCalls)
}

func TestClearDescription_PublicaMarkupVacio(t *testing.T) {
	api := &stubCategoryAPI{}
	uc := newSyncUC(api, newFakeStoreRepo("42"))

	require.NoError(t, uc.ClearDescription(context.Background(), "42", "7"))
	require.Len(t, api.updateCalls, 1)
	assert.Equal(t, "", api.updateCalls[0].html)
}
