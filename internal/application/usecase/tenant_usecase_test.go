package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitta-app/vitta-api/internal/application/dto"
	"github.com/vitta-app/vitta-api/internal/application/resolver"
	"github.com/vitta-app/vitta-api/internal/application/usecase"
	"github.com/vitta-app/vitta-api/internal/domain"
	"github.com/vitta-app/vitta-api/internal/domain/entity"
	"github.com/vitta-app/vitta-api/pkg/logger"
)

// fakeTenantStore repositorio de tenants en memoria, con inyección de fallos
// en la lectura ordenada para ejercitar el fallback del listado.
type fakeTenantStore struct {
	tenants    map[string]*entity.Tenant
	orderedErr error
}

func newFakeTenantStore(seed ...*entity.Tenant) *fakeTenantStore {
	s := &fakeTenantStore{tenants: make(map[string]*entity.Tenant)}
	for _, t := range seed {
		s.tenants[t.ID] = t
	}
	return s
}

func (s *fakeTenantStore) Create(_ context.Context, tenant *entity.Tenant) error {
	if _, ok := s.tenants[tenant.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *tenant
	cp.CreatedAt = time.Now()
	s.tenants[tenant.ID] = &cp
	return nil
}

func (s *fakeTenantStore) GetByID(_ context.Context, id string) (*entity.Tenant, error) {
	return s.tenants[id], nil
}

func (s *fakeTenantStore) Exists(_ context.Context, id string) (bool, error) {
	_, ok := s.tenants[id]
	return ok, nil
}

func (s *fakeTenantStore) UpdateName(_ context.Context, id, name string) error {
	s.tenants[id].Name = name
	return nil
}

func (s *fakeTenantStore) SetActive(_ context.Context, id string, active bool) error {
	s.tenants[id].IsActive = active
	return nil
}

func (s *fakeTenantStore) ListOrdered(ctx context.Context, limit int) ([]*entity.Tenant, error) {
	if s.orderedErr != nil {
		return nil, s.orderedErr
	}
	return s.ListUnordered(ctx, limit)
}

func (s *fakeTenantStore) ListUnordered(_ context.Context, limit int) ([]*entity.Tenant, error) {
	var out []*entity.Tenant
	for _, t := range s.tenants {
		out = append(out, t)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func buildTenantUC(seed ...*entity.Tenant) (*usecase.TenantUseCase, *fakeTenantStore, *resolver.TenantResolver) {
	store := newFakeTenantStore(seed...)
	res := resolver.NewTenantResolver(store, time.Minute, logger.Nop())
	return usecase.NewTenantUseCase(store, res, logger.Nop()), store, res
}

// ─── Create ──────────────────────────────────────────────────────────────────

func TestTenantCreate_NormalizaElID(t *testing.T) {
	uc, store, _ := buildTenantUC()

	got, err := uc.Create(context.Background(), dto.CreateTenantRequest{
		TenantID: "  My-Salon-1  ",
		Name:     "Mi Salón",
	}, "owner-1")

	require.NoError(t, err)
	assert.Equal(t, "my-salon-1", got.ID, "el id se guarda normalizado")
	assert.Equal(t, "Mi Salón", got.Name)
	assert.True(t, got.IsActive, "los tenants nacen activos")
	assert.Equal(t, "owner-1", got.CreatedBy)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt viene de la relectura")
	assert.Contains(t, store.tenants, "my-salon-1")
}

func TestTenantCreate_NombreVacioUsaElID(t *testing.T) {
	uc, _, _ := buildTenantUC()

	got, err := uc.Create(context.Background(), dto.CreateTenantRequest{TenantID: "acme"}, "owner-1")

	require.NoError(t, err)
	assert.Equal(t, "acme", got.Name)
}

func TestTenantCreate_IDInvalidoTraeElMotivo(t *testing.T) {
	uc, _, _ := buildTenantUC()

	_, err := uc.Create(context.Background(), dto.CreateTenantRequest{TenantID: "-acme-"}, "owner-1")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "guión", "el mensaje lleva el motivo de validación")
}

func TestTenantCreate_Duplicado(t *testing.T) {
	uc, _, _ := buildTenantUC(&entity.Tenant{ID: "acme", Name: "Acme", IsActive: true})

	_, err := uc.Create(context.Background(), dto.CreateTenantRequest{TenantID: "ACME"}, "owner-1")

	assert.ErrorIs(t, err, domain.ErrDuplicate, "la existencia se chequea sobre el id normalizado")
}

// ─── List ────────────────────────────────────────────────────────────────────

func TestTenantList_FallbackOrdenaEnMemoria(t *testing.T) {
	old := &entity.Tenant{ID: "viejo", CreatedAt: time.Now().Add(-48 * time.Hour)}
	mid := &entity.Tenant{ID: "medio", CreatedAt: time.Now().Add(-24 * time.Hour)}
	recent := &entity.Tenant{ID: "nuevo", CreatedAt: time.Now()}
	legacy := &entity.Tenant{ID: "legacy"} // sin CreatedAt

	uc, store, _ := buildTenantUC(old, mid, recent, legacy)
	store.orderedErr = errors.New("índice no disponible")

	list, err := uc.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 4)

	assert.Equal(t, "nuevo", list.Items[0].ID, "más recientes primero")
	assert.Equal(t, "medio", list.Items[1].ID)
	assert.Equal(t, "viejo", list.Items[2].ID)
	assert.Equal(t, "legacy", list.Items[3].ID, "sin fecha cuenta como más antiguo")
}

// ─── UpdateName / SetActive ──────────────────────────────────────────────────

func TestTenantUpdateName(t *testing.T) {
	uc, store, _ := buildTenantUC(&entity.Tenant{ID: "acme", Name: "Acme", IsActive: true})
	ctx := context.Background()

	require.NoError(t, uc.UpdateName(ctx, "acme", "Acme Spa"))
	assert.Equal(t, "Acme Spa", store.tenants["acme"].Name)

	assert.ErrorIs(t, uc.UpdateName(ctx, "fantasma", "X"), domain.ErrTenantNotFound)
}

func TestTenantSetActive_InvalidaElResolver(t *testing.T) {
	uc, store, res := buildTenantUC(&entity.Tenant{ID: "acme", Name: "Acme", IsActive: true})
	ctx := context.Background()

	// Calentar el cache del resolver con el tenant activo.
	require.NotNil(t, res.GetTenant(ctx, "acme"))
	assert.True(t, res.GetTenant(ctx, "acme").IsActive)

	require.NoError(t, uc.SetActive(ctx, "acme", false))
	assert.False(t, store.tenants["acme"].IsActive)

	// La mutación invalidó el cache: el resolver ve el nuevo estado de una.
	assert.False(t, res.GetTenant(ctx, "acme").IsActive,
		"deshabilitar debe reflejarse sin esperar el TTL")
}
