package resolver_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vitta-app/vitta-api/internal/application/resolver"
	"github.com/vitta-app/vitta-api/internal/domain/entity"
	"github.com/vitta-app/vitta-api/pkg/logger"
)

// ─── fakes con contador de llamadas remotas ──────────────────────────────────

type fakeOwnerRepo struct {
	owners map[string]bool
	err    error
	calls  int
}

func (f *fakeOwnerRepo) Exists(_ context.Context, uid string) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.owners[uid], nil
}

func (f *fakeOwnerRepo) Grant(_ context.Context, _ *entity.Owner) error { return nil }
func (f *fakeOwnerRepo) Revoke(_ context.Context, _ string) error       { return nil }

type fakeTenantRepo struct {
	tenants map[string]*entity.Tenant
	err     error
	calls   int
}

func (f *fakeTenantRepo) GetByID(_ context.Context, id string) (*entity.Tenant, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.tenants[id], nil
}

func (f *fakeTenantRepo) Create(_ context.Context, _ *entity.Tenant) error      { return nil }
func (f *fakeTenantRepo) Exists(_ context.Context, _ string) (bool, error)      { return false, nil }
func (f *fakeTenantRepo) UpdateName(_ context.Context, _, _ string) error       { return nil }
func (f *fakeTenantRepo) SetActive(_ context.Context, _ string, _ bool) error   { return nil }
func (f *fakeTenantRepo) ListOrdered(_ context.Context, _ int) ([]*entity.Tenant, error) {
	return nil, nil
}
func (f *fakeTenantRepo) ListUnordered(_ context.Context, _ int) ([]*entity.Tenant, error) {
	return nil, nil
}

// ─── RoleResolver ────────────────────────────────────────────────────────────

func TestRoleResolver_CacheaDentroDelTTL(t *testing.T) {
	repo := &fakeOwnerRepo{owners: map[string]bool{"boss": true}}
	r := resolver.NewRoleResolver(repo, time.Minute, logger.Nop())
	ctx := context.Background()

	assert.True(t, r.IsOwner(ctx, "boss"))
	assert.True(t, r.IsOwner(ctx, "boss"))
	assert.Equal(t, 1, repo.calls, "dentro del TTL solo hay un lookup remoto")
}

func TestRoleResolver_CacheaElNegativo(t *testing.T) {
	repo := &fakeOwnerRepo{owners: map[string]bool{}}
	r := resolver.NewRoleResolver(repo, time.Minute, logger.Nop())
	ctx := context.Background()

	assert.False(t, r.IsOwner(ctx, "nadie"))
	assert.False(t, r.IsOwner(ctx, "nadie"))
	assert.Equal(t, 1, repo.calls, "el no-owner también se cachea")
}

func TestRoleResolver_ErrorEsFailClosedYNoSeCachea(t *testing.T) {
	repo := &fakeOwnerRepo{owners: map[string]bool{"boss": true}, err: errors.New("timeout")}
	r := resolver.NewRoleResolver(repo, time.Minute, logger.Nop())
	ctx := context.Background()

	assert.False(t, r.IsOwner(ctx, "boss"), "ante fallo remoto se asume no-owner")
	assert.False(t, r.IsOwner(ctx, "boss"))
	assert.Equal(t, 2, repo.calls, "el fallo no se cachea: cada llamada reintenta")

	// El remoto se recupera y el resolver vuelve a responder bien.
	repo.err = nil
	assert.True(t, r.IsOwner(ctx, "boss"))
}

func TestRoleResolver_UIDVacioNoTocaElRemoto(t *testing.T) {
	repo := &fakeOwnerRepo{}
	r := resolver.NewRoleResolver(repo, time.Minute, logger.Nop())

	assert.False(t, r.IsOwner(context.Background(), ""))
	assert.Zero(t, repo.calls)
}

func TestRoleResolver_Invalidate(t *testing.T) {
	repo := &fakeOwnerRepo{owners: map[string]bool{"boss": true}}
	r := resolver.NewRoleResolver(repo, time.Minute, logger.Nop())
	ctx := context.Background()

	assert.True(t, r.IsOwner(ctx, "boss"))

	// El rol se revoca fuera del resolver; sin invalidar seguiría cacheado.
	repo.owners["boss"] = false
	r.Invalidate("boss")

	assert.False(t, r.IsOwner(ctx, "boss"))
	assert.Equal(t, 2, repo.calls)
}

func TestRoleResolver_ExpiraPorTTL(t *testing.T) {
	repo := &fakeOwnerRepo{owners: map[string]bool{"boss": true}}
	r := resolver.NewRoleResolver(repo, 20*time.Millisecond, logger.Nop())
	ctx := context.Background()

	assert.True(t, r.IsOwner(ctx, "boss"))
	time.Sleep(40 * time.Millisecond)
	assert.True(t, r.IsOwner(ctx, "boss"))
	assert.Equal(t, 2, repo.calls, "pasado el TTL se consulta de nuevo")
}

// ─── TenantResolver ──────────────────────────────────────────────────────────

func TestTenantResolver_CacheaIncluyendoElNil(t *testing.T) {
	repo := &fakeTenantRepo{tenants: map[string]*entity.Tenant{
		"acme": {ID: "acme", Name: "Acme", IsActive: true},
	}}
	r := resolver.NewTenantResolver(repo, time.Minute, logger.Nop())
	ctx := context.Background()

	got := r.GetTenant(ctx, "acme")
	assert.NotNil(t, got)
	assert.Equal(t, "Acme", got.Name)
	r.GetTenant(ctx, "acme")
	assert.Equal(t, 1, repo.calls)

	// El inexistente también queda cacheado como nil.
	assert.Nil(t, r.GetTenant(ctx, "fantasma"))
	assert.Nil(t, r.GetTenant(ctx, "fantasma"))
	assert.Equal(t, 2, repo.calls)
}

func TestTenantResolver_IDVacioNoTocaElRemoto(t *testing.T) {
	repo := &fakeTenantRepo{}
	r := resolver.NewTenantResolver(repo, time.Minute, logger.Nop())

	assert.Nil(t, r.GetTenant(context.Background(), ""))
	assert.Nil(t, r.GetTenant(context.Background(), "   "))
	assert.Zero(t, repo.calls)
}

func TestTenantResolver_ErrorNoSeCachea(t *testing.T) {
	repo := &fakeTenantRepo{
		tenants: map[string]*entity.Tenant{"acme": {ID: "acme", IsActive: true}},
		err:     errors.New("conexión caída"),
	}
	r := resolver.NewTenantResolver(repo, time.Minute, logger.Nop())
	ctx := context.Background()

	assert.Nil(t, r.GetTenant(ctx, "acme"))

	repo.err = nil
	assert.NotNil(t, r.GetTenant(ctx, "acme"), "tras recuperarse el remoto, el lookup reintenta")
	assert.Equal(t, 2, repo.calls)
}

func TestTenantResolver_Invalidate(t *testing.T) {
	repo := &fakeTenantRepo{tenants: map[string]*entity.Tenant{
		"acme": {ID: "acme", IsActive: true},
	}}
	r := resolver.NewTenantResolver(repo, time.Minute, logger.Nop())
	ctx := context.Background()

	assert.True(t, r.GetTenant(ctx, "acme").IsActive)

	repo.tenants["acme"] = &entity.Tenant{ID: "acme", IsActive: false}
	r.Invalidate("acme")

	assert.False(t, r.GetTenant(ctx, "acme").IsActive)
}
