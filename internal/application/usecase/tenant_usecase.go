package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/vitta-app/vitta-api/internal/application/dto"
	"github.com/vitta-app/vitta-api/internal/application/resolver"
	"github.com/vitta-app/vitta-api/internal/domain"
	"github.com/vitta-app/vitta-api/internal/domain/entity"
	"github.com/vitta-app/vitta-api/internal/domain/repository"
	"github.com/vitta-app/vitta-api/internal/domain/tenantid"
	"github.com/vitta-app/vitta-api/pkg/logger"
)

// TenantUseCase administración de tenants (solo owners llegan hasta aquí;
// el guard de la ruta es quien lo garantiza).
type TenantUseCase struct {
	repo     repository.TenantRepository
	resolver *resolver.TenantResolver
	log      *logger.Logger
}

// NewTenantUseCase construye el caso de uso. El resolver se inyecta para
// invalidar su cache tras cada mutación (no hay invalidación push).
func NewTenantUseCase(repo repository.TenantRepository, res *resolver.TenantResolver, log *logger.Logger) *TenantUseCase {
	return &TenantUseCase{repo: repo, resolver: res, log: log}
}

// Create valida el id, verifica no-existencia y persiste el tenant activo con
// timestamp asignado por el servidor; después relee la fila y la devuelve.
//
// El par exists/insert son dos llamadas sin transacción: una creación
// concurrente del mismo id se resuelve por la PK (el segundo INSERT devuelve
// ErrDuplicate desde el repo).
func (uc *TenantUseCase) Create(ctx context.Context, in dto.CreateTenantRequest, createdByUID string) (*dto.TenantResponse, error) {
	if res := tenantid.Validate(in.TenantID); !res.Valid {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, res.Reason)
	}
	normalized := tenantid.Normalize(in.TenantID)

	exists, err := uc.repo.Exists(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicate
	}

	name := in.Name
	if name == "" {
		name = normalized
	}
	tenant := &entity.Tenant{
		ID:        normalized,
		Name:      name,
		IsActive:  true,
		CreatedBy: createdByUID,
	}
	if err := uc.repo.Create(ctx, tenant); err != nil {
		return nil, err
	}

	// Releer para devolver el CreatedAt asignado por el servidor.
	created, err := uc.repo.GetByID(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("tenant %q no aparece tras crearlo", normalized)
	}
	uc.resolver.Invalidate(normalized)
	return toTenantResponse(created), nil
}

// Get devuelve un tenant directo del repositorio (vista admin, sin cache).
func (uc *TenantUseCase) Get(ctx context.Context, id string) (*dto.TenantResponse, error) {
	tenant, err := uc.repo.GetByID(ctx, tenantid.Normalize(id))
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, nil
	}
	return toTenantResponse(tenant), nil
}

// List devuelve tenants más recientes primero. Si la consulta ordenada falla
// (p. ej. el índice de created_at no existe en un esquema viejo) cae a la
// lectura sin orden y ordena en memoria, tratando created_at ausente como
// "más antiguo".
func (uc *TenantUseCase) List(ctx context.Context, limit int) (*dto.TenantListResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	tenants, err := uc.repo.ListOrdered(ctx, limit)
	if err != nil {
		uc.log.Warn().Err(err).Msg("listado ordenado de tenants falló, cayendo a orden en memoria")
		tenants, err = uc.repo.ListUnordered(ctx, limit)
		if err != nil {
			return nil, err
		}
		sort.SliceStable(tenants, func(i, j int) bool {
			a, b := tenants[i].CreatedAt, tenants[j].CreatedAt
			switch {
			case a.IsZero() && b.IsZero():
				return false
			case a.IsZero():
				return false // sin fecha = más antiguo, va al final
			case b.IsZero():
				return true
			default:
				return a.After(b)
			}
		})
	}

	items := make([]dto.TenantResponse, 0, len(tenants))
	for _, t := range tenants {
		items = append(items, *toTenantResponse(t))
	}
	return &dto.TenantListResponse{Items: items}, nil
}

// UpdateName cambia el nombre visible; verifica existencia primero.
func (uc *TenantUseCase) UpdateName(ctx context.Context, id, name string) error {
	normalized := tenantid.Normalize(id)
	exists, err := uc.repo.Exists(ctx, normalized)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrTenantNotFound
	}
	if name == "" {
		name = normalized
	}
	if err := uc.repo.UpdateName(ctx, normalized, name); err != nil {
		return err
	}
	uc.resolver.Invalidate(normalized)
	return nil
}

// SetActive habilita o deshabilita el tenant; verifica existencia primero.
func (uc *TenantUseCase) SetActive(ctx context.Context, id string, active bool) error {
	normalized := tenantid.Normalize(id)
	exists, err := uc.repo.Exists(ctx, normalized)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrTenantNotFound
	}
	if err := uc.repo.SetActive(ctx, normalized, active); err != nil {
		return err
	}
	uc.resolver.Invalidate(normalized)
	return nil
}

func toTenantResponse(t *entity.Tenant) *dto.TenantResponse {
	if t == nil {
		return nil
	}
	return &dto.TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
		CreatedBy: t.CreatedBy,
	}
}
