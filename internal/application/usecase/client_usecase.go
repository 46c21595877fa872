package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vitta-app/vitta-api/internal/application/dto"
	"github.com/vitta-app/vitta-api/internal/domain"
	"github.com/vitta-app/vitta-api/internal/domain/entity"
	"github.com/vitta-app/vitta-api/internal/domain/repository"
)

// ClientUseCase CRUD de fichas de cliente scopeado por tenant.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create alta de ficha; name y phone son obligatorios.
func (uc *ClientUseCase) Create(ctx context.Context, tenantID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	client := &entity.Client{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Notes:     in.Notes,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID devuelve la ficha si pertenece al tenant.
func (uc *ClientUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil || client.TenantID != tenantID {
		return nil, nil
	}
	return toClientResponse(client), nil
}

// List devuelve las fichas del tenant.
func (uc *ClientUseCase) List(ctx context.Context, tenantID string) (*dto.ClientListResponse, error) {
	clients, err := uc.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		items = append(items, *toClientResponse(c))
	}
	return &dto.ClientListResponse{Items: items}, nil
}

// Update reemplaza los campos editables de la ficha.
func (uc *ClientUseCase) Update(ctx context.Context, tenantID, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil || client.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	client.Name = in.Name
	client.Phone = in.Phone
	client.Email = in.Email
	client.Notes = in.Notes
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina la ficha si pertenece al tenant.
func (uc *ClientUseCase) Delete(ctx context.Context, tenantID, id string) error {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil || client.TenantID != tenantID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:        c.ID,
		TenantID:  c.TenantID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}
