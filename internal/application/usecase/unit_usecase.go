package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/almacen-qr-api/internal/application/dto"
	"github.com/jhoicas/almacen-qr-api/internal/domain"
	"github.com/jhoicas/almacen-qr-api/internal/domain/entity"
	"github.com/jhoicas/almacen-qr-api/internal/domain/repository"
)

const unitIDPrefix = "S"

// UnitUseCase CRUD de unidades de medida con ID secuencial "S-001".
type UnitUseCase struct {
	repo repository.UnitRepository
}

// NewUnitUseCase construye el caso de uso.
func NewUnitUseCase(repo repository.UnitRepository) *UnitUseCase {
	return &UnitUseCase{repo: repo}
}

// List lista todas las unidades.
func (uc *UnitUseCase) List(ctx context.Context) ([]dto.UnitResponse, error) {
	units, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, dto.UnitResponse{ID: u.ID, Name: u.Name})
	}
	return out, nil
}

// Create da de alta una unidad con el siguiente ID secuencial.
func (uc *UnitUseCase) Create(ctx context.Context, in dto.UnitRequest) (*dto.UnitResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(existing))
	for _, u := range existing {
		ids = append(ids, u.ID)
	}
	unit := &entity.Unit{
		ID:   nextSequentialID(unitIDPrefix, ids),
		Name: strings.TrimSpace(in.Name),
	}
	if err := uc.repo.Create(ctx, unit); err != nil {
		return nil, err
	}
	return &dto.UnitResponse{ID: unit.ID, Name: unit.Name}, nil
}

// Update edita el nombre.
func (uc *UnitUseCase) Update(ctx context.Context, id string, in dto.UnitRequest) error {
	if id == "" || strings.TrimSpace(in.Name) == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Update(ctx, &entity.Unit{ID: id, Name: strings.TrimSpace(in.Name)})
}

// Delete elimina una unidad.
func (uc *UnitUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, id)
}
