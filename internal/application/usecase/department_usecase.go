package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/almacen-qr-api/internal/application/dto"
	"github.com/jhoicas/almacen-qr-api/internal/domain"
	"github.com/jhoicas/almacen-qr-api/internal/domain/entity"
	"github.com/jhoicas/almacen-qr-api/internal/domain/repository"
)

const departmentIDPrefix = "D"

// DepartmentUseCase CRUD de departamentos con ID secuencial "D-001".
type DepartmentUseCase struct {
	repo repository.DepartmentRepository
}

// NewDepartmentUseCase construye el caso de uso.
func NewDepartmentUseCase(repo repository.DepartmentRepository) *DepartmentUseCase {
	return &DepartmentUseCase{repo: repo}
}

// List lista todos los departamentos.
func (uc *DepartmentUseCase) List(ctx context.Context) ([]dto.DepartmentResponse, error) {
	departments, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, toDepartmentResponse(d))
	}
	return out, nil
}

// Create da de alta un departamento con el siguiente ID secuencial.
func (uc *DepartmentUseCase) Create(ctx context.Context, in dto.DepartmentRequest) (*dto.DepartmentResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(existing))
	for _, d := range existing {
		ids = append(ids, d.ID)
	}
	department := &entity.Department{
		ID:          nextSequentialID(departmentIDPrefix, ids),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
	}
	if err := uc.repo.Create(ctx, department); err != nil {
		return nil, err
	}
	resp := toDepartmentResponse(department)
	return &resp, nil
}

// Update edita nombre y descripción.
func (uc *DepartmentUseCase) Update(ctx context.Context, id string, in dto.DepartmentRequest) error {
	if id == "" || strings.TrimSpace(in.Name) == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Update(ctx, &entity.Department{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
	})
}

// Delete elimina un departamento. No valida que no queden productos colgando
// de él; esa limpieza es responsabilidad de quien administra el catálogo.
func (uc *DepartmentUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, id)
}

func toDepartmentResponse(d *entity.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{ID: d.ID, Name: d.Name, Description: d.Description}
}
