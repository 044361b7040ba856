package usecase

import (
	"strings"

	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// BranchUseCase CRUD de sucursales.
type BranchUseCase struct {
	branchRepo repository.BranchRepository
	saleRepo   repository.SaleRepository
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(branchRepo repository.BranchRepository, saleRepo repository.SaleRepository) *BranchUseCase {
	return &BranchUseCase{branchRepo: branchRepo, saleRepo: saleRepo}
}

// List lista todas las sucursales.
func (uc *BranchUseCase) List() ([]dto.BranchResponse, error) {
	branches, err := uc.branchRepo.List()
	if err != nil {
		return nil, err
	}
	results := make([]dto.BranchResponse, 0, len(branches))
	for _, b := range branches {
		results = append(results, toBranchResponse(b))
	}
	return results, nil
}

// GetByID obtiene una sucursal por ID.
func (uc *BranchUseCase) GetByID(id int64) (*dto.BranchResponse, error) {
	branch, err := uc.branchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrBranchNotFound
	}
	resp := toBranchResponse(branch)
	return &resp, nil
}

// Create valida y persiste una sucursal nueva.
func (uc *BranchUseCase) Create(in dto.BranchRequest) (*dto.BranchResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Address) == "" {
		return nil, domain.ErrInvalidInput
	}
	branch := &entity.Branch{Name: in.Name, Address: in.Address}
	if err := uc.branchRepo.Create(branch); err != nil {
		return nil, err
	}
	resp := toBranchResponse(branch)
	return &resp, nil
}

// Update actualiza nombre y dirección de una sucursal existente.
func (uc *BranchUseCase) Update(id int64, in dto.BranchRequest) (*dto.BranchResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Address) == "" {
		return nil, domain.ErrInvalidInput
	}
	branch, err := uc.branchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrBranchNotFound
	}
	branch.Name = in.Name
	branch.Address = in.Address
	if err := uc.branchRepo.Update(branch); err != nil {
		return nil, err
	}
	resp := toBranchResponse(branch)
	return &resp, nil
}

// Delete elimina una sucursal sin ventas asociadas; con ventas se rechaza.
func (uc *BranchUseCase) Delete(id int64) error {
	branch, err := uc.branchRepo.GetByID(id)
	if err != nil {
		return err
	}
	if branch == nil {
		return domain.ErrBranchNotFound
	}
	hasSales, err := uc.saleRepo.ExistsByBranch(id)
	if err != nil {
		return err
	}
	if hasSales {
		return domain.ErrConflict
	}
	return uc.branchRepo.Delete(id)
}

func toBranchResponse(b *entity.Branch) dto.BranchResponse {
	return dto.BranchResponse{ID: b.ID, Name: b.Name, Address: b.Address}
}
