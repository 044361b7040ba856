package dto

// BranchRequest body para crear/actualizar una sucursal.
type BranchRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// BranchResponse vista de una sucursal.
type BranchResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}
