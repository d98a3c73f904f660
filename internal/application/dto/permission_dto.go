package dto

// PermissionRequest bits de capacidad a asignar a un usuario.
type PermissionRequest struct {
	UserID      int64 `json:"user_id" validate:"required"`
	CompanyID   int64 `json:"company_id" validate:"required"`
	UploadExcel bool  `json:"upload_excel"`
	D1          bool  `json:"d1"`
	D2          bool  `json:"d2"`
	D3          bool  `json:"d3"`
	D4          bool  `json:"d4"`
	D5          bool  `json:"d5"`
	D6          bool  `json:"d6"`
	D7          bool  `json:"d7"`
}

// PermissionResponse bits de capacidad vigentes de un usuario.
type PermissionResponse struct {
	UserID      int64 `json:"user_id"`
	CompanyID   int64 `json:"company_id"`
	UploadExcel bool  `json:"upload_excel"`
	D1          bool  `json:"d1"`
	D2          bool  `json:"d2"`
	D3          bool  `json:"d3"`
	D4          bool  `json:"d4"`
	D5          bool  `json:"d5"`
	D6          bool  `json:"d6"`
	D7          bool  `json:"d7"`
}
