package dto

import "time"

// UploadExcelRequest subida de spreadsheet en base64. Los nombres de campo
// son camelCase: es el contrato histórico del front para esta ruta.
type UploadExcelRequest struct {
	FileName      string `json:"fileName" validate:"required"`
	FileContent   string `json:"fileContent" validate:"required"` // base64
	DashboardName string `json:"dashboard" validate:"required"`
	CompanyID     int64  `json:"companyId" validate:"required"`
	LocationID    int64  `json:"locationId"`
}

// UploadExcelResponse resumen de una ingesta exitosa.
type UploadExcelResponse struct {
	SavedAs string `json:"saved_as"`
	Rows    int    `json:"rows"`
}

// UploadedFileResponse una entrada del registro de subidas.
type UploadedFileResponse struct {
	ID            int64     `json:"id"`
	FileName      string    `json:"file_name"`
	DashboardName string    `json:"dashboard_name"`
	UploaderID    int64     `json:"uploader_id"`
	UploadedAt    time.Time `json:"uploaded_at"`
}

// UploadedFileListResponse lista paginada del registro de subidas.
type UploadedFileListResponse struct {
	Items []UploadedFileResponse `json:"items"`
	Limit int                    `json:"limit"`
	Skip  int                    `json:"skip"`
}
