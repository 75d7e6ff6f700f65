package request_models

type CreateExportRequest struct {
	SessionID string `json:"session_id" binding:"required,uuid"`
	Format    string `json:"format" binding:"required,oneof=csv xlsx"`
}
