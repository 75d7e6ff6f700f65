package response_models

// ExportFile is the produced spreadsheet plus an optional warning when the
// backing-store write failed (the download itself still succeeds).
type ExportFile struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"-"`
	Warning     string `json:"warning,omitempty"`
}

type ExportRecordResponse struct {
	ID           string `json:"id"`
	CreatedAt    int64  `json:"created_at"`
	Filename     string `json:"filename"`
	ExportType   string `json:"export_type"`
	UserName     string `json:"user_name"`
	UserEmail    string `json:"user_email"`
	SelectedCity string `json:"selected_city"`
	Budget       string `json:"budget"`
}
