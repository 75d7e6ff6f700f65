package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"

	"voyago/internal/catalog"
	"voyago/internal/chatflow"
	"voyago/internal/models/db_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

const (
	ExportFormatCSV  = "csv"
	ExportFormatXLSX = "xlsx"

	exportBaseName = "informations-voyage"
	exportSheet    = "Informations Utilisateur"
)

// exportHeaders are the spreadsheet column titles, in column order.
var exportHeaders = []string{
	"Nom",
	"Email",
	"Ville sélectionnée",
	"Types d'activités",
	"Budget",
	"Taille du groupe",
	"Date de début",
	"Date de fin",
	"Activités sélectionnées",
	"Exigences spéciales",
}

// ExportUser identifies the authenticated requester. A zero ID means the
// export is anonymous and nothing is persisted.
type ExportUser struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type ExportServiceInterface interface {
	ExportPreferences(ctx context.Context, p chatflow.TravelerPreferences, format string, user ExportUser) (*response_models.ExportFile, error)
	ListExports(ctx context.Context, page int, pageSize int) ([]response_models.ExportRecordResponse, error)
	ListExportsByUser(ctx context.Context, userID string) ([]response_models.ExportRecordResponse, error)
}

type ExportService struct {
	exportRepo repositories.ExportRepository
}

func NewExportService(exportRepo repositories.ExportRepository) ExportServiceInterface {
	return &ExportService{exportRepo: exportRepo}
}

// ExportPreferences renders the completed preference record as a downloadable
// spreadsheet. Authenticated exports are additionally recorded; a failed
// record write degrades to a warning so the download itself still succeeds.
func (s *ExportService) ExportPreferences(ctx context.Context, p chatflow.TravelerPreferences, format string, user ExportUser) (*response_models.ExportFile, error) {
	if !p.ChatCompleted {
		return nil, utils.ErrChatNotCompleted
	}

	var file *response_models.ExportFile
	var err error

	switch format {
	case ExportFormatCSV:
		file, err = renderCSV(p)
	case ExportFormatXLSX:
		file, err = renderXLSX(p)
	default:
		return nil, utils.ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}

	if user.ID != uuid.Nil {
		if recordErr := s.recordExport(ctx, p, format, file.Filename, user); recordErr != nil {
			log.Printf("export history write failed for user %s: %v", user.ID, recordErr)
			file.Warning = "L'export a réussi mais n'a pas pu être enregistré dans votre historique."
		}
	}

	return file, nil
}

func (s *ExportService) recordExport(ctx context.Context, p chatflow.TravelerPreferences, format string, filename string, user ExportUser) error {
	snapshot, err := json.Marshal(p)
	if err != nil {
		return err
	}

	record := &db_models.ExportRecord{
		Filename:     filename,
		ExportType:   format,
		UserID:       user.ID,
		UserName:     user.Name,
		UserEmail:    user.Email,
		SelectedCity: p.SelectedCity,
		Budget:       p.BudgetBand,
		ExportData:   datatypes.JSON(snapshot),
	}

	return s.exportRepo.Insert(ctx, record)
}

func (s *ExportService) ListExports(ctx context.Context, page int, pageSize int) ([]response_models.ExportRecordResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	records, err := s.exportRepo.ListAll(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toExportResponses(records), nil
}

func (s *ExportService) ListExportsByUser(ctx context.Context, userID string) ([]response_models.ExportRecordResponse, error) {
	records, err := s.exportRepo.ListByUserId(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toExportResponses(records), nil
}

func toExportResponses(records []db_models.ExportRecord) []response_models.ExportRecordResponse {
	out := make([]response_models.ExportRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, response_models.ExportRecordResponse{
			ID:           r.ID.String(),
			CreatedAt:    r.CreatedAt,
			Filename:     r.Filename,
			ExportType:   r.ExportType,
			UserName:     r.UserName,
			UserEmail:    r.UserEmail,
			SelectedCity: r.SelectedCity,
			Budget:       r.Budget,
		})
	}
	return out
}

// exportRow flattens the preference record into the column order of
// exportHeaders.
func exportRow(p chatflow.TravelerPreferences) []string {
	titles := make([]string, 0, len(p.SelectedActivityIDs))
	for _, id := range p.SelectedActivityIDs {
		if a, ok := catalog.ActivityByID(id); ok {
			titles = append(titles, a.Title)
		}
	}

	special := p.SpecialRequirements
	if special == "" {
		special = chatflow.NoRequirements
	}

	return []string{
		p.Name,
		p.Email,
		p.SelectedCity,
		strings.Join(p.ActivityTypeInterests, ", "),
		p.BudgetBand,
		fmt.Sprintf("%d", p.GroupSize),
		chatflow.FormatFrenchDate(p.DateRange.From),
		chatflow.FormatFrenchDate(p.DateRange.To),
		strings.Join(titles, ", "),
		special,
	}
}

func renderCSV(p chatflow.TravelerPreferences) (*response_models.ExportFile, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeaders); err != nil {
		return nil, err
	}
	if err := w.Write(exportRow(p)); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &response_models.ExportFile{
		Filename:    exportBaseName + ".csv",
		ContentType: "text/csv; charset=utf-8",
		Content:     buf.Bytes(),
	}, nil
}

func renderXLSX(p chatflow.TravelerPreferences) (*response_models.ExportFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeaders); err != nil {
		return nil, err
	}
	row := exportRow(p)
	if err := f.SetSheetRow(exportSheet, "A2", &row); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(exportSheet, "A", "J", 24); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}

	return &response_models.ExportFile{
		Filename:    exportBaseName + ".xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     buf.Bytes(),
	}, nil
}
