// Package ingest implementa el pipeline de subida de spreadsheets: decodifica
// el base64, guarda el archivo físico, valida y normaliza la hoja y persiste
// filas, master file y log en una sola transacción.
package ingest

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/tu-usuario/resto-dash/internal/domain"
	"github.com/tu-usuario/resto-dash/internal/domain/entity"
	"github.com/tu-usuario/resto-dash/internal/domain/repository"
	"github.com/tu-usuario/resto-dash/internal/infrastructure/excel"
	"github.com/tu-usuario/resto-dash/pkg/logger"
)

// Dashboards destino de una subida.
const (
	DashboardSalesMix    = "sales-mix"
	DashboardCompanyWide = "company-wide"
	DashboardBudget      = "budget"
)

// primarySheet hoja que debe traer el workbook según el dashboard. Sales-mix
// usa la primera hoja del libro; los otros dos exigen la hoja "Database".
func primarySheet(dashboard string) string {
	if dashboard == DashboardSalesMix {
		return ""
	}
	return "Database"
}

// TxRunner contrato transaccional de la ingesta; lo implementa
// infrastructure/postgres con repos atados a la transacción.
type TxRunner interface {
	RunIngest(ctx context.Context, fn func(
		salesRepo repository.SalesMixRepository,
		finRepo repository.FinancialRepository,
		budgetRepo repository.BudgetRepository,
		masterRepo repository.MasterFileRepository,
		logRepo repository.LogRepository,
		uploadRepo repository.UploadedFileRepository,
	) error) error
}

// Service orquesta el pipeline de ingesta.
type Service struct {
	tx        TxRunner
	uploadDir string
	log       *logger.Logger
	now       func() time.Time
}

// NewService construye el servicio. now nil usa time.Now.
func NewService(tx TxRunner, uploadDir string, log *logger.Logger, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{tx: tx, uploadDir: uploadDir, log: log, now: now}
}

// UploadInput una subida de spreadsheet tal como llega del handler.
type UploadInput struct {
	FileName    string
	FileContent string // base64
	Dashboard   string
	CompanyID   int64
	LocationID  int64
	UploaderID  int64
}

// Result resumen de una ingesta exitosa.
type Result struct {
	SavedAs string `json:"saved_as"`
	Rows    int    `json:"rows"`
}

// Upload ejecuta el pipeline completo. El archivo físico se guarda ANTES de la
// transacción y no participa de ella: si la ingesta falla después, el archivo
// queda en disco para inspección.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*Result, error) {
	switch in.Dashboard {
	case DashboardSalesMix, DashboardCompanyWide, DashboardBudget:
	default:
		return nil, fmt.Errorf("%w: dashboard desconocido '%s'", domain.ErrInvalidInput, in.Dashboard)
	}
	if in.FileName == "" || in.FileContent == "" {
		return nil, fmt.Errorf("%w: file_name y file_content son obligatorios", domain.ErrInvalidInput)
	}

	content, err := base64.StdEncoding.DecodeString(in.FileContent)
	if err != nil {
		return nil, fmt.Errorf("%w: file_content no es base64 válido", domain.ErrInvalidInput)
	}

	savedAs, err := s.saveFile(in.FileName, content)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("archivo", savedAs).Str("dashboard", in.Dashboard).
		Int64("company_id", in.CompanyID).Msg("Archivo de subida guardado")

	wb, err := excel.Decode(content, primarySheet(in.Dashboard))
	if err != nil {
		return nil, err
	}

	var (
		nRows   int
		stores  []string
		years   []int
		persist func(repository.SalesMixRepository, repository.FinancialRepository, repository.BudgetRepository) (int, error)
	)
	switch in.Dashboard {
	case DashboardSalesMix:
		rows, err := mapSalesMix(wb, in.CompanyID)
		if err != nil {
			return nil, err
		}
		nRows = len(rows)
		for _, r := range rows {
			stores = appendDistinct(stores, r.Location)
			years = appendDistinctInt(years, r.Year)
		}
		persist = func(sr repository.SalesMixRepository, _ repository.FinancialRepository, _ repository.BudgetRepository) (int, error) {
			return sr.BulkUpsert(ctx, rows)
		}
	case DashboardCompanyWide:
		rows, err := mapFinancial(wb, in.CompanyID)
		if err != nil {
			return nil, err
		}
		nRows = len(rows)
		for i := range rows {
			// mismo nombre lógico que el master file, para poder filtrar
			// la agregación por subida
			rows[i].FileName = in.FileName
			stores = appendDistinct(stores, rows[i].Store)
			years = appendDistinctInt(years, rows[i].Year)
		}
		persist = func(_ repository.SalesMixRepository, fr repository.FinancialRepository, _ repository.BudgetRepository) (int, error) {
			return fr.BulkUpsert(ctx, rows)
		}
	case DashboardBudget:
		rows, err := mapBudget(wb, in.CompanyID)
		if err != nil {
			return nil, err
		}
		nRows = len(rows)
		for _, r := range rows {
			stores = appendDistinct(stores, r.Store)
			years = appendDistinctInt(years, r.Year)
		}
		persist = func(_ repository.SalesMixRepository, _ repository.FinancialRepository, br repository.BudgetRepository) (int, error) {
			return br.BulkUpsert(ctx, rows)
		}
	}
	sort.Strings(stores)
	sort.Ints(years)

	masterData, logData, err := buildPayloads(wb, nRows, stores, years)
	if err != nil {
		return nil, err
	}

	err = s.tx.RunIngest(ctx, func(
		salesRepo repository.SalesMixRepository,
		finRepo repository.FinancialRepository,
		budgetRepo repository.BudgetRepository,
		masterRepo repository.MasterFileRepository,
		logRepo repository.LogRepository,
		uploadRepo repository.UploadedFileRepository,
	) error {
		if err := uploadRepo.Create(&entity.UploadedFile{
			FileName:      savedAs,
			DashboardName: in.Dashboard,
			UploaderID:    in.UploaderID,
			UploadedAt:    s.now(),
		}); err != nil {
			return err
		}
		if _, err := persist(salesRepo, finRepo, budgetRepo); err != nil {
			return err
		}
		if err := masterRepo.Upsert(ctx, &entity.MasterFile{
			CompanyID:  in.CompanyID,
			LocationID: in.LocationID,
			Filename:   in.FileName,
			FileData:   masterData,
		}); err != nil {
			return err
		}
		return logRepo.Upsert(ctx, &entity.Log{
			CompanyID:  in.CompanyID,
			LocationID: in.LocationID,
			Filename:   in.FileName,
			CreatedAt:  s.now(),
			FileData:   logData,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("archivo", savedAs).Str("dashboard", in.Dashboard).
		Int("filas", nRows).Msg("Ingesta completada")
	return &Result{SavedAs: savedAs, Rows: nRows}, nil
}

// saveFile escribe el contenido en uploadDir con prefijo de timestamp para que
// subidas repetidas del mismo nombre no se pisen en disco.
func (s *Service) saveFile(name string, content []byte) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de subidas: %w", err)
	}
	savedAs := s.now().Format("20060102_150405") + "_" + filepath.Base(name)
	if err := os.WriteFile(filepath.Join(s.uploadDir, savedAs), content, 0o644); err != nil {
		return "", fmt.Errorf("guardar archivo de subida: %w", err)
	}
	return savedAs, nil
}

// buildPayloads arma los JSON de master file y log a partir del workbook ya
// validado. Las cabeceras van normalizadas (espacios a guiones bajos) y las
// celdas con la política de NaN aplicada.
func buildPayloads(wb *excel.Workbook, nRows int, stores []string, years []int) (master, log []byte, err error) {
	columns := make([]string, len(wb.Headers))
	for i, h := range wb.Headers {
		columns[i] = NormalizeHeader(h)
	}

	rows := make([]map[string]string, 0, len(wb.Rows))
	for _, raw := range wb.Rows {
		row := make(map[string]string, len(columns))
		for i, c := range columns {
			v := cleanCell(raw[i])
			if c == "Store" || c == "Location" {
				v = CleanStore(v)
			}
			row[c] = v
		}
		rows = append(rows, row)
	}

	master, err = json.Marshal(map[string]any{"columns": columns, "rows": rows})
	if err != nil {
		return nil, nil, fmt.Errorf("serializar master file: %w", err)
	}
	log, err = json.Marshal(map[string]any{
		"rows":    nRows,
		"stores":  stores,
		"years":   years,
		"columns": columns,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("serializar log: %w", err)
	}
	return master, log, nil
}

func appendDistinct(list []string, v string) []string {
	if v == "" {
		return list
	}
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}

func appendDistinctInt(list []int, v int) []int {
	if v == 0 {
		return list
	}
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}
