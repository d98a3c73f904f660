package ingest_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/resto-dash/internal/application/ingest"
	"github.com/tu-usuario/resto-dash/internal/domain"
	"github.com/tu-usuario/resto-dash/internal/domain/entity"
	"github.com/tu-usuario/resto-dash/internal/domain/repository"
	"github.com/tu-usuario/resto-dash/pkg/logger"
)

// --- fakes en memoria ---

type fakeSalesRepo struct{ rows []entity.SalesMixRow }

func (r *fakeSalesRepo) BulkUpsert(_ context.Context, rows []entity.SalesMixRow) (int, error) {
	r.rows = append(r.rows, rows...)
	return len(rows), nil
}
func (r *fakeSalesRepo) ListByCompany(context.Context, int64) ([]entity.SalesMixRow, error) {
	return r.rows, nil
}

type fakeFinRepo struct {
	rows []entity.FinancialRow
	err  error
}

func (r *fakeFinRepo) BulkUpsert(_ context.Context, rows []entity.FinancialRow) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.rows = append(r.rows, rows...)
	return len(rows), nil
}
func (r *fakeFinRepo) ListByCompany(context.Context, int64) ([]entity.FinancialRow, error) {
	return r.rows, nil
}
func (r *fakeFinRepo) ListByFile(_ context.Context, _ int64, fileName string) ([]entity.FinancialRow, error) {
	var out []entity.FinancialRow
	for _, row := range r.rows {
		if row.FileName == fileName {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeBudgetRepo struct{ rows []entity.BudgetRow }

func (r *fakeBudgetRepo) BulkUpsert(_ context.Context, rows []entity.BudgetRow) (int, error) {
	r.rows = append(r.rows, rows...)
	return len(rows), nil
}
func (r *fakeBudgetRepo) ListByCompany(context.Context, int64) ([]entity.BudgetRow, error) {
	return r.rows, nil
}

type fakeMasterRepo struct{ upserts []*entity.MasterFile }

func (r *fakeMasterRepo) Upsert(_ context.Context, mf *entity.MasterFile) error {
	r.upserts = append(r.upserts, mf)
	return nil
}
func (r *fakeMasterRepo) GetByKey(context.Context, int64, int64, string) (*entity.MasterFile, error) {
	return nil, nil
}

type fakeLogRepo struct{ upserts []*entity.Log }

func (r *fakeLogRepo) Upsert(_ context.Context, l *entity.Log) error {
	r.upserts = append(r.upserts, l)
	return nil
}
func (r *fakeLogRepo) GetByKey(context.Context, int64, int64, string) (*entity.Log, error) {
	return nil, nil
}

type fakeUploadRepo struct{ created []*entity.UploadedFile }

func (r *fakeUploadRepo) Create(f *entity.UploadedFile) error {
	r.created = append(r.created, f)
	return nil
}
func (r *fakeUploadRepo) List(int, int) ([]*entity.UploadedFile, error) { return r.created, nil }

// fakeTx entrega los fakes al callback; committed refleja si el callback terminó sin error.
type fakeTx struct {
	sales     *fakeSalesRepo
	fin       *fakeFinRepo
	budget    *fakeBudgetRepo
	master    *fakeMasterRepo
	logs      *fakeLogRepo
	uploads   *fakeUploadRepo
	committed bool
}

func newFakeTx() *fakeTx {
	return &fakeTx{
		sales:   &fakeSalesRepo{},
		fin:     &fakeFinRepo{},
		budget:  &fakeBudgetRepo{},
		master:  &fakeMasterRepo{},
		logs:    &fakeLogRepo{},
		uploads: &fakeUploadRepo{},
	}
}

func (t *fakeTx) RunIngest(_ context.Context, fn func(
	repository.SalesMixRepository,
	repository.FinancialRepository,
	repository.BudgetRepository,
	repository.MasterFileRepository,
	repository.LogRepository,
	repository.UploadedFileRepository,
) error) error {
	if err := fn(t.sales, t.fin, t.budget, t.master, t.logs, t.uploads); err != nil {
		return err
	}
	t.committed = true
	return nil
}

// --- helpers ---

func buildXLSX(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
		require.NoError(t, f.DeleteSheet("Sheet1"))
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func newService(t *testing.T, tx ingest.TxRunner) (*ingest.Service, string) {
	t.Helper()
	dir := t.TempDir()
	fixed := func() time.Time { return time.Date(2024, 6, 3, 14, 30, 5, 0, time.UTC) }
	return ingest.NewService(tx, dir, logger.FromZerolog(zerolog.Nop()), fixed), dir
}

// --- tests ---

func TestUpload_CompanyWideCompleto(t *testing.T) {
	content := buildXLSX(t, "Database", [][]any{
		{"Store", "Date", "Year", "Quarter", "Helper 4", "Tw Sales", "Lw Sales", "Ly Sales"},
		{"0001: Downtown", "2024-06-03", 2024, 2, "P1 W1", 1000.5, 900, 800},
		{"0002: Uptown", "2024-06-03", 2024, 2, "P1 W1", "NaN", "", 400},
	})
	tx := newFakeTx()
	svc, dir := newService(t, tx)

	res, err := svc.Upload(context.Background(), ingest.UploadInput{
		FileName:    "weekly.xlsx",
		FileContent: content,
		Dashboard:   ingest.DashboardCompanyWide,
		CompanyID:   7,
		LocationID:  3,
		UploaderID:  11,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Rows)
	assert.Equal(t, "20240603_143005_weekly.xlsx", res.SavedAs, "el nombre físico lleva prefijo de timestamp")
	assert.True(t, tx.committed)

	// archivo físico en disco
	_, statErr := os.Stat(filepath.Join(dir, res.SavedAs))
	require.NoError(t, statErr)

	// filas normalizadas
	require.Len(t, tx.fin.rows, 2)
	assert.Equal(t, "Downtown", tx.fin.rows[0].Store, "el prefijo del POS se quita")
	assert.Equal(t, "1000.5", tx.fin.rows[0].TwSales.String())
	assert.Equal(t, "0", tx.fin.rows[1].TwSales.String(), "NaN numérico vale cero")
	assert.Equal(t, "weekly.xlsx", tx.fin.rows[0].FileName,
		"cada fila queda sellada con el nombre lógico de su subida")
	assert.Equal(t, "weekly.xlsx", tx.fin.rows[1].FileName)

	// auditoría
	require.Len(t, tx.uploads.created, 1)
	assert.Equal(t, res.SavedAs, tx.uploads.created[0].FileName)
	assert.Equal(t, ingest.DashboardCompanyWide, tx.uploads.created[0].DashboardName)
	assert.Equal(t, int64(11), tx.uploads.created[0].UploaderID)

	// master file con cabeceras normalizadas
	require.Len(t, tx.master.upserts, 1)
	mf := tx.master.upserts[0]
	assert.Equal(t, "weekly.xlsx", mf.Filename, "la clave del master usa el nombre original")
	var masterData struct {
		Columns []string            `json:"columns"`
		Rows    []map[string]string `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(mf.FileData, &masterData))
	assert.Contains(t, masterData.Columns, "Tw_Sales")
	assert.Contains(t, masterData.Columns, "Helper_4")
	require.Len(t, masterData.Rows, 2)
	assert.Equal(t, "Downtown", masterData.Rows[0]["Store"])

	// log con resumen
	require.Len(t, tx.logs.upserts, 1)
	var logData struct {
		Rows   int      `json:"rows"`
		Stores []string `json:"stores"`
		Years  []int    `json:"years"`
	}
	require.NoError(t, json.Unmarshal(tx.logs.upserts[0].FileData, &logData))
	assert.Equal(t, 2, logData.Rows)
	assert.Equal(t, []string{"Downtown", "Uptown"}, logData.Stores)
	assert.Equal(t, []int{2024}, logData.Years)
}

func TestUpload_SalesMixUsaPrimeraHoja(t *testing.T) {
	content := buildXLSX(t, "Sheet1", [][]any{
		{"Location", "Order Id", "Item Selection Id", "Sent Date", "Menu Item", "Net Price", "Qty", "Year"},
		{"0001: Downtown", 900001, 500001, "2024-06-03", "Burger", "$12.50", 2, 2024},
	})
	tx := newFakeTx()
	svc, _ := newService(t, tx)

	res, err := svc.Upload(context.Background(), ingest.UploadInput{
		FileName:    "mix.xlsx",
		FileContent: content,
		Dashboard:   ingest.DashboardSalesMix,
		CompanyID:   7,
		LocationID:  3,
		UploaderID:  11,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Rows)

	require.Len(t, tx.sales.rows, 1)
	row := tx.sales.rows[0]
	assert.Equal(t, int64(900001), row.OrderID)
	assert.Equal(t, "12.5", row.NetPrice.String(), "el símbolo de moneda se limpia")
	assert.Equal(t, "Downtown", row.Location)
}

func TestUpload_SalesMixSinNetPriceFalla(t *testing.T) {
	content := buildXLSX(t, "Sheet1", [][]any{
		{"Location", "Qty"},
		{"Downtown", 2},
	})
	tx := newFakeTx()
	svc, _ := newService(t, tx)

	_, err := svc.Upload(context.Background(), ingest.UploadInput{
		FileName:    "mix.xlsx",
		FileContent: content,
		Dashboard:   ingest.DashboardSalesMix,
		CompanyID:   7,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Net Price", "el error nombra la columna centinela")
	assert.False(t, tx.committed, "nada se persiste si la validación falla")
}

func TestUpload_CompanyWideSinHojaDatabaseFalla(t *testing.T) {
	content := buildXLSX(t, "Sheet1", [][]any{
		{"Store", "Date"},
		{"Downtown", "2024-06-03"},
	})
	tx := newFakeTx()
	svc, _ := newService(t, tx)

	_, err := svc.Upload(context.Background(), ingest.UploadInput{
		FileName:    "weekly.xlsx",
		FileContent: content,
		Dashboard:   ingest.DashboardCompanyWide,
		CompanyID:   7,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, tx.committed)
}

func TestUpload_BudgetRequiereStoreYYear(t *testing.T) {
	content := buildXLSX(t, "Database", [][]any{
		{"Store", "Net Sales"}, // falta Year
		{"Downtown", 100},
	})
	tx := newFakeTx()
	svc, _ := newService(t, tx)

	_, err := svc.Upload(context.Background(), ingest.UploadInput{
		FileName:    "budget.xlsx",
		FileContent: content,
		Dashboard:   ingest.DashboardBudget,
		CompanyID:   7,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpload_Base64InvalidoFalla(t *testing.T) {
	tx := newFakeTx()
	svc, _ := newService(t, tx)

	_, err := svc.Upload(context.Background(), ingest.UploadInput{
		FileName:    "weekly.xlsx",
		FileContent: "esto no es base64!!!",
		Dashboard:   ingest.DashboardCompanyWide,
		CompanyID:   7,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpload_DashboardDesconocidoFalla(t *testing.T) {
	tx := newFakeTx()
	svc, _ := newService(t, tx)

	_, err := svc.Upload(context.Background(), ingest.UploadInput{
		FileName:    "x.xlsx",
		FileContent: base64.StdEncoding.EncodeToString([]byte("x")),
		Dashboard:   "marketing",
		CompanyID:   7,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "marketing")
}

func TestUpload_ErrorDePersistenciaAbortaPeroElArchivoQueda(t *testing.T) {
	content := buildXLSX(t, "Database", [][]any{
		{"Store", "Date", "Year", "Tw Sales"},
		{"Downtown", "2024-06-03", 2024, 100},
	})
	tx := newFakeTx()
	tx.fin.err = errors.New("deadlock detectado")
	svc, dir := newService(t, tx)

	_, err := svc.Upload(context.Background(), ingest.UploadInput{
		FileName:    "weekly.xlsx",
		FileContent: content,
		Dashboard:   ingest.DashboardCompanyWide,
		CompanyID:   7,
	})
	require.Error(t, err)
	assert.False(t, tx.committed)

	// el archivo físico se guarda antes de la transacción y sobrevive al fallo
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Len(t, entries, 1)
}
