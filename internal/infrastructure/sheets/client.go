// Package sheets implementa la persistencia del almacén sobre una planilla de
// Google Sheets. Cada tabla es una pestaña con fila de encabezados; los datos
// arrancan en la fila 2. No hay transacciones: cada llamada a la API es una
// operación independiente contra la hoja.
package sheets

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/jhoicas/almacen-qr-api/pkg/config"
	"github.com/jhoicas/almacen-qr-api/pkg/logger"
)

// Nombres de pestaña de la planilla.
const (
	TableProducts    = "productos"
	TableMovements   = "movimientos"
	TableDepartments = "departamentos"
	TableUnits       = "unidades"
	TableUsers       = "usuarios"
)

// Row es una fila de datos con sus celdas indexadas por encabezado.
// Index es el número de fila real en la hoja (1-based, la fila 1 son los
// encabezados), necesario para actualizar o borrar esa fila puntual.
type Row struct {
	Index int
	Cells map[string]string
}

// RowStore abstrae la planilla para los repositorios y las pruebas.
type RowStore interface {
	List(ctx context.Context, table string) ([]Row, error)
	Append(ctx context.Context, table string, cells map[string]string) error
	Update(ctx context.Context, table string, index int, cells map[string]string) error
	Delete(ctx context.Context, table string, index int) error
}

// Client habla con la API de Google Sheets. Cachea encabezados y sheetIDs por
// pestaña: el esquema de la planilla no cambia en caliente.
type Client struct {
	service       *sheetsapi.Service
	spreadsheetID string
	log           *logger.Logger

	mu       sync.Mutex
	headers  map[string][]string
	sheetIDs map[string]int64
}

// NewClient inicializa el servicio con la credencial de cuenta de servicio.
func NewClient(ctx context.Context, cfg config.SheetsConfig, log *logger.Logger) (*Client, error) {
	service, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsPath),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("inicializando cliente de sheets: %w", err)
	}
	return &Client{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		log:           log,
		headers:       make(map[string][]string),
		sheetIDs:      make(map[string]int64),
	}, nil
}

// List lee la pestaña completa y devuelve las filas de datos.
func (c *Client) List(ctx context.Context, table string) ([]Row, error) {
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, table).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("leyendo tabla %s: %w", table, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}

	headers := make([]string, 0, len(resp.Values[0]))
	for _, h := range resp.Values[0] {
		headers = append(headers, fmt.Sprint(h))
	}
	c.rememberHeaders(table, headers)

	rows := make([]Row, 0, len(resp.Values)-1)
	for i, raw := range resp.Values[1:] {
		cells := make(map[string]string, len(headers))
		for j, h := range headers {
			if j < len(raw) {
				cells[h] = fmt.Sprint(raw[j])
			}
		}
		rows = append(rows, Row{Index: i + 2, Cells: cells})
	}
	return rows, nil
}

// Append agrega una fila al final de la pestaña.
func (c *Client) Append(ctx context.Context, table string, cells map[string]string) error {
	headers, err := c.tableHeaders(ctx, table)
	if err != nil {
		return err
	}
	payload := &sheetsapi.ValueRange{Values: [][]interface{}{rowValues(headers, cells)}}
	_, err = c.service.Spreadsheets.Values.Append(c.spreadsheetID, table, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("agregando fila en %s: %w", table, err)
	}
	c.log.Debug().Str("tabla", table).Msg("fila agregada")
	return nil
}

// Update reescribe una fila puntual.
func (c *Client) Update(ctx context.Context, table string, index int, cells map[string]string) error {
	headers, err := c.tableHeaders(ctx, table)
	if err != nil {
		return err
	}
	rng := fmt.Sprintf("%s!A%d:%s%d", table, index, columnLetter(len(headers)), index)
	payload := &sheetsapi.ValueRange{Values: [][]interface{}{rowValues(headers, cells)}}
	_, err = c.service.Spreadsheets.Values.Update(c.spreadsheetID, rng, payload).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("actualizando fila %d de %s: %w", index, table, err)
	}
	return nil
}

// Delete elimina la fila física de la pestaña.
func (c *Client) Delete(ctx context.Context, table string, index int) error {
	sheetID, err := c.tableSheetID(ctx, table)
	if err != nil {
		return err
	}
	req := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			DeleteDimension: &sheetsapi.DeleteDimensionRequest{
				Range: &sheetsapi.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(index - 1),
					EndIndex:   int64(index),
				},
			},
		}},
	}
	_, err = c.service.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("borrando fila %d de %s: %w", index, table, err)
	}
	return nil
}

func (c *Client) rememberHeaders(table string, headers []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.headers[table] = headers
}

// tableHeaders devuelve el orden de columnas de la pestaña, leyendo la fila 1
// solo la primera vez.
func (c *Client) tableHeaders(ctx context.Context, table string) ([]string, error) {
	c.mu.Lock()
	cached, ok := c.headers[table]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, table+"!1:1").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("leyendo encabezados de %s: %w", table, err)
	}
	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("tabla %s sin fila de encabezados", table)
	}
	headers := make([]string, 0, len(resp.Values[0]))
	for _, h := range resp.Values[0] {
		headers = append(headers, fmt.Sprint(h))
	}
	c.rememberHeaders(table, headers)
	return headers, nil
}

func (c *Client) tableSheetID(ctx context.Context, table string) (int64, error) {
	c.mu.Lock()
	cached, ok := c.sheetIDs[table]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	meta, err := c.service.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("leyendo metadatos de la planilla: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range meta.Sheets {
		if s.Properties != nil {
			c.sheetIDs[s.Properties.Title] = s.Properties.SheetId
		}
	}
	id, ok := c.sheetIDs[table]
	if !ok {
		return 0, fmt.Errorf("la planilla no tiene una pestaña %q", table)
	}
	return id, nil
}

// rowValues serializa las celdas en el orden de los encabezados; las columnas
// sin valor quedan como cadena vacía.
func rowValues(headers []string, cells map[string]string) []interface{} {
	values := make([]interface{}, len(headers))
	for i, h := range headers {
		values[i] = cells[h]
	}
	return values
}

// columnLetter convierte un número de columna (1-based) a la letra de la hoja.
func columnLetter(n int) string {
	letters := ""
	for n > 0 {
		n--
		letters = string(rune('A'+n%26)) + letters
		n /= 26
	}
	return letters
}
