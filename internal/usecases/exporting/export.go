// Package exporting serializa o recorte filtrado de pedidos para download.
package exporting

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/xuri/excelize/v2"

	"github.com/2025-2-NADS4/Projeto4/internal/domain"
	"github.com/2025-2-NADS4/Projeto4/pkg/utils"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"

	baseFilename = "cannoli_export_filtrado"
	sheetName    = "Pedidos"
	delimiter    = ';'
)

var (
	ErrUnsupportedFormat = errors.New("formato de exportação não suportado")
	ErrInvalidHeader     = errors.New("cabeçalho do CSV inválido")
)

var headers = []string{
	"id",
	"createdAt",
	"totalAmount",
	"status",
	"salesChannel",
	"orderType",
	"generatedByCampaign",
	"customer",
	"companyId",
}

func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, value)
	}
}

func (f Format) Filename() string {
	return baseFilename + "." + string(f)
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Write grava os pedidos no formato pedido
func Write(w io.Writer, format Format, orders []domain.Order) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, orders)
	case FormatXLSX:
		return WriteXLSX(w, orders)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func orderRow(order domain.Order) []string {
	return []string{
		order.ID,
		order.CreatedAt.Format(time.RFC3339Nano),
		strconv.FormatFloat(order.TotalAmount, 'f', -1, 64),
		order.Status,
		order.Channel(),
		order.OrderType,
		strconv.FormatBool(order.GeneratedByCampaign),
		order.CustomerID.String,
		order.CompanyID.String,
	}
}

// WriteCSV grava cabeçalho e uma linha por pedido, separados por ponto e vírgula e sem
// coluna de índice
func WriteCSV(w io.Writer, orders []domain.Order) error {
	writer := csv.NewWriter(w)
	writer.Comma = delimiter

	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho do CSV: %w", err)
	}

	for _, order := range orders {
		if err := writer.Write(orderRow(order)); err != nil {
			return fmt.Errorf("erro ao escrever pedido %s no CSV: %w", order.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ParseOrdersCSV lê de volta um arquivo gerado por WriteCSV
func ParseOrdersCSV(r io.Reader) ([]domain.Order, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = len(headers)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrInvalidHeader
	}
	for i, header := range headers {
		if records[0][i] != header {
			return nil, fmt.Errorf("%w: coluna %d deveria ser %q", ErrInvalidHeader, i+1, header)
		}
	}

	orders := make([]domain.Order, 0, len(records)-1)
	for line, record := range records[1:] {
		order, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("erro na linha %d: %w", line+2, err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func parseRecord(record []string) (domain.Order, error) {
	createdAt, err := utils.ParseTimestamp(record[1])
	if err != nil {
		return domain.Order{}, err
	}

	amount, err := strconv.ParseFloat(record[2], 64)
	if err != nil {
		return domain.Order{}, fmt.Errorf("totalAmount inválido: %w", err)
	}

	byCampaign, err := strconv.ParseBool(record[6])
	if err != nil {
		return domain.Order{}, fmt.Errorf("generatedByCampaign inválido: %w", err)
	}

	return domain.Order{
		ID:                  record[0],
		CreatedAt:           createdAt,
		TotalAmount:         amount,
		Status:              record[3],
		SalesChannel:        null.StringFrom(record[4]),
		OrderType:           record[5],
		GeneratedByCampaign: byCampaign,
		CustomerID:          optionalString(record[7]),
		CompanyID:           optionalString(record[8]),
	}, nil
}

func optionalString(value string) null.String {
	if value == "" {
		return null.String{}
	}
	return null.StringFrom(value)
}

// WriteXLSX gera uma planilha com cabeçalho em negrito
func WriteXLSX(w io.Writer, orders []domain.Order) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("erro ao nomear planilha: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho da planilha: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("erro ao criar estilo da planilha: %w", err)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheetName, "A1", lastHeader, style); err != nil {
		return fmt.Errorf("erro ao aplicar estilo da planilha: %w", err)
	}

	for i, order := range orders {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := xlsxRow(order)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("erro ao escrever pedido %s na planilha: %w", order.ID, err)
		}
	}

	f.SetColWidth(sheetName, "A", "B", 28)
	f.SetColWidth(sheetName, "H", "I", 28)

	return f.Write(w)
}

// Valores numéricos e booleanos ficam tipados na planilha
func xlsxRow(order domain.Order) []any {
	row := orderRow(order)
	return []any{
		row[0],
		row[1],
		order.TotalAmount,
		row[3],
		row[4],
		row[5],
		order.GeneratedByCampaign,
		row[7],
		row[8],
	}
}
