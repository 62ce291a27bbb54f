package exporting

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/2025-2-NADS4/Projeto4/internal/domain"
)

func sampleOrders() []domain.Order {
	return []domain.Order{
		{
			ID:                  "p1",
			CreatedAt:           time.Date(2025, 1, 15, 18, 30, 0, 0, time.UTC),
			TotalAmount:         120.5,
			Status:              domain.OrderStatusConcluded,
			SalesChannel:        null.StringFrom("IFOOD"),
			OrderType:           domain.OrderTypeDelivery,
			GeneratedByCampaign: true,
			CustomerID:          null.StringFrom("c1"),
			CompanyID:           null.StringFrom("loja-1"),
		},
		{
			ID:          "p2",
			CreatedAt:   time.Date(2025, 1, 16, 9, 5, 12, 345000000, time.UTC),
			TotalAmount: 35,
			Status:      "CANCELED",
			OrderType:   domain.OrderTypeTakeout,
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected Format
		wantErr  bool
	}{
		{name: "Padrão é CSV", value: "", expected: FormatCSV},
		{name: "CSV", value: "csv", expected: FormatCSV},
		{name: "XLSX", value: "xlsx", expected: FormatXLSX},
		{name: "Formato desconhecido", value: "pdf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := ParseFormat(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "cannoli_export_filtrado.csv", FormatCSV.Filename())
	assert.Equal(t, "cannoli_export_filtrado.xlsx", FormatXLSX.Filename())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleOrders()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "id;createdAt;totalAmount;status;salesChannel;orderType;generatedByCampaign;customer;companyId", lines[0])
	assert.Equal(t, "p1;2025-01-15T18:30:00Z;120.5;CONCLUDED;IFOOD;DELIVERY;true;c1;loja-1", lines[1])
	assert.Equal(t, "p2;2025-01-16T09:05:12.345Z;35;CANCELED;PDV;TAKEOUT;false;;", lines[2])
}

func TestCSVRoundTrip(t *testing.T) {
	orders := sampleOrders()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, orders))

	parsed, err := ParseOrdersCSV(&buf)
	require.NoError(t, err)
	require.Len(t, parsed, len(orders))

	for i, order := range orders {
		assert.Equal(t, order.ID, parsed[i].ID)
		assert.True(t, order.CreatedAt.Equal(parsed[i].CreatedAt))
		assert.Equal(t, order.TotalAmount, parsed[i].TotalAmount)
		assert.Equal(t, order.Status, parsed[i].Status)
		assert.Equal(t, order.Channel(), parsed[i].Channel())
		assert.Equal(t, order.OrderType, parsed[i].OrderType)
		assert.Equal(t, order.GeneratedByCampaign, parsed[i].GeneratedByCampaign)
		assert.Equal(t, order.CustomerID, parsed[i].CustomerID)
		assert.Equal(t, order.CompanyID, parsed[i].CompanyID)
	}
}

func TestCSVRoundTripEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	parsed, err := ParseOrdersCSV(&buf)
	require.NoError(t, err)
	assert.Empty(t, parsed)
}

func TestParseOrdersCSVInvalidHeader(t *testing.T) {
	_, err := ParseOrdersCSV(strings.NewReader("a;b;c;d;e;f;g;h;i\n"))
	assert.ErrorIs(t, err, ErrInvalidHeader)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatXLSX, sampleOrders()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, headers, rows[0])
	assert.Equal(t, "p1", rows[1][0])
	assert.Equal(t, "PDV", rows[2][4])
}
