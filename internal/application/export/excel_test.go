package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/waterbiz/waterbiz-api/internal/application/dto"
)

func reopen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	got, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	t.Cleanup(func() { got.Close() })
	return got
}

func TestCustomers_HeaderAndRows(t *testing.T) {
	f, err := Customers([]*dto.CustomerResponse{
		{Name: "Ramesh Kumar", PrimaryMobile: "9876543210", Address: "MG Road",
			CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{Name: "Suresh", PrimaryMobile: "9123456789", Address: "Gandhi Nagar",
			CreatedAt: time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)

	rows, err := reopen(t, f).GetRows("Customers")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Primary Mobile", "Secondary Mobile", "Address", "Map Location", "Created At"}, rows[0])
	assert.Equal(t, "Ramesh Kumar", rows[1][0])
	assert.Equal(t, "2024-03-01", rows[1][5])
	assert.Equal(t, "Suresh", rows[2][0])
}

func TestCustomers_EmptyListStillHasHeader(t *testing.T) {
	f, err := Customers(nil)
	require.NoError(t, err)

	rows, err := reopen(t, f).GetRows("Customers")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestCustomerProducts_MissingProductNameIsBlank(t *testing.T) {
	f, err := CustomerProducts([]*dto.CustomerProductResponse{
		{CustomerName: "Ramesh", ProductName: nil, SerialNumber: "SN-1", InstallationDate: "2024-01-15"},
	})
	require.NoError(t, err)

	rows, err := reopen(t, f).GetRows("CustomerProducts")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ramesh", rows[1][0])
	// GetRows trims trailing empty cells; the product column may simply be absent.
	if len(rows[1]) > 1 {
		assert.Empty(t, rows[1][1])
	}
	assert.Equal(t, "SN-1", rows[1][2])
}
