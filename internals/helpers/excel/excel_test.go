package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExportThenImportRoundTrip(t *testing.T) {
	buf, err := Export("Anggota",
		[]string{"Identity", "Nama", "Email"},
		[][]interface{}{
			{"12345", "Budi Santoso", "budi@example.com"},
			{"", "Siti Rahma", "siti@example.com"},
		},
	)
	require.NoError(t, err)

	rows, err := ImportRows(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, "Budi Santoso", rows[0]["Nama"])
	require.Equal(t, "budi@example.com", rows[0]["Email"])
	require.Equal(t, "12345", rows[0]["Identity"])

	// sel kosong tetap muncul sebagai string kosong, bukan hilang
	require.Equal(t, "", rows[1]["Identity"])
	require.Equal(t, "Siti Rahma", rows[1]["Nama"])
}

func TestImportRowsHeaderOnly(t *testing.T) {
	buf, err := Export("Anggota", []string{"Nama"}, nil)
	require.NoError(t, err)

	rows, err := ImportRows(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Empty(t, rows)
}
