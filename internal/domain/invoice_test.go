package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceNumberFor(t *testing.T) {
	assert.Equal(t, "INV-2024-0042", InvoiceNumberFor("BK-2024-0042"))
	assert.Equal(t, "INV-A1B2C3", InvoiceNumberFor("BK-A1B2C3"))

	// Номер без префикса BK- используется как есть
	assert.Equal(t, "INV-LEGACY7", InvoiceNumberFor("LEGACY7"))
}
