package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spiffler33/taxhawk/internal/model"
)

func TestArchiveKeyLayout(t *testing.T) {
	report := model.Report{ReportID: "r-123", FinancialYear: model.FY2024_25}
	assert.Equal(t, "reports/2024-25/r-123.json", archiveKey(report))
}

func TestStrPtr(t *testing.T) {
	p := strPtr("application/json")
	assert.Equal(t, "application/json", *p)
}
