package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sTrAy74/swi-web/internal/leadgen"
)

func TestCalculatorHandler_ProjectSavings(t *testing.T) {
	handler := NewCalculatorHandler()

	rec := httptest.NewRecorder()
	handler.ProjectSavings(rec, httptest.NewRequest("POST", "/api/calculator/savings",
		strings.NewReader(`{"monthlySaving":1000,"years":2}`)))

	assert.Equal(t, http.StatusOK, rec.Code)

	var result leadgen.SavingsResult
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 24, result.Months)
	assert.Equal(t, 24000.0, result.TotalSaved)
}

func TestCalculatorHandler_RejectsBadInput(t *testing.T) {
	handler := NewCalculatorHandler()

	rec := httptest.NewRecorder()
	handler.ProjectSavings(rec, httptest.NewRequest("POST", "/x", strings.NewReader(`not json`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	handler.ProjectSavings(rec, httptest.NewRequest("POST", "/x", strings.NewReader(`{"years":500}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
