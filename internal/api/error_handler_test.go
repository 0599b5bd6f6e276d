package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltplan/loadcalc/internal/domain"
	"github.com/voltplan/loadcalc/internal/pkg/constants"
)

func runErrorHandler(t *testing.T, err error) (int, domain.ErrorResponse) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	httpErrorHandler(err, c)

	var body domain.ErrorResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHTTPErrorHandlerCodedError(t *testing.T) {
	code, body := runErrorHandler(t, constants.ErrDBNotFound)

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, http.StatusNotFound, body.Code)
}

func TestHTTPErrorHandlerUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("GetFrameworkByCode MSEDCL: %w", constants.ErrDBNotFound)

	code, body := runErrorHandler(t, wrapped)

	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, body.Message, "MSEDCL")
}

func TestHTTPErrorHandlerValidationError(t *testing.T) {
	code, body := runErrorHandler(t, domain.NewValidationError("buildingHeight"))

	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, body.Message, "buildingHeight")
}

func TestHTTPErrorHandlerUnknownErrorIs500(t *testing.T) {
	code, _ := runErrorHandler(t, fmt.Errorf("boom"))

	assert.Equal(t, http.StatusInternalServerError, code)
}

func TestBinderRejectsEmptyAndInvalidBodies(t *testing.T) {
	e := echo.New()
	b := NewBinder()

	var target map[string]interface{}

	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
	err := b.Bind(&target, c)
	require.Error(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
	c = e.NewContext(req, httptest.NewRecorder())
	assert.Error(t, b.Bind(&target, c))
}
