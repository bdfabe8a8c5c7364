package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"payboard/internal/contract"
	"payboard/internal/domain/entity"
	"payboard/internal/domain/sqlite/repository"
	"payboard/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPayrollService struct {
	page  *repository.Page[entity.PayrollEntry]
	entry *entity.PayrollEntry
	err   apierror.ErrorResponse

	gotFind     string
	gotPage     int
	gotPageSize int
}

func (s *stubPayrollService) GetPaginated(find string, page, pageSize int) (*repository.Page[entity.PayrollEntry], apierror.ErrorResponse) {
	s.gotFind, s.gotPage, s.gotPageSize = find, page, pageSize
	if s.err != nil {
		return nil, s.err
	}
	return s.page, nil
}

func (s *stubPayrollService) GetByID(id int64) (*entity.PayrollEntry, apierror.ErrorResponse) {
	if s.err != nil {
		return nil, s.err
	}
	return s.entry, nil
}

func (s *stubPayrollService) Create(req *contract.CreatePayrollEntryRequest) (*entity.PayrollEntry, apierror.ErrorResponse) {
	if s.err != nil {
		return nil, s.err
	}
	return s.entry, nil
}

func (s *stubPayrollService) Update(id int64, req *contract.UpdatePayrollEntryRequest) (*entity.PayrollEntry, apierror.ErrorResponse) {
	if s.err != nil {
		return nil, s.err
	}
	return s.entry, nil
}

func (s *stubPayrollService) Delete(id int64) apierror.ErrorResponse {
	return s.err
}

func newPayrollTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetPayrollsPassesQueryParams(t *testing.T) {
	stub := &stubPayrollService{page: &repository.Page[entity.PayrollEntry]{Data: []entity.PayrollEntry{}, TotalPages: 1}}
	route := NewPayrollDefault(stub)

	c, rec := newPayrollTestContext(http.MethodGet, "/api/payrolls?find=2024&page=2&page_size=25", "")
	require.NoError(t, route.GetPayrolls(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2024", stub.gotFind)
	assert.Equal(t, 2, stub.gotPage)
	assert.Equal(t, 25, stub.gotPageSize)

	var page repository.Page[entity.PayrollEntry]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 1, page.TotalPages)
}

func TestGetPayrollsDefaultsParams(t *testing.T) {
	stub := &stubPayrollService{page: &repository.Page[entity.PayrollEntry]{}}
	route := NewPayrollDefault(stub)

	c, _ := newPayrollTestContext(http.MethodGet, "/api/payrolls?page=abc", "")
	require.NoError(t, route.GetPayrolls(c))

	assert.Equal(t, defaultPage, stub.gotPage)
	assert.Equal(t, defaultPageSize, stub.gotPageSize)
}

func TestGetPayrollInvalidID(t *testing.T) {
	route := NewPayrollDefault(&stubPayrollService{})

	c, rec := newPayrollTestContext(http.MethodGet, "/api/payrolls/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, route.GetPayroll(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPayrollNotFound(t *testing.T) {
	route := NewPayrollDefault(&stubPayrollService{err: apierror.NotFoundError})

	c, rec := newPayrollTestContext(http.MethodGet, "/api/payrolls/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")

	require.NoError(t, route.GetPayroll(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreatePayrollMalformedBody(t *testing.T) {
	route := NewPayrollDefault(&stubPayrollService{})

	c, rec := newPayrollTestContext(http.MethodPost, "/api/payrolls", "{not json")
	require.NoError(t, route.CreatePayroll(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePayrollCreated(t *testing.T) {
	route := NewPayrollDefault(&stubPayrollService{entry: &entity.PayrollEntry{ID: 7}})

	c, rec := newPayrollTestContext(http.MethodPost, "/api/payrolls", `{"year":2024}`)
	require.NoError(t, route.CreatePayroll(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestDeletePayrollNoContent(t *testing.T) {
	route := NewPayrollDefault(&stubPayrollService{})

	c, rec := newPayrollTestContext(http.MethodDelete, "/api/payrolls/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")

	require.NoError(t, route.DeletePayroll(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
