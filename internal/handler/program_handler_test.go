package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sekolah-dev/school-site-api/internal/models"
	"github.com/sekolah-dev/school-site-api/internal/service"
	"github.com/sekolah-dev/school-site-api/pkg/response"
)

type mockProgramRepo struct {
	items  map[int64]*models.Program
	nextID int64
}

func (m *mockProgramRepo) List(ctx context.Context) ([]models.Program, error) {
	var out []models.Program
	for _, p := range m.items {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockProgramRepo) Create(ctx context.Context, program *models.Program) error {
	if m.items == nil {
		m.items = make(map[int64]*models.Program)
	}
	m.nextID++
	program.ID = m.nextID
	cp := *program
	m.items[program.ID] = &cp
	return nil
}

func (m *mockProgramRepo) Update(ctx context.Context, id int64, p models.ProgramPatch) (*models.Program, error) {
	program, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if v, ok := p.Name.Value(); ok {
		program.Name = v
	}
	if p.Requirements.Present() {
		program.Requirements = p.Requirements.Ptr()
	}
	cp := *program
	return &cp, nil
}

func (m *mockProgramRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

func newProgramHandler(repo *mockProgramRepo) *ProgramHandler {
	return NewProgramHandler(service.NewProgramService(repo, nil, nil))
}

func TestProgramHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &mockProgramRepo{items: map[int64]*models.Program{1: {ID: 1, Name: "Science"}}}
	handler := newProgramHandler(repo)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/programs", nil)

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data []models.Program `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "Science", envelope.Data[0].Name)
}

func TestProgramHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newProgramHandler(&mockProgramRepo{})

	body := `{"name":"Science","description":"Natural sciences track","duration_years":3}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/programs", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var envelope struct {
		Data models.Program `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, int64(1), envelope.Data.ID)
}

func TestProgramHandlerCreateValidationDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newProgramHandler(&mockProgramRepo{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/programs", bytes.NewBufferString(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.Contains(t, envelope.Error.Details, "name is required")
}

func TestProgramHandlerUpdateRejectsBadID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newProgramHandler(&mockProgramRepo{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	c.Request, _ = http.NewRequest(http.MethodPut, "/programs/abc", bytes.NewBufferString(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Update(c)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Contains(t, envelope.Error.Details, "id must be an integer")
}

func TestProgramHandlerUpdateNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newProgramHandler(&mockProgramRepo{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "999"}}
	c.Request, _ = http.NewRequest(http.MethodPut, "/programs/999", bytes.NewBufferString(`{"name":"X"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Update(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestProgramHandlerDeleteReportsOutcome(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &mockProgramRepo{items: map[int64]*models.Program{7: {ID: 7}}}
	handler := newProgramHandler(repo)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	c.Request, _ = http.NewRequest(http.MethodDelete, "/programs/7", nil)

	handler.Delete(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			Success bool `json:"success"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Data.Success)

	// A second delete of the same id reports no row removed.
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	c.Request, _ = http.NewRequest(http.MethodDelete, "/programs/7", nil)

	handler.Delete(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Data.Success)
}
