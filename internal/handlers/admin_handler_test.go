package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sewinggem/template-service/internal/auth"
	"github.com/sewinggem/template-service/internal/middleware"
	"github.com/sewinggem/template-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockAdminTemplateService struct {
	getAllFunc  func(ctx context.Context, page, count int, search string) ([]models.Template, error)
	getByIDFunc func(ctx context.Context, id int) (*models.Template, error)
	createFunc  func(ctx context.Context, req *models.CreateTemplateRequest, actor string) (*models.Template, error)
	updateFunc  func(ctx context.Context, id int, req *models.UpdateTemplateRequest, actor string) (*models.Template, error)
	deleteFunc  func(ctx context.Context, id int, actor string) error
}

func (m *mockAdminTemplateService) GetAll(ctx context.Context, page, count int, search string) ([]models.Template, error) {
	return m.getAllFunc(ctx, page, count, search)
}

func (m *mockAdminTemplateService) GetByID(ctx context.Context, id int) (*models.Template, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockAdminTemplateService) Create(ctx context.Context, req *models.CreateTemplateRequest, actor string) (*models.Template, error) {
	return m.createFunc(ctx, req, actor)
}

func (m *mockAdminTemplateService) Update(ctx context.Context, id int, req *models.UpdateTemplateRequest, actor string) (*models.Template, error) {
	return m.updateFunc(ctx, id, req, actor)
}

func (m *mockAdminTemplateService) Delete(ctx context.Context, id int, actor string) error {
	return m.deleteFunc(ctx, id, actor)
}

type mockAdminAuditLogService struct {
	getAllFunc func(ctx context.Context, page, count int) ([]models.AuditLogEntry, error)
}

func (m *mockAdminAuditLogService) GetAll(ctx context.Context, page, count int) ([]models.AuditLogEntry, error) {
	return m.getAllFunc(ctx, page, count)
}

// identityInjector fakes a verified session for route tests
func identityInjector(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := &auth.Identity{UserID: 1, Username: "gemma"}
		next.ServeHTTP(w, r.WithContext(middleware.WithIdentity(r.Context(), identity)))
	})
}

func setupAdminHandler(t *testing.T, templates AdminTemplateService, logs AdminAuditLogService) *chi.Mux {
	t.Helper()
	handler := NewAdminHandler(templates, logs, zap.NewNop())
	r := chi.NewRouter()
	r.Use(identityInjector)
	handler.RegisterRoutes(r)
	return r
}

func TestAdminHandler_GetTemplatesList(t *testing.T) {
	t.Run("passes pagination and search through", func(t *testing.T) {
		service := &mockAdminTemplateService{
			getAllFunc: func(ctx context.Context, page, count int, search string) ([]models.Template, error) {
				assert.Equal(t, 2, page)
				assert.Equal(t, 5, count)
				assert.Equal(t, "welcome", search)
				return []models.Template{{ID: 1, Slug: "welcome", Name: "Welcome Email"}}, nil
			},
		}
		router := setupAdminHandler(t, service, &mockAdminAuditLogService{})

		req := httptest.NewRequest(http.MethodGet, "/admin/templates?page=2&count=5&search=welcome", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"templates"`)
		assert.Contains(t, rec.Body.String(), `"welcome"`)
	})

	t.Run("empty result is an empty array", func(t *testing.T) {
		service := &mockAdminTemplateService{
			getAllFunc: func(ctx context.Context, page, count int, search string) ([]models.Template, error) {
				return nil, nil
			},
		}
		router := setupAdminHandler(t, service, &mockAdminAuditLogService{})

		req := httptest.NewRequest(http.MethodGet, "/admin/templates", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"templates":[]}`, rec.Body.String())
	})
}

func TestAdminHandler_GetTemplate(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name           string
		url            string
		setupService   func() *mockAdminTemplateService
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			url:  "/admin/templates/1",
			setupService: func() *mockAdminTemplateService {
				return &mockAdminTemplateService{
					getByIDFunc: func(ctx context.Context, id int) (*models.Template, error) {
						return &models.Template{ID: 1, Slug: "welcome", Name: "Welcome Email", CreatedAt: now, UpdatedAt: now}, nil
					},
				}
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"slug":"welcome"`,
		},
		{
			name: "not found",
			url:  "/admin/templates/99",
			setupService: func() *mockAdminTemplateService {
				return &mockAdminTemplateService{
					getByIDFunc: func(ctx context.Context, id int) (*models.Template, error) {
						return nil, models.ErrTemplateNotFound
					},
				}
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"success":false`,
		},
		{
			name:           "invalid id",
			url:            "/admin/templates/abc",
			setupService:   func() *mockAdminTemplateService { return &mockAdminTemplateService{} },
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid template ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupAdminHandler(t, tt.setupService(), &mockAdminAuditLogService{})

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestAdminHandler_CreateTemplate(t *testing.T) {
	t.Run("success returns 201 with the created template", func(t *testing.T) {
		service := &mockAdminTemplateService{
			createFunc: func(ctx context.Context, req *models.CreateTemplateRequest, actor string) (*models.Template, error) {
				assert.Equal(t, "gemma", actor)
				return &models.Template{
					ID:           1,
					Slug:         "order-confirmation",
					Name:         req.Name,
					Content:      req.Content,
					Placeholders: []string{"ORDER_ID"},
				}, nil
			},
		}
		router := setupAdminHandler(t, service, &mockAdminAuditLogService{})

		body := `{"name":"Order Confirmation","content":"Order {{ORDER_ID}} confirmed"}`
		req := httptest.NewRequest(http.MethodPost, "/admin/templates", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"slug":"order-confirmation"`)
		assert.Contains(t, rec.Body.String(), `"placeholders":["ORDER_ID"]`)
	})

	t.Run("duplicate name", func(t *testing.T) {
		service := &mockAdminTemplateService{
			createFunc: func(ctx context.Context, req *models.CreateTemplateRequest, actor string) (*models.Template, error) {
				return nil, models.ErrDuplicateSlug
			},
		}
		router := setupAdminHandler(t, service, &mockAdminAuditLogService{})

		body := `{"name":"Welcome Email","content":"hello"}`
		req := httptest.NewRequest(http.MethodPost, "/admin/templates", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "already exists")
	})

	t.Run("missing content", func(t *testing.T) {
		router := setupAdminHandler(t, &mockAdminTemplateService{}, &mockAdminAuditLogService{})

		req := httptest.NewRequest(http.MethodPost, "/admin/templates", strings.NewReader(`{"name":"No Content"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminHandler_UpdateTemplate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service := &mockAdminTemplateService{
			updateFunc: func(ctx context.Context, id int, req *models.UpdateTemplateRequest, actor string) (*models.Template, error) {
				assert.Equal(t, 5, id)
				assert.Equal(t, "Renamed", req.Name)
				assert.Empty(t, req.Content)
				return &models.Template{ID: 5, Slug: "renamed", Name: "Renamed"}, nil
			},
		}
		router := setupAdminHandler(t, service, &mockAdminAuditLogService{})

		req := httptest.NewRequest(http.MethodPut, "/admin/templates/5", strings.NewReader(`{"name":"Renamed"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"slug":"renamed"`)
	})

	t.Run("not found", func(t *testing.T) {
		service := &mockAdminTemplateService{
			updateFunc: func(ctx context.Context, id int, req *models.UpdateTemplateRequest, actor string) (*models.Template, error) {
				return nil, models.ErrTemplateNotFound
			},
		}
		router := setupAdminHandler(t, service, &mockAdminAuditLogService{})

		req := httptest.NewRequest(http.MethodPut, "/admin/templates/99", strings.NewReader(`{"name":"X"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAdminHandler_DeleteTemplate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var deletedID int
		service := &mockAdminTemplateService{
			deleteFunc: func(ctx context.Context, id int, actor string) error {
				deletedID = id
				return nil
			},
		}
		router := setupAdminHandler(t, service, &mockAdminAuditLogService{})

		req := httptest.NewRequest(http.MethodDelete, "/admin/templates/7", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
		assert.Equal(t, 7, deletedID)
	})

	t.Run("not found", func(t *testing.T) {
		service := &mockAdminTemplateService{
			deleteFunc: func(ctx context.Context, id int, actor string) error {
				return models.ErrTemplateNotFound
			},
		}
		router := setupAdminHandler(t, service, &mockAdminAuditLogService{})

		req := httptest.NewRequest(http.MethodDelete, "/admin/templates/99", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAdminHandler_GetAuditLogsList(t *testing.T) {
	service := &mockAdminAuditLogService{
		getAllFunc: func(ctx context.Context, page, count int) ([]models.AuditLogEntry, error) {
			return []models.AuditLogEntry{
				{ID: 2, Action: models.AuditActionDelete, TemplateID: 1, TemplateName: "Old"},
				{ID: 1, Action: models.AuditActionCreate, TemplateID: 1, TemplateName: "Old"},
			}, nil
		},
	}
	router := setupAdminHandler(t, &mockAdminTemplateService{}, service)

	req := httptest.NewRequest(http.MethodGet, "/admin/audit-logs", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"logs"`)
	assert.Contains(t, rec.Body.String(), `"DELETE"`)
	assert.Contains(t, rec.Body.String(), `"CREATE"`)
}
