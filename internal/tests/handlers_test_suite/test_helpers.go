package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/aggregate"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/auth"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/config"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/export"
	api "github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/http"
	handler "github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/http/handlers"
	rl "github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/http/rate_limiter"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/models"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/refresh"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/repo"
	"github.com/rs/zerolog"
)

var (
	token    string
	userRepo *repo.InMemoryUserRepository
	sink     *export.MemorySink
)

func init() {
	auth.Configure("test-secret", time.Hour)
	rl.Configure(10000, 10000)

	setupTestRepos("secret123")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret123")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	inventoryRepo := repo.NewInMemoryInventoryRepository()
	alertRepo := repo.NewInMemoryAlertRepository()
	supplierRepo := repo.NewInMemorySupplierRepository()
	forecastRepo := repo.NewInMemoryForecastRepository()
	kpiRepo := repo.NewInMemoryKPIRepository()
	repo.SeedAll(inventoryRepo, alertRepo, supplierRepo, forecastRepo, kpiRepo)

	handler.SetInventoryRepo(inventoryRepo)
	handler.SetAlertRepo(alertRepo)
	handler.SetSupplierRepo(supplierRepo)
	handler.SetForecastRepo(forecastRepo)
	handler.SetKPIRepo(kpiRepo)

	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         "admin",
	})

	sink = export.NewMemorySink()
	handler.SetExportService(export.NewService(sink, zerolog.Nop()))
	handler.SetClassifier(aggregate.NewClassifier(config.Thresholds{
		DeliveryOnTimePct: 95,
		DeliveryWarnBand:  5,
		QualityGood:       4.5,
		QualityWarn:       4.0,
		ComplianceGood:    95,
		ComplianceWarn:    90,
		EfficiencyGood:    90,
		EfficiencyWarn:    85,
		StockWarnFactor:   1.5,
	}))
	handler.SetSnapshotCache(nil)
	handler.SetPoller(refresh.New(time.Hour, func() error {
		repo.SeedAll(inventoryRepo, alertRepo, supplierRepo, forecastRepo, kpiRepo)
		return nil
	}, zerolog.Nop()))
}

func resetSessions() {
	handler.ResetSessions()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doGet(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doPost(r http.Handler, path string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doPut(r http.Handler, path string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(http.MethodPut, path, &body)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func toggleFilter(r http.Handler, dashboard, dimension, id string) *httptest.ResponseRecorder {
	return doPost(r, "/dashboards/"+dashboard+"/filters/toggle",
		handler.ToggleRequest{Dimension: dimension, ID: id})
}
