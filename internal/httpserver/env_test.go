package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/sunnyday_shop/internal/models"
	"github.com/Skotchmaster/sunnyday_shop/internal/repo"
	"github.com/Skotchmaster/sunnyday_shop/internal/service"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB

	P  *ProductHTTP
	U  *UserHTTP
	C  *CartHTTP
	O  *OrderHTTP
	A  *AddressHTTP
	An *AnalyticsHTTP
}

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Address{},
	))

	return db
}

func newTestEnv(t *testing.T) *testEnv {
	db := initTestDB(t)
	gormRepo := &repo.GormRepo{DB: db}

	env := &testEnv{
		T:  t,
		E:  echo.New(),
		DB: db,

		P:  &ProductHTTP{Svc: &service.CatalogService{Repo: gormRepo}},
		U:  &UserHTTP{Svc: &service.UserService{Repo: gormRepo}},
		C:  &CartHTTP{Svc: &service.CartService{Repo: gormRepo}},
		O:  &OrderHTTP{Svc: &service.OrderService{Repo: gormRepo}},
		A:  &AddressHTTP{Svc: &service.AddressService{Repo: gormRepo}},
		An: &AnalyticsHTTP{Svc: &service.AnalyticsService{Repo: gormRepo}},
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return env
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, code, he.Code)
}
