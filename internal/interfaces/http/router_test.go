package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/rationshop-api/internal/application/auth"
	"github.com/jhoicas/rationshop-api/internal/application/seed"
	"github.com/jhoicas/rationshop-api/internal/application/usecase"
	"github.com/jhoicas/rationshop-api/internal/bootstrap"
	"github.com/jhoicas/rationshop-api/internal/domain/entity"
	"github.com/jhoicas/rationshop-api/internal/infrastructure/memory"
	"github.com/jhoicas/rationshop-api/internal/infrastructure/metrics"
	"github.com/jhoicas/rationshop-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/rationshop-api/internal/interfaces/http"
	"github.com/jhoicas/rationshop-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures: a seeded in-memory network behind the real router
// ──────────────────────────────────────────────────────────────────────────────

const (
	adminPassword   = "admin-password"
	managerPassword = "manager-password"
)

type server struct {
	app      *fiber.App
	metrics  *metrics.Metrics
	annaID   string // managed by manager1
	tNagarID string // no manager
	riceID   string
	keroID   string // in the catalog, stocked nowhere
}

type result struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

func newServer(t *testing.T, limiter *apphttp.LoginLimiter) *server {
	t.Helper()
	usecase.PasswordCost = bcrypt.MinCost
	ctx := context.Background()

	repos := bootstrap.MemoryRepositories(memory.NewStore())
	m := metrics.New()
	svc := bootstrap.NewServices(repos,
		auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer},
		pdf.NewMarotoStockSheetGenerator("test"), m)
	_, err := svc.Seeder(repos, logger.Nop()).Run(ctx, seed.Options{
		AdminUsername:   "admin",
		AdminPassword:   adminPassword,
		AdminEmail:      "admin@rationshop.local",
		SampleShops:     true,
		ManagerPassword: managerPassword,
	})
	require.NoError(t, err)

	kerosene := &entity.Product{ID: uuid.NewString(), Name: "Kerosene"}
	require.NoError(t, repos.Products.Create(ctx, kerosene))

	s := &server{metrics: m, keroID: kerosene.ID}
	shops, err := repos.Shops.ListDetails(ctx)
	require.NoError(t, err)
	for _, sh := range shops {
		switch sh.Name {
		case "Anna Nagar Ration Shop":
			s.annaID = sh.ID
		case "T Nagar Ration Shop":
			s.tNagarID = sh.ID
		}
	}
	products, err := repos.Products.List(ctx)
	require.NoError(t, err)
	for _, p := range products {
		if p.Name == "Rice" {
			s.riceID = p.ID
		}
	}

	s.app = apphttp.NewApp("rationshop-test", apphttp.RouterDeps{
		AuthUC:         svc.Auth,
		UserUC:         svc.Users,
		ProductUC:      svc.Products,
		OrganizationUC: svc.Organization,
		InventoryUC:    svc.Inventory,
		DashboardUC:    svc.Dashboard,
		Metrics:        m,
		LoginLimiter:   limiter,
		Log:            logger.Nop(),
		Cookie:         apphttp.SessionCookie{Name: testCookieName},
	})
	return s
}

func (s *server) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) result {
	t.Helper()
	defer resp.Body.Close()
	var out result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (s *server) login(t *testing.T, username, password string) string {
	t.Helper()
	res := decode(t, s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": username, "password": password,
	}))
	require.True(t, res.Success, res.Message)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &data))
	return data.Token
}

type stockData struct {
	Shop struct {
		ID string `json:"id"`
	} `json:"shop"`
	Stock []struct {
		ProductID   string `json:"product_id"`
		ProductName string `json:"product_name"`
		Quantity    string `json:"quantity"`
	} `json:"stock"`
}

// ──────────────────────────────────────────────────────────────────────────────
// Authentication
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_SetsSessionCookieAndLandingPage(t *testing.T) {
	s := newServer(t, nil)
	resp := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "manager1", "password": managerPassword,
	})
	cookie := resp.Header.Get("Set-Cookie")
	res := decode(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, cookie, testCookieName+"=")
	assert.Contains(t, strings.ToLower(cookie), "httponly")

	var data struct {
		Redirect string `json:"redirect"`
		User     struct {
			Role   string `json:"role"`
			ShopID string `json:"shop_id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &data))
	assert.Equal(t, auth.BranchHome, data.Redirect)
	assert.Equal(t, "manager", data.User.Role)
	assert.Equal(t, s.annaID, data.User.ShopID)
	assert.NotContains(t, string(res.Data), "password")
}

func TestLoginPage_IsServed(t *testing.T) {
	s := newServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, apphttp.LoginPath, nil)
	req.Header.Set("Accept", "text/html")
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(body), `action="/api/auth/login"`)
	assert.NotContains(t, string(body), "Invalid username")
}

func TestLogin_FormPostRedirectsToLandingPage(t *testing.T) {
	s := newServer(t, nil)
	post := func(username, password string) *http.Response {
		form := url.Values{"username": {username}, "password": {password}}
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Accept", "text/html")
		resp, err := s.app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()
		return resp
	}

	resp := post("manager1", managerPassword)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, auth.BranchHome, resp.Header.Get("Location"))
	require.NotEmpty(t, resp.Cookies())
	session := resp.Cookies()[0]
	assert.Equal(t, testCookieName, session.Name)

	// The landing page is a served route for the session just opened.
	req := httptest.NewRequest(http.MethodGet, auth.BranchHome, nil)
	req.Header.Set("Accept", "text/html")
	req.AddCookie(&http.Cookie{Name: session.Name, Value: session.Value})
	landing, err := s.app.Test(req, -1)
	require.NoError(t, err)
	landing.Body.Close()
	assert.Equal(t, http.StatusOK, landing.StatusCode)

	assert.Equal(t, auth.AdminHome, post("admin", adminPassword).Header.Get("Location"))

	resp = post("manager1", "wrong-password")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	location := resp.Header.Get("Location")
	assert.True(t, strings.HasPrefix(location, apphttp.LoginPath+"?"), location)

	req = httptest.NewRequest(http.MethodGet, location, nil)
	page, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer page.Body.Close()
	body, _ := io.ReadAll(page.Body)
	assert.Contains(t, string(body), "Invalid username or password")
}

func TestLogin_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	s := newServer(t, nil)

	wrong := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "admin", "password": "nope"})
	wrongBody, _ := io.ReadAll(wrong.Body)
	wrong.Body.Close()
	unknown := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "ghost", "password": "nope"})
	unknownBody, _ := io.ReadAll(unknown.Body)
	unknown.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, wrong.StatusCode)
	assert.Equal(t, wrong.StatusCode, unknown.StatusCode)
	assert.Equal(t, string(wrongBody), string(unknownBody))
	assert.Contains(t, string(wrongBody), "INVALID_CREDENTIALS")
}

func TestLogin_IsThrottledPerIP(t *testing.T) {
	s := newServer(t, apphttp.NewLoginLimiter(1, 2))
	body := map[string]string{"username": "admin", "password": "nope"}

	for range 2 {
		resp := s.do(t, http.MethodPost, "/api/auth/login", "", body)
		resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
	res := s.do(t, http.MethodPost, "/api/auth/login", "", body)
	assert.Equal(t, http.StatusTooManyRequests, res.StatusCode)
	assert.Equal(t, "TOO_MANY_REQUESTS", decode(t, res).Code)
}

func TestLogout_ClearsCookie(t *testing.T) {
	s := newServer(t, nil)
	resp := s.do(t, http.MethodPost, "/api/auth/logout", "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Set-Cookie"), testCookieName+"=;")
}

func TestForgotPassword_IsNeutral(t *testing.T) {
	s := newServer(t, nil)
	known := decode(t, s.do(t, http.MethodPost, "/api/auth/forgot-password", "", map[string]string{"email": "admin@rationshop.local"}))
	unknown := decode(t, s.do(t, http.MethodPost, "/api/auth/forgot-password", "", map[string]string{"email": "nobody@example.com"}))

	assert.True(t, known.Success)
	assert.Equal(t, auth.ForgotPasswordMessage, known.Message)
	assert.Equal(t, known.Message, unknown.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Public directory
// ──────────────────────────────────────────────────────────────────────────────

func TestDirectory_IsPublicAndHidesStock(t *testing.T) {
	s := newServer(t, nil)

	res := decode(t, s.do(t, http.MethodGet, "/api/districts", "", nil))
	var districts []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &districts))
	require.Len(t, districts, 3)
	assert.Equal(t, "Chennai", districts[0].Name)

	res = decode(t, s.do(t, http.MethodGet, "/api/districts/"+districts[0].ID+"/shops", "", nil))
	var shops struct {
		Shops []struct {
			Name        string `json:"name"`
			ManagerName string `json:"manager_name"`
		} `json:"shops"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &shops))
	assert.Len(t, shops.Shops, 2)

	resp := s.do(t, http.MethodGet, "/api/shops/"+s.annaID, "", nil)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Ramesh Kumar")
	assert.NotContains(t, string(body), "quantity")

	resp = s.do(t, http.MethodGet, "/api/shops/"+s.annaID+"/stock", "", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProducts_OrderedByName(t *testing.T) {
	s := newServer(t, nil)
	res := decode(t, s.do(t, http.MethodGet, "/api/products", "", nil))
	var products []struct {
		Name string `json:"product_name"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &products))
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Kerosene", "Oil", "Rice", "Salt", "Sugar", "Wheat"}, names)
}

// ──────────────────────────────────────────────────────────────────────────────
// Shop stock: the route shared by both roles
// ──────────────────────────────────────────────────────────────────────────────

func TestShopStock_ManagerSeesOnlyOwnShop(t *testing.T) {
	s := newServer(t, nil)
	tok := s.login(t, "manager1", managerPassword)

	resp := s.do(t, http.MethodGet, "/api/shops/"+s.annaID+"/stock", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var data stockData
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &data))
	assert.Equal(t, s.annaID, data.Shop.ID)
	require.Len(t, data.Stock, 5)
	assert.Equal(t, "Oil", data.Stock[0].ProductName)

	read := func(path string) (int, string) {
		r := s.do(t, http.MethodGet, path, tok, nil)
		b, _ := io.ReadAll(r.Body)
		r.Body.Close()
		return r.StatusCode, string(b)
	}
	foreignStatus, foreignBody := read("/api/shops/" + s.tNagarID + "/stock")
	missingStatus, missingBody := read("/api/shops/" + uuid.NewString() + "/stock")
	garbageStatus, garbageBody := read("/api/shops/not-a-uuid/stock")

	assert.Equal(t, http.StatusUnauthorized, foreignStatus)
	assert.Equal(t, foreignStatus, missingStatus)
	assert.Equal(t, foreignStatus, garbageStatus)
	assert.Equal(t, foreignBody, missingBody)
	assert.Equal(t, foreignBody, garbageBody)
}

func TestShopStock_AdminSeesAnyShop(t *testing.T) {
	s := newServer(t, nil)
	tok := s.login(t, "admin", adminPassword)

	resp := s.do(t, http.MethodGet, "/api/shops/"+s.tNagarID+"/stock", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var data stockData
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &data))
	assert.Len(t, data.Stock, 3)

	resp = s.do(t, http.MethodGet, "/api/shops/"+uuid.NewString()+"/stock", tok, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode(t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Branch (manager) routes
// ──────────────────────────────────────────────────────────────────────────────

func TestBranch_SetQuantity(t *testing.T) {
	s := newServer(t, nil)
	tok := s.login(t, "manager1", managerPassword)

	resp := s.do(t, http.MethodPost, "/api/branch/stock", tok, map[string]any{
		"product_id": s.riceID, "quantity": 480.5, "shop_id": s.tNagarID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp)

	// shop_id in the body is ignored: the write landed on the manager's own shop.
	admin := s.login(t, "admin", adminPassword)
	var anna, tNagar stockData
	require.NoError(t, json.Unmarshal(decode(t, s.do(t, http.MethodGet, "/api/shops/"+s.annaID+"/stock", admin, nil)).Data, &anna))
	require.NoError(t, json.Unmarshal(decode(t, s.do(t, http.MethodGet, "/api/shops/"+s.tNagarID+"/stock", admin, nil)).Data, &tNagar))
	for _, e := range anna.Stock {
		if e.ProductID == s.riceID {
			assert.Equal(t, "480.5", e.Quantity)
		}
	}
	for _, e := range tNagar.Stock {
		if e.ProductID == s.riceID {
			assert.Equal(t, "400", e.Quantity)
		}
	}

	for _, bad := range []any{-1, "abc", "NaN", "", "0.0004", "1e20", "12345678901234.5"} {
		resp := s.do(t, http.MethodPost, "/api/branch/stock", tok, map[string]any{"product_id": s.riceID, "quantity": bad})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "quantity %v", bad)
		assert.Equal(t, "VALIDATION", decode(t, resp).Code)
	}

	resp = s.do(t, http.MethodPost, "/api/branch/stock", tok, map[string]any{"product_id": uuid.NewString(), "quantity": 1})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestBranch_AddProduct(t *testing.T) {
	s := newServer(t, nil)
	tok := s.login(t, "manager1", managerPassword)

	res := decode(t, s.do(t, http.MethodGet, "/api/branch/unstocked", tok, nil))
	assert.Contains(t, string(res.Data), s.keroID)

	resp := s.do(t, http.MethodPost, "/api/branch/products", tok, map[string]any{"product_id": s.keroID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var entry struct {
		Quantity string `json:"quantity"`
	}
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &entry))
	assert.Equal(t, "0", entry.Quantity)

	resp = s.do(t, http.MethodPost, "/api/branch/products", tok, map[string]any{"product_id": s.keroID, "quantity": 5})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", decode(t, resp).Code)

	res = decode(t, s.do(t, http.MethodGet, "/api/branch/unstocked", tok, nil))
	assert.NotContains(t, string(res.Data), s.keroID)
}

func TestBranch_Dashboard(t *testing.T) {
	s := newServer(t, nil)
	tok := s.login(t, "manager1", managerPassword)

	res := decode(t, s.do(t, http.MethodGet, "/api/branch/dashboard", tok, nil))
	var data struct {
		Shop struct {
			Name         string `json:"name"`
			DistrictName string `json:"district_name"`
		} `json:"shop"`
		Stock     []any `json:"stock"`
		Available []any `json:"available_products"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &data))
	assert.Equal(t, "Anna Nagar Ration Shop", data.Shop.Name)
	assert.Equal(t, "Chennai", data.Shop.DistrictName)
	assert.Len(t, data.Stock, 5)
	assert.Len(t, data.Available, 1)
}

func TestBranch_StockSheetPDF(t *testing.T) {
	s := newServer(t, nil)
	tok := s.login(t, "manager1", managerPassword)

	resp := s.do(t, http.MethodGet, "/api/branch/stock.pdf", tok, nil)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestBranch_AdminIsDenied(t *testing.T) {
	s := newServer(t, nil)
	tok := s.login(t, "admin", adminPassword)

	resp := s.do(t, http.MethodGet, "/api/branch/dashboard", tok, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Admin routes
// ──────────────────────────────────────────────────────────────────────────────

func TestAdmin_ManagerIsDenied(t *testing.T) {
	s := newServer(t, nil)
	tok := s.login(t, "manager1", managerPassword)

	for _, path := range []string{"/api/admin/dashboard", "/api/admin/shops", "/api/admin/shops/" + s.annaID} {
		resp := s.do(t, http.MethodGet, path, tok, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		resp.Body.Close()
	}
	resp := s.do(t, http.MethodPost, "/api/admin/districts", tok, map[string]string{"district_name": "Salem"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestAdmin_PageRequestWithoutSessionIsRedirected(t *testing.T) {
	s := newServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req.Header.Set("Accept", "text/html")
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, apphttp.LoginPath, resp.Header.Get("Location"))
}

func TestAdmin_Dashboard(t *testing.T) {
	s := newServer(t, nil)
	tok := s.login(t, "admin", adminPassword)

	res := decode(t, s.do(t, http.MethodGet, "/api/admin/dashboard", tok, nil))
	var data struct {
		Districts int `json:"district_count"`
		Shops     int `json:"shop_count"`
		Products  int `json:"product_count"`
		Managers  int `json:"manager_count"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &data))
	assert.Equal(t, 3, data.Districts)
	assert.Equal(t, 3, data.Shops)
	assert.Equal(t, 6, data.Products)
	assert.Equal(t, 1, data.Managers)
}

func TestAdmin_CreateDistrictAndShop(t *testing.T) {
	s := newServer(t, nil)
	tok := s.login(t, "admin", adminPassword)

	resp := s.do(t, http.MethodPost, "/api/admin/districts", tok, map[string]string{"district_name": "Chennai"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = s.do(t, http.MethodPost, "/api/admin/districts", tok, map[string]string{"district_name": "  "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = s.do(t, http.MethodPost, "/api/admin/districts", tok, map[string]string{"district_name": "Salem"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var district struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &district))

	resp = s.do(t, http.MethodPost, "/api/admin/shops", tok, map[string]string{
		"shop_name": "Fairlands Ration Shop", "district_id": district.ID, "address": "Fairlands",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = s.do(t, http.MethodPost, "/api/admin/shops", tok, map[string]string{
		"shop_name": "Nowhere", "district_id": uuid.NewString(),
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestAdmin_AssignManager(t *testing.T) {
	s := newServer(t, nil)
	tok := s.login(t, "admin", adminPassword)

	res := decode(t, s.do(t, http.MethodGet, "/api/admin/shops/unmanaged", tok, nil))
	assert.Contains(t, string(res.Data), s.tNagarID)
	assert.NotContains(t, string(res.Data), s.annaID)

	hire := map[string]string{
		"shop_id": s.tNagarID, "username": "priya", "email": "priya@example.com",
		"password": "priya-password", "name": "Priya", "contact": "9876543210",
	}
	resp := s.do(t, http.MethodPost, "/api/admin/managers", tok, hire)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	hire["username"], hire["email"] = "priya2", "priya2@example.com"
	resp = s.do(t, http.MethodPost, "/api/admin/managers", tok, hire)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	hire["password"] = strings.Repeat("p", 80)
	resp = s.do(t, http.MethodPost, "/api/admin/managers", tok, hire)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode(t, resp).Code)

	// The new manager can log in and works on T Nagar.
	mtok := s.login(t, "priya", "priya-password")
	resp = s.do(t, http.MethodGet, "/api/shops/"+s.tNagarID+"/stock", mtok, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestAdmin_StockSheetPDF(t *testing.T) {
	s := newServer(t, nil)
	tok := s.login(t, "admin", adminPassword)

	resp := s.do(t, http.MethodGet, "/api/admin/shops/"+s.tNagarID+"/stock.pdf", tok, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Profile, health and metrics
// ──────────────────────────────────────────────────────────────────────────────

func TestProfile_ReadAndUpdate(t *testing.T) {
	s := newServer(t, nil)
	tok := s.login(t, "manager1", managerPassword)

	res := decode(t, s.do(t, http.MethodGet, "/api/profile", tok, nil))
	assert.Contains(t, string(res.Data), "manager1@rationshop.local")

	resp := s.do(t, http.MethodPut, "/api/profile", tok, map[string]string{
		"name": "Ramesh K", "email": "ramesh@example.com", "contact": "9000000000",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var user struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &user))
	assert.Equal(t, "Ramesh K", user.Name)
	assert.Equal(t, "ramesh@example.com", user.Email)
	assert.Equal(t, "manager", user.Role)

	resp = s.do(t, http.MethodPut, "/api/profile", tok, map[string]string{
		"name": "Ramesh K", "email": "admin@rationshop.local",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = s.do(t, http.MethodGet, "/api/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestHealthAndMetrics(t *testing.T) {
	s := newServer(t, nil)
	tok := s.login(t, "manager1", managerPassword)
	resp := s.do(t, http.MethodPost, "/api/branch/stock", tok, map[string]any{"product_id": s.riceID, "quantity": 10})
	resp.Body.Close()

	resp = s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.do(t, http.MethodGet, "/metrics", "", nil)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `auth_login_attempts_total{outcome="success"} 1`)
	assert.Contains(t, string(body), `ledger_writes_total{op="set_quantity",outcome="ok"} 1`)
	assert.Contains(t, string(body), `endpoint="/api/branch/stock"`)
}
