package auth

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"carebase-api/config"
	"carebase-api/internal/logs"
	"carebase-api/internal/util"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique in-memory DB per test to avoid cross-test contamination
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&User{}, &OTP{}, &logs.SystemLog{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	return &AuthService{DB: newTestDB(t), CFG: &config.Config{}}
}

// stubMail swaps out the SMTP sender for the duration of a test and
// records what would have been sent.
type stubMail struct {
	to      []string
	message []byte
	err     error
}

func (m *stubMail) install(t *testing.T) {
	t.Helper()
	orig := sendMail
	sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		m.to = to
		m.message = msg
		return m.err
	}
	t.Cleanup(func() { sendMail = orig })
}

func seedUser(t *testing.T, db *gorm.DB, email, plain string) *User {
	t.Helper()

	hashed, err := util.HashPassword(plain)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &User{
		Name:       "山田太郎",
		Email:      email,
		Password:   hashed,
		Role:       "admin",
		FacilityID: "fac1",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func setupAuthRouter(svc *AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, svc, &logs.LogService{DB: svc.DB})
	return r
}

func postJSON(r http.Handler, path string, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func doReq(r http.Handler, method, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

func cookieValue(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

func requireContains(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Fatalf("expected %q to contain %q", s, sub)
	}
}
