package auth

import (
	"net/http"
	"testing"
)

func TestLoginSetsCookies(t *testing.T) {
	svc := newTestService(t)
	seedUser(t, svc.DB, "taro@example.com", "secret1")
	r := setupAuthRouter(svc)

	w := postJSON(r, "/api/user/login", `{"email":"taro@example.com","password":"secret1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	resp := w.Result()
	if cookieValue(resp, "access_token") == "" {
		t.Error("missing access_token cookie")
	}
	if cookieValue(resp, "refresh_token") == "" {
		t.Error("missing refresh_token cookie")
	}
	requireContains(t, w.Body.String(), `"facility_id":"fac1"`)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t)
	seedUser(t, svc.DB, "taro@example.com", "secret1")
	r := setupAuthRouter(svc)

	w := postJSON(r, "/api/user/login", `{"email":"taro@example.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestService(t)
	r := setupAuthRouter(svc)

	w := postJSON(r, "/api/user/login", `{"email":"nobody@example.com","password":"secret1"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestMeWithAccessCookie(t *testing.T) {
	svc := newTestService(t)
	seedUser(t, svc.DB, "taro@example.com", "secret1")
	r := setupAuthRouter(svc)

	login := postJSON(r, "/api/user/login", `{"email":"taro@example.com","password":"secret1"}`)
	access := cookieValue(login.Result(), "access_token")
	if access == "" {
		t.Fatal("login did not set access_token")
	}

	w := doReq(r, http.MethodGet, "/api/user/me", &http.Cookie{Name: "access_token", Value: access})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	requireContains(t, w.Body.String(), `"email":"taro@example.com"`)
}

func TestMeWithoutCookie(t *testing.T) {
	svc := newTestService(t)
	r := setupAuthRouter(svc)

	w := doReq(r, http.MethodGet, "/api/user/me")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	svc := newTestService(t)
	seedUser(t, svc.DB, "taro@example.com", "secret1")
	r := setupAuthRouter(svc)

	login := postJSON(r, "/api/user/login", `{"email":"taro@example.com","password":"secret1"}`)
	refresh := cookieValue(login.Result(), "refresh_token")
	if refresh == "" {
		t.Fatal("login did not set refresh_token")
	}

	w := doReq(r, http.MethodPost, "/api/user/refresh", &http.Cookie{Name: "refresh_token", Value: refresh})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if cookieValue(w.Result(), "access_token") == "" {
		t.Error("refresh did not set a new access_token")
	}
}

func TestRefreshWithGarbageToken(t *testing.T) {
	svc := newTestService(t)
	r := setupAuthRouter(svc)

	w := doReq(r, http.MethodPost, "/api/user/refresh", &http.Cookie{Name: "refresh_token", Value: "garbage"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestLogoutClearsCookies(t *testing.T) {
	svc := newTestService(t)
	r := setupAuthRouter(svc)

	w := doReq(r, http.MethodPost, "/api/user/logout")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	for _, c := range w.Result().Cookies() {
		if c.MaxAge != -1 {
			t.Errorf("cookie %s MaxAge = %d, want -1", c.Name, c.MaxAge)
		}
	}
}

func TestSignUpCreatesUser(t *testing.T) {
	svc := newTestService(t)
	r := setupAuthRouter(svc)

	w := postJSON(r, "/api/user/signup", `{"name":"山田太郎","email":"taro@example.com","password":"secret1","facility_id":"fac1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var user User
	if err := svc.DB.Where("email = ?", "taro@example.com").First(&user).Error; err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if user.Password == "secret1" {
		t.Error("password stored in plain text")
	}
}
