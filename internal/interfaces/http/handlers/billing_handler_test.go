package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"mailcraft.backend/internal/domain/entities"
	"mailcraft.backend/internal/interfaces/http/middleware"
	"mailcraft.backend/internal/usecases"
)

func newBillingRouter(store *teamStore, actorID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	uc := usecases.NewBillingUsecase(&teamRepoStub{store}, "https://billing.example.com/p")
	h := NewBillingHandler(uc)

	r := gin.New()
	if actorID != uuid.Nil {
		r.Use(func(c *gin.Context) { c.Set(middleware.UserIDKey, actorID) })
	}
	r.GET("/billing/portal", h.Portal)
	r.GET("/billing/portal-url", h.PortalURL)
	return r
}

func TestBillingHandler_PortalRedirect(t *testing.T) {
	store := newTeamStore()
	store.team.StripeCustomerID = null.StringFrom("cus_123")
	owner := store.addMember("owner@example.com", entities.UserRoleOwner, 1)
	r := newBillingRouter(store, owner.UserID)

	req := httptest.NewRequest(http.MethodGet, "/billing/portal", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("expected 307, got %d body=%s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "https://billing.example.com/p/cus_123" {
		t.Fatalf("unexpected redirect target: %s", loc)
	}
}

func TestBillingHandler_PortalURL(t *testing.T) {
	store := newTeamStore()
	store.team.StripeCustomerID = null.StringFrom("cus_123")
	owner := store.addMember("owner@example.com", entities.UserRoleOwner, 1)
	r := newBillingRouter(store, owner.UserID)

	req := httptest.NewRequest(http.MethodGet, "/billing/portal-url", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != `{"url":"https://billing.example.com/p/cus_123"}` {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestBillingHandler_NoTeam(t *testing.T) {
	r := newBillingRouter(newTeamStore(), uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/billing/portal", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != `{"error":"No team found"}` {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestBillingHandler_NoBillingAccount(t *testing.T) {
	store := newTeamStore()
	owner := store.addMember("owner@example.com", entities.UserRoleOwner, 1)
	r := newBillingRouter(store, owner.UserID)

	req := httptest.NewRequest(http.MethodGet, "/billing/portal-url", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}
