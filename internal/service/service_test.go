package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/team-updates-api/internal/config"
	"github.com/team-updates-api/internal/mocks"
	"github.com/team-updates-api/internal/models"
	"github.com/team-updates-api/internal/service"
)

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		AdminUser:     "admin",
		AdminPassword: "hunter2",
		JWTSecret:     "unit-test-secret",
		TokenTTL:      time.Hour,
		LoginMinDelay: 20 * time.Millisecond,
	}
}

func kindOf(t *testing.T, err error) service.ErrorKind {
	t.Helper()
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		t.Fatalf("Expected *service.Error, got %T: %v", err, err)
	}
	return svcErr.Kind
}

func TestAuthService_LoginIssuesVerifiableToken(t *testing.T) {
	auth := service.NewAuthService(testAuthConfig(), zerolog.Nop())

	token, err := auth.Login(context.Background(), &models.LoginRequest{
		Username: "admin",
		Password: "hunter2",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	claims, err := auth.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken rejected a freshly issued token: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("Expected username admin, got %s", claims.Username)
	}
	if claims.Role != models.RoleAdmin {
		t.Errorf("Expected role admin, got %s", claims.Role)
	}
	if claims.ExpiresAt == nil {
		t.Fatal("Expected an expiry claim")
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 59*time.Minute || ttl > time.Hour {
		t.Errorf("Expected ~1h expiry, got %v", ttl)
	}
}

func TestAuthService_SingleFieldMismatchIsGeneric(t *testing.T) {
	auth := service.NewAuthService(testAuthConfig(), zerolog.Nop())

	attempts := []*models.LoginRequest{
		{Username: "wrong", Password: "hunter2"},
		{Username: "admin", Password: "wrong"},
		{Username: "wrong", Password: "wrong"},
	}

	var messages []string
	for _, req := range attempts {
		_, err := auth.Login(context.Background(), req)
		if kind := kindOf(t, err); kind != service.KindAuth {
			t.Errorf("Expected KindAuth, got %d", kind)
		}
		var svcErr *service.Error
		errors.As(err, &svcErr)
		messages = append(messages, svcErr.Message)
	}

	for i := 1; i < len(messages); i++ {
		if messages[i] != messages[0] {
			t.Errorf("Failure messages differ: %q vs %q", messages[0], messages[i])
		}
	}
}

func TestAuthService_ResponseFloor(t *testing.T) {
	cfg := testAuthConfig()
	cfg.LoginMinDelay = 50 * time.Millisecond
	auth := service.NewAuthService(cfg, zerolog.Nop())

	cases := []*models.LoginRequest{
		{Username: "admin", Password: "hunter2"}, // success
		{Username: "wrong", Password: "hunter2"}, // bad username
		{Username: "admin", Password: "wrong"},   // bad password
	}

	for _, req := range cases {
		start := time.Now()
		auth.Login(context.Background(), req)
		if elapsed := time.Since(start); elapsed < cfg.LoginMinDelay {
			t.Errorf("Login for %q returned in %v, below the %v floor",
				req.Username, elapsed, cfg.LoginMinDelay)
		}
	}
}

func TestAuthService_MissingConfig(t *testing.T) {
	for _, missing := range []string{"user", "password", "secret"} {
		cfg := testAuthConfig()
		switch missing {
		case "user":
			cfg.AdminUser = ""
		case "password":
			cfg.AdminPassword = ""
		case "secret":
			cfg.JWTSecret = ""
		}

		auth := service.NewAuthService(cfg, zerolog.Nop())
		_, err := auth.Login(context.Background(), &models.LoginRequest{
			Username: "admin", Password: "hunter2",
		})
		if kind := kindOf(t, err); kind != service.KindConfig {
			t.Errorf("Missing %s: expected KindConfig, got %d", missing, kind)
		}
	}
}

func TestAuthService_VerifyRejectsTamperedToken(t *testing.T) {
	auth := service.NewAuthService(testAuthConfig(), zerolog.Nop())

	token, err := auth.Login(context.Background(), &models.LoginRequest{
		Username: "admin", Password: "hunter2",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	// Flip the last character of the signature
	tampered := token[:len(token)-1] + "x"
	if tampered == token {
		tampered = token[:len(token)-1] + "y"
	}

	if _, err := auth.VerifyToken(tampered); err == nil {
		t.Error("Expected tampered token to be rejected")
	}

	otherCfg := testAuthConfig()
	otherCfg.JWTSecret = "a-different-secret"
	otherAuth := service.NewAuthService(otherCfg, zerolog.Nop())
	if _, err := otherAuth.VerifyToken(token); err == nil {
		t.Error("Expected token signed with another key to be rejected")
	}
}

func TestUpdateService_CreateDefaultsToDraft(t *testing.T) {
	mockRepo := mocks.NewMockUpdateRepository()
	svc := service.NewUpdateService(mockRepo, zerolog.Nop())

	update, err := svc.Create(context.Background(), &models.CreateUpdateRequest{
		Title: "T1", Body: "B1",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if update.Status != models.StatusDraft {
		t.Errorf("Expected draft status, got %s", update.Status)
	}
	if update.PublishedAt != nil {
		t.Error("Draft create must not stamp published_at")
	}
	if update.ID == "" || update.CreatedAt.IsZero() {
		t.Error("Expected server-assigned id and created_at")
	}
}

func TestUpdateService_CreatePublishedStampsTime(t *testing.T) {
	mockRepo := mocks.NewMockUpdateRepository()
	svc := service.NewUpdateService(mockRepo, zerolog.Nop())

	update, err := svc.Create(context.Background(), &models.CreateUpdateRequest{
		Title: "T1", Body: "B1", Status: models.StatusPublished,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if update.PublishedAt == nil {
		t.Error("Published create must stamp published_at")
	}
}

func TestUpdateService_TransitionLaws(t *testing.T) {
	mockRepo := mocks.NewMockUpdateRepository()
	svc := service.NewUpdateService(mockRepo, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateUpdateRequest{Title: "T1", Body: "B1"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// draft -> published: stamps published_at
	published, err := svc.Replace(ctx, &models.ReplaceUpdateRequest{
		ID: created.ID, Title: "T1", Body: "B1", Status: models.StatusPublished,
	})
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if published.PublishedAt == nil {
		t.Fatal("draft -> published must set published_at")
	}
	firstPublished := *published.PublishedAt

	// published -> published: edit preserves published_at
	edited, err := svc.Replace(ctx, &models.ReplaceUpdateRequest{
		ID: created.ID, Title: "T1-edited", Body: "B1", Status: models.StatusPublished,
	})
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if edited.PublishedAt == nil || !edited.PublishedAt.Equal(firstPublished) {
		t.Errorf("published -> published must preserve published_at: had %v, got %v",
			firstPublished, edited.PublishedAt)
	}

	// published -> draft: clears published_at
	reverted, err := svc.Replace(ctx, &models.ReplaceUpdateRequest{
		ID: created.ID, Title: "T1-edited", Body: "B1", Status: models.StatusDraft,
	})
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if reverted.PublishedAt != nil {
		t.Error("published -> draft must clear published_at")
	}

	// draft -> published again: a fresh stamp
	republished, err := svc.Replace(ctx, &models.ReplaceUpdateRequest{
		ID: created.ID, Title: "T1-edited", Body: "B1", Status: models.StatusPublished,
	})
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if republished.PublishedAt == nil {
		t.Error("Re-publishing a reverted draft must set published_at again")
	}
}

func TestUpdateService_ReplaceNotFound(t *testing.T) {
	mockRepo := mocks.NewMockUpdateRepository()
	svc := service.NewUpdateService(mockRepo, zerolog.Nop())

	_, err := svc.Replace(context.Background(), &models.ReplaceUpdateRequest{
		ID: "1b4e28ba-2fa1-11d2-883f-0016d3cca427", Title: "T", Body: "B", Status: models.StatusDraft,
	})
	if kind := kindOf(t, err); kind != service.KindNotFound {
		t.Errorf("Expected KindNotFound, got %d", kind)
	}
}

func TestUpdateService_DeleteSemantics(t *testing.T) {
	mockRepo := mocks.NewMockUpdateRepository()
	svc := service.NewUpdateService(mockRepo, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateUpdateRequest{Title: "T1", Body: "B1"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	other, err := svc.Create(ctx, &models.CreateUpdateRequest{Title: "T2", Body: "B2"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Unknown id: not found, table unchanged
	err = svc.Delete(ctx, "1b4e28ba-2fa1-11d2-883f-0016d3cca427")
	if kind := kindOf(t, err); kind != service.KindNotFound {
		t.Errorf("Expected KindNotFound, got %d", kind)
	}
	if len(mockRepo.Updates) != 2 {
		t.Errorf("Failed delete must leave the table unchanged, have %d rows", len(mockRepo.Updates))
	}

	// Existing id: removes exactly that row
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, exists := mockRepo.Updates[created.ID]; exists {
		t.Error("Deleted row still present")
	}
	if _, exists := mockRepo.Updates[other.ID]; !exists {
		t.Error("Delete removed an unrelated row")
	}
}

func TestUpdateService_ListPublishedLimitRange(t *testing.T) {
	mockRepo := mocks.NewMockUpdateRepository()
	svc := service.NewUpdateService(mockRepo, zerolog.Nop())
	ctx := context.Background()

	for _, limit := range []int{0, -1, 101, 1000} {
		_, err := svc.ListPublished(ctx, limit)
		if kind := kindOf(t, err); kind != service.KindClient {
			t.Errorf("limit %d: expected KindClient, got %d", limit, kind)
		}
	}
	if mockRepo.ListPublishedCalls != 0 {
		t.Errorf("Out-of-range limit must not reach the store, got %d calls", mockRepo.ListPublishedCalls)
	}

	for _, limit := range []int{1, 50, service.MaxListLimit} {
		if _, err := svc.ListPublished(ctx, limit); err != nil {
			t.Errorf("limit %d: unexpected error: %v", limit, err)
		}
	}
}

func TestUpdateService_MalformedIDSkipsStore(t *testing.T) {
	mockRepo := mocks.NewMockUpdateRepository()
	svc := service.NewUpdateService(mockRepo, zerolog.Nop())

	err := svc.Delete(context.Background(), "not-a-uuid")
	if kind := kindOf(t, err); kind != service.KindNotFound {
		t.Errorf("Expected KindNotFound, got %d", kind)
	}
	if mockRepo.DeleteCalls != 0 {
		t.Errorf("Malformed id must not reach the store, got %d delete calls", mockRepo.DeleteCalls)
	}
}

func TestUpdateService_StoreErrorsAreWrapped(t *testing.T) {
	mockRepo := mocks.NewMockUpdateRepository()
	mockRepo.ForcedError = errors.New("pq: connection reset")
	svc := service.NewUpdateService(mockRepo, zerolog.Nop())

	_, err := svc.ListAll(context.Background())
	if kind := kindOf(t, err); kind != service.KindStore {
		t.Errorf("Expected KindStore, got %d", kind)
	}

	var svcErr *service.Error
	errors.As(err, &svcErr)
	if svcErr.Message != "internal server error" {
		t.Errorf("Store error message must be generic, got %q", svcErr.Message)
	}
}

func TestUpdateService_EmptyListIsNotNull(t *testing.T) {
	mockRepo := mocks.NewMockUpdateRepository()
	svc := service.NewUpdateService(mockRepo, zerolog.Nop())

	list, err := svc.ListPublished(context.Background(), 20)
	if err != nil {
		t.Fatalf("ListPublished failed: %v", err)
	}
	if list.Updates == nil {
		t.Error("Expected an empty slice, not nil")
	}
	if list.Count != 0 {
		t.Errorf("Expected count 0, got %d", list.Count)
	}
}
