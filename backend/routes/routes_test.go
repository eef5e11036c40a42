package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"mylegs/backend/config"
	"mylegs/backend/session"
	"mylegs/backend/store"
	"mylegs/backend/tutor"
)

func newTestApp(t *testing.T, tutorURL string) (*fiber.App, Dependencies) {
	t.Helper()

	cfg := &config.Config{
		ServerPort:    "8080",
		JWTSecret:     "testsecret",
		StorageDriver: "memory",
	}

	kv := store.NewMemoryKV()
	ctx := context.Background()
	deps := Dependencies{
		Config:     cfg,
		Directory:  store.NewDirectory(store.SeedUsers()),
		Tiers:      store.NewTierRegistry(store.SeedTiers()),
		Catalog:    store.NewCatalog(store.SeedCatalog()),
		Binder:     store.NewBinder(ctx, kv),
		Progress:   store.NewProgress(ctx, kv),
		Activities: store.NewActivityLog(),
		Tutor:      tutor.NewClient(tutorURL, "test-key"),
	}
	deps.Sessions = session.NewManager(deps.Directory, deps.Tiers)

	app := fiber.New()
	SetupRoutes(app, deps)
	return app, deps
}

func jsonRequest(method, target string, body interface{}, token string) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	resp, err := app.Test(jsonRequest("POST", "/api/auth/login",
		map[string]string{"email": email, "password": password}, ""))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	return data["token"].(string)
}

func TestLoginAndProfile(t *testing.T) {
	app, _ := newTestApp(t, "")
	token := login(t, app, "sarah@student.unisza.edu.my", "123")

	resp, err := app.Test(jsonRequest("GET", "/api/auth/profile", nil, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	tier := data["tier"].(map[string]interface{})
	assert.Equal(t, "sarah@student.unisza.edu.my", user["email"])
	assert.Equal(t, "premium", tier["id"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, _ := newTestApp(t, "")

	resp, err := app.Test(jsonRequest("POST", "/api/auth/login",
		map[string]string{"email": "sarah@student.unisza.edu.my", "password": "nope"}, ""))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	app, _ := newTestApp(t, "")

	resp, err := app.Test(jsonRequest("GET", "/api/topics", nil, ""))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestTokenRejectedAfterLogout(t *testing.T) {
	app, _ := newTestApp(t, "")
	token := login(t, app, "sarah@student.unisza.edu.my", "123")

	resp, err := app.Test(jsonRequest("POST", "/api/auth/logout", nil, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(jsonRequest("GET", "/api/topics", nil, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGuestLogin(t *testing.T) {
	app, _ := newTestApp(t, "")

	resp, err := app.Test(jsonRequest("POST", "/api/auth/guest", nil, ""))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	assert.Equal(t, session.GuestEmail, user["email"])
	assert.Equal(t, "free", user["tierId"])
}

func TestTopicsLockedByTier(t *testing.T) {
	app, _ := newTestApp(t, "")
	token := login(t, app, "john@gmail.com", "123") // free tier, limit 3

	resp, err := app.Test(jsonRequest("GET", "/api/topics", nil, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	topics := data["topics"].([]interface{})
	assert.Len(t, topics, 10)
	assert.Equal(t, false, topics[0].(map[string]interface{})["locked"])
	assert.Equal(t, false, topics[2].(map[string]interface{})["locked"])
	assert.Equal(t, true, topics[3].(map[string]interface{})["locked"])
}

func TestLockedTopicDetailsReturnUpgradePrompt(t *testing.T) {
	app, _ := newTestApp(t, "")
	token := login(t, app, "john@gmail.com", "123")

	resp, err := app.Test(jsonRequest("GET", "/api/topics/t4", nil, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	result := decodeBody(t, resp)
	details := result["details"].(map[string]interface{})
	assert.Equal(t, true, details["upgradeRequired"])
}

func TestUpgradeUnlocksCurriculum(t *testing.T) {
	app, _ := newTestApp(t, "")
	token := login(t, app, "john@gmail.com", "123")

	resp, err := app.Test(jsonRequest("POST", "/api/auth/upgrade", nil, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest("GET", "/api/topics/t10", nil, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestTopicDetailsResolveRelatedMaterial(t *testing.T) {
	app, _ := newTestApp(t, "")
	token := login(t, app, "sarah@student.unisza.edu.my", "123")

	resp, err := app.Test(jsonRequest("GET", "/api/topics/t1", nil, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Len(t, data["statutes"].([]interface{}), 1)
	assert.Len(t, data["caseSummaries"].([]interface{}), 2)
}

func TestBinderFlow(t *testing.T) {
	app, _ := newTestApp(t, "")
	token := login(t, app, "sarah@student.unisza.edu.my", "123")

	item := map[string]string{"id": "s1", "title": "Federal Constitution", "type": "statute"}
	resp, err := app.Test(jsonRequest("POST", "/api/binder/bookmarks/toggle", item, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, true, data["bookmarked"])

	resp, err = app.Test(jsonRequest("GET", "/api/binder/", nil, token))
	assert.NoError(t, err)
	data = decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Len(t, data["bookmarks"].([]interface{}), 1)

	// Second toggle removes it.
	resp, err = app.Test(jsonRequest("POST", "/api/binder/bookmarks/toggle", item, token))
	assert.NoError(t, err)
	data = decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, false, data["bookmarked"])
}

func TestBinderQuotaForFreeTier(t *testing.T) {
	app, _ := newTestApp(t, "")
	token := login(t, app, "john@gmail.com", "123")

	for i := 1; i <= 3; i++ {
		item := map[string]string{"id": fmt.Sprintf("s%d", i), "title": fmt.Sprintf("Statute %d", i), "type": "statute"}
		resp, err := app.Test(jsonRequest("POST", "/api/binder/bookmarks/toggle", item, token))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	item := map[string]string{"id": "s4", "title": "Statute 4", "type": "statute"}
	resp, err := app.Test(jsonRequest("POST", "/api/binder/bookmarks/toggle", item, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	details := decodeBody(t, resp)["details"].(map[string]interface{})
	assert.Equal(t, true, details["upgradeRequired"])
}

func TestFolderGating(t *testing.T) {
	app, _ := newTestApp(t, "")

	// Free tier is refused.
	token := login(t, app, "john@gmail.com", "123")
	resp, err := app.Test(jsonRequest("POST", "/api/binder/folders", map[string]string{"name": "Cases"}, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Paid tier creates and deletes.
	token = login(t, app, "sarah@student.unisza.edu.my", "123")
	resp, err = app.Test(jsonRequest("POST", "/api/binder/folders", map[string]string{"name": "Cases"}, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	folder := decodeBody(t, resp)["data"].(map[string]interface{})["folder"].(map[string]interface{})
	resp, err = app.Test(jsonRequest("DELETE", "/api/binder/folders/"+folder["id"].(string), nil, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestProgressFlow(t *testing.T) {
	app, _ := newTestApp(t, "")
	token := login(t, app, "sarah@student.unisza.edu.my", "123")

	resp, err := app.Test(jsonRequest("POST", "/api/progress/toggle", map[string]string{"topicId": "t1"}, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, true, data["completed"])
	assert.Equal(t, float64(1), data["progress"])

	resp, err = app.Test(jsonRequest("GET", "/api/progress", nil, token))
	assert.NoError(t, err)
	data = decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, float64(10), data["totalTopics"])
	assert.Len(t, data["completedTopics"].([]interface{}), 1)
}

func TestViewerPreview(t *testing.T) {
	app, _ := newTestApp(t, "")
	token := login(t, app, "sarah@student.unisza.edu.my", "123")

	resp, err := app.Test(jsonRequest("GET",
		"/api/viewer/preview?title=Topic+1+Notes&url=https://drive.google.com/file/d/abc/view", nil, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, "Course Notes", data["category"])
	assert.Equal(t, "https://drive.google.com/file/d/abc/preview", data["previewUrl"])
}

func TestChatImageRequiresPremium(t *testing.T) {
	app, _ := newTestApp(t, "")
	token := login(t, app, "john@gmail.com", "123")

	resp, err := app.Test(jsonRequest("POST", "/api/chat", map[string]interface{}{
		"message": "What is this?",
		"image":   map[string]string{"mimeType": "image/png", "data": "aGVsbG8="},
	}, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	details := decodeBody(t, resp)["details"].(map[string]interface{})
	assert.Equal(t, true, details["upgradeRequired"])
}

func TestChatStreamsTutorResponse(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, `data: {"candidates":[{"content":{"parts":[{"text":"Hello student"}]}}]}`+"\n\n")
	}))
	defer upstream.Close()

	app, _ := newTestApp(t, upstream.URL)
	token := login(t, app, "sarah@student.unisza.edu.my", "123")

	resp, err := app.Test(jsonRequest("POST", "/api/chat",
		map[string]string{"message": "Hi"}, token), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `data: "Hello student"`)
	assert.Contains(t, string(body), "event: done")
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	app, _ := newTestApp(t, "")
	token := login(t, app, "sarah@student.unisza.edu.my", "123")

	resp, err := app.Test(jsonRequest("GET", "/api/admin/users", nil, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminUserCRUD(t *testing.T) {
	app, _ := newTestApp(t, "")
	token := login(t, app, "admin@mylegs.app", "admin")

	// Create
	resp, err := app.Test(jsonRequest("POST", "/api/admin/users", map[string]string{
		"name": "New Student", "email": "new@student.edu.my", "password": "secret", "tierId": "free",
	}, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	user := decodeBody(t, resp)["data"].(map[string]interface{})["user"].(map[string]interface{})
	id := user["id"].(string)
	assert.NotEmpty(t, id)

	// Duplicate email refused
	resp, err = app.Test(jsonRequest("POST", "/api/admin/users", map[string]string{
		"name": "Clone", "email": "new@student.edu.my", "password": "secret",
	}, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Update
	resp, err = app.Test(jsonRequest("PUT", "/api/admin/users/"+id,
		map[string]string{"name": "Renamed Student"}, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := decodeBody(t, resp)["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "Renamed Student", updated["name"])

	// Delete
	resp, err = app.Test(jsonRequest("DELETE", "/api/admin/users/"+id, nil, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(jsonRequest("DELETE", "/api/admin/users/"+id, nil, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAdminTierLifecycle(t *testing.T) {
	app, _ := newTestApp(t, "")
	token := login(t, app, "admin@mylegs.app", "admin")

	// The default tier cannot be removed.
	resp, err := app.Test(jsonRequest("DELETE", "/api/admin/tiers/free", nil, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// A custom tier comes and goes.
	resp, err = app.Test(jsonRequest("POST", "/api/admin/tiers", map[string]interface{}{
		"name": "Campus", "price": 3.90, "moduleLimit": 4,
	}, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	tier := decodeBody(t, resp)["data"].(map[string]interface{})["tier"].(map[string]interface{})
	resp, err = app.Test(jsonRequest("DELETE", "/api/admin/tiers/"+tier["id"].(string), nil, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestAdminTopicCRUDAffectsCatalog(t *testing.T) {
	app, deps := newTestApp(t, "")
	token := login(t, app, "admin@mylegs.app", "admin")

	resp, err := app.Test(jsonRequest("POST", "/api/admin/topics",
		map[string]interface{}{"title": "Topic 11: Cyber Law"}, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, 11, deps.Catalog.TopicCount())

	topic := decodeBody(t, resp)["data"].(map[string]interface{})["topic"].(map[string]interface{})
	resp, err = app.Test(jsonRequest("DELETE", "/api/admin/topics/"+topic["id"].(string), nil, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 10, deps.Catalog.TopicCount())
}

func TestAdminDashboardAndActivities(t *testing.T) {
	app, _ := newTestApp(t, "")
	token := login(t, app, "admin@mylegs.app", "admin")

	resp, err := app.Test(jsonRequest("GET", "/api/admin/dashboard", nil, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, float64(4), data["totalUsers"])
	assert.Equal(t, float64(10), data["totalTopics"])

	// The admin login itself is on the activity feed.
	resp, err = app.Test(jsonRequest("GET", "/api/admin/activities", nil, token))
	assert.NoError(t, err)
	data = decodeBody(t, resp)["data"].(map[string]interface{})
	activities := data["activities"].([]interface{})
	assert.NotEmpty(t, activities)
}

func TestAdminChatbotConfigUpdate(t *testing.T) {
	app, deps := newTestApp(t, "")
	token := login(t, app, "admin@mylegs.app", "admin")

	resp, err := app.Test(jsonRequest("PUT", "/api/admin/chatbot",
		map[string]interface{}{"maxOutputTokens": 800}, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 800, deps.Catalog.ChatbotConfig().MaxOutputTokens)
}

func TestJudgmentSearch(t *testing.T) {
	app, _ := newTestApp(t, "")
	token := login(t, app, "sarah@student.unisza.edu.my", "123")

	resp, err := app.Test(jsonRequest("POST", "/api/judgments/search",
		map[string]string{"generalSearch": "constitution"}, token))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
