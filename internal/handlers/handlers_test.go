package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/novafeed/backend/internal/models"
	"github.com/novafeed/backend/internal/repositories"
	"github.com/novafeed/backend/internal/service"
	"github.com/novafeed/backend/validators"
	"github.com/labstack/echo/v4"
)

func setupTestServer(t *testing.T) (*echo.Echo, *repositories.MemoryStore) {
	t.Helper()
	store := repositories.NewMemoryStore()

	toggleService := service.NewToggleService(store, store, store, store)
	feedService := service.NewFeedService(store, store, store, store, store)
	contentService := service.NewContentService(store, store, store)

	e := echo.New()
	e.Validator = validators.NewValidator()
	api := e.Group("/api/v1")

	NewUserHandler(store, feedService).RegisterUserRoutes(api)
	NewPostHandler(contentService, feedService).RegisterPostRoutes(api)
	NewCommentHandler(contentService).RegisterCommentRoutes(api)
	NewLikeHandler(toggleService, store).RegisterLikeRoutes(api)
	NewFollowHandler(toggleService).RegisterFollowRoutes(api)
	NewFeedHandler(feedService).RegisterFeedRoutes(api)
	e.GET("/health", HealthCheck)

	return e, store
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string, wantStatus int) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != wantStatus {
		t.Fatalf("%s %s: expected %d, got %d: %s", method, path, wantStatus, rec.Code, rec.Body.String())
	}
	return rec
}

func seedTestUser(t *testing.T, store *repositories.MemoryStore, name string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: name + "@example.com"}
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func seedTestPost(t *testing.T, store *repositories.MemoryStore, authorID uint, content string) *models.Post {
	t.Helper()
	post := &models.Post{AuthorID: authorID, Content: content}
	if err := store.CreatePost(context.Background(), post); err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	return post
}

func TestHealthCheck(t *testing.T) {
	e, _ := setupTestServer(t)
	doJSON(t, e, http.MethodGet, "/health", "", http.StatusOK)
}

func TestToggleLikeEndpoint(t *testing.T) {
	e, store := setupTestServer(t)
	a := seedTestUser(t, store, "alice")
	b := seedTestUser(t, store, "bob")
	post := seedTestPost(t, store, a.ID, "hello")

	body := fmt.Sprintf(`{"user_id": %d, "post_id": %d}`, b.ID, post.ID)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/likes", body, http.StatusOK)
	var resp map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp["liked"] {
		t.Fatalf("expected liked=true, got %v", resp)
	}

	rec = doJSON(t, e, http.MethodPost, "/api/v1/likes", body, http.StatusOK)
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["liked"] {
		t.Fatalf("expected liked=false on second toggle, got %v", resp)
	}
	if n := store.LikeRowCount(b.ID, post.ID); n != 0 {
		t.Fatalf("expected no like row after double toggle, got %d", n)
	}
}

func TestToggleLikeUnknownPostIs404(t *testing.T) {
	e, store := setupTestServer(t)
	b := seedTestUser(t, store, "bob")

	body := fmt.Sprintf(`{"user_id": %d, "post_id": 9999}`, b.ID)
	doJSON(t, e, http.MethodPost, "/api/v1/likes", body, http.StatusNotFound)
}

func TestToggleLikeMissingFieldsIs400(t *testing.T) {
	e, _ := setupTestServer(t)
	doJSON(t, e, http.MethodPost, "/api/v1/likes", `{"user_id": 1}`, http.StatusBadRequest)
}

func TestToggleFollowEndpoint(t *testing.T) {
	e, store := setupTestServer(t)
	a := seedTestUser(t, store, "alice")
	b := seedTestUser(t, store, "bob")

	body := fmt.Sprintf(`{"follower_id": %d, "following_id": %d}`, a.ID, b.ID)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/follow", body, http.StatusOK)
	var resp map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp["following"] {
		t.Fatalf("expected following=true, got %v", resp)
	}

	rec = doJSON(t, e, http.MethodPost, "/api/v1/follow", body, http.StatusOK)
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["following"] {
		t.Fatalf("expected following=false on second toggle, got %v", resp)
	}
}

func TestCreateCommentEmptyContentIs400(t *testing.T) {
	e, store := setupTestServer(t)
	a := seedTestUser(t, store, "alice")
	post := seedTestPost(t, store, a.ID, "hello")

	body := fmt.Sprintf(`{"author_id": %d, "post_id": %d, "content": ""}`, a.ID, post.ID)
	doJSON(t, e, http.MethodPost, "/api/v1/comments", body, http.StatusBadRequest)
}

func TestCreateCommentUnknownPostIs404(t *testing.T) {
	e, store := setupTestServer(t)
	a := seedTestUser(t, store, "alice")

	body := fmt.Sprintf(`{"author_id": %d, "post_id": 9999, "content": "hi"}`, a.ID)
	doJSON(t, e, http.MethodPost, "/api/v1/comments", body, http.StatusNotFound)
}

func TestCreatePostAndReadFeed(t *testing.T) {
	e, store := setupTestServer(t)
	a := seedTestUser(t, store, "alice")
	b := seedTestUser(t, store, "bob")

	body := fmt.Sprintf(`{"author_id": %d, "content": "hello"}`, a.ID)
	rec := doJSON(t, e, http.MethodPost, "/api/v1/posts", body, http.StatusCreated)
	var post models.Post
	if err := json.Unmarshal(rec.Body.Bytes(), &post); err != nil {
		t.Fatalf("decoding post: %v", err)
	}

	likeBody := fmt.Sprintf(`{"user_id": %d, "post_id": %d}`, b.ID, post.ID)
	doJSON(t, e, http.MethodPost, "/api/v1/likes", likeBody, http.StatusOK)

	rec = doJSON(t, e, http.MethodGet, "/api/v1/feed", "", http.StatusOK)
	var feed struct {
		Posts []models.PostView `json:"posts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &feed); err != nil {
		t.Fatalf("decoding feed: %v", err)
	}
	if len(feed.Posts) != 1 {
		t.Fatalf("expected 1 feed post, got %d", len(feed.Posts))
	}
	v := feed.Posts[0]
	if v.Content != "hello" || v.Author.ID != a.ID {
		t.Errorf("unexpected post view: %+v", v)
	}
	if v.LikeCount != 1 || len(v.Likes) != 1 || v.Likes[0] != b.ID {
		t.Errorf("expected like set {%d} with count 1, got %+v", b.ID, v)
	}
}

func TestDeletePostRequiresAuthor(t *testing.T) {
	e, store := setupTestServer(t)
	a := seedTestUser(t, store, "alice")
	b := seedTestUser(t, store, "bob")
	post := seedTestPost(t, store, a.ID, "mine")

	doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/v1/posts/%d?requester_id=%d", post.ID, b.ID), "", http.StatusForbidden)
	doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/v1/posts/%d?requester_id=%d", post.ID, a.ID), "", http.StatusNoContent)
	doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/v1/posts/%d?requester_id=%d", post.ID, a.ID), "", http.StatusNotFound)
}

func TestGetUserProfileEndpoint(t *testing.T) {
	e, store := setupTestServer(t)
	a := seedTestUser(t, store, "alice")
	b := seedTestUser(t, store, "bob")
	seedTestPost(t, store, b.ID, "bob's post")

	followBody := fmt.Sprintf(`{"follower_id": %d, "following_id": %d}`, a.ID, b.ID)
	doJSON(t, e, http.MethodPost, "/api/v1/follow", followBody, http.StatusOK)

	rec := doJSON(t, e, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", b.ID), "", http.StatusOK)
	var view models.UserView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decoding profile: %v", err)
	}
	if view.ID != b.ID || len(view.Posts) != 1 {
		t.Errorf("unexpected profile: %+v", view)
	}
	if view.FollowerCount != 1 || len(view.Followers) != 1 || view.Followers[0] != a.ID {
		t.Errorf("expected follower set {%d}, got %+v", a.ID, view)
	}

	doJSON(t, e, http.MethodGet, "/api/v1/users/9999", "", http.StatusNotFound)
}

func TestLikeCountAndStatusEndpoints(t *testing.T) {
	e, store := setupTestServer(t)
	a := seedTestUser(t, store, "alice")
	b := seedTestUser(t, store, "bob")
	post := seedTestPost(t, store, a.ID, "hello")

	likeBody := fmt.Sprintf(`{"user_id": %d, "post_id": %d}`, b.ID, post.ID)
	doJSON(t, e, http.MethodPost, "/api/v1/likes", likeBody, http.StatusOK)

	rec := doJSON(t, e, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d/likes/count", post.ID), "", http.StatusOK)
	var countResp struct {
		LikesCount int64 `json:"likes_count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &countResp); err != nil {
		t.Fatalf("decoding count: %v", err)
	}
	if countResp.LikesCount != 1 {
		t.Errorf("expected likes_count 1, got %d", countResp.LikesCount)
	}

	rec = doJSON(t, e, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d/likes/status?user_id=%d", post.ID, b.ID), "", http.StatusOK)
	var statusResp struct {
		HasLiked bool `json:"has_liked"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &statusResp); err != nil {
		t.Fatalf("decoding status: %v", err)
	}
	if !statusResp.HasLiked {
		t.Errorf("expected has_liked=true")
	}
}

func TestCreateUserEndpoint(t *testing.T) {
	e, _ := setupTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/users", `{"name": "Jane Smith", "email": "jane@example.com", "bio": "Digital artist"}`, http.StatusCreated)
	var user models.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decoding user: %v", err)
	}
	if user.ID == 0 || user.Name != "Jane Smith" {
		t.Errorf("unexpected user: %+v", user)
	}

	doJSON(t, e, http.MethodPost, "/api/v1/users", `{"name": "X", "email": "not-an-email"}`, http.StatusBadRequest)
}
