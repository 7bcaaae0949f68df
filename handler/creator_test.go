package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"Fanhub/config"
	"Fanhub/types"

	"github.com/gin-gonic/gin"
)

type fakeCreatorService struct{}

func (fakeCreatorService) BecomeCreator(ctx context.Context, profileID int64, req *types.BecomeCreatorRequest) (int64, error) {
	return 0, nil
}

func (fakeCreatorService) UpdateCreator(ctx context.Context, profileID int64, req *types.UpdateCreatorRequest) error {
	return nil
}

func (fakeCreatorService) Discover(ctx context.Context, viewerID int64, limit, offset int) (*types.DiscoverResponse, error) {
	return &types.DiscoverResponse{Creators: []*types.Creator{}}, nil
}

func (fakeCreatorService) GetCreator(ctx context.Context, viewerID, creatorID int64) (*types.Creator, error) {
	return &types.Creator{ID: creatorID}, nil
}

func (fakeCreatorService) ListByIDs(ctx context.Context, viewerID int64, ids []int64) ([]*types.Creator, error) {
	return []*types.Creator{}, nil
}

type fakePostService struct{}

func (fakePostService) CreatePost(ctx context.Context, profileID int64, req *types.CreatePostRequest) (int64, error) {
	return 0, nil
}

func (fakePostService) HomeFeed(ctx context.Context, viewerID int64, limit, offset int) ([]*types.PostView, error) {
	return []*types.PostView{}, nil
}

func (fakePostService) CreatorPosts(ctx context.Context, viewerID, creatorID int64, limit, offset int) ([]*types.PostView, error) {
	return []*types.PostView{}, nil
}

func (fakePostService) SuggestTags(ctx context.Context, caption, mediaURL string) []string {
	return []string{}
}

func newCreatorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &Creator{
		Config:         &config.Config{Jwt: &config.Jwt{Secret: "test-secret"}},
		CreatorService: fakeCreatorService{},
		PostService:    fakePostService{},
	}
	h.RegisterRouter(r)
	return r
}

func envelopeCode(t *testing.T, w *httptest.ResponseRecorder) int {
	t.Helper()
	var resp struct {
		Code int `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body %q: %v", w.Body.String(), err)
	}
	return resp.Code
}

func TestGetCreator_OK(t *testing.T) {
	r := newCreatorRouter()
	req := httptest.NewRequest(http.MethodGet, "/v1/creator/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if code := envelopeCode(t, w); code != 0 {
		t.Fatalf("expected code 0, got %d", code)
	}
}

func TestGetCreator_BadPageQuery(t *testing.T) {
	r := newCreatorRouter()
	req := httptest.NewRequest(http.MethodGet, "/v1/creator/1?page=abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// 分页参数不合法要报参数错误，不能静默按默认值处理
	if code := envelopeCode(t, w); code != http.StatusBadRequest {
		t.Fatalf("expected code 400, got %d", code)
	}
}

func TestGetCreator_BadID(t *testing.T) {
	r := newCreatorRouter()
	req := httptest.NewRequest(http.MethodGet, "/v1/creator/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if code := envelopeCode(t, w); code != http.StatusBadRequest {
		t.Fatalf("expected code 400, got %d", code)
	}
}
