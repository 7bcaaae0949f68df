package service

import (
	"testing"

	"Fanhub/types"
)

func validCreatePostRequest() *types.CreatePostRequest {
	return &types.CreatePostRequest{
		Type:       "image",
		MediaURL:   "https://cdn.example.com/a.jpg",
		Caption:    "hi",
		Tags:       []string{},
		Visibility: "public",
	}
}

func TestCacheableFirstPage(t *testing.T) {
	if !cacheableFirstPage(types.DefaultPageSize, 0) {
		t.Fatal("default-size first page should be cacheable")
	}
	// 缓存 key 不含 limit：非默认页大小的请求不能写也不能读缓存，
	// 否则 page_size=5 的请求会拿到缓存里的 20 条
	if cacheableFirstPage(5, 0) {
		t.Fatal("non-default page size must bypass the page cache")
	}
	if cacheableFirstPage(types.DefaultPageSize, types.DefaultPageSize) {
		t.Fatal("non-first page must bypass the page cache")
	}
}

func TestValidatePostFields(t *testing.T) {
	if err := validatePostFields(validCreatePostRequest()); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	req := validCreatePostRequest()
	req.Type = "video"
	req.Visibility = "subscribers"
	if err := validatePostFields(req); err != nil {
		t.Fatalf("valid video request rejected: %v", err)
	}
}

func TestValidatePostFields_BadType(t *testing.T) {
	req := validCreatePostRequest()
	req.Type = "audio"
	if err := validatePostFields(req); err == nil {
		t.Fatal("expected error for unsupported type")
	}
}

func TestValidatePostFields_BadVisibility(t *testing.T) {
	req := validCreatePostRequest()
	req.Visibility = "friends"
	if err := validatePostFields(req); err == nil {
		t.Fatal("expected error for unsupported visibility")
	}
}

func TestValidatePostFields_MissingMediaURL(t *testing.T) {
	req := validCreatePostRequest()
	req.MediaURL = "   "
	if err := validatePostFields(req); err == nil {
		t.Fatal("expected error for empty media_url")
	}
}
