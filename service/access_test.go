package service

import (
	"testing"

	"Fanhub/models"
)

func TestCanViewResolved_Public(t *testing.T) {
	post := &models.Post{Visibility: models.VisibilityPublic}

	// 公开帖对任何访客可见，包括匿名（subscribed=false 即匿名场景）
	if !canViewResolved(post, true, false) {
		t.Fatal("public post should be viewable without subscription")
	}
	if !canViewResolved(post, true, true) {
		t.Fatal("public post should be viewable with subscription")
	}
}

func TestCanViewResolved_SubscribersOnly(t *testing.T) {
	post := &models.Post{Visibility: models.VisibilitySubscribers}

	if canViewResolved(post, true, false) {
		t.Fatal("subscribers-only post should be blocked without subscription")
	}
	if !canViewResolved(post, true, true) {
		t.Fatal("subscribers-only post should be viewable with subscription")
	}
}

func TestCanViewResolved_CreatorMissing(t *testing.T) {
	// 创作者记录缺失时一律不可见，公开帖也不例外
	public := &models.Post{Visibility: models.VisibilityPublic}
	gated := &models.Post{Visibility: models.VisibilitySubscribers}

	if canViewResolved(public, false, true) {
		t.Fatal("post with missing creator must never be viewable")
	}
	if canViewResolved(gated, false, true) {
		t.Fatal("post with missing creator must never be viewable")
	}
}
