package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"Fanhub/config"
)

func TestParseTags(t *testing.T) {
	got := ParseTags("#健身 #穿搭 #vlog日常 #旅行 #美食")
	want := []string{"健身", "穿搭", "vlog日常", "旅行", "美食"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseTags_Noise(t *testing.T) {
	got := ParseTags("好的，推荐标签如下：#fitness #daily。")
	if len(got) != 2 || got[0] != "fitness" {
		t.Fatalf("unexpected tags: %v", got)
	}
}

func TestParseTags_Empty(t *testing.T) {
	if got := ParseTags("没有任何标签"); len(got) != 0 {
		t.Fatalf("expected no tags, got %v", got)
	}
}

func TestGenPostTags_Unconfigured(t *testing.T) {
	g := NewTagGenerator(&config.Config{})
	if got := g.GenPostTags(context.Background(), "hi", ""); len(got) != 0 {
		t.Fatalf("expected empty tags without model config, got %v", got)
	}
}

func TestGenPostTags_EmptyChoices(t *testing.T) {
	// 接口降级返回空 choices 时要退回空标签列表，不能 panic
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","created":1,"model":"test-model","choices":[]}`))
	}))
	defer srv.Close()

	g := NewTagGenerator(&config.Config{LLM: &config.LLMConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "test-model",
	}})
	if got := g.GenPostTags(context.Background(), "hi", ""); len(got) != 0 {
		t.Fatalf("expected empty tags on empty choices, got %v", got)
	}
}
