package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/comunidades/feed-api/internal/config"
)

func TestInitRedisDisabled(t *testing.T) {
	if err := InitRedis(&config.RedisConfig{Enabled: false}); err != nil {
		t.Fatalf("init disabled redis failed: %v", err)
	}
	if Enabled() {
		t.Fatalf("cache should be disabled")
	}
	if Client() != nil {
		t.Fatalf("client should be nil when disabled")
	}
}

func TestFeedPageHelpersNoopWhenDisabled(t *testing.T) {
	_ = InitRedis(nil)
	key := FeedPageKey{Page: 1, PageSize: 10}
	var dest map[string]interface{}
	hit, err := GetFeedPage(context.Background(), key, &dest)
	if err != nil || hit {
		t.Fatalf("expected miss without error, got hit=%v err=%v", hit, err)
	}
	if err := SetFeedPage(context.Background(), key, map[string]int{"page": 1}, 15*time.Second); err != nil {
		t.Fatalf("set should be noop when disabled: %v", err)
	}
}

func TestFeedPageKeyNormalizesSearch(t *testing.T) {
	a := FeedPageKey{Page: 2, PageSize: 20, ComunidadeID: " c1 ", Search: "Hello"}
	b := FeedPageKey{Page: 2, PageSize: 20, ComunidadeID: "c1", Search: "  hello "}
	if a.String() != b.String() {
		t.Fatalf("keys should match: %s vs %s", a.String(), b.String())
	}
	if strings.Contains(a.String(), "hello") {
		t.Fatalf("search term should be hashed, got %s", a.String())
	}
	if !strings.HasPrefix(a.String(), "feed:page:2:20:c=c1:") {
		t.Fatalf("unexpected key: %s", a.String())
	}
	empty := FeedPageKey{Page: 1, PageSize: 10}
	if !strings.HasSuffix(empty.String(), "q=") {
		t.Fatalf("empty search should leave q blank, got %s", empty.String())
	}
}

func TestBuildKeyUsesPrefix(t *testing.T) {
	redisPrefix = "feed"
	if got := buildKey(" feed:page:1 "); got != "feed:feed:page:1" {
		t.Fatalf("unexpected key: %s", got)
	}
	if got := buildKey(""); got != "feed" {
		t.Fatalf("unexpected empty key: %s", got)
	}
}
