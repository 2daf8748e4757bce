package service

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/comunidades/feed-api/internal/models"
)

func strPtr(value string) *string {
	return &value
}

func TestBuildSnippetShortTextPassesThrough(t *testing.T) {
	for _, length := range []int{0, 1, 159, 160} {
		text := strings.Repeat("a", length)
		got := BuildSnippet(&text)
		if got == nil || *got != text {
			t.Fatalf("length %d should pass through unchanged", length)
		}
	}
}

func TestBuildSnippetTruncatesLongText(t *testing.T) {
	for _, length := range []int{161, 200, 5000} {
		text := strings.Repeat("b", length)
		got := BuildSnippet(&text)
		if got == nil {
			t.Fatalf("snippet should not be nil")
		}
		if utf8.RuneCountInString(*got) != SnippetMaxLength {
			t.Fatalf("length %d: snippet should have %d chars, got %d", length, SnippetMaxLength, utf8.RuneCountInString(*got))
		}
		if !strings.HasSuffix(*got, "...") || !strings.HasPrefix(text, strings.TrimSuffix(*got, "...")) {
			t.Fatalf("snippet should be a prefix plus ellipsis, got %q", *got)
		}
	}
}

func TestBuildSnippetCountsCharactersNotBytes(t *testing.T) {
	text := strings.Repeat("ç", 160)
	got := BuildSnippet(&text)
	if *got != text {
		t.Fatalf("160 multi-byte characters should not be truncated")
	}
	text = strings.Repeat("ã", 170)
	got = BuildSnippet(&text)
	if !utf8.ValidString(*got) || utf8.RuneCountInString(*got) != SnippetMaxLength {
		t.Fatalf("truncation should keep valid runes, got %q", *got)
	}
}

func TestBuildSnippetNil(t *testing.T) {
	if BuildSnippet(nil) != nil {
		t.Fatalf("nil plain text should produce nil snippet")
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{100, 1, 100},
		{101, 100, 2},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.pageSize); got != tc.want {
			t.Fatalf("TotalPages(%d,%d) want %d got %d", tc.total, tc.pageSize, tc.want, got)
		}
	}
}

func TestNewPostSummaryFlattensAuthor(t *testing.T) {
	post := &models.Post{
		ID:           "p1",
		UsuarioID:    strPtr("u1"),
		ComunidadeID: strPtr("c1"),
		Title:        "Titulo",
		BannerURL:    strPtr("https://img/banner.gif"),
		BannerIsGif:  true,
		PlainText:    strPtr("texto"),
		HTMLContent:  strPtr("<p>texto</p>"),
		Usuario:      &models.Usuario{ID: "u1", Username: strPtr("ana"), Usericon: strPtr("icon.png")},
	}
	summary := NewPostSummary(post)
	if summary.ID != "p1" || summary.Title != "Titulo" || summary.BannerURL == nil || *summary.BannerURL != "https://img/banner.gif" || !summary.BannerIsGif {
		t.Fatalf("scalar fields not copied: %+v", summary)
	}
	if summary.UsuarioID == nil || *summary.UsuarioID != "u1" || summary.ComunidadeID == nil || *summary.ComunidadeID != "c1" {
		t.Fatalf("reference ids not copied: %+v", summary)
	}
	if summary.Snippet == nil || *summary.Snippet != "texto" {
		t.Fatalf("unexpected snippet: %v", summary.Snippet)
	}
	if summary.Username == nil || *summary.Username != "ana" || summary.Usericon == nil || *summary.Usericon != "icon.png" {
		t.Fatalf("author not flattened: %+v", summary)
	}
}

func TestNewPostSummaryMissingAuthor(t *testing.T) {
	summary := NewPostSummary(&models.Post{ID: "p2", Title: "Orfao"})
	if summary.Username != nil || summary.Usericon != nil {
		t.Fatalf("missing author should yield nil fields")
	}
}

func TestNewPostSummaryKeepsNullUsernameAndBanner(t *testing.T) {
	post := &models.Post{
		ID:      "p4",
		Title:   "Sem nome",
		Usuario: &models.Usuario{ID: "u2", Usericon: strPtr("icon.png")},
	}
	summary := NewPostSummary(post)
	if summary.Username != nil {
		t.Fatalf("null username should stay nil, got %q", *summary.Username)
	}
	if summary.BannerURL != nil {
		t.Fatalf("null banner should stay nil, got %q", *summary.BannerURL)
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		t.Fatalf("marshal summary failed: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal summary failed: %v", err)
	}
	for _, key := range []string{"username", "bannerUrl"} {
		value, ok := decoded[key]
		if !ok || value != nil {
			t.Fatalf("%s should be encoded as null, got %v (present=%v)", key, value, ok)
		}
	}
}

func TestCopyProjectionReportsFailure(t *testing.T) {
	post := &models.Post{ID: "p5", Title: "T"}
	var summary PostSummary
	if !copyProjection(&summary, post) || summary.ID != "p5" {
		t.Fatalf("copy into pointer should succeed, got %+v", summary)
	}
	if copyProjection(PostSummary{}, post) {
		t.Fatalf("copy into non-addressable value should fail")
	}
	if copyProjection(&summary, nil) {
		t.Fatalf("copy from nil should fail")
	}
}

func TestNewPostDetailKeepsBodies(t *testing.T) {
	post := &models.Post{
		ID:          "p3",
		Title:       "Detalhe",
		HTMLContent: strPtr("<b>x</b>"),
		PlainText:   strPtr(strings.Repeat("x", 300)),
	}
	detail := NewPostDetail(post)
	if detail.ID != "p3" || detail.HTML == nil || *detail.HTML != "<b>x</b>" {
		t.Fatalf("unexpected detail: %+v", detail)
	}
	if detail.Plain == nil || len(*detail.Plain) != 300 {
		t.Fatalf("plain body should not be truncated")
	}
	if NewPostDetail(nil) != nil {
		t.Fatalf("nil post should produce nil detail")
	}
}

func TestNewComunidadeViewRenamesFields(t *testing.T) {
	view := NewComunidadeView(&models.Comunidade{
		ID:        "c1",
		Nome:      "Gophers",
		Descricao: strPtr("desc"),
		IconURL:   strPtr("icon.png"),
	})
	if view.ID != "c1" || view.Title != "Gophers" {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.Description == nil || *view.Description != "desc" || view.ImageURL == nil || *view.ImageURL != "icon.png" {
		t.Fatalf("renamed fields missing: %+v", view)
	}
	if view.Banner != nil {
		t.Fatalf("banner should stay nil")
	}
}

func TestPaginationHelpers(t *testing.T) {
	if NormalizePage(-3) != 1 || NormalizePage(0) != 1 || NormalizePage(4) != 4 {
		t.Fatalf("unexpected page normalization")
	}
	if ClampPageSize(0, 100) != 1 || ClampPageSize(500, 100) != 100 || ClampPageSize(20, 100) != 20 {
		t.Fatalf("unexpected page size clamp")
	}
	if ClampPageSize(80, 50) != 50 || ClampPageSize(120, 0) != MaxPageSize {
		t.Fatalf("unexpected page size clamp with custom max")
	}
}
