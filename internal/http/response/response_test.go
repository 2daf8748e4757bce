package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestErrorWritesStatusAndBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, CodeMethodNotAllowed, "Método não permitido")

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status want 405 got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body failed: %v", err)
	}
	if body["error"] != "Método não permitido" || len(body) != 1 {
		t.Fatalf("unexpected body: %v", body)
	}
	if !c.IsAborted() {
		t.Fatalf("error response should abort the chain")
	}
}

func TestJSONWithCacheSetsHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SetTotalCount(c, 25)
	JSONWithCache(c, 15, gin.H{"ok": true})

	if w.Header().Get(HeaderCacheControl) != "max-age=15" {
		t.Fatalf("unexpected cache header: %s", w.Header().Get(HeaderCacheControl))
	}
	if w.Header().Get(HeaderTotalCount) != "25" {
		t.Fatalf("unexpected total header: %s", w.Header().Get(HeaderTotalCount))
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("db down")
	appErr := WrapError(CodeInternal, "db down", cause)
	if !errors.Is(appErr, cause) {
		t.Fatalf("app error should unwrap cause")
	}
	if appErr.Error() != "db down: db down" {
		t.Fatalf("unexpected error text: %s", appErr.Error())
	}
}

func TestAbortWritesOnlyPublicMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Abort(c, WrapError(200, "falha", errors.New("secret detail")))

	if w.Code != CodeInternal {
		t.Fatalf("non-error code should become 500, got %d", w.Code)
	}
	if !c.IsAborted() {
		t.Fatalf("context should be aborted")
	}
	if w.Body.String() != `{"error":"falha"}` {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
