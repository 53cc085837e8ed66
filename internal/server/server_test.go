package server

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/arcanaland/cardsmith/internal/render"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestCardRoutes(t *testing.T) {
	s := New(nil, render.Options{CardColor: "#fefefe"}, nil)

	tests := []struct {
		name        string
		target      string
		wantStatus  int
		wantType    string
		wantContent []string
	}{
		{"suit-rank svg", "/card/spades-ace.svg", 200, "image/svg+xml", []string{"<svg", "href='#S0as'"}},
		{"numeric rank", "/card/hearts-10.svg", 200, "image/svg+xml", []string{"href='#S1th'"}},
		{"back", "/card/back.svg?suit=2", 200, "image/svg+xml", []string{"url(#pabd)"}},
		{"cid", "/card/QD.svg", 200, "image/svg+xml", []string{"href='#S2qd'"}},
		{"defaults apply", "/card/clubs-2.svg", 200, "image/svg+xml", []string{"fill='#fefefe'"}},
		{"query overrides defaults", "/card/clubs-2.svg?cardcolor=%23abc", 200, "image/svg+xml", []string{"fill='#abc'"}},
		{"bare boolean attribute", "/card/clubs-7.svg?showpips", 200, "image/svg+xml", []string{"<text"}},
		{"file wins over cid", "/card/spades-king.svg?cid=2H", 200, "image/svg+xml", []string{"href='#S0ks'"}},
		{"png", "/card/diamonds-queen.png?width=120", 200, "image/png", nil},
		{"webp", "/card/clubs-3.webp?width=60", 200, "image/webp", []string{"RIFF"}},
		{"bad width", "/card/clubs-3.png?width=0", 400, "application/json", []string{"width must be"}},
		{"bad format", "/card/clubs-3.gif", 404, "application/json", []string{"unsupported format"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, s, tt.target)
			if w.Code != tt.wantStatus {
				t.Fatalf("GET %s = %d, want %d: %s", tt.target, w.Code, tt.wantStatus, w.Body.String())
			}
			if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, tt.wantType) {
				t.Errorf("Content-Type = %q, want %q", ct, tt.wantType)
			}
			for _, want := range tt.wantContent {
				if !strings.Contains(w.Body.String(), want) {
					t.Errorf("body lacks %q", want)
				}
			}
		})
	}
}

func TestPNGSize(t *testing.T) {
	s := New(nil, render.Options{}, nil)
	w := get(t, s, "/card/hearts-ace.png?width=120")
	img, err := png.Decode(w.Body)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 167 {
		t.Errorf("png size = %v", b)
	}
}

func TestURI(t *testing.T) {
	s := New(nil, render.Options{}, nil)
	w := get(t, s, "/uri/KH?backcolor=%23123")
	body := w.Body.String()
	if w.Code != 200 || !strings.HasPrefix(body, "data:image/svg+xml,<svg") {
		t.Fatalf("GET /uri/KH = %d %q", w.Code, body)
	}
	if strings.Contains(body, "#") {
		t.Error("data URI contains an unescaped '#'")
	}
	if want := render.DataURI(render.Options{CID: "KH", BackColor: "#123"}); body != want {
		t.Error("data URI differs from render.DataURI")
	}
}

func TestQR(t *testing.T) {
	s := New(nil, render.Options{}, nil)
	w := get(t, s, "/qr/spades-ace.svg?size=128")
	if w.Code != 200 || w.Header().Get("Content-Type") != "image/png" {
		t.Fatalf("GET /qr = %d %s", w.Code, w.Header().Get("Content-Type"))
	}
	img, err := png.Decode(w.Body)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 128 {
		t.Errorf("qr width = %d, want 128", b.Dx())
	}
}

func TestIndex(t *testing.T) {
	s := New(nil, render.Options{}, nil)
	body := get(t, s, "/?cardcolor=%23eee").Body.String()
	if n := strings.Count(body, "<img"); n != 53 {
		t.Errorf("index has %d images, want 53", n)
	}
	for _, want := range []string{"/card/spades-ace.svg?cardcolor=%23eee", `alt="queen of hearts"`, "/card/back.svg"} {
		if !strings.Contains(body, want) {
			t.Errorf("index lacks %q", want)
		}
	}
	if n := strings.Count(body, "<br>"); n != 4 {
		t.Errorf("index has %d row breaks, want 4", n)
	}
}

func TestIndexEscapesQuery(t *testing.T) {
	s := New(nil, render.Options{}, nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.URL.RawQuery = `backtext="><script>alert(1)</script>`
	s.Handler().ServeHTTP(w, req)

	body := w.Body.String()
	if strings.Contains(body, "<script>") {
		t.Errorf("query reached the page unescaped:\n%s", body)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestAPI(t *testing.T) {
	s := New(nil, render.Options{}, nil)

	var health map[string]string
	if err := json.Unmarshal(get(t, s, "/api/health").Body.Bytes(), &health); err != nil || health["status"] != "ok" {
		t.Errorf("health = %v, %v", health, err)
	}

	var list struct {
		Count int        `json:"count"`
		Cards []cardInfo `json:"cards"`
	}
	if err := json.Unmarshal(get(t, s, "/api/cards").Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if list.Count != 53 || list.Cards[0] != (cardInfo{ID: "AS", Name: "ace of spades", File: "spades-ace.svg"}) {
		t.Errorf("cards = %d, first %+v", list.Count, list.Cards[0])
	}

	var attrs struct {
		Attributes []string `json:"attributes"`
	}
	if err := json.Unmarshal(get(t, s, "/api/attributes").Body.Bytes(), &attrs); err != nil {
		t.Fatal(err)
	}
	if len(attrs.Attributes) != len(render.AttributeNames) {
		t.Errorf("attributes = %v", attrs.Attributes)
	}
}

func TestRequestLogging(t *testing.T) {
	var buf bytes.Buffer
	s := New(nil, render.Options{}, log.New(&buf))
	get(t, s, "/api/health")
	out := buf.String()
	for _, want := range []string{"request", "method=GET", "path=/api/health", "status=200"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q lacks %q", out, want)
		}
	}
}

func TestRunShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skip("no loopback listener available")
	}
	addr := ln.Addr().String()
	ln.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(nil, render.Options{}, nil).Run(ctx, addr) }()

	var resp *http.Response
	for i := 0; i < 50; i++ {
		if resp, err = http.Get("http://" + addr + "/api/health"); err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("server never answered: %v", err)
	}
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v, want nil after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
