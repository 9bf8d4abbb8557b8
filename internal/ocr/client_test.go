package ocr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"sarabun-assist/pkg/logger"
)

func ocrHandler(t *testing.T, texts map[string]string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "missing file field", http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"result": texts[header.Filename]})
	}
}

func TestRecognizeDocument(t *testing.T) {
	srv := httptest.NewServer(ocrHandler(t, map[string]string{
		"page_1.png": "หน้าแรก",
		"page_2.png": "หน้าสอง",
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, logger.New("test"))
	res := c.RecognizeDocument(context.Background(), [][]byte{[]byte("png1"), []byte("png2")})

	if res.HadErrors {
		t.Fatalf("unexpected page errors: %v", res.PageErrors)
	}
	want := "หน้าแรก" + PageSeparator + "หน้าสอง"
	if res.Text != want {
		t.Errorf("Text = %q, want %q", res.Text, want)
	}
}

func TestRecognizeDocumentPartialFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		if n == 2 {
			// second page hangs past the per-page timeout
			time.Sleep(300 * time.Millisecond)
		}
		json.NewEncoder(w).Encode(map[string]string{"result": "ข้อความ"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 100*time.Millisecond, logger.New("test"))
	res := c.RecognizeDocument(context.Background(), [][]byte{[]byte("a"), []byte("b"), []byte("c")})

	if !res.HadErrors {
		t.Fatal("expected HadErrors")
	}
	if len(res.PageErrors) != 1 || res.PageErrors[0].Page != 2 {
		t.Fatalf("PageErrors = %v, want one error for page 2", res.PageErrors)
	}
	if !strings.Contains(res.Text, "[OCR Error Page 2]") {
		t.Errorf("Text missing placeholder: %q", res.Text)
	}
	if res.AllFailed() {
		t.Error("AllFailed() should be false with recognised pages present")
	}
}

func TestRecognizeDocumentAllFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, logger.New("test"))
	res := c.RecognizeDocument(context.Background(), [][]byte{[]byte("a"), []byte("b")})

	if !res.AllFailed() {
		t.Error("AllFailed() = false, want true")
	}
}

func TestRecognizePageRejectsMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, logger.New("test"))
	if _, err := c.RecognizePage(context.Background(), 1, []byte("png")); err == nil {
		t.Error("expected error for malformed response")
	}
}
