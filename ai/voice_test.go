package ai

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"hostelhub-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func testParser(serverURL string) *GroqParser {
	return &GroqParser{
		BaseURL: serverURL,
		Model:   "test-model",
		Client:  &http.Client{Timeout: 2 * time.Second},
	}
}

func completionResponse(content string) string {
	return `{"choices":[{"message":{"content":` + jsonString(content) + `}}]}`
}

func jsonString(s string) string {
	out := `"`
	for _, r := range s {
		switch r {
		case '"':
			out += `\"`
		case '\\':
			out += `\\`
		case '\n':
			out += `\n`
		default:
			out += string(r)
		}
	}
	return out + `"`
}

func TestGroqParser_Success(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "test-key")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionResponse(
			`{"title":"Leaking bathroom tap","description":"The tap drips all night","category":"PLUMBING","priority":"MEDIUM"}`,
		)))
	}))
	defer server.Close()

	draft := testParser(server.URL).Parse(context.Background(), "the tap in my bathroom leaks all night")

	assert.Equal(t, "Leaking bathroom tap", draft.Title)
	assert.Equal(t, models.Plumbing, draft.Category)
	assert.Equal(t, models.MediumPriority, draft.Priority)
}

func TestGroqParser_StripsMarkdownFences(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "test-key")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionResponse(
			"```json\n{\"title\":\"No power in room\",\"description\":\"Outlet dead since morning\",\"category\":\"ELECTRICAL\",\"priority\":\"HIGH\"}\n```",
		)))
	}))
	defer server.Close()

	draft := testParser(server.URL).Parse(context.Background(), "no power in my room")

	assert.Equal(t, "No power in room", draft.Title)
	assert.Equal(t, models.HighPriority, draft.Priority)
}

func TestGroqParser_InvalidEnumsDefaulted(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "test-key")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionResponse(
			`{"title":"Something odd","description":"hard to say","category":"MAGIC","priority":"EXTREME"}`,
		)))
	}))
	defer server.Close()

	draft := testParser(server.URL).Parse(context.Background(), "something odd happened")

	assert.Equal(t, models.OtherIssue, draft.Category)
	assert.Equal(t, models.MediumPriority, draft.Priority)
}

func TestGroqParser_ServerErrorFallsBack(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "test-key")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	transcript := "the corridor light flickers"
	draft := testParser(server.URL).Parse(context.Background(), transcript)

	assert.Equal(t, "Voice Report (Parse Failed)", draft.Title)
	assert.Equal(t, transcript, draft.Description)
	assert.Equal(t, models.OtherIssue, draft.Category)
	assert.Equal(t, models.MediumPriority, draft.Priority)
}

func TestGroqParser_GarbageContentFallsBack(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "test-key")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionResponse("sorry, I cannot help with that")))
	}))
	defer server.Close()

	transcript := "water everywhere in the hallway"
	draft := testParser(server.URL).Parse(context.Background(), transcript)

	assert.Equal(t, "Voice Report (Parse Failed)", draft.Title)
	assert.Equal(t, transcript, draft.Description)
}

func TestGroqParser_MissingAPIKeyFallsBack(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	transcript := "my desk drawer is stuck"
	draft := NewGroqParser().Parse(context.Background(), transcript)

	assert.Equal(t, "Voice Report (Parse Failed)", draft.Title)
	assert.Equal(t, transcript, draft.Description)
}
