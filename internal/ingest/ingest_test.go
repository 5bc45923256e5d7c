package ingest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tecw/truthengine/internal/model"
)

const faqHTML = `<!DOCTYPE html>
<html>
<head><title>Citizen FAQ</title><style>h2 { color: red }</style></head>
<body>
	<h1>Frequently Asked Questions</h1>
	<p>This intro paragraph has no topic yet and must be skipped.</p>
	<h2>How do I apply for a Passport?</h2>
	<p>Visit the <b>Immigration Department</b> in Freetown.</p>
	<p>Bring your birth certificate.</p>
	<h3>Emergency Numbers</h3>
	<ul>
		<li>Dial 117 for police.</li>
		<li>Dial 999 for fire service.</li>
	</ul>
	<h2>Empty Section</h2>
	<script>console.log("ignore me")</script>
</body>
</html>`

func TestParse_HeadingsBecomeTopics(t *testing.T) {
	entries, err := Parse(faqHTML)

	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "kb-001", entries[0].ID)
	assert.Equal(t, "How do I apply for a Passport?", entries[0].Topic)
	assert.Equal(t, "Visit the Immigration Department in Freetown. Bring your birth certificate.", entries[0].Content)
	assert.Equal(t, []string{"apply", "passport"}, entries[0].Keywords)

	assert.Equal(t, "kb-002", entries[1].ID)
	assert.Equal(t, "Emergency Numbers", entries[1].Topic)
	assert.Equal(t, "Dial 117 for police. Dial 999 for fire service.", entries[1].Content)
	assert.Equal(t, []string{"emergency", "numbers"}, entries[1].Keywords)
}

func TestParse_NoHeadingsNoEntries(t *testing.T) {
	entries, err := Parse("<html><body><p>just text</p></body></html>")

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeriveKeywords(t *testing.T) {
	assert.Equal(t, []string{"renew", "passport"}, deriveKeywords("How do I renew my Passport?"))
	assert.Equal(t, []string{"feed", "salone", "programme"}, deriveKeywords("About the Feed Salone programme"))
	// Duplicates collapse
	assert.Equal(t, []string{"tax"}, deriveKeywords("Tax tax TAX"))
	assert.Empty(t, deriveKeywords("how to do a"))
}

func TestFromURL_FetchesAndParses(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/robots.txt":
			w.Write([]byte("User-agent: *\nAllow: /\n"))
		case "/faq":
			gotUA = r.Header.Get("User-Agent")
			w.Write([]byte(faqHTML))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ing := NewIngester(5*time.Second, "TruthEngine-test/1.0")

	entries, err := ing.FromURL(context.Background(), srv.URL+"/faq")

	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "TruthEngine-test/1.0", gotUA)
}

func TestFromURL_RespectsRobotsDisallow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			w.Write([]byte("User-agent: *\nDisallow: /private\n"))
			return
		}
		w.Write([]byte(faqHTML))
	}))
	defer srv.Close()

	ing := NewIngester(5*time.Second, "TruthEngine-test/1.0")

	_, err := ing.FromURL(context.Background(), srv.URL+"/private/faq")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "robots.txt disallows")
}

func TestFromURL_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			w.Write([]byte("User-agent: *\nAllow: /\n"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ing := NewIngester(5*time.Second, "TruthEngine-test/1.0")

	_, err := ing.FromURL(context.Background(), srv.URL+"/faq")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status: 503")
}

func TestFromFileAndWriteCorpus_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "faq.html")
	require.NoError(t, os.WriteFile(src, []byte(faqHTML), 0o644))

	ing := NewIngester(0, "")
	entries, err := ing.FromFile(src)
	require.NoError(t, err)

	out := filepath.Join(dir, "kb.json")
	require.NoError(t, WriteCorpus(out, entries))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var loaded []model.KnowledgeEntry
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, entries, loaded)
}
