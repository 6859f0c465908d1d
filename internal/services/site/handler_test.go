package site

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Maze77-AH/portfolio/internal/content"
	"github.com/Maze77-AH/portfolio/internal/services/site/storage"
)

const testContent = `
site:
  name: Maze Harlow
  tagline: Systems tinkerer
  about: I build small sturdy systems.
  email: maze@example.com
  github: https://github.com/Maze77-AH
projects:
  - slug: dispatch-queue
    title: Dispatch Queue
    tags: systems
    summary: A bounded work queue.
  - slug: pantry-scan
    title: Pantry Scan
    tags: ocr systems
    summary: Receipt OCR for the pantry.
    body: "<p>Scans receipts with <em>tesseract</em>.</p>"
    repo: https://github.com/Maze77-AH/pantry-scan
  - slug: lasagna-log
    title: Lasagna Log
    tags: web
    summary: A cooking journal.
`

type memoryStore struct {
	mu     sync.Mutex
	themes map[string]string
	views  map[string]int64

	putThemeErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{themes: map[string]string{}, views: map[string]int64{}}
}

func (m *memoryStore) PutTheme(_ context.Context, visitorID, theme string) error {
	if m.putThemeErr != nil {
		return m.putThemeErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.themes[visitorID] = theme
	return nil
}

func (m *memoryStore) GetTheme(_ context.Context, visitorID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	theme, ok := m.themes[visitorID]
	if !ok {
		return "", storage.ErrNotFound
	}
	return theme, nil
}

func (m *memoryStore) RecordSectionView(_ context.Context, section string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.views[section]++
	return nil
}

func (m *memoryStore) SectionViews(_ context.Context, section string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.views[section], nil
}

func testDocument(t *testing.T) content.Document {
	t.Helper()
	doc, err := content.Parse([]byte(testContent))
	if err != nil {
		t.Fatalf("parse test content: %v", err)
	}
	return doc
}

func testHandler(t *testing.T, store *memoryStore) *Handler {
	t.Helper()
	cfg := HandlerConfig{
		Document: testDocument(t),
		Visitors: NewVisitors([]byte("test-visitor-key"), nil),
		Now:      func() time.Time { return time.Date(2026, time.August, 26, 12, 0, 0, 0, time.UTC) },
	}
	if store != nil {
		cfg.Preferences = store
		cfg.SectionViews = store
	}
	return NewHandler(cfg)
}

func TestHomeRendersAllProjects(t *testing.T) {
	h := testHandler(t, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	for _, title := range []string{"Dispatch Queue", "Pantry Scan", "Lasagna Log"} {
		if !strings.Contains(body, title) {
			t.Errorf("home missing project %q", title)
		}
	}
	if !strings.Contains(body, `<span id="year">2026</span>`) {
		t.Errorf("home missing year stamp")
	}
	if strings.Contains(body, `data-slug="dispatch-queue" data-tags="systems" hidden`) {
		t.Errorf("home should show every project")
	}
}

func TestProjectsFragmentReplacesURL(t *testing.T) {
	h := testHandler(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/projects?tag=systems", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got, want := rec.Header().Get("HX-Replace-Url"), "/#projects?tag=systems"; got != want {
		t.Errorf("HX-Replace-Url = %q, want %q", got, want)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<html") {
		t.Errorf("fragment response should not include page chrome:\n%s", body)
	}
	if !strings.Contains(body, `data-count="2"`) {
		t.Errorf("systems filter should match two projects:\n%s", body)
	}
	if !strings.Contains(body, `data-slug="lasagna-log" data-tags="web" hidden`) {
		t.Errorf("web project should be hidden under systems filter:\n%s", body)
	}
}

func TestProjectsCombinesTagAndQuery(t *testing.T) {
	h := testHandler(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/projects?tag=systems&query=receipt", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `data-count="1"`) {
		t.Errorf("tag+query should narrow to one project:\n%s", body)
	}
	if strings.Contains(body, `data-slug="pantry-scan" data-tags="ocr systems" hidden`) {
		t.Errorf("pantry-scan should stay visible:\n%s", body)
	}
}

func TestProjectsDefaultsEmptyParams(t *testing.T) {
	h := testHandler(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/projects?tag=&query=", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got, want := rec.Header().Get("HX-Replace-Url"), "/#projects"; got != want {
		t.Errorf("HX-Replace-Url = %q, want %q", got, want)
	}
	if !strings.Contains(rec.Body.String(), `data-count="3"`) {
		t.Errorf("empty params should show every project:\n%s", rec.Body.String())
	}
}

func TestProjectsUnknownTagShowsEmptyState(t *testing.T) {
	h := testHandler(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/projects?tag=embedded", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `data-count="0"`) {
		t.Errorf("unknown tag should match nothing:\n%s", body)
	}
	if !strings.Contains(body, `id="projects-empty" class="empty-state">`) {
		t.Errorf("empty state should be visible:\n%s", body)
	}
}

// A shared deep link must land on the same visible set the fragment path
// produced for the same state.
func TestProjectsDeepLinkMatchesFragment(t *testing.T) {
	h := testHandler(t, nil)

	fragmentReq := httptest.NewRequest(http.MethodGet, "/projects?tag=ocr&query=pantry", nil)
	fragmentReq.Header.Set("HX-Request", "true")
	fragmentRec := httptest.NewRecorder()
	h.ServeHTTP(fragmentRec, fragmentReq)

	deepRec := httptest.NewRecorder()
	h.ServeHTTP(deepRec, httptest.NewRequest(http.MethodGet, "/projects?tag=ocr&query=pantry", nil))

	if deepRec.Code != http.StatusOK {
		t.Fatalf("deep link status = %d, want %d", deepRec.Code, http.StatusOK)
	}
	deepBody := deepRec.Body.String()
	if !strings.Contains(deepBody, "<html") {
		t.Errorf("deep link should render the full page")
	}
	for _, marker := range []string{
		`data-count="1"`,
		`data-fragment="#projects?query=pantry&amp;tag=ocr"`,
	} {
		if !strings.Contains(deepBody, marker) {
			t.Errorf("deep link missing %q:\n%s", marker, deepBody)
		}
		if !strings.Contains(fragmentRec.Body.String(), marker) {
			t.Errorf("fragment response missing %q:\n%s", marker, fragmentRec.Body.String())
		}
	}
	if !strings.Contains(deepBody, `value="pantry"`) {
		t.Errorf("deep link search input should carry the query:\n%s", deepBody)
	}
}

func TestProjectDetail(t *testing.T) {
	h := testHandler(t, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects/pantry-scan", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<em>tesseract</em>") {
		t.Errorf("detail should render the authored body:\n%s", body)
	}
	if !strings.Contains(body, "https://github.com/Maze77-AH/pantry-scan") {
		t.Errorf("detail missing repo link:\n%s", body)
	}
}

func TestProjectDetailFragment(t *testing.T) {
	h := testHandler(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/projects/pantry-scan", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	body := rec.Body.String()
	if strings.Contains(body, "<html") {
		t.Errorf("fragment detail should not include page chrome:\n%s", body)
	}
	if !strings.Contains(body, "Pantry Scan") {
		t.Errorf("fragment detail missing project title:\n%s", body)
	}
}

func TestProjectDetailNotFound(t *testing.T) {
	h := testHandler(t, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if !strings.Contains(rec.Body.String(), "Page not found") {
		t.Errorf("not-found page missing copy:\n%s", rec.Body.String())
	}
}

func TestProjectDetailLocalized(t *testing.T) {
	h := testHandler(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/projects/missing", nil)
	req.Header.Set("Accept-Language", "pt-BR")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `lang="pt-BR"`) {
		t.Errorf("page should be localized to pt-BR:\n%s", body)
	}
	if strings.Contains(body, "Page not found") {
		t.Errorf("pt-BR page should not carry english copy:\n%s", body)
	}
}

func TestThemeToggleSetsCookieAndStore(t *testing.T) {
	store := newMemoryStore()
	h := testHandler(t, store)

	form := url.Values{"theme": {"dark"}}
	req := httptest.NewRequest(http.MethodPost, "/theme", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	var themeCookie, visitorCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		switch cookie.Name {
		case themeCookieName:
			themeCookie = cookie
		case visitorCookieName:
			visitorCookie = cookie
		}
	}
	if themeCookie == nil || themeCookie.Value != "dark" {
		t.Fatalf("theme cookie = %+v, want dark", themeCookie)
	}
	if visitorCookie == nil {
		t.Fatal("visitor cookie should be minted on first preference write")
	}

	store.mu.Lock()
	stored := len(store.themes)
	store.mu.Unlock()
	if stored != 1 {
		t.Errorf("stored themes = %d, want 1", stored)
	}
}

func TestThemeToggleDegradesWhenStoreFails(t *testing.T) {
	store := newMemoryStore()
	store.putThemeErr = errors.New("disk full")
	h := testHandler(t, store)

	form := url.Values{"theme": {"dark"}}
	req := httptest.NewRequest(http.MethodPost, "/theme", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d: toggle must survive store failures", rec.Code, http.StatusFound)
	}
	found := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == themeCookieName && cookie.Value == "dark" {
			found = true
		}
	}
	if !found {
		t.Error("theme cookie should be set even when the store fails")
	}
}

func TestThemeRejectsUnknownValue(t *testing.T) {
	h := testHandler(t, nil)
	form := url.Values{"theme": {"solar"}}
	req := httptest.NewRequest(http.MethodPost, "/theme", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestThemeCookieDrivesNextRender(t *testing.T) {
	h := testHandler(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: themeCookieName, Value: "dark"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if !strings.Contains(rec.Body.String(), `data-theme="dark"`) {
		t.Errorf("page should render the cookie theme:\n%s", rec.Body.String())
	}
}

func TestSectionEventRecordsEnteringViews(t *testing.T) {
	store := newMemoryStore()
	h := testHandler(t, store)

	post := func(section, entering string) int {
		form := url.Values{"section": {section}, "entering": {entering}}
		req := httptest.NewRequest(http.MethodPost, "/events/section", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := post("about", "true"); code != http.StatusNoContent {
		t.Fatalf("entering beacon status = %d, want %d", code, http.StatusNoContent)
	}
	if code := post("about", "false"); code != http.StatusNoContent {
		t.Fatalf("leaving beacon status = %d, want %d", code, http.StatusNoContent)
	}
	if code := post("sidebar", "true"); code != http.StatusBadRequest {
		t.Fatalf("unknown section status = %d, want %d", code, http.StatusBadRequest)
	}

	views, err := store.SectionViews(context.Background(), "about")
	if err != nil {
		t.Fatalf("SectionViews: %v", err)
	}
	if views != 1 {
		t.Errorf("about views = %d, want 1: only entering events count", views)
	}
}

func TestSetDocumentSwapsIndex(t *testing.T) {
	h := testHandler(t, nil)

	doc, err := content.Parse([]byte(`
site:
  name: Maze Harlow
projects:
  - slug: heap-atlas
    title: Heap Atlas
    tags: systems
    summary: Heap profile explorer.
`))
	if err != nil {
		t.Fatalf("parse replacement content: %v", err)
	}
	h.SetDocument(doc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	body := rec.Body.String()
	if !strings.Contains(body, "Heap Atlas") {
		t.Errorf("swapped document should render new project:\n%s", body)
	}
	if strings.Contains(body, "Dispatch Queue") {
		t.Errorf("swapped document should drop old projects:\n%s", body)
	}
}

func TestHealth(t *testing.T) {
	h := testHandler(t, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestStaticAssetsServed(t *testing.T) {
	h := testHandler(t, nil)
	for _, path := range []string{"/static/site.css", "/static/site.js"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want %d", path, rec.Code, http.StatusOK)
		}
	}
}
