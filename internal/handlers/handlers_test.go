package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/clipsmart/clipsmart-web/internal/authclient"
	"github.com/clipsmart/clipsmart-web/internal/authform"
	"github.com/clipsmart/clipsmart-web/internal/landing"
	"github.com/clipsmart/clipsmart-web/internal/middlewares"
	"github.com/clipsmart/clipsmart-web/internal/notify"
	"github.com/clipsmart/clipsmart-web/internal/render"
	"github.com/clipsmart/clipsmart-web/internal/store"
	"github.com/clipsmart/clipsmart-web/internal/users"
	"github.com/clipsmart/clipsmart-web/model"
	"github.com/clipsmart/clipsmart-web/params"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/memory/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var csrfRegex = regexp.MustCompile(`name="_csrf" value="([0-9a-f]+)"`)

type fakeBackend struct {
	mu          sync.Mutex
	err         error
	meErr       error
	accessToken string
	calls       []string

	// set both to hold Login until release is closed
	started chan struct{}
	release chan struct{}
}

func (f *fakeBackend) token(email, fullName string) *model.Token {
	if fullName == "" {
		fullName = "Jane Doe"
	}
	accessToken := f.accessToken
	if accessToken == "" {
		accessToken = "opaque-token"
	}
	return &model.Token{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        model.User{ID: "u-1", Email: email, FullName: fullName, Tier: model.TierFree, MonthlyQuotaLimit: 10},
	}
}

func (f *fakeBackend) Login(_ context.Context, email, password string) (*model.Token, error) {
	f.mu.Lock()
	f.calls = append(f.calls, "login:"+email+":"+password)
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
		<-f.release
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.token(email, ""), nil
}

func (f *fakeBackend) Register(_ context.Context, email, password, fullName string) (*model.Token, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "register:"+email+":"+fullName)
	if f.err != nil {
		return nil, f.err
	}
	return f.token(email, fullName), nil
}

func (f *fakeBackend) Me(_ context.Context, accessToken string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.meErr != nil {
		return nil, f.meErr
	}
	return &f.token("jane@example.com", "").User, nil
}

func (f *fakeBackend) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// browser replays cookies across app.Test calls.
type browser struct {
	t         *testing.T
	app       *fiber.App
	userCache store.Store[model.UserSummary]
	cookies   map[string]string
}

func newBrowser(t *testing.T, backend *fakeBackend) *browser {
	t.Helper()
	storage := memory.New()
	app := fiber.New(fiber.Config{
		Views:        render.NewHtmlEngine(""),
		ErrorHandler: middlewares.ErrorHandler,
	})
	render.InitValues(fiber.Map{"siteName": "ClipSmart", "baseURL": "https://clipsmart.example", "version": params.Version()})

	sessionStore := session.New(session.Config{
		Storage: store.NewKVStorage(storage, params.SessionStoreKeyPrefix),
	})
	userCache := store.NewMemoryStore[model.UserSummary](storage, params.UserCacheKeyPrefix)
	userService := users.NewUserService(backend, userCache, time.Minute)
	base := NewBasePageHandler(
		authform.NewRegistry(backend, time.Hour),
		userService,
		notify.NewQueue(store.NewKVStorage(storage, params.NotifyStoreKeyPrefix)),
		landing.NewStatRotator(time.Now(), params.StatRotateInterval, len(landing.HeroStats)),
	)
	SetupRoutes(app, sessionStore, "", base)
	return &browser{t: t, app: app, userCache: userCache, cookies: make(map[string]string)}
}

// request builds a request carrying the browser's current cookies.
func (b *browser) request(method, target string, form url.Values) *http.Request {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	}
	for name, val := range b.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: val})
	}
	return req
}

func (b *browser) do(method, target string, form url.Values) (*http.Response, string) {
	b.t.Helper()
	resp, err := b.app.Test(b.request(method, target, form), -1)
	require.NoError(b.t, err)
	for _, c := range resp.Cookies() {
		if c.MaxAge < 0 || (!c.Expires.IsZero() && c.Expires.Before(time.Now())) {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c.Value
	}
	blob, err := io.ReadAll(resp.Body)
	require.NoError(b.t, err)
	return resp, string(blob)
}

func (b *browser) get(target string) (*http.Response, string) {
	return b.do(http.MethodGet, target, nil)
}

func (b *browser) csrfToken() string {
	b.t.Helper()
	_, body := b.get("/")
	m := csrfRegex.FindStringSubmatch(body)
	require.Len(b.t, m, 2, "csrf token not found in page")
	return m[1]
}

func (b *browser) post(target string, form url.Values) (*http.Response, string) {
	if form == nil {
		form = url.Values{}
	}
	if form.Get("_csrf") == "" {
		form.Set("_csrf", b.csrfToken())
	}
	return b.do(http.MethodPost, target, form)
}

func signInForm(email, password string) url.Values {
	return url.Values{"email": {email}, "password": {password}}
}

func TestHealthz(t *testing.T) {
	b := newBrowser(t, &fakeBackend{})
	resp, body := b.get("/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"ok"`)
	assert.Empty(t, b.cookies)
}

func TestLandingPage(t *testing.T) {
	b := newBrowser(t, &fakeBackend{})

	resp, body := b.get("/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Viral Shorts")
	assert.Contains(t, body, "Smart Clip Extraction")
	assert.Contains(t, body, "$29")
	assert.Contains(t, body, "Sign In")
	assert.Contains(t, body, `<link rel="canonical" href="https://clipsmart.example/">`)
	assert.NotContains(t, body, `role="dialog"`)

	_, body = b.get("/?billing=annual")
	assert.Contains(t, body, "$23")
	assert.NotContains(t, body, "$29")
}

func TestNotFound(t *testing.T) {
	b := newBrowser(t, &fakeBackend{})
	resp, body := b.get("/missing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Page not found")
}

func TestPostWithoutCSRFIsForbidden(t *testing.T) {
	b := newBrowser(t, &fakeBackend{})
	b.get("/")
	resp, _ := b.do(http.MethodPost, "/auth/close", url.Values{})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestOpenModal(t *testing.T) {
	b := newBrowser(t, &fakeBackend{})

	resp, _ := b.get("/auth?mode=signup")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	_, body := b.get("/")
	assert.Contains(t, body, `role="dialog"`)
	assert.Contains(t, body, `name="confirmPassword"`)

	// asking for the other mode switches the open modal
	b.get("/auth?mode=signin")
	_, body = b.get("/")
	assert.Contains(t, body, `data-mode="signin"`)
	assert.NotContains(t, body, `name="confirmPassword"`)
}

func TestSubmitInvalidSignUp(t *testing.T) {
	backend := &fakeBackend{}
	b := newBrowser(t, backend)
	b.get("/auth?mode=signup")

	resp, body := b.post("/auth/submit", url.Values{
		"fullName":        {"Jane Doe"},
		"email":           {"jane@example.com"},
		"password":        {"abc"},
		"confirmPassword": {"abc"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, authform.MsgPasswordTooShort)
	assert.Contains(t, body, `value="Jane Doe"`)
	assert.Empty(t, backend.Calls())
}

func TestSubmitSignInSuccess(t *testing.T) {
	backend := &fakeBackend{}
	b := newBrowser(t, backend)
	b.get("/auth?mode=signin")

	resp, _ := b.post("/auth/submit", signInForm("jane@example.com", "Secret123!"))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, []string{"login:jane@example.com:Secret123!"}, backend.Calls())

	_, body := b.get("/")
	assert.Contains(t, body, authform.MsgWelcomeBack)
	assert.Contains(t, body, "Jane Doe")
	assert.Contains(t, body, "Sign Out")
	assert.NotContains(t, body, `role="dialog"`)

	// toasts show once
	_, body = b.get("/")
	assert.NotContains(t, body, authform.MsgWelcomeBack)
}

func TestSubmitSignUpSuccess(t *testing.T) {
	backend := &fakeBackend{}
	b := newBrowser(t, backend)
	b.get("/auth?mode=signup")

	resp, _ := b.post("/auth/submit", url.Values{
		"fullName":        {"Sam Lee"},
		"email":           {"sam@example.com"},
		"password":        {"Secret123!"},
		"confirmPassword": {"Secret123!"},
	})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, []string{"register:sam@example.com:Sam Lee"}, backend.Calls())

	_, body := b.get("/")
	assert.Contains(t, body, authform.MsgAccountCreated)
	assert.Contains(t, body, "Sam Lee")
}

func TestSubmitRejected(t *testing.T) {
	backend := &fakeBackend{err: &authclient.APIError{StatusCode: http.StatusUnauthorized, Detail: "Incorrect email or password"}}
	b := newBrowser(t, backend)
	b.get("/auth?mode=signin")

	resp, body := b.post("/auth/submit", signInForm("jane@example.com", "wrong"))

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body, "Incorrect email or password")
	assert.Contains(t, body, `value="jane@example.com"`)
	assert.Contains(t, body, `role="dialog"`)
	assert.Len(t, backend.Calls(), 1)
}

func TestSubmitBackendDown(t *testing.T) {
	backend := &fakeBackend{err: context.DeadlineExceeded}
	b := newBrowser(t, backend)
	b.get("/auth?mode=signin")

	resp, body := b.post("/auth/submit", signInForm("jane@example.com", "whatever"))

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, body, authform.MsgAuthFailed)
}

func TestSubmitWithoutOpenForm(t *testing.T) {
	backend := &fakeBackend{}
	b := newBrowser(t, backend)

	resp, _ := b.post("/auth/submit", signInForm("jane@example.com", "Secret123!"))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Empty(t, backend.Calls())

	_, body := b.get("/")
	assert.Contains(t, body, MsgAuthFormExpired)
}

func TestToggleAndCloseModal(t *testing.T) {
	b := newBrowser(t, &fakeBackend{})
	b.get("/auth?mode=signin")

	resp, _ := b.post("/auth/mode", nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	_, body := b.get("/")
	assert.Contains(t, body, `data-mode="signup"`)

	b.post("/auth/close", nil)
	_, body = b.get("/")
	assert.NotContains(t, body, `role="dialog"`)
}

func TestLogout(t *testing.T) {
	b := newBrowser(t, &fakeBackend{})
	b.get("/auth?mode=signin")
	b.post("/auth/submit", signInForm("jane@example.com", "Secret123!"))

	resp, _ := b.post("/logout", nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	_, body := b.get("/")
	assert.Contains(t, body, MsgSignedOut)
	assert.NotContains(t, body, "Sign Out")
}

func TestComingSoonToasts(t *testing.T) {
	b := newBrowser(t, &fakeBackend{})

	tests := []struct {
		path string
		want string
	}{
		{"/auth/oauth/google", MsgGoogleComingSoon},
		{"/auth/oauth/github", MsgGitHubComingSoon},
		{"/auth/oauth/myspace", MsgUnsupportedOAuth},
		{"/demo", MsgDemoComingSoon},
	}
	for _, tt := range tests {
		resp, _ := b.get(tt.path)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode, tt.path)
		_, body := b.get("/")
		assert.Contains(t, body, tt.want, tt.path)
	}
}

func TestSubmitWhileInFlightKeepsSubmittedValues(t *testing.T) {
	backend := &fakeBackend{
		err:     &authclient.APIError{StatusCode: http.StatusUnauthorized, Detail: "Incorrect email or password"},
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	b := newBrowser(t, backend)
	b.get("/auth?mode=signin")

	form := signInForm("first@example.com", "Secret123!")
	form.Set("_csrf", b.csrfToken())
	req := b.request(http.MethodPost, "/auth/submit", form)
	done := make(chan *http.Response, 1)
	go func() {
		resp, err := b.app.Test(req, -1)
		assert.NoError(t, err)
		done <- resp
	}()
	select {
	case <-backend.started:
	case <-time.After(5 * time.Second):
		t.Fatal("first submit never reached the backend")
	}

	resp, body := b.post("/auth/submit", signInForm("second@example.com", "Other123!"))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, body, MsgSubmitInProgress)
	assert.Contains(t, body, `value="first@example.com"`)

	close(backend.release)
	var first *http.Response
	select {
	case first = <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("first submit did not finish")
	}
	require.NotNil(t, first)
	assert.Equal(t, http.StatusUnauthorized, first.StatusCode)

	_, body = b.get("/")
	assert.Contains(t, body, `value="first@example.com"`)
	assert.NotContains(t, body, "second@example.com")
	assert.Equal(t, []string{"login:first@example.com:Secret123!"}, backend.Calls())
}

func TestSubmitStaleFormID(t *testing.T) {
	backend := &fakeBackend{}
	b := newBrowser(t, backend)
	b.get("/auth?mode=signin")

	form := signInForm("jane@example.com", "Secret123!")
	form.Set(formIDField, "closed-in-another-tab")
	resp, _ := b.post("/auth/submit", form)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Empty(t, backend.Calls())
	_, body := b.get("/")
	assert.Contains(t, body, MsgAuthFormExpired)
}

func TestSubmitBackendValidationError(t *testing.T) {
	backend := &fakeBackend{err: &authclient.APIError{StatusCode: http.StatusUnprocessableEntity, Detail: "Email domain is not allowed"}}
	b := newBrowser(t, backend)
	b.get("/auth?mode=signin")

	resp, body := b.post("/auth/submit", signInForm("jane@example.com", "Secret123!"))

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "Email domain is not allowed")
	assert.Contains(t, body, `value="jane@example.com"`)
}

func TestExpiredTokenSignsOut(t *testing.T) {
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	backend := &fakeBackend{accessToken: expired}
	b := newBrowser(t, backend)
	b.get("/auth?mode=signin")
	resp, _ := b.post("/auth/submit", signInForm("jane@example.com", "Secret123!"))
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	_, body := b.get("/")
	assert.Contains(t, body, MsgSessionExpired)
	assert.NotContains(t, body, "Sign Out")

	_, err = b.userCache.Get(context.Background(), "u-1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, body = b.get("/")
	assert.NotContains(t, body, MsgSessionExpired)
}

func TestRevokedTokenSignsOut(t *testing.T) {
	backend := &fakeBackend{}
	b := newBrowser(t, backend)
	b.get("/auth?mode=signin")
	b.post("/auth/submit", signInForm("jane@example.com", "Secret123!"))

	_, body := b.get("/")
	require.Contains(t, body, "Sign Out")

	// a cache miss sends the token back to the backend, which rejects it
	require.NoError(t, b.userCache.Del(context.Background(), "u-1"))
	backend.mu.Lock()
	backend.meErr = &authclient.APIError{StatusCode: http.StatusUnauthorized, Detail: "Could not validate credentials"}
	backend.mu.Unlock()

	_, body = b.get("/")
	assert.Contains(t, body, MsgSessionExpired)
	assert.NotContains(t, body, "Sign Out")
}

func TestOpenModalWhenSignedIn(t *testing.T) {
	b := newBrowser(t, &fakeBackend{})
	b.get("/auth?mode=signin")
	b.post("/auth/submit", signInForm("jane@example.com", "Secret123!"))
	b.get("/")

	resp, _ := b.get("/auth?mode=signup")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	_, body := b.get("/")
	assert.Contains(t, body, MsgAlreadySignedIn)
	assert.NotContains(t, body, `role="dialog"`)
	assert.Contains(t, body, "Sign Out")
}
