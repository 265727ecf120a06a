package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juniorhq/junior/internal/pkg/config"
	"github.com/juniorhq/junior/internal/pkg/goerror"
	"github.com/juniorhq/junior/internal/pkg/instrument"
	"github.com/juniorhq/junior/internal/pkg/session"
	"github.com/juniorhq/junior/internal/pkg/sessioncookie"
	"github.com/juniorhq/junior/internal/pkg/uid"
)

type testConfig struct {
	config.Config
}

func (testConfig) GetString(key string) string      { return "" }
func (testConfig) GetBool(key string) bool          { return false }
func (testConfig) GetArray(key string) []string     { return nil }
func (testConfig) GetHour(key string) time.Duration { return 24 * time.Hour }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func newTestRouter(t *testing.T) (*Router, sessioncookie.Codec) {
	t.Helper()

	codec, err := sessioncookie.NewHS512(sessioncookie.Config{
		Secret: []byte(strings.Repeat("s", 64)),
		Issuer: "junior",
		TTL:    time.Hour,
		Clock:  realClock{},
	})
	require.NoError(t, err)

	return NewRouter(Config{
		Config:     testConfig{},
		UUID:       uid.NewUUID(),
		Cookie:     codec,
		Instrument: instrument.NewNoop(),
	}), codec
}

type pingResponse struct {
	Pong bool `json:"pong"`
}

func (pingResponse) Message() string { return "pong" }

func TestRouterJSONSuccess(t *testing.T) {
	r, _ := newTestRouter(t)
	r.GET("/ping", func(req *Request) (any, error) {
		return pingResponse{Pong: true}, nil
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var env struct {
		Message string       `json:"message"`
		Data    pingResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "pong", env.Message)
	assert.True(t, env.Data.Pong)
}

func TestRouterJSONError(t *testing.T) {
	r, _ := newTestRouter(t)
	r.GET("/fail", func(req *Request) (any, error) {
		return nil, goerror.NewBusiness("Email missing", goerror.CodeInvalidInput)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var env struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "Email missing", env.Message)
}

func TestRouterNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterMintsSessionCookie(t *testing.T) {
	r, codec := newTestRouter(t)

	var gotSID string
	r.GETRaw("/", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotSID = session.SID(req.Context())
	}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, gotSID)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "junior_session", c.Name)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, "/", c.Path)

	sid, err := codec.Decode(c.Value)
	require.NoError(t, err)
	assert.Equal(t, gotSID, sid)
}

func TestRouterKeepsExistingSession(t *testing.T) {
	r, codec := newTestRouter(t)

	var gotSID string
	r.GETRaw("/", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotSID = session.SID(req.Context())
	}))

	value, err := codec.Encode("sid-existing")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "junior_session", Value: value})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "sid-existing", gotSID)
	assert.Empty(t, rec.Result().Cookies(), "a valid cookie must not be reissued")
}

func TestRouterReplacesTamperedCookie(t *testing.T) {
	r, _ := newTestRouter(t)

	var gotSID string
	r.GETRaw("/", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotSID = session.SID(req.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "junior_session", Value: "garbage"})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.NotEmpty(t, gotSID)
	assert.NotEqual(t, "garbage", gotSID)
	require.Len(t, rec.Result().Cookies(), 1)
}

func TestRouterRecoversPanic(t *testing.T) {
	r, _ := newTestRouter(t)
	r.GETRaw("/boom", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mw("outer"), mw("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}
