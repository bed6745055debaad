package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsmepratik/oil-change-site-115/i18n"
)

// withLocalizer installs a fresh memory-backed language context and
// restores the previous one when the test finishes.
func withLocalizer(t *testing.T) *i18n.Context {
	t.Helper()
	prev := localizer
	t.Cleanup(func() { SetLocalizer(prev) })
	ctx := i18n.New(i18n.NewMemStore())
	SetLocalizer(ctx)
	return ctx
}

func TestTranslationsHandler(t *testing.T) {
	get := func(target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rr := httptest.NewRecorder()
		TranslationsHandler(rr, req)
		return rr
	}

	t.Run("DefaultsToEnglish", func(t *testing.T) {
		withLocalizer(t)
		rr := get("/api/translations")
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Language string            `json:"language"`
			Dir      string            `json:"dir"`
			Messages map[string]string `json:"messages"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "en", resp.Language)
		assert.Equal(t, "ltr", resp.Dir)
		assert.Equal(t, "25 OMR", resp.Messages["pricing.basic.price"])
	})

	t.Run("DefaultsToStoredPreference", func(t *testing.T) {
		ctx := withLocalizer(t)
		require.NoError(t, ctx.SetLanguage(i18n.Arabic))

		rr := get("/api/translations")
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Language string `json:"language"`
			Dir      string `json:"dir"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "ar", resp.Language)
		assert.Equal(t, "rtl", resp.Dir)
	})

	t.Run("QueryOverridesPreference", func(t *testing.T) {
		ctx := withLocalizer(t)
		require.NoError(t, ctx.SetLanguage(i18n.Arabic))

		rr := get("/api/translations?lang=en")
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Language string `json:"language"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "en", resp.Language)
	})

	t.Run("Arabic", func(t *testing.T) {
		withLocalizer(t)
		rr := get("/api/translations?lang=ar")
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Dir      string            `json:"dir"`
			Messages map[string]string `json:"messages"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "rtl", resp.Dir)
		assert.Equal(t, "٢٥ ريال عُماني", resp.Messages["pricing.basic.price"])
	})

	t.Run("UnsupportedLanguage", func(t *testing.T) {
		withLocalizer(t)
		rr := get("/api/translations?lang=fr")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLanguageHandler(t *testing.T) {
	type langResponse struct {
		Language string `json:"language"`
		Dir      string `json:"dir"`
		Selected bool   `json:"selected"`
	}

	get := func(t *testing.T) (langResponse, int) {
		req := httptest.NewRequest(http.MethodGet, "/api/language", nil)
		rr := httptest.NewRecorder()
		LanguageHandler(rr, req)
		var resp langResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		return resp, rr.Code
	}
	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/language", strings.NewReader(body))
		rr := httptest.NewRecorder()
		LanguageHandler(rr, req)
		return rr
	}

	t.Run("GetReturnsCurrentLanguage", func(t *testing.T) {
		withLocalizer(t)
		resp, code := get(t)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "en", resp.Language)
		assert.Equal(t, "ltr", resp.Dir)
		assert.False(t, resp.Selected)
	})

	t.Run("PostSwitchesAndMarksSelected", func(t *testing.T) {
		ctx := withLocalizer(t)
		rr := post(`{"language":"ar"}`)
		require.Equal(t, http.StatusOK, rr.Code)

		resp, _ := get(t)
		assert.Equal(t, "ar", resp.Language)
		assert.Equal(t, "rtl", resp.Dir)
		assert.True(t, resp.Selected)
		assert.Equal(t, i18n.Arabic, ctx.Language())
	})

	t.Run("PostRejectsUnsupportedLanguage", func(t *testing.T) {
		withLocalizer(t)
		rr := post(`{"language":"fr"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		resp, _ := get(t)
		assert.Equal(t, "en", resp.Language)
	})

	t.Run("PostRejectsInvalidBody", func(t *testing.T) {
		withLocalizer(t)
		rr := post(`not json`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("MethodNotAllowed", func(t *testing.T) {
		withLocalizer(t)
		req := httptest.NewRequest(http.MethodDelete, "/api/language", nil)
		rr := httptest.NewRecorder()
		LanguageHandler(rr, req)
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})

	t.Run("PreferencePersistsAcrossRestart", func(t *testing.T) {
		prev := localizer
		t.Cleanup(func() { SetLocalizer(prev) })

		path := filepath.Join(t.TempDir(), "prefs.json")
		SetLocalizer(i18n.New(i18n.NewFileStore(path)))

		rr := post(`{"language":"ar"}`)
		require.Equal(t, http.StatusOK, rr.Code)

		// A new context over the same file picks up the choice
		SetLocalizer(i18n.New(i18n.NewFileStore(path)))
		resp, code := get(t)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ar", resp.Language)
		assert.True(t, resp.Selected)
	})
}
