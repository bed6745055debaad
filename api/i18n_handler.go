package api

import (
	"encoding/json"
	"net/http"

	"github.com/itsmepratik/oil-change-site-115/i18n"
	"github.com/itsmepratik/oil-change-site-115/utils"
)

// localizer holds the server's language context, backed by the
// preferences file so the selected language survives restarts.
var localizer *i18n.Context

// SetLocalizer installs the language context used by the translation
// and language handlers. Called once at startup.
func SetLocalizer(c *i18n.Context) {
	localizer = c
}

// TranslationsHandler returns the full translation table and text
// direction for the requested language so the site can hydrate its
// localization context. Defaults to the stored language preference.
func TranslationsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	lang := i18n.DefaultLanguage
	if localizer != nil {
		lang = localizer.Language()
	}
	if s := r.URL.Query().Get("lang"); s != "" {
		parsed, ok := i18n.ParseLanguage(s)
		if !ok {
			utils.RespondError(w, nil, "Unsupported language", http.StatusBadRequest)
			return
		}
		lang = parsed
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"language": lang,
		"dir":      i18n.DirOf(lang),
		"messages": i18n.Table(lang),
	})
}

// LanguageHandler reads and updates the stored language preference.
// GET returns the current language; POST {"language": "ar"} switches
// and persists it, and marks that a language has been chosen.
func LanguageHandler(w http.ResponseWriter, r *http.Request) {
	if localizer == nil {
		utils.RespondError(w, nil, "Language preferences unavailable", http.StatusInternalServerError)
		return
	}

	switch r.Method {
	case http.MethodGet:
		respondLanguage(w)
	case http.MethodPost:
		var body struct {
			Language string `json:"language"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			utils.RespondError(w, nil, "Invalid request body", http.StatusBadRequest)
			return
		}
		lang, ok := i18n.ParseLanguage(body.Language)
		if !ok {
			utils.RespondError(w, nil, "Unsupported language", http.StatusBadRequest)
			return
		}
		if err := localizer.SetLanguage(lang); err != nil {
			utils.RespondError(w, nil, "Failed to update language", http.StatusInternalServerError)
			return
		}
		localizer.MarkLanguageSelected()
		respondLanguage(w)
	default:
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func respondLanguage(w http.ResponseWriter) {
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"language": localizer.Language(),
		"dir":      localizer.Dir(),
		"selected": localizer.HasSelectedLanguage(),
	})
}
