package api

import (
	"net/http"

	"github.com/itsmepratik/oil-change-site-115/models"
	"github.com/itsmepratik/oil-change-site-115/utils"
)

// OilsHandler lists the oil brands and grades offered in the booking dialogs.
func OilsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"oils": models.OilBrands,
	})
}

// VehiclesHandler lists the vehicle brands and models for the vehicle selector.
func VehiclesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"vehicles": models.VehicleBrands,
	})
}

// FilterQualitiesHandler lists the filter quality tiers customers can request.
func FilterQualitiesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"options": models.FilterQualityOptions,
	})
}
