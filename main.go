package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/itsmepratik/oil-change-site-115/api"
	"github.com/itsmepratik/oil-change-site-115/config"
	"github.com/itsmepratik/oil-change-site-115/i18n"
	"github.com/itsmepratik/oil-change-site-115/utils"
)

func main() {
	config.LoadConfig()

	// Language preference survives restarts through the preferences file
	api.SetLocalizer(i18n.New(i18n.NewFileStore(config.PrefsPath)))

	http.HandleFunc("/send-booking-email", api.CORSMiddleware(api.SendBookingEmailHandler))

	// Catalogue query surface
	http.HandleFunc("/api/products", api.CORSMiddleware(api.ProductsHandler))
	http.HandleFunc("/api/products/featured", api.CORSMiddleware(api.FeaturedProductsHandler))
	http.HandleFunc("/api/categories", api.CORSMiddleware(api.CategoriesHandler))
	http.HandleFunc("/api/brands", api.CORSMiddleware(api.BrandsHandler))
	http.HandleFunc("/api/tags", api.CORSMiddleware(api.TagsHandler))

	// Booking dialog selector data
	http.HandleFunc("/api/oils", api.CORSMiddleware(api.OilsHandler))
	http.HandleFunc("/api/vehicles", api.CORSMiddleware(api.VehiclesHandler))
	http.HandleFunc("/api/filter-qualities", api.CORSMiddleware(api.FilterQualitiesHandler))

	// Localization tables
	http.HandleFunc("/api/translations", api.CORSMiddleware(api.TranslationsHandler))
	http.HandleFunc("/api/language", api.CORSMiddleware(api.LanguageHandler))

	// Serve static catalogue images for installs without an S3 bucket
	http.Handle("/catalogue/", http.StripPrefix("/catalogue/", http.FileServer(http.Dir("static/catalogue"))))

	port := config.Port
	fmt.Printf("Server starting on port %s...\n", port)
	if err := http.ListenAndServe(":"+port, utils.LatencyMiddleware(http.DefaultServeMux)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
