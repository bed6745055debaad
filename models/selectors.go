package models

// Selector data backing the booking and quote dialog dropdowns. Like
// the product catalogue this is static configuration, served read-only.

// OilGrade is one viscosity grade offered under a brand
type OilGrade struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// OilBrand groups the grades a brand is stocked in
type OilBrand struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Grades []OilGrade `json:"grades"`
}

// VehicleModel is one model under a vehicle brand
type VehicleModel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// VehicleBrand groups the models shown in the vehicle selector
type VehicleBrand struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Models []VehicleModel `json:"models"`
}

// FilterQualityOption is a filter quality tier customers can request
type FilterQualityOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var OilBrands = []OilBrand{
	{
		ID:   "castrol",
		Name: "Castrol",
		Grades: []OilGrade{
			{ID: "5w30", Name: "5W-30", Description: "Synthetic motor oil for modern engines"},
			{ID: "5w40", Name: "5W-40", Description: "High performance synthetic oil"},
			{ID: "10w30", Name: "10W-30", Description: "Conventional motor oil"},
			{ID: "10w40", Name: "10W-40", Description: "Multigrade oil for all-season use"},
			{ID: "0w20", Name: "0W-20", Description: "Ultra-low viscosity synthetic oil"},
			{ID: "0w30", Name: "0W-30", Description: "Low viscosity synthetic oil"},
		},
	},
	{
		ID:   "mobil1",
		Name: "Mobil 1",
		Grades: []OilGrade{
			{ID: "0w20", Name: "0W-20", Description: "Advanced full synthetic oil"},
			{ID: "0w30", Name: "0W-30", Description: "Full synthetic oil for high performance"},
			{ID: "0w40", Name: "0W-40", Description: "High temperature protection"},
			{ID: "5w30", Name: "5W-30", Description: "Synthetic blend motor oil"},
			{ID: "5w50", Name: "5W-50", Description: "High performance racing oil"},
		},
	},
	{
		ID:   "shell",
		Name: "Shell",
		Grades: []OilGrade{
			{ID: "5w30", Name: "5W-30", Description: "Helix Ultra ECT"},
			{ID: "5w40", Name: "5W-40", Description: "Helix Ultra Diesel"},
			{ID: "10w30", Name: "10W-30", Description: "Conventional motor oil"},
			{ID: "10w40", Name: "10W-40", Description: "Rotella T6 synthetic"},
			{ID: "15w40", Name: "15W-40", Description: "Heavy duty diesel engine oil"},
		},
	},
	{
		ID:   "valvoline",
		Name: "Valvoline",
		Grades: []OilGrade{
			{ID: "5w20", Name: "5W-20", Description: "SynPower Full Synthetic"},
			{ID: "5w30", Name: "5W-30", Description: "Advanced Full Synthetic"},
			{ID: "5w40", Name: "5W-40", Description: "European Vehicle Full Synthetic"},
			{ID: "10w30", Name: "10W-30", Description: "Conventional motor oil"},
			{ID: "10w40", Name: "10W-40", Description: "MaxLife High Mileage"},
		},
	},
	{
		ID:   "royalpurple",
		Name: "Royal Purple",
		Grades: []OilGrade{
			{ID: "5w20", Name: "5W-20", Description: "High performance synthetic"},
			{ID: "5w30", Name: "5W-30", Description: "Synerlec full synthetic"},
			{ID: "5w40", Name: "5W-40", Description: "European specification"},
			{ID: "10w30", Name: "10W-30", Description: "Conventional motor oil"},
			{ID: "10w40", Name: "10W-40", Description: "Heavy duty synthetic"},
		},
	},
	{
		ID:   "bosch",
		Name: "Bosch",
		Grades: []OilGrade{
			{ID: "5w30", Name: "5W-30", Description: "Fully synthetic motor oil"},
			{ID: "5w40", Name: "5W-40", Description: "Long-life formula"},
			{ID: "10w40", Name: "10W-40", Description: "Mineral motor oil"},
		},
	},
	{
		ID:   "liquimoly",
		Name: "Liqui Moly",
		Grades: []OilGrade{
			{ID: "5w30", Name: "5W-30", Description: "Top Tec 4100"},
			{ID: "5w40", Name: "5W-40", Description: "Longlife III"},
			{ID: "0w30", Name: "0W-30", Description: "Leichtlauf High Tech"},
			{ID: "0w40", Name: "0W-40", Description: "Ultratec 040"},
			{ID: "10w40", Name: "10W-40", Description: "Mineral oil"},
		},
	},
}

var VehicleBrands = []VehicleBrand{
	{
		ID:   "toyota",
		Name: "Toyota",
		Models: []VehicleModel{
			{ID: "camry", Name: "Camry"},
			{ID: "corolla", Name: "Corolla"},
			{ID: "prius", Name: "Prius"},
			{ID: "rav4", Name: "RAV4"},
			{ID: "highlander", Name: "Highlander"},
			{ID: "sienna", Name: "Sienna"},
			{ID: "avalon", Name: "Avalon"},
			{ID: "tacoma", Name: "Tacoma"},
			{ID: "tundra", Name: "Tundra"},
		},
	},
	{
		ID:   "honda",
		Name: "Honda",
		Models: []VehicleModel{
			{ID: "civic", Name: "Civic"},
			{ID: "accord", Name: "Accord"},
			{ID: "crv", Name: "CR-V"},
			{ID: "pilot", Name: "Pilot"},
			{ID: "odyssey", Name: "Odyssey"},
			{ID: "hrv", Name: "HR-V"},
			{ID: "ridgeline", Name: "Ridgeline"},
		},
	},
	{
		ID:   "ford",
		Name: "Ford",
		Models: []VehicleModel{
			{ID: "focus", Name: "Focus"},
			{ID: "fusion", Name: "Fusion"},
			{ID: "escape", Name: "Escape"},
			{ID: "explorer", Name: "Explorer"},
			{ID: "f150", Name: "F-150"},
			{ID: "f250", Name: "F-250"},
			{ID: "mustang", Name: "Mustang"},
			{ID: "edge", Name: "Edge"},
		},
	},
	{
		ID:   "chevrolet",
		Name: "Chevrolet",
		Models: []VehicleModel{
			{ID: "malibu", Name: "Malibu"},
			{ID: "impala", Name: "Impala"},
			{ID: "equinox", Name: "Equinox"},
			{ID: "traverse", Name: "Traverse"},
			{ID: "silverado", Name: "Silverado"},
			{ID: "colorado", Name: "Colorado"},
			{ID: "camaro", Name: "Camaro"},
			{ID: "corvette", Name: "Corvette"},
		},
	},
	{
		ID:   "nissan",
		Name: "Nissan",
		Models: []VehicleModel{
			{ID: "sentra", Name: "Sentra"},
			{ID: "altima", Name: "Altima"},
			{ID: "maxima", Name: "Maxima"},
			{ID: "rogue", Name: "Rogue"},
			{ID: "murano", Name: "Murano"},
			{ID: "pathfinder", Name: "Pathfinder"},
			{ID: "titan", Name: "Titan"},
		},
	},
	{
		ID:   "bmw",
		Name: "BMW",
		Models: []VehicleModel{
			{ID: "3series", Name: "3 Series"},
			{ID: "5series", Name: "5 Series"},
			{ID: "x3", Name: "X3"},
			{ID: "x5", Name: "X5"},
			{ID: "m3", Name: "M3"},
		},
	},
	{
		ID:   "mercedes",
		Name: "Mercedes-Benz",
		Models: []VehicleModel{
			{ID: "cclass", Name: "C-Class"},
			{ID: "eclass", Name: "E-Class"},
			{ID: "sclass", Name: "S-Class"},
			{ID: "glc", Name: "GLC"},
			{ID: "gle", Name: "GLE"},
		},
	},
	{
		ID:   "audi",
		Name: "Audi",
		Models: []VehicleModel{
			{ID: "a3", Name: "A3"},
			{ID: "a4", Name: "A4"},
			{ID: "a6", Name: "A6"},
			{ID: "q5", Name: "Q5"},
			{ID: "q7", Name: "Q7"},
		},
	},
	{
		ID:   "hyundai",
		Name: "Hyundai",
		Models: []VehicleModel{
			{ID: "elantra", Name: "Elantra"},
			{ID: "sonata", Name: "Sonata"},
			{ID: "tucson", Name: "Tucson"},
			{ID: "santafe", Name: "Santa Fe"},
			{ID: "palisade", Name: "Palisade"},
		},
	},
	{
		ID:   "kia",
		Name: "Kia",
		Models: []VehicleModel{
			{ID: "forte", Name: "Forte"},
			{ID: "optima", Name: "Optima"},
			{ID: "sportage", Name: "Sportage"},
			{ID: "sorento", Name: "Sorento"},
			{ID: "telluride", Name: "Telluride"},
		},
	},
}

var FilterQualityOptions = []FilterQualityOption{
	{ID: "oem", Name: "OEM (Original Equipment Manufacturer)", Description: "Genuine manufacturer parts"},
	{ID: "second", Name: "Second Copy", Description: "High quality aftermarket alternatives"},
	{ID: "copy", Name: "Copy", Description: "Budget-friendly alternatives"},
}
