package fallback

import (
	"time"

	"github.com/mobilipiu/catalog-api/internal/domain"
)

// Embedded reference dataset served when the Data Store is unreachable or not
// configured. Kept in sync with the seed data by hand; writes never touch it.

var staticBrands = []*domain.Brand{
	{
		Name:        "Bosch",
		Description: "Vodeći njemački proizvođač kućanskih aparata poznat po inovacijama i kvaliteti.",
		Logo:        "/images/brands/bosch-logo.png",
		Website:     "https://www.bosch-home.com",
		Specialties: []string{"Bijela tehnika", "Mali kućanski aparati", "Ugradbeni aparati"},
	},
	{
		Name:        "Miele",
		Description: "Premium njemački brand za kućanske aparate visoke kvalitete s dugotrajnim performansama.",
		Logo:        "/images/brands/miele-logo.png",
		Website:     "https://www.miele.com",
		Specialties: []string{"Bijela tehnika", "Mali kućanski aparati", "Pranje i sušenje"},
	},
	{
		Name:        "Electrolux",
		Description: "Švedski brand s dugom tradicijom u proizvodnji inovativnih kućanskih aparata.",
		Logo:        "/images/brands/electrolux-logo.png",
		Website:     "https://www.electrolux.com",
		Specialties: []string{"Bijela tehnika", "Mali kućanski aparati", "Profesionalni aparati"},
	},
	{
		Name:        "Beko",
		Description: "Turski brand koji kombinira modernu tehnologiju s pristupačnim cijenama.",
		Logo:        "/images/brands/beko-logo.png",
		Website:     "https://www.beko.com",
		Specialties: []string{"Bijela tehnika", "Mali kućanski aparati", "Hlađenje"},
	},
	{
		Name:        "AEG",
		Description: "Njemački brand poznat po pouzdanim i inovativnim kućanskim aparatima.",
		Logo:        "/images/brands/aeg-logo.png",
		Website:     "https://www.aeg.com",
		Specialties: []string{"Bijela tehnika", "Mali kućanski aparati", "Ugradbeni aparati"},
	},
	{
		Name:        "Gorenje",
		Description: "Slovenski brand koji spaja tradiciju s modernom tehnologijom i dizajnom.",
		Logo:        "/images/brands/gorenje-logo.png",
		Website:     "https://www.gorenje.com",
		Specialties: []string{"Bijela tehnika", "Mali kućanski aparati", "Retro dizajn"},
	},
	{
		Name:        "Tesla",
		Description: "Srpski brand poznat po kvalitetnim i pouzdanim kućanskim aparatima.",
		Logo:        "/images/brands/tesla-logo.png",
		Website:     "https://www.tesla.rs",
		Specialties: []string{"Bijela tehnika", "Mali kućanski aparati", "Klima uređaji"},
	},
	{
		Name:        "Grundig",
		Description: "Njemački brand s tradicijom u proizvodnji elektronike i kućanskih aparata.",
		Logo:        "/images/brands/grundig-logo.png",
		Website:     "https://www.grundig.com",
		Specialties: []string{"Bijela tehnika", "Mali kućanski aparati", "Audio/Video"},
	},
	{
		Name:        "Philips",
		Description: "Nizozemski multinacionalni brand poznat po inovacijama u zdravlju i wellnessu.",
		Logo:        "/images/brands/philips-logo.png",
		Website:     "https://www.philips.com",
		Specialties: []string{"Mali kućanski aparati", "Osobna njega", "Zdravlje"},
	},
	{
		Name:        "Samsung",
		Description: "Južnokorejski tehnološki gigant poznat po inovativnim kućanskim aparatima.",
		Logo:        "/images/brands/samsung-logo.png",
		Website:     "https://www.samsung.com",
		Specialties: []string{"Bijela tehnika", "Pametni aparati", "Tehnologija"},
	},
	{
		Name:        "Alples",
		Description: "Specijalizovan za kvalitetan kuhinjski namještaj i opremu.",
		Logo:        "/images/brands/alples-logo.png",
		Website:     "#",
		Specialties: []string{"Namještaj", "Kuhinjski elementi"},
	},
	{
		Name:        "Astra Cucine",
		Description: "Italijanski brand poznat po modernom dizajnu kuhinja.",
		Logo:        "/images/brands/astra-cucine-logo.png",
		Website:     "https://www.astracucine.it",
		Specialties: []string{"Namještaj", "Kuhinje"},
	},
}

var staticCategories = []*domain.Category{
	{
		Name: "Bijela tehnika",
		Subcategories: []string{
			"Frižideri",
			"Perilice rublja",
			"Sušilice rublja",
			"Perilice posuđa",
			"Štednjaci",
			"Pećnice",
			"Ploče za kuhanje",
			"Nape",
			"Mikrovalne pećnice",
			"Zamrzivači",
		},
	},
	{
		Name: "Mali kućanski aparati",
		Subcategories: []string{
			"Kafe aparati",
			"Ekspres za kafu",
			"Toster",
			"Blender",
			"Mikser",
			"Friteuse",
			"Grill",
			"Robot za kuhinju",
			"Aparat za smoothie",
			"Aparat za vafle",
		},
	},
	{
		Name: "Namještaj",
		Subcategories: []string{
			"Kuhinjski namještaj",
			"Trpezarijski namještaj",
			"Dnevni boravak",
			"Spavaće sobe",
			"Radni stolovi",
			"Ormarići",
			"Police",
			"Stolice",
		},
	},
}

var staticStoreInfo = domain.StoreInfo{
	Name:    "Mobili più",
	Owner:   "Sandra Fabijanić",
	Address: "Mobili più, trg.obrt, Umag",
	Phone:   "+385 91 568 7580",
	Email:   "info.mobilipiu@gmail.com",
	WorkingHours: domain.WorkingHours{
		Monday:    "09:00 - 17:00",
		Tuesday:   "09:00 - 17:00",
		Wednesday: "09:00 - 17:00",
		Thursday:  "09:00 - 17:00",
		Friday:    "09:00 - 15:00",
		Saturday:  "Zatvoreno",
		Sunday:    "Zatvoreno",
	},
	Brands:   []string{"Bosch", "Miele", "Electrolux", "AEG", "Gorenje", "Tesla", "Beko"},
	Services: []string{"Prodaja kućanskih aparata", "3D dizajn prostora", "Dostava i instalacija", "Servis i održavanje"},
	Location: domain.Location{Lat: 45.4316, Lng: 13.5282},
}

// placeholderProduct builds the single product served for any id while the
// store is unconfigured, so the storefront stays renderable.
func placeholderProduct(id string) *domain.Product {
	originalPrice := 3599.0
	return &domain.Product{
		ID:            id,
		Name:          "Bosch Perilica rublja WAU28PH9BY",
		Description:   "Kvalitetna perilica rublja s 9kg kapaciteta i EcoSilence Drive motorom",
		Price:         3299,
		OriginalPrice: &originalPrice,
		Brand:         "Bosch",
		Category:      "Bijela tehnika",
		Subcategory:   "Perilice rublja",
		Images:        []string{"/images/products/bosch-perilica.jpg"},
		Specifications: map[string]any{
			"kapacitet":          "9 kg",
			"energetska_klasa":   "A+++",
			"brzina_centrifuge":  "1400 rpm",
			"boja":               "Bijela",
		},
		InStock:  true,
		Featured: true,
		Tags:     []string{},
		Warranty: "2 godine",
		CreatedAt: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}
