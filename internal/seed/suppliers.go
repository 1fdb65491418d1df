package seed

import (
	"fmt"
	"strings"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
)

type location struct {
	postcode string
	lat      float64
	lon      float64
	area     string
}

// Sample UK postcodes with coordinates, one directory cluster per city.
var locations = []location{
	{"SW1A 1AA", 51.5014, -0.1419, "Westminster, London"},
	{"M1 1AA", 53.4808, -2.2426, "Manchester"},
	{"B1 1AA", 52.4862, -1.8904, "Birmingham"},
	{"LS1 1AA", 53.8008, -1.5491, "Leeds"},
	{"G1 1AA", 55.8642, -4.2518, "Glasgow"},
	{"EH1 1AA", 55.9533, -3.1883, "Edinburgh"},
	{"L1 1AA", 53.4084, -2.9916, "Liverpool"},
	{"BS1 1AA", 51.4545, -2.5879, "Bristol"},
	{"NE1 1AA", 54.9783, -1.6178, "Newcastle"},
	{"S1 1AA", 53.3811, -1.4701, "Sheffield"},
}

var funeralDirectorNames = []string{
	"Dignity Funerals", "Co-op Funerals", "Legacy Independent Funeral Directors",
	"Compassionate Care Funerals", "Serenity Funeral Services", "Heritage Funeral Directors",
	"Eternal Rest Funeral Home", "Peaceful Passages", "Angel Wing Funerals",
	"Golden Gate Funeral Services", "Respectful Farewells", "Community Funeral Care",
}

var floristNames = []string{
	"Bloom & Blossom", "Eternal Flowers", "Sympathy Blooms", "Rose Garden Florist",
	"Petals of Peace", "Memory Lane Flowers", "Graceful Gardens", "Tranquil Blooms",
	"Forever Flowers", "Serene Petals", "Remembrance Roses",
}

var masonNames = []string{
	"Heritage Memorials", "Lasting Tributes Masonry", "Eternal Stone Works",
	"Classic Memorials", "Dignified Monuments", "Forever Remembered Memorials",
	"Stone & Memory", "Legacy Headstones", "Timeless Tributes",
}

var venueNames = []string{
	"The Grand Hall", "Riverside Community Centre", "Heritage Chapel",
	"Garden View Venue", "Memorial Park Hall", "The Serenity Room",
	"Parkside Event Space", "The Reflection Hall",
}

var catererNames = []string{
	"Comfort Foods Catering", "Gathering Table", "Memorial Feast Catering",
	"Warm Welcome Caterers", "Community Kitchen", "Heartfelt Catering",
	"Celebration Meals", "Together Catering",
}

func domainSlug(name string) string {
	s := strings.ToLower(name)
	for _, r := range []string{" ", "&", "'"} {
		s = strings.ReplaceAll(s, r, "")
	}
	return s
}

// Suppliers returns a deterministic directory roster: each city gets three
// funeral directors, two florists, a stonemason, a venue and a caterer.
// Ratings and prices vary by index so sort orders are stable across runs.
func Suppliers() []domain.Supplier {
	var suppliers []domain.Supplier
	id := 0

	add := func(loc location, typ, name, street, desc string, services []string, pricing map[string]float64, rating float64, reviews int, verified bool, mailbox string) {
		id++
		slug := domainSlug(name)
		suppliers = append(suppliers, domain.Supplier{
			ID:          fmt.Sprintf("supplier_%d", id),
			Name:        fmt.Sprintf("%s - %s", name, loc.area),
			Type:        typ,
			Address:     fmt.Sprintf("%d %s, %s", 10+id*3%190, street, loc.area),
			Postcode:    loc.postcode,
			Lat:         loc.lat,
			Lon:         loc.lon,
			Phone:       fmt.Sprintf("01%09d", 100000000+id*7919),
			Email:       fmt.Sprintf("%s@%s.co.uk", mailbox, slug),
			Website:     fmt.Sprintf("https://www.%s.co.uk", slug),
			Description: desc,
			Services:    services,
			Pricing:     pricing,
			Rating:      rating,
			ReviewCount: reviews,
			Verified:    verified,
			Available:   true,
		})
	}

	for li, loc := range locations {
		for i := 0; i < 3; i++ {
			name := funeralDirectorNames[(li*3+i)%len(funeralDirectorNames)]
			add(loc, domain.SupplierFuneralDirector, name, "High Street",
				"Professional funeral services with compassionate care. Available 24/7 for immediate support.",
				[]string{"Burial", "Cremation", "Direct Cremation", "Repatriation", "Memorial Services"},
				map[string]float64{
					"basic_funeral":    3000 + float64((li*3+i)%16)*100,
					"full_service":     4500 + float64((li*3+i)%25)*100,
					"direct_cremation": 1200 + float64((li*3+i)%7)*100,
				},
				4.0+float64((li+i)%10)/10, 15+(li*3+i)*9%135, (li*3+i)%4 != 3, "info")
		}
		for i := 0; i < 2; i++ {
			name := floristNames[(li*2+i)%len(floristNames)]
			add(loc, domain.SupplierFlorist, name, "Market Street",
				"Beautiful funeral flowers and sympathy arrangements. Same-day delivery available.",
				[]string{"Casket Sprays", "Standing Wreaths", "Sympathy Bouquets", "Custom Arrangements"},
				map[string]float64{
					"wreath":       60 + float64((li*2+i)%10)*9,
					"casket_spray": 100 + float64((li*2+i)%8)*19,
					"bouquet":      40 + float64((li*2+i)%6)*8,
				},
				4.2+float64((li+i)%8)/10, 20+(li*2+i)*11%80, (li*2+i)%3 != 2, "orders")
		}
		{
			name := masonNames[li%len(masonNames)]
			add(loc, domain.SupplierMason, name, "Industrial Estate",
				"Quality headstones and memorials. Free consultation and design service.",
				[]string{"Headstones", "Memorial Plaques", "Inscriptions", "Restoration", "Custom Design"},
				map[string]float64{
					"basic_headstone": 800 + float64(li%8)*90,
					"memorial_plaque": 200 + float64(li%7)*40,
					"inscription":     100 + float64(li%5)*40,
				},
				4.0+float64(li%10)/10, 10+li*6%50, li%2 == 0, "enquiries")
		}
		{
			name := venueNames[li%len(venueNames)]
			add(loc, domain.SupplierVenue, name, "Central Road",
				"Spacious and dignified venue for memorial services and receptions. Accessible facilities.",
				[]string{"Memorial Service Venue", "Reception Catering", "AV Equipment", "Parking"},
				map[string]float64{
					"half_day": 300 + float64(li%6)*80,
					"full_day": 600 + float64(li%10)*90,
					"evening":  400 + float64(li%7)*80,
				},
				4.0+float64((li+3)%10)/10, 25+li*7%55, true, "bookings")
		}
		{
			name := catererNames[li%len(catererNames)]
			add(loc, domain.SupplierCaterer, name, "Station Road",
				"Compassionate catering for funeral wakes and memorial gatherings. Dietary requirements catered for.",
				[]string{"Buffet Catering", "Hot Meals", "Vegetarian Options", "Halal/Kosher", "Delivery"},
				map[string]float64{
					"buffet_per_head":   10 + float64(li%8)*2,
					"hot_meal_per_head": 15 + float64(li%7)*3,
					"refreshments":      5 + float64(li%5),
				},
				4.1+float64((li+1)%9)/10, 15+li*8%75, li%3 != 2, "info")
		}
	}

	return suppliers
}
