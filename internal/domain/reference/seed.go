package reference

// DefaultCounties is the reference data loaded by `bursaryctl seed`.
var DefaultCounties = map[string][]string{
	"Nairobi": {
		"Westlands", "Dagoretti North", "Dagoretti South", "Langata", "Kibra",
		"Roysambu", "Kasarani", "Ruaraka", "Embakasi South", "Embakasi North",
		"Embakasi Central", "Embakasi East", "Embakasi West", "Makadara",
		"Kamukunji", "Starehe", "Mathare",
	},
	"Mombasa": {"Changamwe", "Jomvu", "Kisauni", "Nyali", "Likoni", "Mvita"},
	"Kisumu": {
		"Kisumu East", "Kisumu West", "Kisumu Central", "Seme",
		"Nyando", "Muhoroni", "Nyakach",
	},
	"Nakuru": {
		"Molo", "Njoro", "Naivasha", "Gilgil", "Kuresoi South", "Kuresoi North",
		"Subukia", "Rongai", "Bahati", "Nakuru Town West", "Nakuru Town East",
	},
	"Kiambu": {
		"Gatundu South", "Gatundu North", "Juja", "Thika Town", "Ruiru",
		"Githunguri", "Kiambu", "Kiambaa", "Kabete", "Kikuyu", "Limuru", "Lari",
	},
}
