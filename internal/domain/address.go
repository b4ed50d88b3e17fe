package domain

import (
	"fmt"

	"github.com/stormdb-contrib/tpcgen/internal/distro"
	"github.com/stormdb-contrib/tpcgen/internal/rng"
)

// Address is the composite mailing-address record shared by TPC-DS
// customer/store/call_center/web_site rows.
type Address struct {
	StreetNumber int64
	StreetName   string
	StreetType   string
	SuiteNumber  string
	City         string
	County       string
	State        string
	Zip          string
	Country      string
	GmtOffset    float64
}

// cityHash is the small custom hash the reference kit salts zip codes
// with, combining a city name with a prefix digit.
func cityHash(city string, prefixDigit int) int64 {
	var h int64 = int64(prefixDigit)
	for i, c := range city {
		h = h*31 + int64(c)*int64(i+1)
	}
	if h < 0 {
		h = -h
	}
	return h
}

// BuildAddress constructs an address using the address-builder grammar:
// street-name pair + type from the distribution store, an odd/even seed
// deciding letter-vs-number suite numbers, a city drawn from the active
// window of a small dimension table, county via the fips distribution,
// and state/zip/gmt-offset derived from the chosen county.
func BuildAddress(store *distro.Store, s *rng.Stream, activeCityWindow int) (Address, error) {
	streetNumber := s.NextUniform(1, 999)

	namesDist, err := store.Find("street_names")
	if err != nil {
		return Address{}, err
	}
	name1 := namesDist.Pick(s)
	name2 := namesDist.Pick(s)
	streetName := name1.Text
	if name2.Text != "" {
		streetName = fmt.Sprintf("%s %s", name1.Text, name2.Text)
	}

	typeDist, err := store.Find("street_types")
	if err != nil {
		return Address{}, err
	}
	streetType := typeDist.Pick(s).Text

	suiteSeed := s.NextUniform(0, 1)
	var suite string
	if suiteSeed%2 == 0 {
		suite = fmt.Sprintf("Suite %d", s.NextUniform(100, 999))
	} else {
		suite = fmt.Sprintf("Suite %c", 'A'+byte(s.NextUniform(0, 25)))
	}

	cityDist, err := store.Find("cities")
	if err != nil {
		return Address{}, err
	}
	window := activeCityWindow
	if window <= 0 || window > cityDist.Len() {
		window = cityDist.Len()
	}
	cityIdx := s.NextUniform(0, int64(window-1))
	city := cityDist.Entries[cityIdx]

	countyDist, err := store.Find("fips_county")
	if err != nil {
		return Address{}, err
	}
	county := countyDist.Pick(s)

	prefixDigit := int(s.NextUniform(0, 9))
	zipBase := cityHash(city.Text, prefixDigit) % 90000
	zip := fmt.Sprintf("%05d", 10000+zipBase)

	return Address{
		StreetNumber: streetNumber,
		StreetName:   streetName,
		StreetType:   streetType,
		SuiteNumber:  suite,
		City:         city.Text,
		County:       county.Text,
		State:        county.AuxString,
		Zip:          zip,
		Country:      "United States",
		GmtOffset:    county.AuxFloat,
	}, nil
}
