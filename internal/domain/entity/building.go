package entity

import "strings"

// CampusCenter is used when neither coordinates nor a known building are supplied.
var CampusCenter = Location{Building: "Campus", Latitude: 33.7756, Longitude: -84.3963}

// Building is a named campus location with a fixed coordinate.
type Building struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Buildings lists the picker entries followed by the short names older client builds send.
var Buildings = []Building{
	{Name: "Student Center", Latitude: 33.7738, Longitude: -84.3986},
	{Name: "Klaus Building", Latitude: 33.7772, Longitude: -84.3962},
	{Name: "Library West", Latitude: 33.7745, Longitude: -84.3968},
	{Name: "Library East", Latitude: 33.7744, Longitude: -84.3956},
	{Name: "CRC", Latitude: 33.7753, Longitude: -84.4029},
	{Name: "Van Leer", Latitude: 33.7751, Longitude: -84.3965},
	{Name: "Clough Commons", Latitude: 33.7752, Longitude: -84.3959},
	{Name: "Howey Building", Latitude: 33.7773, Longitude: -84.3985},
	{Name: "Tech Square", Latitude: 33.7773, Longitude: -84.3890},
	{Name: "Scheller College", Latitude: 33.7765, Longitude: -84.3884},
	{Name: "College of Computing", Latitude: 33.7774, Longitude: -84.3973},
	{Name: "Instructional Center", Latitude: 33.7755, Longitude: -84.4015},
	{Name: "Other", Latitude: CampusCenter.Latitude, Longitude: CampusCenter.Longitude},
}

// buildingAliases maps legacy picker names onto coordinates.
var buildingAliases = map[string]Building{
	"clough 320":    {Name: "Clough 320", Latitude: 33.7765, Longitude: -84.3988},
	"library":       {Name: "Library", Latitude: 33.7747, Longitude: -84.3966},
	"klaus":         {Name: "Klaus", Latitude: 33.7770, Longitude: -84.3958},
	"howey physics": {Name: "Howey Physics", Latitude: 33.7773, Longitude: -84.3986},
}

// LookupBuilding finds a building by name, case-insensitively.
func LookupBuilding(name string) (Building, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, b := range Buildings {
		if strings.ToLower(b.Name) == key {
			return b, true
		}
	}
	if b, ok := buildingAliases[key]; ok {
		return b, true
	}

	return Building{}, false
}

// ResolveLocation fills missing coordinates from the building table, then from CampusCenter.
func ResolveLocation(loc Location) Location {
	loc.Building = strings.TrimSpace(loc.Building)
	if loc.HasCoordinates() {
		return loc
	}

	if b, ok := LookupBuilding(loc.Building); ok {
		loc.Latitude = b.Latitude
		loc.Longitude = b.Longitude

		return loc
	}

	loc.Latitude = CampusCenter.Latitude
	loc.Longitude = CampusCenter.Longitude

	return loc
}

// SameBuilding compares building names ignoring case and surrounding space.
func SameBuilding(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)

	return a != "" && strings.EqualFold(a, b)
}
