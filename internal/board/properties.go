package board

type PropertyKind string

const (
	KindStreet   PropertyKind = "street"
	KindRailroad PropertyKind = "railroad"
	KindUtility  PropertyKind = "utility"
)

type Color string

const (
	Brown     Color = "brown"
	LightBlue Color = "light_blue"
	Pink      Color = "pink"
	Orange    Color = "orange"
	Red       Color = "red"
	Yellow    Color = "yellow"
	Green     Color = "green"
	DarkBlue  Color = "dark_blue"
)

// HotelLevel is the house count that represents a hotel.
const HotelLevel = 5

// Property is the static definition of a purchasable space.
// Rent is indexed by house count: [base, 1 house, 2, 3, 4, hotel]; only streets use it.
type Property struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Kind          PropertyKind `json:"kind"`
	Color         Color        `json:"color,omitempty"`
	Position      int          `json:"position"`
	Price         int          `json:"price"`
	Rent          [6]int       `json:"rent,omitempty"`
	HouseCost     int          `json:"house_cost,omitempty"`
	MortgageValue int          `json:"mortgage_value"`
}

func street(id, name string, color Color, position, price, houseCost int, rent [6]int) Property {
	return Property{
		ID:            id,
		Name:          name,
		Kind:          KindStreet,
		Color:         color,
		Position:      position,
		Price:         price,
		Rent:          rent,
		HouseCost:     houseCost,
		MortgageValue: price / 2,
	}
}

func railroad(id, name string, position int) Property {
	return Property{ID: id, Name: name, Kind: KindRailroad, Position: position, Price: 200, MortgageValue: 100}
}

func utility(id, name string, position int) Property {
	return Property{ID: id, Name: name, Kind: KindUtility, Position: position, Price: 150, MortgageValue: 75}
}

// properties are listed in board order.
var properties = []Property{
	street("mediterranean", "Mediterranean Avenue", Brown, 1, 60, 50, [6]int{2, 10, 30, 90, 160, 250}),
	street("baltic", "Baltic Avenue", Brown, 3, 60, 50, [6]int{4, 20, 60, 180, 320, 450}),
	railroad("reading_rr", "Reading Railroad", 5),
	street("oriental", "Oriental Avenue", LightBlue, 6, 100, 50, [6]int{6, 30, 90, 270, 400, 550}),
	street("vermont", "Vermont Avenue", LightBlue, 8, 100, 50, [6]int{6, 30, 90, 270, 400, 550}),
	street("connecticut", "Connecticut Avenue", LightBlue, 9, 120, 50, [6]int{8, 40, 100, 300, 450, 600}),
	street("st_charles", "St. Charles Place", Pink, 11, 140, 100, [6]int{10, 50, 150, 450, 625, 750}),
	utility("electric_company", "Electric Company", 12),
	street("states", "States Avenue", Pink, 13, 140, 100, [6]int{10, 50, 150, 450, 625, 750}),
	street("virginia", "Virginia Avenue", Pink, 14, 160, 100, [6]int{12, 60, 180, 500, 700, 900}),
	railroad("pennsylvania_rr", "Pennsylvania Railroad", 15),
	street("st_james", "St. James Place", Orange, 16, 180, 100, [6]int{14, 70, 200, 550, 750, 950}),
	street("tennessee", "Tennessee Avenue", Orange, 18, 180, 100, [6]int{14, 70, 200, 550, 750, 950}),
	street("new_york", "New York Avenue", Orange, 19, 200, 100, [6]int{16, 80, 220, 600, 800, 1000}),
	street("kentucky", "Kentucky Avenue", Red, 21, 220, 150, [6]int{18, 90, 250, 700, 875, 1050}),
	street("indiana", "Indiana Avenue", Red, 23, 220, 150, [6]int{18, 90, 250, 700, 875, 1050}),
	street("illinois", "Illinois Avenue", Red, 24, 240, 150, [6]int{20, 100, 300, 750, 925, 1100}),
	railroad("bo_rr", "B&O Railroad", 25),
	street("atlantic", "Atlantic Avenue", Yellow, 26, 260, 150, [6]int{22, 110, 330, 800, 975, 1150}),
	street("ventnor", "Ventnor Avenue", Yellow, 27, 260, 150, [6]int{22, 110, 330, 800, 975, 1150}),
	utility("water_works", "Water Works", 28),
	street("marvin_gardens", "Marvin Gardens", Yellow, 29, 280, 150, [6]int{24, 120, 360, 850, 1025, 1200}),
	street("pacific", "Pacific Avenue", Green, 31, 300, 200, [6]int{26, 130, 390, 900, 1100, 1275}),
	street("north_carolina", "North Carolina Avenue", Green, 32, 300, 200, [6]int{26, 130, 390, 900, 1100, 1275}),
	street("pennsylvania", "Pennsylvania Avenue", Green, 34, 320, 200, [6]int{28, 150, 450, 1000, 1200, 1400}),
	railroad("short_line_rr", "Short Line Railroad", 35),
	street("park_place", "Park Place", DarkBlue, 37, 350, 200, [6]int{35, 175, 500, 1100, 1300, 1500}),
	street("boardwalk", "Boardwalk", DarkBlue, 39, 400, 200, [6]int{50, 200, 600, 1400, 1700, 2000}),
}

var (
	propertyByID = make(map[string]Property, len(properties))
	colorGroups  = make(map[Color][]string)
	kindIDs      = make(map[PropertyKind][]string)
)

func init() {
	for _, prop := range properties {
		propertyByID[prop.ID] = prop
		kindIDs[prop.Kind] = append(kindIDs[prop.Kind], prop.ID)
		if prop.Kind == KindStreet {
			colorGroups[prop.Color] = append(colorGroups[prop.Color], prop.ID)
		}
	}
}

// PropertyByID - looks a property up by its id.
func PropertyByID(id string) (Property, bool) {
	prop, ok := propertyByID[id]
	return prop, ok
}

// Properties - returns all 28 properties in board order.
func Properties() []Property {
	out := make([]Property, len(properties))
	copy(out, properties)
	return out
}

// ColorGroup - returns the street ids sharing a color, in board order.
func ColorGroup(color Color) []string {
	return append([]string(nil), colorGroups[color]...)
}

// IDsOfKind - returns the property ids of one kind, in board order.
func IDsOfKind(kind PropertyKind) []string {
	return append([]string(nil), kindIDs[kind]...)
}

// NearestOfKind - returns the position of the next property of a kind strictly ahead of position,
// wrapping past GO.
func NearestOfKind(position int, kind PropertyKind) int {
	ids := kindIDs[kind]
	for _, id := range ids {
		if pos := propertyByID[id].Position; pos > position {
			return pos
		}
	}

	return propertyByID[ids[0]].Position
}
