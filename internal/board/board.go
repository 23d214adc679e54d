// Package board holds the immutable Monopoly tables: the 40 spaces, the 28 properties and
// the Chance and Community Chest decks. Nothing in this package mutates after init.
package board

const (
	Size          = 40
	GoPosition    = 0
	JailPosition  = 10
	GoToJailSpace = 30
	GoSalary      = 200
)

type SpaceType string

const (
	SpaceGo             SpaceType = "go"
	SpaceProperty       SpaceType = "property"
	SpaceCommunityChest SpaceType = "community_chest"
	SpaceChance         SpaceType = "chance"
	SpaceTax            SpaceType = "tax"
	SpaceJail           SpaceType = "jail"
	SpaceFreeParking    SpaceType = "free_parking"
	SpaceGoToJail       SpaceType = "go_to_jail"
)

type Space struct {
	Position   int       `json:"position"`
	Name       string    `json:"name"`
	Type       SpaceType `json:"type"`
	PropertyID string    `json:"property_id,omitempty"`
	Tax        int       `json:"tax,omitempty"`
}

var spaces = [Size]Space{
	{Position: 0, Name: "GO", Type: SpaceGo},
	{Position: 1, Name: "Mediterranean Avenue", Type: SpaceProperty, PropertyID: "mediterranean"},
	{Position: 2, Name: "Community Chest", Type: SpaceCommunityChest},
	{Position: 3, Name: "Baltic Avenue", Type: SpaceProperty, PropertyID: "baltic"},
	{Position: 4, Name: "Income Tax", Type: SpaceTax, Tax: 200},
	{Position: 5, Name: "Reading Railroad", Type: SpaceProperty, PropertyID: "reading_rr"},
	{Position: 6, Name: "Oriental Avenue", Type: SpaceProperty, PropertyID: "oriental"},
	{Position: 7, Name: "Chance", Type: SpaceChance},
	{Position: 8, Name: "Vermont Avenue", Type: SpaceProperty, PropertyID: "vermont"},
	{Position: 9, Name: "Connecticut Avenue", Type: SpaceProperty, PropertyID: "connecticut"},
	{Position: 10, Name: "Jail / Just Visiting", Type: SpaceJail},
	{Position: 11, Name: "St. Charles Place", Type: SpaceProperty, PropertyID: "st_charles"},
	{Position: 12, Name: "Electric Company", Type: SpaceProperty, PropertyID: "electric_company"},
	{Position: 13, Name: "States Avenue", Type: SpaceProperty, PropertyID: "states"},
	{Position: 14, Name: "Virginia Avenue", Type: SpaceProperty, PropertyID: "virginia"},
	{Position: 15, Name: "Pennsylvania Railroad", Type: SpaceProperty, PropertyID: "pennsylvania_rr"},
	{Position: 16, Name: "St. James Place", Type: SpaceProperty, PropertyID: "st_james"},
	{Position: 17, Name: "Community Chest", Type: SpaceCommunityChest},
	{Position: 18, Name: "Tennessee Avenue", Type: SpaceProperty, PropertyID: "tennessee"},
	{Position: 19, Name: "New York Avenue", Type: SpaceProperty, PropertyID: "new_york"},
	{Position: 20, Name: "Free Parking", Type: SpaceFreeParking},
	{Position: 21, Name: "Kentucky Avenue", Type: SpaceProperty, PropertyID: "kentucky"},
	{Position: 22, Name: "Chance", Type: SpaceChance},
	{Position: 23, Name: "Indiana Avenue", Type: SpaceProperty, PropertyID: "indiana"},
	{Position: 24, Name: "Illinois Avenue", Type: SpaceProperty, PropertyID: "illinois"},
	{Position: 25, Name: "B&O Railroad", Type: SpaceProperty, PropertyID: "bo_rr"},
	{Position: 26, Name: "Atlantic Avenue", Type: SpaceProperty, PropertyID: "atlantic"},
	{Position: 27, Name: "Ventnor Avenue", Type: SpaceProperty, PropertyID: "ventnor"},
	{Position: 28, Name: "Water Works", Type: SpaceProperty, PropertyID: "water_works"},
	{Position: 29, Name: "Marvin Gardens", Type: SpaceProperty, PropertyID: "marvin_gardens"},
	{Position: 30, Name: "Go To Jail", Type: SpaceGoToJail},
	{Position: 31, Name: "Pacific Avenue", Type: SpaceProperty, PropertyID: "pacific"},
	{Position: 32, Name: "North Carolina Avenue", Type: SpaceProperty, PropertyID: "north_carolina"},
	{Position: 33, Name: "Community Chest", Type: SpaceCommunityChest},
	{Position: 34, Name: "Pennsylvania Avenue", Type: SpaceProperty, PropertyID: "pennsylvania"},
	{Position: 35, Name: "Short Line Railroad", Type: SpaceProperty, PropertyID: "short_line_rr"},
	{Position: 36, Name: "Chance", Type: SpaceChance},
	{Position: 37, Name: "Park Place", Type: SpaceProperty, PropertyID: "park_place"},
	{Position: 38, Name: "Luxury Tax", Type: SpaceTax, Tax: 100},
	{Position: 39, Name: "Boardwalk", Type: SpaceProperty, PropertyID: "boardwalk"},
}

// SpaceAt - returns the space at a board position, wrapping out-of-range values.
func SpaceAt(position int) Space {
	return spaces[((position%Size)+Size)%Size]
}

// Spaces - returns a copy of the board in position order.
func Spaces() []Space {
	out := make([]Space, Size)
	copy(out, spaces[:])
	return out
}
