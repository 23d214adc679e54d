package board

type DeckType string

const (
	DeckChance         DeckType = "chance"
	DeckCommunityChest DeckType = "community_chest"
)

// Effect is the closed set of card payloads. Implementations live in this package only.
type Effect interface {
	effect()
}

type (
	// MoveTo moves to an absolute position, collecting GO salary when it wraps or lands on GO.
	MoveTo struct{ Position int }
	// MoveToNearest advances to the next property of Kind; rent there is boosted.
	MoveToNearest struct{ Kind PropertyKind }
	// MoveRelative moves by Spaces; negative values never pass GO.
	MoveRelative struct{ Spaces int }
	Collect      struct{ Amount int }
	Pay          struct{ Amount int }
	// PayPerBuilding charges PerHouse for every house and PerHotel for every hotel owned.
	PayPerBuilding        struct{ PerHouse, PerHotel int }
	CollectFromEachPlayer struct{ Amount int }
	PayEachPlayer         struct{ Amount int }
	GetOutOfJailFree      struct{}
	GoToJail              struct{}
)

func (MoveTo) effect()                {}
func (MoveToNearest) effect()         {}
func (MoveRelative) effect()          {}
func (Collect) effect()               {}
func (Pay) effect()                   {}
func (PayPerBuilding) effect()        {}
func (CollectFromEachPlayer) effect() {}
func (PayEachPlayer) effect()         {}
func (GetOutOfJailFree) effect()      {}
func (GoToJail) effect()              {}

type Card struct {
	ID     int
	Text   string
	Effect Effect
}

var chanceCards = []Card{
	{ID: 1, Text: "Advance to Boardwalk", Effect: MoveTo{Position: 39}},
	{ID: 2, Text: "Advance to Go (Collect $200)", Effect: MoveTo{Position: GoPosition}},
	{ID: 3, Text: "Advance to Illinois Avenue. If you pass Go, collect $200", Effect: MoveTo{Position: 24}},
	{ID: 4, Text: "Advance to St. Charles Place. If you pass Go, collect $200", Effect: MoveTo{Position: 11}},
	{ID: 5, Text: "Advance to the nearest Railroad. If owned, pay owner twice the rental", Effect: MoveToNearest{Kind: KindRailroad}},
	{ID: 6, Text: "Advance to the nearest Railroad. If owned, pay owner twice the rental", Effect: MoveToNearest{Kind: KindRailroad}},
	{ID: 7, Text: "Advance token to nearest Utility. If owned, pay owner 10 times amount thrown", Effect: MoveToNearest{Kind: KindUtility}},
	{ID: 8, Text: "Bank pays you dividend of $50", Effect: Collect{Amount: 50}},
	{ID: 9, Text: "Get Out of Jail Free", Effect: GetOutOfJailFree{}},
	{ID: 10, Text: "Go Back 3 Spaces", Effect: MoveRelative{Spaces: -3}},
	{ID: 11, Text: "Go to Jail. Go directly to Jail, do not pass Go, do not collect $200", Effect: GoToJail{}},
	{ID: 12, Text: "Make general repairs on all your property. For each house pay $25. For each hotel pay $100", Effect: PayPerBuilding{PerHouse: 25, PerHotel: 100}},
	{ID: 13, Text: "Speeding fine $15", Effect: Pay{Amount: 15}},
	{ID: 14, Text: "Take a trip to Reading Railroad. If you pass Go, collect $200", Effect: MoveTo{Position: 5}},
	{ID: 15, Text: "You have been elected Chairman of the Board. Pay each player $50", Effect: PayEachPlayer{Amount: 50}},
	{ID: 16, Text: "Your building loan matures. Collect $150", Effect: Collect{Amount: 150}},
}

var communityChestCards = []Card{
	{ID: 1, Text: "Advance to Go (Collect $200)", Effect: MoveTo{Position: GoPosition}},
	{ID: 2, Text: "Bank error in your favor. Collect $200", Effect: Collect{Amount: 200}},
	{ID: 3, Text: "Doctor's fee. Pay $50", Effect: Pay{Amount: 50}},
	{ID: 4, Text: "From sale of stock you get $50", Effect: Collect{Amount: 50}},
	{ID: 5, Text: "Get Out of Jail Free", Effect: GetOutOfJailFree{}},
	{ID: 6, Text: "Go to Jail. Go directly to jail, do not pass Go, do not collect $200", Effect: GoToJail{}},
	{ID: 7, Text: "Holiday fund matures. Receive $100", Effect: Collect{Amount: 100}},
	{ID: 8, Text: "Income tax refund. Collect $20", Effect: Collect{Amount: 20}},
	{ID: 9, Text: "It is your birthday. Collect $10 from every player", Effect: CollectFromEachPlayer{Amount: 10}},
	{ID: 10, Text: "Life insurance matures. Collect $100", Effect: Collect{Amount: 100}},
	{ID: 11, Text: "Pay hospital fees of $100", Effect: Pay{Amount: 100}},
	{ID: 12, Text: "Pay school fees of $50", Effect: Pay{Amount: 50}},
	{ID: 13, Text: "Receive $25 consultancy fee", Effect: Collect{Amount: 25}},
	{ID: 14, Text: "You are assessed for street repair. $40 per house. $115 per hotel", Effect: PayPerBuilding{PerHouse: 40, PerHotel: 115}},
	{ID: 15, Text: "You have won second prize in a beauty contest. Collect $10", Effect: Collect{Amount: 10}},
	{ID: 16, Text: "You inherit $100", Effect: Collect{Amount: 100}},
}

// DeckSize is the number of cards in each deck.
const DeckSize = 16

// CardAt - returns the card at an index (0-based) of a deck.
func CardAt(deck DeckType, index int) Card {
	if deck == DeckChance {
		return chanceCards[index]
	}

	return communityChestCards[index]
}

// Cards - returns a copy of a deck in printed order.
func Cards(deck DeckType) []Card {
	src := communityChestCards
	if deck == DeckChance {
		src = chanceCards
	}

	out := make([]Card, len(src))
	copy(out, src)
	return out
}
