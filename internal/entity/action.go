package entity

type ActionType string

const (
	ActionRollDice       ActionType = "roll_dice"
	ActionBuyProperty    ActionType = "buy_property"
	ActionPassProperty   ActionType = "pass_property"
	ActionBuildHouse     ActionType = "build_house"
	ActionBuildHotel     ActionType = "build_hotel"
	ActionPayJailFine    ActionType = "pay_jail_fine"
	ActionUseJailCard    ActionType = "use_jail_card"
	ActionRollForDoubles ActionType = "roll_for_doubles"
	ActionEndTurn        ActionType = "end_turn"
)

// Action is a decision submitted by the acting player. PropertyID is only read by
// buy_property, build_house and build_hotel.
type Action struct {
	Type       ActionType `json:"type"`
	PropertyID string     `json:"property_id,omitempty"`
}

type LegalAction struct {
	Type        ActionType `json:"type"`
	PropertyID  string     `json:"property_id,omitempty"`
	Cost        int        `json:"cost,omitempty"`
	Description string     `json:"description"`
}

// Action - strips the listing down to the action that selects it.
func (that LegalAction) Action() Action {
	return Action{Type: that.Type, PropertyID: that.PropertyID}
}

type LegalActions struct {
	GameID   string        `json:"game_id"`
	PlayerID string        `json:"player_id"`
	Phase    Phase         `json:"phase"`
	Actions  []LegalAction `json:"actions"`
}

type ActionResult struct {
	Success  bool    `json:"success"`
	Message  string  `json:"message"`
	State    *Game   `json:"state"`
	Events   []Event `json:"events"`
	GameOver bool    `json:"game_over"`
	WinnerID string  `json:"winner_id,omitempty"`
}
