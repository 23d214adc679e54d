package entity

// PlayerSpec is what a caller supplies per seat when creating a game.
type PlayerSpec struct {
	Name        string `json:"name"`
	Personality string `json:"personality,omitempty"`
	Model       string `json:"model,omitempty"`
}

type Player struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Personality       string `json:"personality,omitempty"`
	Model             string `json:"model,omitempty"`
	Order             int    `json:"order"`
	Position          int    `json:"position"`
	Cash              int    `json:"cash"`
	InJail            bool   `json:"in_jail"`
	JailTurns         int    `json:"jail_turns"`
	GetOutOfJailCards int    `json:"get_out_of_jail_cards"`
	IsBankrupt        bool   `json:"is_bankrupt"`
	NetWorth          int    `json:"net_worth"`
}

func NewPlayer(id string, order int, spec PlayerSpec, cash int) *Player {
	return &Player{
		ID:          id,
		Name:        spec.Name,
		Personality: spec.Personality,
		Model:       spec.Model,
		Order:       order,
		Cash:        cash,
		NetWorth:    cash,
	}
}

func (that *Player) IsActive() bool {
	return !that.IsBankrupt
}
