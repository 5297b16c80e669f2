// Package game defines the core state types for the pirate conquest engine.
//
// These types represent the minimal state needed for rules evaluation and
// self-play. The state is designed to be efficiently clonable so the rules
// package can compute candidate next states without mutating the input.
package game

// GameStatus is the top-level lifecycle of a game. Transitions are one-way:
// waiting -> active -> completed.
type GameStatus string

const (
	StatusWaiting   GameStatus = "waiting"
	StatusActive    GameStatus = "active"
	StatusCompleted GameStatus = "completed"
)

// GamePhase cycles within an active game. Phases are advisory: the rules
// layer records them for callers but does not gate action legality on them.
type GamePhase string

const (
	PhaseDeployment GamePhase = "deployment"
	PhaseMovement   GamePhase = "movement"
	PhaseCombat     GamePhase = "combat"
	PhaseCollection GamePhase = "resource_collection"
)

// TerritoryType is the fixed type of a map cell.
type TerritoryType string

const (
	Water     TerritoryType = "water"
	Island    TerritoryType = "island"
	Port      TerritoryType = "port"
	Treasure  TerritoryType = "treasure"
	Storm     TerritoryType = "storm"
	Reef      TerritoryType = "reef"
	Whirlpool TerritoryType = "whirlpool"
)

// ShipType selects a fixed stat template.
type ShipType string

const (
	Sloop    ShipType = "sloop"
	Frigate  ShipType = "frigate"
	Galleon  ShipType = "galleon"
	Flagship ShipType = "flagship"
)

// Resources are named integer counters. They are never negative: all
// mutating helpers clamp at zero.
type Resources struct {
	Gold     int `json:"gold" yaml:"gold"`
	Crew     int `json:"crew" yaml:"crew"`
	Cannons  int `json:"cannons" yaml:"cannons"`
	Supplies int `json:"supplies" yaml:"supplies"`
}

// Add returns the component-wise sum.
func (r Resources) Add(o Resources) Resources {
	return Resources{
		Gold:     r.Gold + o.Gold,
		Crew:     r.Crew + o.Crew,
		Cannons:  r.Cannons + o.Cannons,
		Supplies: r.Supplies + o.Supplies,
	}
}

// Sub returns r minus o with every component clamped at zero.
func (r Resources) Sub(o Resources) Resources {
	return Resources{
		Gold:     clampZero(r.Gold - o.Gold),
		Crew:     clampZero(r.Crew - o.Crew),
		Cannons:  clampZero(r.Cannons - o.Cannons),
		Supplies: clampZero(r.Supplies - o.Supplies),
	}
}

// CanAfford reports whether every component of cost is covered.
func (r Resources) CanAfford(cost Resources) bool {
	return r.Gold >= cost.Gold && r.Crew >= cost.Crew &&
		r.Cannons >= cost.Cannons && r.Supplies >= cost.Supplies
}

// Value is the weighted resource score used for ranking and for the
// economic victory threshold: gold + 2*crew + 5*cannons + supplies.
func (r Resources) Value() int {
	return r.Gold + 2*r.Crew + 5*r.Cannons + r.Supplies
}

// IsZero reports whether all components are zero.
func (r Resources) IsZero() bool {
	return r == Resources{}
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// TerritoryCell is one grid square. Type and Generates are immutable after
// map generation; only Owner and Contested change over the game's life.
type TerritoryCell struct {
	Coord     Coordinate    `json:"coord"`
	Type      TerritoryType `json:"type"`
	Owner     string        `json:"owner,omitempty"`
	Contested bool          `json:"contested,omitempty"`
	Generates Resources     `json:"generates"`
}

// GameMap is a square grid of territory cells stored row-major
// (index = x*Size + y, matching the authoritative layout).
type GameMap struct {
	Size  int             `json:"size"`
	Cells []TerritoryCell `json:"cells"`
}

// At returns the cell at (x, y), or nil when off-board.
func (m *GameMap) At(x, y int) *TerritoryCell {
	if m == nil || x < 0 || y < 0 || x >= m.Size || y >= m.Size {
		return nil
	}
	return &m.Cells[x*m.Size+y]
}

// AtCoord returns the cell at c, or nil when off-board.
func (m *GameMap) AtCoord(c Coordinate) *TerritoryCell {
	return m.At(c.X, c.Y)
}

// Clone performs a deep copy of the map.
func (m *GameMap) Clone() *GameMap {
	if m == nil {
		return nil
	}
	out := &GameMap{Size: m.Size}
	if len(m.Cells) > 0 {
		out.Cells = make([]TerritoryCell, len(m.Cells))
		copy(out.Cells, m.Cells)
	}
	return out
}

// Ship is one vessel in a player's fleet. A ship with Health <= 0 is
// destroyed: it stays in the roster for history but is excluded from all
// movement, combat, and scoring queries.
type Ship struct {
	ID             string     `json:"id"`
	Type           ShipType   `json:"type"`
	Health         int        `json:"health"`
	MaxHealth      int        `json:"max_health"`
	Attack         int        `json:"attack"`
	Defense        int        `json:"defense"`
	Speed          int        `json:"speed"`
	Position       Coordinate `json:"position"`
	LastActionTurn int        `json:"last_action_turn"`
}

// Destroyed reports whether the ship has been sunk.
func (s *Ship) Destroyed() bool {
	return s.Health <= 0
}

// Player holds one participant's fleet, holdings, and score.
// ControlledTerritories is the authoritative index of owned cells; it must
// always agree with TerritoryCell.Owner on the map.
type Player struct {
	PublicKey             string    `json:"public_key"`
	Ships                 []Ship    `json:"ships"`
	ControlledTerritories []string  `json:"controlled_territories"`
	Resources             Resources `json:"resources"`
	TotalScore            int       `json:"total_score"`
	Active                bool      `json:"active"`

	// Scouting state: remaining scan charges and the bit-packed set of
	// revealed cells (see scan.go).
	ScanCharges  int    `json:"scan_charges"`
	ScannedCells []byte `json:"scanned_cells,omitempty"`
}

// Ship returns the ship with the given id, or nil.
func (p *Player) Ship(id string) *Ship {
	for i := range p.Ships {
		if p.Ships[i].ID == id {
			return &p.Ships[i]
		}
	}
	return nil
}

// LivingShips returns the number of ships with health above zero.
func (p *Player) LivingShips() int {
	n := 0
	for i := range p.Ships {
		if !p.Ships[i].Destroyed() {
			n++
		}
	}
	return n
}

// Controls reports whether coord is in the player's territory index.
func (p *Player) Controls(coord string) bool {
	for _, c := range p.ControlledTerritories {
		if c == coord {
			return true
		}
	}
	return false
}

// AddTerritory inserts coord into the index if not already present.
func (p *Player) AddTerritory(coord string) {
	if !p.Controls(coord) {
		p.ControlledTerritories = append(p.ControlledTerritories, coord)
	}
}

// RemoveTerritory deletes coord from the index if present.
func (p *Player) RemoveTerritory(coord string) {
	for i, c := range p.ControlledTerritories {
		if c == coord {
			p.ControlledTerritories = append(p.ControlledTerritories[:i], p.ControlledTerritories[i+1:]...)
			return
		}
	}
}

// Event is one entry of the game's event log: plain data describing an
// applied action, mirroring what the authoritative layer emits.
type Event struct {
	Turn    int    `json:"turn"`
	Type    string `json:"type"`
	Player  string `json:"player,omitempty"`
	Message string `json:"message"`
}

// GameState is the complete state of one game. It is created in waiting
// status with an empty player list, mutated exclusively through the rules
// package while active, and frozen once completed. Winner is set exactly
// once, at the transition to completed.
type GameState struct {
	GameID             uint64     `json:"game_id"`
	Seed               uint64     `json:"seed"`
	Players            []Player   `json:"players"`
	CurrentPlayerIndex int        `json:"current_player_index"`
	Map                *GameMap   `json:"map"`
	Status             GameStatus `json:"status"`
	Phase              GamePhase  `json:"phase"`
	TurnNumber         int        `json:"turn_number"`
	PendingAction      string     `json:"pending_action,omitempty"`
	Winner             string     `json:"winner,omitempty"`
	VictoryType        string     `json:"victory_type,omitempty"`
	Events             []Event    `json:"events,omitempty"`
}

// CurrentPlayer returns the player whose turn it is, or nil before any
// players have joined.
func (s *GameState) CurrentPlayer() *Player {
	if s.CurrentPlayerIndex < 0 || s.CurrentPlayerIndex >= len(s.Players) {
		return nil
	}
	return &s.Players[s.CurrentPlayerIndex]
}

// PlayerByKey returns the player with the given public key, or nil.
func (s *GameState) PlayerByKey(key string) *Player {
	for i := range s.Players {
		if s.Players[i].PublicKey == key {
			return &s.Players[i]
		}
	}
	return nil
}

// ShipAt returns the owner key and ship occupying c, skipping destroyed
// ships. Returns "" and nil when the cell is empty.
func (s *GameState) ShipAt(c Coordinate) (string, *Ship) {
	for i := range s.Players {
		p := &s.Players[i]
		for j := range p.Ships {
			sh := &p.Ships[j]
			if !sh.Destroyed() && sh.Position == c {
				return p.PublicKey, sh
			}
		}
	}
	return "", nil
}

// Clone performs a deep copy of the game state.
func (s *GameState) Clone() *GameState {
	if s == nil {
		return nil
	}

	out := &GameState{
		GameID:             s.GameID,
		Seed:               s.Seed,
		CurrentPlayerIndex: s.CurrentPlayerIndex,
		Map:                s.Map.Clone(),
		Status:             s.Status,
		Phase:              s.Phase,
		TurnNumber:         s.TurnNumber,
		PendingAction:      s.PendingAction,
		Winner:             s.Winner,
		VictoryType:        s.VictoryType,
	}

	if len(s.Players) > 0 {
		out.Players = make([]Player, len(s.Players))
		for i := range s.Players {
			p := s.Players[i]
			cp := Player{
				PublicKey:   p.PublicKey,
				Resources:   p.Resources,
				TotalScore:  p.TotalScore,
				Active:      p.Active,
				ScanCharges: p.ScanCharges,
			}
			if len(p.ScannedCells) > 0 {
				cp.ScannedCells = make([]byte, len(p.ScannedCells))
				copy(cp.ScannedCells, p.ScannedCells)
			}
			if len(p.Ships) > 0 {
				cp.Ships = make([]Ship, len(p.Ships))
				copy(cp.Ships, p.Ships)
			}
			if len(p.ControlledTerritories) > 0 {
				cp.ControlledTerritories = make([]string, len(p.ControlledTerritories))
				copy(cp.ControlledTerritories, p.ControlledTerritories)
			}
			out.Players[i] = cp
		}
	}

	if len(s.Events) > 0 {
		out.Events = make([]Event, len(s.Events))
		copy(out.Events, s.Events)
	}

	return out
}
