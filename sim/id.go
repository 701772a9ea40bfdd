package sim

import "github.com/google/uuid"

// ID is a 128-bit entity identifier. IDs are globally unique, comparable,
// orderable by byte value, and display as the canonical UUID string. The
// all-zero value is reserved and never identifies a valid entity.
type ID struct{ uuid.UUID }

func newID() ID { return ID{uuid.New()} }

// IsNil reports whether id is the reserved all-zero value.
func (id ID) IsNil() bool { return id.UUID == uuid.Nil }

// Typed identifiers. Keeping player, team, game and park IDs as distinct
// types means a reference of the wrong kind fails to compile instead of
// dangling at runtime.
type (
	PlayerID struct{ ID }
	TeamID   struct{ ID }
	GameID   struct{ ID }
	ParkID   struct{ ID }
)

func NewPlayerID() PlayerID { return PlayerID{newID()} }
func NewTeamID() TeamID     { return TeamID{newID()} }
func NewGameID() GameID     { return GameID{newID()} }
func NewParkID() ParkID     { return ParkID{newID()} }
