package cursor

// State holds the row cursor of one list on screen
type State struct {
	Cursor         int
	ViewportOffset int
	ViewportHeight int
	MaxIndex       int
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionHome Direction = "home"
	DirectionEnd  Direction = "end"
)
