package domain

type Game struct {
	Grid          Grid
	CurrentPlayer PlayerID
	Status        GameStatus
	Winner        PlayerID
	MoveCount     int
}

func NewGame() *Game {
	return &Game{
		Grid:          NewGrid(),
		CurrentPlayer: Player1,
		Status:        StatusActive,
		Winner:        Empty,
		MoveCount:     0,
	}
}

// MakeMove drops the current player's piece into column and advances the
// game. A rejected move leaves the game untouched.
func (g *Game) MakeMove(column int) (int, error) {
	if g.IsFinished() {
		return -1, ErrGameFinished
	}

	if column < 0 || column >= Columns {
		return -1, ErrInvalidColumn
	}

	if !IsColumnPlayable(&g.Grid, column) {
		return -1, ErrColumnFull
	}

	row, ok := LowestOpenRow(&g.Grid, column)
	if !ok {
		return -1, ErrColumnFull
	}

	PlacePiece(&g.Grid, row, column, g.CurrentPlayer)
	g.MoveCount++

	if HasWinningLine(&g.Grid, g.CurrentPlayer) {
		g.Status = StatusWon
		g.Winner = g.CurrentPlayer
		return row, nil
	}

	if IsGridFull(&g.Grid) {
		g.Status = StatusDraw
		return row, nil
	}

	g.CurrentPlayer = g.CurrentPlayer.Opponent()

	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
