// Package console plays TOOT-OTTO in a terminal.
package console

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/iamasit07/toot-otto/internal/domain"
)

const (
	cellWidth  = 4
	cellHeight = 2
	padTop     = 4
	padLeft    = 1
)

const (
	hozTopRune = '━'
	hozBotRune = '▅'
	verRune    = '┃'
)

// Frontend draws the board with tcell and reads moves from the keyboard
type Frontend struct {
	screen   tcell.Screen
	style    tcell.Style
	board    domain.Board
	inputCol int
	chip     domain.ChipType
	status   string
	last     string
}

// NewScreen builds and initialises a terminal screen
func NewScreen() (tcell.Screen, error) {
	tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	return screen, nil
}

// New draws on an initialised screen
func New(screen tcell.Screen) *Frontend {
	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	return &Frontend{
		screen:   screen,
		style:    style,
		inputCol: -1,
		chip:     domain.T,
	}
}

// Shutdown tears down the screen.
func (f *Frontend) Shutdown() {
	f.screen.Fini()
}

func (f *Frontend) Introduction() {
	f.screen.Clear()
	f.print(padLeft, 1, "TOOT-OTTO", f.style)
	f.print(padLeft, 2, "<←/→> move  <t/o> chip  <enter> drop  <q> quit", f.style.Foreground(tcell.ColorGrey))
	f.screen.Show()
}

func (f *Frontend) ShowBoard(b domain.Board) {
	f.board = b
	f.draw()
}

func (f *Frontend) TurnMessage(name string) {
	f.status = name + "'s turn"
	f.drawStatus()
}

// PlayerTurn lets the player pick a chip and walk the marker over the
// columns. Enter or the down arrow drops the chip, q quits.
func (f *Frontend) PlayerTurn(cols int) (domain.ChipType, int, error) {
	if f.inputCol < 0 || f.inputCol >= cols {
		f.inputCol = cols / 2
	}
	f.drawMarker()

	for {
		event := f.screen.PollEvent()
		if event == nil {
			return 0, -1, domain.ErrQuit
		}

		switch ev := event.(type) {
		case *tcell.EventResize:
			f.screen.Sync()
			f.draw()

		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyLeft:
				if f.inputCol > 0 {
					f.inputCol--
				}
				f.drawMarker()

			case tcell.KeyRight:
				if f.inputCol < cols-1 {
					f.inputCol++
				}
				f.drawMarker()

			case tcell.KeyEnter, tcell.KeyDown:
				return f.chip, f.inputCol, nil

			case tcell.KeyEscape, tcell.KeyCtrlC:
				return 0, -1, domain.ErrQuit

			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q', 'Q':
					return 0, -1, domain.ErrQuit
				case ' ':
					return f.chip, f.inputCol, nil
				default:
					if chip, err := domain.ParseChipType(string(ev.Rune())); err == nil {
						f.chip = chip
						f.drawMarker()
						continue
					}
					f.screen.Beep()
				}
			}
		}
	}
}

func (f *Frontend) SelectedColumn(name string, chip domain.ChipType, col int) {
	f.last = fmt.Sprintf("%s dropped %s in column %d", name, chip, col+1)
	f.drawStatus()
}

func (f *Frontend) InvalidMove(err error) {
	f.screen.Beep()
	f.status = "Invalid move: " + err.Error()
	f.drawStatus()
}

func (f *Frontend) GameOver(winner string) {
	f.inputCol = -1
	if winner == domain.DrawLabel {
		f.status = "Game over, it's a draw. Press any key."
	} else {
		f.status = "Game over, " + winner + " wins! Press any key."
	}
	f.draw()
}

// WaitForKey blocks until a key is pressed or the screen goes away
func (f *Frontend) WaitForKey() {
	for {
		event := f.screen.PollEvent()
		if event == nil {
			return
		}
		if _, ok := event.(*tcell.EventKey); ok {
			return
		}
	}
}

func (f *Frontend) boardWidth() int {
	return f.board.Cols()*cellWidth + 1
}

func (f *Frontend) draw() {
	rows, cols := f.board.Rows(), f.board.Cols()
	width := f.boardWidth()
	height := rows * cellHeight
	grid := f.style.Foreground(tcell.ColorGrey)

	for h := 0; h <= height; h++ {
		for w := 0; w < width; w++ {
			r := ' '
			if h%cellHeight == 0 {
				r = hozTopRune
				if h == height {
					r = hozBotRune
				}
			}
			if w%cellWidth == 0 {
				r = verRune
			}
			f.screen.SetContent(w+padLeft, h+padTop, r, nil, grid)
		}
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cell := f.board.Get(row, col)
			if cell.IsEmpty() {
				continue
			}
			x, y := cellOrigin(row, col)
			f.print(x, y, cell.Chip.String(), f.moverStyle(cell.Mover))
		}
	}

	labels := ""
	for col := 0; col < cols; col++ {
		labels += fmt.Sprintf("  %d ", col+1)
	}
	f.print(padLeft, padTop+height+1, labels, grid)

	f.drawMarker()
	f.drawStatus()
}

func (f *Frontend) drawMarker() {
	f.clearLine(padTop - 1)
	if f.inputCol >= 0 {
		x, _ := cellOrigin(0, f.inputCol)
		f.print(x, padTop-1, f.chip.String(), f.style.Foreground(tcell.ColorYellow).Bold(true))
	}
	f.screen.Show()
}

func (f *Frontend) drawStatus() {
	y := padTop + f.board.Rows()*cellHeight + 3
	f.clearLine(y)
	f.clearLine(y + 1)
	f.print(padLeft, y, f.last, f.style)
	f.print(padLeft, y+1, f.status, f.style.Foreground(tcell.ColorAqua))
	f.screen.Show()
}

func (f *Frontend) moverStyle(m domain.Mark) tcell.Style {
	if m == domain.MarkP2 {
		return f.style.Foreground(tcell.ColorYellow)
	}
	return f.style.Foreground(tcell.ColorRed)
}

func (f *Frontend) clearLine(y int) {
	width, _ := f.screen.Size()
	for x := 0; x < width; x++ {
		f.screen.SetContent(x, y, ' ', nil, f.style)
	}
}

func (f *Frontend) print(x, y int, str string, style tcell.Style) {
	for _, c := range str {
		var comb []rune
		w := runewidth.RuneWidth(c)
		if w == 0 {
			comb = []rune{c}
			c = ' '
			w = 1
		}
		f.screen.SetContent(x, y, c, comb, style)
		x += w
	}
}

// cellOrigin is the screen position of the chip letter for a board cell
func cellOrigin(row, col int) (int, int) {
	return padLeft + col*cellWidth + cellWidth/2, padTop + row*cellHeight + 1
}
