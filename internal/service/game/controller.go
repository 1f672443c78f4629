package game

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/iamasit07/toot-otto/internal/domain"
	"github.com/iamasit07/toot-otto/internal/service/bot"
)

// Controller owns one game and the searcher that plays the computer's side
type Controller struct {
	game     *domain.Game
	searcher *bot.Searcher
	rng      bot.Source
}

func NewController(g *domain.Game, s *bot.Searcher, rng bot.Source) *Controller {
	return &Controller{game: g, searcher: s, rng: rng}
}

func (c *Controller) Game() *domain.Game {
	return c.game
}

func (c *Controller) Board() domain.Board {
	return c.game.Board
}

func (c *Controller) Status() domain.Status {
	return c.game.Status()
}

func (c *Controller) ApplyMove(chip domain.ChipType, col int) (domain.Move, error) {
	return c.game.MakeMove(chip, col)
}

// AISelectMove returns the computer's choice for the current board without playing it
func (c *Controller) AISelectMove() (domain.ChipType, int) {
	return bot.CalculateBestMove(c.game.Board, c.searcher, c.rng)
}

// AIMakeMove plays the computer's choice, or a random legal move if the board rejects it
func (c *Controller) AIMakeMove() (domain.Move, error) {
	chip, col := c.AISelectMove()
	move, err := c.game.MakeMove(chip, col)
	if err == nil {
		return move, nil
	}
	if errors.Is(err, domain.ErrGameOver) {
		return domain.Move{}, err
	}

	log.Printf("[BOT] Move %v in column %d rejected: %v", chip, col, err)
	chip, col = bot.RandomMove(c.game.Board, c.rng)
	return c.game.MakeMove(chip, col)
}

// Turn plays one human move and, if the computer is next, its reply. Every
// accepted move is reported to events, and GameOver is sent once the game ends.
func (c *Controller) Turn(events Events, chip domain.ChipType, col int) error {
	name := c.game.CurrentPlayerName()
	if c.game.IsAITurn() {
		return fmt.Errorf("%w: it is %s's turn", domain.ErrInvalidMove, name)
	}

	move, err := c.ApplyMove(chip, col)
	if err != nil {
		return err
	}
	events.SelectedColumn(name, move.Chip, move.Column)
	events.ShowBoard(c.game.Board)

	if !c.game.IsFinished() && c.game.IsAITurn() {
		if err := c.aiTurn(events); err != nil {
			return err
		}
	}

	if c.game.IsFinished() {
		events.GameOver(c.game.Winner)
	}
	return nil
}

func (c *Controller) aiTurn(events Events) error {
	name := c.game.CurrentPlayerName()
	events.TurnMessage(name)

	move, err := c.AIMakeMove()
	if err != nil {
		return err
	}
	events.SelectedColumn(name, move.Chip, move.Column)
	events.ShowBoard(c.game.Board)
	return nil
}

// Play runs the game to completion. Bad input from the front end is reported
// through InvalidMove and the same player is asked again.
func (c *Controller) Play(ctx context.Context, events Events) error {
	events.Introduction()
	events.ShowBoard(c.game.Board)

	for !c.game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if c.game.IsAITurn() {
			if err := c.aiTurn(events); err != nil {
				return err
			}
			continue
		}

		name := c.game.CurrentPlayerName()
		events.TurnMessage(name)

		chip, col, err := events.PlayerTurn(c.game.Board.Cols())
		if err != nil {
			if !isRetryable(err) {
				return err
			}
			events.InvalidMove(err)
			continue
		}

		if !c.game.MarkBusy() {
			return domain.ErrGameOver
		}
		move, err := c.ApplyMove(chip, col)
		c.game.MarkIdle()
		if err != nil {
			events.InvalidMove(err)
			continue
		}
		events.SelectedColumn(name, move.Chip, move.Column)
		events.ShowBoard(c.game.Board)
	}

	log.Printf("[GAME] Game over after %d moves, winner: %s", c.game.MoveCount, c.game.Winner)
	events.GameOver(c.game.Winner)
	return nil
}

func isRetryable(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrInvalidMove)
}
