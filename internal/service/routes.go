package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"chipledger/internal/game"
	"chipledger/internal/store"
)

func RegisterRoutes(r fiber.Router, svc *Service) {

	r.Post("/create-game", func(c *fiber.Ctx) error {
		type Req struct {
			Name     string `json:"name"`
			Chips    int    `json:"chips"`
			FreeTurn bool   `json:"freeTurn"`
		}
		var body Req
		c.BodyParser(&body)

		sess, err := svc.Create(body.Name, body.Chips, body.FreeTurn)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"code": sess.Code, "game": sess})
	})

	r.Post("/join-game", func(c *fiber.Ctx) error {
		type Req struct {
			Code string `json:"code"`
			Name string `json:"name"`
		}
		var body Req
		c.BodyParser(&body)
		if body.Code == "" || body.Name == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Code and name required"})
		}

		sess, idx, err := svc.Join(body.Code, body.Name)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"game": sess, "playerIdx": idx})
	})

	r.Get("/game-state", func(c *fiber.Ctx) error {
		code := c.Query("code")
		if code == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Code required"})
		}

		sess, err := svc.Get(code)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"game": sess})
	})

	r.Post("/action", func(c *fiber.Ctx) error {
		type Req struct {
			Code       string `json:"code"`
			Action     string `json:"action"`
			PlayerName string `json:"playerName"`
			Amount     int    `json:"amount"`
			TargetName string `json:"targetName"`
		}
		var body Req
		c.BodyParser(&body)
		if body.Code == "" || body.Action == "" {
			return c.Status(400).JSON(fiber.Map{"error": "code and action required"})
		}

		sess, err := svc.Act(body.Code, game.Action{
			Kind:       body.Action,
			PlayerName: body.PlayerName,
			Amount:     body.Amount,
			TargetName: body.TargetName,
		})
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"game": sess})
	})
}

// fail maps the error taxonomy onto the wire contract: the game code is the
// only thing that 404s, player and rule errors are the caller's fault, a
// lost write race is a 409, everything else is a server fault.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Game not found"})
	case errors.Is(err, game.ErrPlayerNotFound),
		errors.Is(err, game.ErrNameRequired),
		errors.Is(err, game.ErrTableFull),
		errors.Is(err, game.ErrInvalidAmount),
		errors.Is(err, game.ErrUnknownAction),
		errors.Is(err, game.ErrNotYourTurn),
		errors.Is(err, game.ErrInsufficientChips),
		errors.Is(err, game.ErrSelfLoan),
		errors.Is(err, game.ErrNoDebt):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, store.ErrConflict):
		return c.Status(409).JSON(fiber.Map{"error": "Game updated concurrently, retry"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}
}
