package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ludoserver/internal/model"
	"ludoserver/internal/service"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type createGameRequest struct {
	Name string `json:"name"`
}

type joinGameRequest struct {
	Name string `json:"name"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	var req createGameRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}

	state, err := gc.gameService.CreateGame(req.Name, playerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(state)
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	code := c.Params("code")
	playerID := c.Locals("playerID").(string)

	var req joinGameRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}

	state, err := gc.gameService.JoinGame(code, req.Name, playerID)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(state)
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	code := c.Params("code")

	state, err := gc.gameService.GetGameState(code)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(state)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrGameAlreadyStarted), errors.Is(err, model.ErrGameFull):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
