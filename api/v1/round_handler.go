package v1

import (
	"net/http"

	"github.com/google/uuid"
	api_middleware "github.com/golfpigeon/clubhouse/api/middleware"
	"github.com/golfpigeon/clubhouse/internal/round"
	"github.com/golfpigeon/clubhouse/internal/user"
	"github.com/labstack/echo/v4"
)

var RoundService *round.RoundService

func RegisterRoundRoutes(g *echo.Group) {
	g.POST("", CreateRoundHandler)
	g.GET("", ListRoundsHandler)
	g.GET("/:id", GetRoundHandler)
	g.PUT("/:id", UpdateRoundHandler)
}

func RegisterRoundReviewRoutes(g *echo.Group) {
	g.POST("/:id/review", ReviewRoundHandler)
}

func CreateRoundHandler(c echo.Context) error {
	var req round.RoundRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	created, err := RoundService.CreateRound(api_middleware.CurrentUser(c).ID, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"round": created})
}

func ListRoundsHandler(c echo.Context) error {
	actor := api_middleware.CurrentUser(c)
	status := round.Status(c.QueryParam("status"))

	rounds, err := RoundService.ListRounds(actor.ID, user.IsAdmin(actor), status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"rounds": rounds})
}

func GetRoundHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid round ID")
	}

	actor := api_middleware.CurrentUser(c)
	r, err := RoundService.GetRound(actor.ID, user.IsAdmin(actor), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"round": r})
}

func UpdateRoundHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid round ID")
	}

	var update round.RoundUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	actor := api_middleware.CurrentUser(c)
	updated, err := RoundService.UpdateRound(actor.ID, user.IsAdmin(actor), id, &update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"round": updated})
}

func ReviewRoundHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid round ID")
	}

	var req round.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	reviewed, err := RoundService.Review(api_middleware.CurrentUser(c).ID, id, req.Action)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"round": echo.Map{
			"id":          reviewed.ID,
			"status":      reviewed.Status,
			"confirmedAt": reviewed.ConfirmedAt,
		},
	})
}
