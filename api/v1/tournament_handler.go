package v1

import (
	"net/http"

	"github.com/google/uuid"
	api_middleware "github.com/golfpigeon/clubhouse/api/middleware"
	"github.com/golfpigeon/clubhouse/internal/tournament"
	"github.com/labstack/echo/v4"
)

var TournamentService *tournament.TournamentService

func RegisterTournamentRoutes(g *echo.Group) {
	g.GET("", ListTournamentsHandler)
	g.GET("/:id", GetTournamentHandler)
	g.POST("/:id/register", RegisterForTournamentHandler)
	g.DELETE("/:id/register", UnregisterFromTournamentHandler)
}

func RegisterTournamentAdminRoutes(g *echo.Group) {
	g.POST("", CreateTournamentHandler)
	g.PUT("/:id", UpdateTournamentHandler)
	g.POST("/:id/close", CloseTournamentHandler)
}

func tournamentID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid tournament ID")
	}
	return id, nil
}

func ListTournamentsHandler(c echo.Context) error {
	tournaments, err := TournamentService.ListTournaments()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"tournaments": tournaments})
}

func GetTournamentHandler(c echo.Context) error {
	id, err := tournamentID(c)
	if err != nil {
		return err
	}
	t, err := TournamentService.GetTournament(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"tournament": t})
}

func CreateTournamentHandler(c echo.Context) error {
	var req tournament.TournamentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	created, err := TournamentService.CreateTournament(api_middleware.CurrentUser(c).ID, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"tournament": created})
}

func UpdateTournamentHandler(c echo.Context) error {
	id, err := tournamentID(c)
	if err != nil {
		return err
	}

	var req tournament.TournamentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	updated, err := TournamentService.UpdateTournament(id, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"tournament": updated})
}

func RegisterForTournamentHandler(c echo.Context) error {
	id, err := tournamentID(c)
	if err != nil {
		return err
	}

	if err := TournamentService.Register(id, api_middleware.CurrentUser(c).ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "successfully registered for tournament"})
}

func UnregisterFromTournamentHandler(c echo.Context) error {
	id, err := tournamentID(c)
	if err != nil {
		return err
	}

	if err := TournamentService.Unregister(id, api_middleware.CurrentUser(c).ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "successfully unregistered from tournament"})
}

func CloseTournamentHandler(c echo.Context) error {
	id, err := tournamentID(c)
	if err != nil {
		return err
	}

	closed, winners, err := TournamentService.Close(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"tournament": echo.Map{
			"id":      closed.ID,
			"name":    closed.Name,
			"status":  closed.Status,
			"winners": winners,
		},
	})
}
