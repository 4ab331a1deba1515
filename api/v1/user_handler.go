package v1

import (
	"net/http"

	"github.com/google/uuid"
	api_middleware "github.com/golfpigeon/clubhouse/api/middleware"
	"github.com/golfpigeon/clubhouse/internal/user"
	"github.com/labstack/echo/v4"
)

const INVALID_REQUEST = "invalid request"

var UserService *user.UserService

func RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", SignupHandler)
	g.POST("/login", LoginHandler)
}

func RegisterProfileRoutes(g *echo.Group) {
	g.GET("", GetProfileHandler)
	g.PUT("", UpdateProfileHandler)
}

func RegisterAdminUserRoutes(g *echo.Group) {
	g.GET("", ListUsersHandler)
	g.PUT("/:id/role", ChangeRoleHandler)
	g.DELETE("/:id", DeleteUserHandler)
}

func SignupHandler(c echo.Context) error {
	var req user.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	token, err := UserService.Signup(req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"token": token})
}

func LoginHandler(c echo.Context) error {
	var creds user.Credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	token, err := UserService.Login(creds)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

func GetProfileHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, api_middleware.CurrentUser(c))
}

func UpdateProfileHandler(c echo.Context) error {
	var update user.ProfileUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	updated, err := UserService.UpdateProfile(api_middleware.CurrentUser(c).ID, update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func ListUsersHandler(c echo.Context) error {
	users, err := UserService.ListUsers()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

func ChangeRoleHandler(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	var body struct {
		Action string `json:"action"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	updated, err := UserService.ChangeRole(api_middleware.CurrentUser(c).ID, targetID, body.Action)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"user": updated})
}

func DeleteUserHandler(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	if err := UserService.DeleteUser(api_middleware.CurrentUser(c).ID, targetID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
