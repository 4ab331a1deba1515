package v1

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/golfpigeon/clubhouse/internal/course"
	"github.com/labstack/echo/v4"
)

var CourseService *course.CourseService

func RegisterCourseRoutes(g *echo.Group) {
	g.GET("", ListCoursesHandler)
	g.GET("/:id", GetCourseHandler)
}

func RegisterCourseAdminRoutes(g *echo.Group) {
	g.POST("", CreateCourseHandler)
	g.PUT("/:id/holes", UpdateCourseHolesHandler)
	g.DELETE("/:id", DeleteCourseHandler)
}

func courseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid course ID")
	}
	return id, nil
}

func ListCoursesHandler(c echo.Context) error {
	courses, err := CourseService.ListCourses()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"courses": courses})
}

func GetCourseHandler(c echo.Context) error {
	id, err := courseID(c)
	if err != nil {
		return err
	}
	found, err := CourseService.GetCourse(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"course": found})
}

func CreateCourseHandler(c echo.Context) error {
	var req course.CourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	created, err := CourseService.CreateCourse(&req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"course": created})
}

func UpdateCourseHolesHandler(c echo.Context) error {
	id, err := courseID(c)
	if err != nil {
		return err
	}

	var body struct {
		Holes []course.Hole `json:"holes"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	updated, err := CourseService.UpdateHoles(id, body.Holes)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"course": updated})
}

func DeleteCourseHandler(c echo.Context) error {
	id, err := courseID(c)
	if err != nil {
		return err
	}

	if err := CourseService.DeleteCourse(id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "course deleted"})
}
