package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	api_middleware "github.com/golfpigeon/clubhouse/api/middleware"
	v1 "github.com/golfpigeon/clubhouse/api/v1"
	"github.com/golfpigeon/clubhouse/internal/apperrors"
	"github.com/golfpigeon/clubhouse/internal/course"
	"github.com/golfpigeon/clubhouse/internal/round"
	"github.com/golfpigeon/clubhouse/internal/tournament"
	"github.com/golfpigeon/clubhouse/internal/user"
	"github.com/golfpigeon/clubhouse/pkg/db"
	"github.com/golfpigeon/clubhouse/websocket"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("file .env not found, using system values")
	}

	db.Init()
	if err := db.DB.AutoMigrate(
		&user.User{},
		&course.Course{}, &course.Hole{},
		&tournament.Tournament{}, &tournament.Participant{}, &tournament.LeaderboardEntry{},
		&round.Round{}, &round.HoleScore{},
	); err != nil {
		log.Fatalf("error running migrations: %v", err)
	}

	userService := user.NewUserService(user.NewGormUserRepository())
	courseService := course.NewCourseService(course.NewGormCourseRepository())
	tournamentService := tournament.NewTournamentService(tournament.NewGormTournamentRepository())
	roundService := round.NewRoundService(round.NewGormRoundRepository(), userService, tournamentService)

	hub := websocket.NewHub()
	go hub.Run()
	tournamentService.SetPublisher(websocket.NewStandingsBroadcaster(hub))

	v1.UserService = userService
	v1.CourseService = courseService
	v1.TournamentService = tournamentService
	v1.RoundService = roundService

	e := echo.New()
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	api := e.Group("/api/v1")
	v1.RegisterAuthRoutes(api.Group("/auth"))

	authed := api.Group("")
	authed.Use(api_middleware.SetupJWTMiddleware())
	authed.Use(api_middleware.LoadUser(userService))

	v1.RegisterProfileRoutes(authed.Group("/profile"))
	v1.RegisterCourseRoutes(authed.Group("/courses"))
	v1.RegisterTournamentRoutes(authed.Group("/tournaments"))
	v1.RegisterRoundRoutes(authed.Group("/rounds"))

	admin := authed.Group("/admin")
	admin.Use(api_middleware.AdminOnly())
	v1.RegisterAdminUserRoutes(admin.Group("/users"))
	v1.RegisterCourseAdminRoutes(admin.Group("/courses"))
	v1.RegisterTournamentAdminRoutes(admin.Group("/tournaments"))
	v1.RegisterRoundReviewRoutes(admin.Group("/rounds"))

	e.GET("/ws/standings", websocket.StandingsHandler(hub))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
