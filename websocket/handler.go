package websocket

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// StandingsHandler upgrades the connection and subscribes the caller to the
// live standings of one tournament. The JWT rides in a query param because
// browsers cannot set headers on websocket dials.
func StandingsHandler(hub *Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := ValidateJWT(c.QueryParam("token")); err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}

		tournamentID := c.QueryParam("tournament")
		if tournamentID == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "tournament query param is required")
		}

		ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			log.Println("websocket upgrade failed:", err)
			return err
		}

		client := &Client{
			TournamentID: tournamentID,
			Send:         make(chan []byte, 16),
		}
		hub.Register(client)

		go writePump(ws, client)
		go readPump(ws, hub, client)
		return nil
	}
}

func writePump(ws *websocket.Conn, client *Client) {
	defer ws.Close()
	for data := range client.Send {
		if err := ws.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

// readPump discards inbound frames; it exists to detect disconnects.
func readPump(ws *websocket.Conn, hub *Hub, client *Client) {
	defer func() {
		hub.Unregister(client)
		ws.Close()
	}()
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return
		}
	}
}

func ValidateJWT(tokenString string) (string, error) {
	if tokenString == "" {
		return "", errors.New("empty token")
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid token")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token: %v", err)
	}

	id, ok := claims["id"].(string)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	return id, nil
}
