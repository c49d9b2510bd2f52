package notify

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // dashboards are same-origin in production; open for local dev
	},
}

// catalogEventTypes is advertised in the welcome frame so dashboards
// know which catalog changes they will be told about.
var catalogEventTypes = []string{
	"component_created",
	"component_updated",
	"component_deleted",
}

type welcomeFrame struct {
	Type   string   `json:"type"`
	Events []string `json:"events"`
}

// WSHandler upgrades the connection and streams catalog change events.
// The welcome frame goes out before the socket joins the hub: once
// registered, broadcasts may write to it from other goroutines, and
// the connection allows only one writer at a time.
func WSHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		welcome, _ := json.Marshal(welcomeFrame{
			Type:   "catalog_subscribed",
			Events: catalogEventTypes,
		})
		if err := ws.WriteMessage(websocket.TextMessage, append(welcome, '\n')); err != nil {
			_ = ws.Close()
			return
		}

		hub.Add(ws)
		log.Println("[notify] dashboard connected")

		// Keep the connection alive; inbound frames are ignored.
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}

		hub.Remove(ws)
		log.Println("[notify] dashboard disconnected")
	}
}
