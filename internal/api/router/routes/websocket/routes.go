package websocket

import (
	"DBDashboard/internal/dashboard"
	ws "DBDashboard/internal/websocket"

	"github.com/gin-gonic/gin"
)

// RegisterWebSocketRoutes registers the websocket routes
func RegisterWebSocketRoutes(router *gin.Engine, handler *ws.Handler, session *dashboard.Session) {
	// Clients get the current snapshot on connect and one per transition afterwards
	router.GET("/ws/dashboard", func(c *gin.Context) {
		ws.LogWebSocketConnection(c.ClientIP(), c.Request.URL.Path, c.GetString("username"))
		handler.ServeHTTP(c.Writer, c.Request, func() ([]byte, error) {
			return ws.EncodeSnapshot("snapshot", session.Snapshot())
		})
	})
}
