package websocket

import (
	"DBDashboard/internal/pkg/logger"
)

// LogWebSocketConnection logs a new WebSocket connection with authentication info
func LogWebSocketConnection(clientIP, endpoint, username string) {
	if username != "" {
		logger.Info("New authenticated WebSocket client connected",
			logger.String("endpoint", endpoint),
			logger.String("client_ip", clientIP),
			logger.String("username", username))
	} else {
		logger.Info("WebSocket client connected",
			logger.String("endpoint", endpoint),
			logger.String("client_ip", clientIP))
	}
}
