// Package server wires the HTTP surface for the assistant.
package server

import "github.com/gin-gonic/gin"

// NewRouter builds the gin engine with middleware and routes mounted.
func NewRouter(handler *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(CORSMiddleware())
	r.Use(RequestIDMiddleware())
	r.Use(LoggingMiddleware())

	r.POST("/api/translate", handler.Translate)
	r.GET("/health", handler.Health)

	return r
}
