package routes

import (
	"github.com/gin-gonic/gin"

	"audio-transcriber/internal/api/middleware"
	"audio-transcriber/internal/api/v1/handlers"
	"audio-transcriber/internal/app/transcription"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	TranscriptionService transcription.Transcriber
	MaxUploadBytes       int64
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	transcriptionHandler := handlers.NewTranscriptionHandler(container.TranscriptionService, container.MaxUploadBytes)
	transcriptions := router.Group("/transcriptions")
	{
		transcriptions.POST("", middleware.BodyLimit(container.MaxUploadBytes), transcriptionHandler.Create)
	}
}
