package web

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"audio-transcriber/internal/api/middleware"
	"audio-transcriber/internal/app/transcription"
	"audio-transcriber/web/handlers"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// PageConfig configures the upload page
type PageConfig struct {
	ServiceName    string
	MaxUploadBytes int64
}

// RegisterPages installs the page templates on router and mounts the upload page
func RegisterPages(router *gin.Engine, service transcription.Transcriber, config PageConfig, logger *zap.Logger) error {
	tmpl, err := Templates()
	if err != nil {
		return err
	}
	router.SetHTMLTemplate(tmpl)

	page := handlers.NewPageHandler(service, handlers.PageOptions{
		ServiceName:    config.ServiceName,
		MaxUploadBytes: config.MaxUploadBytes,
	}, logger)

	router.GET("/", page.Index)
	router.POST("/transcribe", middleware.BodyLimit(config.MaxUploadBytes), page.Transcribe)
	return nil
}
