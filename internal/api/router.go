// Package api wires the drafting workflow into an HTTP surface.
package api

import "github.com/gin-gonic/gin"

// RegisterRoutes attaches all endpoints to the engine under /api/v1.
func (a *API) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", a.health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/session", a.session)
		v1.POST("/documents", a.upload)
		v1.POST("/documents/ocr", a.runOCR)
		v1.POST("/documents/type", a.selectType)
		v1.POST("/documents/extract", a.runExtraction)
		v1.PUT("/documents/record", a.editRecord)
		v1.POST("/reply/openings", a.generateOpenings)
		v1.POST("/reply/openings/confirm", a.confirmOpening)
		v1.POST("/reply/body", a.draftBody)
		v1.PUT("/reply/body", a.editBody)
		v1.POST("/reply/finalise", a.finalise)
		v1.GET("/reply/export", a.exportDocx)
		v1.POST("/session/reset", a.reset)
		v1.POST("/chat", a.chat)
		v1.POST("/draft", a.draft)
	}
}
