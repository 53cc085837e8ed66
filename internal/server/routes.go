package server

import "github.com/gin-gonic/gin"

func (s *Server) registerRoutes(r *gin.Engine) {
	r.GET("/", s.index)
	r.GET("/card/:file", s.card)
	r.GET("/uri/:cid", s.uri)
	r.GET("/qr/:file", s.qr)

	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/cards", cards)
		api.GET("/attributes", attributes)
	}
}
