package server

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) SetUpRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(RequestId())
	router.Use(Logger(s.logger))
	router.Use(gin.Recovery())
	pprof.Register(router)

	router.GET("/video_feed", s.handleVideoFeed)
	router.POST("/predict_image", s.handlePredictImage)
	router.GET("/health", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
