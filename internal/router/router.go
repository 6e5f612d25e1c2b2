package router

import (
	"time"

	"github.com/douglasmeneses/NeuroScan-app/internal/config"
	"github.com/douglasmeneses/NeuroScan-app/internal/handlers"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func rateLimitErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(429, gin.H{"error": "Too many requests. Try again later."})
}

func Setup(log *zap.Logger) *gin.Engine {
	conf := config.Get()
	gin.SetMode(conf.Server.Mode)

	// Set up a new Gin router, add recovery middleware and request logging.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		err := secureMiddleware.Process(c.Writer, c.Request)
		if err != nil {
			c.Abort()
			return
		}
	})

	// Handlers
	usuarioHandler := handlers.NewUsuarioHandler(log)
	questionarioHandler := handlers.NewQuestionarioHandler(log)
	respostaHandler := handlers.NewRespostaHandler(log)
	gonogoHandler := handlers.NewGoNogoHandler(log)
	dashboardHandler := handlers.NewDashboardHandler(log)
	chartsHandler := handlers.NewChartsHandler(log)

	// Submissions are rate limited per client IP; reads are not.
	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: conf.Ingest.RateLimit,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: rateLimitErrorHandler,
		KeyFunc:      keyFunc,
	})

	api := router.Group("/api")
	{
		usuarios := api.Group("/usuarios")
		{
			usuarios.GET("", usuarioHandler.List)
			usuarios.POST("", usuarioHandler.Create)
			usuarios.GET("/:id", usuarioHandler.Get)
			usuarios.PUT("/:id", usuarioHandler.Update)
			usuarios.PATCH("/:id", usuarioHandler.Update)
			usuarios.DELETE("/:id", usuarioHandler.Delete)
		}

		questionarios := api.Group("/questionarios")
		{
			questionarios.GET("", questionarioHandler.List)
			questionarios.GET("/:id", questionarioHandler.Get)
		}

		respostas := api.Group("/respostas")
		{
			respostas.GET("", respostaHandler.List)
			respostas.POST("", limiter, respostaHandler.Create)
			respostas.POST("/compacto", limiter, respostaHandler.CreateCompact)
			respostas.POST("/compacto-gzip", limiter, respostaHandler.CreateCompactGzip)
			respostas.GET("/:id", respostaHandler.Get)
			respostas.GET("/:id/sensores", respostaHandler.GetSensores)
		}

		gonogos := api.Group("/gonogos")
		{
			gonogos.GET("", gonogoHandler.List)
			gonogos.GET("/usuario/:usuario_id", gonogoHandler.ListByUsuario)
			gonogos.GET("/:id", gonogoHandler.Get)
			gonogos.POST("", gonogoHandler.Create)
			gonogos.PUT("/:id", gonogoHandler.Update)
			gonogos.DELETE("/:id", gonogoHandler.Delete)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/stats", dashboardHandler.Stats)
			dashboard.GET("/tempo-questionarios", dashboardHandler.TempoQuestionarios)
			dashboard.GET("/usuarios-stats", dashboardHandler.UsuariosStats)
			dashboard.GET("/graficos-respostas", dashboardHandler.GraficosRespostas)
		}
	}

	// Server-rendered review dashboard
	router.GET("/dashboard", chartsHandler.ShowDashboard)

	return router
}
