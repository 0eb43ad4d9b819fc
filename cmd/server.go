package main

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"incubator/pkg/analytics"
	"incubator/pkg/animate"
	"incubator/pkg/catalog"
	"incubator/pkg/chat"
	"incubator/pkg/config"
	"incubator/pkg/content"
	"incubator/pkg/events"
	"incubator/pkg/jobs"
	"incubator/pkg/logging"
	"incubator/pkg/middleware"
	"incubator/pkg/sendemail"
	"incubator/pkg/site"
	"incubator/pkg/startups"
)

// deps are the process-wide collaborators built once in serve.
type deps struct {
	cfg       config.Config
	log       *logging.Logger
	store     *catalog.Store
	rsvps     events.RSVPRepository
	mail      sendemail.EmailService
	responder chat.Responder
	sessions  *chat.ConnectionManager
	limiter   *middleware.ClientLimiter
	tracker   *analytics.Tracker
	checks    map[string]site.Check
}

func newRouter(d deps) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(d.log), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     d.cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.AdminKeyHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: d.cfg.CORS.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	jobs.NewJobHandler(jobs.NewJobService(jobs.NewStaticJobRepository(d.store))).RegisterRoutes(router)
	startups.NewStartupHandler(startups.NewStartupService(startups.NewStaticStartupRepository(d.store))).RegisterRoutes(router)
	events.NewEventHandler(events.NewEventService(events.NewStaticEventRepository(d.store), d.rsvps, d.mail, d.log)).RegisterRoutes(router)
	content.NewContentHandler(content.NewContentService(content.NewStaticContentRepository(d.store))).RegisterRoutes(router)

	animate.NewAnimateHandler(animate.SystemClock, d.log).RegisterRoutes(router)

	limiter := d.limiter
	if limiter == nil {
		limiter = middleware.NewClientLimiter(d.cfg.Chat.RatePerSecond, d.cfg.Chat.Burst)
	}
	chatHandler := chat.NewHandler(chat.NewChatService(d.responder, d.log), d.sessions, originAllowed(d.cfg.CORS.AllowedOrigins), d.log)
	chatHandler.RegisterRoutes(router, middleware.RateLimit(limiter))

	analytics.NewAnalyticsHandler(d.tracker).RegisterRoutes(router, middleware.AdminKey(d.cfg.AdminKeyHash))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	site.NewSiteHandler(d.cfg.StaticDir, d.checks).RegisterRoutes(router)
	return router
}

// originAllowed mirrors the CORS origin list for websocket upgrades.
func originAllowed(origins []string) func(string) bool {
	if slices.Contains(origins, "*") {
		return nil
	}
	return func(origin string) bool { return slices.Contains(origins, origin) }
}

func newHTTPServer(cfg config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
