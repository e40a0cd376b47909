// Package web provides the web server for the shop: HTTP serving, routing,
// templates and the maintenance scheduler.
package web

import (
	"context"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net"
	"net/http"

	"github.com/fengshuifortune/shop/config"
	"github.com/fengshuifortune/shop/logger"
	"github.com/fengshuifortune/shop/util/common"
	"github.com/fengshuifortune/shop/util/random"
	"github.com/fengshuifortune/shop/web/controller"
	"github.com/fengshuifortune/shop/web/job"
	"github.com/fengshuifortune/shop/web/middleware"
	"github.com/fengshuifortune/shop/web/service"
	"github.com/fengshuifortune/shop/web/session"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

//go:embed assets
var assetsFS embed.FS

//go:embed html/*
var htmlFS embed.FS

// Server is the web server with its controllers, services and scheduled jobs.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	db *gorm.DB

	userService        *service.UserService
	productService     *service.ProductService
	tipService         *service.TipService
	pageService        *service.PageService
	navigationService  *service.NavigationService
	settingService     *service.SettingService
	appointmentService *service.AppointmentService

	index   *controller.IndexController
	product *controller.ProductController
	tip     *controller.TipController
	page    *controller.PageController
	account *controller.AccountController
	booking *controller.BookingController
	cms     *controller.CMSController

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a web server over the injected store handle.
func NewServer(db *gorm.DB) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		db:                 db,
		userService:        service.NewUserService(db),
		productService:     service.NewProductService(db),
		tipService:         service.NewTipService(db),
		pageService:        service.NewPageService(db),
		navigationService:  service.NewNavigationService(db),
		settingService:     service.NewSettingService(db),
		appointmentService: service.NewAppointmentService(db),
		ctx:                ctx,
		cancel:             cancel,
	}
}

// getHtmlTemplate parses the embedded HTML templates.
func (s *Server) getHtmlTemplate() (*template.Template, error) {
	return template.New("").ParseFS(htmlFS, "html/*.html")
}

// initRouter initializes gin, registers middleware, templates, static assets
// and controllers, and returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	secret := config.GetSessionSecret()
	if secret == "" {
		secret = random.Seq(32)
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
	})
	engine.Use(sessions.Sessions(session.CookieName, store))
	engine.Use(middleware.CurrentUser(s.userService))

	tpl, err := s.getHtmlTemplate()
	if err != nil {
		return nil, err
	}
	engine.SetHTMLTemplate(tpl)
	assets, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		return nil, err
	}
	engine.StaticFS("/assets", http.FS(assets))

	g := engine.Group("/")
	s.index = controller.NewIndexController(g, s.userService, s.tipService, s.productService, s.navigationService)
	s.product = controller.NewProductController(g, s.productService)
	s.tip = controller.NewTipController(g, s.tipService)
	s.page = controller.NewPageController(g, s.pageService)
	s.account = controller.NewAccountController(g, s.userService, s.appointmentService)
	s.booking = controller.NewBookingController(g, s.appointmentService)
	s.cms = controller.NewCMSController(g, s.userService, s.productService, s.tipService,
		s.pageService, s.navigationService, s.settingService)

	engine.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"title": "Not Found"})
	})

	return engine, nil
}

// Engine builds and returns the configured gin engine without starting a
// listener. Used by Start and by the HTTP tests.
func (s *Server) Engine() (*gin.Engine, error) {
	return s.initRouter()
}

// startTask schedules the maintenance jobs.
func (s *Server) startTask() {
	s.cron.AddJob("@daily", job.NewCheckpointJob(s.db))
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(config.GetListen(), config.GetPort())
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("web server running on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()

	return nil
}

// Stop gracefully shuts down the web server and the scheduler.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }
