package routes

import (
	"time"

	_ "factory-monitor-service/docs"
	"factory-monitor-service/internal/app/controllers"
	"factory-monitor-service/internal/app/middleware"
	"factory-monitor-service/internal/domain/services"
	"factory-monitor-service/internal/domain/services/container"
	"factory-monitor-service/internal/error/response"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 初始化並回傳設定好的路由
func SetupRouter(serviceContainer *container.ServiceContainer) *gin.Engine {
	cfg := serviceContainer.GetConfig()
	response.SetExposeDetail(cfg.ExposeErrorDetail)

	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORSAllowOrigins))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 設定所有 API 路由
func registerRoutes(r *gin.Engine, container *container.ServiceContainer) {
	jwtService := container.GetService("jwt").(services.InterfaceJWTService)
	authService := container.GetService("auth").(services.InterfaceAuthService)

	authenticated := middleware.Authentication(jwtService)
	storedToken := middleware.RequireStoredToken(authService)

	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerDashboardRoutes(api, container, authenticated, storedToken)
	registerSettingsRoutes(api, container, authenticated, storedToken)
	registerFileRoutes(r, container, authenticated)
}

// registerPublicRoutes 健康檢查與認證
func registerPublicRoutes(api *gin.RouterGroup, container *container.ServiceContainer) {
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health/status", controllers.HandleHealthFunc(container, "status"))

	authGroup := api.Group("/Auth")
	authGroup.Use(response.UseStyle(response.StyleIsSuccess))
	// 每個 IP 每個路徑每秒 1 次，最多突發 5 次
	authGroup.Use(middleware.CombinedRateLimiter(1, 5))
	authGroup.POST("/Login", controllers.HandleAuthFunc(container, "login"))
	authGroup.GET("/Logout", controllers.HandleAuthFunc(container, "logout"))
	authGroup.POST("/Refresh", controllers.HandleAuthFunc(container, "refresh"))
	authGroup.GET("/GetCaptcha", controllers.HandleAuthFunc(container, "getCaptcha"))
}

// registerDashboardRoutes 攝影機牆與統計分析，回應格式 {res_code,res_msg,data}
// 統計資料會被其他程序寫入，不做快取；只有下拉選單的 init 快取，旗標為 Y 時清除
func registerDashboardRoutes(api *gin.RouterGroup, container *container.ServiceContainer, authenticated, storedToken gin.HandlerFunc) {
	snb001 := api.Group("/snb001Q")
	snb001.Use(response.UseStyle(response.StyleResCode), authenticated)
	{
		snb001.GET("/init", middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Minute}), controllers.HandleDashboardFunc(container, "init"))
		snb001.POST("/caminfo", controllers.HandleDashboardFunc(container, "caminfo"))
		snb001.POST("/camcount", controllers.HandleDashboardFunc(container, "camcount"))
		snb001.POST("/alertstatusedit", storedToken, controllers.HandleDashboardFunc(container, "alertstatusedit"))
		snb001.POST("/UpdateAlert", controllers.HandleDashboardFunc(container, "updatealert"))
		snb001.GET("/alerttypecount", controllers.HandleDashboardFunc(container, "alerttypecount"))
		snb001.GET("/alertcount", controllers.HandleDashboardFunc(container, "alertcount"))
		snb001.GET("/alertlist", controllers.HandleDashboardFunc(container, "alertlist"))
		snb001.GET("/refreshpageYN", controllers.HandleDashboardFunc(container, "refreshpageYN"))
		snb001.POST("/flagchange", storedToken, controllers.HandleDashboardFunc(container, "flagchange"))
	}

	snb002 := api.Group("/snb002Q")
	snb002.Use(response.UseStyle(response.StyleResCode), authenticated)
	{
		snb002.GET("/init", middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Minute}), controllers.HandleAnalyticsFunc(container, "init"))
		snb002.POST("/eventcount", controllers.HandleAnalyticsFunc(container, "eventcount"))
		snb002.POST("/camlocationcount", controllers.HandleAnalyticsFunc(container, "camlocationcount"))
		snb002.POST("/camlocationeventcount", controllers.HandleAnalyticsFunc(container, "camlocationeventcount"))
		snb002.POST("/timeline", controllers.HandleAnalyticsFunc(container, "timeline"))
		snb002.POST("/timelinelist", controllers.HandleAnalyticsFunc(container, "timelinelist"))
	}
}

// registerSettingsRoutes 異常類別與通知對象維護，回應格式 {isSuccess,message,Result}
func registerSettingsRoutes(api *gin.RouterGroup, container *container.ServiceContainer, authenticated, storedToken gin.HandlerFunc) {
	sna001 := api.Group("/apiSNA001F")
	sna001.Use(response.UseStyle(response.StyleIsSuccess), authenticated)
	{
		sna001.GET("/Init", controllers.HandleRecipientFunc(container, "init"))
		sna001.POST("/Init", controllers.HandleRecipientFunc(container, "init"))
		sna001.GET("/Search", controllers.HandleRecipientFunc(container, "search"))
		sna001.POST("/Search", controllers.HandleRecipientFunc(container, "search"))
	}

	sna002 := api.Group("/apiSNA002F")
	sna002.Use(response.UseStyle(response.StyleIsSuccess), authenticated)
	{
		sna002.GET("/Init", controllers.HandleAlertTypeFunc(container, "init"))
		sna002.POST("/Init", controllers.HandleAlertTypeFunc(container, "init"))
		sna002.GET("/GetAvailablePersons", controllers.HandleAlertTypeFunc(container, "getAvailablePersons"))
		sna002.POST("/GetAvailablePersons", controllers.HandleAlertTypeFunc(container, "getAvailablePersons"))
		sna002.POST("/Insert", storedToken, controllers.HandleAlertTypeFunc(container, "insert"))
		sna002.POST("/Edit", storedToken, controllers.HandleAlertTypeFunc(container, "edit"))
	}
}

// registerFileRoutes 上傳與報表，掛在根路徑
func registerFileRoutes(r *gin.Engine, container *container.ServiceContainer, authenticated gin.HandlerFunc) {
	r.POST("/UploadController", response.UseStyle(response.StyleIsSuccess), authenticated, controllers.HandleFileFunc(container, "upload"))

	printServer := r.Group("/PrintServerController")
	printServer.Use(response.UseStyle(response.StyleIsSuccess), authenticated)
	{
		printServer.POST("/ReportViewer", controllers.HandleFileFunc(container, "generateReport"))
		printServer.GET("/ReportViewer", controllers.HandleFileFunc(container, "viewReport"))
		printServer.GET("/DownloadFile", controllers.HandleFileFunc(container, "download"))
		printServer.POST("/DownloadFile", controllers.HandleFileFunc(container, "download"))
	}
}
