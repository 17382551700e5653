package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnspace/content-service/internal/services"
	"github.com/learnspace/content-service/internal/utils"
)

// HandlerManager groups every handler for route setup.
type HandlerManager struct {
	Category *CategoryHandler
	Test     *TestHandler
	Article  *ArticleHandler
	User     *UserHandler
	Tracking *TrackingHandler

	users  *services.UserService
	logger utils.Logger
}

func NewHandlerManager(sm *services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		Category: NewCategoryHandler(sm.Category, logger),
		Test:     NewTestHandler(sm.Test, sm.ImportExport, logger),
		Article:  NewArticleHandler(sm.Content, logger),
		User:     NewUserHandler(sm.User, logger),
		Tracking: NewTrackingHandler(sm.Tracking, logger),
		users:    sm.User,
		logger:   logger,
	}
}

// SetupRoutes wires all routes. The aggregate endpoints keep their original
// unprefixed paths; the rest of the surface lives under /api/v1 behind JWT.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.Use(RequestID())
	router.Use(utils.ContextLogger(hm.logger))
	router.Use(utils.LoggerMiddleware(hm.logger))
	router.Use(CORS())
	router.Use(SecurityHeaders())
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// stable public contract
	router.GET("/categories/tree", hm.Category.GetTree)
	router.POST("/tests/full", hm.Test.CreateFull)
	router.GET("/tests/full/:test_id", hm.Test.GetFull)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", hm.User.Login)

	authed := v1.Group("")
	authed.Use(AuthMiddleware(hm.users))
	{
		authed.GET("/auth/me", hm.User.Me)

		authed.GET("/categories", hm.Category.List)
		authed.GET("/categories/tree", hm.Category.GetTree)
		authed.GET("/categories/:id", hm.Category.Get)

		authed.GET("/articles", hm.Article.List)
		authed.GET("/articles/:id", hm.Article.Get)
		authed.GET("/categories/:id/articles", hm.Article.ListByCategory)
		authed.GET("/articles/:id/media", hm.Article.ListMedia)

		authed.GET("/tests", hm.Test.List)
		authed.GET("/tests/:id", hm.Test.Get)
		authed.GET("/tests/category/:category_id", hm.Test.ListByCategory)
		authed.GET("/tests/full/:test_id", hm.Test.GetFull)

		authed.GET("/assignments/user/:user_id", hm.Tracking.ListAssignmentsByUser)
		authed.POST("/progress", hm.Tracking.UpsertProgress)
		authed.GET("/progress/user/:user_id", hm.Tracking.ListProgressByUser)
		authed.POST("/results", hm.Tracking.RecordResult)
		authed.GET("/results/user/:user_id", hm.Tracking.ListResultsByUser)
	}

	admin := v1.Group("")
	admin.Use(AuthMiddleware(hm.users), RequireAdmin())
	{
		admin.POST("/categories", hm.Category.Create)
		admin.PATCH("/categories/:id", hm.Category.Update)
		admin.DELETE("/categories/:id", hm.Category.Delete)

		admin.POST("/articles", hm.Article.Create)
		admin.PATCH("/articles/:id", hm.Article.Update)
		admin.DELETE("/articles/:id", hm.Article.Delete)
		admin.POST("/media", hm.Article.CreateMedia)
		admin.DELETE("/media/:id", hm.Article.DeleteMedia)

		admin.POST("/tests", hm.Test.Create)
		admin.POST("/tests/full", hm.Test.CreateFull)
		admin.PATCH("/tests/:id", hm.Test.Update)
		admin.DELETE("/tests/:id", hm.Test.Delete)
		admin.GET("/tests/export/:category_id", hm.Test.Export)
		admin.POST("/tests/import", hm.Test.Import)

		admin.POST("/questions", hm.Test.CreateQuestion)
		admin.PATCH("/questions/:id", hm.Test.UpdateQuestion)
		admin.DELETE("/questions/:id", hm.Test.DeleteQuestion)
		admin.POST("/options", hm.Test.CreateOption)
		admin.DELETE("/options/:id", hm.Test.DeleteOption)

		admin.POST("/users", hm.User.Create)
		admin.GET("/users", hm.User.List)
		admin.GET("/users/:id", hm.User.Get)
		admin.PATCH("/users/:id", hm.User.Update)
		admin.DELETE("/users/:id", hm.User.Delete)

		admin.POST("/groups", hm.User.CreateGroup)
		admin.GET("/groups", hm.User.ListGroups)
		admin.GET("/groups/:id/members", hm.User.ListGroupMembers)
		admin.POST("/groups/:id/members/:user_id", hm.User.AddGroupMember)
		admin.DELETE("/groups/:id/members/:user_id", hm.User.RemoveGroupMember)

		admin.POST("/assignments", hm.Tracking.CreateAssignment)
		admin.GET("/assignments", hm.Tracking.ListAssignments)
		admin.DELETE("/assignments/:id", hm.Tracking.DeleteAssignment)
		admin.GET("/results/test/:test_id", hm.Tracking.ListResultsByTest)
	}
}
