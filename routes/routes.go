package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gtnglobal/gtn-backend/config"
	"github.com/gtnglobal/gtn-backend/internal/health"
	"github.com/gtnglobal/gtn-backend/internal/resource"
	"github.com/gtnglobal/gtn-backend/internal/session"
	"github.com/gtnglobal/gtn-backend/internal/upload"
	"github.com/gtnglobal/gtn-backend/middleware"
)

// A route is one (method, path, handler chain) entry. Every entry is
// also registered under the legacy dotted alias (path + ".php") that the
// previous PHP deployment exposed, against the same handlers.
type route struct {
	method   string
	path     string
	handlers []gin.HandlerFunc
}

// Setup wires every module and registers the full HTTP surface on r.
func Setup(r *gin.Engine, cfg *config.Config, db *gorm.DB) {
	codec := session.NewCodec(cfg.SessionSecret, cfg.AdminUser, session.DefaultTTL)
	requireAdmin := middleware.RequireAdmin(codec)

	sessionHandler := session.NewHandler(codec, cfg)
	uploadHandler := upload.NewHandler(cfg)
	healthHandler := health.NewHandler(db)

	admin := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return []gin.HandlerFunc{requireAdmin, h}
	}
	public := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return []gin.HandlerFunc{h}
	}

	table := []route{
		{http.MethodGet, "/api/health", public(healthHandler.Check)},
		{http.MethodPost, "/api/login", public(sessionHandler.Login)},
		{http.MethodPost, "/api/logout", public(sessionHandler.Logout)},
		{http.MethodGet, "/api/session", public(sessionHandler.Session)},
		{http.MethodPost, "/api/upload", admin(uploadHandler.Save)},
	}

	// ========== Resource kinds ==========
	projects := resource.NewHandler(resource.NewStore[resource.Project](db, resource.Projects), resource.Projects, resource.NewProject)
	events := resource.NewHandler(resource.NewStore[resource.Event](db, resource.Events), resource.Events, resource.NewEvent)
	news := resource.NewHandler(resource.NewStore[resource.News](db, resource.NewsItems), resource.NewsItems, resource.NewNews)
	blogs := resource.NewHandler(resource.NewStore[resource.Blog](db, resource.Blogs), resource.Blogs, resource.NewBlog)
	join := resource.NewHandler(resource.NewStore[resource.JoinRequest](db, resource.JoinRequests), resource.JoinRequests, resource.NewJoinRequest)

	table = append(table, resourceRoutes("/api/projects", resource.Projects, projects.List, projects.Create, projects.Delete, admin, public)...)
	table = append(table, resourceRoutes("/api/events", resource.Events, events.List, events.Create, events.Delete, admin, public)...)
	table = append(table, resourceRoutes("/api/news", resource.NewsItems, news.List, news.Create, news.Delete, admin, public)...)
	table = append(table, resourceRoutes("/api/blogs", resource.Blogs, blogs.List, blogs.Create, blogs.Delete, admin, public)...)
	table = append(table, resourceRoutes("/api/join", resource.JoinRequests, join.List, join.Create, join.Delete, admin, public)...)

	for _, rt := range table {
		r.Handle(rt.method, rt.path, rt.handlers...)
		r.Handle(rt.method, rt.path+".php", rt.handlers...)
	}

	// Uploaded images are publicly readable.
	r.Static(upload.PublicPrefix, cfg.UploadDir)
}

// resourceRoutes expands one record kind into its list/create/delete
// entries with the auth policy the descriptor declares: lists are public
// unless guarded, creates are guarded unless public, deletes always are.
func resourceRoutes(
	base string,
	desc resource.Descriptor,
	list, create, del gin.HandlerFunc,
	admin, public func(gin.HandlerFunc) []gin.HandlerFunc,
) []route {
	listChain := public(list)
	if desc.GuardedList {
		listChain = admin(list)
	}
	createChain := admin(create)
	if desc.PublicCreate {
		createChain = public(create)
	}
	return []route{
		{http.MethodGet, base, listChain},
		{http.MethodPost, base, createChain},
		{http.MethodDelete, base, admin(del)},
	}
}
