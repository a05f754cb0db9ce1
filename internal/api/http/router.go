package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/offmenu/offmenu/internal/api/service"
	"github.com/offmenu/offmenu/internal/api/store"
	"github.com/offmenu/offmenu/pkg/httpx"
	"github.com/offmenu/offmenu/pkg/jwtx"
	"github.com/offmenu/offmenu/pkg/slogx"

	_ "github.com/offmenu/offmenu/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     *jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AccessService  *service.AccessService
	InviteService  *service.InviteService
	ProjectService *service.ProjectService
	TaskService    *service.TaskService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier *jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerInvites()
	r.registerProjects()
	r.registerTasks()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			OffMenu Dashboard API
//	@version		0.1.0
//	@description	Project dashboard backend: magic-link sign-in, invite-token
//	@description	redemption, project memberships, and task boards.
//	@description
//	@description				Session tokens are signed using EdDSA (Ed25519) and can be verified using the JWKS endpoint.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session JWT. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	authn := httpx.AuthnMiddleware(r.verifier)

	// Magic-link request and verify are the unauthenticated edge of the
	// API, so both get the strict per-IP limit.
	magicLinkHandler := &MagicLinkHandler{AccessService: r.AccessService}
	r.Mux.Handle("POST /v1/auth/magic-link",
		httpx.Chain(magicLinkHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	verifyHandler := &VerifyHandler{AccessService: r.AccessService}
	r.Mux.Handle("POST /v1/auth/verify",
		httpx.Chain(verifyHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	userinfoHandler := &UserinfoHandler{AccessService: r.AccessService}
	r.Mux.Handle("GET /v1/userinfo",
		httpx.Chain(userinfoHandler,
			authn,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	jwksHandler := &JWKSHandler{Keys: r.keys}
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(jwksHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerInvites() {
	authn := httpx.AuthnMiddleware(r.verifier)

	mintHandler := &InviteMintHandler{InviteService: r.InviteService}
	r.Mux.Handle("POST /v1/invites/mint",
		httpx.Chain(mintHandler,
			authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// Redemption attempts get the strict limit: the tokens are
	// unguessable but there's no reason to allow scanning for them.
	redeemHandler := &InviteRedeemHandler{InviteService: r.InviteService}
	r.Mux.Handle("POST /v1/invites/redeem",
		httpx.Chain(redeemHandler,
			authn,
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)

	voidHandler := &InviteVoidHandler{InviteService: r.InviteService}
	r.Mux.Handle("POST /v1/invites/{id}/void",
		httpx.Chain(voidHandler,
			authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerProjects() {
	authn := httpx.AuthnMiddleware(r.verifier)

	membershipsHandler := &MembershipsHandler{ProjectService: r.ProjectService}
	r.Mux.Handle("GET /v1/memberships",
		httpx.Chain(membershipsHandler,
			authn,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	listHandler := &ProjectListHandler{ProjectService: r.ProjectService}
	r.Mux.Handle("GET /v1/projects",
		httpx.Chain(listHandler,
			authn,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	createHandler := &ProjectCreateHandler{ProjectService: r.ProjectService}
	r.Mux.Handle("POST /v1/projects",
		httpx.Chain(createHandler,
			authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	getHandler := &ProjectGetHandler{ProjectService: r.ProjectService}
	r.Mux.Handle("GET /v1/projects/{id}",
		httpx.Chain(getHandler,
			authn,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerTasks() {
	authn := httpx.AuthnMiddleware(r.verifier)

	boardHandler := &BoardHandler{TaskService: r.TaskService}
	r.Mux.Handle("GET /v1/projects/{id}/tasks",
		httpx.Chain(boardHandler,
			authn,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	createHandler := &TaskCreateHandler{TaskService: r.TaskService}
	r.Mux.Handle("POST /v1/projects/{id}/tasks",
		httpx.Chain(createHandler,
			authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	getHandler := &TaskGetHandler{TaskService: r.TaskService}
	r.Mux.Handle("GET /v1/tasks/{id}",
		httpx.Chain(getHandler,
			authn,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	moveHandler := &TaskMoveHandler{TaskService: r.TaskService}
	r.Mux.Handle("POST /v1/tasks/{id}/move",
		httpx.Chain(moveHandler,
			authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	deleteHandler := &TaskDeleteHandler{TaskService: r.TaskService}
	r.Mux.Handle("DELETE /v1/tasks/{id}",
		httpx.Chain(deleteHandler,
			authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	commentsHandler := &TaskCommentsHandler{TaskService: r.TaskService}
	r.Mux.Handle("GET /v1/tasks/{id}/comments",
		httpx.Chain(http.HandlerFunc(commentsHandler.HandleList),
			authn,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/tasks/{id}/comments",
		httpx.Chain(http.HandlerFunc(commentsHandler.HandleCreate),
			authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	updateHandler := &TaskUpdateHandler{TaskService: r.TaskService}
	r.Mux.Handle("POST /v1/tasks/{id}/updates",
		httpx.Chain(http.HandlerFunc(updateHandler.HandleSubmit),
			authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/updates/{id}/approve",
		httpx.Chain(http.HandlerFunc(updateHandler.HandleApprove),
			authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/updates/{id}/decline",
		httpx.Chain(http.HandlerFunc(updateHandler.HandleDecline),
			authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	systemHandler := &SystemHandler{
		Store:        r.store,
		Keys:         r.keys,
		BuildVersion: r.buildVersion,
		StartTime:    r.startTime,
	}

	r.Mux.Handle("GET /livez", http.HandlerFunc(systemHandler.HandleLivez))
	r.Mux.Handle("GET /readyz", http.HandlerFunc(systemHandler.HandleReadyz))
}
