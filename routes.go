package appshell

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"

	"github.com/ghiac/appshell/hooks"
	"github.com/ghiac/appshell/layout"
	"github.com/ghiac/appshell/layout/sidebar"
	"github.com/ghiac/appshell/log"
	"github.com/ghiac/appshell/model"
	"github.com/ghiac/appshell/store"
)

const (
	loginPath  = "/appshell/login"
	healthPath = "/appshell/health"
	metricsURL = "/metrics"
	storeKey   = "appshell.store"
	maxUserLen = 64
)

// RegisterRoutes registers HTTP routes on the given gin.Engine
// Routes: one GET per menu path, /appshell/dark-mode, /appshell/logout,
// /appshell/login (dev sign-in), /appshell/health, /metrics, and a 404 page
func (sh *Shell) RegisterRoutes(router *gin.Engine) {
	router.GET(healthPath, sh.handleHealth)
	if sh.metrics != nil {
		router.GET(metricsURL, gin.WrapH(sh.metrics.Handler()))
	}

	pages := router.Group("", sh.visitorMiddleware())
	if sh.metrics != nil {
		pages.Use(sh.metrics.Middleware())
	}

	mounted := map[string]bool{healthPath: true, metricsURL: true}
	for _, item := range sh.items {
		// Duplicate menu entries are still rendered, but a path is mounted once
		if mounted[item.Path] {
			log.Log.Debugf("Menu path %s is already mounted, skipping", item.Path)
			continue
		}
		mounted[item.Path] = true
		pages.GET(item.Path, sh.handlePage(item))
	}

	pages.POST(sidebar.DefaultDarkModeAction, sh.handleDarkMode)
	pages.POST(sidebar.DefaultLogoutAction, sh.handleLogout)
	if sh.cfg.Features.DevLogin {
		pages.POST(loginPath, sh.handleLogin)
	}

	router.NoRoute(sh.visitorMiddleware(), sh.handleNotFound)
}

// visitorMiddleware resolves the visitor from the signed cookie, issuing a
// new one when it is missing or invalid, and attaches the visitor's store
func (sh *Shell) visitorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := sh.cfg.Session.CookieName

		var visitorID string
		if raw, err := c.Cookie(name); err == nil {
			if id, err := sh.sessions.Verify(raw); err == nil {
				visitorID = id
			} else {
				log.Log.Debugf("Rejected visitor cookie: %v", err)
			}
		}

		if visitorID == "" {
			id, token, err := sh.sessions.NewVisitor()
			if err != nil {
				log.Log.Errorf("Failed to issue visitor token: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
				return
			}
			visitorID = id
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(name, token, int(sh.sessions.TTL().Seconds()), "/", "", sh.cfg.Session.Secure, true)
		}

		st, err := sh.visitors.Get(visitorID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Set(storeKey, st)
		c.Next()
	}
}

func appStore(c *gin.Context) *store.AppStore {
	return c.MustGet(storeKey).(*store.AppStore)
}

// env wires the visitor's store into the sidebar collaborators
func (sh *Shell) env(c *gin.Context, st *store.AppStore) sidebar.Env {
	return sidebar.Env{
		State:          st.State(),
		OnMobile:       hooks.OnMobile(c.Request),
		SwitchDarkMode: sh.tracked(store.ToggleDarkMode{}, hooks.SwitchDarkMode(st)),
		Logout:         sh.tracked(store.LogOut{}, hooks.Logout(st)),
		Actions:        sidebar.Actions{Return: c.Request.URL.Path},
	}
}

// tracked counts and logs an action each time fn runs
func (sh *Shell) tracked(a store.Action, fn func()) func() {
	name := store.ActionName(a)
	return func() {
		fn()
		if sh.metrics != nil {
			sh.metrics.RecordAction(name)
		}
		log.Log.Debugf("Dispatched %s", name)
	}
}

// handlePage renders the shell around the placeholder content of item
func (sh *Shell) handlePage(item model.LinkDescriptor) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := appStore(c)
		env := sh.env(c, st)

		content := layout.PlaceholderContent(item)
		if !env.State.IsAuthenticated && sh.cfg.Features.DevLogin {
			content = append(content, layout.SignInCard(loginPath, item.Path))
		}
		sh.renderLayout(c, http.StatusOK, item.Title, item.Path, env, content)
	}
}

// handleNotFound renders the shell with a not found message
func (sh *Shell) handleNotFound(c *gin.Context) {
	st := appStore(c)
	env := sh.env(c, st)
	sh.renderLayout(c, http.StatusNotFound, "Not found", c.Request.URL.Path, env,
		layout.NotFoundContent(c.Request.URL.Path))
}

func (sh *Shell) renderLayout(c *gin.Context, status int, title, path string, env sidebar.Env, content []g.Node) {
	page := layout.NewPrivateLayout(layout.PageProps{
		AppTitle:    sh.cfg.Title,
		Title:       title,
		CurrentPath: path,
		Items:       sh.items,
		Content:     content,
	}, env)
	c.Render(status, templRender{ctx: c.Request.Context(), component: page.Component()})
}

// handleDarkMode flips dark mode through the sidebar switch and goes back
func (sh *Shell) handleDarkMode(c *gin.Context) {
	st := appStore(c)
	sidebar.New(sidebar.Props{}, sh.env(c, st)).DarkMode.Toggle()
	c.Redirect(http.StatusSeeOther, safeReturn(c.PostForm("return")))
}

// handleLogout signs out through the sidebar logout button, which only
// exists for authenticated visitors
func (sh *Shell) handleLogout(c *gin.Context) {
	st := appStore(c)
	if logout := sidebar.New(sidebar.Props{}, sh.env(c, st)).Logout; logout != nil {
		logout.Activate()
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// handleLogin is the development sign-in
func (sh *Shell) handleLogin(c *gin.Context) {
	user := strings.TrimSpace(c.PostForm("user"))
	if user == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user is required"})
		return
	}
	if utf8.RuneCountInString(user) > maxUserLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user is too long"})
		return
	}

	appStore(c).Dispatch(store.LogIn{User: user})
	if sh.metrics != nil {
		sh.metrics.RecordAction(store.ActionName(store.LogIn{}))
	}
	log.Log.Infof("Visitor signed in as %s", user)
	c.Redirect(http.StatusSeeOther, safeReturn(c.PostForm("return")))
}

// handleHealth handles health check requests
func (sh *Shell) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"items":    len(sh.items),
		"visitors": sh.visitors.Len(),
		"version":  Version(),
	})
}

// safeReturn keeps redirects on this site
func safeReturn(raw string) string {
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return "/"
	}
	return raw
}

// templRender renders a templ component as a gin response
type templRender struct {
	ctx       context.Context
	component templ.Component
}

func (r templRender) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	return r.component.Render(r.ctx, w)
}

func (r templRender) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = []string{"text/html; charset=utf-8"}
	}
}
