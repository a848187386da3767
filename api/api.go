package api

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	api_types "alphaview/api-types"
	alphaview_errors "alphaview/internal"
	"alphaview/internal/resolver"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"
)

//go:embed templates/*.html
var templatesFS embed.FS

const shutdownTimeout = 5 * time.Second

type ApiConfig struct {
	// username -> password
	Users      map[string]string
	BlockedIps []string
}

func NewRouter(cfg ApiConfig, r resolver.Resolver) (*gin.Engine, error) {
	if len(cfg.Users) == 0 {
		return nil, fmt.Errorf("no users configured")
	}
	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(blockBots(cfg.BlockedIps))
	router.Use(cors.Default())
	router.SetHTMLTemplate(tmpl)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to alphaview"})
	})

	authorized := router.Group("/", gin.BasicAuthForRealm(gin.Accounts(cfg.Users), "alphaview"))

	authorized.GET("/company", func(c *gin.Context) {
		view := &api_types.CompanyView{}
		var req api_types.CompanySearchRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			view.Form = req
			view.FormErrors = formErrors(c, err)
			render(c, "company.html", "Company search", view)
			return
		}

		view, err := r.SearchCompany(c.Request.Context(), req)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		render(c, "company.html", "Company search", view)
	})

	authorized.GET("/tickers", func(c *gin.Context) {
		view, err := r.ListTickers(c.Request.Context())
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		render(c, "tickers.html", "Company acronyms", view)
	})

	authorized.POST("/favorites", func(c *gin.Context) {
		var req api_types.AddFavoriteRequest
		if err := c.ShouldBind(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}

		_, err := r.AddFavorite(c.Request.Context(), currentUser(c), req)
		if errors.Is(err, alphaview_errors.ErrMissingTicker) {
			returnErrorJsonCode(err, c, http.StatusBadRequest)
			return
		} else if err != nil {
			glog.Errorf("failed to add favorite for %s: %v", currentUser(c), err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Some error occurred, unable to add to favorites",
			})
			return
		}

		c.String(http.StatusOK, "Added to favorites!")
	})

	authorized.GET("/favorites", func(c *gin.Context) {
		view, err := r.ListFavorites(c.Request.Context(), currentUser(c))
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		render(c, "favorites.html", "Favorite companies", view)
	})

	authorized.GET("/graphs", func(c *gin.Context) {
		var req api_types.ChartRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			view, err := r.ChartForm(c.Request.Context(), currentUser(c), req, formErrors(c, err))
			if err != nil {
				returnErrorJson(err, c)
				return
			}
			render(c, "graphs.html", "Graphs", view)
			return
		}

		view, err := r.GetChart(c.Request.Context(), currentUser(c), req)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		render(c, "graphs.html", "Graphs", view)
	})

	return router, nil
}

// StartApi serves until ctx is cancelled, then shuts the server down.
func StartApi(ctx context.Context, port int, handler http.Handler) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: handler,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		glog.Infof("listening on %s", srv.Addr)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		glog.Infof("shutting down %s", srv.Addr)
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

type page struct {
	Title string
	User  string
	View  interface{}
}

func render(c *gin.Context, name, title string, view interface{}) {
	c.HTML(http.StatusOK, name, page{
		Title: title,
		User:  currentUser(c),
		View:  view,
	})
}

func currentUser(c *gin.Context) string {
	return c.GetString(gin.AuthUserKey)
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, http.StatusInternalServerError)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	glog.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func blockBots(blockedIps []string) gin.HandlerFunc {
	blocked := map[string]struct{}{}
	for _, ip := range blockedIps {
		blocked[ip] = struct{}{}
	}
	return func(c *gin.Context) {
		if _, ok := blocked[c.ClientIP()]; ok {
			c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			c.Abort()
			return
		}
		c.Next()
	}
}
