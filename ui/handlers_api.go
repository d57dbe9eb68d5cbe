package ui

import (
	"bytes"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"synthml/domain/theme"
	apperrors "synthml/internal/errors"
	"synthml/internal/render"
	"synthml/ui/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) handleChartSVG(c *gin.Context) {
	name := render.Normalize(c.Param("name"))
	start := time.Now()

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, name); err != nil {
		s.respondError(c, err)
		return
	}
	if s.metrics != nil {
		s.metrics.ObserveChart(name, time.Since(start))
	}
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "image/svg+xml; charset=utf-8", buf.Bytes())
}

func (s *Server) handleChartJSON(c *gin.Context) {
	name := render.Normalize(c.Param("name"))
	geometry, err := s.renderer.Geometry(name)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": name, "chart": geometry})
}

func (s *Server) handleChartList(c *gin.Context) {
	names := render.Names()
	charts := make([]gin.H, len(names))
	for i, n := range names {
		charts[i] = gin.H{"name": n, "svg": "/charts/" + n + ".svg", "json": "/api/charts/" + n}
	}
	c.JSON(http.StatusOK, gin.H{"charts": charts})
}

func (s *Server) handleDataQualityReport(c *gin.Context) {
	var buf bytes.Buffer
	if err := s.exporter.Export(c.Request.Context(), &buf); err != nil {
		s.respondError(c, err)
		return
	}
	name := "data-quality-" + time.Now().UTC().Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

type themeResponse struct {
	Theme theme.Theme `json:"theme"`
	Dark  bool        `json:"dark"`
}

func (s *Server) handleGetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, themeResponse{Theme: middleware.Theme(c), Dark: middleware.Dark(c)})
}

type themeRequest struct {
	Theme string `json:"theme" form:"theme"`
}

// handleSetTheme accepts a form post from the picker or a JSON body from
// the script. Forms are redirected back; JSON callers get the applied theme.
func (s *Server) handleSetTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBind(&req); err != nil {
		s.respondError(c, apperrors.InvalidInput("malformed theme request"))
		return
	}

	applied, err := s.prefs.SetTheme(c.Request.Context(), middleware.VisitorID(c), req.Theme)
	if err != nil {
		s.respondError(c, err)
		return
	}
	middleware.SetTheme(c, applied)

	if wantsJSON(c) {
		c.JSON(http.StatusOK, themeResponse{Theme: applied, Dark: middleware.Dark(c)})
		return
	}
	c.Redirect(http.StatusSeeOther, backTo(c, "/dashboard/settings"))
}

func wantsJSON(c *gin.Context) bool {
	return c.ContentType() == gin.MIMEJSON ||
		strings.Contains(c.GetHeader("Accept"), gin.MIMEJSON)
}

// backTo returns the Referer path when it points at this host, otherwise
// fallback.
func backTo(c *gin.Context, fallback string) string {
	ref := c.GetHeader("Referer")
	if ref == "" {
		return fallback
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Host != "" && u.Host != c.Request.Host) || !strings.HasPrefix(u.Path, "/") {
		return fallback
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}
