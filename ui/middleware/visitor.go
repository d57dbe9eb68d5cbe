package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"synthml/domain/core"
	"synthml/domain/theme"
)

// Cookie names shared with the browser script.
const (
	VisitorCookie = "synthml_visitor"
	ThemeCookie   = "theme"

	// ColorSchemeHint is the client hint carrying the OS colour scheme.
	ColorSchemeHint = "Sec-CH-Prefers-Color-Scheme"
)

const (
	cookieMaxAge = 365 * 24 * 60 * 60

	visitorKey = "synthml.visitor"
	themeKey   = "synthml.theme"
	darkKey    = "synthml.dark"
)

// ThemeSource resolves the stored theme of a visitor.
type ThemeSource interface {
	Theme(ctx context.Context, visitor core.VisitorID) theme.Theme
}

// Visitor issues the visitor cookie on first contact and resolves the
// theme for the request. The theme cookie wins over the store so pages
// render without a lookup once it is set.
func Visitor(prefs ThemeSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, _ := c.Cookie(VisitorCookie)
		visitor, err := core.ParseVisitorID(raw)
		if err != nil {
			visitor = core.NewVisitorID()
			setCookie(c, VisitorCookie, visitor.String(), true)
		}

		t, ok := themeFromCookie(c)
		if !ok && prefs != nil {
			t = prefs.Theme(c.Request.Context(), visitor)
		}

		c.Header("Accept-CH", ColorSchemeHint)
		c.Header("Vary", ColorSchemeHint)

		c.Set(visitorKey, visitor)
		c.Set(themeKey, t)
		c.Set(darkKey, theme.Resolve(t, theme.PrefersDark(c.GetHeader(ColorSchemeHint))))
		c.Next()
	}
}

// SetTheme mirrors an applied theme into the cookie and the current
// request context.
func SetTheme(c *gin.Context, t theme.Theme) {
	setCookie(c, ThemeCookie, string(t), false)
	c.Set(themeKey, t)
	c.Set(darkKey, theme.Resolve(t, theme.PrefersDark(c.GetHeader(ColorSchemeHint))))
}

// VisitorID returns the visitor resolved by Visitor, or "" outside it.
func VisitorID(c *gin.Context) core.VisitorID {
	if v, ok := c.Get(visitorKey); ok {
		if id, ok := v.(core.VisitorID); ok {
			return id
		}
	}
	return ""
}

// Theme returns the request theme, theme.Default outside Visitor.
func Theme(c *gin.Context) theme.Theme {
	if v, ok := c.Get(themeKey); ok {
		if t, ok := v.(theme.Theme); ok {
			return t
		}
	}
	return theme.Default
}

// Dark reports whether the page should render with the dark class.
func Dark(c *gin.Context) bool {
	return c.GetBool(darkKey)
}

func themeFromCookie(c *gin.Context) (theme.Theme, bool) {
	raw, err := c.Cookie(ThemeCookie)
	if err != nil {
		return "", false
	}
	t, err := theme.Parse(raw)
	if err != nil {
		return "", false
	}
	return t, true
}

func setCookie(c *gin.Context, name, value string, httpOnly bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, cookieMaxAge, "/", "", c.Request.TLS != nil, httpOnly)
}
