package ui

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"synthml/domain/badge"
	"synthml/domain/chart"
)

func (s *Server) funcMap() template.FuncMap {
	return template.FuncMap{
		// pct renders a 0..1 ratio as a whole percentage.
		"pct": func(v float64) string {
			return fmt.Sprintf("%.0f%%", v*100)
		},
		"round": func(v float64) string {
			return fmt.Sprintf("%.0f", math.Round(v))
		},
		"coord":        chart.FormatCoord,
		"initials":     initials,
		"join":         strings.Join,
		"capitalize":   badge.Capitalize,
		"truncateList": truncateList,
		"positive":     chart.IsPositiveChange,
		"scoreClass": func(score float64) string {
			return chart.ScoreTone(score).TextClass()
		},
		"add": func(a, b int) int { return a + b },
		"deref": func(v *float64) float64 {
			if v == nil {
				return 0
			}
			return *v
		},
		"thousands": thousands,
		"chartCard": func(title, caption string, svg template.HTML, footer string) ChartCard {
			return ChartCard{Title: title, Caption: caption, Chart: svg, Footer: footer}
		},
	}
}

// renderTemplate executes a template into a buffer first so a failing
// template never sends a partial page.
func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		s.logger.Error("template error for %s (%T): %v", templateName, data, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Template rendering failed", "details": err.Error()})
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if _, err := buf.WriteTo(c.Writer); err != nil {
		s.logger.Warn("error writing template response: %v", err)
	}
}

// initials takes the first letter of the first two words.
func initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		b.WriteString(strings.ToUpper(part[:1]))
		if b.Len() == 2 {
			break
		}
	}
	return b.String()
}

// truncateList shows the first n items and summarizes the rest as "+N more".
func truncateList(items []string, n int) string {
	if len(items) <= n {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s +%d more", strings.Join(items[:n], ", "), len(items)-n)
}

// thousands groups digits with commas.
func thousands(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
