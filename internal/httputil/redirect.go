package httputil

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// SafePath returns path when it is an absolute single-slash path, otherwise
// fallbackPath. Rejects empty paths, relative paths, and protocol-relative
// "//host" values to prevent open redirects.
func SafePath(path, fallbackPath string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" || !strings.HasPrefix(trimmed, "/") || strings.HasPrefix(trimmed, "//") {
		return fallbackPath
	}
	return trimmed
}

// RedirectWithMessage issues a 302 redirect to path carrying a human-readable
// message in the named query parameter ("error" or "success").
func RedirectWithMessage(c *gin.Context, path, paramName, message string) {
	values := url.Values{}
	values.Set(paramName, message)

	target := path
	if strings.Contains(path, "?") {
		target += "&" + values.Encode()
	} else {
		target += "?" + values.Encode()
	}

	c.Redirect(http.StatusFound, target)
}

// RedirectToSignIn issues a 302 redirect to the sign-in page, preserving the
// caller's return path in the "next" query parameter and optionally carrying
// an error message.
func RedirectToSignIn(c *gin.Context, nextPath, errorMessage string) {
	values := url.Values{}
	if nextPath != "" {
		values.Set("next", nextPath)
	}
	if errorMessage != "" {
		values.Set("error", errorMessage)
	}

	target := "/sign-in"
	if encoded := values.Encode(); encoded != "" {
		target += "?" + encoded
	}

	c.Redirect(http.StatusFound, target)
}
