// Package http provides the browser-facing handoff endpoint for
// cross-application impersonation.
package http

import (
	"fmt"
	"html"
)

// renderAutoPostDocument builds the self-submitting HTML document that
// forwards the minted token to the tenant application. The document runs in
// the operator's browser: it auto-submits on load and keeps a visible button
// as a fallback for script-disabled browsers. All interpolated values are
// HTML-escaped.
func renderAutoPostDocument(actionURL, token, next string) string {
	escapedAction := html.EscapeString(actionURL)
	escapedToken := html.EscapeString(token)
	escapedNext := html.EscapeString(next)

	return fmt.Sprintf(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Connecting...</title>
<style>
body { font-family: system-ui, sans-serif; display: flex; align-items: center; justify-content: center; min-height: 100vh; margin: 0; color: #333; }
main { text-align: center; }
button { margin-top: 1rem; padding: 0.5rem 1.5rem; font-size: 1rem; cursor: pointer; }
</style>
</head>
<body>
<main>
<p>Connecting to the tenant application...</p>
<form id="handoff" method="POST" action="%s">
<input type="hidden" name="token" value="%s">
<input type="hidden" name="next" value="%s">
<noscript><button type="submit">Continue</button></noscript>
</form>
</main>
<script>document.getElementById("handoff").submit();</script>
</body>
</html>`, escapedAction, escapedToken, escapedNext)
}
