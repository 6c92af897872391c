// services/login_page.go
package services

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v2"
)

var loginPage = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Panel: Sign in</title>
<style>
body{margin:0;min-height:100vh;display:flex;align-items:center;justify-content:center;background:#0f1115;font-family:system-ui,sans-serif;color:#e7e9ee}
form{background:#181b22;padding:2.5rem;border-radius:12px;width:320px;box-shadow:0 8px 32px rgba(0,0,0,.4)}
h1{margin:0 0 1.5rem;font-size:1.25rem}
label{display:block;margin-bottom:.35rem;font-size:.85rem;color:#9aa1ad}
input{width:100%;box-sizing:border-box;margin-bottom:1rem;padding:.6rem .75rem;border-radius:8px;border:1px solid #2a2f3a;background:#0f1115;color:inherit}
button{width:100%;padding:.65rem;border:0;border-radius:8px;background:#4f7cff;color:#fff;font-weight:600;cursor:pointer}
.error{background:#3a1d22;border:1px solid #6e2a35;color:#ff9aa8;padding:.6rem .75rem;border-radius:8px;margin-bottom:1rem;font-size:.85rem}
</style>
</head>
<body>
<form method="POST" action="/api/login">
<h1>Admin Panel</h1>
{{if .Error}}<div class="error">{{.Error}}</div>{{end}}
<label for="username">Username</label>
<input id="username" name="username" autocomplete="username" required>
<label for="password">Password</label>
<input id="password" name="password" type="password" autocomplete="current-password" required>
<button type="submit">Sign in</button>
</form>
</body>
</html>
`))

// renderLoginPage writes the login HTML. Browser navigations always get
// this page (with the inline error on a failed attempt), never raw JSON.
func renderLoginPage(c *fiber.Ctx, status int, errMsg string) error {
	var buf bytes.Buffer
	if err := loginPage.Execute(&buf, struct{ Error string }{errMsg}); err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}
