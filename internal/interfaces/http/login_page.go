package http

import (
	"github.com/gofiber/fiber/v2"
)

const loginPageHead = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Ration Shop - Login</title></head>
<body>
<h1>Ration Shop Inventory</h1>
`

const loginPageForm = `<form method="post" action="/api/auth/login">
<label>Username <input name="username" autocomplete="username" required></label>
<label>Password <input name="password" type="password" autocomplete="current-password" required></label>
<button type="submit">Log in</button>
</form>
</body>
</html>
`

// LoginPage serves the HTML form denied page requests are redirected to. The form posts to
// /api/auth/login, which answers it with a redirect.
func LoginPage(c *fiber.Ctx) error {
	page := loginPageHead
	if c.Query("error") != "" {
		page += "<p role=\"alert\">Invalid username or password.</p>\n"
	}
	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Type("html", "utf-8")
	return c.SendString(page + loginPageForm)
}
