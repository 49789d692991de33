package handlers

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Notices are carried as an explicit "notice" query parameter on the
// redirect target. The next handler reads it and hands it to its template;
// nothing is stashed in shared request state.

// redirectWithNotice redirects to target with the notice attached.
func redirectWithNotice(c *fiber.Ctx, target, notice string) error {
	return c.Redirect(withNotice(target, notice))
}

// backWithNotice redirects to the page that issued the request, or to
// fallback when the Referer header is unusable.
func backWithNotice(c *fiber.Ctx, fallback, notice string) error {
	return c.Redirect(withNotice(referringPage(c, fallback), notice))
}

func withNotice(target, notice string) string {
	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	return target + sep + "notice=" + url.QueryEscape(notice)
}

func referringPage(c *fiber.Ctx, fallback string) string {
	return cleanReferrer(c.Get(fiber.HeaderReferer), fallback)
}

// cleanReferrer reduces a Referer value to its local path and query, with
// any stale notice stripped so notices never pile up across redirects.
func cleanReferrer(ref, fallback string) string {
	if ref == "" {
		return fallback
	}
	u, err := url.Parse(ref)
	if err != nil || u.Path == "" {
		return fallback
	}
	q := u.Query()
	q.Del("notice")
	if len(q) == 0 {
		return u.Path
	}
	return u.Path + "?" + q.Encode()
}
