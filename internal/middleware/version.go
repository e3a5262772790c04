package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// defaultAPIVersion is assumed when the dashboard omits the header.
const defaultAPIVersion = "1.0.0"

// versionAliases maps short version forms to their canonical value.
var versionAliases = map[string]string{
	"1":   defaultAPIVersion,
	"1.0": defaultAPIVersion,
}

// VersionMiddleware resolves the X-Api-Version request header, stores the
// canonical version in context, and echoes it on the response.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", defaultAPIVersion)
		if canonical, ok := versionAliases[version]; ok {
			version = canonical
		}

		c.Locals("apiVersion", version)
		c.Set("X-Api-Version", version)

		return c.Next()
	}
}
