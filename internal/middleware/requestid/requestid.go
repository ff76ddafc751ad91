// Package requestid tags each Jobly API request with an id that appears in
// the X-Request-ID response header and in every log.*WithContext line written
// while serving it.
package requestid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid"

	"github.com/AnyaAven/jobly/internal/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// New keeps an id sent by a proxy or client, otherwise mints a UUIDv4. An id
// that cannot be minted leaves the request untagged.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = newID()
		}

		if id != "" {
			c.SetUserContext(log.WithRequestID(c.UserContext(), id))
			c.Set(HeaderRequestID, id)
		}
		return c.Next()
	}
}

func newID() string {
	u, err := uuid.NewV4()
	if err != nil {
		log.Warn("request id: %v", err)
		return ""
	}
	return u.String()
}
