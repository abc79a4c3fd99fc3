package http

import (
	"net/http"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/actinguser"

	"github.com/labstack/echo/v4"
)

// ActingUserHeader names the header that identifies the user performing the
// request. Audit fields on mutated orders are filled from it.
const ActingUserHeader = "X-User-Id"

// ActingUserMiddleware moves the acting user from the request header into the
// request context, where command handlers pick it up. Requests without the
// header pass through unchanged; a malformed header is rejected.
func ActingUserMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(ActingUserHeader)
			if header == "" {
				return next(c)
			}

			userID, err := kernel.UUIDFromString(header)
			if err != nil {
				return c.JSON(http.StatusBadRequest, Error{
					Code:    http.StatusBadRequest,
					Message: "Invalid " + ActingUserHeader + " header",
				})
			}

			ctx := actinguser.WithUser(c.Request().Context(), userID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
