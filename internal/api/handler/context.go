package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/todo-system/internal/api/middleware"
	"github.com/taskforge/todo-system/internal/core/domain"
)

// ctxUser extracts the user injected by the Auth middleware. Its absence
// means the route was wired without the middleware; fail closed.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
