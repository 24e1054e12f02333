package landing

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/acebook/zustand-landing/views"
)

// RenderPage writes the landing page for the current configuration to w.
func (a *App) RenderPage(ctx context.Context, w io.Writer) error {
	return views.Landing(a.Config.View(), a.Assets.View(), a.code).Render(ctx, w)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}
