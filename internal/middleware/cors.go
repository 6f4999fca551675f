package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

const HeaderWeddingSecret = "X-Wedding-Secret"

func CORS() echo.MiddlewareFunc {
	return echoMw.CORSWithConfig(echoMw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			HeaderAdminToken,
			HeaderWeddingSecret,
		},
		ExposeHeaders: []string{HeaderXCache},
	})
}
