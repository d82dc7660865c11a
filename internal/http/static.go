package http

import (
	nethttp "net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"dutchghostwriter/backend/pkg/logger"
)

// reservedPrefixes never fall back to the SPA index.
var reservedPrefixes = []string{"/api", "/swagger"}

func registerStatic(e *echo.Echo, dir string) {
	if dir == "" {
		return
	}
	indexPath := filepath.Join(dir, "index.html")
	info, err := os.Stat(indexPath)
	if err != nil || info.IsDir() {
		logger.Warn("static index not found", "module", "http", "action", "serve", "resource", "static", "result", "skipped", "path", indexPath)
		return
	}

	fileServer := nethttp.FileServer(nethttp.Dir(dir))
	serveIndex := func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
		return c.File(indexPath)
	}

	e.GET("/*", func(c echo.Context) error {
		requestPath := c.Request().URL.Path
		for _, prefix := range reservedPrefixes {
			if requestPath == prefix || strings.HasPrefix(requestPath, prefix+"/") {
				return echo.ErrNotFound
			}
		}

		cleanPath := strings.TrimPrefix(path.Clean("/"+requestPath), "/")
		if cleanPath == "" || cleanPath == "index.html" {
			return serveIndex(c)
		}

		candidate := filepath.Join(dir, filepath.FromSlash(cleanPath))
		if fileInfo, err := os.Stat(candidate); err == nil && !fileInfo.IsDir() {
			fileServer.ServeHTTP(c.Response(), c.Request())
			return nil
		}
		return serveIndex(c)
	})
}
