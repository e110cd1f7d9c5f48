package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"

	"github.com/stl-ops/dashboard/internal/pkg/constants"
)

// Binder decodes JSON request bodies with sonic and falls back to echo's
// default binder for everything else (path and query params).
type Binder struct {
	fallback echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()
	if req.ContentLength != 0 && req.Method != http.MethodGet {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}
		if err := sonic.Unmarshal(body, i); err != nil {
			return fmt.Errorf("%w: %s", constants.ErrBadRequest, err.Error())
		}
		return nil
	}
	return b.fallback.Bind(i, c)
}
