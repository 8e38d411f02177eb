package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gallery_board/internal/lib/validation"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
)

// payload is the merged request input: query string first, then the JSON or
// form body on top of it.
type payload map[string]any

func readPayload(c echo.Context) (payload, error) {
	const op = "http.readPayload"

	p := payload{}
	for key, values := range c.QueryParams() {
		if len(values) > 0 {
			p[key] = values[0]
		}
	}

	req := c.Request()
	ctype := req.Header.Get(echo.HeaderContentType)

	switch {
	case strings.HasPrefix(ctype, echo.MIMEApplicationJSON):
		dec := json.NewDecoder(req.Body)
		dec.UseNumber()

		var body map[string]any
		if err := dec.Decode(&body); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		for key, value := range body {
			p[key] = value
		}
	case strings.HasPrefix(ctype, echo.MIMEApplicationForm),
		strings.HasPrefix(ctype, echo.MIMEMultipartForm):
		form, err := c.FormParams()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		for key, values := range form {
			if len(values) > 0 {
				p[key] = values[0]
			}
		}
	}

	return p, nil
}

// asInt64 reads key as a decimal integer. Values the integer rule rejects
// read as 0.
func (p payload) asInt64(key string) int64 {
	n, err := validation.ParseInteger(p[key])
	if err != nil {
		return 0
	}
	return n
}

func (p payload) asInt(key string) int {
	return int(p.asInt64(key))
}

func (p payload) asString(key string) string {
	return cast.ToString(p[key])
}

// optInt64 is nil when key is absent or blank.
func (p payload) optInt64(key string) *int64 {
	if strings.TrimSpace(p.asString(key)) == "" {
		return nil
	}

	v := p.asInt64(key)
	return &v
}

// page defaults to the first page.
func (p payload) page() int {
	if page := p.asInt("page"); page > 0 {
		return page
	}
	return 1
}
