package resource

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrMissingID is returned when a delete request carries no id at all.
var ErrMissingID = errors.New("id is required")

const dateLayout = "2006-01-02"

// BindValues extracts the descriptor's fields from a JSON or
// form-encoded body, trims every value and validates required fields and
// date formats. Any returned error is a client error.
func BindValues(c *gin.Context, desc Descriptor) (Values, error) {
	raw := map[string]string{}
	if isJSON(c) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			return Values{}, errors.New("invalid request body")
		}
		for k, val := range body {
			if s, ok := val.(string); ok {
				raw[k] = s
			}
		}
	} else {
		for _, f := range desc.Fields {
			raw[f.Name] = c.PostForm(f.Name)
		}
	}

	v := Values{Text: map[string]string{}, Dates: map[string]*Date{}}
	for _, f := range desc.Fields {
		val := strings.TrimSpace(raw[f.Name])
		if f.Required && val == "" {
			return Values{}, fmt.Errorf("%s is required", f.Name)
		}
		if f.Date {
			if val == "" {
				continue
			}
			parsed, err := time.Parse(dateLayout, val)
			if err != nil {
				return Values{}, fmt.Errorf("%s must be YYYY-MM-DD", f.Name)
			}
			d := Date(parsed)
			v.Dates[f.Name] = &d
			continue
		}
		v.Text[f.Name] = val
	}
	return v, nil
}

// ResolveID picks the delete target from the request body or, failing
// that, the id query parameter. Body wins when both are present.
func ResolveID(c *gin.Context) (uint, error) {
	var body string
	if isJSON(c) {
		var payload struct {
			ID json.Number `json:"id"`
		}
		if err := c.ShouldBindJSON(&payload); err == nil {
			body = payload.ID.String()
		}
	} else {
		// net/http only parses form bodies for POST, PUT and PATCH, so
		// the form-encoded DELETE bodies legacy clients send have to be
		// read by hand.
		body = formBodyValue(c, "id")
	}
	return pickID(body, c.Query("id"))
}

func formBodyValue(c *gin.Context, key string) string {
	if c.Request.Body == nil {
		return ""
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil || len(raw) == 0 {
		return ""
	}
	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return ""
	}
	return values.Get(key)
}

func pickID(body, query string) (uint, error) {
	raw := body
	if raw == "" {
		raw = query
	}
	if raw == "" {
		return 0, ErrMissingID
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, ErrMissingID
	}
	return uint(id), nil
}

func isJSON(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "application/json")
}
