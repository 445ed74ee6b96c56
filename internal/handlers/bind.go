package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// parseBody accepts both URL-encoded forms and JSON objects and normalizes
// them to a string-keyed map, so validation downstream sees one shape.
func parseBody(c *gin.Context) (map[string]string, error) {
	out := make(map[string]string)

	if strings.HasPrefix(c.ContentType(), "application/json") {
		var raw map[string]any
		if err := json.NewDecoder(c.Request.Body).Decode(&raw); err != nil {
			return nil, err
		}
		for k, v := range raw {
			switch val := v.(type) {
			case string:
				out[k] = val
			case bool:
				if val {
					out[k] = "true"
				} else {
					out[k] = "false"
				}
			case float64:
				out[k] = fmt.Sprintf("%v", val)
			case nil:
				// skip
			default:
				out[k] = fmt.Sprintf("%v", val)
			}
		}
		return out, nil
	}

	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	for k, vs := range c.Request.PostForm {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out, nil
}

// consent interprets the privacy checkbox value coming from either body kind.
func consent(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "false", "0", "off", "no":
		return false
	}
	return true
}
