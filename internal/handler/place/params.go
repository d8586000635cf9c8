package place

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/hanifbg/PlacesProxy/internal/model/entity"
	"github.com/labstack/echo"
	"github.com/spf13/cast"
)

const (
	defaultLanguage = "pl"
	defaultLimit    = 3
	minLimit        = 1
	maxLimit        = 10
	defaultRadius   = 3000
	minRadius       = 100
	maxRadius       = 50000

	rankByDistance = "distance"
)

var (
	leadingFloat = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
)

type params map[string]interface{}

func (p params) str(key string) string {
	return cast.ToString(p[key])
}

// readParams collects request parameters from the query string for GET,
// from a JSON body when the content type says so, and from a URL-encoded
// body otherwise.
func readParams(c echo.Context) (params, error) {
	req := c.Request()
	out := params{}

	if req.Method == http.MethodGet {
		for key, values := range c.QueryParams() {
			if len(values) > 0 {
				out[key] = values[0]
			}
		}
		return out, nil
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	if strings.Contains(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		if len(bytes.TrimSpace(body)) == 0 {
			return out, nil
		}
		var decoded interface{}
		if err := json.Unmarshal(body, &decoded); err != nil {
			return nil, fmt.Errorf("failed to decode JSON body: %w", err)
		}
		if object, ok := decoded.(map[string]interface{}); ok {
			return params(object), nil
		}
		return out, nil
	}

	// malformed pairs are skipped, the rest still count
	values, _ := url.ParseQuery(string(body))
	for key, v := range values {
		if len(v) > 0 {
			out[key] = v[len(v)-1]
		}
	}
	return out, nil
}

func newSearchRequest(p params) *entity.SearchRequest {
	request := &entity.SearchRequest{
		Query:        p.str("query"),
		Language:     p.str("language"),
		Limit:        clampInt(p.str("n"), defaultLimit, minLimit, maxLimit),
		RadiusMeters: clampInt(p.str("radius"), defaultRadius, minRadius, maxRadius),
		PlaceType:    p.str("type"),
	}

	if request.Query == "" {
		request.Query = p.str("keyword")
	}
	if request.Language == "" {
		request.Language = defaultLanguage
	}
	if p.str("rankby") == rankByDistance {
		request.RankBy = rankByDistance
	}

	lat, latOK := parseFloat(p.str("lat"))
	lng, lngOK := parseFloat(p.str("lng"))
	if latOK && lngOK {
		request.Coordinates = &entity.Coordinates{Lat: lat, Lng: lng}
	}

	return request
}

// parseFloat reads the longest leading decimal number of s, so "52.4abc"
// gives 52.4. The result is only ok when it is finite.
func parseFloat(s string) (float64, bool) {
	prefix := leadingFloat.FindString(strings.TrimSpace(s))
	if prefix == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// clampInt reads the leading integer of s and clamps it to [min, max].
// Anything without a leading integer yields def.
func clampInt(s string, def, min, max int) int {
	prefix := leadingInt.FindString(strings.TrimSpace(s))
	if prefix == "" {
		return def
	}
	// ParseFloat keeps the sign of out-of-range values so they still clamp
	f, _ := strconv.ParseFloat(prefix, 64)
	switch {
	case f < float64(min):
		return min
	case f > float64(max):
		return max
	}
	return int(f)
}
