package googleapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hanifbg/PlacesProxy/internal/model/entity"
	"github.com/labstack/gommon/log"
	"github.com/tidwall/gjson"
)

const maxBodySize = 10 << 20

func (c *PlacesApiClient) TextSearch(ctx context.Context, query *entity.TextSearchQuery) (*entity.TextSearchResponse, error) {
	requestURL, err := c.buildURL(query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create places request: %w", redactKey(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to places API: %w", redactKey(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read places API response: %w", err)
	}

	// the API reports failures in the payload status, so the body is decoded
	// whatever the HTTP code is
	if resp.StatusCode != http.StatusOK {
		log.Warnf("places API returned non-200 status: %d", resp.StatusCode)
	}

	return decodeTextSearch(body)
}

func (c *PlacesApiClient) buildURL(query *entity.TextSearchQuery) (string, error) {
	u, err := url.Parse(c.Config.PlacesURL)
	if err != nil {
		return "", fmt.Errorf("invalid places API url: %w", err)
	}

	params := u.Query()
	if query.Query != "" {
		params.Set("query", query.Query)
	}
	if query.Location != nil {
		params.Set("location", formatCoord(query.Location.Lat)+","+formatCoord(query.Location.Lng))
		if query.RankByDistance {
			params.Set("rankby", "distance")
		} else {
			params.Set("radius", strconv.Itoa(query.Radius))
		}
	}
	params.Set("language", query.Language)
	if query.Type != "" {
		params.Set("type", query.Type)
	}
	params.Set("key", c.Config.GoogleAPIKey)

	u.RawQuery = params.Encode()
	return u.String(), nil
}

// redactKey drops the key parameter from the URL carried by a *url.Error,
// which would otherwise end up in the logs.
func redactKey(err error) error {
	var uerr *url.Error
	if !errors.As(err, &uerr) {
		return err
	}

	redacted := "[redacted]"
	if u, perr := url.Parse(uerr.URL); perr == nil {
		params := u.Query()
		params.Del("key")
		u.RawQuery = params.Encode()
		redacted = u.String()
	}
	return &url.Error{Op: uerr.Op, URL: redacted, Err: uerr.Err}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// decodeTextSearch reads the text search payload leniently: a missing or
// non-array results field yields no results and non-object entries are skipped.
func decodeTextSearch(body []byte) (*entity.TextSearchResponse, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("failed to decode places API response: invalid JSON")
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, fmt.Errorf("failed to decode places API response: expected a JSON object, got %s", root.Type)
	}

	out := &entity.TextSearchResponse{
		Status:       root.Get("status").String(),
		ErrorMessage: root.Get("error_message").String(),
		Results:      []entity.UpstreamPlace{},
	}

	results := root.Get("results")
	if !results.IsArray() {
		return out, nil
	}

	results.ForEach(func(_, value gjson.Result) bool {
		if value.IsObject() {
			out.Results = append(out.Results, decodePlace(value))
		}
		return true
	})

	return out, nil
}

func decodePlace(value gjson.Result) entity.UpstreamPlace {
	return entity.UpstreamPlace{
		Name:             value.Get("name").String(),
		Rating:           value.Get("rating").Float(),
		UserRatingsTotal: value.Get("user_ratings_total").Int(),
		FormattedAddress: value.Get("formatted_address").String(),
		Vicinity:         value.Get("vicinity").String(),
		PlaceID:          value.Get("place_id").String(),
	}
}
