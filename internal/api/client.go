package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client handles all communications with the leaderboard API
type Client struct {
	baseURL  string
	season   string
	platform string
	client   *http.Client
}

// NewClient creates an API client for the given season and platform
func NewClient(baseURL, season, platform string, timeout time.Duration) *Client {
	return &Client{
		baseURL:  baseURL,
		season:   season,
		platform: platform,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// SearchRanked looks up players whose name contains keyword on the ranked
// leaderboard
func (c *Client) SearchRanked(keyword string) (*RankedResponse, error) {
	var response RankedResponse
	if err := c.getJSON(c.leaderboardURL(c.season, keyword), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// SearchWorldTour looks up players whose name contains keyword on the world
// tour leaderboard. The world tour resource lives under the season segment
// suffixed with "worldtour".
func (c *Client) SearchWorldTour(keyword string) (*WorldTourResponse, error) {
	var response WorldTourResponse
	if err := c.getJSON(c.leaderboardURL(c.season+"worldtour", keyword), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// leaderboardURL builds the request URL for a season segment with the name
// filter applied
func (c *Client) leaderboardURL(seasonSegment, keyword string) string {
	query := url.Values{}
	query.Set("name", keyword)
	return c.baseURL + "/v1/leaderboard/" + seasonSegment + "/" + c.platform + "?" + query.Encode()
}

// getJSON performs a GET request and decodes the JSON body into out
func (c *Client) getJSON(requestURL string, out interface{}) error {
	req, err := http.NewRequest("GET", requestURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
