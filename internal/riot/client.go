package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/valyala/fasthttp"

	"league-tracker/internal/config"
	"league-tracker/internal/constants"
	"league-tracker/internal/domain"
)

// Client wraps the Riot developer API. Every request is gated by the shared
// Limiter before it touches the network; callers never pace themselves.
type Client struct {
	apiKey      string
	client      *fasthttp.Client
	limiter     *Limiter
	rateLimitMu sync.RWMutex
	rateLimit   RateLimitInfo
}

// RateLimitInfo mirrors the app rate limit headers Riot returns on every
// response, kept for observability only. Enforcement is the Limiter's job.
type RateLimitInfo struct {
	AppLimit  string    `json:"app_limit"`
	AppCount  string    `json:"app_count"`
	RetryIn   int       `json:"retry_in"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey: cfg.RiotAPIKey,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		limiter: NewLimiter(cfg.RequestsPerSecond, cfg.RequestsPerWindow, constants.RateLimitWindow),
	}
}

func (c *Client) GetRateLimitInfo() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *Client) updateRateLimit(resp *fasthttp.Response) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if limit := string(resp.Header.Peek("X-App-Rate-Limit")); limit != "" {
		c.rateLimit.AppLimit = limit
	}
	if count := string(resp.Header.Peek("X-App-Rate-Limit-Count")); count != "" {
		c.rateLimit.AppCount = count
	}
	if retry := string(resp.Header.Peek("Retry-After")); retry != "" {
		if val, err := strconv.Atoi(retry); err == nil {
			c.rateLimit.RetryIn = val
		}
	} else {
		c.rateLimit.RetryIn = 0
	}
	c.rateLimit.UpdatedAt = time.Now()
}

// GetAccountByRiotID resolves a riot ID (gameName#tagLine) to an account on
// the regional routing host for the given platform.
func (c *Client) GetAccountByRiotID(ctx context.Context, platform, gameName, tagLine string) (*Account, error) {
	reqURL := fmt.Sprintf("https://%s.api.riotgames.com/riot/account/v1/accounts/by-riot-id/%s/%s",
		RegionalFor(platform), url.PathEscape(gameName), url.PathEscape(tagLine))
	return doRequest[Account](ctx, c, reqURL)
}

func (c *Client) GetSummonerByPuuid(ctx context.Context, platform, puuid string) (*Summoner, error) {
	reqURL := fmt.Sprintf("https://%s.api.riotgames.com/lol/summoner/v4/summoners/by-puuid/%s", platform, puuid)
	return doRequest[Summoner](ctx, c, reqURL)
}

func (c *Client) GetLeagueEntries(ctx context.Context, platform, puuid string) ([]LeagueEntry, error) {
	reqURL := fmt.Sprintf("https://%s.api.riotgames.com/lol/league/v4/entries/by-puuid/%s", platform, puuid)
	entries, err := doRequest[[]LeagueEntry](ctx, c, reqURL)
	if err != nil {
		return nil, err
	}
	return *entries, nil
}

func (c *Client) GetMatchIDs(ctx context.Context, platform, puuid string, count int) ([]string, error) {
	reqURL := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/by-puuid/%s/ids?start=0&count=%d",
		RegionalFor(platform), puuid, count)
	ids, err := doRequest[[]string](ctx, c, reqURL)
	if err != nil {
		return nil, err
	}
	return *ids, nil
}

func (c *Client) GetMatch(ctx context.Context, platform, matchID string) (*Match, error) {
	reqURL := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s", RegionalFor(platform), matchID)
	return doRequest[Match](ctx, c, reqURL)
}

func doRequest[T any](ctx context.Context, client *Client, reqURL string) (*T, error) {
	if err := client.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(reqURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("X-Riot-Token", client.apiKey)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	client.updateRateLimit(resp)

	switch resp.StatusCode() {
	case fasthttp.StatusOK:
	case fasthttp.StatusNotFound:
		return nil, domain.ErrNotFound
	default:
		return nil, fmt.Errorf("riot API error: %d", resp.StatusCode())
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
