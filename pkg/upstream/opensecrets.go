package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/civicforum/civic-engine/pkg/models"
)

// Supported query methods and election cycles. Anything outside these
// sets is rejected before a request is built; the raw method string is
// otherwise interpolated into the upstream URL.
var (
	openSecretsMethods = map[string]bool{
		"candSummary":   true,
		"candContrib":   true,
		"candIndustry":  true,
		"candSector":    true,
		"memPFDprofile": true,
	}
	openSecretsCycles = map[string]bool{
		"2024": true, "2022": true, "2020": true, "2018": true, "2016": true, "2014": true,
	}
	// CID format: a letter followed by eight digits, e.g. N00000001.
	cidPattern = regexp.MustCompile(`^[A-Z]\d{8}$`)
)

// ValidOpenSecretsMethod reports whether method is in the whitelist.
func ValidOpenSecretsMethod(method string) bool { return openSecretsMethods[method] }

// ValidOpenSecretsCycle reports whether cycle is a supported cycle.
func ValidOpenSecretsCycle(cycle string) bool { return openSecretsCycles[cycle] }

// ValidCID reports whether cid matches the CID format.
func ValidCID(cid string) bool { return cidPattern.MatchString(cid) }

// OpenSecretsResult is a query result with its provenance. Data keeps
// the upstream's own JSON shape; Warning is set whenever Data is the
// embedded sample rather than a live response.
type OpenSecretsResult struct {
	Data       json.RawMessage
	Warning    string
	Provenance models.Provenance
}

// OpenSecretsClient proxies whitelisted queries to the campaign-finance
// research API. Deployments without a key, and any upstream failure,
// get the embedded sample payloads so the caller always has data to
// render; the result carries a warning either way.
type OpenSecretsClient struct {
	fetcher *Fetcher
	logger  *zap.Logger
	baseURL string
	apiKey  string
	ttl     time.Duration
}

func NewOpenSecretsClient(fetcher *Fetcher, logger *zap.Logger, baseURL, apiKey string, ttl time.Duration) *OpenSecretsClient {
	return &OpenSecretsClient{
		fetcher: fetcher,
		logger:  logger.Named("opensecrets"),
		baseURL: baseURL,
		apiKey:  apiKey,
		ttl:     ttl,
	}
}

// Query runs a whitelisted method for a CID and cycle. method, cid, and
// cycle must already be validated by the caller.
func (c *OpenSecretsClient) Query(ctx context.Context, method, cid, cycle string) OpenSecretsResult {
	if c.apiKey == "" {
		return OpenSecretsResult{
			Data:       sampleOpenSecretsData(method, cid),
			Warning:    "OpenSecrets API key not configured. Using sample data.",
			Provenance: models.SourceSample,
		}
	}

	query := url.Values{}
	query.Set("apikey", c.apiKey)
	query.Set("output", "json")
	query.Set("method", method)
	query.Set("cid", cid)
	if method == "memPFDprofile" {
		query.Set("year", cycle)
	} else {
		query.Set("cycle", cycle)
	}

	requestURL := c.baseURL + "?" + query.Encode()
	cacheKey := fmt.Sprintf("%s:%s:%s", method, cid, cycle)
	body, err := c.fetcher.GetCached(ctx, "opensecrets", cacheKey, requestURL, c.ttl)
	if err == nil && json.Valid(body) {
		return OpenSecretsResult{Data: body, Provenance: models.SourceLive}
	}
	if err != nil {
		c.logger.Warn("OpenSecrets query failed, serving sample data",
			zap.String("method", method), zap.Error(err))
	}

	return OpenSecretsResult{
		Data:       sampleOpenSecretsData(method, cid),
		Warning:    "Failed to fetch from OpenSecrets. Using sample data.",
		Provenance: models.SourceSample,
	}
}

// Embedded sample payloads in the upstream's own JSON shape.
const (
	sampleContributors = `{"response":{"contributors":{"contributor":[
{"@attributes":{"org_name":"Alphabet Inc","total":"$125,000","pacs":"$0","indivs":"$125,000"}},
{"@attributes":{"org_name":"Microsoft Corp","total":"$98,500","pacs":"$15,000","indivs":"$83,500"}},
{"@attributes":{"org_name":"Amazon.com","total":"$87,250","pacs":"$25,000","indivs":"$62,250"}},
{"@attributes":{"org_name":"Meta Platforms","total":"$76,000","pacs":"$10,000","indivs":"$66,000"}},
{"@attributes":{"org_name":"Apple Inc","total":"$65,750","pacs":"$0","indivs":"$65,750"}}
]}}}`

	sampleIndustries = `{"response":{"industries":{"industry":[
{"@attributes":{"industry_code":"C2100","industry_name":"Electronics Mfg & Equip","indivs":"$450,000","pacs":"$125,000","total":"$575,000"}},
{"@attributes":{"industry_code":"B1200","industry_name":"Securities & Investment","indivs":"$380,000","pacs":"$95,000","total":"$475,000"}},
{"@attributes":{"industry_code":"K1000","industry_name":"Lawyers/Law Firms","indivs":"$320,000","pacs":"$80,000","total":"$400,000"}},
{"@attributes":{"industry_code":"H0400","industry_name":"Pharmaceuticals/Health","indivs":"$290,000","pacs":"$110,000","total":"$400,000"}},
{"@attributes":{"industry_code":"D0100","industry_name":"Defense Aerospace","indivs":"$180,000","pacs":"$150,000","total":"$330,000"}}
]}}}`
)

func sampleOpenSecretsData(method, cid string) json.RawMessage {
	switch method {
	case "candSummary":
		summary := fmt.Sprintf(`{"response":{"summary":{"@attributes":{"cid":%q,"cycle":"2024","total":"$15,234,567","spent":"$12,456,789","cash_on_hand":"$2,777,778","debt":"$0","origin":"Center for Responsive Politics"}}}}`, cid)
		return json.RawMessage(summary)
	case "candContrib":
		return json.RawMessage(sampleContributors)
	case "candIndustry":
		return json.RawMessage(sampleIndustries)
	default:
		return json.RawMessage("null")
	}
}
