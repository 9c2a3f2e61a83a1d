package amei

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/clinicwave/agenda-ops/pkg/logging"
)

const (
	defaultBaseURL = "https://amei.amorsaude.com.br"
	defaultTimeout = 20 * time.Second

	dateLayout = "20060102"

	professionalsPath = "/api/v1/profissionais/by-unidade"
	slotsPath         = "/api/v1/slots/list-slots-by-professional"
	confirmablePath   = "/api/v1/appointments/confirm/status"

	// ConfirmablePageSize is the fixed page size of the confirmable listing.
	ConfirmablePageSize = 100
)

// Status codes the confirmable listing is filtered by: scheduled and fit-in.
var confirmableStatusIDs = []int{2, 16}

// Config controls how the Amei client behaves.
type Config struct {
	BaseURL     string
	BearerToken string
	Cookie      string
	ClinicID    int
	UnitID      int
	Timeout     time.Duration
	HTTPClient  *http.Client
	Logger      *logging.Logger
}

// Client wraps the Amei clinic API endpoints used by the agenda and
// confirmation pipelines. Authentication is a static bearer token plus a
// session cookie supplied by configuration; token refresh is an external
// concern.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	bearerToken string
	cookie      string
	clinicID    int
	unitID      int
	logger      *logging.Logger
}

// New creates a configured Amei client with sane defaults.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BearerToken) == "" {
		return nil, errors.New("amei: bearer token is required")
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		bearerToken: cfg.BearerToken,
		cookie:      cfg.Cookie,
		clinicID:    cfg.ClinicID,
		unitID:      cfg.UnitID,
		logger:      logger,
	}, nil
}

// ListProfessionals fetches the unit's full professional directory, in the
// order the API returns it.
func (c *Client) ListProfessionals(ctx context.Context) ([]Professional, error) {
	body, err := c.get(ctx, professionalsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("amei: list professionals: %w", err)
	}
	var professionals []Professional
	if err := json.Unmarshal(body, &professionals); err != nil {
		return nil, fmt.Errorf("amei: decode professionals: %w", err)
	}
	return professionals, nil
}

// ListSlots fetches one professional's slots for a single day. A malformed or
// empty response body yields an empty slot list rather than an error; only
// transport and HTTP failures are reported.
func (c *Client) ListSlots(ctx context.Context, professionalID int, day time.Time) ([]RawSlot, error) {
	q := url.Values{}
	q.Set("idClinic", strconv.Itoa(c.clinicID))
	q.Set("idSpecialty", "null")
	q.Set("idProfessional", strconv.Itoa(professionalID))
	q.Set("initialDate", day.Format(dateLayout))
	q.Set("finalDate", day.Format(dateLayout))
	q.Set("initialHour", "00:00")
	q.Set("endHour", "23:59")

	body, err := c.get(ctx, slotsPath, q)
	if err != nil {
		return nil, fmt.Errorf("amei: list slots: %w", err)
	}
	var envelopes []slotsEnvelope
	if err := json.Unmarshal(body, &envelopes); err != nil || len(envelopes) == 0 {
		return []RawSlot{}, nil
	}
	if envelopes[0].Hours == nil {
		return []RawSlot{}, nil
	}
	return envelopes[0].Hours, nil
}

// ConfirmableParams narrows the confirmable-appointment listing.
type ConfirmableParams struct {
	DateInit   time.Time
	DateFinish time.Time
	Page       int
}

// ListConfirmable fetches one page of appointments awaiting confirmation,
// filtered by the fixed status pair and the given date window.
func (c *Client) ListConfirmable(ctx context.Context, p ConfirmableParams) (*ConfirmablePage, error) {
	page := p.Page
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	for _, id := range confirmableStatusIDs {
		q.Add("statusAppointmentId", strconv.Itoa(id))
	}
	q.Set("dateInit", p.DateInit.Format(dateLayout))
	q.Set("dateFinish", p.DateFinish.Format(dateLayout))
	q.Set("unitId", strconv.Itoa(c.unitID))
	q.Set("limit", strconv.Itoa(ConfirmablePageSize))
	q.Set("page", strconv.Itoa(page))

	body, err := c.get(ctx, confirmablePath, q)
	if err != nil {
		return nil, fmt.Errorf("amei: list confirmable page %d: %w", page, err)
	}
	var out ConfirmablePage
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("amei: decode confirmable page %d: %w", page, err)
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	req.Header.Set("Accept", "application/json")
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
