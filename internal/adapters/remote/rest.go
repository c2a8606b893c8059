package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/ports"
)

const (
	userAlarmsPath = "/rest/v1/user_alarms"

	// PostgREST error code for "0 rows returned" on a single-object request
	codeNoRows = "PGRST116"
)

// RESTMirror talks to a PostgREST-compatible endpoint (e.g. Supabase)
type RESTMirror struct {
	client *resty.Client
}

// Verify interface compliance at compile time
var _ ports.AlarmMirror = (*RESTMirror)(nil)

type userAlarmsRow struct {
	Alarms    json.RawMessage `json:"alarms"`
	UpdatedAt string          `json:"updated_at,omitempty"`
	UserID    string          `json:"user_id,omitempty"`
}

type postgrestError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewRESTMirror creates a mirror for the API at baseURL, authenticated with apiKey
func NewRESTMirror(baseURL, apiKey string) *RESTMirror {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(15*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(2*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if apiKey != "" {
		client.SetHeader("apikey", apiKey).SetAuthToken(apiKey)
	}

	return &RESTMirror{client: client}
}

// Save implements AlarmMirror.Save with an upsert keyed on user_id
func (m *RESTMirror) Save(ctx context.Context, userID string, alarms []domain.Alarm) error {
	payload, err := EncodeAlarms(alarms)
	if err != nil {
		return err
	}

	row := userAlarmsRow{
		Alarms:    payload,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		UserID:    userID,
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetQueryParam("on_conflict", "user_id").
		SetHeader("Prefer", "resolution=merge-duplicates,return=minimal").
		SetBody(row).
		Post(userAlarmsPath)
	if err != nil {
		return fmt.Errorf("failed to save alarms: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("failed to save alarms: %s", describeError(resp))
	}
	return nil
}

// Load implements AlarmMirror.Load
func (m *RESTMirror) Load(ctx context.Context, userID string) ([]domain.Alarm, error) {
	var row userAlarmsRow
	resp, err := m.client.R().
		SetContext(ctx).
		SetQueryParam("user_id", "eq."+userID).
		SetQueryParam("select", "alarms").
		SetHeader("Accept", "application/vnd.pgrst.object+json").
		SetResult(&row).
		Get(userAlarmsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load alarms: %w", err)
	}

	if resp.IsError() {
		if isNoRows(resp) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to load alarms: %s", describeError(resp))
	}

	if len(row.Alarms) == 0 || string(row.Alarms) == "null" {
		return []domain.Alarm{}, nil
	}
	return DecodeAlarms(row.Alarms)
}

func parseError(resp *resty.Response) postgrestError {
	var perr postgrestError
	_ = json.Unmarshal(resp.Body(), &perr)
	return perr
}

func isNoRows(resp *resty.Response) bool {
	if parseError(resp).Code == codeNoRows {
		return true
	}
	return resp.StatusCode() == http.StatusNotAcceptable
}

func describeError(resp *resty.Response) string {
	perr := parseError(resp)
	if perr.Message != "" {
		return fmt.Sprintf("%s (%s, status %d)", perr.Message, perr.Code, resp.StatusCode())
	}
	return fmt.Sprintf("status %d", resp.StatusCode())
}
