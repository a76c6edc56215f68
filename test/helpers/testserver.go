package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kilimopesa_backend/database"
	"kilimopesa_backend/internal/app"
	"kilimopesa_backend/internal/config"
	"kilimopesa_backend/internal/pkg/email"
)

// TestServer wraps an httptest server running the full application router
// against a real test database. Outbound email and YouTube calls are
// replaced with fakes.
type TestServer struct {
	Server  *httptest.Server
	DB      *gorm.DB
	Emails  *RecordingSender
	YouTube *FakeYouTubeClient
}

// RecordingSender captures outgoing mail so tests can read verification
// codes instead of checking an inbox.
type RecordingSender struct {
	mu    sync.Mutex
	codes map[string]string // email -> last code
	fail  bool
}

func NewRecordingSender() *RecordingSender {
	return &RecordingSender{codes: make(map[string]string)}
}

func (s *RecordingSender) Send(e *email.Email) error {
	if s.failing() {
		return errSMTPDown
	}
	return nil
}

func (s *RecordingSender) SendVerificationCode(to, username, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errSMTPDown
	}
	s.codes[to] = code
	return nil
}

// LastCode returns the most recent code sent to the address.
func (s *RecordingSender) LastCode(to string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.codes[to]
}

// SetFailing makes every subsequent send fail, simulating an SMTP outage.
func (s *RecordingSender) SetFailing(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = fail
}

func (s *RecordingSender) failing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fail
}

var errSMTPDown = &smtpDownError{}

type smtpDownError struct{}

func (e *smtpDownError) Error() string { return "smtp server unavailable" }

// FakeYouTubeClient returns a canned search response.
type FakeYouTubeClient struct {
	Response json.RawMessage
	Err      error
}

func (c *FakeYouTubeClient) Search(ctx context.Context, query string) (json.RawMessage, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	if c.Response != nil {
		return c.Response, nil
	}
	return json.RawMessage(`{"kind":"youtube#searchListResponse","items":[]}`), nil
}

// NewTestServer connects to the test database, migrates the schema and
// starts the application router under httptest.
func NewTestServer(t *testing.T) *TestServer {
	config.LoadConfig()
	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database (%s): %v", dsn, err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	if err := app.SeedCategories(db); err != nil {
		t.Fatalf("Failed to seed categories: %v", err)
	}

	emails := NewRecordingSender()
	yt := &FakeYouTubeClient{}

	router := app.SetupRouter(cfg, db, emails, yt)
	server := httptest.NewServer(router)

	log.Printf("Test server started against %s", dsn)

	return &TestServer{
		Server:  server,
		DB:      db,
		Emails:  emails,
		YouTube: yt,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// ClearTables truncates every table except categories, which are seeded once.
func (ts *TestServer) ClearTables() {
	err := ts.DB.Exec("TRUNCATE TABLE users, sessions, products, lands, inputs, services, videos RESTART IDENTITY CASCADE").Error
	if err != nil {
		log.Fatalf("Failed to clear tables: %v", err)
	}
}

// SendRequest performs an HTTP request against the test server and returns
// the response together with its body as a string.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Failed to create HTTP request: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Failed to send HTTP request: %v", err)
	}

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}
