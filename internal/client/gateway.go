package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/Mag-Tataho/heAIthy/internal/models"
	"github.com/Mag-Tataho/heAIthy/internal/store"
)

// Mode reflects the gateway's view of backend reachability.
type Mode string

const (
	ModeUnknown Mode = "unknown"
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

const defaultTimeout = 5 * time.Second

// Gateway is the dual-path persistence adapter: every operation first tries
// the remote backend, and on transport failure or a non-success response
// falls back to the local mirror, returning the fallback result as if the
// remote had answered. Profile syncs are fire-and-forget remotely and always
// land in the mirror.
//
// The gateway tracks an explicit online/offline mode. When connectivity
// returns, mirror records written while offline are pushed back through the
// sync endpoint; the remote never pushes to us, so remote-side changes still
// only reach a stale mirror when a later operation overwrites it.
type Gateway struct {
	baseURL       string
	httpClient    *http.Client
	local         *LocalStore
	adminEmail    string
	adminPassword string
	// demoCodes are the permanently valid codes the offline registry accepts.
	// Server-issued codes cannot be validated offline.
	demoCodes map[string]struct{}

	mu          sync.Mutex
	mode        Mode
	lastContact time.Time
}

// GatewayOptions carries the knobs the client binary sets from flags.
type GatewayOptions struct {
	BaseURL       string
	AdminEmail    string
	AdminPassword string
	DemoCodes     []string
	Timeout       time.Duration
}

func NewGateway(local *LocalStore, opts GatewayOptions) *Gateway {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	demo := make(map[string]struct{}, len(opts.DemoCodes))
	for _, code := range opts.DemoCodes {
		demo[code] = struct{}{}
	}
	return &Gateway{
		baseURL:       opts.BaseURL,
		httpClient:    &http.Client{Timeout: timeout},
		local:         local,
		adminEmail:    opts.AdminEmail,
		adminPassword: opts.AdminPassword,
		demoCodes:     demo,
		mode:          ModeUnknown,
	}
}

// Mode reports the current connectivity mode.
func (g *Gateway) Mode() Mode {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.mode
}

// Signup registers an account, remotely or in the mirror.
func (g *Gateway) Signup(ctx context.Context, name, email, password string) (models.UserProfile, error) {
	var resp userResponse
	err := g.post(ctx, "/api/auth/signup", map[string]string{
		"name": name, "email": email, "password": password,
	}, &resp)
	if err == nil {
		g.mirror(models.UserRecord{Email: email, Password: password, Profile: resp.User})
		return resp.User, nil
	}

	// Local fallback.
	if _, ok := g.local.FindUser(email); ok {
		return models.UserProfile{}, store.ErrAlreadyExists
	}
	record := models.UserRecord{
		Email:    email,
		Password: password,
		Profile:  models.DefaultProfile(name, email),
	}
	if err := g.local.UpsertUser(record); err != nil {
		return models.UserProfile{}, err
	}
	return record.Profile, nil
}

// Login authenticates. The admin principal is checked before any store
// lookup on both paths; an unreachable backend still yields an admin session.
func (g *Gateway) Login(ctx context.Context, email, password string) (models.UserProfile, error) {
	if email == g.adminEmail && password == g.adminPassword {
		var resp userResponse
		err := g.post(ctx, "/api/auth/login", map[string]string{
			"email": email, "password": password,
		}, &resp)
		if err == nil {
			return resp.User, nil
		}
		return models.UserProfile{Name: "Admin", Email: g.adminEmail, IsAdmin: true}, nil
	}

	var resp userResponse
	err := g.post(ctx, "/api/auth/login", map[string]string{
		"email": email, "password": password,
	}, &resp)
	if err == nil {
		g.mirror(models.UserRecord{Email: email, Password: password, Profile: resp.User})
		return resp.User, nil
	}

	record, ok := g.local.FindUser(email)
	if !ok || record.Password != password {
		return models.UserProfile{}, store.ErrInvalidCredentials
	}
	return record.Profile, nil
}

// SubmitPayment moves the account to pending review.
func (g *Gateway) SubmitPayment(ctx context.Context, email, transactionID string) (models.UserProfile, error) {
	var resp userResponse
	err := g.post(ctx, "/api/payment/submit", map[string]string{
		"email": email, "transactionId": transactionID,
	}, &resp)
	if err == nil {
		g.mirrorProfile(email, resp.User)
		return resp.User, nil
	}

	record, ok := g.local.FindUser(email)
	if !ok {
		return models.UserProfile{}, store.ErrNotFound
	}
	record.Profile.PaymentStatus = models.PaymentPending
	record.Profile.LastTransactionID = transactionID
	if err := g.local.UpsertUser(*record); err != nil {
		return models.UserProfile{}, err
	}
	return record.Profile, nil
}

// RedeemCode redeems a license code. Offline, only demo codes validate.
func (g *Gateway) RedeemCode(ctx context.Context, email, code string) (models.UserProfile, error) {
	var resp userResponse
	err := g.post(ctx, "/api/payment/redeem", map[string]string{
		"email": email, "code": code,
	}, &resp)
	if err == nil {
		g.mirrorProfile(email, resp.User)
		return resp.User, nil
	}

	record, ok := g.local.FindUser(email)
	if !ok {
		return models.UserProfile{}, store.ErrNotFound
	}
	if _, valid := g.demoCodes[code]; !valid {
		return models.UserProfile{}, store.ErrInvalidCode
	}
	record.Profile.IsPremium = true
	record.Profile.PaymentStatus = models.PaymentApproved
	if err := g.local.UpsertUser(*record); err != nil {
		return models.UserProfile{}, err
	}
	return record.Profile, nil
}

// SyncProfile pushes a profile patch. The remote attempt is best-effort and
// its failure is swallowed; the mirror write always happens.
func (g *Gateway) SyncProfile(ctx context.Context, email string, patch models.ProfilePatch) error {
	var resp successResponse
	if err := g.post(ctx, "/api/user/sync", map[string]any{
		"email": email, "profile": patch,
	}, &resp); err != nil {
		log.Printf("profile sync deferred: %v", err)
	}

	if record, ok := g.local.FindUser(email); ok {
		patch.Apply(&record.Profile)
		return g.local.UpsertUser(*record)
	}
	return nil
}

// AdminUsers lists accounts for the admin dashboard.
func (g *Gateway) AdminUsers(ctx context.Context) ([]models.AdminUserSummary, error) {
	var summaries []models.AdminUserSummary
	if err := g.get(ctx, "/api/admin/users", &summaries); err == nil {
		return summaries, nil
	}

	records := g.local.Users()
	summaries = make([]models.AdminUserSummary, 0, len(records))
	for i := range records {
		summaries = append(summaries, records[i].Summary())
	}
	return summaries, nil
}

// ApproveUser grants premium from the admin dashboard.
func (g *Gateway) ApproveUser(ctx context.Context, email string) error {
	var resp successResponse
	if err := g.post(ctx, "/api/admin/approve", map[string]string{"email": email}, &resp); err == nil {
		return nil
	}

	if record, ok := g.local.FindUser(email); ok {
		record.Profile.IsPremium = true
		record.Profile.PaymentStatus = models.PaymentApproved
		return g.local.UpsertUser(*record)
	}
	return nil
}

// AdminReviews lists pending payment reviews. The queue only exists on the
// server; there is nothing to fall back to offline.
func (g *Gateway) AdminReviews(ctx context.Context) ([]models.ReviewEntry, error) {
	var entries []models.ReviewEntry
	if err := g.get(ctx, "/api/admin/reviews", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

type userResponse struct {
	User models.UserProfile `json:"user"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("backend responded %d: %s", e.Status, e.Message)
}

// mirror upserts a full record into the local store, keeping the mirror
// eventually consistent with the last operation's outcome.
func (g *Gateway) mirror(record models.UserRecord) {
	if err := g.local.UpsertUser(record); err != nil {
		log.Printf("mirror write failed: %v", err)
	}
}

// mirrorProfile updates only the profile of an already-mirrored record; a
// record we never saw credentials for is not invented.
func (g *Gateway) mirrorProfile(email string, profile models.UserProfile) {
	record, ok := g.local.FindUser(email)
	if !ok {
		return
	}
	record.Profile = profile
	g.mirror(*record)
}

func (g *Gateway) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return g.do(req, out)
}

func (g *Gateway) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return err
	}
	return g.do(req, out)
}

func (g *Gateway) do(req *http.Request, out any) error {
	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.setMode(ModeOffline)
		return err
	}
	defer resp.Body.Close()

	// Any response means the backend is reachable, even an error one.
	g.setMode(ModeOnline)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return &apiError{Status: resp.StatusCode, Message: body.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (g *Gateway) setMode(mode Mode) {
	g.mu.Lock()
	previous := g.mode
	g.mode = mode
	var reconcileFrom time.Time
	reconcile := false
	if mode == ModeOnline {
		if previous == ModeOffline {
			reconcile = true
			reconcileFrom = g.lastContact
		}
		g.lastContact = time.Now()
	}
	g.mu.Unlock()

	if previous != mode {
		log.Printf("Switched to %s mode", mode)
	}
	if reconcile {
		g.reconcile(reconcileFrom)
	}
}

// reconcile pushes mirror records modified while offline back to the backend.
// Sync merges field-wise, so replaying is idempotent. Failures are left for
// the next reconnect.
func (g *Gateway) reconcile(since time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), g.httpClient.Timeout)
	defer cancel()

	for _, record := range g.local.Users() {
		if !record.UpdatedAt.After(since) {
			continue
		}
		var resp successResponse
		err := g.post(ctx, "/api/user/sync", map[string]any{
			"email":   record.Email,
			"profile": models.PatchFromProfile(record.Profile),
		}, &resp)
		if err != nil {
			log.Printf("reconcile for %s failed: %v", record.Email, err)
		}
	}
}
