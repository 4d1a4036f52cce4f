package lockclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SystemBuilders/ringlist/internal/cache"
	"github.com/SystemBuilders/ringlist/internal/lockclient/session"
	"github.com/SystemBuilders/ringlist/internal/lockservice"
	"github.com/oklog/ulid"
	"github.com/rs/zerolog"
)

var _ Client = (*SimpleClient)(nil)

// SimpleClient implements Client, the lockclient for the lockservice.
//
// It remembers the locks it has acquired in an LRU cache so that
// acquiring a lock it already holds fails without a round trip.
// Descriptors without an owner are sent with the client's session ID.
type SimpleClient struct {
	config  lockservice.Config
	cache   *cache.LRUCache
	session session.Session
	http    *http.Client
	log     zerolog.Logger
}

// NewSimpleClient returns a new SimpleClient for the lockservice at cfg.
func NewSimpleClient(cfg lockservice.Config, lru *cache.LRUCache, log zerolog.Logger) *SimpleClient {
	return &SimpleClient{
		config:  cfg,
		cache:   lru,
		session: session.New(),
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// Session returns the session the client identifies itself with.
func (sc *SimpleClient) Session() session.Session {
	return sc.session
}

// Acquire makes a HTTP call to the lockserver and acquires the lock.
func (sc *SimpleClient) Acquire(d lockservice.Descriptors) error {
	owner := sc.owner(d)
	if cached, err := sc.cache.GetElement(d.ID()); err == nil && cached == owner {
		sc.
			log.
			Debug().
			Str("descriptor", d.ID()).
			Msg("already held, served from cache")
		return lockservice.ErrFileAcquired
	}

	req := lockservice.LockRequest{FileID: d.ID(), UserID: owner}
	if _, err := sc.post("/acquire", req); err != nil {
		return err
	}

	// A stale entry for another owner is replaced.
	if err := sc.cache.RemoveElement(d.ID()); err != nil && err != cache.ErrElementDoesntExist {
		return err
	}
	return sc.cache.PutElement(d.ID(), owner)
}

// Release makes a HTTP call to the lockserver and releases the lock.
func (sc *SimpleClient) Release(d lockservice.Descriptors) error {
	req := lockservice.LockRequest{FileID: d.ID(), UserID: sc.owner(d)}
	if _, err := sc.post("/release", req); err != nil {
		return err
	}

	if err := sc.cache.RemoveElement(d.ID()); err != nil && err != cache.ErrElementDoesntExist {
		return err
	}
	return nil
}

// CheckAcquired asks the lockserver for the owner of the lock.
func (sc *SimpleClient) CheckAcquired(d lockservice.Descriptors) (string, error) {
	body, err := sc.post("/checkacquire", lockservice.LockRequest{FileID: d.ID()})
	if err != nil {
		return "", err
	}

	var res lockservice.CheckAcquireRes
	if err := json.Unmarshal(body, &res); err != nil {
		return "", fmt.Errorf("decode check acquire: %w", err)
	}
	return res.Owner, nil
}

// Pounce queues the owner of d on the lock of d.
func (sc *SimpleClient) Pounce(d lockservice.Descriptors, priority uint) (ulid.ULID, error) {
	req := lockservice.PounceRequest{FileID: d.ID(), UserID: sc.owner(d), Priority: priority}
	body, err := sc.post("/pounce", req)
	if err != nil {
		return ulid.ULID{}, err
	}

	var res lockservice.PounceResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return ulid.ULID{}, fmt.Errorf("decode pounce: %w", err)
	}
	return res.ID, nil
}

// Withdraw takes the pouncer id off the queue of d.
func (sc *SimpleClient) Withdraw(d lockservice.Descriptors, id ulid.ULID) error {
	_, err := sc.post("/withdraw", lockservice.WithdrawRequest{FileID: d.ID(), ID: id})
	return err
}

// Pouncers returns the owners queued on d in serving order.
func (sc *SimpleClient) Pouncers(d lockservice.Descriptors) ([]string, error) {
	body, err := sc.post("/pouncers", lockservice.LockRequest{FileID: d.ID()})
	if err != nil {
		return nil, err
	}

	var owners []string
	if err := json.Unmarshal(body, &owners); err != nil {
		return nil, fmt.Errorf("decode pouncers: %w", err)
	}
	return owners, nil
}

func (sc *SimpleClient) owner(d lockservice.Descriptors) string {
	if d.Owner() != "" {
		return d.Owner()
	}
	return sc.session.ClientID().String()
}

// post sends v as JSON to the endpoint and returns the response body.
// Errors reported by the lockservice are returned as lockservice.Error.
func (sc *SimpleClient) post(endpoint string, v interface{}) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	url := "http://" + sc.config.IP() + ":" + sc.config.Port() + endpoint
	resp, err := sc.http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", endpoint, err)
	}
	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	msg := strings.TrimSpace(string(body))
	if e, ok := lockservice.ParseError(msg); ok {
		return nil, e
	}
	sc.
		log.
		Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Str("body", msg).
		Msg("unexpected response")
	return nil, fmt.Errorf("%w: %s %s", ErrUnexpectedResponse, resp.Status, msg)
}
