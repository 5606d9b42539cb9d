package league

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// Repo identifies the GitHub repository holding the published tracker.
// The admin publishes updates through the contents API; read-only views
// (the player home) pull the raw file. Overwriting an existing object
// requires its current revision (the "sha"), fetched just before the put.
type Repo struct {
	OwnerRepo string // "owner/repo"
	Branch    string
	Path      string // path of the tracker within the repo
	Token     string

	// BaseURL and RawBaseURL override the GitHub endpoints, for tests.
	BaseURL    string
	RawBaseURL string
}

func (r *Repo) apiURL() string {
	base := r.BaseURL
	if base == "" {
		base = "https://api.github.com"
	}
	return fmt.Sprintf("%s/repos/%s/contents/%s", base, r.OwnerRepo, r.Path)
}

func (r *Repo) rawURL() string {
	base := r.RawBaseURL
	if base == "" {
		base = "https://raw.githubusercontent.com"
	}
	return fmt.Sprintf("%s/%s/%s/%s", base, r.OwnerRepo, r.Branch, r.Path)
}

func (r *Repo) auth(req *http.Request) {
	if r.Token != "" {
		req.Header.Set("Authorization", "token "+r.Token)
	}
}

// Fetch downloads the published tracker bytes. Errors are surfaced
// verbatim with the underlying status; there is no automatic retry.
func (r *Repo) Fetch() ([]byte, error) {
	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Get(r.rawURL())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot fetch %v: %v", r.rawURL(), resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// sha returns the current revision of the published object, or "" when
// the object does not exist yet.
func (r *Repo) sha(client *http.Client) string {
	req, err := http.NewRequest(http.MethodGet, r.apiURL()+"?ref="+url.QueryEscape(r.Branch), nil)
	if err != nil {
		return ""
	}
	r.auth(req)
	resp, err := client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ""
	}
	var jobj any
	if err := json.NewDecoder(resp.Body).Decode(&jobj); err != nil {
		return ""
	}
	jval, err := jsonpath.Get("$.sha", jobj)
	if err != nil {
		return ""
	}
	s, _ := jval.(string)
	return s
}

// Publish uploads the tracker through the contents API, reusing the
// current revision when the file already exists. A non-2xx response is
// returned to the caller with the API's own message; never retried.
func (r *Repo) Publish(content []byte, message string) error {
	client := &http.Client{Timeout: 30 * time.Second}
	payload := map[string]any{
		"message": message,
		"content": base64.StdEncoding.EncodeToString(content),
		"branch":  r.Branch,
	}
	if sha := r.sha(client); sha != "" {
		payload["sha"] = sha
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPut, r.apiURL(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	r.auth(req)
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("github api: %v: %v", resp.Status, strings.TrimSpace(string(msg)))
	}
	return nil
}

// Ping fires the cache-busting refresh GET that tells the player home to
// reload its tracker. The returned error is for the caller to log;
// a failed ping is never fatal.
func Ping(playerURL string) error {
	u := strings.TrimRight(playerURL, "/") + "/?refresh=" + strconv.FormatInt(time.Now().Unix(), 10)
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(u)
	if err != nil {
		return err
	}
	resp.Body.Close()
	log.Printf("ping %v/%v %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	return nil
}
