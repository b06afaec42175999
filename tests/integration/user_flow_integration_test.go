//go:build integration

package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"os"
	"strings"
	"testing"
	"time"
)

func baseURL() string {
	if v := os.Getenv("PYTRAIL_TEST_BASE_URL"); strings.TrimSpace(v) != "" {
		return strings.TrimRight(v, "/")
	}
	return "http://127.0.0.1:8080"
}

func TestStudentJourneyIntegration(t *testing.T) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	client := &http.Client{Timeout: 5 * time.Second, Jar: jar}
	base := baseURL()

	username := fmt.Sprintf("student_%d", time.Now().UnixNano())
	email := username + "@example.com"
	password := "secret1"

	var registered struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
	}
	doPost(t, client, base+"/api/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, &registered)
	if registered.ID == 0 || registered.Username != username {
		t.Fatalf("unexpected register response: %+v", registered)
	}

	// duplicate registration is rejected as a client error
	resp := rawPost(t, client, base+"/api/auth/register", map[string]string{
		"username": username,
		"email":    "other_" + email,
		"password": password,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	var me struct {
		Username string `json:"username"`
	}
	doGet(t, client, base+"/api/auth/me", &me)
	if me.Username != username {
		t.Fatalf("me returned %q, want %q", me.Username, username)
	}

	var modules []struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	}
	doGet(t, client, base+"/api/modules", &modules)
	if len(modules) == 0 {
		t.Fatalf("expected a non-empty module catalog")
	}

	doPost(t, client, base+"/api/progress", map[string]any{
		"moduleId":  modules[0].ID,
		"completed": true,
		"score":     100,
		"timeSpent": 120,
	}, nil)

	var progress []struct {
		ModuleID    int    `json:"module_id"`
		ModuleTitle string `json:"module_title"`
		Score       int    `json:"score"`
	}
	doGet(t, client, base+"/api/progress", &progress)
	if len(progress) != 1 || progress[0].Score != 100 {
		t.Fatalf("unexpected progress rows: %+v", progress)
	}
	if progress[0].ModuleTitle != modules[0].Title {
		t.Fatalf("progress title %q, want %q", progress[0].ModuleTitle, modules[0].Title)
	}

	doPost(t, client, base+"/api/auth/logout", map[string]string{}, nil)

	resp = rawGet(t, client, base+"/api/auth/me")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("me after logout: expected 401, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func doPost(t *testing.T, client *http.Client, url string, body any, out any) {
	t.Helper()
	resp := rawPost(t, client, url, body)
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		t.Fatalf("unexpected status %d for %s: %s", resp.StatusCode, url, string(data))
	}
	decode(t, resp, url, out)
}

func doGet(t *testing.T, client *http.Client, url string, out any) {
	t.Helper()
	resp := rawGet(t, client, url)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		t.Fatalf("unexpected status %d for %s: %s", resp.StatusCode, url, string(data))
	}
	decode(t, resp, url, out)
}

func rawPost(t *testing.T, client *http.Client, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("http post %s failed: %v", url, err)
	}
	return resp
}

func rawGet(t *testing.T, client *http.Client, url string) *http.Response {
	t.Helper()
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("http get %s failed: %v", url, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, url string, out any) {
	t.Helper()
	if out == nil {
		return
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		t.Fatalf("decode response from %s: %v", url, err)
	}
}
