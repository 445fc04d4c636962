package secrets

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// mockSecretsClient implements Client for testing.
type mockSecretsClient struct {
	mu      sync.Mutex
	secrets map[string]string
	getErr  error
	calls   int
}

func newMockSecrets() *mockSecretsClient {
	return &mockSecretsClient{secrets: make(map[string]string)}
}

func (m *mockSecretsClient) GetSecretValue(_ context.Context, input *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.getErr != nil {
		return nil, m.getErr
	}
	s, ok := m.secrets[*input.SecretId]
	if !ok {
		return nil, &resourceNotFound{}
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(s)}, nil
}

type resourceNotFound struct{}

func (e *resourceNotFound) Error() string { return "ResourceNotFoundException" }

const scenarioSecret = `{"host":"h","port":"5433","dbname":"d","user":"u","pass":"p"}`

func TestExtractValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		key  string
		want string
	}{
		{"string", scenarioSecret, KeyHost, "h"},
		{"port as string", scenarioSecret, KeyPort, "5433"},
		{"port as number", `{"port":5433}`, KeyPort, "5433"},
		{"no trimming", `{"pass":"  spaced  "}`, KeyPassword, "  spaced  "},
		{"no double decoding", `{"pass":"\"quoted\""}`, KeyPassword, `"quoted"`},
		{"escaped json text", `{"user":"{\"a\":1}"}`, KeyUser, `{"a":1}`},
		{"boolean", `{"ssl":true}`, "ssl", "true"},
		{"null", `{"pass":null}`, KeyPassword, "null"},
		{"object", `{"opts":{"a":"b"}}`, "opts", ""},
		{"empty string", `{"pass":""}`, KeyPassword, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractValue(tt.raw, tt.key)
			if err != nil {
				t.Fatalf("extract: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractValue(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestExtractValueErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		key  string
	}{
		{"missing key", scenarioSecret, "password"},
		{"invalid json", `{"host":`, KeyHost},
		{"not an object", `["h"]`, KeyHost},
		{"empty document", ``, KeyHost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractValue(tt.raw, tt.key)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error = %v, want *ParseError", err)
			}
			if perr.Key != tt.key {
				t.Errorf("key = %q, want %q", perr.Key, tt.key)
			}
		})
	}
}

func TestFetchSecretString(t *testing.T) {
	m := newMockSecrets()
	m.secrets["db-secret"] = scenarioSecret

	raw, err := FetchSecretString(context.Background(), m, "db-secret")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if raw != scenarioSecret {
		t.Errorf("raw = %q, want %q", raw, scenarioSecret)
	}

	if _, err := FetchSecretString(context.Background(), m, "other"); err == nil {
		t.Error("expected error for unknown secret")
	}
}

func TestCacheLoadOnce(t *testing.T) {
	m := newMockSecrets()
	m.secrets["db-secret"] = scenarioSecret

	var regions []string
	c := NewCache(func(_ context.Context, region string) (Client, error) {
		regions = append(regions, region)
		return m, nil
	})

	b1, err := c.Load(context.Background(), "db-secret", "us-east-1")
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	m.secrets["db-secret"] = `{"host":"rotated"}`
	b2, err := c.Load(context.Background(), "db-secret", "us-east-1")
	if err != nil {
		t.Fatalf("second load: %v", err)
	}

	if b1 != b2 {
		t.Error("expected the same cached bundle")
	}
	if m.calls != 1 {
		t.Errorf("GetSecretValue calls = %d, want 1", m.calls)
	}
	if len(regions) != 1 || regions[0] != "us-east-1" {
		t.Errorf("regions = %v, want [us-east-1]", regions)
	}

	host, err := b2.Value(KeyHost)
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if host != "h" {
		t.Errorf("host = %q, want stale %q", host, "h")
	}
}

func TestCacheFetchErrorNotCached(t *testing.T) {
	m := newMockSecrets()
	m.getErr = errors.New("AccessDeniedException")
	c := NewCache(func(context.Context, string) (Client, error) { return m, nil })

	_, err := c.Load(context.Background(), "db-secret", "us-east-1")
	var ferr *FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("error = %v, want *FetchError", err)
	}
	if ferr.Name != "db-secret" || ferr.Region != "us-east-1" {
		t.Errorf("fetch error = %+v", ferr)
	}
	if c.Loaded() {
		t.Error("failed load should not populate the cache")
	}

	m.getErr = nil
	m.secrets["db-secret"] = scenarioSecret
	if _, err := c.Load(context.Background(), "db-secret", "us-east-1"); err != nil {
		t.Fatalf("retry load: %v", err)
	}
	if !c.Loaded() {
		t.Error("expected cache populated after successful load")
	}
}

func TestCacheClientFactoryError(t *testing.T) {
	c := NewCache(func(context.Context, string) (Client, error) {
		return nil, errors.New("no credentials")
	})

	_, err := c.Load(context.Background(), "db-secret", "us-east-1")
	var ferr *FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("error = %v, want *FetchError", err)
	}
}

func TestFetchNoSecretString(t *testing.T) {
	c := &binaryOnlyClient{}
	if _, err := FetchSecretString(context.Background(), c, "bin"); err == nil {
		t.Error("expected error for binary secret")
	}
}

type binaryOnlyClient struct{}

func (binaryOnlyClient) GetSecretValue(context.Context, *secretsmanager.GetSecretValueInput, ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	return &secretsmanager.GetSecretValueOutput{SecretBinary: []byte{0x01}}, nil
}
