// Package secrets reads the database credential bundle from AWS Secrets Manager.
package secrets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/pkg/errors"
)

// Keys read from the secret JSON document.
const (
	KeyHost     = "host"
	KeyPort     = "port"
	KeyDBName   = "dbname"
	KeyUser     = "user"
	KeyPassword = "pass"
)

// Client is the subset of *secretsmanager.Client used here.
type Client interface {
	GetSecretValue(ctx context.Context, input *secretsmanager.GetSecretValueInput, opts ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// FetchError reports that the secret store could not be read.
type FetchError struct {
	Name   string
	Region string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch secret %s (%s): %v", e.Name, e.Region, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError reports a secret document that is not JSON or lacks a key.
type ParseError struct {
	Key string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse secret key %q: %v", e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewClient builds a Secrets Manager client for region using the default
// AWS credential chain.
func NewClient(ctx context.Context, region string) (Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}
	return secretsmanager.NewFromConfig(cfg), nil
}

// FetchSecretString returns the raw string value of the named secret.
func FetchSecretString(ctx context.Context, client Client, name string) (string, error) {
	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		return "", errors.Wrap(err, "get secret value")
	}
	if out.SecretString == nil {
		return "", errors.New("secret has no string value")
	}
	return *out.SecretString, nil
}

// ExtractValue returns the value stored under key in the JSON object raw.
// String values are returned decoded and untrimmed; other scalars are returned
// as their JSON text, and objects or arrays as the empty string.
func ExtractValue(raw, key string) (string, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return "", &ParseError{Key: key, Err: errors.Wrap(err, "decode secret json")}
	}

	v, ok := doc[key]
	if !ok {
		return "", &ParseError{Key: key, Err: errors.New("key not present")}
	}

	v = bytes.TrimSpace(v)
	switch {
	case len(v) > 0 && v[0] == '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return "", &ParseError{Key: key, Err: errors.Wrap(err, "decode string value")}
		}
		return s, nil
	case len(v) > 0 && (v[0] == '{' || v[0] == '['):
		return "", nil
	default:
		return string(v), nil
	}
}

// Bundle is one fetched secret document. Values are re-parsed from the raw
// JSON on every lookup.
type Bundle struct {
	raw string
}

func NewBundle(raw string) *Bundle {
	return &Bundle{raw: raw}
}

// Value returns the value for key, see ExtractValue.
func (b *Bundle) Value(key string) (string, error) {
	return ExtractValue(b.raw, key)
}
