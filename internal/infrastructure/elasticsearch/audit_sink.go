package elasticsearch

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	es "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/oksasatya/finance-tracker-api/internal/application"
)

const indexTimeout = 3 * time.Second

// NewClient creates an Elasticsearch client with sane defaults and optional basic auth.
func NewClient(addrs []string, username, password string) (*es.Client, error) {
	cfg := es.Config{
		Addresses: addrs,
		Username:  username,
		Password:  password,
		Transport: &http.Transport{
			MaxIdleConnsPerHost:   10,
			ResponseHeaderTimeout: 5 * time.Second,
			TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
			DialContext:           (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		},
	}
	return es.NewClient(cfg)
}

// AuditSink indexes audit events, one document per event.
type AuditSink struct {
	Client *es.Client
	Index  string
}

func NewAuditSink(client *es.Client, index string) *AuditSink {
	return &AuditSink{Client: client, Index: index}
}

func (s *AuditSink) Record(ctx context.Context, ev application.AuditEvent) error {
	if s == nil || s.Client == nil || s.Index == "" {
		return nil
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	c, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	req := esapi.IndexRequest{Index: s.Index, Body: bytes.NewReader(b), Refresh: "false"}
	res, err := req.Do(c, s.Client)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("index audit event: %s", res.Status())
	}
	return nil
}

var _ application.AuditSink = (*AuditSink)(nil)
