package chain

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"chainmaker.org/chainmaker/pb-go/v2/common"
	sdk "chainmaker.org/chainmaker/sdk-go/v2"
)

// Config holds the ChainMaker connection and contract settings.
type Config struct {
	ChainID string `yaml:"chain_id" env:"CHAIN_ID"`
	OrgID   string `yaml:"org_id" env:"CHAIN_ORG_ID"`

	UserKeyPath      string `yaml:"user_key_path" env:"CHAIN_USER_KEY_PATH"`
	UserCertPath     string `yaml:"user_cert_path" env:"CHAIN_USER_CERT_PATH"`
	UserSignKeyPath  string `yaml:"user_sign_key_path" env:"CHAIN_USER_SIGN_KEY_PATH"`
	UserSignCertPath string `yaml:"user_sign_cert_path" env:"CHAIN_USER_SIGN_CERT_PATH"`

	NodeAddr      string   `yaml:"node_addr" env:"CHAIN_NODE_ADDR"`
	NodeConnCount int      `yaml:"node_conn_count" env:"CHAIN_NODE_CONN_COUNT" env-default:"5"`
	UseTLS        bool     `yaml:"use_tls" env:"CHAIN_USE_TLS" env-default:"false"`
	TLSHostName   string   `yaml:"tls_host_name" env:"CHAIN_TLS_HOST_NAME"`
	CAPaths       []string `yaml:"ca_paths" env:"CHAIN_CA_PATHS"`

	ContractName     string `yaml:"contract_name" env:"CHAIN_CONTRACT_NAME" env-default:"readify"`
	SubmitMethod     string `yaml:"submit_method" env:"CHAIN_SUBMIT_METHOD" env-default:"submitSummary"`
	MintMethod       string `yaml:"mint_method" env:"CHAIN_MINT_METHOD" env-default:"approveAndReward"`
	SubmitEventTopic string `yaml:"submit_event_topic" env:"CHAIN_SUBMIT_EVENT_TOPIC" env-default:"SummarySubmitted"`

	RetryLimit    int `yaml:"retry_limit" env:"CHAIN_RETRY_LIMIT" env-default:"20"`
	RetryInterval int `yaml:"retry_interval_ms" env:"CHAIN_RETRY_INTERVAL_MS" env-default:"500"`
}

// Validate checks that the fields without usable defaults are set.
func (c Config) Validate() error {
	if c.ChainID == "" {
		return fmt.Errorf("chain: chain_id is required")
	}
	if c.OrgID == "" {
		return fmt.Errorf("chain: org_id is required")
	}
	if c.NodeAddr == "" {
		return fmt.Errorf("chain: node_addr is required")
	}
	if c.UseTLS && len(c.CAPaths) == 0 {
		return fmt.Errorf("chain: use_tls requires ca_paths")
	}
	return nil
}

// invoker is the slice of the SDK client the ledger code uses.
type invoker interface {
	InvokeContract(contractName, method, txId string, kvs []*common.KeyValuePair, timeout int64, withSyncResult bool) (*common.TxResponse, error)
	Stop() error
}

// Client records submissions and mints rewards through a ChainMaker contract.
type Client struct {
	cc  invoker
	cfg Config
	log *slog.Logger

	// The signing identity carries chain-side sequencing state, so
	// invocations are serialized.
	mu sync.Mutex
}

// New dials the ChainMaker node and returns a ready ledger client.
func New(cfg Config, log *slog.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []sdk.ChainClientOption{
		sdk.WithChainClientOrgId(cfg.OrgID),
		sdk.WithChainClientChainId(cfg.ChainID),
		sdk.WithUserKeyFilePath(cfg.UserKeyPath),
		sdk.WithUserCrtFilePath(cfg.UserCertPath),
		sdk.WithUserSignKeyFilePath(cfg.UserSignKeyPath),
		sdk.WithUserSignCrtFilePath(cfg.UserSignCertPath),
		sdk.AddChainClientNodeConfig(sdk.NewNodeConfig(
			sdk.WithNodeAddr(cfg.NodeAddr),
			sdk.WithNodeConnCnt(cfg.NodeConnCount),
			sdk.WithNodeUseTLS(cfg.UseTLS),
			sdk.WithNodeCAPaths(cfg.CAPaths),
			sdk.WithNodeTLSHostName(cfg.TLSHostName),
		)),
	}
	if cfg.RetryLimit > 0 {
		opts = append(opts, sdk.WithRetryLimit(cfg.RetryLimit))
	}
	if cfg.RetryInterval > 0 {
		opts = append(opts, sdk.WithRetryInterval(cfg.RetryInterval))
	}

	cc, err := sdk.NewChainClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("chain: build client: %w", err)
	}

	log.Info("chain client connected", "node", cfg.NodeAddr, "contract", cfg.ContractName)

	return &Client{
		cc:  cc,
		cfg: cfg,
		log: log.With("component", "chain"),
	}, nil
}

// Close stops the underlying SDK client.
func (c *Client) Close() error {
	if err := c.cc.Stop(); err != nil {
		return fmt.Errorf("chain: stop client: %w", err)
	}
	return nil
}

// RecordSubmission anchors a reading-log submission on chain. It returns the
// contract-assigned submission index decoded from the emitted event, which
// keys later reward settlement, and the committed transaction ID.
func (c *Client) RecordSubmission(ctx context.Context, userName, title, fingerprint string, durationMinutes int) (int64, string, error) {
	kvs := []*common.KeyValuePair{
		{Key: "name", Value: []byte(userName)},
		{Key: "title", Value: []byte(title)},
		{Key: "hash", Value: []byte(fingerprint)},
		{Key: "duration", Value: []byte(strconv.Itoa(durationMinutes))},
	}

	resp, err := c.invoke(ctx, c.cfg.SubmitMethod, kvs)
	if err != nil {
		return 0, "", err
	}

	index, err := submissionIndex(resp, c.cfg.SubmitEventTopic)
	if err != nil {
		c.log.Error("submission committed but event unreadable", "tx_id", resp.TxId, "error", err)
		return 0, "", fmt.Errorf("tx %s: %v: %w", resp.TxId, err, ErrEventMissing)
	}

	c.log.Info("submission recorded", "tx_id", resp.TxId, "index", index)

	return index, resp.TxId, nil
}

// MintReward transfers amount tokens to wallet for the submission at index
// and returns the committed transaction ID.
func (c *Client) MintReward(ctx context.Context, wallet string, index int64, amount int64) (string, error) {
	kvs := []*common.KeyValuePair{
		{Key: "wallet", Value: []byte(wallet)},
		{Key: "index", Value: []byte(strconv.FormatInt(index, 10))},
		{Key: "amount", Value: []byte(strconv.FormatInt(amount, 10))},
	}

	resp, err := c.invoke(ctx, c.cfg.MintMethod, kvs)
	if err != nil {
		return "", err
	}

	c.log.Info("reward minted", "tx_id", resp.TxId, "wallet", wallet, "amount", amount)

	return resp.TxId, nil
}

func (c *Client) invoke(ctx context.Context, method string, kvs []*common.KeyValuePair) (*common.TxResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", method, err, ErrUnavailable)
	}

	resp, err := c.cc.InvokeContract(c.cfg.ContractName, method, "", kvs, -1, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", method, err, ErrUnavailable)
	}
	if resp.Code != common.TxStatusCode_SUCCESS {
		return nil, fmt.Errorf("%s: %s (code %d): %w", method, resp.Message, resp.Code, ErrRejected)
	}

	return resp, nil
}

// submissionIndex decodes the submission index from the contract event.
// The event data is [wallet, index]; extra trailing fields are tolerated.
func submissionIndex(resp *common.TxResponse, topic string) (int64, error) {
	if resp.ContractResult == nil {
		return 0, fmt.Errorf("nil contract result")
	}

	for _, ev := range resp.ContractResult.ContractEvent {
		if ev.Topic != topic {
			continue
		}
		if len(ev.EventData) < 2 {
			return 0, fmt.Errorf("event %q: expected at least 2 fields, got %d", topic, len(ev.EventData))
		}
		index, err := strconv.ParseInt(ev.EventData[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("event %q: parse index %q: %v", topic, ev.EventData[1], err)
		}
		return index, nil
	}

	return 0, fmt.Errorf("event %q not found", topic)
}
