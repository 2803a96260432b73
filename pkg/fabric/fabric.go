package fabric

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/cuemby/warren/pkg/log"
	"github.com/cuemby/warren/pkg/metrics"
	"github.com/cuemby/warren/pkg/security"
	"github.com/cuemby/warren/pkg/types"
	"github.com/quic-go/quic-go"
	"github.com/rs/zerolog"
)

// Sentinel errors for the fabric failure modes.
var (
	ErrServiceDiscoveryFailed = errors.New("fabric: service discovery failed")
	ErrSendFailed             = errors.New("fabric: send failed")
)

// DefaultTTL is how long a peer-announced registry entry (service or
// node) is trusted before it is dropped, absent a refreshing heartbeat.
// It intentionally matches the cluster manager's heartbeat failure window
// so the two timeouts move together.
const DefaultTTL = 30 * time.Second

// ALPN is the QUIC/TLS application protocol fabric connections negotiate.
const ALPN = "warren-fabric/1"

// frame kinds, see writeFrame/readFrame.
const (
	frameAnnounce        byte = 1
	frameResolveRequest  byte = 2
	frameResolveResponse byte = 3
	frameAppData         byte = 4
)

// NodeInfo is a peer's address as known to this node's registry.
type NodeInfo struct {
	NodeID  string
	Address string
	Port    int
}

func (n NodeInfo) addr() string { return fmt.Sprintf("%s:%d", n.Address, n.Port) }

type serviceRecord struct {
	endpoint  types.ServiceEndpoint
	expiresAt time.Time // zero for locally-owned services: they never expire
}

type peerRecord struct {
	info      NodeInfo
	expiresAt time.Time
}

// Config configures a Fabric node.
type Config struct {
	NodeID      string
	BindAddress string
	Domain      string // used to build canonical resolution forms
	Cert        tls.Certificate
	CAPool      *x509.CertPool
}

// Fabric is one node's network transport, service registry, and name
// resolver. Node-to-node traffic is QUIC with TLS 1.3 mutual
// authentication; each registered service may carry its own 32-byte
// symmetric key, used to encrypt application payloads addressed to it.
type Fabric struct {
	cfg Config

	listener *quic.Listener

	mu       sync.RWMutex
	services map[string]*serviceRecord // locally-owned, keyed by name
	remote   map[string]*serviceRecord // resolved-via-peer cache, keyed by name
	peers    map[string]*peerRecord    // keyed by NodeID

	connMu sync.Mutex
	conns  map[string]*peerConn // keyed by "address:port"

	onMessage func(service string, payload []byte)

	logger zerolog.Logger

	closeOnce sync.Once
	done      chan struct{}
}

type peerConn struct {
	conn   *quic.Conn
	mu     sync.Mutex // serializes writes on the shared ordered stream
	stream *quic.Stream
}

// New creates a Fabric node. Listen must be called separately to start
// accepting inbound connections.
func New(cfg Config) *Fabric {
	return &Fabric{
		cfg:      cfg,
		services: make(map[string]*serviceRecord),
		remote:   make(map[string]*serviceRecord),
		peers:    make(map[string]*peerRecord),
		conns:    make(map[string]*peerConn),
		logger:   log.WithComponent("fabric"),
		done:     make(chan struct{}),
	}
}

// OnMessage registers the callback invoked for every decrypted
// application message addressed to a locally-registered service.
func (f *Fabric) OnMessage(handler func(service string, payload []byte)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onMessage = handler
}

// Listen binds the QUIC listener and starts accepting peer connections
// until ctx is cancelled or Close is called.
func (f *Fabric) Listen(ctx context.Context) error {
	tlsConf := &tls.Config{
		Certificates: []tls.Certificate{f.cfg.Cert},
		ClientCAs:    f.cfg.CAPool,
		ClientAuth:   tls.RequireAndVerifyClientCert,
		MinVersion:   tls.VersionTLS13,
		NextProtos:   []string{ALPN},
	}

	ln, err := quic.ListenAddr(f.cfg.BindAddress, tlsConf, nil)
	if err != nil {
		return fmt.Errorf("fabric: listen on %s: %w", f.cfg.BindAddress, err)
	}
	f.listener = ln

	go f.acceptLoop(ctx)
	go f.reapLoop(ctx)

	f.logger.Info().Str("node_id", f.cfg.NodeID).Str("addr", f.cfg.BindAddress).Msg("fabric listening")
	return nil
}

// Close stops accepting connections and tears down every cached outbound
// connection.
func (f *Fabric) Close() error {
	f.closeOnce.Do(func() {
		close(f.done)
		if f.listener != nil {
			_ = f.listener.Close()
		}
		f.connMu.Lock()
		for addr, pc := range f.conns {
			_ = pc.conn.CloseWithError(0, "fabric closing")
			delete(f.conns, addr)
		}
		f.connMu.Unlock()
	})
	return nil
}

func (f *Fabric) acceptLoop(ctx context.Context) {
	for {
		conn, err := f.listener.Accept(ctx)
		if err != nil {
			select {
			case <-f.done:
				return
			case <-ctx.Done():
				return
			default:
				f.logger.Warn().Err(err).Msg("fabric accept failed")
				return
			}
		}
		metrics.FabricConnectionsTotal.Inc()
		go f.handleConn(ctx, conn)
	}
}

func (f *Fabric) handleConn(ctx context.Context, conn *quic.Conn) {
	defer metrics.FabricConnectionsTotal.Dec()
	for {
		stream, err := conn.AcceptStream(ctx)
		if err != nil {
			return
		}
		go f.handleStream(stream)
	}
}

// handleStream reads every frame off a single stream until it closes or
// errors, dispatching each to the matching handler. One peer's ordered
// application-data stream and its occasional control requests both flow
// through here.
func (f *Fabric) handleStream(stream *quic.Stream) {
	for {
		kind, payload, err := readFrame(stream)
		if err != nil {
			return
		}
		switch kind {
		case frameAnnounce:
			f.handleAnnounce(payload)
		case frameResolveRequest:
			f.handleResolveRequest(stream, payload)
		case frameAppData:
			f.handleAppData(payload)
		default:
			f.logger.Warn().Int("kind", int(kind)).Msg("fabric: unknown frame kind")
		}
	}
}

// announcePayload is the wire shape of a frameAnnounce: one node telling
// a peer about its identity and the services it owns locally.
type announcePayload struct {
	Node     NodeInfo
	Services []types.ServiceEndpoint
}

func (f *Fabric) handleAnnounce(payload []byte) {
	var a announcePayload
	if err := json.Unmarshal(payload, &a); err != nil {
		f.logger.Warn().Err(err).Msg("fabric: malformed announce")
		return
	}

	expiry := time.Now().Add(DefaultTTL)
	f.mu.Lock()
	f.peers[a.Node.NodeID] = &peerRecord{info: a.Node, expiresAt: expiry}
	for _, ep := range a.Services {
		f.remote[ep.Name] = &serviceRecord{endpoint: ep, expiresAt: expiry}
	}
	f.mu.Unlock()
}

func (f *Fabric) handleResolveRequest(stream *quic.Stream, payload []byte) {
	name := string(payload)
	ep, ok := f.lookupLocal(name)

	var respPayload []byte
	if ok {
		respPayload, _ = json.Marshal(ep)
	}
	if err := writeFrame(stream, frameResolveResponse, respPayload); err != nil {
		f.logger.Warn().Err(err).Str("service", name).Msg("fabric: resolve response write failed")
	}
}

type appDataPayload struct {
	Service    string
	Ciphertext []byte
}

func (f *Fabric) handleAppData(payload []byte) {
	var msg appDataPayload
	if err := json.Unmarshal(payload, &msg); err != nil {
		f.logger.Warn().Err(err).Msg("fabric: malformed app data")
		return
	}

	f.mu.RLock()
	rec, ok := f.services[msg.Service]
	handler := f.onMessage
	f.mu.RUnlock()
	if !ok || handler == nil {
		return
	}

	plaintext := msg.Ciphertext
	if len(rec.endpoint.EncryptionKey) == 32 {
		sm, err := security.NewSecretsManager(rec.endpoint.EncryptionKey)
		if err != nil {
			f.logger.Warn().Err(err).Str("service", msg.Service).Msg("fabric: bad service key")
			return
		}
		plaintext, err = sm.DecryptSecret(msg.Ciphertext)
		if err != nil {
			f.logger.Warn().Err(err).Str("service", msg.Service).Msg("fabric: decrypt failed")
			return
		}
	}
	handler(msg.Service, plaintext)
}

// RegisterService publishes name/endpoint as locally owned: it never
// expires on this node and is included in every subsequent Announce.
func (f *Fabric) RegisterService(name string, endpoint types.ServiceEndpoint) {
	f.mu.Lock()
	defer f.mu.Unlock()
	endpoint.Name = name
	f.services[name] = &serviceRecord{endpoint: endpoint}
}

// DeregisterService removes a locally owned service.
func (f *Fabric) DeregisterService(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.services, name)
}

// AddPeer seeds the peer registry directly (e.g. from the cluster
// manager's membership list), ahead of any announcement.
func (f *Fabric) AddPeer(info NodeInfo) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.peers[info.NodeID] = &peerRecord{info: info, expiresAt: time.Now().Add(DefaultTTL)}
}

// Announce sends this node's identity and locally-owned services to
// every known peer. Called periodically as this node's heartbeat so peer
// registry entries stay refreshed.
func (f *Fabric) Announce(ctx context.Context) {
	f.mu.RLock()
	services := make([]types.ServiceEndpoint, 0, len(f.services))
	for _, rec := range f.services {
		services = append(services, rec.endpoint)
	}
	peers := make([]peerRecord, 0, len(f.peers))
	for _, p := range f.peers {
		peers = append(peers, *p)
	}
	f.mu.RUnlock()

	payload, err := json.Marshal(announcePayload{
		Node:     NodeInfo{NodeID: f.cfg.NodeID, Address: hostOf(f.cfg.BindAddress), Port: portOf(f.cfg.BindAddress)},
		Services: services,
	})
	if err != nil {
		f.logger.Warn().Err(err).Msg("fabric: announce marshal failed")
		return
	}

	for _, p := range peers {
		pc, err := f.connFor(ctx, p.info.addr())
		if err != nil {
			continue
		}
		stream, err := pc.conn.OpenStreamSync(ctx)
		if err != nil {
			continue
		}
		_ = writeFrame(stream, frameAnnounce, payload)
		_ = stream.Close()
	}
}

// Resolve looks a service up in order: local registry, the
// canonical name forms, then a remote query across known peers.
func (f *Fabric) Resolve(ctx context.Context, name string) (*types.ServiceEndpoint, error) {
	if ep, ok := f.lookupLocal(name); ok {
		return &ep, nil
	}
	for _, form := range canonicalForms(name, f.cfg.Domain) {
		if ep, ok := f.lookupLocal(form); ok {
			return &ep, nil
		}
	}

	if ep, err := f.queryPeers(ctx, name); err == nil {
		return ep, nil
	}

	metrics.ServiceDiscoveryFailures.Inc()
	return nil, fmt.Errorf("%w: %s", ErrServiceDiscoveryFailed, name)
}

// canonicalForms returns the family of canonical resolution forms:
// "<name>.<domain>" and the DNS-SD-style
// "_app._transport.<name>.<domain>".
func canonicalForms(name, domain string) []string {
	if domain == "" {
		return nil
	}
	return []string{
		fmt.Sprintf("%s.%s", name, domain),
		fmt.Sprintf("_app._tcp.%s.%s", name, domain),
	}
}

// lookupLocal checks the owned-service map, then the peer-announced
// cache, honoring TTL on the latter.
func (f *Fabric) lookupLocal(name string) (types.ServiceEndpoint, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if rec, ok := f.services[name]; ok {
		return rec.endpoint, true
	}
	if rec, ok := f.remote[name]; ok && time.Now().Before(rec.expiresAt) {
		return rec.endpoint, true
	}
	return types.ServiceEndpoint{}, false
}

// queryPeers asks every known peer, in registry order, whether it owns
// name locally, returning the first hit and caching it with DefaultTTL.
func (f *Fabric) queryPeers(ctx context.Context, name string) (*types.ServiceEndpoint, error) {
	f.mu.RLock()
	peers := make([]peerRecord, 0, len(f.peers))
	for _, p := range f.peers {
		peers = append(peers, *p)
	}
	f.mu.RUnlock()

	for _, p := range peers {
		ep, err := f.resolveViaPeer(ctx, p.info, name)
		if err != nil || ep == nil {
			continue
		}
		f.mu.Lock()
		f.remote[name] = &serviceRecord{endpoint: *ep, expiresAt: time.Now().Add(DefaultTTL)}
		f.mu.Unlock()
		return ep, nil
	}
	return nil, ErrServiceDiscoveryFailed
}

func (f *Fabric) resolveViaPeer(ctx context.Context, peer NodeInfo, name string) (*types.ServiceEndpoint, error) {
	pc, err := f.connFor(ctx, peer.addr())
	if err != nil {
		return nil, err
	}

	stream, err := pc.conn.OpenStreamSync(ctx)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	if err := writeFrame(stream, frameResolveRequest, []byte(name)); err != nil {
		return nil, err
	}

	kind, payload, err := readFrame(stream)
	if err != nil {
		return nil, err
	}
	if kind != frameResolveResponse || len(payload) == 0 {
		return nil, ErrServiceDiscoveryFailed
	}

	var ep types.ServiceEndpoint
	if err := json.Unmarshal(payload, &ep); err != nil {
		return nil, err
	}
	return &ep, nil
}

// Send encrypts payload with the target service's symmetric key (if it
// has one) and delivers it over a single ordered stream to the node that
// owns the service per-connection ordering guarantee.
// Failures are returned directly; Send never retries.
func (f *Fabric) Send(ctx context.Context, serviceName string, payload []byte) error {
	ep, err := f.Resolve(ctx, serviceName)
	if err != nil {
		return err
	}

	body := payload
	if len(ep.EncryptionKey) == 32 {
		sm, err := security.NewSecretsManager(ep.EncryptionKey)
		if err != nil {
			metrics.FabricSendFailures.Inc()
			return fmt.Errorf("%w: %v", ErrSendFailed, err)
		}
		body, err = sm.EncryptSecret(payload)
		if err != nil {
			metrics.FabricSendFailures.Inc()
			return fmt.Errorf("%w: %v", ErrSendFailed, err)
		}
	}

	framePayload, err := json.Marshal(appDataPayload{Service: serviceName, Ciphertext: body})
	if err != nil {
		metrics.FabricSendFailures.Inc()
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	addr := fmt.Sprintf("%s:%d", ep.Address, ep.Port)
	pc, err := f.connFor(ctx, addr)
	if err != nil {
		metrics.FabricSendFailures.Inc()
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	if err := pc.send(ctx, framePayload); err != nil {
		metrics.FabricSendFailures.Inc()
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	metrics.FabricMessagesSent.Inc()
	return nil
}

// connFor returns the cached connection to addr, dialing a fresh one if
// none exists yet or the cached one has closed.
func (f *Fabric) connFor(ctx context.Context, addr string) (*peerConn, error) {
	f.connMu.Lock()
	defer f.connMu.Unlock()

	if pc, ok := f.conns[addr]; ok {
		select {
		case <-pc.conn.Context().Done():
			delete(f.conns, addr)
		default:
			return pc, nil
		}
	}

	tlsConf := &tls.Config{
		Certificates: []tls.Certificate{f.cfg.Cert},
		RootCAs:      f.cfg.CAPool,
		MinVersion:   tls.VersionTLS13,
		NextProtos:   []string{ALPN},
		ServerName:   hostOf(addr),
	}
	conn, err := quic.DialAddr(ctx, addr, tlsConf, nil)
	if err != nil {
		return nil, fmt.Errorf("fabric: dial %s: %w", addr, err)
	}

	pc := &peerConn{conn: conn}
	f.conns[addr] = pc
	return pc, nil
}

// send writes payload as a frameAppData frame on pc's dedicated ordered
// stream, opening the stream on first use.
func (pc *peerConn) send(ctx context.Context, payload []byte) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.stream == nil {
		stream, err := pc.conn.OpenStreamSync(ctx)
		if err != nil {
			return err
		}
		pc.stream = stream
	}
	return writeFrame(pc.stream, frameAppData, payload)
}

func (f *Fabric) reapLoop(ctx context.Context) {
	ticker := time.NewTicker(DefaultTTL / 3)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-f.done:
			return
		case <-ticker.C:
			f.reapExpired()
		}
	}
}

func (f *Fabric) reapExpired() {
	now := time.Now()
	f.mu.Lock()
	defer f.mu.Unlock()
	for name, rec := range f.remote {
		if now.After(rec.expiresAt) {
			delete(f.remote, name)
		}
	}
	for id, rec := range f.peers {
		if now.After(rec.expiresAt) {
			delete(f.peers, id)
		}
	}
}

// writeFrame encodes a [1-byte kind][4-byte big-endian length][payload]
// frame, the minimal framing a QUIC stream needs since it otherwise only
// guarantees an ordered byte stream, not message boundaries.
func writeFrame(w io.Writer, kind byte, payload []byte) error {
	header := make([]byte, 5)
	header[0] = kind
	binary.BigEndian.PutUint32(header[1:], uint32(len(payload)))
	if _, err := w.Write(header); err != nil {
		return err
	}
	if len(payload) == 0 {
		return nil
	}
	_, err := w.Write(payload)
	return err
}

func readFrame(r io.Reader) (byte, []byte, error) {
	header := make([]byte, 5)
	if _, err := io.ReadFull(r, header); err != nil {
		return 0, nil, err
	}
	n := binary.BigEndian.Uint32(header[1:])
	if n == 0 {
		return header[0], nil, nil
	}
	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, nil, err
	}
	return header[0], payload, nil
}

func hostOf(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[:i]
		}
	}
	return addr
}

func portOf(addr string) int {
	var port int
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			fmt.Sscanf(addr[i+1:], "%d", &port)
			return port
		}
	}
	return 0
}
