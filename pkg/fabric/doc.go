/*
Package fabric is the node-to-node network fabric: QUIC
transport with mutual TLS, a service/peer registry refreshed by
heartbeat, and name resolution across local, canonical-form, and remote
lookups.

Transport. Each Fabric dials and accepts github.com/quic-go/quic-go
connections authenticated with the node's own certificate, issued the
same way pkg/api's gRPC server is (pkg/security.CertAuthority). Stream
framing is a minimal [kind][length][payload] header, since QUIC streams
are ordered byte streams without message boundaries of their own.
Application data to a given destination flows over one long-lived
stream opened lazily per connection, giving per-connection in-order
delivery without pinning ordering to any particular request/response
exchange; control frames (announce, resolve) each get their own
short-lived stream.

Registry and resolution. Locally-owned services never expire; entries
learned from a peer's Announce carry pkg/fabric.DefaultTTL and are
dropped by a background reaper if not refreshed. Resolve tries the
local map, then the canonical name forms, then a remote query fanned
out to known peers — mirroring pkg/dns.Resolver's own layered lookup,
generalized from DNS records to fabric service endpoints.

Encryption. A service registered with a 32-byte EncryptionKey has its
payloads sealed with pkg/security.SecretsManager (AES-256-GCM) before
leaving the node and opened again by whichever node owns that service;
services without a key travel in the clear, matching the "nil
if unencrypted" note on ServiceEndpoint.
*/
package fabric
